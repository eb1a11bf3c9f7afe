package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/apperror"
	"golang.org/x/sync/errgroup"
)

// fail hands err to the fault handler and stops the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func notFound(c *gin.Context, entity string) {
	fail(c, apperror.NotFound(entity+" not found"))
}

// parseID reads the :id path parameter. A malformed id is not a missing
// record, so it goes to the fault handler as a plain error.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		fail(c, fmt.Errorf("invalid id %q: %w", raw, err))
		return uuid.Nil, false
	}
	return id, true
}

// postForm returns the url-encoded body of a POST.
func postForm(c *gin.Context) (url.Values, bool) {
	if err := c.Request.ParseForm(); err != nil {
		fail(c, apperror.BadRequest("malformed form body"))
		return nil, false
	}
	return c.Request.PostForm, true
}

// redirect answers a form POST; 303 makes the browser follow with a GET.
func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// notImplemented answers the update routes, which are not built. The reply is
// a plain 200 text page, not a failure.
func notImplemented(entity, method string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "NOT IMPLEMENTED: %s update %s", entity, method)
	}
}

// fetchWithDependents loads a record and the records referencing it
// concurrently. The first failure cancels the other read and is returned.
func fetchWithDependents[T, D any](
	ctx context.Context,
	id uuid.UUID,
	find func(context.Context, uuid.UUID) (*T, error),
	dependents func(context.Context, uuid.UUID) ([]D, error),
) (*T, []D, error) {
	g, ctx := errgroup.WithContext(ctx)

	var (
		record *T
		deps   []D
	)
	g.Go(func() error {
		var err error
		record, err = find(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		deps, err = dependents(ctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return record, deps, nil
}
