package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/model"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/validation"
	"golang.org/x/sync/errgroup"
)

// RegisterCatalog mounts the home page and every entity's routes on r.
func RegisterCatalog(r *gin.RouterGroup, store *repository.Store, v *validation.Validator) {
	NewCatalogHandler(store).RegisterRoutes(r)
	NewBookHandler(store, v).RegisterRoutes(r)
	NewAuthorHandler(store, v).RegisterRoutes(r)
	NewGenreHandler(store, v).RegisterRoutes(r)
	NewBookInstanceHandler(store, v).RegisterRoutes(r)
}

type CatalogHandler struct {
	store *repository.Store
}

func NewCatalogHandler(store *repository.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", h.Index)
}

// Index godoc
// @Summary      Catalog home
// @Description  Record counts for every entity
// @Tags         catalog
// @Produce      html
// @Success      200  {string}  string  "index page"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog [get]
func (h *CatalogHandler) Index(c *gin.Context) {
	g, ctx := errgroup.WithContext(c.Request.Context())

	var books, instances, available, authors, genres int64
	count := func(dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(ctx)
			*dst = n
			return err
		})
	}

	count(&books, h.store.Books.Count)
	count(&instances, h.store.BookInstances.Count)
	count(&available, func(ctx context.Context) (int64, error) {
		return h.store.BookInstances.CountByStatus(ctx, model.StatusAvailable)
	})
	count(&authors, h.store.Authors.Count)
	count(&genres, h.store.Genres.Count)

	if err := g.Wait(); err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"title":                         "Local Library Home",
		"book_count":                    books,
		"book_instance_count":           instances,
		"book_instance_available_count": available,
		"author_count":                  authors,
		"genre_count":                   genres,
	})
}
