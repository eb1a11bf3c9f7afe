package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/apperror"
)

// ErrorHandler renders the "error" page for the last error a handler
// recorded with c.Error. The underlying error text is shown only when
// showDetail is set.
func ErrorHandler(log *slog.Logger, showDetail bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, message := apperror.StatusOf(err)

		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				"error", err,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", status,
			)
		}

		data := gin.H{
			"title":   message,
			"message": message,
			"status":  status,
		}
		if showDetail {
			data["error"] = err.Error()
		}

		c.HTML(status, "error", data)
	}
}

// NotFound is the handler for unknown routes.
func NotFound(c *gin.Context) {
	fail(c, apperror.NotFound("Not Found"))
}
