package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/validation"
)

type GenreHandler struct {
	genres    repository.GenreRepository
	books     repository.BookRepository
	validator *validation.Validator
}

func NewGenreHandler(store *repository.Store, v *validation.Validator) *GenreHandler {
	return &GenreHandler{genres: store.Genres, books: store.Books, validator: v}
}

func (h *GenreHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/genres", h.List)

	genre := r.Group("/genre")
	{
		genre.GET("/create", h.CreateForm)
		genre.POST("/create", h.Create)
		genre.GET("/:id", h.Detail)
		genre.GET("/:id/delete", h.DeleteForm)
		genre.POST("/:id/delete", h.Delete)
		genre.GET("/:id/update", notImplemented("Genre", "GET"))
		genre.POST("/:id/update", notImplemented("Genre", "POST"))
	}
}

// List godoc
// @Summary      List genres
// @Description  All genres sorted by name
// @Tags         genres
// @Produce      html
// @Success      200  {string}  string  "genre_list page"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/genres [get]
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.genres.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "genre_list", gin.H{
		"title":      "Genre List",
		"genre_list": genres,
	})
}

// Detail godoc
// @Summary      Show a genre
// @Description  A genre with every book filed under it
// @Tags         genres
// @Produce      html
// @Param        id   path      string  true  "Genre ID (UUID)"
// @Success      200  {string}  string  "genre_detail page"
// @Failure      404  {string}  string  "Genre not found"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/genre/{id} [get]
func (h *GenreHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	genre, books, err := fetchWithDependents(c.Request.Context(), id, h.genres.FindByID, h.books.ListByGenre)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(c, "Genre")
			return
		}
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "genre_detail", gin.H{
		"title":       "Genre Detail",
		"genre":       genre,
		"genre_books": books,
	})
}

// CreateForm godoc
// @Summary      Genre create form
// @Tags         genres
// @Produce      html
// @Success      200  {string}  string  "genre_form page"
// @Router       /catalog/genre/create [get]
func (h *GenreHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "genre_form", gin.H{
		"title": "Create Genre",
	})
}

// Create godoc
// @Summary      Create a genre
// @Description  Redirects to the existing genre when one with the same name is already stored
// @Tags         genres
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        name  formData  string  true  "Genre name (3-100 characters)"
// @Success      303   {string}  string  "redirect to the genre"
// @Success      200   {string}  string  "genre_form page with errors"
// @Failure      500   {string}  string  "error page"
// @Router       /catalog/genre/create [post]
func (h *GenreHandler) Create(c *gin.Context) {
	values, ok := postForm(c)
	if !ok {
		return
	}

	res := h.validator.Genre(values)
	if !res.Valid() {
		c.HTML(http.StatusOK, "genre_form", gin.H{
			"title":  "Create Genre",
			"genre":  res.Form,
			"errors": res.Errors,
		})
		return
	}

	ctx := c.Request.Context()

	existing, err := h.genres.FindByName(ctx, res.Value.Name)
	switch {
	case err == nil:
		redirect(c, existing.URL())
		return
	case !errors.Is(err, repository.ErrNotFound):
		fail(c, err)
		return
	}

	genre := res.Value
	if err := h.genres.Create(ctx, &genre); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			fail(c, err)
			return
		}

		// Lost a race with a concurrent create of the same name.
		winner, ferr := h.genres.FindByName(ctx, genre.Name)
		if ferr != nil {
			fail(c, ferr)
			return
		}
		redirect(c, winner.URL())
		return
	}

	redirect(c, genre.URL())
}

// DeleteForm godoc
// @Summary      Genre delete confirmation
// @Description  Lists the books that block deleting the genre
// @Tags         genres
// @Produce      html
// @Param        id   path      string  true  "Genre ID (UUID)"
// @Success      200  {string}  string  "genre_delete page"
// @Success      303  {string}  string  "redirect to /catalog/genres when the genre does not exist"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/genre/{id}/delete [get]
func (h *GenreHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	genre, books, err := fetchWithDependents(c.Request.Context(), id, h.genres.FindByID, h.books.ListByGenre)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			redirect(c, "/catalog/genres")
			return
		}
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "genre_delete", gin.H{
		"title":       "Delete Genre",
		"genre":       genre,
		"genre_books": books,
	})
}

// Delete godoc
// @Summary      Delete a genre
// @Description  Refused while any book references the genre. The path id is the only id used.
// @Tags         genres
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        id   path      string  true  "Genre ID (UUID)"
// @Success      303  {string}  string  "redirect to /catalog/genres"
// @Success      200  {string}  string  "genre_delete page listing blocking books"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/genre/{id}/delete [post]
func (h *GenreHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	genre, books, err := fetchWithDependents(ctx, id, h.genres.FindByID, h.books.ListByGenre)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			redirect(c, "/catalog/genres")
			return
		}
		fail(c, err)
		return
	}

	if len(books) > 0 {
		c.HTML(http.StatusOK, "genre_delete", gin.H{
			"title":       "Delete Genre",
			"genre":       genre,
			"genre_books": books,
		})
		return
	}

	if err := h.genres.Delete(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		fail(c, err)
		return
	}

	redirect(c, "/catalog/genres")
}
