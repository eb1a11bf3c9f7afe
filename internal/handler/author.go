package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/validation"
)

type AuthorHandler struct {
	authors   repository.AuthorRepository
	books     repository.BookRepository
	validator *validation.Validator
}

func NewAuthorHandler(store *repository.Store, v *validation.Validator) *AuthorHandler {
	return &AuthorHandler{authors: store.Authors, books: store.Books, validator: v}
}

func (h *AuthorHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/authors", h.List)

	author := r.Group("/author")
	{
		author.GET("/create", h.CreateForm)
		author.POST("/create", h.Create)
		author.GET("/:id", h.Detail)
		author.GET("/:id/delete", h.DeleteForm)
		author.POST("/:id/delete", h.Delete)
		author.GET("/:id/update", notImplemented("Author", "GET"))
		author.POST("/:id/update", notImplemented("Author", "POST"))
	}
}

// List godoc
// @Summary      List authors
// @Description  All authors sorted by family name
// @Tags         authors
// @Produce      html
// @Success      200  {string}  string  "author_list page"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/authors [get]
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.authors.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "author_list", gin.H{
		"title":       "Author List",
		"author_list": authors,
	})
}

// Detail godoc
// @Summary      Show an author
// @Description  An author with their books
// @Tags         authors
// @Produce      html
// @Param        id   path      string  true  "Author ID (UUID)"
// @Success      200  {string}  string  "author_detail page"
// @Failure      404  {string}  string  "Author not found"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/author/{id} [get]
func (h *AuthorHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	author, books, err := fetchWithDependents(c.Request.Context(), id, h.authors.FindByID, h.books.ListByAuthor)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(c, "Author")
			return
		}
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "author_detail", gin.H{
		"title":        "Author Detail",
		"author":       author,
		"author_books": books,
	})
}

// CreateForm godoc
// @Summary      Author create form
// @Tags         authors
// @Produce      html
// @Success      200  {string}  string  "author_form page"
// @Router       /catalog/author/create [get]
func (h *AuthorHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "author_form", gin.H{
		"title": "Create Author",
	})
}

// Create godoc
// @Summary      Create an author
// @Tags         authors
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        first_name     formData  string  true   "First name"
// @Param        family_name    formData  string  true   "Family name"
// @Param        date_of_birth  formData  string  false  "Date of birth (ISO-8601)"
// @Param        date_of_death  formData  string  false  "Date of death (ISO-8601)"
// @Success      303  {string}  string  "redirect to the author"
// @Success      200  {string}  string  "author_form page with errors"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/author/create [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	values, ok := postForm(c)
	if !ok {
		return
	}

	res := h.validator.Author(values)
	if !res.Valid() {
		c.HTML(http.StatusOK, "author_form", gin.H{
			"title":  "Create Author",
			"author": res.Form,
			"errors": res.Errors,
		})
		return
	}

	author := res.Value
	if err := h.authors.Create(c.Request.Context(), &author); err != nil {
		fail(c, err)
		return
	}

	redirect(c, author.URL())
}

// DeleteForm godoc
// @Summary      Author delete confirmation
// @Description  Lists the books that block deleting the author
// @Tags         authors
// @Produce      html
// @Param        id   path      string  true  "Author ID (UUID)"
// @Success      200  {string}  string  "author_delete page"
// @Success      303  {string}  string  "redirect to /catalog/authors when the author does not exist"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/author/{id}/delete [get]
func (h *AuthorHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	author, books, err := fetchWithDependents(c.Request.Context(), id, h.authors.FindByID, h.books.ListByAuthor)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			redirect(c, "/catalog/authors")
			return
		}
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "author_delete", gin.H{
		"title":        "Delete Author",
		"author":       author,
		"author_books": books,
	})
}

// Delete godoc
// @Summary      Delete an author
// @Description  Refused while any book references the author
// @Tags         authors
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        id   path      string  true  "Author ID (UUID)"
// @Success      303  {string}  string  "redirect to /catalog/authors"
// @Success      200  {string}  string  "author_delete page listing blocking books"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/author/{id}/delete [post]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	author, books, err := fetchWithDependents(ctx, id, h.authors.FindByID, h.books.ListByAuthor)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			redirect(c, "/catalog/authors")
			return
		}
		fail(c, err)
		return
	}

	if len(books) > 0 {
		c.HTML(http.StatusOK, "author_delete", gin.H{
			"title":        "Delete Author",
			"author":       author,
			"author_books": books,
		})
		return
	}

	if err := h.authors.Delete(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		fail(c, err)
		return
	}

	redirect(c, "/catalog/authors")
}
