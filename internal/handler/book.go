package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/model"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/validation"
	"golang.org/x/sync/errgroup"
)

type BookHandler struct {
	books     repository.BookRepository
	authors   repository.AuthorRepository
	genres    repository.GenreRepository
	instances repository.BookInstanceRepository
	validator *validation.Validator
}

func NewBookHandler(store *repository.Store, v *validation.Validator) *BookHandler {
	return &BookHandler{
		books:     store.Books,
		authors:   store.Authors,
		genres:    store.Genres,
		instances: store.BookInstances,
		validator: v,
	}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/books", h.List)

	book := r.Group("/book")
	{
		book.GET("/create", h.CreateForm)
		book.POST("/create", h.Create)
		book.GET("/:id", h.Detail)
		book.GET("/:id/delete", h.DeleteForm)
		book.POST("/:id/delete", h.Delete)
		book.GET("/:id/update", notImplemented("Book", "GET"))
		book.POST("/:id/update", notImplemented("Book", "POST"))
	}
}

// List godoc
// @Summary      List books
// @Description  All books sorted by title, with their authors
// @Tags         books
// @Produce      html
// @Success      200  {string}  string  "book_list page"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/books [get]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.books.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "book_list", gin.H{
		"title":     "Book List",
		"book_list": books,
	})
}

// Detail godoc
// @Summary      Show a book
// @Description  A book with its author, genres and copies
// @Tags         books
// @Produce      html
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      200  {string}  string  "book_detail page"
// @Failure      404  {string}  string  "Book not found"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/book/{id} [get]
func (h *BookHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	book, instances, err := fetchWithDependents(c.Request.Context(), id, h.books.FindByID, h.instances.ListByBook)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(c, "Book")
			return
		}
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "book_detail", gin.H{
		"title":          book.Title,
		"book":           book,
		"book_instances": instances,
	})
}

// CreateForm godoc
// @Summary      Book create form
// @Tags         books
// @Produce      html
// @Success      200  {string}  string  "book_form page"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/book/create [get]
func (h *BookHandler) CreateForm(c *gin.Context) {
	data, err := h.formData(c.Request.Context(), nil, nil)
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "book_form", data)
}

// Create godoc
// @Summary      Create a book
// @Tags         books
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        title    formData  string    true   "Title"
// @Param        author   formData  string    true   "Author ID (UUID)"
// @Param        summary  formData  string    true   "Summary"
// @Param        isbn     formData  string    true   "ISBN"
// @Param        genre    formData  []string  false  "Genre IDs (UUID)" collectionFormat(multi)
// @Success      303  {string}  string  "redirect to the book"
// @Success      200  {string}  string  "book_form page with errors"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/book/create [post]
func (h *BookHandler) Create(c *gin.Context) {
	values, ok := postForm(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	res := h.validator.Book(values)

	if res.Valid() {
		book := res.Value
		err := h.books.Create(ctx, &book)
		if err == nil {
			redirect(c, book.URL())
			return
		}
		if !errors.Is(err, repository.ErrInvalidReference) {
			fail(c, err)
			return
		}
		res.Errors = append(res.Errors, validation.FieldError{
			Field:   "author",
			Rule:    "exists",
			Message: "Author or genre not found",
		})
	}

	data, err := h.formData(ctx, &res.Form, res.Errors)
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "book_form", data)
}

// formData loads the author and genre choices for the book form. form is
// nil on a fresh form.
func (h *BookHandler) formData(ctx context.Context, form *validation.BookForm, errs []validation.FieldError) (gin.H, error) {
	g, ctx := errgroup.WithContext(ctx)

	var (
		authors []model.Author
		genres  []model.Genre
	)
	g.Go(func() error {
		var err error
		authors, err = h.authors.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		genres, err = h.genres.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	data := gin.H{
		"title":           "Create Book",
		"authors":         authors,
		"genres":          genres,
		"selected_author": uuid.Nil,
		"errors":          errs,
	}
	if form != nil {
		data["book"] = *form
		data["selected_author"] = form.SelectedAuthor()
	}
	return data, nil
}

// DeleteForm godoc
// @Summary      Book delete confirmation
// @Description  Lists the copies that block deleting the book
// @Tags         books
// @Produce      html
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      200  {string}  string  "book_delete page"
// @Success      303  {string}  string  "redirect to /catalog/books when the book does not exist"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/book/{id}/delete [get]
func (h *BookHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	book, instances, err := fetchWithDependents(c.Request.Context(), id, h.books.FindByID, h.instances.ListByBook)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			redirect(c, "/catalog/books")
			return
		}
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "book_delete", gin.H{
		"title":          "Delete Book",
		"book":           book,
		"book_instances": instances,
	})
}

// Delete godoc
// @Summary      Delete a book
// @Description  Refused while any copy references the book
// @Tags         books
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      303  {string}  string  "redirect to /catalog/books"
// @Success      200  {string}  string  "book_delete page listing blocking copies"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/book/{id}/delete [post]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	book, instances, err := fetchWithDependents(ctx, id, h.books.FindByID, h.instances.ListByBook)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			redirect(c, "/catalog/books")
			return
		}
		fail(c, err)
		return
	}

	if len(instances) > 0 {
		c.HTML(http.StatusOK, "book_delete", gin.H{
			"title":          "Delete Book",
			"book":           book,
			"book_instances": instances,
		})
		return
	}

	if err := h.books.Delete(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		fail(c, err)
		return
	}

	redirect(c, "/catalog/books")
}
