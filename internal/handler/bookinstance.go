package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/model"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/validation"
)

type BookInstanceHandler struct {
	instances repository.BookInstanceRepository
	books     repository.BookRepository
	validator *validation.Validator
}

func NewBookInstanceHandler(store *repository.Store, v *validation.Validator) *BookInstanceHandler {
	return &BookInstanceHandler{instances: store.BookInstances, books: store.Books, validator: v}
}

func (h *BookInstanceHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/bookinstances", h.List)

	instance := r.Group("/bookinstance")
	{
		instance.GET("/create", h.CreateForm)
		instance.POST("/create", h.Create)
		instance.GET("/:id", h.Detail)
		instance.GET("/:id/delete", h.DeleteForm)
		instance.POST("/:id/delete", h.Delete)
		instance.GET("/:id/update", notImplemented("BookInstance", "GET"))
		instance.POST("/:id/update", notImplemented("BookInstance", "POST"))
	}
}

// List godoc
// @Summary      List book copies
// @Tags         bookinstances
// @Produce      html
// @Success      200  {string}  string  "bookinstance_list page"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/bookinstances [get]
func (h *BookInstanceHandler) List(c *gin.Context) {
	instances, err := h.instances.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "bookinstance_list", gin.H{
		"title":             "Book Instance List",
		"bookinstance_list": instances,
	})
}

// Detail godoc
// @Summary      Show a book copy
// @Tags         bookinstances
// @Produce      html
// @Param        id   path      string  true  "BookInstance ID (UUID)"
// @Success      200  {string}  string  "bookinstance_detail page"
// @Failure      404  {string}  string  "Book copy not found"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/bookinstance/{id} [get]
func (h *BookInstanceHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	instance, err := h.instances.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(c, "Book copy")
			return
		}
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "bookinstance_detail", gin.H{
		"title":        "Copy: " + instance.Book.Title,
		"bookinstance": instance,
	})
}

// CreateForm godoc
// @Summary      Book copy create form
// @Tags         bookinstances
// @Produce      html
// @Success      200  {string}  string  "bookinstance_form page"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/bookinstance/create [get]
func (h *BookInstanceHandler) CreateForm(c *gin.Context) {
	books, err := h.books.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "bookinstance_form", bookInstanceFormData(books, validation.BookInstanceForm{}, nil))
}

// Create godoc
// @Summary      Create a book copy
// @Description  A blank status is stored as Maintenance and a blank due date as now
// @Tags         bookinstances
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        book      formData  string  true   "Book ID (UUID)"
// @Param        imprint   formData  string  true   "Imprint"
// @Param        status    formData  string  false  "Status" Enums(Available, Maintenance, Loaned, Reserved)
// @Param        due_back  formData  string  false  "Due back (ISO-8601)"
// @Success      303  {string}  string  "redirect to the copy"
// @Success      200  {string}  string  "bookinstance_form page with errors"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/bookinstance/create [post]
func (h *BookInstanceHandler) Create(c *gin.Context) {
	values, ok := postForm(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	res := h.validator.BookInstance(values)

	if res.Valid() {
		instance := res.Value
		err := h.instances.Create(ctx, &instance)
		if err == nil {
			redirect(c, instance.URL())
			return
		}
		if !errors.Is(err, repository.ErrInvalidReference) {
			fail(c, err)
			return
		}
		res.Errors = append(res.Errors, validation.FieldError{
			Field:   "book",
			Rule:    "exists",
			Message: "Book not found",
		})
	}

	books, err := h.books.List(ctx)
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "bookinstance_form", bookInstanceFormData(books, res.Form, res.Errors))
}

func bookInstanceFormData(books []model.Book, form validation.BookInstanceForm, errs []validation.FieldError) gin.H {
	return gin.H{
		"title":         "Create BookInstance",
		"book_list":     books,
		"selected_book": form.SelectedBook(),
		"statuses":      model.Statuses,
		"bookinstance":  form,
		"errors":        errs,
	}
}

// DeleteForm godoc
// @Summary      Book copy delete confirmation
// @Tags         bookinstances
// @Produce      html
// @Param        id   path      string  true  "BookInstance ID (UUID)"
// @Success      200  {string}  string  "bookinstance_delete page"
// @Success      303  {string}  string  "redirect to /catalog/bookinstances when the copy does not exist"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/bookinstance/{id}/delete [get]
func (h *BookInstanceHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	instance, err := h.instances.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			redirect(c, "/catalog/bookinstances")
			return
		}
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "bookinstance_delete", gin.H{
		"title":        "Delete BookInstance",
		"bookinstance": instance,
	})
}

// Delete godoc
// @Summary      Delete a book copy
// @Description  The path id is the only id used; a bookinstanceid form field is ignored.
// @Tags         bookinstances
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        id   path      string  true  "BookInstance ID (UUID)"
// @Success      303  {string}  string  "redirect to /catalog/bookinstances"
// @Failure      500  {string}  string  "error page"
// @Router       /catalog/bookinstance/{id}/delete [post]
func (h *BookInstanceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if _, err := h.instances.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			redirect(c, "/catalog/bookinstances")
			return
		}
		fail(c, err)
		return
	}

	if err := h.instances.Delete(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		fail(c, err)
		return
	}

	redirect(c, "/catalog/bookinstances")
}
