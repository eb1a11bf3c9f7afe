package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/model"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/testutil"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/validation"
	"gorm.io/gorm"
)

type renderedPage struct {
	Name string
	Data gin.H
}

// pageRecorder stands in for the template renderer and keeps the page name
// and context of every render.
type pageRecorder struct {
	mu    sync.Mutex
	pages []renderedPage
}

func (p *pageRecorder) Instance(name string, data any) render.Render {
	h, _ := data.(gin.H)

	p.mu.Lock()
	p.pages = append(p.pages, renderedPage{Name: name, Data: h})
	p.mu.Unlock()

	return render.Data{ContentType: "text/html; charset=utf-8", Data: []byte(name)}
}

func (p *pageRecorder) last(t *testing.T) renderedPage {
	t.Helper()

	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.pages) == 0 {
		t.Fatalf("expected a page to be rendered")
	}
	return p.pages[len(p.pages)-1]
}

func setupRouter(store *repository.Store) (*gin.Engine, *pageRecorder) {
	return setupRouterWithDetail(store, true)
}

func setupRouterWithDetail(store *repository.Store, showDetail bool) (*gin.Engine, *pageRecorder) {
	gin.SetMode(gin.TestMode)
	r := gin.Default()

	pages := &pageRecorder{}
	r.HTMLRender = pages

	r.Use(ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), showDetail))
	r.NoRoute(NotFound)

	RegisterCatalog(r.Group("/catalog"), store, validation.New())

	return r, pages
}

func setupTestRouter(t *testing.T) (*gin.Engine, *pageRecorder, *gorm.DB) {
	t.Helper()

	db := testutil.NewTestDB(t)
	r, pages := setupRouter(repository.NewGormStore(db))
	return r, pages, db
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func post(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func expectRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d, body=%s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}

func expectPage(t *testing.T, w *httptest.ResponseRecorder, pages *pageRecorder, status int, name string) gin.H {
	t.Helper()

	if w.Code != status {
		t.Fatalf("expected status %d, got %d, body=%s", status, w.Code, w.Body.String())
	}
	page := pages.last(t)
	if page.Name != name {
		t.Fatalf("expected page %q, got %q", name, page.Name)
	}
	return page.Data
}

func fieldErrors(t *testing.T, data gin.H) []validation.FieldError {
	t.Helper()

	errs, ok := data["errors"].([]validation.FieldError)
	if !ok || len(errs) == 0 {
		t.Fatalf("expected field errors in page context, got %#v", data["errors"])
	}
	return errs
}

type fakeGenreRepo struct {
	ListFn       func(ctx context.Context) ([]model.Genre, error)
	FindByIDFn   func(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	FindByNameFn func(ctx context.Context, name string) (*model.Genre, error)
	CreateFn     func(ctx context.Context, g *model.Genre) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error
	CountFn      func(ctx context.Context) (int64, error)
}

func (f *fakeGenreRepo) List(ctx context.Context) ([]model.Genre, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func (f *fakeGenreRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeGenreRepo) FindByName(ctx context.Context, name string) (*model.Genre, error) {
	if f.FindByNameFn != nil {
		return f.FindByNameFn(ctx, name)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeGenreRepo) Create(ctx context.Context, g *model.Genre) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, g)
	}
	return nil
}

func (f *fakeGenreRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeGenreRepo) Count(ctx context.Context) (int64, error) {
	if f.CountFn != nil {
		return f.CountFn(ctx)
	}
	return 0, nil
}

type fakeBookRepo struct {
	ListFn         func(ctx context.Context) ([]model.Book, error)
	FindByIDFn     func(ctx context.Context, id uuid.UUID) (*model.Book, error)
	ListByGenreFn  func(ctx context.Context, genreID uuid.UUID) ([]model.Book, error)
	ListByAuthorFn func(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)
	CreateFn       func(ctx context.Context, b *model.Book) error
	DeleteFn       func(ctx context.Context, id uuid.UUID) error
	CountFn        func(ctx context.Context) (int64, error)
}

func (f *fakeBookRepo) List(ctx context.Context) ([]model.Book, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBookRepo) ListByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error) {
	if f.ListByGenreFn != nil {
		return f.ListByGenreFn(ctx, genreID)
	}
	return nil, nil
}

func (f *fakeBookRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	if f.ListByAuthorFn != nil {
		return f.ListByAuthorFn(ctx, authorID)
	}
	return nil, nil
}

func (f *fakeBookRepo) Create(ctx context.Context, b *model.Book) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeBookRepo) Count(ctx context.Context) (int64, error) {
	if f.CountFn != nil {
		return f.CountFn(ctx)
	}
	return 0, nil
}

type fakeAuthorRepo struct {
	ListFn     func(ctx context.Context) ([]model.Author, error)
	FindByIDFn func(ctx context.Context, id uuid.UUID) (*model.Author, error)
	CreateFn   func(ctx context.Context, a *model.Author) error
	DeleteFn   func(ctx context.Context, id uuid.UUID) error
	CountFn    func(ctx context.Context) (int64, error)
}

func (f *fakeAuthorRepo) List(ctx context.Context) ([]model.Author, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func (f *fakeAuthorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAuthorRepo) Create(ctx context.Context, a *model.Author) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, a)
	}
	return nil
}

func (f *fakeAuthorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeAuthorRepo) Count(ctx context.Context) (int64, error) {
	if f.CountFn != nil {
		return f.CountFn(ctx)
	}
	return 0, nil
}

type fakeBookInstanceRepo struct {
	ListFn          func(ctx context.Context) ([]model.BookInstance, error)
	FindByIDFn      func(ctx context.Context, id uuid.UUID) (*model.BookInstance, error)
	ListByBookFn    func(ctx context.Context, bookID uuid.UUID) ([]model.BookInstance, error)
	CreateFn        func(ctx context.Context, bi *model.BookInstance) error
	DeleteFn        func(ctx context.Context, id uuid.UUID) error
	CountFn         func(ctx context.Context) (int64, error)
	CountByStatusFn func(ctx context.Context, status model.BookInstanceStatus) (int64, error)
}

func (f *fakeBookInstanceRepo) List(ctx context.Context) ([]model.BookInstance, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func (f *fakeBookInstanceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.BookInstance, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBookInstanceRepo) ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.BookInstance, error) {
	if f.ListByBookFn != nil {
		return f.ListByBookFn(ctx, bookID)
	}
	return nil, nil
}

func (f *fakeBookInstanceRepo) Create(ctx context.Context, bi *model.BookInstance) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, bi)
	}
	return nil
}

func (f *fakeBookInstanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeBookInstanceRepo) Count(ctx context.Context) (int64, error) {
	if f.CountFn != nil {
		return f.CountFn(ctx)
	}
	return 0, nil
}

func (f *fakeBookInstanceRepo) CountByStatus(ctx context.Context, status model.BookInstanceStatus) (int64, error) {
	if f.CountByStatusFn != nil {
		return f.CountByStatusFn(ctx, status)
	}
	return 0, nil
}

// fakeStore fills any repository left nil with an empty fake.
func fakeStore(s repository.Store) *repository.Store {
	if s.Genres == nil {
		s.Genres = &fakeGenreRepo{}
	}
	if s.Authors == nil {
		s.Authors = &fakeAuthorRepo{}
	}
	if s.Books == nil {
		s.Books = &fakeBookRepo{}
	}
	if s.BookInstances == nil {
		s.BookInstances = &fakeBookInstanceRepo{}
	}
	return &s
}
