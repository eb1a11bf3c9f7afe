//go:build integration
// +build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/handler"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/validation"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/view"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	testDB     *gorm.DB
	testRouter *gin.Engine
)

func TestMain(m *testing.M) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		panic("DATABASE_URL must point at a disposable postgres database")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}
	testDB = db

	if err := repository.Migrate(db); err != nil {
		panic("failed to migrate: " + err.Error())
	}

	gin.SetMode(gin.TestMode)
	r := gin.Default()
	r.HTMLRender = view.Must()
	r.Use(handler.ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), true))
	r.NoRoute(handler.NotFound)

	handler.RegisterCatalog(r.Group("/catalog"), repository.NewGormStore(db), validation.New())

	testRouter = r

	code := m.Run()
	os.Exit(code)
}

func resetDB(t *testing.T) {
	t.Helper()
	sqlDB, err := testDB.DB()
	if err != nil {
		t.Fatalf("get sql.DB failed: %v", err)
	}
	_, err = sqlDB.Exec("TRUNCATE TABLE book_instances, book_genres, books, authors, genres CASCADE;")
	if err != nil {
		t.Fatalf("truncate failed: %v", err)
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	srv := httptest.NewServer(testRouter)
	t.Cleanup(srv.Close)

	client := srv.Client()
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return srv, client
}

// submit posts a form and returns the redirect target.
func submit(t *testing.T, client *http.Client, baseURL, path string, form url.Values) string {
	t.Helper()

	resp, err := client.PostForm(baseURL+path, form)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 303 from POST %s, got %d: %s", path, resp.StatusCode, body)
	}
	return resp.Header.Get("Location")
}

func fetch(t *testing.T, client *http.Client, baseURL, path string, status int) string {
	t.Helper()

	resp, err := client.Get(baseURL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body failed: %v", err)
	}
	if resp.StatusCode != status {
		t.Fatalf("expected %d from GET %s, got %d: %s", status, path, resp.StatusCode, body)
	}
	return string(body)
}

func idFromLocation(t *testing.T, location string) string {
	t.Helper()

	i := strings.LastIndex(location, "/")
	if i < 0 || i == len(location)-1 {
		t.Fatalf("unexpected redirect target %q", location)
	}
	return location[i+1:]
}

func TestCatalogLifecycle_BackendIntegration(t *testing.T) {
	resetDB(t)
	srv, client := newTestServer(t)

	genreURL := submit(t, client, srv.URL, "/catalog/genre/create", url.Values{"name": {"Science Fiction"}})
	authorURL := submit(t, client, srv.URL, "/catalog/author/create", url.Values{
		"first_name":    {"Ursula"},
		"family_name":   {"Le Guin"},
		"date_of_birth": {"1929-10-21"},
	})
	bookURL := submit(t, client, srv.URL, "/catalog/book/create", url.Values{
		"title":   {"The Left Hand of Darkness"},
		"author":  {idFromLocation(t, authorURL)},
		"summary": {"Genly Ai & the Gethenians"},
		"isbn":    {"9780441478125"},
		"genre":   {idFromLocation(t, genreURL)},
	})
	copyURL := submit(t, client, srv.URL, "/catalog/bookinstance/create", url.Values{
		"book":    {idFromLocation(t, bookURL)},
		"imprint": {"Ace 1969"},
		"status":  {"Available"},
	})

	home := fetch(t, client, srv.URL, "/catalog", http.StatusOK)
	if !strings.Contains(home, "Local Library Home") {
		t.Errorf("expected home page, got %s", home)
	}

	book := fetch(t, client, srv.URL, bookURL, http.StatusOK)
	for _, want := range []string{"The Left Hand of Darkness", "Le Guin", "Science Fiction", "Ace 1969", "Genly Ai &amp; the Gethenians"} {
		if !strings.Contains(book, want) {
			t.Errorf("expected book page to contain %q", want)
		}
	}

	genre := fetch(t, client, srv.URL, genreURL, http.StatusOK)
	if !strings.Contains(genre, "The Left Hand of Darkness") {
		t.Errorf("expected genre page to list the book")
	}

	// The author still has a book, so nothing is removed.
	blocked, err := client.PostForm(srv.URL+authorURL+"/delete", url.Values{"authorid": {idFromLocation(t, authorURL)}})
	if err != nil {
		t.Fatalf("delete author failed: %v", err)
	}
	blocked.Body.Close()
	if blocked.StatusCode != http.StatusOK {
		t.Fatalf("expected blocked delete to re-render, got %d", blocked.StatusCode)
	}
	fetch(t, client, srv.URL, authorURL, http.StatusOK)

	if loc := submit(t, client, srv.URL, copyURL+"/delete", nil); loc != "/catalog/bookinstances" {
		t.Errorf("unexpected redirect %q", loc)
	}
	if loc := submit(t, client, srv.URL, bookURL+"/delete", nil); loc != "/catalog/books" {
		t.Errorf("unexpected redirect %q", loc)
	}
	if loc := submit(t, client, srv.URL, authorURL+"/delete", nil); loc != "/catalog/authors" {
		t.Errorf("unexpected redirect %q", loc)
	}
	if loc := submit(t, client, srv.URL, genreURL+"/delete", nil); loc != "/catalog/genres" {
		t.Errorf("unexpected redirect %q", loc)
	}

	fetch(t, client, srv.URL, bookURL, http.StatusNotFound)
}

func TestDuplicateGenre_BackendIntegration(t *testing.T) {
	resetDB(t)
	srv, client := newTestServer(t)

	first := submit(t, client, srv.URL, "/catalog/genre/create", url.Values{"name": {"Poetry"}})
	second := submit(t, client, srv.URL, "/catalog/genre/create", url.Values{"name": {"Poetry"}})

	if first != second {
		t.Fatalf("expected both submissions to land on %q, got %q", first, second)
	}

	var n int64
	if err := testDB.WithContext(context.Background()).Table("genres").Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected one genre, got %d", n)
	}
}
