// Package testutil holds the in-memory database and seed helpers shared by
// repository and handler tests.
package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory sqlite database with the catalog schema.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared&_foreign_keys=on"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&model.Genre{}, &model.Author{}, &model.Book{}, &model.BookInstance{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// NewEmptyDB opens a database without any tables, so every query fails.
func NewEmptyDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:errdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to error test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func SeedGenre(t *testing.T, db *gorm.DB, name string) model.Genre {
	t.Helper()

	genre := model.Genre{Name: name}
	if err := db.Create(&genre).Error; err != nil {
		t.Fatalf("failed to seed genre %q: %v", name, err)
	}
	return genre
}

func SeedAuthor(t *testing.T, db *gorm.DB, firstName, familyName string) model.Author {
	t.Helper()

	author := model.Author{FirstName: firstName, FamilyName: familyName}
	if err := db.Omit("Books").Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author %q: %v", familyName, err)
	}
	return author
}

func SeedBook(t *testing.T, db *gorm.DB, author model.Author, title string, genres ...model.Genre) model.Book {
	t.Helper()

	book := model.Book{
		Title:    title,
		AuthorID: author.ID,
		Summary:  "Summary of " + title,
		ISBN:     "978-" + uuid.New().String()[:10],
		Genres:   genres,
	}
	if err := db.Omit("Author", "Genres.*").Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}
	book.Author = author
	return book
}

func SeedBookInstance(t *testing.T, db *gorm.DB, book model.Book, imprint string, status model.BookInstanceStatus) model.BookInstance {
	t.Helper()

	instance := model.BookInstance{
		BookID:  book.ID,
		Imprint: imprint,
		Status:  status,
		DueBack: time.Now().Add(14 * 24 * time.Hour),
	}
	if err := db.Omit("Book").Create(&instance).Error; err != nil {
		t.Fatalf("failed to seed book instance %q: %v", imprint, err)
	}
	instance.Book = book
	return instance
}

// Count returns the number of rows stored for value's model.
func Count(t *testing.T, db *gorm.DB, value any) int64 {
	t.Helper()

	var n int64
	if err := db.Model(value).Count(&n).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}
