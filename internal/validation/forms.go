package validation

import (
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/model"
)

type GenreForm struct {
	Name string `form:"name" validate:"required,min=3,max=100"`
}

var genreMessages = map[string]string{
	"name.required": "Genre name required",
	"name.min":      "Genre name must be between 3 and 100 characters",
	"name.max":      "Genre name must be between 3 and 100 characters",
}

// Genre builds a Genre from a submitted create form.
func (v *Validator) Genre(values url.Values) Result[GenreForm, model.Genre] {
	var res Result[GenreForm, model.Genre]
	if err := bind(values, &res.Form); err != nil {
		res.Errors = bindError(err)
		return res
	}

	f := &res.Form
	trim(&f.Name)
	res.Errors = v.check(f, genreMessages)
	escape(&f.Name)

	if res.Valid() {
		res.Value = model.Genre{Name: f.Name}
	}
	return res
}

type BookInstanceForm struct {
	Book    string `form:"book" validate:"required,uuid"`
	Imprint string `form:"imprint" validate:"required"`
	Status  string `form:"status" validate:"omitempty,bookstatus"`
	DueBack string `form:"due_back" validate:"omitempty,iso8601"`
}

var bookInstanceMessages = map[string]string{
	"book":     "Book must be specified",
	"imprint":  "Imprint must be specified",
	"status":   "Status must be one of Available, Maintenance, Loaned, Reserved",
	"due_back": "Invalid date",
}

// SelectedBook is the submitted book id, or uuid.Nil when it is not one.
func (f BookInstanceForm) SelectedBook() uuid.UUID {
	return parseUUID(f.Book)
}

// BookInstance builds a BookInstance from a submitted create form. A blank
// status becomes Maintenance and a blank due date becomes now.
func (v *Validator) BookInstance(values url.Values) Result[BookInstanceForm, model.BookInstance] {
	var res Result[BookInstanceForm, model.BookInstance]
	if err := bind(values, &res.Form); err != nil {
		res.Errors = bindError(err)
		return res
	}

	f := &res.Form
	trim(&f.Book, &f.Imprint, &f.Status, &f.DueBack)
	res.Errors = v.check(f, bookInstanceMessages)
	escape(&f.Book, &f.Imprint, &f.Status)

	if !res.Valid() {
		return res
	}

	instance := model.BookInstance{
		BookID:  parseUUID(f.Book),
		Imprint: f.Imprint,
		Status:  model.BookInstanceStatus(f.Status),
	}
	if f.DueBack != "" {
		instance.DueBack, _ = model.ParseDate(f.DueBack)
	}
	instance.ApplyDefaults(time.Now())
	res.Value = instance
	return res
}

type AuthorForm struct {
	FirstName   string `form:"first_name" validate:"required,max=100"`
	FamilyName  string `form:"family_name" validate:"required,max=100"`
	DateOfBirth string `form:"date_of_birth" validate:"omitempty,iso8601"`
	DateOfDeath string `form:"date_of_death" validate:"omitempty,iso8601"`
}

var authorMessages = map[string]string{
	"first_name.required":  "First name must be specified",
	"first_name.max":       "First name must not exceed 100 characters",
	"family_name.required": "Family name must be specified",
	"family_name.max":      "Family name must not exceed 100 characters",
	"date_of_birth":        "Invalid date of birth",
	"date_of_death":        "Invalid date of death",
}

// Author builds an Author from a submitted create form.
func (v *Validator) Author(values url.Values) Result[AuthorForm, model.Author] {
	var res Result[AuthorForm, model.Author]
	if err := bind(values, &res.Form); err != nil {
		res.Errors = bindError(err)
		return res
	}

	f := &res.Form
	trim(&f.FirstName, &f.FamilyName, &f.DateOfBirth, &f.DateOfDeath)
	res.Errors = v.check(f, authorMessages)
	escape(&f.FirstName, &f.FamilyName)

	if !res.Valid() {
		return res
	}

	res.Value = model.Author{
		FirstName:   f.FirstName,
		FamilyName:  f.FamilyName,
		DateOfBirth: optionalDate(f.DateOfBirth),
		DateOfDeath: optionalDate(f.DateOfDeath),
	}
	return res
}

type BookForm struct {
	Title   string   `form:"title" validate:"required"`
	Author  string   `form:"author" validate:"required,uuid"`
	Summary string   `form:"summary" validate:"required"`
	ISBN    string   `form:"isbn" validate:"required"`
	Genre   []string `form:"genre" validate:"dive,uuid"`
}

var bookMessages = map[string]string{
	"title":   "Title must not be empty",
	"author":  "Author must be specified",
	"summary": "Summary must not be empty",
	"isbn":    "ISBN must not be empty",
	"genre":   "Genre must be one of the listed genres",
}

// SelectedAuthor is the submitted author id, or uuid.Nil when it is not one.
func (f BookForm) SelectedAuthor() uuid.UUID {
	return parseUUID(f.Author)
}

// HasGenre reports whether the genre with id was ticked.
func (f BookForm) HasGenre(id uuid.UUID) bool {
	s := id.String()
	for _, g := range f.Genre {
		if g == s {
			return true
		}
	}
	return false
}

// Book builds a Book from a submitted create form. Genres carry ids only.
func (v *Validator) Book(values url.Values) Result[BookForm, model.Book] {
	var res Result[BookForm, model.Book]
	if err := bind(values, &res.Form); err != nil {
		res.Errors = bindError(err)
		return res
	}

	f := &res.Form
	trim(&f.Title, &f.Author, &f.Summary, &f.ISBN)
	genres := f.Genre[:0]
	for _, g := range f.Genre {
		trim(&g)
		if g != "" {
			genres = append(genres, g)
		}
	}
	f.Genre = genres

	res.Errors = v.check(f, bookMessages)
	escape(&f.Title, &f.Author, &f.Summary, &f.ISBN)
	for i := range f.Genre {
		escape(&f.Genre[i])
	}

	if !res.Valid() {
		return res
	}

	book := model.Book{
		Title:    f.Title,
		AuthorID: parseUUID(f.Author),
		Summary:  f.Summary,
		ISBN:     f.ISBN,
	}
	for _, g := range f.Genre {
		book.Genres = append(book.Genres, model.Genre{ID: parseUUID(g)})
	}
	res.Value = book
	return res
}

func parseUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func optionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := model.ParseDate(s)
	if err != nil {
		return nil
	}
	return &t
}
