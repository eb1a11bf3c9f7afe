package mongorepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bookDoc struct {
	ID        string    `bson:"_id"`
	Title     string    `bson:"title"`
	Author    string    `bson:"author"`
	Summary   string    `bson:"summary"`
	ISBN      string    `bson:"isbn"`
	Genre     []string  `bson:"genre"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func toBookDoc(b model.Book) bookDoc {
	genreIDs := make([]uuid.UUID, 0, len(b.Genres))
	for _, g := range b.Genres {
		genreIDs = append(genreIDs, g.ID)
	}
	return bookDoc{
		ID:        b.ID.String(),
		Title:     b.Title,
		Author:    b.AuthorID.String(),
		Summary:   b.Summary,
		ISBN:      b.ISBN,
		Genre:     idStrings(genreIDs),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (d bookDoc) toModel() model.Book {
	genres := make([]model.Genre, 0, len(d.Genre))
	for _, id := range parseIDs(d.Genre) {
		genres = append(genres, model.Genre{ID: id})
	}
	return model.Book{
		ID:        parseID(d.ID),
		Title:     d.Title,
		AuthorID:  parseID(d.Author),
		Summary:   d.Summary,
		ISBN:      d.ISBN,
		Genres:    genres,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type BookRepository struct {
	coll    *mongo.Collection
	authors *AuthorRepository
	genres  *GenreRepository
}

func NewBookRepository(db *mongo.Database) *BookRepository {
	return &BookRepository{
		coll:    db.Collection(booksCollection),
		authors: NewAuthorRepository(db),
		genres:  NewGenreRepository(db),
	}
}

var byTitle = options.Find().SetSort(bson.D{{Key: "title", Value: 1}})

func (r *BookRepository) List(ctx context.Context) ([]model.Book, error) {
	return r.find(ctx, bson.D{})
}

func (r *BookRepository) ListByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error) {
	return r.find(ctx, bson.D{{Key: "genre", Value: genreID.String()}})
}

func (r *BookRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	return r.find(ctx, bson.D{{Key: "author", Value: authorID.String()}})
}

// find loads matching books sorted by title with Author populated.
func (r *BookRepository) find(ctx context.Context, filter bson.D) ([]model.Book, error) {
	docs, err := findAll[bookDoc](ctx, r.coll, filter, byTitle)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]string, 0, len(docs))
	for _, d := range docs {
		authorIDs = append(authorIDs, d.Author)
	}
	authors, err := r.authors.byIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, 0, len(docs))
	for _, d := range docs {
		b := d.toModel()
		b.Author = authors[d.Author]
		books = append(books, b)
	}
	return books, nil
}

func (r *BookRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var doc bookDoc
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&doc); err != nil {
		return nil, translateError(err)
	}

	book := doc.toModel()

	authors, err := r.authors.byIDs(ctx, []string{doc.Author})
	if err != nil {
		return nil, err
	}
	book.Author = authors[doc.Author]

	genres, err := r.genres.byIDs(ctx, doc.Genre)
	if err != nil {
		return nil, err
	}
	book.Genres = genres

	return &book, nil
}

func (r *BookRepository) Create(ctx context.Context, book *model.Book) error {
	if err := requireRef(ctx, r.authors.coll, book.AuthorID); err != nil {
		return err
	}
	for _, g := range book.Genres {
		if err := requireRef(ctx, r.genres.coll, g.ID); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	if book.ID == uuid.Nil {
		book.ID = uuid.New()
	}
	book.CreatedAt, book.UpdatedAt = now, now

	_, err := r.coll.InsertOne(ctx, toBookDoc(*book))
	return translateError(err)
}

func (r *BookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteOne(ctx, r.coll, id)
}

func (r *BookRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	return n, translateError(err)
}

// byIDs loads books with the given ids keyed by id string, without population.
func (r *BookRepository) byIDs(ctx context.Context, ids []string) (map[string]model.Book, error) {
	out := make(map[string]model.Book, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	docs, err := findAll[bookDoc](ctx, r.coll, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		out[d.ID] = d.toModel()
	}
	return out, nil
}
