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

type bookInstanceDoc struct {
	ID        string    `bson:"_id"`
	Book      string    `bson:"book"`
	Imprint   string    `bson:"imprint"`
	Status    string    `bson:"status"`
	DueBack   time.Time `bson:"due_back"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func toBookInstanceDoc(bi model.BookInstance) bookInstanceDoc {
	return bookInstanceDoc{
		ID:        bi.ID.String(),
		Book:      bi.BookID.String(),
		Imprint:   bi.Imprint,
		Status:    string(bi.Status),
		DueBack:   bi.DueBack,
		CreatedAt: bi.CreatedAt,
		UpdatedAt: bi.UpdatedAt,
	}
}

func (d bookInstanceDoc) toModel() model.BookInstance {
	return model.BookInstance{
		ID:        parseID(d.ID),
		BookID:    parseID(d.Book),
		Imprint:   d.Imprint,
		Status:    model.BookInstanceStatus(d.Status),
		DueBack:   d.DueBack,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type BookInstanceRepository struct {
	coll  *mongo.Collection
	books *BookRepository
}

func NewBookInstanceRepository(db *mongo.Database) *BookInstanceRepository {
	return &BookInstanceRepository{
		coll:  db.Collection(bookInstancesCollection),
		books: NewBookRepository(db),
	}
}

var byCreatedAt = options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

func (r *BookInstanceRepository) List(ctx context.Context) ([]model.BookInstance, error) {
	return r.find(ctx, bson.D{})
}

func (r *BookInstanceRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.BookInstance, error) {
	return r.find(ctx, bson.D{{Key: "book", Value: bookID.String()}})
}

func (r *BookInstanceRepository) find(ctx context.Context, filter bson.D) ([]model.BookInstance, error) {
	docs, err := findAll[bookInstanceDoc](ctx, r.coll, filter, byCreatedAt)
	if err != nil {
		return nil, err
	}

	bookIDs := make([]string, 0, len(docs))
	for _, d := range docs {
		bookIDs = append(bookIDs, d.Book)
	}
	books, err := r.books.byIDs(ctx, bookIDs)
	if err != nil {
		return nil, err
	}

	instances := make([]model.BookInstance, 0, len(docs))
	for _, d := range docs {
		bi := d.toModel()
		bi.Book = books[d.Book]
		instances = append(instances, bi)
	}
	return instances, nil
}

func (r *BookInstanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.BookInstance, error) {
	var doc bookInstanceDoc
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&doc); err != nil {
		return nil, translateError(err)
	}

	books, err := r.books.byIDs(ctx, []string{doc.Book})
	if err != nil {
		return nil, err
	}

	bi := doc.toModel()
	bi.Book = books[doc.Book]
	return &bi, nil
}

func (r *BookInstanceRepository) Create(ctx context.Context, instance *model.BookInstance) error {
	if err := requireRef(ctx, r.books.coll, instance.BookID); err != nil {
		return err
	}

	now := time.Now().UTC()
	instance.ApplyDefaults(now)
	instance.CreatedAt, instance.UpdatedAt = now, now

	_, err := r.coll.InsertOne(ctx, toBookInstanceDoc(*instance))
	return translateError(err)
}

func (r *BookInstanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteOne(ctx, r.coll, id)
}

func (r *BookInstanceRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	return n, translateError(err)
}

func (r *BookInstanceRepository) CountByStatus(ctx context.Context, status model.BookInstanceStatus) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "status", Value: string(status)}})
	return n, translateError(err)
}
