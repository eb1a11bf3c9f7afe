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

type authorDoc struct {
	ID          string     `bson:"_id"`
	FirstName   string     `bson:"first_name"`
	FamilyName  string     `bson:"family_name"`
	DateOfBirth *time.Time `bson:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `bson:"date_of_death,omitempty"`
	CreatedAt   time.Time  `bson:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at"`
}

func toAuthorDoc(a model.Author) authorDoc {
	return authorDoc{
		ID:          a.ID.String(),
		FirstName:   a.FirstName,
		FamilyName:  a.FamilyName,
		DateOfBirth: a.DateOfBirth,
		DateOfDeath: a.DateOfDeath,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (d authorDoc) toModel() model.Author {
	return model.Author{
		ID:          parseID(d.ID),
		FirstName:   d.FirstName,
		FamilyName:  d.FamilyName,
		DateOfBirth: d.DateOfBirth,
		DateOfDeath: d.DateOfDeath,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type AuthorRepository struct {
	coll *mongo.Collection
}

func NewAuthorRepository(db *mongo.Database) *AuthorRepository {
	return &AuthorRepository{coll: db.Collection(authorsCollection)}
}

func (r *AuthorRepository) List(ctx context.Context) ([]model.Author, error) {
	docs, err := findAll[authorDoc](ctx, r.coll, bson.D{},
		options.Find().SetSort(bson.D{{Key: "family_name", Value: 1}, {Key: "first_name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	authors := make([]model.Author, 0, len(docs))
	for _, d := range docs {
		authors = append(authors, d.toModel())
	}
	return authors, nil
}

func (r *AuthorRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	var doc authorDoc
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&doc); err != nil {
		return nil, translateError(err)
	}
	a := doc.toModel()
	return &a, nil
}

func (r *AuthorRepository) Create(ctx context.Context, author *model.Author) error {
	now := time.Now().UTC()
	if author.ID == uuid.Nil {
		author.ID = uuid.New()
	}
	author.CreatedAt, author.UpdatedAt = now, now

	_, err := r.coll.InsertOne(ctx, toAuthorDoc(*author))
	return translateError(err)
}

func (r *AuthorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteOne(ctx, r.coll, id)
}

func (r *AuthorRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	return n, translateError(err)
}

// byIDs loads the authors with the given ids keyed by id string.
func (r *AuthorRepository) byIDs(ctx context.Context, ids []string) (map[string]model.Author, error) {
	out := make(map[string]model.Author, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	docs, err := findAll[authorDoc](ctx, r.coll, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		out[d.ID] = d.toModel()
	}
	return out, nil
}
