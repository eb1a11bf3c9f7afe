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

type genreDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func toGenreDoc(g model.Genre) genreDoc {
	return genreDoc{ID: g.ID.String(), Name: g.Name, CreatedAt: g.CreatedAt, UpdatedAt: g.UpdatedAt}
}

func (d genreDoc) toModel() model.Genre {
	return model.Genre{ID: parseID(d.ID), Name: d.Name, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
}

type GenreRepository struct {
	coll *mongo.Collection
}

func NewGenreRepository(db *mongo.Database) *GenreRepository {
	return &GenreRepository{coll: db.Collection(genresCollection)}
}

func (r *GenreRepository) List(ctx context.Context) ([]model.Genre, error) {
	docs, err := findAll[genreDoc](ctx, r.coll, bson.D{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	return genresFromDocs(docs), nil
}

func (r *GenreRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	return r.findOne(ctx, byID(id))
}

func (r *GenreRepository) FindByName(ctx context.Context, name string) (*model.Genre, error) {
	return r.findOne(ctx, bson.D{{Key: "name", Value: name}})
}

func (r *GenreRepository) findOne(ctx context.Context, filter bson.D) (*model.Genre, error) {
	var doc genreDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translateError(err)
	}
	g := doc.toModel()
	return &g, nil
}

func (r *GenreRepository) Create(ctx context.Context, genre *model.Genre) error {
	now := time.Now().UTC()
	if genre.ID == uuid.Nil {
		genre.ID = uuid.New()
	}
	genre.CreatedAt, genre.UpdatedAt = now, now

	_, err := r.coll.InsertOne(ctx, toGenreDoc(*genre))
	return translateError(err)
}

func (r *GenreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteOne(ctx, r.coll, id)
}

func (r *GenreRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	return n, translateError(err)
}

// byIDs loads the genres with the given ids, sorted by name.
func (r *GenreRepository) byIDs(ctx context.Context, ids []string) ([]model.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	docs, err := findAll[genreDoc](ctx, r.coll,
		bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	return genresFromDocs(docs), nil
}

func genresFromDocs(docs []genreDoc) []model.Genre {
	genres := make([]model.Genre, 0, len(docs))
	for _, d := range docs {
		genres = append(genres, d.toModel())
	}
	return genres
}
