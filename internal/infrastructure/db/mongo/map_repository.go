package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ar-top/map-api/internal/core/domain"
)

const mapCollection = "maps"

type MapRepository struct {
	coll *mongo.Collection
}

func NewMapRepository(db *mongo.Database) *MapRepository {
	return &MapRepository{coll: db.Collection(mapCollection)}
}

type mongoMap struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Width     int                `bson:"width"`
	Height    int                `bson:"height"`
	Depth     int                `bson:"depth"`
	Color     string             `bson:"color"`
	Private   bool               `bson:"private"`
	Models    []domain.Model     `bson:"models"`
	OwnerID   string             `bson:"owner"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func toDoc(m *domain.Map) mongoMap {
	return mongoMap{
		Name:      m.Name,
		Width:     m.Width,
		Height:    m.Height,
		Depth:     m.Depth,
		Color:     m.Color,
		Private:   m.Private,
		Models:    m.Models,
		OwnerID:   m.OwnerID,
		CreatedAt: m.CreatedAt.Unix(),
		UpdatedAt: m.UpdatedAt.Unix(),
	}
}

func fromDoc(d mongoMap) domain.Map {
	models := d.Models
	if models == nil {
		models = []domain.Model{}
	}
	return domain.Map{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Width:     d.Width,
		Height:    d.Height,
		Depth:     d.Depth,
		Color:     d.Color,
		Private:   d.Private,
		Models:    models,
		OwnerID:   d.OwnerID,
		CreatedAt: unixToTime(d.CreatedAt),
		UpdatedAt: unixToTime(d.UpdatedAt),
	}
}

// ownerFilter builds the (id, owner) filter used by Get, Save and Delete.
// An id that is not a valid ObjectID can never name an existing map, so the
// caller sees ErrMapNotFound rather than a decode failure.
func ownerFilter(id, ownerID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMapNotFound
	}
	return bson.M{"_id": oid, "owner": ownerID}, nil
}

func (r *MapRepository) Get(ctx context.Context, id, ownerID string) (*domain.Map, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownerFilter(id, ownerID)
	if err != nil {
		return nil, err
	}

	var d mongoMap
	if err := r.coll.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMapNotFound
		}
		return nil, fmt.Errorf("find map: %w", err)
	}

	m := fromDoc(d)
	return &m, nil
}

func (r *MapRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Map, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"owner": ownerID})
	if err != nil {
		return nil, fmt.Errorf("list maps: %w", err)
	}
	defer cur.Close(ctx)

	maps := []domain.Map{}
	for cur.Next(ctx) {
		var d mongoMap
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode map: %w", err)
		}
		maps = append(maps, fromDoc(d))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list maps: %w", err)
	}
	return maps, nil
}

func (r *MapRepository) Create(ctx context.Context, m *domain.Map) (*domain.Map, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toDoc(m))
	if err != nil {
		return nil, fmt.Errorf("insert map: %w", err)
	}

	created := *m
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// Save replaces the stored document, still scoped by owner so a racing
// ownership change can never be smuggled through.
func (r *MapRepository) Save(ctx context.Context, m *domain.Map) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownerFilter(m.ID, m.OwnerID)
	if err != nil {
		return err
	}

	res, err := r.coll.ReplaceOne(ctx, filter, toDoc(m))
	if err != nil {
		return fmt.Errorf("save map: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMapNotFound
	}
	return nil
}

func (r *MapRepository) Delete(ctx context.Context, id, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownerFilter(id, ownerID)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete map: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMapNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index used by list queries.
func (r *MapRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner", Value: 1}},
	})
	return err
}
