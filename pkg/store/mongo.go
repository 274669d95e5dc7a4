package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ramisn26/AI-Architect/pkg/design"
	"github.com/ramisn26/AI-Architect/pkg/errors"
)

// Mongo stores designs as documents in a MongoDB collection, one document
// per design keyed by the store-assigned ID.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// mongoDoc wraps a design with its ID for document storage.
type mongoDoc struct {
	ID     string                      `bson:"_id"`
	Design *design.ArchitecturalDesign `bson:"design"`
}

// NewMongo connects to the MongoDB instance at uri and uses the designs
// collection of the named database.
func NewMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "ping mongodb")
	}
	return &Mongo{
		client: client,
		coll:   client.Database(database).Collection("designs"),
	}, nil
}

func (m *Mongo) Save(ctx context.Context, d *design.ArchitecturalDesign) (string, error) {
	id := NewID()
	if _, err := m.coll.InsertOne(ctx, mongoDoc{ID: id, Design: d}); err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "insert design")
	}
	return id, nil
}

func (m *Mongo) Load(ctx context.Context, id string) (*design.ArchitecturalDesign, error) {
	var doc mongoDoc
	err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeNotFound, "design %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "query design %s", id)
	}
	if err := doc.Design.Input.Normalize(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "normalize stored design %s", id)
	}
	return doc.Design, nil
}

func (m *Mongo) Delete(ctx context.Context, id string) error {
	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "delete design %s", id)
	}
	return nil
}

func (m *Mongo) List(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(bson.M{"_id": 1})
	cur, err := m.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "list designs")
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "decode design id")
		}
		ids = append(ids, doc.ID)
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "list designs")
	}
	return ids, nil
}

func (m *Mongo) Close() error {
	return m.client.Disconnect(context.Background())
}
