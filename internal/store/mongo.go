package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore is the MongoDB-backed adapter.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to the given MongoDB URI and selects dbName.
// The connection is verified with a ping before the store is returned.
func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &MongoStore{client: client, db: client.Database(dbName)}, nil
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter Filter) ([]Record, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, mongoFilter(filter))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]Record, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) UpdateField(ctx context.Context, collection, id, field string, value any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrBadID
	}
	res, err := s.db.Collection(collection).UpdateByID(ctx, oid, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// mongoFilter translates the generic equality filter into a bson query.
// []string values become $in clauses; everything else matches exactly.
func mongoFilter(filter Filter) bson.M {
	q := bson.M{}
	for field, want := range filter {
		if set, ok := want.([]string); ok {
			q[field] = bson.M{"$in": set}
			continue
		}
		q[field] = want
	}
	return q
}
