package sources

import (
	"bytes"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo reads collections from a MongoDB database. Documents are returned as
// a relaxed Extended JSON array in _id order, so the loader parses them the
// same way it parses files.
type Mongo struct {
	db *mongo.Database
}

// NewMongo returns a Mongo source over db.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

// Fetch returns every document of the named collection.
func (s *Mongo) Fetch(ctx context.Context, name string) ([]byte, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: collection %s", ErrNotFound, name)
	}

	cur, err := s.db.Collection(name).Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", name, err)
	}
	defer cur.Close(ctx)

	var buf bytes.Buffer
	buf.WriteByte('[')
	n := 0
	for cur.Next(ctx) {
		var doc bson.D
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		b, err := bson.MarshalExtJSON(doc, false, false)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", name, err)
		}
		if n > 0 {
			buf.WriteByte(',')
		}
		buf.Write(b)
		n++
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", name, err)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
