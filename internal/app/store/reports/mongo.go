package reports

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultCollection is the collection reports are written to.
const DefaultCollection = "reports"

// Document is the stored form of a report. The destination name is the _id,
// so each destination holds exactly one report.
type Document struct {
	Destination string    `bson:"_id"`
	Content     string    `bson:"content"`
	Bytes       int       `bson:"bytes"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

// Mongo writes reports as documents in a MongoDB collection.
type Mongo struct {
	c *mongo.Collection
}

// NewMongo returns a writer over the named collection of db.
func NewMongo(db *mongo.Database, collection string) *Mongo {
	if collection == "" {
		collection = DefaultCollection
	}
	return &Mongo{c: db.Collection(collection)}
}

// Write replaces the document for destination, creating it if needed.
func (w *Mongo) Write(ctx context.Context, content, destination string) Outcome {
	if destination == "" {
		return failed(destination, fmt.Errorf("write report: empty destination"))
	}
	doc := Document{
		Destination: destination,
		Content:     content,
		Bytes:       len(content),
		UpdatedAt:   time.Now().UTC(),
	}
	_, err := w.c.ReplaceOne(ctx, bson.M{"_id": destination}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return failed(destination, fmt.Errorf("store report %s: %w", destination, err))
	}
	return succeeded(destination, len(content))
}

// Get loads the stored report for destination.
func (w *Mongo) Get(ctx context.Context, destination string) (Document, error) {
	var doc Document
	if err := w.c.FindOne(ctx, bson.M{"_id": destination}).Decode(&doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}
