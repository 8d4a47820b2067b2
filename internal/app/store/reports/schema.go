package reports

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureCollection creates the reports collection (if missing) and tries to
// attach a JSON-Schema validator. On servers that don't support
// collMod/validators (e.g. some DocumentDB versions), we log and skip.
func EnsureCollection(ctx context.Context, db *mongo.Database, name string, logger *zap.Logger) error {
	if name == "" {
		name = DefaultCollection
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if _, err := ensureCollection(ctx, db, name, logger); err != nil {
		return err
	}
	if err := setValidator(ctx, db, name, reportsSchema(), logger); err != nil {
		if isNoSuchCommand(err) || isNotImplemented(err) {
			logger.Info("validator skipped (unsupported)", zap.String("collection", name))
			return nil
		}
		return err
	}
	return nil
}

/* ---------------------- collection helpers & logging ---------------------- */

func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}
	return len(names) > 0, nil
}

// ensureCollection idempotently makes sure <name> exists.
// Returns created==true only if we actually created it.
func ensureCollection(ctx context.Context, db *mongo.Database, name string, logger *zap.Logger) (created bool, err error) {
	exists, listErr := collectionExists(ctx, db, name)
	if listErr == nil && exists {
		logger.Debug("collection exists", zap.String("collection", name))
		return false, nil
	}
	// If listing failed, fall back to create-and-handle-race.
	if err := db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExistsErr(err) {
			logger.Debug("collection exists", zap.String("collection", name))
			return false, nil
		}
		logger.Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	logger.Info("created collection", zap.String("collection", name))
	return true, nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M, logger *zap.Logger) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	logger.Debug("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 48 || strings.Contains(strings.ToLower(ce.Message), "already exists")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

func isNoSuchCommand(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || strings.Contains(strings.ToLower(ce.Message), "no such command")) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such command")
}

func isNotImplemented(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 115 ||
		strings.Contains(strings.ToLower(ce.Message), "not implemented") ||
		strings.Contains(strings.ToLower(ce.Message), "not supported")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "not implemented") || strings.Contains(s, "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

func reportsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"content", "bytes", "updated_at"},
			"properties": bson.M{
				"_id":        bson.M{"bsonType": "string", "minLength": 1},
				"content":    bson.M{"bsonType": "string"},
				"bytes":      bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"updated_at": bson.M{"bsonType": "date"},
			},
		},
	}
}
