// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/topupreport/internal/app/store/reports"
	"github.com/dalemusser/topupreport/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ConnectDB connects to MongoDB when a backend needs it and verifies the
// connection with a ping. It returns empty DBDeps otherwise.
func ConnectDB(ctx context.Context, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if !appCfg.NeedsMongo() {
		return DBDeps{}, nil
	}

	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Connect(), logger, "mongo connect")
	defer cancel()

	opts := options.Client().ApplyURI(appCfg.MongoURI)
	if appCfg.MongoMaxPoolSize > 0 {
		opts.SetMaxPoolSize(appCfg.MongoMaxPoolSize)
	}
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema prepares the reports collection when reports go to MongoDB.
func EnsureSchema(ctx context.Context, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.OutputBackend != BackendMongo || deps.MongoDatabase == nil {
		return nil
	}
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Connect(), logger, "ensure reports collection")
	defer cancel()
	return reports.EnsureCollection(ctx, deps.MongoDatabase, appCfg.MongoReportsCollection, logger)
}
