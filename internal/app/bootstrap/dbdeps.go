// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database dependencies for a run. Both fields are nil when
// neither backend uses MongoDB.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
}
