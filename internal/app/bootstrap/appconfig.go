// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// Backend names accepted by source_backend and output_backend.
const (
	BackendFile  = "file"
	BackendMongo = "mongo"
)

// AppConfig holds the configuration for one report run.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). The pipeline itself never reads
// them; bootstrap turns them into sources, a loader, and a writer.
type AppConfig struct {
	// Where records come from
	SourceBackend       string // "file" or "mongo"
	DataDir             string // directory holding <name>.json files (file backend)
	OrganizationsSource string // organizations collection name (e.g., "companies")
	MembersSource       string // members collection name (e.g., "users")
	LoadPolicy          string // "lenient" (empty sequence on failure) or "strict" (abort)

	// Where the report goes
	OutputBackend string // "file" or "mongo"
	OutputPath    string // file path, or document id for the mongo backend

	// MongoDB connection configuration (only used by mongo backends)
	MongoURI               string
	MongoDatabase          string
	MongoMaxPoolSize       uint64
	MongoReportsCollection string

	// Deadlines for blocking I/O
	ConnectTimeout time.Duration
	LoadTimeout    time.Duration
	WriteTimeout   time.Duration

	LogLevel string // debug, info, warn, error
}

// NeedsMongo reports whether either backend uses MongoDB.
func (c AppConfig) NeedsMongo() bool {
	return c.SourceBackend == BackendMongo || c.OutputBackend == BackendMongo
}
