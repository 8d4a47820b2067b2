// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/dalemusser/topupreport/internal/app/store/reports"
	"github.com/dalemusser/topupreport/internal/app/system/loader"
	"github.com/dalemusser/topupreport/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// appConfigKeys defines the configuration keys for the report tool.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: data_dir, output_path, etc.
//   - Environment variables: TOPUP_DATA_DIR, TOPUP_OUTPUT_PATH, etc.
//   - Command-line flags: --data_dir, --output_path, etc.
var appConfigKeys = []config.AppKey{
	{Name: "source_backend", Default: BackendFile, Desc: "Record source: 'file' or 'mongo'"},
	{Name: "data_dir", Default: "./data", Desc: "Directory holding <name>.json source files"},
	{Name: "organizations_source", Default: "companies", Desc: "Organizations collection name"},
	{Name: "members_source", Default: "users", Desc: "Members collection name"},
	{Name: "load_policy", Default: string(loader.Lenient), Desc: "On unreadable source: 'lenient' (continue with no records) or 'strict' (abort)"},

	{Name: "output_backend", Default: BackendFile, Desc: "Report destination: 'file' or 'mongo'"},
	{Name: "output_path", Default: "./output/output.txt", Desc: "Report file path (or document id for mongo)"},

	// MongoDB (only when a backend is 'mongo')
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "topup_report", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 10, Desc: "MongoDB max connection pool size (default: 10)"},
	{Name: "mongo_reports_collection", Default: reports.DefaultCollection, Desc: "Collection for reports written by the mongo backend"},

	// Timeouts
	{Name: "connect_timeout", Default: "10s", Desc: "Database connect timeout (e.g., 10s)"},
	{Name: "load_timeout", Default: "30s", Desc: "Per-source load timeout (e.g., 30s)"},
	{Name: "write_timeout", Default: "15s", Desc: "Report write timeout (e.g., 15s)"},

	{Name: "log_level", Default: "info", Desc: "Log level: debug, info, warn, error"},
}

// LoadConfig loads the app configuration.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (TOPUP_* for app keys)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (AppConfig, error) {
	_, appValues, err := config.LoadWithAppConfig(logger, "TOPUP", appConfigKeys)
	if err != nil {
		return AppConfig{}, err
	}

	appCfg := AppConfig{
		SourceBackend:       normalizeBackend(appValues.String("source_backend")),
		DataDir:             appValues.String("data_dir"),
		OrganizationsSource: appValues.String("organizations_source"),
		MembersSource:       appValues.String("members_source"),
		LoadPolicy:          appValues.String("load_policy"),

		OutputBackend: normalizeBackend(appValues.String("output_backend")),
		OutputPath:    appValues.String("output_path"),

		MongoURI:               appValues.String("mongo_uri"),
		MongoDatabase:          appValues.String("mongo_database"),
		MongoMaxPoolSize:       uint64(appValues.Int("mongo_max_pool_size")),
		MongoReportsCollection: appValues.String("mongo_reports_collection"),

		ConnectTimeout: appValues.Duration("connect_timeout", timeouts.DefaultConnect),
		LoadTimeout:    appValues.Duration("load_timeout", timeouts.DefaultLoad),
		WriteTimeout:   appValues.Duration("write_timeout", timeouts.DefaultWrite),

		LogLevel: appValues.String("log_level"),
	}
	return appCfg, nil
}

// ValidateConfig checks enumerations and required fields before any backend
// is touched. The Mongo URI is only checked when a Mongo backend is selected.
func ValidateConfig(appCfg AppConfig, logger *zap.Logger) error {
	for key, v := range map[string]string{
		"source_backend": appCfg.SourceBackend,
		"output_backend": appCfg.OutputBackend,
	} {
		if v != BackendFile && v != BackendMongo {
			return fmt.Errorf("%s must be %q or %q, got %q", key, BackendFile, BackendMongo, v)
		}
	}
	if _, err := loader.ParsePolicy(appCfg.LoadPolicy); err != nil {
		return err
	}
	if strings.TrimSpace(appCfg.OrganizationsSource) == "" || strings.TrimSpace(appCfg.MembersSource) == "" {
		return fmt.Errorf("organizations_source and members_source must be set")
	}
	if strings.TrimSpace(appCfg.OutputPath) == "" {
		return fmt.Errorf("output_path must be set")
	}
	if _, err := zapcore.ParseLevel(appCfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	if appCfg.NeedsMongo() {
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if strings.TrimSpace(appCfg.MongoDatabase) == "" {
			return fmt.Errorf("mongo_database must be set when a mongo backend is used")
		}
	}
	return nil
}

func normalizeBackend(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return BackendFile
	}
	return s
}

// timeoutConfig maps the configured deadlines onto the timeouts package.
func timeoutConfig(appCfg AppConfig) timeouts.Config {
	return timeouts.Config{
		Connect: appCfg.ConnectTimeout,
		Load:    appCfg.LoadTimeout,
		Write:   appCfg.WriteTimeout,
	}
}

// logLevel parses the configured level, falling back to info.
func logLevel(appCfg AppConfig) zapcore.Level {
	lvl, err := zapcore.ParseLevel(appCfg.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
