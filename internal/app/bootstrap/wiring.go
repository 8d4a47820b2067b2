// internal/app/bootstrap/wiring.go
package bootstrap

import (
	"errors"

	"github.com/dalemusser/topupreport/internal/app/store/reports"
	"github.com/dalemusser/topupreport/internal/app/store/sources"
)

var errNoMongo = errors.New("mongo backend selected but no database connection")

// BuildSource returns the record source selected by source_backend.
func BuildSource(appCfg AppConfig, deps DBDeps) (sources.Source, error) {
	if appCfg.SourceBackend == BackendMongo {
		if deps.MongoDatabase == nil {
			return nil, errNoMongo
		}
		return sources.NewMongo(deps.MongoDatabase), nil
	}
	return sources.NewFile(appCfg.DataDir), nil
}

// BuildWriter returns the report writer selected by output_backend.
func BuildWriter(appCfg AppConfig, deps DBDeps) (reports.Writer, error) {
	if appCfg.OutputBackend == BackendMongo {
		if deps.MongoDatabase == nil {
			return nil, errNoMongo
		}
		return reports.NewMongo(deps.MongoDatabase, appCfg.MongoReportsCollection), nil
	}
	return reports.NewFile(), nil
}
