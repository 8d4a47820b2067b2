// Package loader turns a named data source into a sequence of records.
//
// The failure policy is chosen once per run. Lenient loading logs the problem
// and yields an empty sequence so the pipeline still produces a (possibly
// empty) report; strict loading hands the error back to the caller.
package loader

import (
	"context"
	"fmt"
	"strings"

	"github.com/dalemusser/topupreport/internal/app/store/sources"
	"github.com/dalemusser/topupreport/internal/app/system/records"
	"go.uber.org/zap"
)

// Policy selects what Load does when a source cannot be fetched or parsed.
type Policy string

const (
	Lenient Policy = "lenient"
	Strict  Policy = "strict"
)

// ParsePolicy maps a config value to a Policy. Blank means Lenient.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", Lenient:
		return Lenient, nil
	case Strict:
		return Strict, nil
	default:
		return "", fmt.Errorf("unknown load policy %q (want %q or %q)", s, Lenient, Strict)
	}
}

// Loader fetches raw content from a Source and parses it into records.
type Loader struct {
	Source sources.Source
	Policy Policy
	Log    *zap.Logger
}

// New constructs a Loader. A nil logger is replaced with a no-op logger.
func New(src sources.Source, policy Policy, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{Source: src, Policy: policy, Log: logger}
}

// Load reads and parses the named collection.
//
// Under Lenient, any fetch or parse failure is logged at error level and an
// empty, non-nil slice is returned with a nil error. Under Strict, the failure
// is returned wrapped with the source name.
func (l *Loader) Load(ctx context.Context, name string) ([]records.Record, error) {
	recs, err := l.load(ctx, name)
	if err == nil {
		l.Log.Debug("source loaded", zap.String("source", name), zap.Int("records", len(recs)))
		return recs, nil
	}

	if l.Policy == Strict {
		return nil, fmt.Errorf("loader: load %q: %w", name, err)
	}
	l.Log.Error("error reading or parsing source; continuing with no records",
		zap.String("source", name),
		zap.Error(err))
	return []records.Record{}, nil
}

func (l *Loader) load(ctx context.Context, name string) ([]records.Record, error) {
	content, err := l.Source.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	return records.Parse(content)
}
