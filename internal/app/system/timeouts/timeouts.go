// Package timeouts provides the deadlines applied to blocking I/O in a
// report run.
//
// Values can be set at startup with Configure(). If not configured, the
// defaults are used.
//
//   - Connect: establishing and pinging the MongoDB client
//   - Load: fetching one source collection
//   - Write: persisting the rendered report
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultConnect = 10 * time.Second
	DefaultLoad    = 30 * time.Second
	DefaultWrite   = 15 * time.Second
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

var (
	connect = DefaultConnect
	load    = DefaultLoad
	write   = DefaultWrite
)

// Connect returns the timeout for connecting to the database.
func Connect() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return connect
}

// Load returns the timeout for fetching a single source collection.
func Load() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return load
}

// Write returns the timeout for writing the report.
func Write() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return write
}

// Config holds timeout configuration values.
// Zero values are ignored (current values are kept).
type Config struct {
	Connect time.Duration
	Load    time.Duration
	Write   time.Duration
}

// Configure sets custom timeout values. Zero or negative values are ignored.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Connect > 0 {
		connect = cfg.Connect
	}
	if cfg.Load > 0 {
		load = cfg.Load
	}
	if cfg.Write > 0 {
		write = cfg.Write
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	connect = DefaultConnect
	load = DefaultLoad
	write = DefaultWrite
}

// Current returns the current timeout configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Connect: connect, Load: load, Write: write}
}

// WithTimeout creates a context with timeout and returns a cancel function that
// logs a warning if the context ended because the deadline passed.
//
// Example:
//
//	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Load(), g.Log, "load users")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
