// internal/app/bootstrap/run.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/topupreport/internal/app/features/topupreport"
	"github.com/dalemusser/topupreport/internal/app/system/loader"
	"github.com/dalemusser/topupreport/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Run loads configuration, connects backends, and produces one report.
// level is adjusted to the configured log_level once config is loaded.
//
// It returns an error for anything the process should exit non-zero on:
// bad config, connect failures, a strict-policy load failure, or a failed
// write.
func Run(ctx context.Context, logger *zap.Logger, level zap.AtomicLevel) error {
	appCfg, err := LoadConfig(logger)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := ValidateConfig(appCfg, logger); err != nil {
		return err
	}
	level.SetLevel(logLevel(appCfg))
	timeouts.Configure(timeoutConfig(appCfg))

	deps, err := ConnectDB(ctx, appCfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := timeouts.WithTimeout(context.Background(), timeouts.Connect(), logger, "shutdown")
		defer cancel()
		_ = Shutdown(sctx, deps, logger)
	}()

	if err := EnsureSchema(ctx, appCfg, deps, logger); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	sum, err := Execute(ctx, appCfg, deps, logger)
	if err != nil {
		return err
	}
	logger.Info("Output saved successfully to "+sum.Outcome.Destination,
		zap.String("run_id", sum.RunID),
		zap.String("message", sum.Outcome.Message))
	return nil
}

// Execute wires the configured source, loader, and writer and runs the
// report pipeline once. A failed write is returned as an error.
func Execute(ctx context.Context, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (topupreport.Summary, error) {
	policy, err := loader.ParsePolicy(appCfg.LoadPolicy)
	if err != nil {
		return topupreport.Summary{}, err
	}
	src, err := BuildSource(appCfg, deps)
	if err != nil {
		return topupreport.Summary{}, err
	}
	w, err := BuildWriter(appCfg, deps)
	if err != nil {
		return topupreport.Summary{}, err
	}

	gen := topupreport.NewGenerator(loader.New(src, policy, logger), w, logger)
	sum, err := gen.Run(ctx, topupreport.Request{
		OrganizationsSource: appCfg.OrganizationsSource,
		MembersSource:       appCfg.MembersSource,
		Destination:         appCfg.OutputPath,
	})
	if err != nil {
		return sum, err
	}
	if !sum.Outcome.OK() {
		return sum, fmt.Errorf("error writing to %s: %w", sum.Outcome.Destination, sum.Outcome.Err)
	}
	return sum, nil
}
