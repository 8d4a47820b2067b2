package topupreport

import (
	"context"
	"fmt"

	"github.com/dalemusser/topupreport/internal/app/store/reports"
	"github.com/dalemusser/topupreport/internal/app/system/loader"
	"github.com/dalemusser/topupreport/internal/app/system/records"
	"github.com/dalemusser/topupreport/internal/app/system/timeouts"
	"github.com/dalemusser/topupreport/internal/app/system/topup"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Request names the inputs and the output of one report run.
type Request struct {
	OrganizationsSource string
	MembersSource       string
	Destination         string
}

// Summary describes a finished run. Outcome carries the write result; the
// caller decides whether a failed write is fatal.
type Summary struct {
	RunID         string
	Organizations int
	Members       int
	Outcome       reports.Outcome
}

// Generator runs the report pipeline: load, aggregate, render, write.
//
// It is a thin struct over its collaborators, constructed once in bootstrap.
type Generator struct {
	Loader *loader.Loader
	Writer reports.Writer
	Log    *zap.Logger
}

// NewGenerator constructs a Generator. A nil logger is replaced with a no-op.
func NewGenerator(l *loader.Loader, w reports.Writer, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{Loader: l, Writer: w, Log: logger}
}

// Run executes one pass of the pipeline. It returns an error only when a
// source fails under the strict load policy; in that case nothing is written.
func (g *Generator) Run(ctx context.Context, req Request) (Summary, error) {
	sum := Summary{RunID: uuid.NewString()}
	log := g.Log.With(zap.String("run_id", sum.RunID))

	orgRecs, err := g.load(ctx, req.OrganizationsSource, log)
	if err != nil {
		return sum, err
	}
	memberRecs, err := g.load(ctx, req.MembersSource, log)
	if err != nil {
		return sum, err
	}

	reps := topup.Aggregate(orgRecs, memberRecs)
	for _, r := range reps {
		sum.Organizations++
		sum.Members += r.MemberCount()
	}
	content := Render(reps)

	wctx, cancel := timeouts.WithTimeout(ctx, timeouts.Write(), log, "write report")
	sum.Outcome = g.Writer.Write(wctx, content, req.Destination)
	cancel()

	if !sum.Outcome.OK() {
		log.Error("error writing report",
			zap.String("destination", req.Destination),
			zap.Error(sum.Outcome.Err))
		return sum, nil
	}
	log.Info("report written",
		zap.String("destination", req.Destination),
		zap.Int("organizations", sum.Organizations),
		zap.Int("members", sum.Members),
		zap.Int("bytes", sum.Outcome.Bytes))
	return sum, nil
}

func (g *Generator) load(ctx context.Context, name string, log *zap.Logger) ([]records.Record, error) {
	lctx, cancel := timeouts.WithTimeout(ctx, timeouts.Load(), log, "load "+name)
	defer cancel()

	recs, err := g.Loader.Load(lctx, name)
	if err != nil {
		return nil, fmt.Errorf("topupreport: %w", err)
	}
	log.Debug("records loaded", zap.String("source", name), zap.Int("records", len(recs)))
	return recs, nil
}
