package topupreport

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dalemusser/topupreport/internal/app/store/reports"
	"github.com/dalemusser/topupreport/internal/app/store/sources"
	"github.com/dalemusser/topupreport/internal/app/system/loader"
	"github.com/dalemusser/topupreport/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

// memSource serves fixed content per name.
type memSource map[string]string

func (m memSource) Fetch(_ context.Context, name string) ([]byte, error) {
	s, ok := m[name]
	if !ok {
		return nil, sources.ErrNotFound
	}
	return []byte(s), nil
}

// memWriter records what it was asked to write and fails when err is set.
type memWriter struct {
	calls   int
	content string
	dest    string
	err     error
}

func (w *memWriter) Write(_ context.Context, content, destination string) reports.Outcome {
	w.calls++
	w.content = content
	w.dest = destination
	if w.err != nil {
		return reports.Outcome{Destination: destination, Err: w.err}
	}
	return reports.Outcome{Destination: destination, Bytes: len(content), Message: reports.SuccessMessage}
}

var fixtureRequest = Request{
	OrganizationsSource: "companies",
	MembersSource:       "users",
	Destination:         "output.txt",
}

func fixtureSource() memSource {
	return memSource{"companies": testutil.CompaniesJSON, "users": testutil.UsersJSON}
}

func TestGenerator_Run(t *testing.T) {
	w := &memWriter{}
	g := NewGenerator(loader.New(fixtureSource(), loader.Strict, nil), w, zap.NewNop())

	sum, err := g.Run(context.Background(), fixtureRequest)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !sum.Outcome.OK() {
		t.Fatalf("expected successful outcome, got %v", sum.Outcome.Err)
	}
	if sum.RunID == "" {
		t.Error("expected a run id")
	}
	if sum.Organizations != 2 || sum.Members != 3 {
		t.Errorf("expected 2 organizations / 3 members, got %d / %d", sum.Organizations, sum.Members)
	}
	if w.dest != "output.txt" {
		t.Errorf("expected destination output.txt, got %q", w.dest)
	}
	if diff := cmp.Diff(fixtureReport, w.content); diff != "" {
		t.Errorf("written report mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerator_RunFiles(t *testing.T) {
	dataDir := t.TempDir()
	for name, body := range fixtureSource() {
		if err := os.WriteFile(filepath.Join(dataDir, name+".json"), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	dest := filepath.Join(t.TempDir(), "output", "output.txt")

	g := NewGenerator(loader.New(sources.NewFile(dataDir), loader.Lenient, nil), reports.NewFile(), nil)
	req := fixtureRequest
	req.Destination = dest

	sum, err := g.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !sum.Outcome.OK() {
		t.Fatalf("write failed: %v", sum.Outcome.Err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if diff := cmp.Diff(fixtureReport, string(got)); diff != "" {
		t.Errorf("report file mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerator_EmptyInput(t *testing.T) {
	w := &memWriter{}
	src := memSource{"companies": "[]", "users": "[]"}
	g := NewGenerator(loader.New(src, loader.Strict, nil), w, nil)

	sum, err := g.Run(context.Background(), fixtureRequest)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !sum.Outcome.OK() || w.calls != 1 {
		t.Fatalf("expected one successful write, got calls=%d err=%v", w.calls, sum.Outcome.Err)
	}
	if w.content != "" {
		t.Errorf("expected empty report, got %q", w.content)
	}
}

func TestGenerator_LenientUnparsableSource(t *testing.T) {
	w := &memWriter{}
	src := memSource{"companies": testutil.CompaniesJSON, "users": "non-json data"}
	g := NewGenerator(loader.New(src, loader.Lenient, nil), w, nil)

	sum, err := g.Run(context.Background(), fixtureRequest)
	if err != nil {
		t.Fatalf("lenient Run returned error: %v", err)
	}
	if w.calls != 1 || w.content != "" {
		t.Errorf("expected an empty report to be written, got calls=%d content=%q", w.calls, w.content)
	}
	if sum.Organizations != 0 {
		t.Errorf("expected no organizations without members, got %d", sum.Organizations)
	}
}

func TestGenerator_StrictUnparsableSource(t *testing.T) {
	w := &memWriter{}
	src := memSource{"companies": "non-json data", "users": testutil.UsersJSON}
	g := NewGenerator(loader.New(src, loader.Strict, nil), w, nil)

	_, err := g.Run(context.Background(), fixtureRequest)
	if err == nil {
		t.Fatal("expected strict Run to fail")
	}
	if w.calls != 0 {
		t.Errorf("expected nothing to be written, got %d writes", w.calls)
	}
}

func TestGenerator_WriteFailure(t *testing.T) {
	writeErr := errors.New("Failed to write")
	w := &memWriter{err: writeErr}
	g := NewGenerator(loader.New(fixtureSource(), loader.Strict, nil), w, nil)

	sum, err := g.Run(context.Background(), fixtureRequest)
	if err != nil {
		t.Fatalf("write failures are reported through the outcome, got error %v", err)
	}
	if sum.Outcome.OK() {
		t.Fatal("expected failed outcome")
	}
	if !errors.Is(sum.Outcome.Err, writeErr) {
		t.Errorf("expected outcome to carry the write error, got %v", sum.Outcome.Err)
	}
}
