package reports_test

import (
	"testing"

	"github.com/dalemusser/topupreport/internal/app/store/reports"
	"github.com/dalemusser/topupreport/internal/testutil"
	"go.uber.org/zap"
)

func TestMongo_WriteAndReplace(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := reports.EnsureCollection(ctx, db, reports.DefaultCollection, zap.NewNop()); err != nil {
		t.Fatalf("EnsureCollection failed: %v", err)
	}
	w := reports.NewMongo(db, reports.DefaultCollection)

	if out := w.Write(ctx, "first", "output.txt"); !out.OK() {
		t.Fatalf("first Write failed: %v", out.Err)
	}
	out := w.Write(ctx, "second", "output.txt")
	if !out.OK() {
		t.Fatalf("second Write failed: %v", out.Err)
	}
	if out.Message != reports.SuccessMessage {
		t.Errorf("expected success message, got %q", out.Message)
	}

	doc, err := w.Get(ctx, "output.txt")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if doc.Content != "second" || doc.Bytes != len("second") {
		t.Errorf("expected replaced content, got %+v", doc)
	}

	n, err := db.Collection(reports.DefaultCollection).CountDocuments(ctx, map[string]any{})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected one document per destination, got %d", n)
	}
}

func TestEnsureCollection_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 2; i++ {
		if err := reports.EnsureCollection(ctx, db, "", nil); err != nil {
			t.Fatalf("EnsureCollection call %d failed: %v", i+1, err)
		}
	}
}
