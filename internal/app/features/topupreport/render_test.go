package topupreport

import (
	"testing"

	"github.com/dalemusser/topupreport/internal/app/system/records"
	"github.com/dalemusser/topupreport/internal/app/system/topup"
	"github.com/dalemusser/topupreport/internal/domain/models"
	"github.com/dalemusser/topupreport/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

// fixtureReport is the rendering of testutil.CompaniesJSON and testutil.UsersJSON.
const fixtureReport = "\n    Company Id: 1" +
	"\n    Company Name: Blue Cat Inc." +
	"\n    Users Emailed:" +
	"\n    Users Not Emailed:" +
	"\n            Boberson, Bob, bob.boberson@test.com" +
	"\n              Previous Token Balance, 23" +
	"\n              New Token Balance 94" +
	"\n            Total amount of top ups for Blue Cat Inc.: 71" +
	"\n            " +
	"\n    Company Id: 2" +
	"\n    Company Name: Yellow Mouse Inc." +
	"\n    Users Emailed:" +
	"\n            Simpson, Edgar, edgar.simpson@notreal.com" +
	"\n              Previous Token Balance, 67" +
	"\n              New Token Balance 104" +
	"\n    Users Not Emailed:" +
	"\n            Anderson, Amy, amy.anderson@notreal.com" +
	"\n              Previous Token Balance, 10" +
	"\n              New Token Balance 47" +
	"\n            Total amount of top ups for Yellow Mouse Inc.: 74" +
	"\n            "

func TestRender_Empty(t *testing.T) {
	if got := Render(nil); got != "" {
		t.Errorf("Render(nil) = %q, want empty", got)
	}
}

func TestRender_SingleOrganization(t *testing.T) {
	reps := topup.Aggregate(
		[]records.Record{testutil.OrgRecord(2, "B", 5, true)},
		[]records.Record{testutil.MemberRecord(2, "Z", "A", "a@x.com", 10, true, true)},
	)

	want := "\n    Company Id: 2" +
		"\n    Company Name: B" +
		"\n    Users Emailed:" +
		"\n            Z, A, a@x.com" +
		"\n              Previous Token Balance, 10" +
		"\n              New Token Balance 15" +
		"\n    Users Not Emailed:" +
		"\n            Total amount of top ups for B: 5" +
		"\n            "
	if diff := cmp.Diff(want, Render(reps)); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Fixtures(t *testing.T) {
	orgs, err := records.Parse([]byte(testutil.CompaniesJSON))
	if err != nil {
		t.Fatalf("parse companies: %v", err)
	}
	members, err := records.Parse([]byte(testutil.UsersJSON))
	if err != nil {
		t.Fatalf("parse users: %v", err)
	}

	first := Render(topup.Aggregate(orgs, members))
	if diff := cmp.Diff(fixtureReport, first); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}

	// Same input, same bytes.
	for i := 0; i < 3; i++ {
		if again := Render(topup.Aggregate(orgs, members)); again != first {
			t.Fatalf("run %d rendered different output", i+2)
		}
	}
}

func TestRender_FractionalAmounts(t *testing.T) {
	reps := []models.OrganizationReport{{
		Organization: models.Organization{ID: 7, Name: "Half", TopUp: 0.5},
		TotalTopUp:   1,
		NotEmailed: []models.MemberLine{
			{LastName: "L", FirstName: "F", Email: "e", PreviousBalance: 1.25, NewBalance: 1.75},
			{LastName: "M", FirstName: "G", Email: "f", PreviousBalance: 0, NewBalance: 0.5},
		},
	}}

	want := "\n    Company Id: 7" +
		"\n    Company Name: Half" +
		"\n    Users Emailed:" +
		"\n    Users Not Emailed:" +
		"\n            L, F, e" +
		"\n              Previous Token Balance, 1.25" +
		"\n              New Token Balance 1.75" +
		"\n            M, G, f" +
		"\n              Previous Token Balance, 0" +
		"\n              New Token Balance 0.5" +
		"\n            Total amount of top ups for Half: 1" +
		"\n            "
	if diff := cmp.Diff(want, Render(reps)); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{15, "15"},
		{-3, "-3"},
		{2.5, "2.5"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1e6, "1000000"},
	}

	for _, tt := range tests {
		if got := formatAmount(tt.in); got != tt.want {
			t.Errorf("formatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
