package validate

import (
	"context"
	"testing"

	"github.com/lvargas/rosterscan/internal/model"
)

func assignment(name, state string) model.Assignment {
	return model.Assignment{
		Committee: "RULES",
		Rank:      1,
		Group:     model.GroupMajority,
		Member:    model.Member{Name: name, State: state},
	}
}

func TestValidate_CleanRecords(t *testing.T) {
	v := NewValidator(4)
	records := []model.Assignment{
		assignment("Pete Sessions", "TX"),
		assignment("Jim McGovern", "MA"),
	}

	results := v.Validate(context.Background(), records)

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, res := range results {
		if !res.Valid {
			t.Errorf("%s: expected valid, issues: %v", res.Member.Name, res.Issues)
		}
	}
}

func TestValidate_PreservesInputOrder(t *testing.T) {
	v := NewValidator(2)

	names := []string{"Alpha One", "Beta Two", "Gamma Three", "Delta Four", "Epsilon Five"}
	records := make([]model.Assignment, len(names))
	for i, name := range names {
		records[i] = assignment(name, "TX")
	}

	results := v.Validate(context.Background(), records)

	for i, res := range results {
		if res.Member.Name != names[i] {
			t.Errorf("result %d: got %q, want %q", i, res.Member.Name, names[i])
		}
	}
}

func TestValidate_UnknownState(t *testing.T) {
	v := NewValidator(1)

	results := v.Validate(context.Background(), []model.Assignment{assignment("Pete Sessions", "ZZ")})

	if results[0].Valid {
		t.Error("ZZ is not a state code")
	}
	if len(results[0].Issues) != 1 {
		t.Errorf("issues: %v", results[0].Issues)
	}
}

func TestValidate_Empty(t *testing.T) {
	v := NewValidator(4)

	results := v.Validate(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("got %d results for empty input", len(results))
	}
}

func TestValidate_CancelledContext(t *testing.T) {
	v := NewValidator(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := v.Validate(ctx, []model.Assignment{
		assignment("Pete Sessions", "TX"),
		assignment("Tom Cole", "OK"),
	})

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}

func TestValidateRecord_NameIssues(t *testing.T) {
	tests := []struct {
		name   string
		member string
		issues int
	}{
		{"clean", "Pete Sessions", 0},
		{"single token", "Sessions", 1},
		{"digits", "Pete Sessi0ns", 1},
		{"lowercase start", "pete Sessions", 1},
		{"empty", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validateRecord(assignment(tt.member, "TX"))
			if len(res.Issues) != tt.issues {
				t.Errorf("issues = %v, want %d", res.Issues, tt.issues)
			}
		})
	}
}

func TestValidateRecord_MissingCommittee(t *testing.T) {
	rec := assignment("Pete Sessions", "TX")
	rec.Committee = ""

	res := validateRecord(rec)
	if res.Valid {
		t.Error("record without committee context must not validate")
	}
}

func TestKnownState(t *testing.T) {
	for _, code := range []string{"TX", "CA", "DC", "PR"} {
		if !KnownState(code) {
			t.Errorf("%s should be known", code)
		}
	}
	for _, code := range []string{"ZZ", "tx", ""} {
		if KnownState(code) {
			t.Errorf("%s should not be known", code)
		}
	}
}
