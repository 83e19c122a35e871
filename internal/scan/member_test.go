package scan

import (
	"testing"

	"github.com/lvargas/rosterscan/internal/model"
)

func TestMemberParser_NumberedEntry(t *testing.T) {
	p := NewMemberParser()
	state := &State{CurrentCommittee: "RULES", CurrentGroup: model.GroupMajority}

	records := p.Parse("3. Pete Sessions, TX", state, 12)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.Committee != "RULES" {
		t.Errorf("committee = %q", rec.Committee)
	}
	if rec.Subcommittee != "" {
		t.Errorf("subcommittee = %q, expected empty", rec.Subcommittee)
	}
	if rec.Rank != 3 {
		t.Errorf("rank = %d, expected 3", rec.Rank)
	}
	if rec.Group != model.GroupMajority {
		t.Errorf("group = %q", rec.Group)
	}
	if rec.Member.Name != "Pete Sessions" || rec.Member.State != "TX" {
		t.Errorf("member = %+v", rec.Member)
	}
	if rec.Page != 12 {
		t.Errorf("page = %d", rec.Page)
	}
}

func TestMemberParser_MultipleNumberedOnOneLine(t *testing.T) {
	p := NewMemberParser()
	state := &State{CurrentCommittee: "RULES", CurrentGroup: model.GroupMinority}

	records := p.Parse("7. Jim McGovern, MA8. Tom Cole, OK", state, 5)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	if records[0].Rank != 7 || records[0].Member.Name != "Jim McGovern" || records[0].Member.State != "MA" {
		t.Errorf("first record = %+v", records[0])
	}
	if records[1].Rank != 8 || records[1].Member.Name != "Tom Cole" || records[1].Member.State != "OK" {
		t.Errorf("second record = %+v", records[1])
	}

	// Numbered entries take the group from the scan state
	for _, rec := range records {
		if rec.Group != model.GroupMinority {
			t.Errorf("expected Minority from state, got %q", rec.Group)
		}
	}
}

func TestMemberParser_NumberedNormalizesWhitespace(t *testing.T) {
	p := NewMemberParser()
	state := &State{CurrentCommittee: "RULES", CurrentGroup: model.GroupMajority}

	records := p.Parse("1. Pete   Sessions, TX", state, 1)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Member.Name != "Pete Sessions" {
		t.Errorf("name not normalized: %q", records[0].Member.Name)
	}
}

func TestMemberParser_UnnumberedTwoColumnLine(t *testing.T) {
	p := NewMemberParser()
	state := &State{
		CurrentCommittee:      "RULES",
		CurrentSubcommittee:   "LEGISLATIVE AND BUDGET PROCESS",
		InSubcommitteeSection: true,
		CurrentGroup:          model.GroupMajority,
	}

	records := p.Parse("Pete Sessions, TXJuan Vargas, CA", state, 23)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first, second := records[0], records[1]
	if first.Member.Name != "Pete Sessions" || first.Member.State != "TX" {
		t.Errorf("first member = %+v", first.Member)
	}
	if second.Member.Name != "Juan Vargas" || second.Member.State != "CA" {
		t.Errorf("second member = %+v", second.Member)
	}

	// Left column is majority, right column minority
	if first.Group != model.GroupMajority {
		t.Errorf("first group = %q, expected Majority", first.Group)
	}
	if second.Group != model.GroupMinority {
		t.Errorf("second group = %q, expected Minority", second.Group)
	}

	for _, rec := range records {
		if rec.Rank != model.UnrankedPosition {
			t.Errorf("rank = %d, expected unranked", rec.Rank)
		}
		if rec.Subcommittee != "LEGISLATIVE AND BUDGET PROCESS" {
			t.Errorf("subcommittee = %q", rec.Subcommittee)
		}
	}
}

func TestMemberParser_UnnumberedRequiresSubcommittee(t *testing.T) {
	p := NewMemberParser()
	state := &State{CurrentCommittee: "RULES", CurrentGroup: model.GroupMajority}

	records := p.Parse("Pete Sessions, TX", state, 1)
	if len(records) != 0 {
		t.Errorf("unnumbered rule must not run outside a subcommittee, got %d records", len(records))
	}
}

func TestMemberParser_NumberedWinsOverUnnumbered(t *testing.T) {
	p := NewMemberParser()
	state := &State{
		CurrentCommittee:    "RULES",
		CurrentSubcommittee: "RULES OF THE HOUSE",
		CurrentGroup:        model.GroupMinority,
	}

	records := p.Parse("2. Pete Sessions, TX", state, 1)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Rank != 2 {
		t.Errorf("numbered rule must win, rank = %d", records[0].Rank)
	}
	if records[0].Group != model.GroupMinority {
		t.Errorf("numbered rule takes group from state, got %q", records[0].Group)
	}
}

func TestMemberParser_TrailingQualifierIgnored(t *testing.T) {
	p := NewMemberParser()
	state := &State{
		CurrentCommittee:    "RULES",
		CurrentSubcommittee: "LEGISLATIVE AND BUDGET PROCESS",
		CurrentGroup:        model.GroupMajority,
	}

	records := p.Parse("Pete Sessions, TX, Chairman", state, 1)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Member.Name != "Pete Sessions" || records[0].Member.State != "TX" {
		t.Errorf("member = %+v", records[0].Member)
	}
}

func TestMemberParser_NonEntryLinesYieldNothing(t *testing.T) {
	p := NewMemberParser()
	state := &State{CurrentCommittee: "RULES", CurrentSubcommittee: "SOME SUB", CurrentGroup: model.GroupMajority}

	for _, line := range []string{
		"",
		"(Prepared under the direction of the Clerk)",
		"123 456 789",
	} {
		if records := p.Parse(line, state, 1); len(records) != 0 {
			t.Errorf("%q: expected no records, got %d", line, len(records))
		}
	}
}

func TestRepairConcatenation(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"Pete SessionsJuan Vargas", "Pete Sessions Juan Vargas"},
		{"Pete Sessions", "Pete Sessions"},
		{"McGovern", "Mc Govern"}, // Known repair overreach on interior capitals
		{"OROURKE", "OROURKE"},    // No case transition, not repairable
	}

	for _, tt := range tests {
		if got := RepairConcatenation(tt.in); got != tt.out {
			t.Errorf("RepairConcatenation(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"  Pete   Sessions ", "Pete Sessions"},
		{"C. A. Dutch\tRuppersberger", "C. A. Dutch Ruppersberger"},
		{"Bonnie Watson-Coleman", "Bonnie Watson-Coleman"},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.out {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}
