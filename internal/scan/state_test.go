package scan

import (
	"testing"

	"github.com/lvargas/rosterscan/internal/model"
)

func TestState_InitialDefaults(t *testing.T) {
	s := NewState()

	if s.CurrentCommittee != "" || s.CurrentSubcommittee != "" {
		t.Error("new state must have no committee context")
	}
	if s.InSubcommitteeSection {
		t.Error("new state must not be in a subcommittee section")
	}
	if s.CurrentGroup != model.GroupMajority {
		t.Errorf("new state group must be Majority, got %q", s.CurrentGroup)
	}
}

func TestState_SubcommitteeSectionTransition(t *testing.T) {
	s := NewState()
	c := NewClassifier()

	s.Apply(c.Classify("SUBCOMMITTEES OF THE COMMITTEE ON RULES"))

	if s.CurrentCommittee != "RULES" {
		t.Errorf("expected committee RULES, got %q", s.CurrentCommittee)
	}
	if !s.InSubcommitteeSection {
		t.Error("expected in-subcommittee-section flag set")
	}
	if s.CurrentSubcommittee != "" {
		t.Errorf("expected no current subcommittee yet, got %q", s.CurrentSubcommittee)
	}
}

func TestState_HeaderDisambiguation(t *testing.T) {
	s := NewState()
	c := NewClassifier()

	// Outside a subcommittee section a header is a new main committee
	s.Apply(c.Classify("COMMITTEE ON RULES"))
	if s.CurrentCommittee != "COMMITTEE ON RULES" {
		t.Fatalf("expected new main committee, got %q", s.CurrentCommittee)
	}

	// Inside one it names the next subcommittee
	s.Apply(c.Classify("SUBCOMMITTEES OF THE COMMITTEE ON RULES"))
	s.Apply(c.Classify("LEGISLATIVE AND BUDGET PROCESS"))
	if s.CurrentSubcommittee != "LEGISLATIVE AND BUDGET PROCESS" {
		t.Errorf("expected subcommittee set, got %q", s.CurrentSubcommittee)
	}
	if s.CurrentCommittee != "RULES" {
		t.Errorf("owning committee must be unchanged, got %q", s.CurrentCommittee)
	}
}

func TestState_NewCommitteeResetsGroup(t *testing.T) {
	s := NewState()
	c := NewClassifier()

	s.Apply(c.Classify("COMMITTEE ON RULES"))
	s.Apply(c.Classify("MINORITY MEMBERS"))
	if s.CurrentGroup != model.GroupMinority {
		t.Fatalf("group marker not applied")
	}

	// A fresh main-committee header resets the group to Majority
	s.Apply(c.Classify("COMMITTEE ON AGRICULTURE"))

	if s.CurrentCommittee != "COMMITTEE ON AGRICULTURE" {
		t.Errorf("expected new committee, got %q", s.CurrentCommittee)
	}
	if s.CurrentSubcommittee != "" {
		t.Errorf("subcommittee must stay empty, got %q", s.CurrentSubcommittee)
	}
	if s.CurrentGroup != model.GroupMajority {
		t.Errorf("group must reset to Majority, got %q", s.CurrentGroup)
	}
}

func TestState_NextSectionHeaderResetsSubcommittee(t *testing.T) {
	s := NewState()
	c := NewClassifier()

	s.Apply(c.Classify("SUBCOMMITTEES OF THE COMMITTEE ON RULES"))
	s.Apply(c.Classify("LEGISLATIVE AND BUDGET PROCESS"))
	if s.CurrentSubcommittee == "" {
		t.Fatal("subcommittee not set")
	}

	// In the subcommittee part of the document, the next committee opens
	// with its own section header, which clears the subcommittee context.
	s.Apply(c.Classify("SUBCOMMITTEES OF THE COMMITTEE ON APPROPRIATIONS"))

	if s.CurrentCommittee != "APPROPRIATIONS" {
		t.Errorf("expected APPROPRIATIONS, got %q", s.CurrentCommittee)
	}
	if s.CurrentSubcommittee != "" {
		t.Errorf("subcommittee must reset, got %q", s.CurrentSubcommittee)
	}
	if !s.InSubcommitteeSection {
		t.Error("section flag must remain set")
	}
}

func TestState_GroupMarkerOnly(t *testing.T) {
	s := NewState()
	c := NewClassifier()

	s.Apply(c.Classify("COMMITTEE ON RULES"))
	s.Apply(c.Classify("MINORITY MEMBERS"))

	if s.CurrentGroup != model.GroupMinority {
		t.Errorf("expected Minority after marker, got %q", s.CurrentGroup)
	}
	if s.CurrentCommittee != "COMMITTEE ON RULES" {
		t.Error("marker must not change committee context")
	}
}

func TestState_CandidateAndBlankAreNoOps(t *testing.T) {
	s := NewState()
	c := NewClassifier()

	s.Apply(c.Classify("COMMITTEE ON RULES"))
	before := *s

	s.Apply(c.Classify("3. Pete Sessions, TX"))
	s.Apply(c.Classify(""))
	s.Apply(c.Classify("STANDING COMMITTEES"))

	if *s != before {
		t.Errorf("state changed by non-structural lines: %+v != %+v", *s, before)
	}
}
