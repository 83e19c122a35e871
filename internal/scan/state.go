package scan

import "github.com/lvargas/rosterscan/internal/model"

// State carries the committee context forward line-to-line during one
// document pass. It is created at the start of a scan and discarded at the
// end; it is only ever advanced, never rolled back.
type State struct {
	CurrentCommittee      string
	CurrentSubcommittee   string
	InSubcommitteeSection bool
	CurrentGroup          model.Group
}

// NewState returns the initial scan state. The group defaults to Majority:
// every committee listing opens with its majority members.
func NewState() *State {
	return &State{CurrentGroup: model.GroupMajority}
}

// Apply advances the state for one classified line.
func (s *State) Apply(c LineClass) {
	switch c.Kind {
	case LineSubcommitteeSection:
		if c.Committee != "" {
			s.CurrentCommittee = c.Committee
		}
		s.CurrentSubcommittee = ""
		s.InSubcommitteeSection = true

	case LineHeader:
		if s.InSubcommitteeSection && s.CurrentCommittee != "" {
			// Inside a subcommittee section an all-caps header names the
			// next subcommittee of the current committee.
			s.CurrentSubcommittee = c.Header
		} else {
			// A new main committee: subcommittee context and group reset.
			s.CurrentCommittee = c.Header
			s.CurrentSubcommittee = ""
			s.InSubcommitteeSection = false
			s.CurrentGroup = model.GroupMajority
		}

	case LineNoise:
		if c.Group != "" {
			s.CurrentGroup = c.Group
		}

	case LineBlank, LineCandidate:
		// No state change.
	}
}
