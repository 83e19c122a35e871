package scan

import (
	"sort"

	"github.com/lvargas/rosterscan/internal/model"
)

// Aggregator accumulates assignment records into the derived roster views:
// committee rosters, subcommittee rosters, per-member assignment lists and
// the deduplicated member set. Member-list ordering is insertion order, so
// the document's own ranking survives for numbered entries.
//
// One aggregator normally serves one document pass; sharing one across
// documents unifies members across them, which is the caller's policy call.
type Aggregator struct {
	committees    map[string][]string
	subcommittees map[string]map[string][]string
	assignments   map[string][]model.Assignment
	memberSeen    map[string]bool
	records       []model.Assignment
}

// NewAggregator creates an empty aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{
		committees:    make(map[string][]string),
		subcommittees: make(map[string]map[string][]string),
		assignments:   make(map[string][]model.Assignment),
		memberSeen:    make(map[string]bool),
	}
}

// Record adds one assignment to every view. A record lands in the
// subcommittee index when it carries a subcommittee, in the main committee
// index otherwise; the member set and per-member list always update.
func (a *Aggregator) Record(rec model.Assignment) {
	key := rec.Member.Key()

	a.memberSeen[key] = true
	a.assignments[key] = append(a.assignments[key], rec)
	a.records = append(a.records, rec)

	if rec.Subcommittee != "" {
		subs, ok := a.subcommittees[rec.Committee]
		if !ok {
			subs = make(map[string][]string)
			a.subcommittees[rec.Committee] = subs
		}
		subs[rec.Subcommittee] = append(subs[rec.Subcommittee], key)
		return
	}

	a.committees[rec.Committee] = append(a.committees[rec.Committee], key)
}

// Len returns the number of records accumulated so far
func (a *Aggregator) Len() int {
	return len(a.records)
}

// Finalize snapshots the four views plus the ordered record list into a
// Result. The member set serializes sorted; everything else stays in
// insertion order. The aggregator itself is left untouched, so finalizing
// twice yields equal results.
func (a *Aggregator) Finalize() *model.Result {
	members := make([]string, 0, len(a.memberSeen))
	for key := range a.memberSeen {
		members = append(members, key)
	}
	sort.Strings(members)

	committees := make(map[string][]string, len(a.committees))
	for name, keys := range a.committees {
		committees[name] = append([]string(nil), keys...)
	}

	subcommittees := make(map[string]map[string][]string, len(a.subcommittees))
	for name, subs := range a.subcommittees {
		copied := make(map[string][]string, len(subs))
		for sub, keys := range subs {
			copied[sub] = append([]string(nil), keys...)
		}
		subcommittees[name] = copied
	}

	assignments := make(map[string][]model.Assignment, len(a.assignments))
	for key, recs := range a.assignments {
		assignments[key] = append([]model.Assignment(nil), recs...)
	}

	return &model.Result{
		Committees:        committees,
		Subcommittees:     subcommittees,
		Members:           members,
		MemberAssignments: assignments,
		Records:           append([]model.Assignment(nil), a.records...),
	}
}
