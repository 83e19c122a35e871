package model

// Signal is a data-quality diagnostic attached to a scan result.
// Signals describe known precision limits of the extraction (positional
// group attribution, name-repair misses); they never fail a scan.
type Signal struct {
	Type        SignalType             `json:"type"`
	Severity    SignalSeverity         `json:"severity"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data,omitempty"` // Transparent inputs behind the signal
}

// SignalType classifies the diagnostic
type SignalType string

const (
	SignalGroupAmbiguity   SignalType = "group_ambiguity"   // Positional majority/minority heuristic applied
	SignalNameRepair       SignalType = "name_repair"       // Suspected unrepaired name concatenation
	SignalEmptyPages       SignalType = "empty_pages"       // Pages skipped for lacking text
	SignalIndexConsistency SignalType = "index_consistency" // Keys present in one index, missing from another
	SignalCoverage         SignalType = "coverage"          // Committees with no parsed members
)

// SignalSeverity indicates the importance of the signal
type SignalSeverity string

const (
	SeverityInfo     SignalSeverity = "info"
	SeverityWarning  SignalSeverity = "warning"
	SeverityCritical SignalSeverity = "critical"
)
