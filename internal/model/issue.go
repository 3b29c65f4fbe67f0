package model

// IssueKind categorises an audit finding.
type IssueKind string

const (
	// IssueMissingTranslation marks a static key absent from the catalog.
	IssueMissingTranslation IssueKind = "missing_translation"
	// IssueEmptyValue marks a catalog value that is blank after trimming.
	IssueEmptyValue IssueKind = "empty_value"
	// IssueDynamicKey marks a key built at runtime that needs manual review.
	IssueDynamicKey IssueKind = "dynamic_key"
	// IssueHardcodedText marks literal markup text that was never translated.
	IssueHardcodedText IssueKind = "hardcoded_text"
)

// IssueKinds lists every kind in report order.
var IssueKinds = []IssueKind{
	IssueMissingTranslation,
	IssueEmptyValue,
	IssueDynamicKey,
	IssueHardcodedText,
}

// Severity ranks an issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is one audit finding. Line is 0 when no source line applies.
type Issue struct {
	Kind     IssueKind `json:"kind" yaml:"kind"`
	Severity Severity  `json:"severity" yaml:"severity"`
	Path     Path      `json:"path" yaml:"path"`
	Line     int       `json:"line" yaml:"line"`
	Key      string    `json:"key,omitempty" yaml:"key,omitempty"`
	Text     string    `json:"text,omitempty" yaml:"text,omitempty"`
	Message  string    `json:"message" yaml:"message"`
}

// Confidence is the heuristic certainty that a literal text span is user-facing.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// HardcodedCandidate is a literal markup text span that may need translating.
type HardcodedCandidate struct {
	Text       string
	Path       Path
	Line       int
	Confidence Confidence
	Context    string
}
