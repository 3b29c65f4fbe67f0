package model

// CheckResult is the CI verdict of a check run.
type CheckResult struct {
	Report     AuditReport
	Threshold  int
	ErrorsOnly bool

	// Counted is the number of issues compared against Threshold.
	Counted int
}

// Exceeded reports whether the counted issues are above the threshold.
func (r CheckResult) Exceeded() bool {
	return r.Counted > r.Threshold
}
