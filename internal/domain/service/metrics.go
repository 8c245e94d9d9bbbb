package service

// Outcome labels for MetricsRecorder.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// MetricsRecorder receives business counters from the use cases.
type MetricsRecorder interface {
	// ObserveAuth counts an auth operation (signup, signin, refresh, signout) by outcome.
	ObserveAuth(operation, outcome string)

	// ObserveReport counts a report event (created, approved, rejected, estimated).
	ObserveReport(event string)
}
