package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncLoginSuccess is a no-op.
func (n *NoopRecorder) IncLoginSuccess() {}

// IncLoginFailure is a no-op.
func (n *NoopRecorder) IncLoginFailure() {}

// IncAuthRejected is a no-op.
func (n *NoopRecorder) IncAuthRejected() {}

// IncUpstreamFetch is a no-op.
func (n *NoopRecorder) IncUpstreamFetch(status string) {}

// ObserveUpstreamFetchDuration is a no-op.
func (n *NoopRecorder) ObserveUpstreamFetchDuration(duration time.Duration) {}

// ObserveEntriesReturned is a no-op.
func (n *NoopRecorder) ObserveEntriesReturned(count int) {}
