package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered         uint64
	LoginSuccesses          uint64
	LoginFailures           uint64
	AuthRejections          uint64
	UpstreamFetchSuccesses  uint64
	UpstreamFetchErrors     uint64
	UpstreamDurationCount   uint64
	UpstreamDurationTotalNs int64
	EntriesReturnedCount    uint64
	EntriesReturnedTotal    uint64
}

// InMemoryRecorder stores metrics in memory using atomic counters.
type InMemoryRecorder struct {
	usersRegistered         uint64
	loginSuccesses          uint64
	loginFailures           uint64
	authRejections          uint64
	upstreamFetchSuccesses  uint64
	upstreamFetchErrors     uint64
	upstreamDurationCount   uint64
	upstreamDurationTotalNs int64
	entriesReturnedCount    uint64
	entriesReturnedTotal    uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered:         atomic.LoadUint64(&m.usersRegistered),
		LoginSuccesses:          atomic.LoadUint64(&m.loginSuccesses),
		LoginFailures:           atomic.LoadUint64(&m.loginFailures),
		AuthRejections:          atomic.LoadUint64(&m.authRejections),
		UpstreamFetchSuccesses:  atomic.LoadUint64(&m.upstreamFetchSuccesses),
		UpstreamFetchErrors:     atomic.LoadUint64(&m.upstreamFetchErrors),
		UpstreamDurationCount:   atomic.LoadUint64(&m.upstreamDurationCount),
		UpstreamDurationTotalNs: atomic.LoadInt64(&m.upstreamDurationTotalNs),
		EntriesReturnedCount:    atomic.LoadUint64(&m.entriesReturnedCount),
		EntriesReturnedTotal:    atomic.LoadUint64(&m.entriesReturnedTotal),
	}
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncLoginSuccess increments the successful login counter.
func (m *InMemoryRecorder) IncLoginSuccess() {
	atomic.AddUint64(&m.loginSuccesses, 1)
}

// IncLoginFailure increments the failed login counter.
func (m *InMemoryRecorder) IncLoginFailure() {
	atomic.AddUint64(&m.loginFailures, 1)
}

// IncAuthRejected increments the rejected-request counter.
func (m *InMemoryRecorder) IncAuthRejected() {
	atomic.AddUint64(&m.authRejections, 1)
}

// IncUpstreamFetch increments the fetch counter for the given status.
func (m *InMemoryRecorder) IncUpstreamFetch(status string) {
	if status == "success" {
		atomic.AddUint64(&m.upstreamFetchSuccesses, 1)
		return
	}
	atomic.AddUint64(&m.upstreamFetchErrors, 1)
}

// ObserveUpstreamFetchDuration records one upstream fetch duration.
func (m *InMemoryRecorder) ObserveUpstreamFetchDuration(duration time.Duration) {
	atomic.AddUint64(&m.upstreamDurationCount, 1)
	atomic.AddInt64(&m.upstreamDurationTotalNs, duration.Nanoseconds())
}

// ObserveEntriesReturned records the size of one filtered response.
func (m *InMemoryRecorder) ObserveEntriesReturned(count int) {
	atomic.AddUint64(&m.entriesReturnedCount, 1)
	atomic.AddUint64(&m.entriesReturnedTotal, uint64(count))
}
