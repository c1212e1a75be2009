package carousel

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer.
	Stop() bool
}

// Clock schedules callbacks after a delay.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealClock schedules callbacks on the runtime timer heap.
type RealClock struct{}

// AfterFunc implements Clock with time.AfterFunc.
func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// slot owns at most one pending timer. Cancelling bumps seq so a callback
// that already left the timer heap recognises it is stale.
type slot struct {
	timer Timer
	seq   uint64
}

func (s *slot) cancel() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.seq++
}

func (s *slot) pending() bool {
	return s.timer != nil
}
