package presence

import "time"

// Snapshot is the part of a tick the gate compares against on the next one.
// The zero value means no tick has been observed yet.
type Snapshot struct {
	State    State
	Position int64
	Valid    bool
}

// Gate suppresses updates that carry no meaningful change.
type Gate struct {
	// Interval is the expected advance of the playback position between two polls.
	Interval time.Duration
}

// Decide reports whether next warrants an update, and returns the snapshot to compare the following tick against.
// The returned snapshot is always next, whether or not an update is emitted.
func (g Gate) Decide(prev, next Snapshot) (emit bool, current Snapshot) {
	next.Valid = true

	switch {
	case !prev.Valid:
		emit = true
	case next.State != prev.State:
		emit = true
	case next.State == Playing:
		// Anything but the steady advance means a seek or a stall.
		emit = next.Position != prev.Position+g.Interval.Milliseconds()
	}

	return emit, next
}
