// Package presence maps player snapshots to Rich Presence payloads and decides when an update is worth sending.
package presence

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidState is returned for state codes outside the known set.
var ErrInvalidState = errors.New("invalid playback state")

// State is the playback state code reported by the player.
type State int

const (
	Idle    State = -1
	Stopped State = 0
	Paused  State = 1
	Playing State = 2
)

// Descriptor holds the display string and small image key for a state.
type Descriptor struct {
	Display  string
	ImageKey string
}

var descriptors = map[State]Descriptor{
	Idle:    {Display: "Idling", ImageKey: "stop_small"},
	Stopped: {Display: "Stopped", ImageKey: "stop_small"},
	Paused:  {Display: "Paused", ImageKey: "pause_small"},
	Playing: {Display: "Playing", ImageKey: "play_small"},
}

// ParseState converts the textual state code into a State.
func ParseState(text string) (State, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidState, text)
	}

	s := State(n)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidState, n)
	}
	return s, nil
}

// Valid reports whether s is one of the known states.
func (s State) Valid() bool {
	_, ok := descriptors[s]
	return ok
}

// Describe returns the descriptor for s. Unknown states get a zero Descriptor.
func (s State) Describe() Descriptor {
	return descriptors[s]
}

func (s State) String() string {
	if d, ok := descriptors[s]; ok {
		return d.Display
	}
	return fmt.Sprintf("State(%d)", int(s))
}
