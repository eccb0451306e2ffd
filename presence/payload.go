package presence

import (
	"context"
	"time"

	"github.com/brokiem/mpc-discordrpc/title"
)

// Payload is a "now playing" presence update. Empty text fields are left unset on the wire.
// A payload is built fresh each tick and not modified after it is handed to a Client.
type Payload struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`

	Details string `json:"details,omitempty"`
	State   string `json:"state,omitempty"`

	LargeImageKey  string `json:"large_image_key,omitempty"`
	LargeImageText string `json:"large_image_text,omitempty"`
	SmallImageKey  string `json:"small_image_key,omitempty"`
	SmallImageText string `json:"small_image_text,omitempty"`
}

// Client is the presence-display service a payload is emitted to.
type Client interface {
	SetActivity(ctx context.Context, payload Payload) error
}

// Input is everything the builder needs for one tick.
type Input struct {
	State State
	Title string

	// Position and Duration are display strings, already stripped of a zero hour.
	Position string
	Duration string

	PositionMs int64
	DurationMs int64

	Cover string
}

// Builder turns an Input into a Payload.
type Builder struct {
	ShowRemainingTime bool
	DetailsPrefix     string

	// Now defaults to time.Now.
	Now func() time.Time
}

func (b Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

// Build creates the payload for in. The title split seeds details and state; the playback state then overrides them.
func (b Builder) Build(in Input) Payload {
	headline, remainder := title.Split(in.Title)
	descriptor := in.State.Describe()

	payload := Payload{
		Details:        title.Clamp(b.DetailsPrefix+headline, title.MaxLength),
		LargeImageKey:  in.Cover,
		LargeImageText: title.Clamp(in.Title, title.MaxLength),
		SmallImageKey:  descriptor.ImageKey,
		SmallImageText: descriptor.Display,
	}

	if remainder != "" {
		payload.State = title.Clamp(remainder, title.MaxLength)
	}

	switch in.State {
	case Idle:
		payload.Details = ""
		payload.State = descriptor.Display
	case Paused:
		payload.State = in.Position + " / " + in.Duration
	case Playing:
		now := b.now()
		if b.ShowRemainingTime {
			end := now.Add(time.Duration(in.DurationMs-in.PositionMs) * time.Millisecond)
			payload.End = &end
		} else {
			start := now.Add(-time.Duration(in.PositionMs) * time.Millisecond)
			payload.Start = &start
		}
	}

	return payload
}
