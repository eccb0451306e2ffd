package discord

import (
	"time"
	"unicode/utf8"

	"github.com/brokiem/mpc-discordrpc/presence"
)

type activityArgs struct {
	PID      int       `json:"pid"`
	Activity *activity `json:"activity"`
}

type activity struct {
	Details    string      `json:"details,omitempty"`
	State      string      `json:"state,omitempty"`
	Timestamps *timestamps `json:"timestamps,omitempty"`
	Assets     *assets     `json:"assets,omitempty"`
}

type timestamps struct {
	Start int64 `json:"start,omitempty"`
	End   int64 `json:"end,omitempty"`
}

type assets struct {
	LargeImage string `json:"large_image,omitempty"`
	LargeText  string `json:"large_text,omitempty"`
	SmallImage string `json:"small_image,omitempty"`
	SmallText  string `json:"small_text,omitempty"`
}

// toActivity maps a payload onto the wire shape. Timestamps are unix milliseconds.
func toActivity(p presence.Payload) *activity {
	a := &activity{
		Details: pad(p.Details),
		State:   pad(p.State),
	}

	if p.Start != nil || p.End != nil {
		a.Timestamps = &timestamps{
			Start: unixMilli(p.Start),
			End:   unixMilli(p.End),
		}
	}

	if p.LargeImageKey != "" || p.SmallImageKey != "" {
		a.Assets = &assets{
			LargeImage: p.LargeImageKey,
			LargeText:  pad(p.LargeImageText),
			SmallImage: p.SmallImageKey,
			SmallText:  pad(p.SmallImageText),
		}
	}

	return a
}

// pad lengthens one-character text, which Discord rejects, with a zero-width space.
func pad(s string) string {
	if utf8.RuneCountInString(s) == 1 {
		return s + "\u200b"
	}
	return s
}

func unixMilli(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.UnixMilli()
}
