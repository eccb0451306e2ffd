package icon

import "github.com/brokiem/mpc-discordrpc/presence"

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Idle
	Stopped
	Paused
	Playing
	Discord
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji: "🎉",
		nerd:  "",
		plain: "✓",
	},
	Fail: {
		emoji: "👹",
		nerd:  "",
		plain: "✗",
	},
	Progress: {
		emoji: "👾",
		nerd:  "",
		plain: "@",
	},
	Idle: {
		emoji: "💤",
		nerd:  "",
		plain: "-",
	},
	Stopped: {
		emoji: "⏹️",
		nerd:  "",
		plain: "■",
	},
	Paused: {
		emoji: "⏸️",
		nerd:  "",
		plain: "‖",
	},
	Playing: {
		emoji: "▶️",
		nerd:  "",
		plain: "▶",
	},
	Discord: {
		emoji: "💬",
		nerd:  "",
		plain: "#",
	},
}

// State returns the icon matching a playback state.
func State(s presence.State) Icon {
	switch s {
	case presence.Playing:
		return Playing
	case presence.Paused:
		return Paused
	case presence.Stopped:
		return Stopped
	default:
		return Idle
	}
}
