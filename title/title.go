// Package title turns a raw media file path into a display title suitable for Rich Presence.
package title

import (
	"regexp"
	"strings"

	"github.com/brokiem/mpc-discordrpc/util"
)

const (
	// MaxLength is the Discord ceiling for presence text fields.
	MaxLength = 128

	// HeadlineLength is the boundary at which a title is split between the details and state lines.
	HeadlineLength = 20

	ellipsis = "..."
)

var bracketGroup = regexp.MustCompile(` *\[[^\]]*]`)

// Options selects which optional cleanup steps run.
type Options struct {
	StripUnderscores   bool
	StripBrackets      bool
	StripDots          bool
	StripFileExtension bool
}

// step is a single transform in the sanitizing pipeline.
type step struct {
	name    string
	enabled func(Options) bool
	apply   func(string) string
	// accept decides whether the transformed value replaces the previous one.
	accept func(before, after string) bool
}

func always(Options) bool { return true }

func nonEmpty(_, after string) bool { return after != "" }

// pipeline is strictly ordered; each step consumes the previous step's output.
var pipeline = []step{
	{
		name:    "basename",
		enabled: always,
		apply:   Basename,
		accept:  nonEmpty,
	},
	{
		name:    "clamp",
		enabled: always,
		apply:   func(s string) string { return Clamp(s, MaxLength) },
		accept:  nonEmpty,
	},
	{
		name:    "underscores",
		enabled: func(o Options) bool { return o.StripUnderscores },
		apply:   func(s string) string { return strings.ReplaceAll(s, "_", " ") },
		accept:  nonEmpty,
	},
	{
		name:    "brackets",
		enabled: func(o Options) bool { return o.StripBrackets },
		apply: func(s string) string {
			return Clamp(bracketGroup.ReplaceAllString(s, ""), MaxLength)
		},
		// Release-group-only names are entirely bracketed; keep them rather than show nothing.
		accept: func(_, after string) bool { return TrimExtension(after) != "" },
	},
	{
		name:    "dots",
		enabled: func(o Options) bool { return o.StripDots },
		apply:   FoldDots,
		accept:  nonEmpty,
	},
	{
		name:    "extension",
		enabled: func(o Options) bool { return o.StripFileExtension },
		apply:   TrimExtension,
		accept:  nonEmpty,
	},
}

// Sanitize runs the cleanup pipeline over a raw file path.
// The result is at most MaxLength runes and never empty for a non-empty input.
func Sanitize(raw string, options Options) string {
	current := raw
	for _, s := range pipeline {
		if !s.enabled(options) {
			continue
		}

		next := s.apply(current)
		if s.accept(current, next) {
			current = next
		}
	}

	return current
}

// Basename returns the last non-empty segment of a path. Both Windows and POSIX separators are recognised.
func Basename(path string) string {
	path = strings.TrimRight(path, `\/`)
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Clamp truncates s to at most n runes, ending in an ellipsis when anything was cut.
func Clamp(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	cut := util.Max(n-len(ellipsis), 0)
	return string(runes[:cut]) + ellipsis
}

// clamped separates a trailing ellipsis left by Clamp from the rest of s.
func clamped(s string) (body string, truncated bool) {
	if strings.HasSuffix(s, ellipsis) {
		return strings.TrimSuffix(s, ellipsis), true
	}
	return s, false
}

// FoldDots replaces every dot but the last one with a space.
// A truncated title has lost its extension, so every dot before the ellipsis is folded.
func FoldDots(s string) string {
	if body, truncated := clamped(s); truncated {
		return strings.ReplaceAll(body, ".", " ") + ellipsis
	}

	last := strings.LastIndex(s, ".")
	if last <= 0 {
		return s
	}
	return strings.ReplaceAll(s[:last], ".", " ") + s[last:]
}

// TrimExtension removes everything from the last dot onward.
// Strings without a dot, and truncated titles ending in an ellipsis, are returned unchanged.
func TrimExtension(s string) string {
	if _, truncated := clamped(s); truncated {
		return s
	}
	if i := strings.LastIndex(s, "."); i >= 0 {
		return s[:i]
	}
	return s
}

// Split breaks a title at HeadlineLength runes.
// The headline carries a trailing hyphen when the title continues in the remainder.
func Split(title string) (headline, remainder string) {
	runes := []rune(title)
	if len(runes) <= HeadlineLength {
		return title, ""
	}

	headline = strings.TrimRight(string(runes[:HeadlineLength]), " ") + "-"
	remainder = strings.TrimLeft(string(runes[HeadlineLength:]), " ")
	return headline, remainder
}
