// Package mpc reads playback status from the MPC-HC / MPC-BE web interface.
package mpc

import (
	"fmt"
	"io"
	"strings"

	"github.com/brokiem/mpc-discordrpc/presence"
	"github.com/samber/lo"
	"golang.org/x/net/html"
)

// Element identifiers on the variables page.
const (
	FieldFilePath = "filepath"
	FieldState    = "state"
	FieldDuration = "durationstring"
	FieldPosition = "positionstring"
)

var fields = []string{FieldFilePath, FieldState, FieldDuration, FieldPosition}

// ParseError reports a status document that does not match the expected schema.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse status field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("parse status: missing field %q", e.Field)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Status is one reading of the player's variables page.
type Status struct {
	FilePath string
	State    presence.State

	// Position and Duration are the raw clock strings as reported by the player.
	Position string
	Duration string
}

// Parse extracts the playback status from a variables page.
// Every expected element must be present; a missing one is reported as a *ParseError.
func Parse(r io.Reader) (Status, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Status{}, &ParseError{Field: "document", Err: err}
	}

	values := make(map[string]string, len(fields))
	collect(doc, values)

	for _, field := range fields {
		if _, ok := values[field]; !ok {
			return Status{}, &ParseError{Field: field}
		}
	}

	state, err := presence.ParseState(values[FieldState])
	if err != nil {
		return Status{}, &ParseError{Field: FieldState, Err: err}
	}

	return Status{
		FilePath: strings.TrimSpace(values[FieldFilePath]),
		State:    state,
		Position: strings.TrimSpace(values[FieldPosition]),
		Duration: strings.TrimSpace(values[FieldDuration]),
	}, nil
}

// collect records the text content of every wanted element, first occurrence wins.
func collect(n *html.Node, into map[string]string) {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key != "id" || !lo.Contains(fields, attr.Val) {
				continue
			}
			if _, seen := into[attr.Val]; !seen {
				into[attr.Val] = textContent(n)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, into)
	}
}

func textContent(n *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return b.String()
}
