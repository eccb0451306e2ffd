// Package watch drives the poll, sanitize, build and emit cycle.
package watch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/brokiem/mpc-discordrpc/config"
	"github.com/brokiem/mpc-discordrpc/log"
	"github.com/brokiem/mpc-discordrpc/mal"
	"github.com/brokiem/mpc-discordrpc/mpc"
	"github.com/brokiem/mpc-discordrpc/presence"
	"github.com/brokiem/mpc-discordrpc/timecode"
	"github.com/brokiem/mpc-discordrpc/title"
	"github.com/sirupsen/logrus"
)

// emitTimeout bounds a single presence update.
const emitTimeout = 10 * time.Second

// Source reports the player status.
type Source interface {
	Fetch(ctx context.Context) (mpc.Status, error)
}

// CoverResolver finds cover art for a display title.
type CoverResolver interface {
	Resolve(ctx context.Context, title string) mal.Cover
}

// Watcher turns player statuses into presence updates.
// Tick and Run must be driven from a single goroutine; only emissions run concurrently.
type Watcher struct {
	Source  Source
	Covers  CoverResolver
	Client  presence.Client
	Builder presence.Builder
	Gate    presence.Gate
	Title   title.Options

	// CoverTimeout bounds the cover lookup. Zero means no bound beyond the caller's context.
	CoverTimeout time.Duration

	lastTitle string
	lastCover string

	emissions sync.WaitGroup
}

// New wires a Watcher from options. The cover store is only attached when caching is enabled.
func New(options config.Options, client presence.Client) *Watcher {
	resolver := &mal.Resolver{Client: mal.NewClient(options.MalClientID)}
	if options.CoverCache {
		resolver.Store = mal.NewCoverStore("")
	}

	return &Watcher{
		Source: mpc.NewClient(options.PollURL),
		Covers: resolver,
		Client: client,
		Builder: presence.Builder{
			ShowRemainingTime: options.ShowRemainingTime,
			DetailsPrefix:     options.DetailsPrefix,
		},
		Gate:         presence.Gate{Interval: options.PollInterval},
		Title:        options.Title,
		CoverTimeout: options.CoverTimeout,
	}
}

// reading is a status with its clock strings parsed.
type reading struct {
	mpc.Status
	positionMs int64
	durationMs int64
}

func read(status mpc.Status) (reading, error) {
	positionMs, err := timecode.Parse(status.Position)
	if err != nil {
		return reading{}, err
	}

	durationMs, err := timecode.Parse(status.Duration)
	if err != nil {
		return reading{}, err
	}

	return reading{Status: status, positionMs: positionMs, durationMs: durationMs}, nil
}

// Tick processes one status against the previous snapshot and returns the next one.
// On error prev is returned unchanged and nothing is emitted.
func (w *Watcher) Tick(ctx context.Context, prev presence.Snapshot, status mpc.Status) (presence.Snapshot, error) {
	r, err := read(status)
	if err != nil {
		return prev, err
	}

	emit, next := w.Gate.Decide(prev, presence.Snapshot{State: r.State, Position: r.positionMs})
	if !emit {
		return next, nil
	}

	payload, name := w.build(ctx, r)
	w.emit(ctx, payload, log.WithFields(logrus.Fields{
		"state":    r.State,
		"position": r.Position,
		"duration": r.Duration,
		"title":    name,
	}))

	return next, nil
}

// Preview builds the payload for status without consulting the gate or emitting.
func (w *Watcher) Preview(ctx context.Context, status mpc.Status) (presence.Payload, error) {
	r, err := read(status)
	if err != nil {
		return presence.Payload{}, err
	}

	payload, _ := w.build(ctx, r)
	return payload, nil
}

func (w *Watcher) build(ctx context.Context, r reading) (presence.Payload, string) {
	name := title.Sanitize(r.FilePath, w.Title)

	return w.Builder.Build(presence.Input{
		State:      r.State,
		Title:      name,
		Position:   timecode.StripLeadingZeroHour(r.Position),
		Duration:   timecode.StripLeadingZeroHour(r.Duration),
		PositionMs: r.positionMs,
		DurationMs: r.durationMs,
		Cover:      w.cover(ctx, name),
	}), name
}

// Poll fetches the current status and ticks it.
func (w *Watcher) Poll(ctx context.Context, prev presence.Snapshot) (presence.Snapshot, error) {
	status, err := w.Source.Fetch(ctx)
	if err != nil {
		return prev, err
	}

	return w.Tick(ctx, prev, status)
}

// Run polls once immediately and then on every gate interval until ctx is done.
// Failed ticks are logged and leave the snapshot untouched.
func (w *Watcher) Run(ctx context.Context) error {
	if w.Gate.Interval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", w.Gate.Interval)
	}

	ticker := time.NewTicker(w.Gate.Interval)
	defer ticker.Stop()

	var snapshot presence.Snapshot
	for {
		snapshot = w.step(ctx, snapshot)

		select {
		case <-ctx.Done():
			w.Wait()
			return nil
		case <-ticker.C:
		}
	}
}

func (w *Watcher) step(ctx context.Context, prev presence.Snapshot) presence.Snapshot {
	next, err := w.Poll(ctx, prev)
	if err != nil && ctx.Err() == nil {
		log.Warnf("tick skipped: %v", err)
	}
	return next
}

// Wait blocks until every in-flight emission has finished.
func (w *Watcher) Wait() {
	w.emissions.Wait()
}

func (w *Watcher) cover(ctx context.Context, name string) string {
	if name == w.lastTitle && w.lastCover != "" {
		return w.lastCover
	}

	if w.CoverTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.CoverTimeout)
		defer cancel()
	}

	cover := w.Covers.Resolve(ctx, name)
	if !cover.Resolved() {
		return cover.URI
	}

	w.lastTitle, w.lastCover = name, cover.URI
	return cover.URI
}

// emit sends payload without blocking the tick. Failures are logged and not retried.
func (w *Watcher) emit(ctx context.Context, payload presence.Payload, entry *logrus.Entry) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), emitTimeout)

	w.emissions.Add(1)
	go func() {
		defer w.emissions.Done()
		defer cancel()

		if err := w.Client.SetActivity(ctx, payload); err != nil {
			entry.Errorf("presence update failed: %v", err)
			return
		}

		entry.Info("presence update sent")
	}()
}
