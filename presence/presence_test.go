package presence

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

var fixedNow = time.Date(2024, 4, 1, 20, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestParseState(t *testing.T) {
	Convey("ParseState", t, func() {
		for text, want := range map[string]State{"-1": Idle, "0": Stopped, "1": Paused, "2": Playing, " 2\n": Playing} {
			s, err := ParseState(text)
			So(err, ShouldBeNil)
			So(s, ShouldEqual, want)
		}

		for _, text := range []string{"3", "-2", "", "playing"} {
			_, err := ParseState(text)
			So(errors.Is(err, ErrInvalidState), ShouldBeTrue)
		}
	})

	Convey("Describe", t, func() {
		So(Idle.Describe().Display, ShouldEqual, "Idling")
		So(Paused.Describe().ImageKey, ShouldEqual, "pause_small")
		So(State(7).Describe(), ShouldResemble, Descriptor{})
		So(State(7).String(), ShouldEqual, "State(7)")
	})
}

func TestBuild(t *testing.T) {
	Convey("Given a builder with a fixed clock", t, func() {
		builder := Builder{Now: clock}
		in := Input{
			Title:      "My Show",
			Position:   "01:40",
			Duration:   "10:00",
			PositionMs: 100000,
			DurationMs: 600000,
			Cover:      "https://cdn.myanimelist.net/images/anime/1/1.jpg",
		}

		Convey("When stopped", func() {
			in.State = Stopped
			p := builder.Build(in)

			Convey("Then only the title seed is present", func() {
				So(p.Details, ShouldEqual, "My Show")
				So(p.State, ShouldBeEmpty)
				So(p.Start, ShouldBeNil)
				So(p.End, ShouldBeNil)
				So(p.LargeImageKey, ShouldEqual, in.Cover)
				So(p.LargeImageText, ShouldEqual, "My Show")
				So(p.SmallImageKey, ShouldEqual, "stop_small")
			})
		})

		Convey("When idle", func() {
			in.State = Idle
			p := builder.Build(in)

			Convey("Then details are cleared and state reads Idling", func() {
				So(p.Details, ShouldBeEmpty)
				So(p.State, ShouldEqual, "Idling")
				So(p.Start, ShouldBeNil)
				So(p.End, ShouldBeNil)
			})
		})

		Convey("When paused", func() {
			in.State = Paused
			in.Title = "Sousou no Frieren Episode 12"
			p := builder.Build(in)

			Convey("Then the elapsed/total display overrides the remainder", func() {
				So(p.Details, ShouldEqual, "Sousou no Frieren Ep-")
				So(p.State, ShouldEqual, "01:40 / 10:00")
				So(p.Start, ShouldBeNil)
				So(p.End, ShouldBeNil)
			})
		})

		Convey("When playing with elapsed time", func() {
			in.State = Playing
			p := builder.Build(in)

			Convey("Then only the start timestamp is set", func() {
				So(p.End, ShouldBeNil)
				So(p.Start, ShouldNotBeNil)
				So(p.Start.Equal(fixedNow.Add(-100*time.Second)), ShouldBeTrue)
			})
		})

		Convey("When playing with remaining time", func() {
			builder.ShowRemainingTime = true
			in.State = Playing
			p := builder.Build(in)

			Convey("Then only the end timestamp is set", func() {
				So(p.Start, ShouldBeNil)
				So(p.End, ShouldNotBeNil)
				So(p.End.Equal(fixedNow.Add(500000*time.Millisecond)), ShouldBeTrue)
			})
		})

		Convey("When a long title is playing", func() {
			in.State = Playing
			in.Title = "Sousou no Frieren Episode 12"
			p := builder.Build(in)

			Convey("Then the remainder lands in the state line", func() {
				So(p.State, ShouldEqual, "isode 12")
			})
		})

		Convey("When a details prefix is configured", func() {
			builder.DetailsPrefix = "Watching "
			in.State = Stopped
			p := builder.Build(in)

			So(p.Details, ShouldEqual, "Watching My Show")
		})
	})
}

func TestGate(t *testing.T) {
	Convey("Given a gate expecting five second polls", t, func() {
		gate := Gate{Interval: 5 * time.Second}
		prev := Snapshot{State: Playing, Position: 10000, Valid: true}

		Convey("A steady advance is skipped", func() {
			emit, next := gate.Decide(prev, Snapshot{State: Playing, Position: 15000})
			So(emit, ShouldBeFalse)
			So(next, ShouldResemble, Snapshot{State: Playing, Position: 15000, Valid: true})
		})

		Convey("A seek is emitted", func() {
			emit, next := gate.Decide(prev, Snapshot{State: Playing, Position: 20000})
			So(emit, ShouldBeTrue)
			So(next.Position, ShouldEqual, 20000)
		})

		Convey("A pause is emitted regardless of position", func() {
			emit, next := gate.Decide(prev, Snapshot{State: Paused, Position: 15000})
			So(emit, ShouldBeTrue)
			So(next.State, ShouldEqual, Paused)
		})

		Convey("The first tick is always emitted", func() {
			emit, next := gate.Decide(Snapshot{}, Snapshot{State: Stopped})
			So(emit, ShouldBeTrue)
			So(next.Valid, ShouldBeTrue)
		})

		Convey("A first tick reporting idle is still emitted", func() {
			emit, _ := gate.Decide(Snapshot{}, Snapshot{State: Idle})
			So(emit, ShouldBeTrue)
		})

		Convey("A paused player that stays paused is skipped", func() {
			paused := Snapshot{State: Paused, Position: 10000, Valid: true}
			emit, _ := gate.Decide(paused, Snapshot{State: Paused, Position: 10000})
			So(emit, ShouldBeFalse)
		})

		Convey("Consecutive ticks compare against the latest snapshot", func() {
			_, s1 := gate.Decide(prev, Snapshot{State: Playing, Position: 40000})
			emit, _ := gate.Decide(s1, Snapshot{State: Playing, Position: 45000})
			So(emit, ShouldBeFalse)
		})
	})
}
