package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/automoto/wallhop/input"
	"github.com/automoto/wallhop/player"
	"github.com/automoto/wallhop/shared/gamemath"
	"github.com/automoto/wallhop/shared/leveldata"
	"github.com/automoto/wallhop/world"
)

func floorWorld(names ...string) *world.World {
	lw := leveldata.NewWorld()
	for i, name := range names {
		l := leveldata.NewLevel(name, 40, 10)
		for x := 0; x < l.Width; x++ {
			l.SetTile(gamemath.IVec2{X: x, Y: 9}, leveldata.Solid)
		}
		l.Spawn = gamemath.V(3, 7)
		lw.Add(gamemath.IVec2{X: i}, l)
	}
	return world.New(lw, player.DefaultProperties())
}

func TestPulse(t *testing.T) {
	tests := []struct {
		tick     int
		expected input.ActionState
	}{
		{0, input.JustPressed},
		{1, input.Held},
		{11, input.Held},
		{12, input.JustReleased},
		{13, input.Released},
		{39, input.Released},
		{40, input.JustPressed},
	}

	for _, tt := range tests {
		if got := pulse(tt.tick, 40, 12); got != tt.expected {
			t.Errorf("pulse(%d) = %v, expected %v", tt.tick, got, tt.expected)
		}
	}
}

func TestSimulatePatterns(t *testing.T) {
	tests := []struct {
		pattern string
		ticks   int
		check   func(t *testing.T, r simReport)
	}{
		{
			pattern: "idle",
			ticks:   60,
			check: func(t *testing.T, r simReport) {
				if r.State != player.Grounded() {
					t.Errorf("state = %v, expected grounded", r.State)
				}
				if r.JumpPresses != 0 || r.Final.X != r.Start.X {
					t.Errorf("idle player acted: %+v", r)
				}
			},
		},
		{
			pattern: "run",
			ticks:   60,
			check: func(t *testing.T, r simReport) {
				if r.Final.X <= r.Start.X+1 {
					t.Errorf("final x = %v, expected to run right from %v", r.Final.X, r.Start.X)
				}
			},
		},
		{
			pattern: "hop",
			ticks:   80,
			check: func(t *testing.T, r simReport) {
				if r.JumpPresses != 2 {
					t.Errorf("jump presses = %d, expected 2", r.JumpPresses)
				}
				if r.Peak <= 0 {
					t.Errorf("peak = %v, expected the player to rise", r.Peak)
				}
				if r.ModeTicks[player.ModeAirborne] == 0 {
					t.Error("expected airborne ticks")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			r := simulate(floorWorld("a"), tt.pattern, patterns[tt.pattern], tt.ticks)
			if r.Ticks != tt.ticks || r.Level != "a" {
				t.Fatalf("report header = %+v", r)
			}
			total := 0
			for _, n := range r.ModeTicks {
				total += n
			}
			if total != tt.ticks {
				t.Errorf("mode ticks sum to %d, expected %d", total, tt.ticks)
			}
			tt.check(t, r)
		})
	}
}

func TestReportString(t *testing.T) {
	r := simulate(floorWorld("a"), "idle", patterns["idle"], 10)
	out := r.String()
	for _, want := range []string{"Simulation", "pattern", "idle", "respawns"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestEnterLevel(t *testing.T) {
	w := floorWorld("a", "b")

	if err := enterLevel(w, "b"); err != nil {
		t.Fatalf("enterLevel() error = %v", err)
	}
	if w.Level().Name != "b" {
		t.Errorf("level = %s, expected b", w.Level().Name)
	}

	err := enterLevel(w, "nope")
	if !errors.Is(err, world.ErrUnknownLevel) {
		t.Errorf("enterLevel() error = %v, expected ErrUnknownLevel", err)
	}
}

func TestPatternNamesSorted(t *testing.T) {
	names := patternNames()
	if len(names) != len(patterns) {
		t.Fatalf("patternNames() = %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}
