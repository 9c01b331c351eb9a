package ui

import (
	"testing"
	"time"

	"github.com/automoto/wallhop/player"
)

func tunableByName(t *testing.T, name string) int {
	t.Helper()
	for i, tn := range tunables {
		if tn.name == name {
			return i
		}
	}
	t.Fatalf("no tunable named %q", name)
	return -1
}

func TestTunableAdjust(t *testing.T) {
	tests := []struct {
		name     string
		row      string
		start    func(p *player.Properties)
		dir      int
		check    func(p player.Properties) bool
		expected string
	}{
		{
			name:     "step up",
			row:      "Run speed",
			dir:      1,
			check:    func(p player.Properties) bool { return p.MaxRunSpeed == 13 },
			expected: "13.00",
		},
		{
			name:     "clamp at max",
			row:      "Jumps",
			start:    func(p *player.Properties) { p.JumpsAvailable = 3 },
			dir:      1,
			check:    func(p player.Properties) bool { return p.JumpsAvailable == 3 },
			expected: "3",
		},
		{
			name:     "clamp at min",
			row:      "Coyote time",
			start:    func(p *player.Properties) { p.CoyoteTime = 5 * time.Millisecond },
			dir:      -1,
			check:    func(p player.Properties) bool { return p.CoyoteTime == 0 },
			expected: "0ms",
		},
		{
			name:     "duration step",
			row:      "Jump buffer",
			dir:      -1,
			check:    func(p player.Properties) bool { return p.JumpBufferTime == 140*time.Millisecond },
			expected: "140ms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := player.DefaultProperties()
			if tt.start != nil {
				tt.start(&props)
			}
			row := tunables[tunableByName(t, tt.row)]
			row.adjust(&props, tt.dir)

			if !tt.check(props) {
				t.Errorf("unexpected properties after adjust: %+v", props)
			}
			if got := row.format(&props); got != tt.expected {
				t.Errorf("format() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestWallslideRowDoesNotAliasSource(t *testing.T) {
	source := player.DefaultProperties()
	props := source

	tunables[tunableByName(t, "Wallslide cap")].adjust(&props, 1)

	if *source.WallslideMaxVSpeed != 15 {
		t.Errorf("source cap changed to %v", *source.WallslideMaxVSpeed)
	}
	if *props.WallslideMaxVSpeed != 16 {
		t.Errorf("cap = %v, expected 16", *props.WallslideMaxVSpeed)
	}
}

func TestTogglesFlip(t *testing.T) {
	props := player.DefaultProperties()

	for _, tg := range toggles {
		before := tg.get(&props)
		tg.flip(&props)
		if tg.get(&props) == before {
			t.Errorf("%s: flip did not change the value", tg.name)
		}
		tg.flip(&props)
		if tg.get(&props) != before {
			t.Errorf("%s: second flip did not restore the value", tg.name)
		}
	}
	if props.WallslideMaxVSpeed == nil || *props.WallslideMaxVSpeed != 15 {
		t.Errorf("restored cap = %v, expected 15", props.WallslideMaxVSpeed)
	}
}

func TestTuningPanelCallbacks(t *testing.T) {
	var changed, saved []player.Properties
	panel := &TuningPanel{
		props:    player.DefaultProperties(),
		OnChange: func(p player.Properties) { changed = append(changed, p) },
		OnSave:   func(p player.Properties) { saved = append(saved, p) },
	}

	panel.adjust(tunableByName(t, "Gravity"), 1)
	if len(changed) != 1 || changed[0].Gravity != 105 {
		t.Fatalf("OnChange calls = %+v", changed)
	}

	panel.save()
	if len(saved) != 1 || saved[0].Gravity != 105 {
		t.Errorf("OnSave calls = %+v", saved)
	}

	panel.reset()
	if panel.Properties().Gravity != player.DefaultProperties().Gravity {
		t.Errorf("reset Gravity = %v", panel.Properties().Gravity)
	}
	if len(changed) != 2 {
		t.Errorf("expected reset to fire OnChange, got %d calls", len(changed))
	}

	panel.SetProperties(changed[0])
	if len(changed) != 2 {
		t.Error("SetProperties must not fire OnChange")
	}
	if panel.Properties().Gravity != 105 {
		t.Errorf("SetProperties Gravity = %v", panel.Properties().Gravity)
	}
}
