package ui

import (
	"fmt"
	"time"

	"github.com/automoto/wallhop/player"
)

// tunable is one numeric row of the tuning panel.
type tunable struct {
	name  string
	step  float64
	rng   player.Range
	unit  string
	get   func(p *player.Properties) float64
	set   func(p *player.Properties, v float64)
	whole bool
}

func (t tunable) format(p *player.Properties) string {
	v := t.get(p)
	if t.whole {
		return fmt.Sprintf("%d%s", int(v), t.unit)
	}
	return fmt.Sprintf("%.2f%s", v, t.unit)
}

// adjust moves the value dir steps and clamps it to the row's range.
func (t tunable) adjust(p *player.Properties, dir int) {
	v := t.get(p) + float64(dir)*t.step
	t.set(p, max(t.rng.Min, min(t.rng.Max, v)))
}

func floatRow(name string, step float64, rng player.Range, field func(p *player.Properties) *float64) tunable {
	return tunable{
		name: name,
		step: step,
		rng:  rng,
		get:  func(p *player.Properties) float64 { return *field(p) },
		set:  func(p *player.Properties, v float64) { *field(p) = v },
	}
}

func durationRow(name string, field func(p *player.Properties) *time.Duration) tunable {
	return tunable{
		name:  name,
		step:  10,
		rng:   player.Range{Min: 0, Max: float64(player.MaxTimingDuration.Milliseconds())},
		unit:  "ms",
		whole: true,
		get:   func(p *player.Properties) float64 { return float64(field(p).Milliseconds()) },
		set:   func(p *player.Properties, v float64) { *field(p) = time.Duration(v) * time.Millisecond },
	}
}

var tunables = []tunable{
	floatRow("Run speed", 1, player.RunSpeedRange, func(p *player.Properties) *float64 { return &p.MaxRunSpeed }),
	floatRow("Ground accel", 5, player.AccelerationRange, func(p *player.Properties) *float64 { return &p.GroundAcceleration }),
	floatRow("Ground decel", 5, player.AccelerationRange, func(p *player.Properties) *float64 { return &p.GroundDeceleration }),
	floatRow("Ground turn", 5, player.AccelerationRange, func(p *player.Properties) *float64 { return &p.GroundDirectionChangeAcceleration }),
	floatRow("Air accel", 5, player.AccelerationRange, func(p *player.Properties) *float64 { return &p.AirAcceleration }),
	floatRow("Air decel", 5, player.AccelerationRange, func(p *player.Properties) *float64 { return &p.AirDeceleration }),
	floatRow("Air turn", 5, player.AccelerationRange, func(p *player.Properties) *float64 { return &p.AirDirectionChangeAcceleration }),
	floatRow("Gravity", 5, player.GravityRange, func(p *player.Properties) *float64 { return &p.Gravity }),
	floatRow("Terminal speed", 5, player.GravityRange, func(p *player.Properties) *float64 { return &p.TerminalSpeed }),
	floatRow("Jump force", 1, player.JumpForceRange, func(p *player.Properties) *float64 { return &p.JumpForce }),
	floatRow("Jump gravity", 5, player.GravityRange, func(p *player.Properties) *float64 { return &p.JumpGravity }),
	durationRow("Coyote time", func(p *player.Properties) *time.Duration { return &p.CoyoteTime }),
	durationRow("Jump buffer", func(p *player.Properties) *time.Duration { return &p.JumpBufferTime }),
	{
		name:  "Jumps",
		step:  1,
		rng:   player.JumpsRange,
		whole: true,
		get:   func(p *player.Properties) float64 { return float64(p.JumpsAvailable) },
		set:   func(p *player.Properties, v float64) { p.JumpsAvailable = int(v) },
	},
	floatRow("Multijump coef", 0.05, player.CoefficientRange, func(p *player.Properties) *float64 { return &p.MultijumpCoefficient }),
	{
		name: "Wallslide cap",
		step: 1,
		rng:  player.GravityRange,
		get: func(p *player.Properties) float64 {
			if p.WallslideMaxVSpeed == nil {
				return 0
			}
			return *p.WallslideMaxVSpeed
		},
		set: func(p *player.Properties, v float64) {
			// Never write through the pointer, it may be shared with the
			// properties the panel was created from.
			p.WallslideMaxVSpeed = &v
		},
	},
	floatRow("Walljump up", 1, player.WalljumpForceRange, func(p *player.Properties) *float64 { return &p.WalljumpVerticalForce }),
	floatRow("Walljump out", 1, player.WalljumpForceRange, func(p *player.Properties) *float64 { return &p.WalljumpHorizontalForce }),
	durationRow("Walljump lock", func(p *player.Properties) *time.Duration { return &p.DeadTimeAfterWalljump }),
}

// toggle is an on/off row of the tuning panel.
type toggle struct {
	name string
	get  func(p *player.Properties) bool
	flip func(p *player.Properties)
}

var toggles = []toggle{
	{
		name: "Slide cap",
		get:  func(p *player.Properties) bool { return p.WallslideMaxVSpeed != nil },
		flip: func(p *player.Properties) {
			if p.WallslideMaxVSpeed != nil {
				p.WallslideMaxVSpeed = nil
				return
			}
			v := 15.0
			if d := player.DefaultProperties().WallslideMaxVSpeed; d != nil {
				v = *d
			}
			p.WallslideMaxVSpeed = &v
		},
	},
	{
		name: "Walljump",
		get:  func(p *player.Properties) bool { return p.CanWalljump },
		flip: func(p *player.Properties) { p.CanWalljump = !p.CanWalljump },
	},
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
