package player

import (
	"time"

	"github.com/automoto/wallhop/shared/gamemath"
)

// Properties tunes the player's movement. Speeds are in tiles per second,
// accelerations in tiles per second squared.
type Properties struct {
	MaxRunSpeed float64 `yaml:"max_run_speed" json:"max_run_speed"`

	GroundAcceleration                float64 `yaml:"ground_acceleration" json:"ground_acceleration"`
	GroundDeceleration                float64 `yaml:"ground_deceleration" json:"ground_deceleration"`
	GroundDirectionChangeAcceleration float64 `yaml:"ground_direction_change_acceleration" json:"ground_direction_change_acceleration"`

	AirAcceleration                float64 `yaml:"air_acceleration" json:"air_acceleration"`
	AirDeceleration                float64 `yaml:"air_deceleration" json:"air_deceleration"`
	AirDirectionChangeAcceleration float64 `yaml:"air_direction_change_acceleration" json:"air_direction_change_acceleration"`

	Gravity       float64 `yaml:"gravity" json:"gravity"`
	TerminalSpeed float64 `yaml:"terminal_speed" json:"terminal_speed"`

	JumpForce   float64 `yaml:"jump_force" json:"jump_force"`
	JumpGravity float64 `yaml:"jump_gravity" json:"jump_gravity"` // gravity while jump is held and rising

	CoyoteTime     time.Duration `yaml:"coyote_time" json:"coyote_time"`
	JumpBufferTime time.Duration `yaml:"jump_buffer_time" json:"jump_buffer_time"`

	JumpsAvailable       int     `yaml:"jumps_available" json:"jumps_available"`
	MultijumpCoefficient float64 `yaml:"multijump_coefficient" json:"multijump_coefficient"`

	// WallslideMaxVSpeed caps the fall speed while sliding. Nil disables the
	// cap.
	WallslideMaxVSpeed *float64 `yaml:"wallslide_max_v_speed" json:"wallslide_max_v_speed"`

	CanWalljump             bool          `yaml:"can_walljump" json:"can_walljump"`
	WalljumpVerticalForce   float64       `yaml:"walljump_vertical_force" json:"walljump_vertical_force"`
	WalljumpHorizontalForce float64       `yaml:"walljump_horizontal_force" json:"walljump_horizontal_force"`
	DeadTimeAfterWalljump   time.Duration `yaml:"dead_time_after_walljump" json:"dead_time_after_walljump"`
}

// DefaultProperties returns the stock tuning.
func DefaultProperties() Properties {
	wallslide := 15.0
	return Properties{
		MaxRunSpeed: 12,

		GroundAcceleration:                85,
		GroundDeceleration:                65,
		GroundDirectionChangeAcceleration: 125,

		AirAcceleration:                50,
		AirDeceleration:                20,
		AirDirectionChangeAcceleration: 100,

		Gravity:       100,
		TerminalSpeed: 45,

		JumpForce:   22,
		JumpGravity: 57,

		CoyoteTime:     100 * time.Millisecond,
		JumpBufferTime: 150 * time.Millisecond,

		JumpsAvailable:       2,
		MultijumpCoefficient: 0.8,

		WallslideMaxVSpeed: &wallslide,

		CanWalljump:             true,
		WalljumpVerticalForce:   20,
		WalljumpHorizontalForce: 10,
		DeadTimeAfterWalljump:   200 * time.Millisecond,
	}
}

// Range is the tuning range of one property.
type Range struct {
	Min, Max float64
}

// Ranges used by Sanitize and the tuning panel.
var (
	RunSpeedRange      = Range{0, 100}
	AccelerationRange  = Range{0, 200}
	GravityRange       = Range{0, 300}
	JumpForceRange     = Range{1, 100}
	JumpsRange         = Range{0, 3}
	CoefficientRange   = Range{0, 1}
	WalljumpForceRange = Range{0, 100}
	MaxTimingDuration  = 2 * time.Second
)

func (r Range) clamp(v float64) float64 {
	if v != v { // NaN
		return r.Min
	}
	return gamemath.Clamp(v, r.Min, r.Max)
}

func clampDuration(d time.Duration) time.Duration {
	return max(0, min(MaxTimingDuration, d))
}

// Sanitize returns p with every field inside its tuning range, so values from
// a hand-edited file can never make the simulation produce NaN.
func (p Properties) Sanitize() Properties {
	p.MaxRunSpeed = RunSpeedRange.clamp(p.MaxRunSpeed)

	p.GroundAcceleration = AccelerationRange.clamp(p.GroundAcceleration)
	p.GroundDeceleration = AccelerationRange.clamp(p.GroundDeceleration)
	p.GroundDirectionChangeAcceleration = AccelerationRange.clamp(p.GroundDirectionChangeAcceleration)
	p.AirAcceleration = AccelerationRange.clamp(p.AirAcceleration)
	p.AirDeceleration = AccelerationRange.clamp(p.AirDeceleration)
	p.AirDirectionChangeAcceleration = AccelerationRange.clamp(p.AirDirectionChangeAcceleration)

	p.Gravity = GravityRange.clamp(p.Gravity)
	p.TerminalSpeed = GravityRange.clamp(p.TerminalSpeed)
	p.JumpGravity = GravityRange.clamp(p.JumpGravity)
	p.JumpForce = JumpForceRange.clamp(p.JumpForce)

	p.CoyoteTime = clampDuration(p.CoyoteTime)
	p.JumpBufferTime = clampDuration(p.JumpBufferTime)
	p.DeadTimeAfterWalljump = clampDuration(p.DeadTimeAfterWalljump)

	p.JumpsAvailable = int(JumpsRange.clamp(float64(p.JumpsAvailable)))
	p.MultijumpCoefficient = CoefficientRange.clamp(p.MultijumpCoefficient)

	if p.WallslideMaxVSpeed != nil {
		v := GravityRange.clamp(*p.WallslideMaxVSpeed)
		p.WallslideMaxVSpeed = &v
	}

	p.WalljumpVerticalForce = WalljumpForceRange.clamp(p.WalljumpVerticalForce)
	p.WalljumpHorizontalForce = WalljumpForceRange.clamp(p.WalljumpHorizontalForce)
	return p
}
