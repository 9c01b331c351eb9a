// Package player implements the controllable character: horizontal run
// physics, gravity, buffered and coyote jumps, multi-jumps, wall slides and
// wall jumps, plus the Grounded/Airborne/Sliding state machine.
package player

import (
	"math"
	"time"

	"github.com/automoto/wallhop/input"
	"github.com/automoto/wallhop/physics"
	"github.com/automoto/wallhop/shared/gamemath"
)

// Surroundings is what the player collides with during one tick. Either
// field may be nil.
type Surroundings struct {
	Space *physics.Space
	Grid  physics.Grid
}

func (s Surroundings) colliding(b *physics.Body) func(gamemath.Vec2) bool {
	if s.Space != nil {
		return s.Space.Colliding(b, s.Grid)
	}
	return func(pos gamemath.Vec2) bool {
		return physics.TouchesGrid(b.RectAt(pos), s.Grid, b.Mask)
	}
}

type Player struct {
	Body  physics.Body
	Props Properties
	State State

	// LastSides are the sides hit by the most recent move.
	LastSides physics.CollisionSides

	canJump     bool
	timesJumped int

	pressedJump     bool
	jumpPressedTime time.Duration
	lastGrounded    time.Duration
	lastWalljump    time.Duration
}

// New spawns an airborne player at pos. now is the current game time.
func New(id physics.BodyID, pos, size gamemath.Vec2, props Properties, now time.Duration) *Player {
	return &Player{
		Body:            physics.NewBody(id, physics.Kinematic, pos, size),
		Props:           props.Sanitize(),
		State:           Airborne(),
		jumpPressedTime: now,
		lastGrounded:    now,
		lastWalljump:    now,
	}
}

func (p *Player) CanJump() bool { return p.canJump }

func (p *Player) TimesJumped() int { return p.timesJumped }

// JumpBuffered reports whether a jump press is waiting to be consumed.
func (p *Player) JumpBuffered() bool { return p.pressedJump }

// PressJump records a jump press at now. It is consumed by the next Update
// that can jump, or dropped once the buffer time has passed.
func (p *Player) PressJump(now time.Duration) {
	p.pressedJump = true
	p.jumpPressedTime = now
}

// Teleport moves the player to pos and stops it.
func (p *Player) Teleport(pos gamemath.Vec2) {
	p.Body.Teleport(pos)
}

// SetProperties swaps the tuning, sanitizing it first.
func (p *Player) SetProperties(props Properties) {
	p.Props = props.Sanitize()
}

// Update advances the player by dt seconds at game time now and returns the
// sides hit while moving.
func (p *Player) Update(dt float64, now time.Duration, in input.State, s Surroundings) physics.CollisionSides {
	if in.Action(input.ActionJump) == input.JustPressed {
		p.PressJump(now)
	}

	p.applyGravity(dt, in.Action(input.ActionJump).IsPressed())
	p.applyHorizontal(dt, now, in.Axis(input.AxisHorizontal))
	p.updateJumpCharges(now)
	p.handleJump(now)

	delta := p.Body.Velocity.Scale(dt)
	if delta.IsZero() {
		p.LastSides = 0
		return 0
	}
	p.LastSides = physics.MoveBody(&p.Body, delta, s.colliding(&p.Body))
	p.transition(p.LastSides, s.Grid)
	return p.LastSides
}

func (p *Player) applyGravity(dt float64, jumpHeld bool) {
	down := p.Body.Orientation.Down()
	vy := p.Body.Velocity.Y

	gravity := p.Props.Gravity
	if jumpHeld && vy*down < 0 {
		gravity = p.Props.JumpGravity
	}
	vy += down * gravity * dt

	if math.Abs(vy) > p.Props.TerminalSpeed {
		vy = math.Copysign(p.Props.TerminalSpeed, vy)
	}

	if _, sliding := p.State.SlidingSide(); sliding && p.Props.WallslideMaxVSpeed != nil {
		if limit := *p.Props.WallslideMaxVSpeed; vy*down > limit {
			vy = limit * down
		}
	}
	p.Body.Velocity.Y = vy
}

func (p *Player) applyHorizontal(dt float64, now time.Duration, axis float64) {
	vx := p.Body.Velocity.X
	grounded := p.State.Mode == ModeGrounded

	if axis == 0 {
		decel := p.Props.AirDeceleration
		if grounded {
			decel = p.Props.GroundDeceleration
		}
		p.Body.Velocity.X = gamemath.ApplyFriction(vx, decel*dt)
		return
	}

	if now <= p.lastWalljump+p.Props.DeadTimeAfterWalljump {
		return
	}

	var accel float64
	switch {
	case gamemath.Signum(axis) != gamemath.Signum(vx) && grounded:
		accel = p.Props.GroundDirectionChangeAcceleration
	case gamemath.Signum(axis) != gamemath.Signum(vx):
		accel = p.Props.AirDirectionChangeAcceleration
	case grounded:
		accel = p.Props.GroundAcceleration
	default:
		accel = p.Props.AirAcceleration
	}
	vx += axis * accel * dt
	p.Body.Velocity.X = gamemath.ClampSpeed(vx, p.Props.MaxRunSpeed)
}

// updateJumpCharges re-arms jumps on the ground and forfeits the first charge
// once the coyote window after leaving the ground has closed.
func (p *Player) updateJumpCharges(now time.Duration) {
	switch p.State.Mode {
	case ModeGrounded:
		if p.Props.JumpsAvailable > 0 {
			p.canJump = true
		}
		p.timesJumped = 0
		p.lastGrounded = now
	case ModeAirborne:
		if p.timesJumped == 0 && now > p.lastGrounded+p.Props.CoyoteTime {
			if p.Props.JumpsAvailable <= 1 {
				p.canJump = false
			} else {
				p.timesJumped++
			}
		}
	}
}

func (p *Player) handleJump(now time.Duration) {
	if !p.pressedJump {
		return
	}
	down := p.Body.Orientation.Down()

	if side, sliding := p.State.SlidingSide(); sliding && p.Props.CanWalljump {
		p.pressedJump = false
		p.lastWalljump = now
		p.Body.Velocity.Y = -down * p.Props.WalljumpVerticalForce
		if side == physics.SideLeft {
			p.Body.Velocity.X = p.Props.WalljumpHorizontalForce
		} else {
			p.Body.Velocity.X = -p.Props.WalljumpHorizontalForce
		}
	} else if p.canJump {
		p.pressedJump = false
		force := p.Props.JumpForce * math.Pow(p.Props.MultijumpCoefficient, float64(p.timesJumped))
		p.Body.Velocity.Y = -down * force
		p.timesJumped++
		if p.Props.JumpsAvailable <= p.timesJumped {
			p.canJump = false
		}
	}

	if now > p.jumpPressedTime+p.Props.JumpBufferTime {
		p.pressedJump = false
	}
}

// transition picks the next state from the sides hit by the last move and
// the wall sensor.
func (p *Player) transition(sides physics.CollisionSides, grid physics.Grid) {
	if sides.Has(physics.Down) {
		p.State = Grounded()
		return
	}

	// Pushing away from the wall ends the slide even while still touching it.
	if side, sliding := p.State.SlidingSide(); sliding {
		vx := p.Body.Velocity.X
		if (side == physics.SideLeft && vx > 0) || (side == physics.SideRight && vx < 0) {
			p.State = Airborne()
			return
		}
	}

	if side, ok := physics.WallSide(p.Body.WorldRect(), grid); ok {
		p.State = Sliding(side)
		return
	}
	p.State = Airborne()
}
