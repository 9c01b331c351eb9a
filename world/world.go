// Package world owns one running game: the loaded level, the player, the
// platform and sensor bodies and the clock, and steps them in a fixed order.
package world

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/wallhop/input"
	"github.com/automoto/wallhop/physics"
	"github.com/automoto/wallhop/player"
	"github.com/automoto/wallhop/shared/gamemath"
	"github.com/automoto/wallhop/shared/leveldata"
)

var ErrUnknownLevel = errors.New("unknown level")

const (
	PlayerID physics.BodyID = 1

	firstPlatformID physics.BodyID = 100
	firstFinishID   physics.BodyID = 10000

	// How far below the player a platform still counts as carrying it.
	carryProbe = 0.05
)

// PlayerSize is the player's collider in tiles.
var PlayerSize = gamemath.V(1, 1)

// TickResult reports what happened during one Tick.
type TickResult struct {
	Sides        physics.CollisionSides
	Paused       bool
	Respawned    bool
	LevelChanged bool
}

type World struct {
	Player *player.Player

	levels   *leveldata.World
	levelPos gamemath.IVec2
	level    *leveldata.Level

	platforms []physics.Body
	floating  []*FloatingPlatform
	finish    []physics.Body
	space     *physics.Space

	clock  Clock
	paused bool
}

// New builds a world over levels and enters the first one. An empty levels
// set leaves the world without a level; Tick then only advances the clock.
func New(levels *leveldata.World, props player.Properties) *World {
	if levels == nil {
		levels = leveldata.NewWorld()
	}
	w := &World{levels: levels}
	w.Player = player.New(PlayerID, gamemath.Vec2{}, PlayerSize, props, 0)

	if first, ok := levels.First(); ok {
		// First comes from levels itself, so it always resolves.
		_ = w.LoadLevel(first)
	}
	return w
}

// LoadLevel switches to the level at pos and moves the player to its spawn.
func (w *World) LoadLevel(pos gamemath.IVec2) error {
	level, ok := w.levels.Level(pos)
	if !ok {
		return fmt.Errorf("load level %v: %w", pos, ErrUnknownLevel)
	}
	w.level = level
	w.levelPos = pos

	w.platforms = w.platforms[:0]
	w.floating = w.floating[:0]
	for i, spawn := range level.Platforms {
		id := firstPlatformID + physics.BodyID(i)
		w.platforms = append(w.platforms, physics.NewBody(id, physics.Static, spawn.Rect.Min, spawn.Rect.Size()))
		if !spawn.Travel.IsZero() && spawn.Duration > 0 {
			w.floating = append(w.floating, NewFloatingPlatform(id, spawn.Rect.Min, spawn.Travel, spawn.Duration))
		}
	}

	w.finish = w.finish[:0]
	for i, r := range level.FinishLines {
		w.finish = append(w.finish, physics.NewBody(firstFinishID+physics.BodyID(i), physics.Sensor, r.Min, r.Size()))
	}

	w.space = physics.NewSpace(level.Bounds())
	w.space.Sync(w.platforms)
	w.Respawn()
	return nil
}

// Respawn teleports the player to the level spawn.
func (w *World) Respawn() {
	if w.level == nil {
		return
	}
	w.Player.Teleport(w.level.Spawn)
	w.Player.State = player.Airborne()
}

// Tick advances the world by dt seconds using the resolved input.
func (w *World) Tick(dt float64, in input.State) TickResult {
	if in.Action(input.ActionPause) == input.JustPressed {
		w.paused = !w.paused
	}
	if w.paused {
		return TickResult{Paused: true}
	}

	var res TickResult
	if in.Action(input.ActionRespawn) == input.JustPressed {
		w.Respawn()
		res.Respawned = true
	}

	w.clock.Advance(dt)
	if w.level == nil {
		return res
	}

	carried := w.carrying()
	moved := w.movePlatforms(dt)
	w.space.Sync(w.platforms)
	if d, ok := moved[carried]; ok {
		w.carry(d)
	}

	res.Sides = w.Player.Update(dt, w.clock.Now(), in, player.Surroundings{Space: w.space, Grid: w.level})

	if w.touchesHazard() {
		w.Respawn()
		res.Respawned = true
	}
	if w.touchesFinish() {
		if next, ok := w.levels.Next(w.levelPos); ok {
			_ = w.LoadLevel(next)
			res.LevelChanged = true
		}
	}
	return res
}

func (w *World) movePlatforms(dt float64) map[physics.BodyID]gamemath.Vec2 {
	moved := make(map[physics.BodyID]gamemath.Vec2, len(w.floating))
	for _, f := range w.floating {
		body := w.platform(f.ID)
		if body == nil {
			continue
		}
		pos := f.Update(dt)
		moved[f.ID] = pos.Sub(body.Position)
		body.Position = pos
	}
	return moved
}

// carrying returns the platform the player stands on, or 0.
func (w *World) carrying() physics.BodyID {
	if w.Player.State.Mode != player.ModeGrounded {
		return 0
	}
	probe := w.Player.Body
	probe.Position.Y += carryProbe * probe.Orientation.Down()
	if ids := w.space.Overlapping(probe.WorldRect(), probe.ID); len(ids) > 0 {
		return ids[0]
	}
	return 0
}

// carry moves the player with its platform, stopping only at level tiles.
func (w *World) carry(delta gamemath.Vec2) {
	b := &w.Player.Body
	vel := b.Velocity
	physics.MoveBody(b, delta, func(pos gamemath.Vec2) bool {
		return physics.TouchesGrid(b.RectAt(pos), w.level, b.Mask)
	})
	b.Velocity = vel
}

func (w *World) platform(id physics.BodyID) *physics.Body {
	for i := range w.platforms {
		if w.platforms[i].ID == id {
			return &w.platforms[i]
		}
	}
	return nil
}

func (w *World) touchesHazard() bool {
	sensor := w.Player.Body
	sensor.Kind = physics.Sensor
	sensor.Mask = leveldata.Hazard
	return physics.DetectBodies(&sensor, nil, w.level).World
}

func (w *World) touchesFinish() bool {
	others := []physics.Body{w.Player.Body}
	for i := range w.finish {
		if physics.DetectBodies(&w.finish[i], others, nil).Touches(PlayerID) {
			return true
		}
	}
	return false
}

// SetProperties replaces the player tuning between ticks.
func (w *World) SetProperties(props player.Properties) {
	w.Player.SetProperties(props)
}

func (w *World) Level() *leveldata.Level { return w.level }

func (w *World) LevelPos() gamemath.IVec2 { return w.levelPos }

func (w *World) Levels() *leveldata.World { return w.levels }

// Platforms returns the platform bodies at their current positions.
func (w *World) Platforms() []physics.Body { return w.platforms }

func (w *World) FinishLines() []physics.Body { return w.finish }

func (w *World) Paused() bool { return w.paused }

func (w *World) SetPaused(paused bool) { w.paused = paused }

func (w *World) Now() time.Duration { return w.clock.Now() }
