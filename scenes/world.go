package scenes

import (
	"path/filepath"

	"github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/input"
	"github.com/automoto/wallhop/player"
	"github.com/automoto/wallhop/systems"
	"github.com/automoto/wallhop/ui"
	"github.com/automoto/wallhop/world"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlatformerScene runs a world against live devices. It owns the binder, the
// camera and the tuning panel, and applies config reloads between ticks.
type PlatformerScene struct {
	world  *world.World
	binder *input.Binder
	camera systems.Camera

	store      *systems.Store
	watcher    *config.Watcher
	configPath string
	tuning     *ui.TuningPanel

	logger *log.Logger
}

// Options are the collaborators of a PlatformerScene. Store and Watcher may be
// nil.
type Options struct {
	Store      *systems.Store
	Watcher    *config.Watcher
	ConfigPath string
	Logger     *log.Logger
}

func NewPlatformerScene(w *world.World, opts Options) (*PlatformerScene, error) {
	ps := &PlatformerScene{
		world:      w,
		binder:     input.NewBinder(config.Input),
		store:      opts.Store,
		watcher:    opts.Watcher,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
	}
	if ps.logger == nil {
		ps.logger = log.Default()
	}

	tuning, err := ui.NewTuningPanel(w.Player.Props, w.SetProperties, ps.saveProperties)
	if err != nil {
		return nil, err
	}
	ps.tuning = tuning

	systems.SnapCamera(&ps.camera, w)
	return ps, nil
}

func (ps *PlatformerScene) Update() {
	systems.UpdateInput(ps.binder.Record())
	state := ps.binder.Resolve()

	if state.Action(input.ActionToggleDebug) == input.JustPressed {
		config.Debug.ShowOverlay = !config.Debug.ShowOverlay
	}

	ps.reloadConfig()

	if config.Debug.ShowTuning {
		ps.tuning.Update()
	}

	dt := world.TimeStep * config.Physics.TimeScale
	res := ps.world.Tick(dt, state)
	if res.LevelChanged {
		systems.SnapCamera(&ps.camera, ps.world)
	} else if !res.Paused {
		systems.UpdateCamera(&ps.camera, ps.world, dt)
	}

	ps.binder.FinishFrame()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(config.Background)

	systems.DrawWorld(screen, ps.world, &ps.camera)
	systems.DrawDebug(screen, ps.world, &ps.camera)
	systems.DrawPause(screen, ps.world)

	if config.Debug.ShowTuning {
		ps.tuning.Draw(screen)
	}
}

// reloadConfig applies pending changes of the loaded config file.
func (ps *PlatformerScene) reloadConfig() {
	if ps.watcher == nil {
		return
	}

	select {
	case err, ok := <-ps.watcher.Errors:
		if ok {
			ps.logger.Warn("config watcher", "error", err)
		}
	default:
	}

	changed := false
	for _, path := range ps.watcher.Drain() {
		if filepath.Clean(path) == filepath.Clean(ps.configPath) {
			changed = true
		}
	}
	if !changed {
		return
	}

	f, err := config.ReadFile(ps.configPath)
	if err != nil {
		// Editors often write partial files; keep the running config.
		ps.logger.Warn("could not reload config", "error", err)
		return
	}
	f.Apply()
	ps.world.SetProperties(f.Player)
	ps.binder.SetBindings(f.Input)
	ps.tuning.SetProperties(ps.world.Player.Props)
	ps.logger.Info("config reloaded", "path", f.Path)
}

func (ps *PlatformerScene) saveProperties(props player.Properties) {
	// The store logs the outcome
	_ = ps.store.SaveProperties(props)
}

// Close stops the config watcher.
func (ps *PlatformerScene) Close() error {
	if ps.watcher == nil {
		return nil
	}
	return ps.watcher.Close()
}
