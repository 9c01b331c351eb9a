package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/input"
	"github.com/automoto/wallhop/player"
	"github.com/automoto/wallhop/shared/gamemath"
	"github.com/automoto/wallhop/world"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	flagTicks   int
	flagPattern string
	flagLevel   string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted input pattern without a window",
	Long: `Step the world at the fixed tick rate with a scripted input pattern and
print what the player did. Useful to compare tunings.

Patterns:
  idle    - No input
  run     - Hold right
  hop     - Hold right, jump every 40 ticks
  zigzag  - Switch direction and jump every 45 ticks, to climb shafts

Examples:
  wallhop simulate
  wallhop simulate --pattern zigzag --level shaft --ticks 1200`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to run")
	simulateCmd.Flags().StringVar(&flagPattern, "pattern", "hop", "Input pattern: "+strings.Join(patternNames(), ", "))
	simulateCmd.Flags().StringVar(&flagLevel, "level", "", "Name of the map to start on (default: first)")
}

// pattern returns the input for a tick.
type pattern func(tick int) input.State

var patterns = map[string]pattern{
	"idle": func(int) input.State { return input.State{} },
	"run": func(int) input.State {
		return input.State{}.WithAxis(input.AxisHorizontal, 1)
	},
	"hop": func(tick int) input.State {
		return input.State{}.
			WithAxis(input.AxisHorizontal, 1).
			WithAction(input.ActionJump, pulse(tick, 40, 12))
	},
	"zigzag": func(tick int) input.State {
		dir := 1.0
		if (tick/45)%2 == 1 {
			dir = -1
		}
		return input.State{}.
			WithAxis(input.AxisHorizontal, dir).
			WithAction(input.ActionJump, pulse(tick, 45, 15))
	},
}

func patternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// pulse presses a button at the start of every period and holds it for hold
// ticks.
func pulse(tick, period, hold int) input.ActionState {
	switch phase := tick % period; {
	case phase == 0:
		return input.JustPressed
	case phase < hold:
		return input.Held
	case phase == hold:
		return input.JustReleased
	}
	return input.Released
}

type simReport struct {
	Pattern      string
	Level        string
	Ticks        int
	Elapsed      time.Duration
	Start        gamemath.Vec2
	Final        gamemath.Vec2
	State        player.State
	Peak         float64 // highest point reached above the start, in tiles
	JumpPresses  int
	Respawns     int
	LevelChanges int
	ModeTicks    map[player.Mode]int
}

// simulate runs ticks steps of p on w.
func simulate(w *world.World, name string, p pattern, ticks int) simReport {
	report := simReport{
		Pattern:   name,
		Ticks:     ticks,
		Start:     w.Player.Body.Position,
		ModeTicks: make(map[player.Mode]int),
	}
	highest := report.Start.Y

	for tick := 0; tick < ticks; tick++ {
		in := p(tick)
		if in.Action(input.ActionJump) == input.JustPressed {
			report.JumpPresses++
		}

		res := w.Tick(world.TimeStep*config.Physics.TimeScale, in)
		if res.Respawned {
			report.Respawns++
		}
		if res.LevelChanged {
			report.LevelChanges++
			highest = w.Player.Body.Position.Y
		}

		// y grows downwards
		highest = min(highest, w.Player.Body.Position.Y)
		report.ModeTicks[w.Player.State.Mode]++
	}

	report.Elapsed = w.Now()
	report.Final = w.Player.Body.Position
	report.State = w.Player.State
	report.Peak = report.Start.Y - highest
	if level := w.Level(); level != nil {
		report.Level = level.Name
	}
	return report
}

var (
	reportTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	reportLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	reportValue = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	reportBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)
)

func (r simReport) String() string {
	rows := [][2]string{
		{"pattern", r.Pattern},
		{"level", r.Level},
		{"ticks", fmt.Sprintf("%d (%v)", r.Ticks, r.Elapsed.Truncate(time.Millisecond))},
		{"start", fmt.Sprintf("%.2f, %.2f", r.Start.X, r.Start.Y)},
		{"final", fmt.Sprintf("%.2f, %.2f", r.Final.X, r.Final.Y)},
		{"state", r.State.String()},
		{"peak", fmt.Sprintf("%.2f tiles", r.Peak)},
		{"jump presses", fmt.Sprint(r.JumpPresses)},
		{"respawns", fmt.Sprint(r.Respawns)},
		{"level changes", fmt.Sprint(r.LevelChanges)},
		{"grounded", fmt.Sprintf("%d ticks", r.ModeTicks[player.ModeGrounded])},
		{"sliding", fmt.Sprintf("%d ticks", r.ModeTicks[player.ModeSliding])},
		{"airborne", fmt.Sprintf("%d ticks", r.ModeTicks[player.ModeAirborne])},
	}

	lines := []string{reportTitle.Render("Simulation")}
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			reportLabel.Render(row[0]),
			reportValue.Render(row[1]),
		))
	}
	return reportBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	p, ok := patterns[flagPattern]
	if !ok {
		return fmt.Errorf("unknown pattern %q (available: %s)", flagPattern, strings.Join(patternNames(), ", "))
	}
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	levels, err := loadLevels(logger)
	if err != nil {
		return err
	}

	w := world.New(levels, cfg.Player)
	if flagLevel != "" {
		if err := enterLevel(w, flagLevel); err != nil {
			return err
		}
	}
	if w.Level() == nil {
		return fmt.Errorf("no levels to simulate")
	}

	fmt.Fprintln(cmd.OutOrStdout(), simulate(w, flagPattern, p, flagTicks))
	return nil
}

// enterLevel loads the map called name.
func enterLevel(w *world.World, name string) error {
	for _, pos := range w.Levels().Positions() {
		if level, ok := w.Levels().Level(pos); ok && level.Name == name {
			return w.LoadLevel(pos)
		}
	}
	return fmt.Errorf("%w: %q", world.ErrUnknownLevel, name)
}
