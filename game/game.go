// Package game drives the particle field frame by frame, in a raylib window
// or headless, and wires the overlays, event board and telemetry around it.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aurora/config"
	"github.com/pthm-cable/aurora/events"
	"github.com/pthm-cable/aurora/systems"
	"github.com/pthm-cable/aurora/telemetry"
	"github.com/pthm-cable/aurora/ui"
)

// Options configures a Game.
type Options struct {
	Config     *config.Config // nil uses config.Cfg()
	Seed       int64
	LogStats   bool
	OutputDir  string // CSV logs and config snapshot, empty disables
	EventsPath string // Event store file, empty uses the configured one
	Headless   bool
	Realtime   bool // Pace headless runs at the target FPS
}

// Game holds the complete runtime state.
type Game struct {
	cfg   *config.Config
	rng   *rand.Rand
	field *systems.ParticleField

	viewport Viewport
	pointer  PointerTracker
	target   systems.DrawTarget

	// Windowed-only state, nil when headless
	view *view

	// Telemetry
	perf          *telemetry.PerfCollector
	collector     *telemetry.Collector
	output        *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)

	// State
	frame       int64
	paused      bool
	realtime    bool
	lastPointer systems.Pointer

	width, height float32
}

// NewGame creates a game. Windowed games must be created after rl.InitWindow.
func NewGame(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	g := &Game{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		collector: telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Screen.TargetFPS),
		logStats:  opts.LogStats,
		realtime:  opts.Realtime,
	}
	g.field = systems.NewParticleField(systems.ParamsFromConfig(cfg), g.rng)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}
	g.output = output

	if opts.Headless {
		g.viewport = fixedViewport{w: cfg.Derived.ScreenW32, h: cfg.Derived.ScreenH32}
		g.pointer = noPointer{}
		g.target = discardTarget{}
	} else {
		board, err := g.loadBoard(opts.EventsPath)
		if err != nil {
			output.Close()
			return nil, err
		}
		g.viewport = windowViewport{}
		g.pointer = mousePointer{}

		w, h := g.viewport.Size()
		params := g.field.Params()
		g.view = newView(int32(w), int32(h), board, ui.Tuning{
			ConnectionDistance: params.ConnectionDistance,
			InfluenceRadius:    params.InfluenceRadius,
		})
		g.target = g.view.canvas
	}

	g.width, g.height = g.viewport.Size()
	g.field.Initialize(g.width, g.height)

	slog.Info("particle field initialized",
		"particles", g.field.Count(),
		"width", g.width,
		"height", g.height,
		"seed", opts.Seed,
		"headless", opts.Headless,
	)
	return g, nil
}

// loadBoard opens the event store and wraps it in a board panel.
func (g *Game) loadBoard(path string) (*ui.BoardPanel, error) {
	if path == "" {
		path = g.cfg.Derived.StoreFile
	}
	store := events.NewFileStore(path)
	board, err := events.NewBoard(store)
	if err != nil {
		return nil, fmt.Errorf("opening event board: %w", err)
	}
	slog.Info("event board loaded", "path", store.Path(), "events", board.Len())

	creds := events.Credentials{
		Username: g.cfg.Events.AdminUsername,
		Password: g.cfg.Events.AdminPassword,
	}
	return ui.NewBoardPanel(board, creds), nil
}

// Step advances and renders one frame.
func (g *Game) Step() {
	g.perf.StartFrame()

	g.handleResize()
	if g.view != nil {
		g.handleInput()
	}
	pointer := g.pointer.Pointer()
	g.lastPointer = pointer

	g.perf.StartPhase(telemetry.PhaseAdvance)
	if !g.paused {
		g.field.AdvanceFrame(g.width, g.height, pointer)
		g.frame++
	}

	g.perf.StartPhase(telemetry.PhaseRender)
	g.renderField()

	if g.view != nil {
		g.perf.StartPhase(telemetry.PhaseOverlay)
		g.drawOverlays()
	}

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	if !g.paused {
		g.collector.RecordFrame(g.field.Stats(), pointer.Present)
		g.flushTelemetry()
	}
	g.perf.EndFrame()

	if g.view != nil {
		rl.EndDrawing()
		g.perf.RecordPresent()
	}
}

// Run drives the windowed loop until the window closes, ctx is cancelled
// or maxFrames frames have run (0 = unlimited).
func (g *Game) Run(ctx context.Context, maxFrames int64) error {
	if g.view == nil {
		return errors.New("game: Run called on a headless game")
	}
	// Escape is an in-app key, not a quit key
	rl.SetExitKey(0)

	slog.Info("starting windowed run", "max_frames", maxFrames)
	err := RunFrames(ctx, 0, maxFrames, func(int64) error {
		if rl.WindowShouldClose() {
			return ErrStopped
		}
		g.Step()
		return nil
	})
	return g.finish(err)
}

// RunHeadless steps the field without a window until ctx is cancelled or
// maxFrames frames have run (0 = unlimited).
func (g *Game) RunHeadless(ctx context.Context, maxFrames int64) error {
	fps := 0
	if g.realtime {
		fps = g.cfg.Screen.TargetFPS
	}

	slog.Info("starting headless run", "max_frames", maxFrames, "fps", fps)
	err := RunFrames(ctx, fps, maxFrames, func(int64) error {
		g.Step()
		return nil
	})
	return g.finish(err)
}

// finish treats cancellation as a normal stop.
func (g *Game) finish(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	slog.Info("run stopped", "frame", g.frame, "particles", g.field.Count())
	return err
}

// SetStatsCallback registers a function called on every telemetry flush.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// Frame returns the number of frames the field has advanced.
func (g *Game) Frame() int64 {
	return g.frame
}

// Field returns the particle field.
func (g *Game) Field() *systems.ParticleField {
	return g.field
}

// Unload releases GPU resources and closes output files.
func (g *Game) Unload() {
	if g.view != nil {
		g.view.canvas.Unload()
	}
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
