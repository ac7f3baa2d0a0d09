package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ledgeswing/common"
	"github.com/milk9111/ledgeswing/prefabs"
	"github.com/milk9111/ledgeswing/sim"
)

// Options configures a Game.
type Options struct {
	SceneFile  string
	TuningFile string
	// FixedStep overrides the prefab's fixed timestep when > 0.
	FixedStep float32
	Debug     bool
	Watch     bool
}

type Game struct {
	frames int

	opts     Options
	input    *Input
	renderer *Renderer
	watcher  *prefabs.Watcher

	sim            *sim.Sim
	bootstrap      sim.Bootstrap
	resetOnContact bool

	started bool
	last    time.Time
	now     func() time.Time
}

// maxFrameTime caps the wall-clock time fed to the simulation per frame.
// Ebiten stops calling Update while the window is unfocused, so the first
// frame after refocus would otherwise see the whole pause.
const maxFrameTime = 0.25

// frameElapsed returns the seconds between last and now, clamped to
// [0, maxFrameTime].
func frameElapsed(last, now time.Time) float32 {
	elapsed := now.Sub(last).Seconds()
	if elapsed < 0 {
		return 0
	}
	if elapsed > maxFrameTime {
		return maxFrameTime
	}
	return float32(elapsed)
}

func NewGame(opts Options) (*Game, error) {
	scene, bootstrap, err := prefabs.LoadScene(opts.SceneFile)
	if err != nil {
		return nil, err
	}
	tuningSpec, tuning, err := prefabs.LoadTuning(opts.TuningFile)
	if err != nil {
		return nil, err
	}
	if opts.FixedStep > 0 {
		tuning.FixedStep = opts.FixedStep
	}

	s, err := sim.New(bootstrap, tuning)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", opts.SceneFile, err)
	}

	g := &Game{
		opts:           opts,
		input:          NewInput(),
		renderer:       NewRenderer(scene.Palette),
		sim:            s,
		bootstrap:      bootstrap,
		resetOnContact: tuningSpec.ResetOnContact,
		now:            time.Now,
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefab watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()
	if g.input.QuitPressed {
		return ebiten.Termination
	}
	if g.input.ResetPressed {
		g.reset("manual")
	}
	g.reloadChanged()

	now := g.now()
	if !g.started {
		// The window did not exist before the first Update.
		g.started = true
		g.last = now
	}
	elapsed := frameElapsed(g.last, now)
	g.last = now
	g.step(sim.Input{Grab: g.input.Grab}, elapsed)
	return nil
}

// step advances the simulation and reacts to what happened during it.
func (g *Game) step(in sim.Input, elapsed float32) {
	g.sim.Advance(in, elapsed)

	for _, c := range g.sim.DrainContacts() {
		if g.opts.Debug {
			log.Printf("pipe contact %v top=%v at %v", c.Entity, c.Pipe.Top, c.Pipe.Position)
		}
		if g.resetOnContact {
			g.reset("pipe contact")
			break
		}
	}

	if g.opts.Debug {
		if err := g.sim.Scene().CheckInvariants(); err != nil {
			log.Printf("tick %d: %v", g.sim.Ticks(), err)
		}
	}
}

func (g *Game) reset(reason string) {
	if err := g.sim.Reset(g.bootstrap); err != nil {
		log.Printf("reset (%s) failed: %v", reason, err)
		return
	}
	if g.opts.Debug {
		log.Printf("scene reset: %s", reason)
	}
}

func (g *Game) reloadChanged() {
	for _, name := range g.watcher.Drain() {
		switch name {
		case prefabs.Name(g.opts.SceneFile):
			g.reloadScene()
		case prefabs.Name(g.opts.TuningFile):
			g.reloadTuning()
		}
	}
}

func (g *Game) reloadScene() {
	scene, bootstrap, err := prefabs.LoadScene(g.opts.SceneFile)
	if err != nil {
		log.Printf("reload %s: %v", g.opts.SceneFile, err)
		return
	}
	if err := g.sim.Reset(bootstrap); err != nil {
		log.Printf("reload %s: %v", g.opts.SceneFile, err)
		return
	}
	g.bootstrap = bootstrap
	g.renderer.SetPalette(scene.Palette)
	log.Printf("reloaded %s", g.opts.SceneFile)
}

func (g *Game) reloadTuning() {
	spec, tuning, err := prefabs.LoadTuning(g.opts.TuningFile)
	if err == nil {
		if g.opts.FixedStep > 0 {
			tuning.FixedStep = g.opts.FixedStep
		}
		err = g.sim.SetTuning(tuning)
	}
	if err != nil {
		if errors.Is(err, sim.ErrInvalidTuning) {
			log.Printf("reload %s: keeping previous tuning: %v", g.opts.TuningFile, err)
		} else {
			log.Printf("reload %s: %v", g.opts.TuningFile, err)
		}
		return
	}
	g.resetOnContact = spec.ResetOnContact
	log.Printf("reloaded %s", g.opts.TuningFile)
}

func (g *Game) Draw(screen *ebiten.Image) {
	view := g.sim.Scene().Snapshot()
	g.renderer.Draw(screen, view)
	g.renderer.DrawHUD(screen, view, g.opts.Debug, g.frames)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
