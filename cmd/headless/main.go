package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/milk9111/ledgeswing/prefabs"
	"github.com/milk9111/ledgeswing/sim"
)

func main() {
	sceneFile := flag.String("scene", prefabs.SceneFile, "scene prefab")
	tuningFile := flag.String("tuning", prefabs.TuningFile, "tuning prefab")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory for on-disk prefab overrides")
	ticks := flag.Int("ticks", 600, "number of frames to run")
	dt := flag.Float64("dt", 1.0/60.0, "seconds per frame")
	fixed := flag.Float64("fixed", 0, "fixed timestep in seconds (0 ticks once per frame)")
	pattern := flag.String("pattern", "90:30", "grab pattern as held:released frame counts")
	every := flag.Int("every", 60, "log a snapshot every n frames (0 disables)")
	debug := flag.Bool("debug", false, "check invariants after every frame")
	flag.Parse()

	prefabs.Dir = *prefabDir

	grab, err := parsePattern(*pattern)
	if err != nil {
		log.Fatal(err)
	}

	_, bootstrap, err := prefabs.LoadScene(*sceneFile)
	if err != nil {
		log.Fatal(err)
	}
	_, tuning, err := prefabs.LoadTuning(*tuningFile)
	if err != nil {
		log.Fatal(err)
	}
	if *fixed > 0 {
		tuning.FixedStep = float32(*fixed)
	}

	s, err := sim.New(bootstrap, tuning)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(s, *ticks, float32(*dt), grab, *every, *debug); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func run(s *sim.Sim, frames int, dt float32, grab func(frame int) bool, every int, debug bool) error {
	for frame := 0; frame < frames; frame++ {
		s.Advance(sim.Input{Grab: grab(frame)}, dt)

		for _, c := range s.DrainContacts() {
			log.Printf("frame %d: pipe contact top=%v at %v", frame, c.Pipe.Top, c.Pipe.Position)
		}
		if debug {
			if err := s.Scene().CheckInvariants(); err != nil {
				return fmt.Errorf("frame %d: %w", frame, err)
			}
		}
		if every > 0 && frame%every == 0 {
			log.Print(describe(frame, s.Scene().Snapshot()))
		}
	}
	log.Printf("done: %d frames, %d ticks, %d contacts", frames, s.Ticks(), s.Scene().Contacts)
	return nil
}

// parsePattern turns "held:released" into a repeating grab schedule.
func parsePattern(p string) (func(frame int) bool, error) {
	held, released, ok := strings.Cut(p, ":")
	if !ok {
		return nil, fmt.Errorf("pattern %q: want held:released", p)
	}
	h, err := strconv.Atoi(held)
	if err != nil || h < 0 {
		return nil, fmt.Errorf("pattern %q: bad held count", p)
	}
	r, err := strconv.Atoi(released)
	if err != nil || r < 0 {
		return nil, fmt.Errorf("pattern %q: bad released count", p)
	}
	period := h + r
	return func(frame int) bool {
		if period == 0 {
			return false
		}
		return frame%period < h
	}, nil
}

func describe(frame int, v sim.View) string {
	if !v.HasPlayer {
		return fmt.Sprintf("frame %d: no player", frame)
	}
	p := v.Player
	ledge := "-"
	if p.HasLedge {
		ledge = strconv.Itoa(int(p.AttachedLedge))
	}
	return fmt.Sprintf("frame %d: %s pos=(%.1f,%.1f) vel=(%.1f,%.1f) ledge=%s rope=%.1f camera=(%.1f,%.1f)",
		frame, p.State, p.Position.X(), p.Position.Y(), p.Velocity.X(), p.Velocity.Y(),
		ledge, v.Rope.Length, v.Camera.X(), v.Camera.Y())
}
