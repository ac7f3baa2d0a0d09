package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ledgeswing/common"
	"github.com/milk9111/ledgeswing/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	sceneFile := flag.String("scene", prefabs.SceneFile, "scene prefab (embedded unless present on disk)")
	tuningFile := flag.String("tuning", prefabs.TuningFile, "tuning prefab (embedded unless present on disk)")
	fixed := flag.Float64("fixed", 0, "fixed timestep in seconds (0 uses the frame time)")
	watch := flag.Bool("watch", false, "reload prefabs when they change on disk")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory for on-disk prefab overrides")
	flag.Parse()

	prefabs.Dir = *prefabDir

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("ledgeswing")

	game, err := NewGame(Options{
		SceneFile:  *sceneFile,
		TuningFile: *tuningFile,
		FixedStep:  float32(*fixed),
		Debug:      *debug,
		Watch:      *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
