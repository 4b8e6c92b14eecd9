package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/clockchase/ecs/system"
	"github.com/milk9111/clockchase/game"
	"github.com/milk9111/clockchase/prefabs"
	"github.com/milk9111/clockchase/stats"
	"github.com/pkg/profile"
)

func main() {
	debug := flag.Bool("debug", false, "draw enemy states and grounded flags")
	levelName := flag.String("level", game.DefaultLevel, "level name in levels/ (basename, .json optional)")
	watch := flag.Bool("watch", false, "hot reload prefab specs and scripts from prefabs/")
	seed := flag.Uint64("seed", 0, "seed for enemy rolls (0 picks one)")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	flag.Parse()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("unknown -profile %q (want cpu or mem)", *profileMode)
	}

	recorder, err := stats.Open("clockchase")
	if err != nil {
		log.Printf("failed to load stats: %v", err)
	}

	name := *levelName
	if filepath.Ext(name) == "" {
		name += ".json"
	}

	driver, err := game.NewDriver(game.Config{
		Level: name,
		Seed:  pickSeed(*seed),
		Input: system.KeyboardSource{},
		Stats: recorder,
	})
	if err != nil {
		log.Fatal(err)
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.DiskDir, filepath.Join(prefabs.DiskDir, "scripts"))
		if err != nil {
			log.Printf("failed to watch %s: %v", prefabs.DiskDir, err)
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("clockchase")

	if err := ebiten.RunGame(NewGame(driver, watcher, *debug)); err != nil {
		log.Fatal(err)
	}
}
