package main

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/clockchase/ecs/system"
	"github.com/milk9111/clockchase/game"
	"github.com/milk9111/clockchase/prefabs"
)

// The playable area is ±400 by ±300 around the origin.
const (
	screenWidth  = 800
	screenHeight = 600
)

type Game struct {
	frames int

	driver  *game.Driver
	watcher *prefabs.Watcher
	debug   bool
}

func NewGame(driver *game.Driver, watcher *prefabs.Watcher, debug bool) *Game {
	return &Game{
		driver:  driver,
		watcher: watcher,
		debug:   debug,
	}
}

func (g *Game) Update() error {
	g.frames++

	for _, path := range g.watcher.Poll() {
		if err := g.driver.Reload(path); err != nil {
			log.Printf("reload %s: %v", path, err)
		}
	}

	g.driver.Tick(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.driver.Physics().DrawDebug(screen)
	if g.debug {
		system.DrawAIDebug(g.driver.World(), screen)
	}

	msg := fmt.Sprintf("Phase: %s    FPS: %.2f", g.driver.Phase(), ebiten.ActualFPS())
	if g.driver.Phase() == game.PhaseMenu {
		msg += "\nPress Enter to start"
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func pickSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return rand.Uint64()
}
