package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
)

var debugCategoryColors = map[uint]color.RGBA{
	component.CategoryGround: {R: 60, G: 200, B: 60, A: 255},
	component.CategoryWall:   {R: 60, G: 120, B: 220, A: 255},
	component.CategoryPlayer: {R: 240, G: 240, B: 240, A: 255},
	component.CategoryEnemy:  {R: 230, G: 70, B: 60, A: 255},
	component.CategoryClock:  {R: 240, G: 200, B: 40, A: 255},
}

// DrawDebug outlines the bounding box of every collider in the space,
// coloured by collision category. World coordinates are y-up with the
// origin at the centre of the screen.
func (ps *PhysicsSystem) DrawDebug(screen *ebiten.Image) {
	if ps == nil || screen == nil {
		return
	}
	bounds := screen.Bounds()
	originX := float64(bounds.Dx()) / 2
	originY := float64(bounds.Dy()) / 2

	for shape := range ps.shapes {
		bb := shape.BB()
		clr, ok := debugCategoryColors[shape.Filter.Categories]
		if !ok {
			clr = color.RGBA{R: 200, G: 200, B: 200, A: 255}
		}
		x := float32(originX + bb.L)
		y := float32(originY - bb.T)
		vector.StrokeRect(screen, x, y, float32(bb.R-bb.L), float32(bb.T-bb.B), 1, clr, false)
	}
}

// DrawAIDebug prints each enemy's state and grounded flag above it, plus the
// player's movement flags in the corner.
func DrawAIDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	bounds := screen.Bounds()
	originX := float64(bounds.Dx()) / 2
	originY := float64(bounds.Dy()) / 2

	ecs.ForEach3(w, component.EnemyComponent, component.AIStateComponent, component.TransformComponent, func(e ecs.Entity, enemy *component.Enemy, state *component.AIState, transform *component.Transform) {
		action := "none"
		if enemy.CurrentAction != nil {
			action = enemy.CurrentAction.State().String()
		}
		text := fmt.Sprintf("%s\n%s\ngrounded=%v", state.Current, action, enemy.IsGrounded)
		x := int(originX + transform.X - 32)
		y := int(originY - transform.Y - 64)
		ebitenutil.DebugPrintAt(screen, text, x, y)
	})

	player, ok := ecs.First(w, component.PlayerComponent)
	if !ok {
		return
	}
	p, _ := ecs.Get(w, player, component.PlayerComponent)
	text := fmt.Sprintf("Grounded: %v\nJumping: %v\nAlive: %v\nClocks: %d", p.IsGrounded, p.IsJumping, p.IsAlive, ecs.Count(w, component.ClockComponent))
	ebitenutil.DebugPrintAt(screen, text, 10, 40)
}
