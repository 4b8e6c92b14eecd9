package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
)

// IntentSource produces the input snapshot for one frame.
type IntentSource interface {
	Intent() component.Intent
}

// IntentFunc adapts a plain function to IntentSource.
type IntentFunc func() component.Intent

func (f IntentFunc) Intent() component.Intent {
	return f()
}

// KeyboardSource samples the keyboard and the first gamepad. It always
// reports a movement vector, zero when nothing is held.
type KeyboardSource struct{}

func (KeyboardSource) Intent() component.Intent {
	const stickDeadzone = 0.2

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace)
	start := inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	moveX, moveY := 0.0, 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}
	if up {
		moveY += 1
	}
	if down {
		moveY -= 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			moveX = leftX
		}
		jump = jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		start = start || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}

	return component.Intent{
		MoveX:   moveX,
		MoveY:   moveY,
		HasMove: true,
		Jump:    jump,
		Start:   start,
	}
}

// InputSystem copies the frame's intent onto every entity with an input
// component.
type InputSystem struct {
	Source IntentSource
}

func NewInputSystem(source IntentSource) *InputSystem {
	return &InputSystem{Source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.Source == nil || w == nil {
		return
	}

	intent := i.Source.Intent()
	ecs.ForEach(w, component.InputComponent, func(e ecs.Entity, input *component.Intent) {
		*input = intent
	})
}
