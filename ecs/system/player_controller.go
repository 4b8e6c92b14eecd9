package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/clockchase/common"
	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
)

// landedSpeed absorbs solver noise in the vertical speed of a resting body.
const landedSpeed = 1e-3

// PlayerControllerSystem turns the input intent into player velocity and
// handles leaving the playable area.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ent, ok := ecs.First(w, component.PlayerComponent)
	if !ok {
		return
	}
	player, _ := ecs.Get(w, ent, component.PlayerComponent)
	bodyComp, ok := ecs.Get(w, ent, component.PhysicsBodyComponent)
	if !ok || bodyComp.Body == nil {
		return
	}

	var intent component.Intent
	if in, ok := ecs.Get(w, ent, component.InputComponent); ok {
		intent = *in
	}

	grounded := IsGrounded(w, ent)
	player.IsGrounded = grounded

	vel := bodyComp.Body.Velocity()
	if intent.HasMove {
		vel.X = common.Clamp(intent.MoveX, -1, 1) * player.WalkSpeed
		if intent.MoveX < 0 {
			player.FacingLeft = true
		} else if intent.MoveX > 0 {
			player.FacingLeft = false
		}
	}

	if player.IsJumping && grounded && vel.Y <= landedSpeed {
		player.IsJumping = false
	}
	if intent.Jump && grounded && !player.IsJumping {
		vel.Y = player.JumpSpeed
		player.IsJumping = true
	}

	bodyComp.Body.SetVelocityVector(vel)

	if outOfBounds(w, ent, bodyComp, player.Bounds) {
		log.Printf("player: entity=%s left the level", ent)
		w.Events().Push(ecs.Event{Type: ecs.EventPlayerKilled, Data: ecs.PlayerKilled{Player: ent, Cause: ecs.KillByBoundary}})
		w.Events().Push(ecs.Event{Type: ecs.EventPhaseRequest, Data: ecs.PhaseRequest{Phase: ecs.PhasePlayingCutScene, Reason: "out of bounds"}})
		resetToOrigin(w, ent, bodyComp, player)
	}
}

func outOfBounds(w *ecs.World, ent ecs.Entity, body *component.PhysicsBody, bounds cp.Vector) bool {
	pos := body.Body.Position()
	if transform, ok := ecs.Get(w, ent, component.TransformComponent); ok {
		pos = cp.Vector{X: transform.X, Y: transform.Y}
	}
	if bounds.X > 0 && math.Abs(pos.X) > bounds.X {
		return true
	}
	return bounds.Y > 0 && math.Abs(pos.Y) > bounds.Y
}

func resetToOrigin(w *ecs.World, ent ecs.Entity, body *component.PhysicsBody, player *component.Player) {
	body.Body.SetPosition(cp.Vector{})
	body.Body.SetVelocityVector(cp.Vector{})
	player.IsJumping = false
	if transform, ok := ecs.Get(w, ent, component.TransformComponent); ok {
		transform.X, transform.Y = 0, 0
	}
}

// PlayerDeathSystem asks for the cutscene once the player has died.
type PlayerDeathSystem struct{}

func NewPlayerDeathSystem() *PlayerDeathSystem {
	return &PlayerDeathSystem{}
}

func (p *PlayerDeathSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ent, ok := ecs.First(w, component.PlayerComponent)
	if !ok {
		return
	}
	player, _ := ecs.Get(w, ent, component.PlayerComponent)
	if player.IsAlive {
		return
	}
	w.Events().Push(ecs.Event{Type: ecs.EventPhaseRequest, Data: ecs.PhaseRequest{Phase: ecs.PhasePlayingCutScene, Reason: "player died"}})
}
