package system

import (
	"slices"

	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
)

// AnimationSystem picks a clip from each entity's logical state and steps
// the sprite through its frames.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Time().Delta

	ecs.ForEach2(w, component.AnimationComponent, component.SpriteComponent, func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		key, facingLeft, ok := animationKey(w, e)
		if !ok {
			return
		}
		sprite.FlipX = facingLeft != sprite.ArtFacesLeft

		if key != anim.Key {
			clip := anim.Clips[key]
			anim.Key = key
			anim.Frames = clip.Frames
			anim.Timer = component.NewTimer(clip.FrameSeconds, component.TimerRepeating)
			if len(anim.Frames) > 0 {
				sprite.Index = anim.Frames[0]
			}
			return
		}

		anim.Timer.Tick(dt)
		if len(anim.Frames) == 0 {
			return
		}
		idx := slices.Index(anim.Frames, sprite.Index)
		if idx < 0 {
			sprite.Index = anim.Frames[0]
			return
		}
		if n := anim.Timer.TimesFinished(); n > 0 {
			sprite.Index = anim.Frames[(idx+n)%len(anim.Frames)]
		}
	})
}

// animationKey is the enemy state name, or walk/idle for the player.
func animationKey(w *ecs.World, e ecs.Entity) (string, bool, bool) {
	if state, ok := ecs.Get(w, e, component.AIStateComponent); ok {
		facingLeft := false
		if enemy, ok := ecs.Get(w, e, component.EnemyComponent); ok {
			facingLeft = enemy.FacingLeft
		}
		return state.Current.String(), facingLeft, true
	}
	if player, ok := ecs.Get(w, e, component.PlayerComponent); ok {
		key := "idle"
		if input, ok := ecs.Get(w, e, component.InputComponent); ok && input.MoveX != 0 {
			key = "walk"
		}
		return key, player.FacingLeft, true
	}
	return "", false, false
}
