package system

import (
	"testing"

	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spriteOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Sprite {
	t.Helper()
	sprite, ok := ecs.Get(w, e, component.SpriteComponent)
	require.True(t, ok)
	return sprite
}

func TestEnemyAnimationCyclesClip(t *testing.T) {
	w := ecs.NewWorld()
	enemy := addTestEnemy(t, w, 0, 0, true)
	anim := NewAnimationSystem()

	step(w, 0.125, anim)
	assert.Equal(t, 0, spriteOf(t, w, enemy).Index)

	step(w, 0.125, anim)
	assert.Equal(t, 1, spriteOf(t, w, enemy).Index)

	step(w, 0.125, anim)
	assert.Equal(t, 0, spriteOf(t, w, enemy).Index, "wraps")

	step(w, 0.0625, anim)
	assert.Equal(t, 0, spriteOf(t, w, enemy).Index, "holds between frames")
}

func TestEnemyAnimationSwitchesClipOnStateChange(t *testing.T) {
	w := ecs.NewWorld()
	enemy := addTestEnemy(t, w, 0, 0, true)
	anim := NewAnimationSystem()
	step(w, 0.125, anim)
	step(w, 0.125, anim)
	require.Equal(t, 1, spriteOf(t, w, enemy).Index)

	aiState(t, w, enemy).Current = component.StateSpewAttack
	step(w, 0.125, anim)
	assert.Equal(t, 3, spriteOf(t, w, enemy).Index)

	aiState(t, w, enemy).Current = component.StateLungeAttack
	step(w, 0.125, anim)
	assert.Equal(t, 2, spriteOf(t, w, enemy).Index)
}

func TestAnimationSnapsUnknownFrame(t *testing.T) {
	w := ecs.NewWorld()
	enemy := addTestEnemy(t, w, 0, 0, true)
	anim := NewAnimationSystem()
	step(w, 0.125, anim)

	spriteOf(t, w, enemy).Index = 3
	step(w, 0.01, anim)
	assert.Equal(t, 0, spriteOf(t, w, enemy).Index)
}

func TestSpriteFlipFollowsFacing(t *testing.T) {
	w := ecs.NewWorld()
	enemy := addTestEnemy(t, w, 0, 0, true)
	player := addTestPlayer(t, w, 0, 0)
	anim := NewAnimationSystem()

	step(w, 0.125, anim)
	assert.False(t, spriteOf(t, w, enemy).FlipX, "enemy art already faces left")
	assert.False(t, spriteOf(t, w, player).FlipX)

	enemyOf(t, w, enemy).FacingLeft = false
	playerOf(t, w, player).FacingLeft = true
	step(w, 0.125, anim)
	assert.True(t, spriteOf(t, w, enemy).FlipX)
	assert.True(t, spriteOf(t, w, player).FlipX)
}

func TestPlayerAnimationWalkAndIdle(t *testing.T) {
	w := ecs.NewWorld()
	player := addTestPlayer(t, w, 0, 0)
	anim := NewAnimationSystem()

	step(w, 0.125, withIntent(component.Intent{HasMove: true, MoveX: 1}), anim)
	a, _ := ecs.Get(w, player, component.AnimationComponent)
	assert.Equal(t, "walk", a.Key)
	step(w, 0.125, withIntent(component.Intent{HasMove: true, MoveX: 1}), anim)
	step(w, 0.125, withIntent(component.Intent{HasMove: true, MoveX: 1}), anim)
	assert.Equal(t, 2, spriteOf(t, w, player).Index)

	step(w, 0.125, withIntent(component.Intent{HasMove: true}), anim)
	assert.Equal(t, "idle", a.Key)
	assert.Equal(t, 0, spriteOf(t, w, player).Index)
}
