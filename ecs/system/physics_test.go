package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/clockchase/common"
	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
	"github.com/milk9111/clockchase/ecs/entity"
	"github.com/milk9111/clockchase/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const physicsDT = 1.0 / 60

func TestRaycastHitsNearestFirst(t *testing.T) {
	w := ecs.NewWorld()
	far := addStatic(t, w, 0, -60, 100, 10, false)
	near := addStatic(t, w, 0, -20, 100, 10, false)
	addStatic(t, w, 200, -20, 100, 10, false)

	ps := NewPhysicsSystem(0)
	ps.Sync(w)

	hits := ps.Raycast(cp.Vector{}, cp.Vector{X: 0, Y: -100}, component.LayerEnemy, ecs.Entity{})
	require.Len(t, hits, 2)
	assert.Equal(t, near, hits[0].Entity)
	assert.Equal(t, far, hits[1].Entity)
	assert.InDelta(t, 0.15, hits[0].T, 1e-6)
	assert.InDelta(t, -15.0, hits[0].Point.Y, 1e-6)
}

func TestRaycastRespectsLayersAndIgnore(t *testing.T) {
	w := ecs.NewWorld()
	enemy, err := entity.NewEnemyAt(w, prefabs.DefaultEnemySpec(), 0, 0, true)
	require.NoError(t, err)
	clock, err := entity.NewClock(w, prefabs.DefaultClockSpec(), cp.Vector{X: 0, Y: -30}, cp.Vector{}, 0, enemy)
	require.NoError(t, err)
	ground := addStatic(t, w, 0, -60, 100, 10, false)

	ps := NewPhysicsSystem(0)
	ps.Sync(w)

	from := cp.Vector{X: 0, Y: 100}
	to := cp.Vector{X: 0, Y: -100}

	hits := ps.Raycast(from, to, component.LayerEnemy, enemy)
	require.Len(t, hits, 1, "enemy rays skip the enemy itself and clocks")
	assert.Equal(t, ground, hits[0].Entity)

	hits = ps.Raycast(from, to, component.LayerPlayer, ecs.Entity{})
	require.Len(t, hits, 3)
	assert.Equal(t, enemy, hits[0].Entity)
	assert.Equal(t, clock, hits[1].Entity)
	assert.Equal(t, ground, hits[2].Entity)

	hits = ps.Raycast(cp.Vector{}, to, component.LayerPlayer, ecs.Entity{})
	require.Len(t, hits, 2, "a ray starting inside a collider does not report it")
	assert.Equal(t, clock, hits[0].Entity)

	assert.Empty(t, ps.Raycast(from, from, component.LayerPlayer, ecs.Entity{}))
	var none *PhysicsSystem
	assert.Empty(t, none.Raycast(from, to, component.LayerPlayer, ecs.Entity{}))
}

func TestCollisionLayers(t *testing.T) {
	assert.True(t, component.LayerEnemy.Collides(component.LayerGround))
	assert.True(t, component.LayerEnemy.Collides(component.LayerWall))
	assert.True(t, component.LayerEnemy.Collides(component.LayerPlayer))
	assert.False(t, component.LayerEnemy.Collides(component.LayerEnemy))
	assert.False(t, component.LayerEnemy.Collides(component.LayerClock))
	assert.True(t, component.LayerClock.Collides(component.LayerPlayer))
	assert.False(t, component.LayerClock.Collides(component.LayerClock))
}

func TestSyncBuildsBodiesWithSpriteFallback(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.TransformComponent, &component.Transform{X: 5, Y: 6}))
	require.NoError(t, ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Width: 64, Height: 32}))
	require.NoError(t, ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Kind: component.BodyDynamic, Layer: component.LayerEnemy}))

	ps := NewPhysicsSystem(common.Gravity)
	ps.Sync(w)

	pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
	require.NotNil(t, pb.Body)
	require.NotNil(t, pb.Shape)
	assert.Equal(t, 64.0, pb.Width)
	assert.Equal(t, 32.0, pb.Height)
	assert.Equal(t, cp.Vector{X: 5, Y: 6}, pb.Body.Position())
}

func TestFallingEnemyLandsAndIsGrounded(t *testing.T) {
	w := ecs.NewWorld()
	ground := addStatic(t, w, 0, -100, 400, 20, false)
	enemy, err := entity.NewEnemyAt(w, prefabs.DefaultEnemySpec(), 0, 0, true)
	require.NoError(t, err)

	ps := NewPhysicsSystem(common.Gravity)
	grounding := NewGroundingSystem()

	grounded := false
	for range 600 {
		step(w, physicsDT, grounding, ps)
		if IsGrounded(w, enemy) {
			grounded = true
			break
		}
	}
	require.True(t, grounded)

	transform, _ := ecs.Get(w, enemy, component.TransformComponent)
	assert.InDelta(t, -90+16, transform.Y, 1.0)

	contacts, _ := ecs.Get(w, enemy, component.ContactsComponent)
	assert.Contains(t, contacts.Colliding, ground.Ref())
	assert.Contains(t, contacts.RayHits, ground.Ref())
}

func TestStandingBesideWallIsNotGrounded(t *testing.T) {
	w := ecs.NewWorld()
	wall := addStatic(t, w, 0, -100, 400, 20, true)
	enemy, err := entity.NewEnemyAt(w, prefabs.DefaultEnemySpec(), 0, 0, true)
	require.NoError(t, err)

	ps := NewPhysicsSystem(common.Gravity)
	touched := false
	for range 600 {
		step(w, physicsDT, ps)
		contacts, _ := ecs.Get(w, enemy, component.ContactsComponent)
		if contacts.IsColliding(wall.Ref()) {
			touched = true
			break
		}
	}
	require.True(t, touched)
	assert.False(t, IsGrounded(w, enemy))
}

func TestEnemiesPassThroughClocks(t *testing.T) {
	w := ecs.NewWorld()
	enemy, err := entity.NewEnemyAt(w, prefabs.DefaultEnemySpec(), 0, 0, true)
	require.NoError(t, err)
	clock, err := entity.NewClock(w, prefabs.DefaultClockSpec(), cp.Vector{}, cp.Vector{}, 0, enemy)
	require.NoError(t, err)

	ps := NewPhysicsSystem(0)
	for range 10 {
		step(w, physicsDT, ps)
	}
	contacts, _ := ecs.Get(w, enemy, component.ContactsComponent)
	assert.False(t, contacts.IsColliding(clock.Ref()))
}

func TestPhysicsDropsBodiesOfDestroyedEntities(t *testing.T) {
	w := ecs.NewWorld()
	clock, err := entity.NewClock(w, prefabs.DefaultClockSpec(), cp.Vector{}, cp.Vector{X: 30, Y: 40}, 0, ecs.Entity{})
	require.NoError(t, err)

	ps := NewPhysicsSystem(0)
	step(w, physicsDT, ps)
	require.Len(t, ps.entities, 1)

	transform, _ := ecs.Get(w, clock, component.TransformComponent)
	assert.InDelta(t, 30*physicsDT, transform.X, 1e-6, "launch velocity survives the move into the space")

	ecs.DestroyEntity(w, clock)
	step(w, physicsDT, ps)
	assert.Empty(t, ps.entities)
	assert.Empty(t, ps.shapes)
}

func TestPhysicsResetRebuildsBodies(t *testing.T) {
	w := ecs.NewWorld()
	addStatic(t, w, 0, -100, 400, 20, false)
	enemy, err := entity.NewEnemyAt(w, prefabs.DefaultEnemySpec(), 0, 0, true)
	require.NoError(t, err)

	ps := NewPhysicsSystem(common.Gravity)
	step(w, physicsDT, ps)
	pb, _ := ecs.Get(w, enemy, component.PhysicsBodyComponent)
	before := pb.Shape
	space := ps.Space()

	ps.Reset()
	assert.NotSame(t, space, ps.Space())
	step(w, physicsDT, ps)
	assert.NotSame(t, before, pb.Shape)
	assert.Len(t, ps.entities, 2)
}

func TestNilPhysicsSystem(t *testing.T) {
	var ps *PhysicsSystem
	assert.NotPanics(t, func() {
		ps.Update(ecs.NewWorld())
		ps.Sync(ecs.NewWorld())
		ps.Reset()
	})
	assert.Nil(t, ps.Space())
}
