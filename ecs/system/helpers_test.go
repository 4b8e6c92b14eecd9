package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
	"github.com/milk9111/clockchase/ecs/entity"
	"github.com/milk9111/clockchase/prefabs"
	"github.com/stretchr/testify/require"
)

// step advances the world clock by dt and runs systems in order.
func step(w *ecs.World, dt float64, systems ...ecs.System) {
	w.Advance(dt)
	for _, s := range systems {
		s.Update(w)
	}
}

// attachBody gives e a detached Chipmunk body so velocity can be read and
// written without a space.
func attachBody(t *testing.T, w *ecs.World, e ecs.Entity) *cp.Body {
	t.Helper()
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	require.True(t, ok)
	transform, ok := ecs.Get(w, e, component.TransformComponent)
	require.True(t, ok)
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	pb.Body = body
	return body
}

func addTestPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlayerAt(w, prefabs.DefaultPlayerSpec(), x, y)
	require.NoError(t, err)
	attachBody(t, w, e)
	return e
}

func addTestEnemy(t *testing.T, w *ecs.World, x, y float64, facingLeft bool) ecs.Entity {
	t.Helper()
	e, err := entity.NewEnemyAt(w, prefabs.DefaultEnemySpec(), x, y, facingLeft)
	require.NoError(t, err)
	attachBody(t, w, e)
	return e
}

func addStatic(t *testing.T, w *ecs.World, x, y, width, height float64, wall bool) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	layer := component.LayerGround
	if wall {
		layer = component.LayerWall
		require.NoError(t, ecs.Add(w, e, component.WallTagComponent, &component.WallTag{}))
	} else {
		require.NoError(t, ecs.Add(w, e, component.GroundTagComponent, &component.GroundTag{}))
	}
	require.NoError(t, ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y}))
	require.NoError(t, ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width:  width,
		Height: height,
		Kind:   component.BodyStatic,
		Layer:  layer,
	}))
	return e
}

// standOn fills e's contacts as if it rested on other.
func standOn(t *testing.T, w *ecs.World, e, other ecs.Entity) {
	t.Helper()
	require.NoError(t, ecs.Add(w, e, component.ContactsComponent, &component.Contacts{
		Colliding: []uint64{other.Ref()},
		RayHits:   []uint64{other.Ref()},
	}))
}

func velocity(t *testing.T, w *ecs.World, e ecs.Entity) cp.Vector {
	t.Helper()
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	require.True(t, ok)
	require.NotNil(t, pb.Body)
	return pb.Body.Velocity()
}

func setVelocity(t *testing.T, w *ecs.World, e ecs.Entity, v cp.Vector) {
	t.Helper()
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	require.True(t, ok)
	pb.Body.SetVelocityVector(v)
}

func eventsOfType(events []ecs.Event, typ ecs.EventType) []ecs.Event {
	var out []ecs.Event
	for _, evt := range events {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}

// fixedRoller replays ints and floats in order, repeating the last value.
type fixedRoller struct {
	ints   []int
	floats []float64
}

func (r *fixedRoller) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return v % n
}

func (r *fixedRoller) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

func entityAction(state component.EnemyState) component.EnemyAction {
	return entity.NewEnemyAction(state, prefabs.DefaultEnemySpec())
}
