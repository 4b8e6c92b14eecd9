package system

import (
	"math"
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
)

const collisionTypeBody cp.CollisionType = 1

const defaultColliderSize = 32

// PhysicsSystem adapts the ECS to a Chipmunk space. The space owns position
// and velocity of every dynamic body; Transform mirrors it after each step
// and Contacts is rewritten for every dynamic body.
type PhysicsSystem struct {
	space         *cp.Space
	gravity       float64
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
	touching map[ecs.Entity][]ecs.Entity
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem(gravity float64) *PhysicsSystem {
	ps := &PhysicsSystem{gravity: gravity}
	ps.Reset()
	return ps
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Reset drops the space and every body in it. Entities keep their
// PhysicsBody components but lose the runtime body, so the next Sync
// rebuilds them.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: -ps.gravity})
	ps.space = space
	ps.handlersReady = false
	ps.entities = make(map[ecs.Entity]*bodyInfo)
	ps.shapes = make(map[*cp.Shape]ecs.Entity)
	ps.touching = make(map[ecs.Entity][]ecs.Entity)
}

// SetGravity changes the gravity magnitude; it points toward negative Y.
func (ps *PhysicsSystem) SetGravity(gravity float64) {
	if ps == nil {
		return
	}
	ps.gravity = gravity
	if ps.space != nil {
		ps.space.SetGravity(cp.Vector{X: 0, Y: -gravity})
	}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.Reset()
	}

	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ps.Sync(w)

	clear(ps.touching)
	if dt := w.Time().Delta; dt > 0 {
		ps.space.Step(dt)
	}

	ps.syncTransforms(w)
	ps.writeContacts(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypeBody, collisionTypeBody)
	handler.UserData = ps
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		a, okA := sys.shapes[shapeA]
		b, okB := sys.shapes[shapeB]
		if !okA || !okB || a == b {
			return true
		}
		sys.touch(a, b)
		sys.touch(b, a)
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) touch(a, b ecs.Entity) {
	if slices.Contains(ps.touching[a], b) {
		return
	}
	ps.touching[a] = append(ps.touching[a], b)
}

// Sync builds a Chipmunk body for every PhysicsBody that does not have one.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.Reset()
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(e ecs.Entity, body *component.PhysicsBody, transform *component.Transform) {
		if _, ok := ps.entities[e]; ok && body.Shape != nil {
			return
		}
		if body.Layer == (component.CollisionLayer{}) {
			body.Layer = component.CollisionLayer{Category: component.CategoryAll, Mask: component.CategoryAll}
		}
		width, height := colliderSize(w, e, body)
		info := ps.createBodyInfo(transform, body, width, height)
		if info == nil {
			return
		}
		body.Width = width
		body.Height = height
		body.Body = info.body
		body.Shape = info.shape
		ps.entities[e] = info
		ps.shapes[info.shape] = e
	})
}

// colliderSize falls back to the sprite frame bounds, then to a default box.
func colliderSize(w *ecs.World, e ecs.Entity, body *component.PhysicsBody) (float64, float64) {
	width, height := body.Width, body.Height
	if width > 0 && height > 0 {
		return width, height
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent); ok && sprite.Width > 0 && sprite.Height > 0 {
		return sprite.Width, sprite.Height
	}
	return defaultColliderSize, defaultColliderSize
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, width, height float64) *bodyInfo {
	if ps.space == nil {
		return nil
	}

	filter := cp.NewShapeFilter(0, bodyComp.Layer.Category, bodyComp.Layer.Mask)

	if bodyComp.Kind == component.BodyStatic {
		bb := cp.BB{
			L: transform.X - width/2,
			B: transform.Y - height/2,
			R: transform.X + width/2,
			T: transform.Y + height/2,
		}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(1)
		shape.SetElasticity(0)
		shape.SetFilter(filter)
		shape.SetCollisionType(collisionTypeBody)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	var body *cp.Body
	if bodyComp.Kind == component.BodyKinematic {
		body = cp.NewKinematicBody()
	} else {
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		// Infinite moment keeps actors upright.
		body = cp.NewBody(mass, math.Inf(1))
	}
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	if bodyComp.Body != nil {
		// Carry velocity over when a body is rebuilt after Reset.
		body.SetVelocityVector(bodyComp.Body.Velocity())
	}

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetFilter(filter)
	shape.SetCollisionType(collisionTypeBody)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(e ecs.Entity, body *component.PhysicsBody, transform *component.Transform) {
		if body.Body == nil || body.Kind == component.BodyStatic {
			return
		}
		pos := body.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
	})
}

func (ps *PhysicsSystem) writeContacts(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(e ecs.Entity, body *component.PhysicsBody, transform *component.Transform) {
		if body.Kind == component.BodyStatic {
			return
		}

		touching := slices.Clone(ps.touching[e])
		slices.SortFunc(touching, func(a, b ecs.Entity) int { return a.ID - b.ID })
		colliding := make([]uint64, 0, len(touching))
		for _, other := range touching {
			colliding = append(colliding, other.Ref())
		}

		hits := ps.ProbeGround(e, transform, body)
		rayHits := make([]uint64, 0, len(hits))
		for _, hit := range hits {
			rayHits = append(rayHits, hit.Entity.Ref())
		}

		_ = ecs.Add(w, e, component.ContactsComponent, &component.Contacts{
			Colliding: colliding,
			RayHits:   rayHits,
		})
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok && body.Shape == info.shape {
			continue
		}

		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.shapes, info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
