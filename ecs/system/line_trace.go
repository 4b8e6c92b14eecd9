package system

import (
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/clockchase/common"
	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
)

// RayHit is one collider crossed by a ray. T is the fraction of the segment
// at which the ray enters the collider.
type RayHit struct {
	Entity ecs.Entity
	Point  cp.Vector
	T      float64
}

// Raycast returns every collider in the space that the segment from..to
// crosses, nearest first. Colliders whose layer does not collide with layer
// are filtered out by the space, ignore is skipped. A ray that starts inside
// a collider does not report it.
func (ps *PhysicsSystem) Raycast(from, to cp.Vector, layer component.CollisionLayer, ignore ecs.Entity) []RayHit {
	if ps == nil || ps.space == nil || from == to {
		return nil
	}

	var hits []RayHit
	filter := cp.NewShapeFilter(0, layer.Category, layer.Mask)
	ps.space.SegmentQuery(from, to, 0, filter, func(shape *cp.Shape, point, _ cp.Vector, alpha float64, _ interface{}) {
		e, ok := ps.shapes[shape]
		if !ok || e == ignore {
			return
		}
		hits = append(hits, RayHit{Entity: e, Point: point, T: alpha})
	}, nil)

	slices.SortStableFunc(hits, func(a, b RayHit) int {
		switch {
		case a.T < b.T:
			return -1
		case a.T > b.T:
			return 1
		default:
			return a.Entity.ID - b.Entity.ID
		}
	})
	return hits
}

// ProbeGround casts a short ray from the centre of e straight down, just past
// the bottom of its collider.
func (ps *PhysicsSystem) ProbeGround(e ecs.Entity, transform *component.Transform, body *component.PhysicsBody) []RayHit {
	if transform == nil || body == nil {
		return nil
	}
	from := cp.Vector{X: transform.X, Y: transform.Y}
	to := cp.Vector{X: transform.X, Y: transform.Y - (body.Height/2 + common.GroundProbeLength)}
	return ps.Raycast(from, to, body.Layer, e)
}
