package system

import (
	"log"

	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
)

// ClockLifetimeSystem counts clock lifetimes down and despawns expired
// clocks.
type ClockLifetimeSystem struct{}

func NewClockLifetimeSystem() *ClockLifetimeSystem {
	return &ClockLifetimeSystem{}
}

func (s *ClockLifetimeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Time().Delta

	ecs.ForEach(w, component.ClockComponent, func(e ecs.Entity, clock *component.Clock) {
		clock.Lifetime -= dt
		if clock.Lifetime <= 0 {
			ecs.DestroyEntity(w, e)
		}
	})
}

// ClockContactSystem kills the player on contact with a clock.
type ClockContactSystem struct{}

func NewClockContactSystem() *ClockContactSystem {
	return &ClockContactSystem{}
}

func (s *ClockContactSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.ClockComponent, component.ContactsComponent, func(e ecs.Entity, _ *component.Clock, contacts *component.Contacts) {
		killPlayerOnContact(w, e, contacts, ecs.KillByClock)
	})
}

// EnemyContactSystem kills the player on contact with an enemy.
type EnemyContactSystem struct{}

func NewEnemyContactSystem() *EnemyContactSystem {
	return &EnemyContactSystem{}
}

func (s *EnemyContactSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.EnemyComponent, component.ContactsComponent, func(e ecs.Entity, _ *component.Enemy, contacts *component.Contacts) {
		killPlayerOnContact(w, e, contacts, ecs.KillByEnemy)
	})
}

func killPlayerOnContact(w *ecs.World, source ecs.Entity, contacts *component.Contacts, cause ecs.KillCause) {
	for _, ref := range contacts.Colliding {
		other, alive := ecs.Resolve(w, ref)
		if !alive {
			continue
		}
		player, ok := ecs.Get(w, other, component.PlayerComponent)
		if !ok || !player.IsAlive {
			continue
		}
		player.IsAlive = false
		log.Printf("player: entity=%s killed by %s entity=%s", other, cause, source)
		w.Events().Push(ecs.Event{Type: ecs.EventPlayerKilled, Data: ecs.PlayerKilled{Player: other, Cause: cause}})
	}
}
