package ecs

import (
	"testing"

	"github.com/milk9111/clockchase/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for range c.create {
				ents = append(ents, CreateEntity(w))
			}
			require.Len(t, Entities(w), c.create)

			if c.destroyIndex >= 0 {
				assert.True(t, DestroyEntity(w, ents[c.destroyIndex]))
				assert.False(t, IsAlive(w, ents[c.destroyIndex]))
				assert.False(t, DestroyEntity(w, ents[c.destroyIndex]), "double destroy")
				assert.Len(t, Entities(w), c.create-1)
			}
		})
	}
}

func TestRecycledIDsGetNewGeneration(t *testing.T) {
	w := NewWorld()
	old := w.CreateEntity()
	require.True(t, w.DestroyEntity(old))

	reused := w.CreateEntity()
	assert.Equal(t, old.ID, reused.ID)
	assert.NotEqual(t, old.Gen, reused.Gen)
	assert.False(t, w.IsAlive(old), "stale handles stay dead")
	assert.True(t, w.IsAlive(reused))

	_, alive := Resolve(w, old.Ref())
	assert.False(t, alive)
	e, alive := Resolve(w, reused.Ref())
	assert.True(t, alive)
	assert.Equal(t, reused, e)
	assert.Equal(t, reused, FromRef(reused.Ref()))
}

func TestZeroEntityIsNeverAlive(t *testing.T) {
	w := NewWorld()
	w.CreateEntity()
	assert.False(t, Entity{}.Valid())
	assert.False(t, w.IsAlive(Entity{}))
}

func TestComponentsAddGetRemove(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	one, a, b := 1, "a", "b"
	require.NoError(t, Add(w, e1, ints, &one))
	require.NoError(t, Add(w, e1, strs, &a))
	require.NoError(t, Add(w, e2, strs, &b))

	v, ok := Get(w, e1, ints)
	require.True(t, ok)
	assert.Equal(t, 1, *v)
	*v = 5
	v, _ = Get(w, e1, ints)
	assert.Equal(t, 5, *v, "Get returns the stored pointer")

	assert.True(t, Has(w, e2, strs))
	assert.False(t, Has(w, e2, ints))

	assert.True(t, Remove(w, e1, strs))
	assert.False(t, Remove(w, e1, strs))
	assert.False(t, Has(w, e1, strs))
	assert.True(t, Has(w, e2, strs), "removing from one entity keeps the rest")
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	e := w.CreateEntity()
	n := 3

	assert.ErrorIs(t, Add(w, e, ints, nil), component.ErrNilComponent)
	assert.ErrorIs(t, Add(w, e, component.ComponentHandle[int]{}, &n), component.ErrInvalidComponentKind)

	w.DestroyEntity(e)
	assert.ErrorIs(t, Add(w, e, ints, &n), component.ErrEntityNotAlive)
}

func TestDestroyRemovesComponents(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	e := w.CreateEntity()
	n := 1
	require.NoError(t, Add(w, e, ints, &n))

	w.DestroyEntity(e)
	reused := w.CreateEntity()
	require.Equal(t, e.ID, reused.ID)
	assert.False(t, Has(w, reused, ints), "a recycled id starts empty")
	assert.Zero(t, Count(w, ints))
}

func TestQueries(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()
	floats := component.NewComponent[float64]()

	var ents []Entity
	for i := range 4 {
		e := w.CreateEntity()
		ents = append(ents, e)
		n := i
		require.NoError(t, Add(w, e, ints, &n))
		if i%2 == 0 {
			s := "even"
			require.NoError(t, Add(w, e, strs, &s))
		}
		if i == 2 {
			f := 2.5
			require.NoError(t, Add(w, e, floats, &f))
		}
	}

	sum := 0
	ForEach(w, ints, func(_ Entity, v *int) { sum += *v })
	assert.Equal(t, 0+1+2+3, sum)

	var both []Entity
	ForEach2(w, ints, strs, func(e Entity, _ *int, _ *string) { both = append(both, e) })
	assert.ElementsMatch(t, []Entity{ents[0], ents[2]}, both)

	var all3 []Entity
	ForEach3(w, ints, strs, floats, func(e Entity, _ *int, _ *string, f *float64) {
		all3 = append(all3, e)
		assert.Equal(t, 2.5, *f)
	})
	assert.Equal(t, []Entity{ents[2]}, all3)

	first, ok := First(w, strs)
	require.True(t, ok)
	assert.Equal(t, ents[0], first)
	assert.Equal(t, 2, Count(w, strs))

	_, ok = First(w, component.NewComponent[bool]())
	assert.False(t, ok)
}

func TestForEachAllowsDestroyWhileIterating(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	for i := range 5 {
		n := i
		require.NoError(t, Add(w, w.CreateEntity(), ints, &n))
	}

	visited := 0
	ForEach(w, ints, func(e Entity, _ *int) {
		visited++
		w.DestroyEntity(e)
	})
	assert.Equal(t, 5, visited)
	assert.Zero(t, Count(w, ints))
	assert.Empty(t, Entities(w))
}

func TestTimeAndEvents(t *testing.T) {
	w := NewWorld()
	w.Advance(0.25)
	w.Advance(-1)
	w.Advance(0.5)

	now := w.Time()
	assert.Equal(t, 0.5, now.Delta)
	assert.Equal(t, 0.75, now.Elapsed)
	assert.Equal(t, uint64(3), now.Tick)

	w.Events().Push(Event{Type: EventPhaseRequest, Data: PhaseRequest{Phase: PhaseMenu}})
	w.Events().Push(Event{Type: EventPlayerKilled, Data: PlayerKilled{Cause: KillByClock}})
	assert.Equal(t, 2, w.Events().Len())

	events := w.Events().Drain()
	require.Len(t, events, 2)
	assert.Equal(t, EventPhaseRequest, events[0].Type)
	assert.Equal(t, KillByClock, events[1].Data.(PlayerKilled).Cause)
	assert.Zero(t, w.Events().Len())
	assert.Nil(t, w.Events().Drain())
}

type recordingSystem struct {
	name  string
	order *[]string
}

func (s recordingSystem) Update(*World) { *s.order = append(*s.order, s.name) }

func TestSchedulerRunsInOrder(t *testing.T) {
	var order []string
	s := NewScheduler(recordingSystem{"a", &order}, nil, recordingSystem{"b", &order})
	s.Add(recordingSystem{"c", &order})

	s.Update(NewWorld())
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Len(t, s.Systems(), 3)

	s.Update(nil)
	assert.Len(t, order, 3)
}

func TestNilWorld(t *testing.T) {
	var w *World
	ints := component.NewComponent[int]()
	n := 1

	assert.NotPanics(t, func() {
		assert.False(t, w.IsAlive(Entity{ID: 1}))
		assert.Equal(t, Entity{}, w.CreateEntity())
		assert.ErrorIs(t, Add(w, Entity{ID: 1}, ints, &n), component.ErrEntityNotAlive)
		ForEach(w, ints, func(Entity, *int) {})
		assert.Zero(t, Count(w, ints))
		w.Advance(1)
		w.Events().Push(Event{})
	})
	assert.Nil(t, w.Events())
	assert.Equal(t, Time{}, w.Time())
}
