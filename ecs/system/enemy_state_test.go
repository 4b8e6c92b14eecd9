package system

import (
	"testing"

	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
	"github.com/milk9111/clockchase/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aiState(t *testing.T, w *ecs.World, e ecs.Entity) *component.AIState {
	t.Helper()
	state, ok := ecs.Get(w, e, component.AIStateComponent)
	require.True(t, ok)
	return state
}

func enemyOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Enemy {
	t.Helper()
	enemy, ok := ecs.Get(w, e, component.EnemyComponent)
	require.True(t, ok)
	return enemy
}

func TestPatrolToPursueInsidePatrolRange(t *testing.T) {
	w := ecs.NewWorld()
	enemy := addTestEnemy(t, w, 0, 0, true)
	addTestPlayer(t, w, 150, 0)

	attack := NewAttackStateSystem(nil, &fixedRoller{ints: []int{0}})
	step(w, 1.0/60, NewPatrolPursueStateSystem(), attack)

	assert.Equal(t, component.StatePursue, aiState(t, w, enemy).Current)
	e := enemyOf(t, w, enemy)
	assert.True(t, e.HasTarget)
	assert.Equal(t, 150.0, e.Target.X)
}

func TestPursueFollowsPlayerAndGivesUpOutOfRange(t *testing.T) {
	w := ecs.NewWorld()
	enemy := addTestEnemy(t, w, 0, 0, true)
	player := addTestPlayer(t, w, 150, 0)
	patrolPursue := NewPatrolPursueStateSystem()

	step(w, 1.0/60, patrolPursue)
	require.Equal(t, component.StatePursue, aiState(t, w, enemy).Current)

	transform, _ := ecs.Get(w, player, component.TransformComponent)
	transform.X = 120
	step(w, 1.0/60, patrolPursue)
	assert.Equal(t, 120.0, enemyOf(t, w, enemy).Target.X)

	transform.X = 161
	step(w, 1.0/60, patrolPursue)
	assert.Equal(t, component.StatePatrol, aiState(t, w, enemy).Current)
	assert.False(t, enemyOf(t, w, enemy).HasTarget)
}

func TestAttackInsideAttackRange(t *testing.T) {
	tests := []struct {
		name string
		roll int
		want component.EnemyState
	}{
		{name: "low roll lunges", roll: 10, want: component.StateLungeAttack},
		{name: "edge roll lunges", roll: 59, want: component.StateLungeAttack},
		{name: "high roll spews", roll: 60, want: component.StateSpewAttack},
		{name: "top roll spews", roll: 99, want: component.StateSpewAttack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			enemy := addTestEnemy(t, w, 0, 0, true)
			addTestPlayer(t, w, -50, 0)

			attack := NewAttackStateSystem(WeightedAttackPolicy{LungeWeight: 60}, &fixedRoller{ints: []int{tt.roll}})
			step(w, 1.0/60, NewPatrolPursueStateSystem(), attack)

			assert.Equal(t, tt.want, aiState(t, w, enemy).Current)
			e := enemyOf(t, w, enemy)
			assert.True(t, e.HasTarget)
			assert.Equal(t, -50.0, e.Target.X)
		})
	}
}

func TestAttackStateLeavesAttacksAlone(t *testing.T) {
	w := ecs.NewWorld()
	enemy := addTestEnemy(t, w, 0, 0, true)
	addTestPlayer(t, w, 300, 0)
	aiState(t, w, enemy).Current = component.StateSpewAttack

	step(w, 1.0/60, NewPatrolPursueStateSystem(), NewAttackStateSystem(nil, &fixedRoller{ints: []int{0}}))
	assert.Equal(t, component.StateSpewAttack, aiState(t, w, enemy).Current)
}

func TestEnemyStateSystemsWithoutPlayer(t *testing.T) {
	w := ecs.NewWorld()
	enemy := addTestEnemy(t, w, 0, 0, true)

	step(w, 1.0/60, NewPatrolPursueStateSystem(), NewAttackStateSystem(nil, &fixedRoller{}))
	assert.Equal(t, component.StatePatrol, aiState(t, w, enemy).Current)
}

func TestWeightedAttackPolicy(t *testing.T) {
	policy := WeightedAttackPolicy{LungeWeight: 60}
	tests := []struct {
		roll int
		want component.EnemyState
	}{
		{roll: -1, want: component.StatePatrol},
		{roll: 0, want: component.StateLungeAttack},
		{roll: 59, want: component.StateLungeAttack},
		{roll: 60, want: component.StateSpewAttack},
		{roll: 99, want: component.StateSpewAttack},
		{roll: 100, want: component.StatePatrol},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, policy.Choose(tt.roll), "roll %d", tt.roll)
	}
}

func TestAttackRollDistribution(t *testing.T) {
	const trials = 100000
	roller := NewRoller(42)
	policy := WeightedAttackPolicy{LungeWeight: 60}

	counts := map[component.EnemyState]int{}
	for range trials {
		counts[policy.Choose(roller.IntN(100))]++
	}

	assert.Zero(t, counts[component.StatePatrol])
	assert.InDelta(t, 0.6, float64(counts[component.StateLungeAttack])/trials, 0.01)
	assert.InDelta(t, 0.4, float64(counts[component.StateSpewAttack])/trials, 0.01)
}

func TestScriptAttackPolicyMatchesWeightedPolicy(t *testing.T) {
	src, err := prefabs.LoadScript("attack.tengo")
	require.NoError(t, err)

	script, err := NewScriptAttackPolicy(src, 60)
	require.NoError(t, err)
	weighted := WeightedAttackPolicy{LungeWeight: 60}

	for roll := -1; roll <= 100; roll++ {
		assert.Equal(t, weighted.Choose(roll), script.Choose(roll), "roll %d", roll)
	}
}

func TestScriptAttackPolicyFallsBackToPatrol(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "unknown state", src: `state := "dance"`},
		{name: "pursue is not an attack", src: `state := "pursue"`},
		{name: "runtime error", src: `state := "lunge"; x := [1][roll + 5]`},
		{name: "no state", src: `x := roll`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := NewScriptAttackPolicy([]byte(tt.src), 60)
			require.NoError(t, err)
			assert.Equal(t, component.StatePatrol, policy.Choose(10))
		})
	}

	var nilPolicy *ScriptAttackPolicy
	assert.Equal(t, component.StatePatrol, nilPolicy.Choose(10))

	_, err := NewScriptAttackPolicy([]byte(`state := `), 60)
	assert.Error(t, err)
}
