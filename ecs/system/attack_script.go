package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/clockchase/ecs/component"
)

// ScriptAttackPolicy chooses the attack with a tengo script. The script
// reads `roll` and `lunge_weight` and assigns one of "lunge", "spew" or
// "patrol" to `state`. Script errors and unknown names mean patrol.
type ScriptAttackPolicy struct {
	compiled *tengo.Compiled
}

func NewScriptAttackPolicy(src []byte, lungeWeight int) (*ScriptAttackPolicy, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	_ = script.Add("roll", 0)
	_ = script.Add("lunge_weight", lungeWeight)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ai: compile attack script: %w", err)
	}
	return &ScriptAttackPolicy{compiled: compiled}, nil
}

func (p *ScriptAttackPolicy) Choose(roll int) component.EnemyState {
	if p == nil || p.compiled == nil {
		return component.StatePatrol
	}
	if err := p.compiled.Set("roll", roll); err != nil {
		log.Printf("ai: attack script: set roll: %v", err)
		return component.StatePatrol
	}
	if err := p.compiled.Run(); err != nil {
		log.Printf("ai: attack script: %v", err)
		return component.StatePatrol
	}
	if !p.compiled.IsDefined("state") {
		return component.StatePatrol
	}
	name := strings.TrimSpace(p.compiled.Get("state").String())
	state, ok := component.ParseEnemyState(name)
	if ok && (state.IsAttack() || state == component.StatePatrol) {
		return state
	}
	log.Printf("ai: attack script: %q is not an attack", name)
	return component.StatePatrol
}
