package battle

import (
	"strings"

	"github.com/louisbranch/skirmish/internal/random"
)

// DamageParams configures a damage action.
type DamageParams struct {
	Mode TargetMode
	// Power overrides the actor's offense when positive. Fixed power is not
	// resisted.
	Power int
	// CanBeAvoided enables dodge and block rolls.
	CanBeAvoided bool
	Presentation Presentation
}

// DamageAction hits enemies, or the actor itself for effect ticks.
type DamageAction struct {
	baseAction
	canBeAvoided bool
	hits         []Hit
}

// NewDamageAction builds a damage action for actor.
func NewDamageAction(arena *Arena, actor *Unit, p DamageParams) *DamageAction {
	if p.Mode == "" {
		p.Mode = TargetRandomEnemy
	}
	if p.Presentation.Name == "" {
		p.Presentation.Name = "attack"
	}
	return &DamageAction{
		baseAction:   newBaseAction(ActionDamage, arena, actor, p.Mode, p.Power, p.Presentation),
		canBeAvoided: p.CanBeAvoided,
	}
}

// Power returns the fixed power or the actor's current offense damage.
func (a *DamageAction) Power() int {
	if a.power > 0 {
		return a.power
	}
	actor, err := a.Actor()
	if err != nil {
		return 0
	}
	return actor.offense.Damage()
}

// CanBeAvoided reports whether targets may dodge or block.
func (a *DamageAction) CanBeAvoided() bool { return a.canBeAvoided }

// Hits returns one record per target of the last use.
func (a *DamageAction) Hits() []Hit {
	out := make([]Hit, len(a.hits))
	copy(out, a.hits)
	return out
}

// SetFactualPower records the realized damage of the hit being applied and
// keeps the action total as the sum over hits.
func (a *DamageAction) SetFactualPower(power int) {
	if len(a.hits) == 0 {
		a.factualPower = power
		return
	}
	a.hits[len(a.hits)-1].Factual = power
	total := 0
	for _, hit := range a.hits {
		total += hit.Factual
	}
	a.factualPower = total
}

func (a *DamageAction) CanBeUsed() bool {
	actor, err := a.Actor()
	if err != nil || !actor.Alive() {
		return false
	}
	targets, err := resolveDamageTargets(a.arena, actor, a.mode)
	a.targets = targets
	return err == nil && len(targets) > 0
}

func (a *DamageAction) Handle() (Outcome, error) {
	actor, err := a.Actor()
	if err != nil {
		return Outcome{}, err
	}
	targets, err := resolveDamageTargets(a.arena, actor, a.mode)
	if err != nil {
		return Outcome{}, err
	}
	a.reset()
	a.hits = nil
	a.targets = targets

	lines := make([]string, 0, len(targets))
	for _, target := range targets {
		a.hits = append(a.hits, a.roll(actor, target))
		line, err := target.ApplyAction(a)
		if err != nil {
			return Outcome{}, err
		}
		lines = append(lines, line)
	}
	return Outcome{Description: strings.Join(lines, "\n")}, nil
}

// roll decides avoidance and critical hits and bakes mitigation into the
// power the target will receive.
func (a *DamageAction) roll(actor, target *Unit) Hit {
	hit := Hit{TargetID: target.id}
	if a.canBeAvoided && target != actor {
		if random.Chance(target.defense.Dodge - actor.offense.Accuracy) {
			hit.Dodged = true
			return hit
		}
		if random.Chance(target.defense.Block) {
			hit.Blocked = true
			return hit
		}
	}
	power := a.power
	if power <= 0 {
		power = MitigateDamage(actor.offense, target.defense, target.race)
	}
	if a.canBeAvoided && target != actor && random.Chance(actor.offense.CriticalChance) {
		hit.Critical = true
		multiplier := actor.offense.CriticalMultiplier
		if multiplier < 100 {
			multiplier = 100
		}
		power = power * multiplier / 100
	}
	hit.Power = power
	return hit
}

// pendingHit is the hit the target handler is applying.
func (a *DamageAction) pendingHit() Hit {
	if len(a.hits) == 0 {
		return Hit{Power: a.Power()}
	}
	return a.hits[len(a.hits)-1]
}

func (a *DamageAction) Clone() Action {
	cp := *a
	cp.baseAction = a.baseAction.clone()
	cp.hits = nil
	return &cp
}
