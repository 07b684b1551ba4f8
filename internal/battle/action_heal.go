package battle

import (
	"math"
)

// HealParams configures a heal action.
type HealParams struct {
	Mode TargetMode
	// Power overrides the default of actor damage times HealMultiplier.
	Power        int
	Presentation Presentation
}

// HealAction restores life to the most wounded ally or to the actor.
type HealAction struct {
	baseAction
	hits []Hit
}

// NewHealAction builds a heal action for actor.
func NewHealAction(arena *Arena, actor *Unit, p HealParams) *HealAction {
	if p.Mode == "" {
		p.Mode = TargetWoundedAllies
	}
	return &HealAction{
		baseAction: newBaseAction(ActionHeal, arena, actor, p.Mode, p.Power, p.Presentation),
	}
}

// Power returns the configured power or the actor's damage scaled by HealMultiplier.
func (a *HealAction) Power() int {
	if a.power > 0 {
		return a.power
	}
	actor, err := a.Actor()
	if err != nil {
		return 0
	}
	return int(math.Round(float64(actor.offense.Damage()) * HealMultiplier))
}

// Hits returns one record per target of the last use.
func (a *HealAction) Hits() []Hit {
	out := make([]Hit, len(a.hits))
	copy(out, a.hits)
	return out
}

// SetFactualPower records the life actually restored.
func (a *HealAction) SetFactualPower(power int) {
	if len(a.hits) > 0 {
		a.hits[len(a.hits)-1].Factual = power
	}
	a.factualPower = power
}

// CanBeUsed is false when no ally is wounded; the unit then attacks instead.
func (a *HealAction) CanBeUsed() bool {
	actor, err := a.Actor()
	if err != nil || !actor.Alive() {
		return false
	}
	a.targets = resolveTargets(a.arena, actor, a.mode)
	return len(a.targets) > 0
}

func (a *HealAction) Handle() (Outcome, error) {
	actor, err := a.Actor()
	if err != nil {
		return Outcome{}, err
	}
	targets := resolveTargets(a.arena, actor, a.mode)
	if len(targets) == 0 {
		return Outcome{}, ErrNoTargetForHeal
	}
	a.reset()
	a.hits = nil
	a.targets = targets

	target := targets[0]
	a.hits = append(a.hits, Hit{TargetID: target.id, Power: a.Power()})
	line, err := target.ApplyAction(a)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Description: line}, nil
}

func (a *HealAction) pendingPower() int {
	if len(a.hits) == 0 {
		return a.Power()
	}
	return a.hits[len(a.hits)-1].Power
}

func (a *HealAction) Clone() Action {
	cp := *a
	cp.baseAction = a.baseAction.clone()
	cp.hits = nil
	return &cp
}
