package battle

import (
	"strings"
)

// EffectAction attaches a copy of its effect to each target.
type EffectAction struct {
	baseAction
	effect *Effect

	// pending is the copy the target handler is attaching; added reports
	// whether it was new rather than a refresh.
	pending *Effect
	added   bool
}

// NewEffectAction builds an effect action carrying effect as template.
func NewEffectAction(arena *Arena, actor *Unit, mode TargetMode, effect *Effect, p Presentation) *EffectAction {
	if mode == "" {
		mode = TargetSelf
	}
	if p.Name == "" {
		p.Name = effect.name
	}
	if p.Icon == "" {
		p.Icon = effect.icon
	}
	return &EffectAction{
		baseAction: newBaseAction(ActionEffect, arena, actor, mode, 0, p),
		effect:     effect,
	}
}

// Effect returns the template attached by this action.
func (a *EffectAction) Effect() *Effect { return a.effect }

// SetFactualPower is a no-op: effects carry no realized magnitude.
func (a *EffectAction) SetFactualPower(int) {}

// CanBeUsed is true when some target does not already hold the effect.
func (a *EffectAction) CanBeUsed() bool {
	actor, err := a.Actor()
	if err != nil || !actor.Alive() {
		return false
	}
	a.targets = a.fresh(resolveTargets(a.arena, actor, a.mode))
	return len(a.targets) > 0
}

func (a *EffectAction) fresh(units []*Unit) []*Unit {
	var out []*Unit
	for _, u := range units {
		if !u.effects.Exists(a.effect.name) {
			out = append(out, u)
		}
	}
	return out
}

// Handle attaches the effect to every target. Targets already holding it
// get a refreshed duration. The follow-up holds the application actions of
// newly attached copies.
func (a *EffectAction) Handle() (Outcome, error) {
	actor, err := a.Actor()
	if err != nil {
		return Outcome{}, err
	}
	targets := resolveTargets(a.arena, actor, a.mode)
	if len(targets) == 0 {
		return Outcome{}, ErrNoTargetForEffect
	}
	a.reset()
	a.targets = targets

	followUp := NewActionCollection()
	lines := make([]string, 0, len(targets))
	for _, target := range targets {
		a.pending = a.effect.Clone()
		a.pending.ChangeActionUnit(target, actor)
		line, err := target.ApplyAction(a)
		if err != nil {
			return Outcome{}, err
		}
		if a.added {
			followUp.Concat(a.pending.OnApplyActions())
		}
		lines = append(lines, line)
	}
	a.pending = nil
	return Outcome{Description: strings.Join(lines, "\n"), FollowUp: followUp}, nil
}

func (a *EffectAction) Clone() Action {
	cp := *a
	cp.baseAction = a.baseAction.clone()
	cp.effect = a.effect.Clone()
	cp.pending = nil
	cp.added = false
	return &cp
}
