package battle

import (
	"sort"
	"strings"
)

// BuffParams configures a buff action.
type BuffParams struct {
	Mode TargetMode
	Stat BuffStat
	// Power is a percentage multiplier, e.g. 130 for +30%.
	Power        int
	Presentation Presentation
}

// BuffAction multiplies a stat of its targets and remembers the landed
// delta per target so RevertAction can undo it exactly.
type BuffAction struct {
	baseAction
	stat     BuffStat
	rollback bool
	// revert holds the delta that landed on each target id.
	revert map[string]float64
	// pinned fixes the targets of a rollback to the units originally buffed.
	pinned []string
}

// NewBuffAction builds a buff action for actor.
func NewBuffAction(arena *Arena, actor *Unit, p BuffParams) *BuffAction {
	if p.Mode == "" {
		p.Mode = TargetSelf
	}
	return &BuffAction{
		baseAction: newBaseAction(ActionBuff, arena, actor, p.Mode, p.Power, p.Presentation),
		stat:       p.Stat,
		revert:     map[string]float64{},
	}
}

// Stat returns the buffed stat.
func (a *BuffAction) Stat() BuffStat { return a.stat }

// ModifyMethod returns the method name, suffixed for rollbacks.
func (a *BuffAction) ModifyMethod() string {
	method := modifyMethodPrefix + string(a.stat)
	if a.rollback {
		method += rollbackSuffix
	}
	return method
}

// IsRollback reports whether this buff undoes another.
func (a *BuffAction) IsRollback() bool { return a.rollback }

// RevertValue returns the delta that landed on unitID.
func (a *BuffAction) RevertValue(unitID string) (float64, bool) {
	v, ok := a.revert[unitID]
	return v, ok
}

// SetFactualPower is a no-op: buffs carry no realized magnitude.
func (a *BuffAction) SetFactualPower(int) {}

// CanBeUsed is always true; eligibility is decided by the effect carrying the buff.
func (a *BuffAction) CanBeUsed() bool {
	if actor, err := a.Actor(); err == nil {
		a.targets = a.resolve(actor)
	}
	return true
}

func (a *BuffAction) Handle() (Outcome, error) {
	actor, err := a.Actor()
	if err != nil {
		return Outcome{}, err
	}
	targets := a.resolve(actor)
	if len(targets) == 0 {
		return Outcome{}, ErrNoTargetForBuff
	}
	a.reset()
	a.targets = targets
	lines := make([]string, 0, len(targets))
	for _, target := range targets {
		line, err := target.ApplyAction(a)
		if err != nil {
			return Outcome{}, err
		}
		lines = append(lines, line)
	}
	return Outcome{Description: strings.Join(lines, "\n")}, nil
}

// RevertAction mirrors the buff: same stat with the rollback marker, the
// landed deltas copied, and the buffed units pinned as targets.
func (a *BuffAction) RevertAction() *BuffAction {
	revert := &BuffAction{
		baseAction: a.baseAction.clone(),
		stat:       a.stat,
		rollback:   true,
		revert:     make(map[string]float64, len(a.revert)),
	}
	for id, delta := range a.revert {
		revert.revert[id] = delta
		revert.pinned = append(revert.pinned, id)
	}
	sort.Strings(revert.pinned)
	return revert
}

// resolve returns the pinned units for rollbacks, dead ones included, so a
// revert always lands on the unit that was buffed. A self buff always
// targets its actor, alive or not.
func (a *BuffAction) resolve(actor *Unit) []*Unit {
	if a.mode == TargetSelf && !a.rollback {
		return []*Unit{actor}
	}
	if a.rollback {
		var out []*Unit
		for _, id := range a.pinned {
			if u, ok := a.arena.Unit(id); ok {
				out = append(out, u)
			}
		}
		return out
	}
	return resolveTargets(a.arena, actor, a.mode)
}

func (a *BuffAction) Clone() Action {
	cp := *a
	cp.baseAction = a.baseAction.clone()
	cp.revert = make(map[string]float64, len(a.revert))
	if a.rollback {
		for id, delta := range a.revert {
			cp.revert[id] = delta
		}
	}
	cp.pinned = append([]string(nil), a.pinned...)
	return &cp
}

// landedCopy clones the buff keeping the deltas it already landed.
func (a *BuffAction) landedCopy() *BuffAction {
	cp := a.Clone().(*BuffAction)
	for id, delta := range a.revert {
		cp.revert[id] = delta
	}
	return cp
}
