package battle

import (
	"fmt"

	apperrors "github.com/louisbranch/skirmish/internal/platform/errors"
)

// ManaRestoreAction restores mana to its caster.
type ManaRestoreAction struct {
	baseAction
	byUnit map[string]int
}

// NewManaRestoreAction builds a mana restore action. Only self targeting is accepted.
func NewManaRestoreAction(arena *Arena, actor *Unit, mode TargetMode, power int, p Presentation) (*ManaRestoreAction, error) {
	if mode == "" {
		mode = TargetSelf
	}
	if mode != TargetSelf {
		return nil, apperrors.WithMetadata(
			apperrors.CodeActionInvalidManaRestoreTarget,
			fmt.Sprintf("mana restore cannot target %s", mode),
			map[string]string{"Field": "type_target", "Value": string(mode)},
		)
	}
	return &ManaRestoreAction{
		baseAction: newBaseAction(ActionManaRestore, arena, actor, mode, power, p),
		byUnit:     map[string]int{},
	}, nil
}

// FactualPowerByUnit returns the mana actually restored to unitID.
func (a *ManaRestoreAction) FactualPowerByUnit(unitID string) (int, error) {
	power, ok := a.byUnit[unitID]
	if !ok {
		return 0, apperrors.WrapWithMetadata(
			apperrors.CodeActionNoPowerByUnit,
			fmt.Sprintf("mana restore did not affect unit %q", unitID),
			map[string]string{"UnitID": unitID},
			ErrNoPowerByUnit,
		)
	}
	return power, nil
}

// setFactualPowerByUnit records the mana restored to one unit.
func (a *ManaRestoreAction) setFactualPowerByUnit(unitID string, power int) {
	a.byUnit[unitID] = power
	a.factualPower = power
}

func (a *ManaRestoreAction) CanBeUsed() bool {
	actor, err := a.Actor()
	if err != nil || !actor.Alive() {
		return false
	}
	a.targets = resolveTargets(a.arena, actor, a.mode)
	return len(a.targets) > 0
}

func (a *ManaRestoreAction) Handle() (Outcome, error) {
	actor, err := a.Actor()
	if err != nil {
		return Outcome{}, err
	}
	a.reset()
	a.byUnit = map[string]int{}
	a.targets = []*Unit{actor}
	line, err := actor.ApplyAction(a)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Description: line}, nil
}

func (a *ManaRestoreAction) Clone() Action {
	cp := *a
	cp.baseAction = a.baseAction.clone()
	cp.byUnit = map[string]int{}
	return &cp
}
