package battle

import (
	"fmt"
	"strconv"

	apperrors "github.com/louisbranch/skirmish/internal/platform/errors"
)

// ResurrectionAction revives the first dead ally with a percentage of its total life.
type ResurrectionAction struct {
	baseAction
}

// NewResurrectionAction builds a resurrection action. Power is the percent
// of total life restored and must be in 1..100.
func NewResurrectionAction(arena *Arena, actor *Unit, power int, p Presentation) (*ResurrectionAction, error) {
	if power < 1 || power > 100 {
		return nil, apperrors.WithMetadata(
			apperrors.CodeActionInvalidResurrectedPower,
			fmt.Sprintf("resurrection power %d must be in range 1..100", power),
			map[string]string{"Field": "power", "Value": strconv.Itoa(power), "Min": "1", "Max": "100"},
		)
	}
	return &ResurrectionAction{
		baseAction: newBaseAction(ActionResurrection, arena, actor, TargetDeadAllies, power, p),
	}, nil
}

func (a *ResurrectionAction) CanBeUsed() bool {
	actor, err := a.Actor()
	if err != nil || !actor.Alive() {
		return false
	}
	a.targets = resolveTargets(a.arena, actor, a.mode)
	return len(a.targets) > 0
}

func (a *ResurrectionAction) Handle() (Outcome, error) {
	actor, err := a.Actor()
	if err != nil {
		return Outcome{}, err
	}
	targets := resolveTargets(a.arena, actor, a.mode)
	if len(targets) == 0 {
		return Outcome{}, ErrNoTargetForResurrection
	}
	a.reset()
	a.targets = targets
	line, err := targets[0].ApplyAction(a)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Description: line}, nil
}

func (a *ResurrectionAction) Clone() Action {
	cp := *a
	cp.baseAction = a.baseAction.clone()
	return &cp
}
