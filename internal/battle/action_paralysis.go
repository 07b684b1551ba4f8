package battle

// ParalysisAction marks its target as having acted, so it loses its turn.
// Effects schedule it each round.
type ParalysisAction struct {
	baseAction
}

// NewParalysisAction builds a paralysis action. The actor is the paralyzed unit.
func NewParalysisAction(arena *Arena, actor *Unit, p Presentation) *ParalysisAction {
	return &ParalysisAction{baseAction: newBaseAction(ActionParalysis, arena, actor, TargetSelf, 0, p)}
}

// SetFactualPower is a no-op: paralysis has no magnitude.
func (a *ParalysisAction) SetFactualPower(int) {}

func (a *ParalysisAction) CanBeUsed() bool { return true }

func (a *ParalysisAction) Handle() (Outcome, error) {
	actor, err := a.Actor()
	if err != nil {
		return Outcome{}, err
	}
	a.reset()
	a.targets = []*Unit{actor}
	line, err := actor.ApplyAction(a)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Description: line}, nil
}

func (a *ParalysisAction) Clone() Action {
	cp := *a
	cp.baseAction = a.baseAction.clone()
	return &cp
}
