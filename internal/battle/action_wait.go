package battle

// WaitAction skips the actor's turn.
type WaitAction struct {
	baseAction
}

// NewWaitAction builds a wait action for actor.
func NewWaitAction(arena *Arena, actor *Unit, p Presentation) *WaitAction {
	return &WaitAction{baseAction: newBaseAction(ActionWait, arena, actor, TargetSelf, 0, p)}
}

// SetFactualPower is a no-op: waiting has no magnitude.
func (a *WaitAction) SetFactualPower(int) {}

func (a *WaitAction) CanBeUsed() bool { return true }

func (a *WaitAction) Handle() (Outcome, error) {
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

func (a *WaitAction) Clone() Action {
	cp := *a
	cp.baseAction = a.baseAction.clone()
	return &cp
}
