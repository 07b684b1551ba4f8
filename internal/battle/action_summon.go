package battle

// SummonAction adds a new unit to the actor's command.
type SummonAction struct {
	baseAction
	unit *Unit
	side Side
}

// NewSummonAction builds a summon action. An empty side means the actor's own.
func NewSummonAction(arena *Arena, actor *Unit, unit *Unit, side Side, p Presentation) *SummonAction {
	if p.Name == "" {
		p.Name = "summon " + unit.name
	}
	return &SummonAction{
		baseAction: newBaseAction(ActionSummon, arena, actor, TargetSelf, 0, p),
		unit:       unit,
		side:       side,
	}
}

// Unit returns the unit this action summons.
func (a *SummonAction) Unit() *Unit { return a.unit }

// SetFactualPower is a no-op: summons carry no magnitude.
func (a *SummonAction) SetFactualPower(int) {}

// CanBeUsed requires a living actor and a summon id not yet in the arena.
func (a *SummonAction) CanBeUsed() bool {
	actor, err := a.Actor()
	if err != nil || !actor.Alive() {
		return false
	}
	if _, exists := a.arena.Unit(a.unit.id); exists {
		return false
	}
	a.targets = []*Unit{actor}
	return true
}

func (a *SummonAction) Handle() (Outcome, error) {
	actor, err := a.Actor()
	if err != nil {
		return Outcome{}, err
	}
	side := a.side
	if side == "" {
		side = actor.side
	}
	a.reset()
	if err := a.arena.Summon(side, a.unit); err != nil {
		return Outcome{}, err
	}
	// Summoned units act from the next round.
	a.unit.acted = true
	a.targets = []*Unit{actor}
	line, err := actor.ApplyAction(a)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Description: line}, nil
}

func (a *SummonAction) Clone() Action {
	cp := *a
	cp.baseAction = a.baseAction.clone()
	cp.unit = a.unit.Clone()
	return &cp
}
