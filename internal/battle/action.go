package battle

import (
	"github.com/louisbranch/skirmish/internal/collection"
)

// ActionKind enumerates the closed set of action variants.
type ActionKind int

const (
	ActionDamage ActionKind = iota + 1
	ActionHeal
	ActionBuff
	ActionEffect
	ActionSummon
	ActionResurrection
	ActionParalysis
	ActionWait
	ActionManaRestore
)

var actionKindNames = map[ActionKind]string{
	ActionDamage:       "damage",
	ActionHeal:         "heal",
	ActionBuff:         "buff",
	ActionEffect:       "effect",
	ActionSummon:       "summon",
	ActionResurrection: "resurrection",
	ActionParalysis:    "paralysis",
	ActionWait:         "wait",
	ActionManaRestore:  "mana_restore",
}

// String returns the definition name of the kind, e.g. "mana_restore".
func (k ActionKind) String() string {
	if name, ok := actionKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseActionKind maps a definition type name to its kind.
func ParseActionKind(name string) (ActionKind, bool) {
	for kind, kindName := range actionKindNames {
		if kindName == name {
			return kind, true
		}
	}
	return 0, false
}

// TargetMode is the policy used to pick targets from the rosters.
type TargetMode string

const (
	TargetSelf          TargetMode = "self"
	TargetRandomEnemy   TargetMode = "random_enemy"
	TargetAllEnemies    TargetMode = "all_enemies"
	TargetWoundedAllies TargetMode = "wounded_allies"
	TargetDeadAllies    TargetMode = "dead_allies"
)

// Valid reports whether m is a known mode.
func (m TargetMode) Valid() bool {
	switch m {
	case TargetSelf, TargetRandomEnemy, TargetAllEnemies, TargetWoundedAllies, TargetDeadAllies:
		return true
	}
	return false
}

// sideRelative reports whether the mode picks from a command relative to the actor.
func (m TargetMode) sideRelative() bool {
	return m != TargetSelf
}

// Presentation carries display hints that formatters read back unchanged.
type Presentation struct {
	Name            string
	Icon            string
	AnimationMethod string
	MessageMethod   string
}

// Outcome is the result of handling an action: a description and, for
// actions that trigger more work, the follow-up actions to run next.
type Outcome struct {
	Description string
	FollowUp    *ActionCollection
}

// Hit records what one target received from a damage or heal action.
type Hit struct {
	TargetID string
	Power    int
	Factual  int
	Dodged   bool
	Blocked  bool
	Critical bool
}

// Action is one thing a unit does to one or more targets.
//
// CanBeUsed resolves targets with the same logic Handle uses and reports
// whether a legal target exists. Callers check it immediately before
// Handle; Handle re-reads the rosters and fails if no target is left.
type Action interface {
	Kind() ActionKind
	Name() string
	Icon() string
	AnimationMethod() string
	MessageMethod() string
	ActorID() string
	Actor() (*Unit, error)
	Targets() []*Unit
	TargetMode() TargetMode
	Power() int
	FactualPower() int
	SetFactualPower(power int)
	CanBeUsed() bool
	Handle() (Outcome, error)
	// Rebind makes actorID the acting unit.
	Rebind(actorID string)
	Clone() Action
}

// ActionCollection is an ordered list of actions.
type ActionCollection = collection.List[Action]

// NewActionCollection returns a collection holding actions in order.
func NewActionCollection(actions ...Action) *ActionCollection {
	return collection.NewList(actions...)
}

func cloneActions(actions *ActionCollection) *ActionCollection {
	if actions == nil {
		return NewActionCollection()
	}
	return actions.Clone(Action.Clone)
}

// baseAction holds the fields shared by every variant.
type baseAction struct {
	kind         ActionKind
	arena        *Arena
	actorID      string
	mode         TargetMode
	power        int
	factualPower int
	targets      []*Unit
	presentation Presentation
}

func newBaseAction(kind ActionKind, arena *Arena, actor *Unit, mode TargetMode, power int, p Presentation) baseAction {
	if p.Name == "" {
		p.Name = kind.String()
	}
	if p.MessageMethod == "" {
		p.MessageMethod = kind.String()
	}
	return baseAction{
		kind:         kind,
		arena:        arena,
		actorID:      actor.id,
		mode:         mode,
		power:        power,
		presentation: p,
	}
}

func (a *baseAction) Kind() ActionKind        { return a.kind }
func (a *baseAction) Name() string            { return a.presentation.Name }
func (a *baseAction) Icon() string            { return a.presentation.Icon }
func (a *baseAction) AnimationMethod() string { return a.presentation.AnimationMethod }
func (a *baseAction) MessageMethod() string   { return a.presentation.MessageMethod }
func (a *baseAction) ActorID() string         { return a.actorID }
func (a *baseAction) TargetMode() TargetMode  { return a.mode }
func (a *baseAction) Power() int              { return a.power }
func (a *baseAction) FactualPower() int       { return a.factualPower }

// SetFactualPower records the realized magnitude after application.
func (a *baseAction) SetFactualPower(power int) { a.factualPower = power }

// Actor resolves the acting unit through the arena.
func (a *baseAction) Actor() (*Unit, error) { return a.arena.actor(a.actorID) }

// Targets returns the targets of the last resolution.
func (a *baseAction) Targets() []*Unit {
	out := make([]*Unit, len(a.targets))
	copy(out, a.targets)
	return out
}

func (a *baseAction) Rebind(actorID string) { a.actorID = actorID }

// reset clears the results of a previous use.
func (a *baseAction) reset() {
	a.factualPower = 0
	a.targets = nil
}

func (a *baseAction) clone() baseAction {
	cp := *a
	cp.reset()
	return cp
}
