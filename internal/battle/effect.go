package battle

import (
	"context"
	"log"

	"github.com/looplab/fsm"

	"github.com/louisbranch/skirmish/internal/collection"
)

// RebindScope controls which unit an effect's actions act for once the
// effect lands on a holder.
type RebindScope string

const (
	// RebindActor makes the holder the actor of every carried action.
	RebindActor RebindScope = "actor"
	// RebindNone keeps the caster as actor.
	RebindNone RebindScope = "none"
)

// Effect lifecycle states.
const (
	EffectInactive = "inactive"
	EffectApplied  = "applied"
	EffectExpired  = "expired"
)

const (
	eventApply  = "apply"
	eventExpire = "expire"
)

// EffectParams configures an effect template.
type EffectParams struct {
	Name        string
	Icon        string
	Duration    int
	OnApply     *ActionCollection
	OnNextRound *ActionCollection
	OnDisable   *ActionCollection
	Rebind      RebindScope
}

// Effect is a named, timed modifier attached to a unit. Its three action
// lists fire on application, at each new round, and on expiry. Buffs
// applied on application are reverted on expiry.
type Effect struct {
	name         string
	icon         string
	baseDuration int
	duration     int
	onApply      *ActionCollection
	onNextRound  *ActionCollection
	onDisable    *ActionCollection
	rebind       RebindScope

	holderID string
	buffs    []*BuffAction
	stale    []Action
	state    *fsm.FSM
}

// NewEffect builds an inactive effect template.
func NewEffect(p EffectParams) *Effect {
	if p.Rebind == "" {
		p.Rebind = RebindActor
	}
	orEmpty := func(c *ActionCollection) *ActionCollection {
		if c == nil {
			return NewActionCollection()
		}
		return c
	}
	return &Effect{
		name:         p.Name,
		icon:         p.Icon,
		baseDuration: p.Duration,
		duration:     p.Duration,
		onApply:      orEmpty(p.OnApply),
		onNextRound:  orEmpty(p.OnNextRound),
		onDisable:    orEmpty(p.OnDisable),
		rebind:       p.Rebind,
		state:        newEffectState(EffectInactive),
	}
}

func newEffectState(initial string) *fsm.FSM {
	return fsm.NewFSM(
		initial,
		fsm.Events{
			{Name: eventApply, Src: []string{EffectInactive}, Dst: EffectApplied},
			{Name: eventExpire, Src: []string{EffectApplied}, Dst: EffectExpired},
		},
		fsm.Callbacks{},
	)
}

func (e *Effect) Name() string        { return e.name }
func (e *Effect) Icon() string        { return e.icon }
func (e *Effect) Duration() int       { return e.duration }
func (e *Effect) BaseDuration() int   { return e.baseDuration }
func (e *Effect) Rebind() RebindScope { return e.rebind }
func (e *Effect) HolderID() string    { return e.holderID }
func (e *Effect) State() string       { return e.state.Current() }
func (e *Effect) Expired() bool       { return e.state.Is(EffectExpired) }

// StaleActions returns the carried actions whose side-relative targeting
// changed meaning when they were rebound to a holder on the other side.
func (e *Effect) StaleActions() []Action {
	return append([]Action(nil), e.stale...)
}

// ChangeActionUnit binds the effect to its holder. With RebindActor every
// carried action acts for the holder from then on.
func (e *Effect) ChangeActionUnit(holder *Unit, caster *Unit) {
	e.holderID = holder.id
	if e.rebind != RebindActor {
		return
	}
	crossed := caster != nil && caster.side != holder.side
	for _, list := range []*ActionCollection{e.onApply, e.onNextRound, e.onDisable} {
		for _, action := range list.Values() {
			if crossed && action.TargetMode().sideRelative() {
				e.stale = append(e.stale, action)
				log.Printf("effect %s: %s action targets %s relative to %s, now on the %s side",
					e.name, action.Kind(), action.TargetMode(), holder.id, holder.side)
			}
			action.Rebind(holder.id)
		}
	}
}

// OnApplyActions marks the effect applied and returns fresh copies of the
// application actions. Buffs among them are remembered for reverting. An
// effect that is already applied or expired returns nothing.
func (e *Effect) OnApplyActions() *ActionCollection {
	out := NewActionCollection()
	if !e.fire(eventApply) {
		return out
	}
	for _, action := range e.onApply.Values() {
		clone := action.Clone()
		if buff, ok := clone.(*BuffAction); ok {
			e.buffs = append(e.buffs, buff)
		}
		out.Add(clone)
	}
	return out
}

// OnNextRoundActions returns fresh copies of the per-round actions.
func (e *Effect) OnNextRoundActions() *ActionCollection {
	return cloneActions(e.onNextRound)
}

// OnDisableActions returns the expiry actions followed by the rollback of
// every buff applied by this effect.
func (e *Effect) OnDisableActions() *ActionCollection {
	out := cloneActions(e.onDisable)
	for _, buff := range e.buffs {
		out.Add(buff.RevertAction())
	}
	return out
}

// Refresh resets the remaining duration without firing application actions again.
func (e *Effect) Refresh() {
	e.duration = e.baseDuration
}

// tick consumes one round and reports whether the effect ran out.
func (e *Effect) tick() bool {
	e.duration--
	return e.duration < 1
}

// fire moves the lifecycle along and reports whether the transition happened.
func (e *Effect) fire(event string) bool {
	if !e.state.Can(event) {
		return false
	}
	if err := e.state.Event(context.Background(), event); err != nil {
		log.Printf("effect %s: %s: %v", e.name, event, err)
		return false
	}
	return true
}

// Clone copies the effect with fresh action lists. A held effect keeps its
// holder, remaining duration, lifecycle state and the landed deltas of its
// buffs, so the copy reverts exactly what the original would.
func (e *Effect) Clone() *Effect {
	cp := &Effect{
		name:         e.name,
		icon:         e.icon,
		baseDuration: e.baseDuration,
		duration:     e.duration,
		onApply:      cloneActions(e.onApply),
		onNextRound:  cloneActions(e.onNextRound),
		onDisable:    cloneActions(e.onDisable),
		rebind:       e.rebind,
		holderID:     e.holderID,
		stale:        append([]Action(nil), e.stale...),
		state:        newEffectState(e.state.Current()),
	}
	for _, buff := range e.buffs {
		cp.buffs = append(cp.buffs, buff.landedCopy())
	}
	return cp
}

// EffectCollection holds a unit's effects keyed by name.
type EffectCollection struct {
	effects *collection.Keyed[string, *Effect]
}

// NewEffectCollection returns an empty collection.
func NewEffectCollection() *EffectCollection {
	return &EffectCollection{effects: collection.NewKeyed((*Effect).Name)}
}

// Add stores e, or refreshes the held effect of the same name. It reports
// whether e was newly added.
func (c *EffectCollection) Add(e *Effect) bool {
	if held, ok := c.effects.Get(e.name); ok {
		held.Refresh()
		return false
	}
	c.effects.Set(e)
	return true
}

func (c *EffectCollection) Exists(name string) bool         { return c.effects.Exists(name) }
func (c *EffectCollection) Get(name string) (*Effect, bool) { return c.effects.Get(name) }
func (c *EffectCollection) Count() int                      { return c.effects.Count() }
func (c *EffectCollection) Values() []*Effect               { return c.effects.Values() }

// NextRound collects each applied effect's per-round actions and ticks its
// duration. Effects that run out expire, contribute their expiry and
// rollback actions, and are removed. Effects not yet applied are skipped.
func (c *EffectCollection) NextRound() *ActionCollection {
	out := NewActionCollection()
	for _, e := range c.effects.Values() {
		if !e.state.Is(EffectApplied) {
			continue
		}
		out.Concat(e.OnNextRoundActions())
		if !e.tick() || !e.fire(eventExpire) {
			continue
		}
		out.Concat(e.OnDisableActions())
		c.effects.Remove(e.name)
	}
	return out
}

// Clone copies every held effect.
func (c *EffectCollection) Clone() *EffectCollection {
	return &EffectCollection{effects: c.effects.Clone((*Effect).Clone)}
}
