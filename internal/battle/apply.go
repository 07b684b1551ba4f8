package battle

import (
	"fmt"

	apperrors "github.com/louisbranch/skirmish/internal/platform/errors"
)

// applyHandler mutates the target unit for one action kind and returns the
// description line.
type applyHandler func(u *Unit, a Action) (string, error)

var applyHandlers map[ActionKind]applyHandler

func init() {
	applyHandlers = map[ActionKind]applyHandler{
		ActionDamage:       applyDamage,
		ActionHeal:         applyHeal,
		ActionBuff:         applyBuff,
		ActionEffect:       applyEffect,
		ActionSummon:       applySummon,
		ActionResurrection: applyResurrection,
		ActionParalysis:    applyParalysis,
		ActionWait:         applyWait,
		ActionManaRestore:  applyManaRestore,
	}
}

// ApplyAction is the single point where an action changes a unit. It
// dispatches on the action kind, records the realized magnitude on the
// action, and grants the resources earned by being targeted.
func (u *Unit) ApplyAction(a Action) (string, error) {
	handler, ok := applyHandlers[a.Kind()]
	if !ok {
		return "", apperrors.WrapWithMetadata(
			apperrors.CodeUnitUndefinedActionMethod,
			fmt.Sprintf("unit %s has no handler for %s", u.id, a.Kind()),
			map[string]string{"UnitID": u.id, "Action": a.Kind().String()},
			ErrUndefinedActionMethod,
		)
	}
	line, err := handler(u, a)
	if err != nil {
		return "", err
	}
	u.addReceived()
	return line, nil
}

// actorName resolves the acting unit's name for descriptions.
func actorName(a Action) string {
	actor, err := a.Actor()
	if err != nil {
		return a.ActorID()
	}
	return actor.name
}

func applyDamage(u *Unit, a Action) (string, error) {
	hit := Hit{Power: a.Power()}
	if d, ok := a.(*DamageAction); ok {
		hit = d.pendingHit()
	}
	key := a.MessageMethod()
	switch {
	case hit.Dodged:
		a.SetFactualPower(0)
		return describe(msgDamageDodged, msgDamageDodged, actorName(a), u.name), nil
	case hit.Blocked:
		a.SetFactualPower(0)
		return describe(msgDamageBlocked, msgDamageBlocked, actorName(a), u.name), nil
	case hit.Critical:
		key = msgDamageCritical
	}
	before := u.life
	u.life = clampInt(u.life-hit.Power, 0, u.totalLife)
	dealt := before - u.life
	a.SetFactualPower(dealt)
	return describe(key, msgDamage, actorName(a), u.name, dealt), nil
}

func applyHeal(u *Unit, a Action) (string, error) {
	power := a.Power()
	if h, ok := a.(*HealAction); ok {
		power = h.pendingPower()
	}
	before := u.life
	u.life = clampInt(u.life+power, 0, u.totalLife)
	healed := u.life - before
	a.SetFactualPower(healed)
	return describe(a.MessageMethod(), msgHeal, actorName(a), u.name, healed), nil
}

func applyBuff(u *Unit, a Action) (string, error) {
	buff, ok := a.(*BuffAction)
	if !ok {
		return "", fmt.Errorf("buff handler received %T", a)
	}
	stat, ok := buffStats[buff.stat]
	if !ok {
		return "", apperrors.WithMetadata(
			apperrors.CodeActionInvalidField,
			fmt.Sprintf("unknown buff stat %q", buff.stat),
			map[string]string{"Field": "modify_method", "Value": string(buff.stat)},
		)
	}
	if buff.rollback {
		if delta, ok := buff.revert[u.id]; ok {
			stat.rollback(u, delta)
		}
		return describe(msgBuffRollback, msgBuffRollback, actorName(a), u.name, buff.Name()), nil
	}
	buff.revert[u.id] += stat.multiply(u, buff.power)
	return describe(a.MessageMethod(), msgBuff, actorName(a), u.name, buff.Name()), nil
}

func applyEffect(u *Unit, a Action) (string, error) {
	ea, ok := a.(*EffectAction)
	if !ok || ea.pending == nil {
		return "", fmt.Errorf("effect handler received %T without a pending effect", a)
	}
	ea.added = u.effects.Add(ea.pending)
	key := a.MessageMethod()
	if !ea.added {
		key = msgEffectRefresh
	}
	return describe(key, msgEffect, actorName(a), u.name, ea.pending.name), nil
}

func applySummon(u *Unit, a Action) (string, error) {
	name := ""
	if s, ok := a.(*SummonAction); ok {
		name = s.unit.name
	}
	return describe(a.MessageMethod(), msgSummon, u.name, name), nil
}

func applyResurrection(u *Unit, a Action) (string, error) {
	u.life = clampInt(max(1, u.totalLife*a.Power()/100), 1, u.totalLife)
	a.SetFactualPower(u.life)
	return describe(a.MessageMethod(), msgResurrection, actorName(a), u.name, u.life), nil
}

func applyParalysis(u *Unit, a Action) (string, error) {
	u.acted = true
	return describe(a.MessageMethod(), msgParalysis, u.name, u.name), nil
}

func applyWait(u *Unit, a Action) (string, error) {
	u.acted = true
	return describe(a.MessageMethod(), msgWait, u.name, u.name), nil
}

func applyManaRestore(u *Unit, a Action) (string, error) {
	before := u.mana
	u.mana = clampInt(u.mana+a.Power(), 0, u.totalMana)
	restored := u.mana - before
	if m, ok := a.(*ManaRestoreAction); ok {
		m.setFactualPowerByUnit(u.id, restored)
	} else {
		a.SetFactualPower(restored)
	}
	return describe(a.MessageMethod(), msgManaRestore, u.name, u.name, restored), nil
}
