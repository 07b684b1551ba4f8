package battle

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	apperrors "github.com/louisbranch/skirmish/internal/platform/errors"
)

// ActionFactory turns flat definition maps into live actions.
type ActionFactory struct{}

type actionBuilder func(f *fields, arena *Arena, actor *Unit, mode TargetMode, p Presentation) (Action, error)

var actionBuilders map[ActionKind]actionBuilder

func init() {
	actionBuilders = map[ActionKind]actionBuilder{
		ActionDamage:       buildDamage,
		ActionHeal:         buildHeal,
		ActionBuff:         buildBuff,
		ActionEffect:       buildEffect,
		ActionSummon:       buildSummon,
		ActionResurrection: buildResurrection,
		ActionParalysis:    buildParalysis,
		ActionWait:         buildWait,
		ActionManaRestore:  buildManaRestore,
	}
}

// Create builds the action described by data for actor.
func (ActionFactory) Create(data map[string]any, arena *Arena, actor *Unit) (Action, error) {
	f := actionFields(data)
	typeName := f.str("type")
	if f.err != nil {
		return nil, f.err
	}
	kind, ok := ParseActionKind(typeName)
	if !ok {
		return nil, apperrors.WrapWithMetadata(
			apperrors.CodeActionUnknownType,
			fmt.Sprintf("unknown action type %q", typeName),
			map[string]string{"Field": "type", "Value": typeName},
			ErrUnknownActionType,
		)
	}
	p := Presentation{
		Name:            f.optStr("name", ""),
		Icon:            f.optStr("icon", ""),
		AnimationMethod: f.optStr("animation_method", ""),
		MessageMethod:   f.optStr("message_method", ""),
	}
	mode := TargetMode(f.optStr("type_target", ""))
	if mode != "" && !mode.Valid() {
		f.failInvalid("type_target", "is not a known target mode", map[string]string{"Value": string(mode)})
	}
	if f.err != nil {
		return nil, f.err
	}
	action, err := actionBuilders[kind](f, arena, actor, mode, p)
	if err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return action, nil
}

func buildDamage(f *fields, arena *Arena, actor *Unit, mode TargetMode, p Presentation) (Action, error) {
	return NewDamageAction(arena, actor, DamageParams{
		Mode:         mode,
		Power:        f.optInt("power", 0, 0, math.MaxInt32),
		CanBeAvoided: f.boolean("can_be_avoided", true),
		Presentation: p,
	}), nil
}

func buildHeal(f *fields, arena *Arena, actor *Unit, mode TargetMode, p Presentation) (Action, error) {
	return NewHealAction(arena, actor, HealParams{
		Mode:         mode,
		Power:        f.optInt("power", 0, 0, math.MaxInt32),
		Presentation: p,
	}), nil
}

func buildBuff(f *fields, arena *Arena, actor *Unit, mode TargetMode, p Presentation) (Action, error) {
	method := f.str("modify_method")
	power := f.integer("power", 0, math.MaxInt32)
	if f.err != nil {
		return nil, f.err
	}
	stat, ok := ParseModifyMethod(method)
	if !ok {
		f.failInvalid("modify_method", "is not a known modify method", map[string]string{"Value": method})
		return nil, f.err
	}
	return NewBuffAction(arena, actor, BuffParams{Mode: mode, Stat: stat, Power: power, Presentation: p}), nil
}

func buildEffect(f *fields, arena *Arena, actor *Unit, mode TargetMode, p Presentation) (Action, error) {
	def := f.requiredTable("effect")
	if f.err != nil {
		return nil, f.err
	}
	effect, err := EffectFactory{}.Create(def, arena, actor)
	if err != nil {
		return nil, err
	}
	return NewEffectAction(arena, actor, mode, effect, p), nil
}

func buildSummon(f *fields, arena *Arena, actor *Unit, mode TargetMode, p Presentation) (Action, error) {
	def := f.requiredTable("summon")
	if f.err != nil {
		return nil, f.err
	}
	summon := make(map[string]any, len(def)+1)
	for k, v := range def {
		summon[k] = v
	}
	if _, ok := summon["id"]; !ok {
		summon["id"] = "summon_" + uuid.NewString()[:8]
	}
	unit, err := NewUnitFromMap(summon)
	if err != nil {
		return nil, err
	}
	return NewSummonAction(arena, actor, unit, unit.side, p), nil
}

func buildResurrection(f *fields, arena *Arena, actor *Unit, mode TargetMode, p Presentation) (Action, error) {
	power := f.integer("power", math.MinInt32, math.MaxInt32)
	if f.err != nil {
		return nil, f.err
	}
	return NewResurrectionAction(arena, actor, power, p)
}

func buildParalysis(f *fields, arena *Arena, actor *Unit, mode TargetMode, p Presentation) (Action, error) {
	return NewParalysisAction(arena, actor, p), nil
}

func buildWait(f *fields, arena *Arena, actor *Unit, mode TargetMode, p Presentation) (Action, error) {
	return NewWaitAction(arena, actor, p), nil
}

func buildManaRestore(f *fields, arena *Arena, actor *Unit, mode TargetMode, p Presentation) (Action, error) {
	power := f.integer("power", 0, math.MaxInt32)
	if f.err != nil {
		return nil, f.err
	}
	return NewManaRestoreAction(arena, actor, mode, power, p)
}
