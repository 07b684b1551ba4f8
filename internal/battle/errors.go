package battle

import (
	apperrors "github.com/louisbranch/skirmish/internal/platform/errors"
)

var (
	// ErrNoDefined indicates a damage action found no living enemy.
	ErrNoDefined = apperrors.New(apperrors.CodeActionNoDefined, "no living enemy to target")
	// ErrNoDefinedAgain indicates target resolution came back empty after the enemy command reported living units.
	ErrNoDefinedAgain = apperrors.New(apperrors.CodeActionNoDefinedAgain, "target resolution returned no unit for a command with living units")
	// ErrNoTargetForBuff indicates a buff was handled without a target.
	ErrNoTargetForBuff = apperrors.New(apperrors.CodeActionNoTargetForBuff, "buff has no target")
	// ErrNoTargetForEffect indicates an effect was handled without a target.
	ErrNoTargetForEffect = apperrors.New(apperrors.CodeActionNoTargetForEffect, "effect has no target")
	// ErrNoTargetForHeal indicates a heal was handled without a wounded ally.
	ErrNoTargetForHeal = apperrors.New(apperrors.CodeActionNoTargetForHeal, "heal has no wounded ally")
	// ErrNoTargetForResurrection indicates a resurrection was handled without a dead ally.
	ErrNoTargetForResurrection = apperrors.New(apperrors.CodeActionNoTargetForResurrection, "resurrection has no dead ally")
	// ErrInvalidResurrectedPower indicates resurrection power outside 1..100.
	ErrInvalidResurrectedPower = apperrors.New(apperrors.CodeActionInvalidResurrectedPower, "resurrection power must be in range 1..100")
	// ErrInvalidManaRestoreTarget indicates a mana restore not targeting its caster.
	ErrInvalidManaRestoreTarget = apperrors.New(apperrors.CodeActionInvalidManaRestoreTarget, "mana restore must target self")
	// ErrNoPowerByUnit indicates a per-unit factual power lookup for an untouched unit.
	ErrNoPowerByUnit = apperrors.New(apperrors.CodeActionNoPowerByUnit, "action did not affect unit")
	// ErrUnknownActionType indicates an action definition with an unknown type.
	ErrUnknownActionType = apperrors.New(apperrors.CodeActionUnknownType, "unknown action type")
	// ErrActionMissingField indicates a required action field is absent.
	ErrActionMissingField = apperrors.New(apperrors.CodeActionMissingField, "action field is required")
	// ErrActionInvalidField indicates an action field has the wrong type or range.
	ErrActionInvalidField = apperrors.New(apperrors.CodeActionInvalidField, "action field is invalid")
	// ErrEffectMissingField indicates a required effect field is absent.
	ErrEffectMissingField = apperrors.New(apperrors.CodeEffectMissingField, "effect field is required")
	// ErrEffectInvalidField indicates an effect field has the wrong type or range.
	ErrEffectInvalidField = apperrors.New(apperrors.CodeEffectInvalidField, "effect field is invalid")
	// ErrUnitMissingField indicates a required unit field is absent.
	ErrUnitMissingField = apperrors.New(apperrors.CodeUnitMissingField, "unit field is required")
	// ErrUnitInvalidField indicates a unit field has the wrong type or range.
	ErrUnitInvalidField = apperrors.New(apperrors.CodeUnitInvalidField, "unit field is invalid")
	// ErrUndefinedActionMethod indicates a unit has no handler for an action kind.
	ErrUndefinedActionMethod = apperrors.New(apperrors.CodeUnitUndefinedActionMethod, "unit has no handler for action")
	// ErrUnitNotFound indicates an id that is not registered in the arena.
	ErrUnitNotFound = apperrors.New(apperrors.CodeUnitNotFound, "unit not found")
	// ErrDuplicateUnit indicates two units sharing an id.
	ErrDuplicateUnit = apperrors.New(apperrors.CodeCommandDuplicateUnit, "unit id already exists")
)
