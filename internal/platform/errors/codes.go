// Package errors provides structured combat errors with machine-readable codes.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Action precondition errors
	CodeActionNoDefined                Code = "NO_DEFINED"
	CodeActionNoDefinedAgain           Code = "NO_DEFINED_AGAIN"
	CodeActionNoTargetForBuff          Code = "NO_TARGET_FOR_BUFF"
	CodeActionNoTargetForEffect        Code = "NO_TARGET_FOR_EFFECT"
	CodeActionNoTargetForHeal          Code = "NO_TARGET_FOR_HEAL"
	CodeActionNoTargetForResurrection  Code = "NO_TARGET_FOR_RESURRECTION"
	CodeActionNoPowerByUnit            Code = "NO_POWER_BY_UNIT"
	CodeActionInvalidResurrectedPower  Code = "INVALID_RESURRECTED_POWER"
	CodeActionInvalidManaRestoreTarget Code = "INVALID_MANA_RESTORE_TARGET"

	// Action construction errors
	CodeActionUnknownType  Code = "UNKNOWN_TYPE_ACTION"
	CodeActionMissingField Code = "ACTION_MISSING_FIELD"
	CodeActionInvalidField Code = "ACTION_INVALID_FIELD"

	// Effect construction errors
	CodeEffectMissingField Code = "EFFECT_MISSING_FIELD"
	CodeEffectInvalidField Code = "EFFECT_INVALID_FIELD"

	// Unit errors
	CodeUnitUndefinedActionMethod Code = "UNDEFINED_ACTION_METHOD"
	CodeUnitMissingField          Code = "UNIT_MISSING_FIELD"
	CodeUnitInvalidField          Code = "UNIT_INVALID_FIELD"
	CodeUnitNotFound              Code = "UNIT_NOT_FOUND"

	// Roster errors
	CodeCommandDuplicateUnit   Code = "COMMAND_DUPLICATE_UNIT"
	CodeCollectionDuplicateKey Code = "COLLECTION_DUPLICATE_KEY"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"

	// Random/seed errors
	CodeSeedOutOfRange Code = "SEED_OUT_OF_RANGE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - malformed definitions, out of range input
	case CodeActionUnknownType,
		CodeActionMissingField,
		CodeActionInvalidField,
		CodeActionInvalidResurrectedPower,
		CodeActionInvalidManaRestoreTarget,
		CodeEffectMissingField,
		CodeEffectInvalidField,
		CodeUnitMissingField,
		CodeUnitInvalidField,
		CodeSeedOutOfRange:
		return codes.InvalidArgument

	// FailedPrecondition - action handled without a legal target
	case CodeActionNoDefined,
		CodeActionNoDefinedAgain,
		CodeActionNoTargetForBuff,
		CodeActionNoTargetForEffect,
		CodeActionNoTargetForHeal,
		CodeActionNoTargetForResurrection,
		CodeActionNoPowerByUnit:
		return codes.FailedPrecondition

	// AlreadyExists - roster invariants
	case CodeCommandDuplicateUnit,
		CodeCollectionDuplicateKey:
		return codes.AlreadyExists

	// Unimplemented - action kind without a unit handler
	case CodeUnitUndefinedActionMethod:
		return codes.Unimplemented

	// NotFound - resource doesn't exist
	case CodeNotFound,
		CodeUnitNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
