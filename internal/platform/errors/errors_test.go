package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	sentinel := New(CodeActionNoTargetForHeal, "no target")
	err := WithMetadata(CodeActionNoTargetForHeal, "heal has no wounded ally", map[string]string{"Action": "heal"})

	if !stderrors.Is(err, sentinel) {
		t.Fatal("expected errors.Is to match by code")
	}
	if stderrors.Is(err, New(CodeActionNoTargetForBuff, "")) {
		t.Fatal("expected different codes not to match")
	}
}

func TestCodeOfWalksWrappedErrors(t *testing.T) {
	inner := New(CodeUnitInvalidField, "bad life")
	wrapped := fmt.Errorf("build roster: %w", inner)

	if got := CodeOf(wrapped); got != CodeUnitInvalidField {
		t.Fatalf("code = %s, want %s", got, CodeUnitInvalidField)
	}
	if got := CodeOf(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("code = %s, want %s", got, CodeUnknown)
	}
}

func TestWrapUnwrapsCause(t *testing.T) {
	cause := stderrors.New("disk")
	err := Wrap(CodeNotFound, "definitions missing", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause to be reachable")
	}
}

func TestGRPCCode(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{CodeActionUnknownType, codes.InvalidArgument},
		{CodeActionInvalidResurrectedPower, codes.InvalidArgument},
		{CodeActionNoTargetForEffect, codes.FailedPrecondition},
		{CodeCommandDuplicateUnit, codes.AlreadyExists},
		{CodeUnitUndefinedActionMethod, codes.Unimplemented},
		{CodeUnitNotFound, codes.NotFound},
		{CodeUnknown, codes.Internal},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.GRPCCode(); got != tt.want {
				t.Fatalf("grpc code = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToGRPCStatusAttachesDetails(t *testing.T) {
	err := WithMetadata(CodeUnitInvalidField, "life out of range", map[string]string{"Field": "life"})
	st, ok := status.FromError(err.ToGRPCStatus("en-US", "Life is out of range."))
	if !ok {
		t.Fatal("expected grpc status")
	}
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("status code = %v, want %v", st.Code(), codes.InvalidArgument)
	}
	var info *errdetails.ErrorInfo
	for _, detail := range st.Details() {
		if d, ok := detail.(*errdetails.ErrorInfo); ok {
			info = d
		}
	}
	if info == nil {
		t.Fatal("expected ErrorInfo detail")
	}
	if info.GetReason() != string(CodeUnitInvalidField) {
		t.Fatalf("reason = %q, want %q", info.GetReason(), CodeUnitInvalidField)
	}
	if info.GetMetadata()["Field"] != "life" {
		t.Fatalf("metadata field = %q, want life", info.GetMetadata()["Field"])
	}
}
