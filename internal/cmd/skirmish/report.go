package skirmish

import (
	"errors"
	"log"
	"sort"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"

	"github.com/louisbranch/skirmish/internal/battle"
	apperrors "github.com/louisbranch/skirmish/internal/platform/errors"
)

// reportFailure logs a domain failure as its status code, reason and
// metadata. Errors without a domain code are left to the caller.
func reportFailure(logger *log.Logger, err error) {
	var domainErr *apperrors.Error
	if !errors.As(err, &domainErr) {
		return
	}
	st, ok := status.FromError(domainErr.ToGRPCStatus(battle.BaseLanguage.String(), err.Error()))
	if !ok {
		return
	}
	reason := string(domainErr.Code)
	var metadata map[string]string
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok {
			reason = info.GetReason()
			metadata = info.GetMetadata()
		}
	}
	logger.Printf("failed: status=%s reason=%s%s", st.Code(), reason, formatMetadata(metadata))
}

func formatMetadata(metadata map[string]string) string {
	if len(metadata) == 0 {
		return ""
	}
	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+metadata[key])
	}
	return " " + strings.Join(pairs, " ")
}
