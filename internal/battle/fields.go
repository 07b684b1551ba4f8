package battle

import (
	"fmt"
	"math"
	"strconv"

	apperrors "github.com/louisbranch/skirmish/internal/platform/errors"
)

// fields reads typed values out of a definition map. The first failure is
// kept in err and later reads become no-ops, so a factory can read every
// key and check once.
type fields struct {
	scope   string
	data    map[string]any
	missing apperrors.Code
	invalid apperrors.Code
	err     error
}

func actionFields(data map[string]any) *fields {
	return &fields{scope: "action", data: data, missing: apperrors.CodeActionMissingField, invalid: apperrors.CodeActionInvalidField}
}

func effectFields(data map[string]any) *fields {
	return &fields{scope: "effect", data: data, missing: apperrors.CodeEffectMissingField, invalid: apperrors.CodeEffectInvalidField}
}

func unitFields(data map[string]any) *fields {
	return &fields{scope: "unit", data: data, missing: apperrors.CodeUnitMissingField, invalid: apperrors.CodeUnitInvalidField}
}

// sub reads a nested map with the same scope and codes.
func (f *fields) sub(key string) *fields {
	data, _ := f.table(key)
	return &fields{scope: f.scope + "." + key, data: data, missing: f.missing, invalid: f.invalid, err: f.err}
}

func (f *fields) failMissing(key string) {
	if f.err != nil {
		return
	}
	f.err = apperrors.WithMetadata(f.missing,
		fmt.Sprintf("%s field %q is required", f.scope, key),
		map[string]string{"Field": key})
}

func (f *fields) failInvalid(key, reason string, extra map[string]string) {
	if f.err != nil {
		return
	}
	metadata := map[string]string{"Field": key}
	for k, v := range extra {
		metadata[k] = v
	}
	f.err = apperrors.WithMetadata(f.invalid,
		fmt.Sprintf("%s field %q %s", f.scope, key, reason),
		metadata)
}

func (f *fields) has(key string) bool {
	v, ok := f.data[key]
	return ok && v != nil
}

func (f *fields) str(key string) string {
	if !f.has(key) {
		f.failMissing(key)
		return ""
	}
	return f.optStr(key, "")
}

func (f *fields) optStr(key, def string) string {
	if !f.has(key) {
		return def
	}
	s, ok := f.data[key].(string)
	if !ok {
		f.failInvalid(key, "must be a string", nil)
		return def
	}
	return s
}

func (f *fields) integer(key string, min, max int) int {
	if !f.has(key) {
		f.failMissing(key)
		return 0
	}
	return f.optInt(key, 0, min, max)
}

func (f *fields) optInt(key string, def, min, max int) int {
	if !f.has(key) {
		return def
	}
	n, ok := toInt(f.data[key])
	if !ok {
		f.failInvalid(key, "must be an integer", nil)
		return def
	}
	if n < min || n > max {
		f.failInvalid(key, fmt.Sprintf("must be in range %d..%d", min, max),
			map[string]string{"Min": strconv.Itoa(min), "Max": strconv.Itoa(max), "Value": strconv.Itoa(n)})
		return def
	}
	return n
}

func (f *fields) number(key string, def, min, max float64) float64 {
	if !f.has(key) {
		return def
	}
	n, ok := toFloat(f.data[key])
	if !ok {
		f.failInvalid(key, "must be a number", nil)
		return def
	}
	if n < min || n > max {
		f.failInvalid(key, fmt.Sprintf("must be in range %g..%g", min, max),
			map[string]string{"Min": strconv.FormatFloat(min, 'g', -1, 64), "Max": strconv.FormatFloat(max, 'g', -1, 64)})
		return def
	}
	return n
}

func (f *fields) boolean(key string, def bool) bool {
	if !f.has(key) {
		return def
	}
	b, ok := f.data[key].(bool)
	if !ok {
		f.failInvalid(key, "must be a boolean", nil)
		return def
	}
	return b
}

func (f *fields) table(key string) (map[string]any, bool) {
	if !f.has(key) {
		return nil, false
	}
	m, ok := f.data[key].(map[string]any)
	if !ok {
		f.failInvalid(key, "must be a table", nil)
		return nil, false
	}
	return m, true
}

func (f *fields) requiredTable(key string) map[string]any {
	if !f.has(key) {
		f.failMissing(key)
		return nil
	}
	m, _ := f.table(key)
	return m
}

// list reads a sequence of tables. Decoders hand sequences over as []any;
// an empty Lua table arrives as an empty map.
func (f *fields) list(key string) []map[string]any {
	if !f.has(key) {
		return nil
	}
	switch v := f.data[key].(type) {
	case []map[string]any:
		return v
	case []any:
		out := make([]map[string]any, 0, len(v))
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				f.failInvalid(key, fmt.Sprintf("item %d must be a table", i), map[string]string{"Index": strconv.Itoa(i)})
				return nil
			}
			out = append(out, m)
		}
		return out
	case map[string]any:
		if len(v) == 0 {
			return nil
		}
	}
	f.failInvalid(key, "must be a list of tables", nil)
	return nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
