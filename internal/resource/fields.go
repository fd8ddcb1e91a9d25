package resource

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// fields is a decoded header. Accessors never fail: a missing or mistyped
// value degrades to the zero value of the requested type.
type fields map[string]any

func (f fields) str(key string) string {
	v, ok := f[key]
	if !ok || v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

func (f fields) uint8(key string) uint8 {
	v, ok := f[key]
	if !ok || v == nil {
		return 0
	}
	n, err := cast.ToUint64E(v)
	if err != nil || n > math.MaxUint8 {
		return 0
	}
	return uint8(n)
}

// list accepts a YAML sequence or a comma separated string.
func (f fields) list(key string) []string {
	switch v := f[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, err := cast.ToStringE(item)
			if err != nil {
				continue
			}
			out = append(out, s)
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case string:
		return SplitList(v)
	default:
		return nil
	}
}

// SplitList splits a comma separated answer into trimmed, non-empty items.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
