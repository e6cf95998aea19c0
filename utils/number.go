package utils

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ToNumber returns the numeric value of v, or 0 when v has none or the
// value is NaN/±Inf. It accepts anything a decoded JSON payload can hold
// plus the Go numeric kinds, and never panics.
func ToNumber(v any) float64 {
	var n float64
	switch t := v.(type) {
	case nil:
		return 0
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0
		}
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return 0
		}
		n = f
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		n = f
	case []any:
		// a one-element array counts as its element, like "[5]" in a form field
		if len(t) != 1 {
			return 0
		}
		return ToNumber(t[0])
	default:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return 0
		}
		n = f
	}
	if !isFinite(n) {
		return 0
	}
	return n
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// roundHalfUp rounds to the nearest integer; halves go toward +Inf.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// round1 rounds to one decimal place.
// The explicit conversion keeps x*10 from being fused into an FMA.
func round1(x float64) float64 {
	return roundHalfUp(float64(x*10)) / 10
}

func nonNegative(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	return cast.ToString(v)
}

func optionalString(v any) *string {
	s := toString(v)
	if s == "" {
		return nil
	}
	return &s
}

// optionalNumber treats nil and "" as absent.
func optionalNumber(v any) *float64 {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return nil
	}
	n := ToNumber(v)
	return &n
}

const maxSafeInteger = 1 << 53

func toUint(v any) uint {
	n := ToNumber(v)
	if n <= 0 || n > maxSafeInteger {
		return 0
	}
	return uint(n)
}

func optionalUint(v any) *uint {
	if v == nil {
		return nil
	}
	n := toUint(v)
	if n == 0 {
		return nil
	}
	return &n
}

func valueOf(p *float64) float64 {
	if p == nil {
		return 0
	}
	return ToNumber(*p)
}
