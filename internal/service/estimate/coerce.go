package estimate

import (
	"math"
	"strings"

	"embroidery-quote/internal/constants"
	"github.com/spf13/cast"
)

const maxCount = math.MaxInt32

func parseNumber(raw string) (float64, bool) {
	v, err := cast.ToFloat64E(strings.TrimSpace(raw))
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// CoerceQuantity never returns less than 1.
func CoerceQuantity(raw string) int {
	v, ok := parseNumber(raw)
	if !ok || v < 1 {
		return 1
	}
	return truncate(v)
}

// CoerceCount parses stitch and applique counts; fractions are truncated.
func CoerceCount(raw string) int {
	v, ok := parseNumber(raw)
	if !ok || v < 0 {
		return 0
	}
	return truncate(v)
}

func CoerceAmount(raw string) float64 {
	v, ok := parseNumber(raw)
	if !ok || v < 0 {
		return 0
	}
	return v
}

// CoerceFlag also accepts the "on" a browser checkbox submits.
func CoerceFlag(raw string) bool {
	s := strings.TrimSpace(raw)
	if strings.EqualFold(s, "on") {
		return true
	}
	return cast.ToBool(s)
}

func truncate(v float64) int {
	if v > maxCount {
		return maxCount
	}
	return int(math.Trunc(v))
}

// ResolveComplexity accepts a selector key ("2.0") or the multiplier itself
// as text or number ("2", 2). Values outside the enumerated set are rejected.
func ResolveComplexity(raw string) (constants.Complexity, bool) {
	key := strings.TrimSpace(raw)
	if c, ok := constants.ComplexityByKey(key); ok {
		return c, true
	}

	v, ok := parseNumber(key)
	if !ok {
		return constants.Complexity{}, false
	}
	return constants.ComplexityByMultiplier(v)
}
