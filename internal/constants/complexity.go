package constants

import "math"

type Complexity struct {
	Key        string  `json:"key"`
	Multiplier float64 `json:"multiplier"`
	Label      string  `json:"label"`
}

// ComplexityLevels is the selector order.
var ComplexityLevels = []Complexity{
	{Key: "0.8", Multiplier: 0.8, Label: "簡易（テキスト・シンプル図形）"},
	{Key: "1.0", Multiplier: 1.0, Label: "標準（通常のデザイン）"},
	{Key: "1.2", Multiplier: 1.2, Label: "複雑（細部のあるデザイン）"},
	{Key: "1.5", Multiplier: 1.5, Label: "高密度（緻密なアートワーク）"},
	{Key: "2.0", Multiplier: 2.0, Label: "プレミアム（写真・3D刺繍）"},
}

func ComplexityByKey(key string) (Complexity, bool) {
	for _, c := range ComplexityLevels {
		if c.Key == key {
			return c, true
		}
	}
	return Complexity{}, false
}

func ComplexityByMultiplier(multiplier float64) (Complexity, bool) {
	for _, c := range ComplexityLevels {
		if c.Multiplier == multiplier {
			return c, true
		}
	}
	return Complexity{}, false
}

// ComplexityLabel falls back to the bare multiplier for values outside the set.
func ComplexityLabel(multiplier float64) string {
	if c, ok := ComplexityByMultiplier(multiplier); ok {
		return c.Label
	}
	return FormatMultiplier(multiplier)
}

// NearestComplexity snaps an arbitrary multiplier onto the enumerated set.
// Ties go to the higher level.
func NearestComplexity(multiplier float64) Complexity {
	best := ComplexityLevels[0]
	bestDiff := math.Abs(multiplier - best.Multiplier)
	for _, c := range ComplexityLevels[1:] {
		diff := math.Abs(multiplier - c.Multiplier)
		if diff <= bestDiff+1e-9 {
			best, bestDiff = c, diff
		}
	}
	return best
}
