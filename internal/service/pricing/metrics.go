package pricing

import "math"

// StitchesPerMinute is the machine speed used for production time estimates.
const StitchesPerMinute = 800

// PerStitchPrice returns total / stitches. ok is false when there are no stitches.
func PerStitchPrice(spec OrderSpec, b CostBreakdown) (price float64, ok bool) {
	if spec.Stitches <= 0 {
		return 0, false
	}
	return b.Total / float64(spec.Stitches), true
}

func ProductionMinutes(stitches int) int {
	if stitches <= 0 {
		return 0
	}
	return int(math.Ceil(float64(stitches) / StitchesPerMinute))
}

func TotalProductionMinutes(spec OrderSpec) int {
	quantity := spec.Quantity
	if quantity < 1 {
		quantity = 1
	}
	return ProductionMinutes(spec.Stitches) * quantity
}
