package pricing

// RushFee is charged once per order, never per piece.
const RushFee = 4000.0

const stitchesPerRateUnit = 1000.0

type OrderSpec struct {
	CompanyName          string  `json:"companyName"`
	ProjectName          string  `json:"projectName"`
	Quantity             int     `json:"quantity"`
	Stitches             int     `json:"stitches"`
	BaseRate             float64 `json:"baseRate"`
	SetupFee             float64 `json:"setupFee"`
	MaterialCost         float64 `json:"materialCost"`
	ThreadCost           float64 `json:"threadCost"`
	ComplexityMultiplier float64 `json:"complexityMultiplier"`
	NumberOfAppliques    int     `json:"numberOfAppliques"`
	AppliqueRate         float64 `json:"appliqueRate"`
	RushOrder            bool    `json:"rushOrder"`
}

// CostBreakdown holds per-piece components; only GrandTotal covers the whole order.
type CostBreakdown struct {
	StitchCost           float64 `json:"stitchCost"`
	MaterialCost         float64 `json:"materialCost"`
	ThreadCost           float64 `json:"threadCost"`
	SetupFee             float64 `json:"setupFee"`
	AppliqueCost         float64 `json:"appliqueCost"`
	ComplexityAdjustment float64 `json:"complexityAdjustment"`
	RushFee              float64 `json:"rushFee"`
	Subtotal             float64 `json:"subtotal"`
	Total                float64 `json:"total"`
	GrandTotal           float64 `json:"grandTotal"`
}

func DefaultOrderSpec() OrderSpec {
	return OrderSpec{
		CompanyName:          "Beauxsacs Embroidery and Monogramming",
		Quantity:             1,
		Stitches:             8000,
		BaseRate:             80,
		SetupFee:             4000,
		MaterialCost:         2000,
		ThreadCost:           200,
		ComplexityMultiplier: 1.0,
		NumberOfAppliques:    0,
		AppliqueRate:         100,
	}
}

// Compute derives the whole breakdown from a single spec snapshot.
// Values keep full precision; rounding happens only when rendering.
func Compute(spec OrderSpec) CostBreakdown {
	quantity := spec.Quantity
	if quantity < 1 {
		quantity = 1
	}

	stitchCost := float64(spec.Stitches) / stitchesPerRateUnit * spec.BaseRate
	appliqueCost := float64(spec.NumberOfAppliques) * spec.AppliqueRate
	complexityAdjustment := stitchCost * (spec.ComplexityMultiplier - 1)
	setupFeeShare := spec.SetupFee / float64(quantity)

	rushFee := 0.0
	if spec.RushOrder {
		rushFee = RushFee
	}

	subtotal := stitchCost +
		spec.MaterialCost +
		spec.ThreadCost +
		setupFeeShare +
		appliqueCost +
		complexityAdjustment

	return CostBreakdown{
		StitchCost:           stitchCost,
		MaterialCost:         spec.MaterialCost,
		ThreadCost:           spec.ThreadCost,
		SetupFee:             setupFeeShare,
		AppliqueCost:         appliqueCost,
		ComplexityAdjustment: complexityAdjustment,
		RushFee:              rushFee,
		Subtotal:             subtotal,
		Total:                subtotal + rushFee,
		GrandTotal:           subtotal*float64(quantity) + rushFee,
	}
}
