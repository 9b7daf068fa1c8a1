package pricing

// PresetPatch lists every field a preset overwrites. Identification,
// quantity, stitches and the rush flag are never touched.
type PresetPatch struct {
	BaseRate             float64 `json:"baseRate"`
	SetupFee             float64 `json:"setupFee"`
	MaterialCost         float64 `json:"materialCost"`
	ThreadCost           float64 `json:"threadCost"`
	ComplexityMultiplier float64 `json:"complexityMultiplier"`
	NumberOfAppliques    int     `json:"numberOfAppliques"`
	AppliqueRate         float64 `json:"appliqueRate"`
}

func (p PresetPatch) Apply(spec *OrderSpec) {
	spec.BaseRate = p.BaseRate
	spec.SetupFee = p.SetupFee
	spec.MaterialCost = p.MaterialCost
	spec.ThreadCost = p.ThreadCost
	spec.ComplexityMultiplier = p.ComplexityMultiplier
	spec.NumberOfAppliques = p.NumberOfAppliques
	spec.AppliqueRate = p.AppliqueRate
}
