package estimate

import (
	"embroidery-quote/internal/service/pricing"
	"embroidery-quote/internal/service/quote"
)

// View is what the breakdown screen shows for one snapshot.
type View struct {
	Snapshot
	Summary quote.Summary `json:"summary"`
}

func (s Snapshot) View() View {
	return View{Snapshot: s, Summary: quote.Summarize(s.Spec, s.Breakdown)}
}

// fieldOrder fixes the order free-text fields are applied in ParseSpec.
var fieldOrder = []string{
	FieldCompanyName,
	FieldProjectName,
	FieldQuantity,
	FieldStitches,
	FieldBaseRate,
	FieldSetupFee,
	FieldMaterialCost,
	FieldThreadCost,
	FieldComplexityMultiplier,
	FieldNumberOfAppliques,
	FieldAppliqueRate,
	FieldRushOrder,
}

// ParseSpec builds an order from free-text fields on top of the defaults,
// with the same coercion rules as UpdateField.
func ParseSpec(fields map[string]string) pricing.OrderSpec {
	spec := pricing.DefaultOrderSpec()

	for _, field := range fieldOrder {
		raw, ok := fields[field]
		if !ok {
			continue
		}

		if field == FieldComplexityMultiplier {
			if c, ok := ResolveComplexity(raw); ok {
				spec.ComplexityMultiplier = c.Multiplier
			}
			continue
		}

		fieldSetters[field](&spec, raw)
	}

	return spec
}
