package quote

import (
	"fmt"

	"embroidery-quote/internal/constants"
	"embroidery-quote/internal/service/pricing"
)

const notAvailable = "N/A"

// Summary is the live on-screen breakdown.
type Summary struct {
	Rows                []Row  `json:"rows"`
	Total               Row    `json:"total"`
	GrandTotal          Row    `json:"grandTotal"`
	PerStitchPrice      string `json:"perStitchPrice"`
	ProductionTime      string `json:"productionTime"`
	TotalProductionTime string `json:"totalProductionTime,omitempty"`
	ComplexityLabel     string `json:"complexityLabel"`
}

// summaryRules differ from the document: signed adjustments and a subtotal before the rush fee.
var summaryRules = []rowRule{
	{always, stitchRow},
	{hasComplexity, func(in input) Row { return Row{"難易度による調整", "+" + Yen(in.b.ComplexityAdjustment)} }},
	{always, setupFeeRow},
	{hasMaterial, materialRow},
	{always, threadRow},
	{hasApplique, appliqueRow},
	{hasRushFee, func(in input) Row { return Row{"小計", Yen(in.b.Subtotal)} }},
	{hasRushFee, func(in input) Row { return Row{"特急対応費（一律）", "+" + Yen(in.b.RushFee)} }},
}

func Summarize(spec pricing.OrderSpec, b pricing.CostBreakdown) Summary {
	in := input{spec: spec, b: b}

	s := Summary{
		Rows:            collect(summaryRules, in),
		Total:           Row{"1点あたりの合計", Yen(b.Total)},
		PerStitchPrice:  PerStitchPrice(spec, b),
		ProductionTime:  fmt.Sprintf("1点あたり約 %d 分（%d針/分換算）", pricing.ProductionMinutes(spec.Stitches), pricing.StitchesPerMinute),
		ComplexityLabel: constants.ComplexityLabel(spec.ComplexityMultiplier),
	}

	if spec.Quantity > 1 {
		s.GrandTotal = Row{fmt.Sprintf("総合計 (%s 点)", Number(spec.Quantity)), Yen(b.GrandTotal)}
		s.TotalProductionTime = fmt.Sprintf("総製作時間: %s 分", Number(pricing.TotalProductionMinutes(spec)))
	} else {
		s.GrandTotal = Row{"お見積り合計", Yen(b.Total)}
	}

	return s
}

// PerStitchPrice shows N/A rather than dividing by zero stitches.
func PerStitchPrice(spec pricing.OrderSpec, b pricing.CostBreakdown) string {
	price, ok := pricing.PerStitchPrice(spec, b)
	if !ok {
		return notAvailable
	}
	return fmt.Sprintf("¥%.2f / 針", price)
}
