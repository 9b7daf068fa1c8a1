package constants

import (
	"strconv"
	"strings"

	"embroidery-quote/internal/service/pricing"
)

const PresetCustom = "custom"

type Preset struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	// nil for the custom preset: applying it changes nothing.
	Patch *pricing.PresetPatch `json:"patch"`
}

// Tokyo market prices, yen.
var BuiltinPresets = []Preset{
	{
		Key:   "bringYourOwn",
		Label: "持ち込み刺繍サービス",
		Patch: &pricing.PresetPatch{
			BaseRate:             80,
			SetupFee:             3000,
			MaterialCost:         0,
			ThreadCost:           150,
			ComplexityMultiplier: 1.0,
			NumberOfAppliques:    0,
			AppliqueRate:         100,
		},
	},
	{
		Key:   "cap",
		Label: "ベースボールキャップ",
		Patch: &pricing.PresetPatch{
			BaseRate:             80,
			SetupFee:             3000,
			MaterialCost:         1500,
			ThreadCost:           150,
			ComplexityMultiplier: 1.2,
			NumberOfAppliques:    0,
			AppliqueRate:         100,
		},
	},
	{
		Key:   "polo",
		Label: "ポロシャツ",
		Patch: &pricing.PresetPatch{
			BaseRate:             80,
			SetupFee:             5000,
			MaterialCost:         2000,
			ThreadCost:           200,
			ComplexityMultiplier: 1.0,
			NumberOfAppliques:    0,
			AppliqueRate:         100,
		},
	},
	{
		Key:   "jacket",
		Label: "ジャケット / パーカー",
		Patch: &pricing.PresetPatch{
			BaseRate:             80,
			SetupFee:             8000,
			MaterialCost:         5800,
			ThreadCost:           400,
			ComplexityMultiplier: 1.2,
			NumberOfAppliques:    0,
			AppliqueRate:         150,
		},
	},
	{
		Key:   PresetCustom,
		Label: "カスタム（自由入力）",
	},
}

// FormatMultiplier renders 1 as "1.0" and 1.25 as "1.25".
func FormatMultiplier(m float64) string {
	s := strconv.FormatFloat(m, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
