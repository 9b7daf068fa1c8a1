package quote

import (
	"testing"
	"time"

	"embroidery-quote/internal/service/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedOn = time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)

func specFixture() pricing.OrderSpec {
	spec := pricing.DefaultOrderSpec()
	spec.CompanyName = "株式会社テスト"
	spec.ProjectName = "チームキャップ"
	return spec
}

func labels(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Label)
	}
	return out
}

func TestRender_SinglePiece(t *testing.T) {
	spec := specFixture()
	doc := NewRenderer(30).Render(spec, pricing.Compute(spec), generatedOn)

	assert.Equal(t, Title, doc.Title)
	assert.Equal(t, PageSizeA4, doc.PageSize)
	assert.Equal(t, "株式会社テスト", doc.CompanyName)
	assert.Equal(t, "2026/3/5", doc.Date)
	assert.Equal(t, "チームキャップ_見積書.xlsx", doc.FileName)
	assert.Equal(t, "本見積は30日間有効です。諸条件が適用されます。", doc.Footer)

	assert.Equal(t, []Row{
		{"案件名（品名）", "チームキャップ"},
		{"数量", "1 点"},
		{"1点あたりの針数", "8,000 針"},
		{"難易度", "1 倍"},
	}, doc.Details)

	assert.Equal(t, []Row{
		{"刺繍加工賃 (8,000 針)", "¥640"},
		{"刺繍型代（初回のみ）", "¥4,000"},
		{"ボディ・生地代", "¥2,000"},
		{"糸代", "¥200"},
	}, doc.Costs)

	assert.Equal(t, Row{"1点あたりの合計", "¥6,840"}, doc.Total)
	assert.Equal(t, Row{"総合計 (1 点)", "¥6,840"}, doc.GrandTotal)
}

func TestRender_AllOptionalRowsInFixedOrder(t *testing.T) {
	spec := specFixture()
	spec.Quantity = 5
	spec.ComplexityMultiplier = 1.5
	spec.NumberOfAppliques = 2
	spec.AppliqueRate = 150
	spec.RushOrder = true

	doc := NewRenderer(30).Render(spec, pricing.Compute(spec), generatedOn)

	assert.Equal(t, []string{
		"刺繍加工賃 (8,000 針)",
		"難易度による調整",
		"刺繍型代（初回のみ） (¥4,000 ÷ 5)",
		"ボディ・生地代",
		"糸代",
		"アップリケ費用 (2 個)",
		"特急対応費（一律）",
	}, labels(doc.Costs))

	assert.Equal(t, "¥320", doc.Costs[1].Value)
	assert.Equal(t, "¥800", doc.Costs[2].Value)
	assert.Equal(t, "¥300", doc.Costs[5].Value)
	assert.Equal(t, "¥4,000", doc.Costs[6].Value)

	assert.Equal(t, []Row{
		{"案件名（品名）", "チームキャップ"},
		{"数量", "5 点"},
		{"1点あたりの針数", "8,000 針"},
		{"難易度", "1.5 倍"},
		{"アップリケ", "1点あたり 2 個"},
		{"特急対応", "あり (+¥4,000)"},
	}, doc.Details)

	// (640 + 320 + 800 + 2000 + 200 + 300) * 5 + 4000
	assert.Equal(t, Row{"総合計 (5 点)", "¥25,300"}, doc.GrandTotal)
}

func TestRender_ComplexityDetailText(t *testing.T) {
	for multiplier, want := range map[float64]string{1.0: "1 倍", 2.0: "2 倍", 0.8: "0.8 倍", 1.2: "1.2 倍"} {
		spec := specFixture()
		spec.ComplexityMultiplier = multiplier

		doc := NewRenderer(30).Render(spec, pricing.Compute(spec), generatedOn)

		assert.Equal(t, Row{"難易度", want}, doc.Details[3], "multiplier=%v", multiplier)
	}
}

func TestRender_OmitsZeroAppliqueAndMaterial(t *testing.T) {
	spec := specFixture()
	spec.MaterialCost = 0
	spec.NumberOfAppliques = 0
	spec.ComplexityMultiplier = 0.8

	doc := NewRenderer(30).Render(spec, pricing.Compute(spec), generatedOn)

	assert.Equal(t, []string{
		"刺繍加工賃 (8,000 針)",
		"刺繍型代（初回のみ）",
		"糸代",
	}, labels(doc.Costs))
	assert.NotContains(t, labels(doc.Details), "アップリケ")
}

func TestRender_ZeroStitchesStillShowsStitchRow(t *testing.T) {
	spec := specFixture()
	spec.Stitches = 0

	doc := NewRenderer(30).Render(spec, pricing.Compute(spec), generatedOn)

	require.NotEmpty(t, doc.Costs)
	assert.Equal(t, Row{"刺繍加工賃 (0 針)", "¥0"}, doc.Costs[0])
}

func TestRender_UntitledProject(t *testing.T) {
	spec := specFixture()
	spec.ProjectName = "  "

	doc := NewRenderer(0).Render(spec, pricing.Compute(spec), generatedOn)

	assert.Equal(t, "無題プロジェクト", doc.Details[0].Value)
	assert.Equal(t, "刺繍見積書.xlsx", doc.FileName)
	assert.Contains(t, doc.Footer, "30日間")
}

func TestRender_Deterministic(t *testing.T) {
	spec := specFixture()
	b := pricing.Compute(spec)
	r := NewRenderer(14)

	first := r.Render(spec, b, generatedOn)
	second := r.Render(spec, b, generatedOn)

	assert.Equal(t, first, second)
	assert.Len(t, first.Number, 8)

	later := r.Render(spec, b, generatedOn.Add(time.Second))
	assert.NotEqual(t, first.ID, later.ID)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "¥0", Yen(0))
	assert.Equal(t, "¥1", Yen(0.5))
	assert.Equal(t, "¥1,333", Yen(4000.0/3))
	assert.Equal(t, "¥1,234,568", Yen(1234567.5))
	assert.Equal(t, "-¥128", Yen(-128))
	assert.Equal(t, "12,000", Number(12000))
	assert.Equal(t, "2026/12/31", Date(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "a_b_見積書.xlsx", FileName("a/b"))
}
