package quote

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"embroidery-quote/internal/service/pricing"
	"github.com/google/uuid"
)

const (
	Title        = "刺繍お見積書"
	PageSizeA4   = "A4"
	DetailsTitle = "プロジェクト詳細"
	CostsTitle   = "料金内訳（1点あたり）"

	untitledProject = "無題プロジェクト"
)

type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Document is an immutable quote snapshot, ready for an exporter to lay out.
type Document struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	Title        string    `json:"title"`
	PageSize     string    `json:"pageSize"`
	CompanyName  string    `json:"companyName"`
	Date         string    `json:"date"`
	GeneratedOn  time.Time `json:"generatedOn"`
	DetailsTitle string    `json:"detailsTitle"`
	Details      []Row     `json:"details"`
	CostsTitle   string    `json:"costsTitle"`
	Costs        []Row     `json:"costs"`
	Total        Row       `json:"total"`
	GrandTotal   Row       `json:"grandTotal"`
	Footer       string    `json:"footer"`
	FileName     string    `json:"fileName"`
}

type input struct {
	spec pricing.OrderSpec
	b    pricing.CostBreakdown
}

type rowRule struct {
	include func(in input) bool
	row     func(in input) Row
}

func always(input) bool { return true }

func collect(rules []rowRule, in input) []Row {
	rows := make([]Row, 0, len(rules))
	for _, r := range rules {
		if r.include(in) {
			rows = append(rows, r.row(in))
		}
	}
	return rows
}

var detailRules = []rowRule{
	{always, func(in input) Row {
		name := strings.TrimSpace(in.spec.ProjectName)
		if name == "" {
			name = untitledProject
		}
		return Row{"案件名（品名）", name}
	}},
	{always, func(in input) Row { return Row{"数量", Number(in.spec.Quantity) + " 点"} }},
	{always, func(in input) Row { return Row{"1点あたりの針数", Number(in.spec.Stitches) + " 針"} }},
	{always, func(in input) Row {
		return Row{"難易度", strconv.FormatFloat(in.spec.ComplexityMultiplier, 'f', -1, 64) + " 倍"}
	}},
	{
		func(in input) bool { return in.spec.NumberOfAppliques > 0 },
		func(in input) Row { return Row{"アップリケ", fmt.Sprintf("1点あたり %d 個", in.spec.NumberOfAppliques)} },
	},
	{
		func(in input) bool { return in.spec.RushOrder },
		func(in input) Row { return Row{"特急対応", "あり (+" + Yen(pricing.RushFee) + ")"} },
	},
}

func stitchRow(in input) Row {
	return Row{fmt.Sprintf("刺繍加工賃 (%s 針)", Number(in.spec.Stitches)), Yen(in.b.StitchCost)}
}

func setupFeeRow(in input) Row {
	label := "刺繍型代（初回のみ）"
	if in.spec.Quantity > 1 {
		label = fmt.Sprintf("%s (%s ÷ %d)", label, Yen(in.spec.SetupFee), in.spec.Quantity)
	}
	return Row{label, Yen(in.b.SetupFee)}
}

func hasComplexity(in input) bool { return in.b.ComplexityAdjustment > 0 }
func hasMaterial(in input) bool   { return in.b.MaterialCost > 0 }
func hasApplique(in input) bool   { return in.b.AppliqueCost > 0 }
func hasRushFee(in input) bool    { return in.b.RushFee > 0 }

func materialRow(in input) Row { return Row{"ボディ・生地代", Yen(in.b.MaterialCost)} }
func threadRow(in input) Row   { return Row{"糸代", Yen(in.b.ThreadCost)} }

func appliqueRow(in input) Row {
	return Row{fmt.Sprintf("アップリケ費用 (%d 個)", in.spec.NumberOfAppliques), Yen(in.b.AppliqueCost)}
}

// costRules order is the document's row order.
var costRules = []rowRule{
	{always, stitchRow},
	{hasComplexity, func(in input) Row { return Row{"難易度による調整", Yen(in.b.ComplexityAdjustment)} }},
	{always, setupFeeRow},
	{hasMaterial, materialRow},
	{always, threadRow},
	{hasApplique, appliqueRow},
	{hasRushFee, func(in input) Row { return Row{"特急対応費（一律）", Yen(in.b.RushFee)} }},
}

type Renderer struct {
	validityDays int
}

func NewRenderer(validityDays int) *Renderer {
	if validityDays <= 0 {
		validityDays = 30
	}
	return &Renderer{validityDays: validityDays}
}

// Render is deterministic: the same spec, breakdown and time give the same Document, ID included.
func (r *Renderer) Render(spec pricing.OrderSpec, b pricing.CostBreakdown, generatedOn time.Time) Document {
	in := input{spec: spec, b: b}
	id := documentID(spec, b, generatedOn)

	return Document{
		ID:           id.String(),
		Number:       strings.ToUpper(id.String()[:8]),
		Title:        Title,
		PageSize:     PageSizeA4,
		CompanyName:  spec.CompanyName,
		Date:         Date(generatedOn),
		GeneratedOn:  generatedOn,
		DetailsTitle: DetailsTitle,
		Details:      collect(detailRules, in),
		CostsTitle:   CostsTitle,
		Costs:        collect(costRules, in),
		Total:        Row{"1点あたりの合計", Yen(b.Total)},
		GrandTotal:   Row{fmt.Sprintf("総合計 (%s 点)", Number(spec.Quantity)), Yen(b.GrandTotal)},
		Footer:       fmt.Sprintf("本見積は%d日間有効です。諸条件が適用されます。", r.validityDays),
		FileName:     FileName(spec.ProjectName),
	}
}

func documentID(spec pricing.OrderSpec, b pricing.CostBreakdown, generatedOn time.Time) uuid.UUID {
	seed := fmt.Sprintf("%+v|%+v|%s", spec, b, generatedOn.UTC().Format(time.RFC3339Nano))
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))
}
