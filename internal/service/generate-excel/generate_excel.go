package generate_excel

import (
	"context"
	"fmt"

	"embroidery-quote/internal/service/quote"
	"github.com/xuri/excelize/v2"
)

const (
	sheet = "見積書"
	font  = "Meiryo"

	colorTitle     = "2C3E50"
	colorSection   = "ECF0F1"
	colorHeader    = "2980B9"
	colorRowEven   = "F8F9FA"
	colorTotal     = "3498DB"
	colorGrand     = "F39C12"
	colorFooter    = "7F8C8D"
	colorRowBorder = "BDC3C7"
)

type GenerateQuoteService struct{}

func NewGenerateService() *GenerateQuoteService {
	return &GenerateQuoteService{}
}

type styles struct {
	title      int
	header     int
	section    int
	tableHead  int
	label      int
	value      int
	labelEven  int
	valueEven  int
	totalLabel int
	totalValue int
	grandLabel int
	grandValue int
	footer     int
}

// GenerateQuote lays the document out on a single A4 sheet and returns the xlsx bytes.
// On error nothing is returned, so a caller never delivers a partial file.
func (g *GenerateQuoteService) GenerateQuote(ctx context.Context, doc quote.Document) ([]byte, error) {
	const op = "service.generate_excel.GenerateQuote"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("%s: rename sheet: %w", op, err)
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, fmt.Errorf("%s: styles: %w", op, err)
	}

	w := &sheetWriter{f: f}

	// header
	w.merged(doc.Title, st.title)
	w.row++
	w.pair(doc.CompanyName, "日付: "+doc.Date, st.header, st.header)
	w.pair("見積番号", doc.Number, st.header, st.header)
	w.row++

	// project details
	w.merged(doc.DetailsTitle, st.section)
	w.pair("項目", "内容", st.tableHead, st.tableHead)
	w.rows(doc.Details, st)
	w.row++

	// costs
	w.merged(doc.CostsTitle, st.section)
	w.rows(doc.Costs, st)
	w.row++

	w.pair(doc.Total.Label, doc.Total.Value, st.totalLabel, st.totalValue)
	w.pair(doc.GrandTotal.Label, doc.GrandTotal.Value, st.grandLabel, st.grandValue)
	w.row++

	w.merged(doc.Footer, st.footer)

	if w.err != nil {
		return nil, fmt.Errorf("%s: write cells: %w", op, w.err)
	}

	if err := layoutPage(f); err != nil {
		return nil, fmt.Errorf("%s: page layout: %w", op, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: write buffer: %w", op, err)
	}

	return buf.Bytes(), nil
}

func layoutPage(f *excelize.File) error {
	size := 9 // A4
	orientation := "portrait"
	fitToWidth, fitToHeight := 1, 1

	if err := f.SetPageLayout(sheet, &excelize.PageLayoutOptions{
		Size:        &size,
		Orientation: &orientation,
		FitToWidth:  &fitToWidth,
		FitToHeight: &fitToHeight,
	}); err != nil {
		return err
	}

	if err := f.SetColWidth(sheet, "A", "A", 48); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "B", 26)
}

func newStyles(f *excelize.File) (styles, error) {
	var (
		st  styles
		err error
	)

	fill := func(color string) excelize.Fill {
		return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
	}
	rowBorder := []excelize.Border{{Type: "bottom", Color: colorRowBorder, Style: 1}}
	right := &excelize.Alignment{Horizontal: "right", Vertical: "center"}

	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&st.title, &excelize.Style{
			Font:      &excelize.Font{Family: font, Size: 22, Bold: true, Color: colorTitle},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}},
		{&st.header, &excelize.Style{
			Font:   &excelize.Font{Family: font, Size: 11},
			Border: []excelize.Border{{Type: "bottom", Color: colorHeader, Style: 2}},
		}},
		{&st.section, &excelize.Style{
			Font: &excelize.Font{Family: font, Size: 13, Bold: true, Color: colorTitle},
			Fill: fill(colorSection),
		}},
		{&st.tableHead, &excelize.Style{
			Font: &excelize.Font{Family: font, Size: 10, Bold: true, Color: "FFFFFF"},
			Fill: fill(colorHeader),
		}},
		{&st.label, &excelize.Style{Font: &excelize.Font{Family: font, Size: 9, Bold: true}, Border: rowBorder}},
		{&st.value, &excelize.Style{Font: &excelize.Font{Family: font, Size: 9, Bold: true}, Border: rowBorder, Alignment: right}},
		{&st.labelEven, &excelize.Style{Font: &excelize.Font{Family: font, Size: 9, Bold: true}, Border: rowBorder, Fill: fill(colorRowEven)}},
		{&st.valueEven, &excelize.Style{Font: &excelize.Font{Family: font, Size: 9, Bold: true}, Border: rowBorder, Fill: fill(colorRowEven), Alignment: right}},
		{&st.totalLabel, &excelize.Style{Font: &excelize.Font{Family: font, Size: 11, Bold: true, Color: "FFFFFF"}, Fill: fill(colorTotal)}},
		{&st.totalValue, &excelize.Style{Font: &excelize.Font{Family: font, Size: 12, Bold: true, Color: "FFFFFF"}, Fill: fill(colorTotal), Alignment: right}},
		{&st.grandLabel, &excelize.Style{Font: &excelize.Font{Family: font, Size: 12, Bold: true, Color: colorTitle}, Fill: fill(colorGrand)}},
		{&st.grandValue, &excelize.Style{Font: &excelize.Font{Family: font, Size: 14, Bold: true, Color: colorTitle}, Fill: fill(colorGrand), Alignment: right}},
		{&st.footer, &excelize.Style{
			Font:      &excelize.Font{Family: font, Size: 8, Color: colorFooter},
			Alignment: &excelize.Alignment{Horizontal: "center"},
			Border:    []excelize.Border{{Type: "top", Color: colorRowBorder, Style: 1}},
		}},
	}

	for _, d := range defs {
		if *d.dst, err = f.NewStyle(d.style); err != nil {
			return st, err
		}
	}

	return st, nil
}

// sheetWriter keeps the current row and the first error, so the layout above reads top to bottom.
type sheetWriter struct {
	f   *excelize.File
	row int
	err error
}

func (w *sheetWriter) set(col int, value string, style int) {
	cell := w.cell(col)
	if w.err != nil {
		return
	}
	if w.err = w.f.SetCellValue(sheet, cell, value); w.err != nil {
		return
	}
	w.err = w.f.SetCellStyle(sheet, cell, cell, style)
}

func (w *sheetWriter) merged(value string, style int) {
	w.row++
	first, last := w.cell(1), w.cell(2)
	w.set(1, value, style)
	if w.err == nil {
		w.err = w.f.MergeCell(sheet, first, last)
	}
	if w.err == nil {
		w.err = w.f.SetCellStyle(sheet, first, last, style)
	}
}

func (w *sheetWriter) pair(label, value string, labelStyle, valueStyle int) {
	w.row++
	w.set(1, label, labelStyle)
	w.set(2, value, valueStyle)
}

func (w *sheetWriter) rows(rows []quote.Row, st styles) {
	for i, r := range rows {
		if i%2 == 0 {
			w.pair(r.Label, r.Value, st.label, st.value)
		} else {
			w.pair(r.Label, r.Value, st.labelEven, st.valueEven)
		}
	}
}

// cell names the column on the current row; a bad coordinate becomes the writer's error.
func (w *sheetWriter) cell(col int) string {
	if w.err != nil {
		return ""
	}
	name, err := excelize.CoordinatesToCellName(col, w.row)
	if err != nil {
		w.err = err
		return ""
	}
	return name
}
