package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const estimateSheet = "Estimate"

// GenerateEstimateExcel writes the estimate document to a single-sheet
// workbook and returns the file contents.
func GenerateEstimateExcel(doc EstimateDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, estimateSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	if err := f.SetColWidth(estimateSheet, "A", "A", 28); err != nil {
		return nil, fmt.Errorf("set col width A: %w", err)
	}
	if err := f.SetColWidth(estimateSheet, "B", "B", 70); err != nil {
		return nil, fmt.Errorf("set col width B: %w", err)
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headingStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12, Color: "#111827"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F3F4F6"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create heading style: %w", err)
	}

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create label style: %w", err)
	}

	valueStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Border:    thinBorders(),
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, fmt.Errorf("create value style: %w", err)
	}

	mutedStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10, Color: "#4B5563"},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, fmt.Errorf("create muted style: %w", err)
	}

	// ── Header Rows ─────────────────────────────────────────────────────

	row := 1
	cell := func(col string) string { return fmt.Sprintf("%s%d", col, row) }

	f.SetCellValue(estimateSheet, cell("A"), sanitizeExcelCell(doc.Issuer.Name))
	f.SetCellStyle(estimateSheet, cell("A"), cell("A"), titleStyle)
	f.SetCellValue(estimateSheet, cell("B"), doc.Title)
	f.SetCellStyle(estimateSheet, cell("B"), cell("B"), titleStyle)
	row++

	f.SetCellValue(estimateSheet, cell("A"), sanitizeExcelCell(doc.Issuer.Contact))
	row++
	f.SetCellValue(estimateSheet, cell("A"), "Estimate #")
	f.SetCellValue(estimateSheet, cell("B"), doc.Number)
	row++
	f.SetCellValue(estimateSheet, cell("A"), "Date")
	f.SetCellValue(estimateSheet, cell("B"), doc.Date)
	row++

	// ── Sections ────────────────────────────────────────────────────────

	for _, section := range doc.Sections {
		if section.Kind == SectionDivider {
			row++
			continue
		}

		if err := f.MergeCell(estimateSheet, cell("A"), cell("B")); err != nil {
			return nil, fmt.Errorf("merge heading %q: %w", section.Heading, err)
		}
		f.SetCellValue(estimateSheet, cell("A"), section.Heading)
		f.SetCellStyle(estimateSheet, cell("A"), cell("B"), headingStyle)
		row++

		for _, line := range section.Lines {
			switch {
			case line.IsKeyValue():
				f.SetCellValue(estimateSheet, cell("A"), line.Label)
				f.SetCellStyle(estimateSheet, cell("A"), cell("A"), labelStyle)
				f.SetCellValue(estimateSheet, cell("B"), sanitizeExcelCell(line.Text))
				f.SetCellStyle(estimateSheet, cell("B"), cell("B"), valueStyle)
			case line.Lead != "":
				f.SetCellValue(estimateSheet, cell("A"), line.Lead)
				f.SetCellStyle(estimateSheet, cell("A"), cell("A"), labelStyle)
				f.SetCellValue(estimateSheet, cell("B"), sanitizeExcelCell(line.Text))
				f.SetCellStyle(estimateSheet, cell("B"), cell("B"), valueStyle)
			default:
				if err := f.MergeCell(estimateSheet, cell("A"), cell("B")); err != nil {
					return nil, fmt.Errorf("merge line: %w", err)
				}
				f.SetCellValue(estimateSheet, cell("A"), sanitizeExcelCell(line.Text))
				f.SetCellStyle(estimateSheet, cell("A"), cell("B"), mutedStyle)
			}
			row++
		}
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
