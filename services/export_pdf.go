package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PDFSettings controls page setup for the estimate PDF.
type PDFSettings struct {
	Margin      float64 // millimetres, applied to left, top and right
	PageSize    string  // "a4" or "letter"
	Orientation string  // "portrait" or "landscape"
}

// DefaultPDFSettings matches the layout the estimate was designed for.
var DefaultPDFSettings = PDFSettings{
	Margin:      10,
	PageSize:    "a4",
	Orientation: "portrait",
}

var (
	inkColor    = &props.Color{Red: 17, Green: 24, Blue: 39}
	mutedColor  = &props.Color{Red: 75, Green: 85, Blue: 99}
	borderColor = &props.Color{Red: 229, Green: 231, Blue: 235}
)

// GenerateEstimatePDF renders an estimate document as a PDF using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateEstimatePDF(doc EstimateDocument, settings PDFSettings) ([]byte, error) {
	if settings.Margin <= 0 {
		settings.Margin = DefaultPDFSettings.Margin
	}

	cfg := config.NewBuilder().
		WithOrientation(pdfOrientation(settings.Orientation)).
		WithPageSize(pdfPageSize(settings.PageSize)).
		WithLeftMargin(settings.Margin).
		WithTopMargin(settings.Margin).
		WithRightMargin(settings.Margin).
		Build()

	m := maroto.New(cfg)

	addEstimateHeader(m, doc)
	for _, section := range doc.Sections {
		switch section.Kind {
		case SectionDivider:
			addDivider(m)
		case SectionDetails:
			addKeyValueSection(m, section)
		default:
			addTextSection(m, section)
		}
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate estimate PDF: %w", err)
	}

	return out.GetBytes(), nil
}

// addEstimateHeader adds the issuer block on the left and the estimate
// metadata on the right.
func addEstimateHeader(m core.Maroto, doc EstimateDocument) {
	m.AddRows(
		row.New(9).Add(
			col.New(7).Add(
				text.New(doc.Issuer.Name, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: inkColor,
				}),
			),
			col.New(5).Add(
				text.New(doc.Title, props.Text{
					Size:  13,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: inkColor,
				}),
			),
		),
	)

	small := props.Text{Size: 8, Align: align.Left, Color: inkColor}
	smallRight := small
	smallRight.Align = align.Right

	m.AddRows(
		row.New(5).Add(
			col.New(7).Add(text.New(doc.Issuer.Contact, small)),
			col.New(5).Add(text.New("Estimate #: "+doc.Number, smallRight)),
		),
		row.New(5).Add(
			col.New(7),
			col.New(5).Add(text.New("Date: "+doc.Date, smallRight)),
		),
	)
}

// addDivider draws a thin rule with some breathing room.
func addDivider(m core.Maroto) {
	m.AddRows(
		row.New(2),
		row.New(0.3).Add(
			col.New(12).WithStyle(&props.Cell{BackgroundColor: borderColor}),
		),
		row.New(4),
	)
}

// addKeyValueSection adds a heading followed by a label/value table.
func addKeyValueSection(m core.Maroto, section DocSection) {
	addSectionHeading(m, section.Heading)

	label := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left, Color: inkColor}
	value := props.Text{Size: 8, Align: align.Left, Color: inkColor}

	for _, line := range section.Lines {
		m.AddRows(
			row.New(rowHeight(line.Text, 90)).Add(
				col.New(4).Add(text.New(line.Label, label)),
				col.New(8).Add(text.New(line.Text, value)),
			),
		)
	}
	m.AddRows(row.New(3))
}

// addTextSection adds a heading followed by paragraph lines.
func addTextSection(m core.Maroto, section DocSection) {
	addSectionHeading(m, section.Heading)

	for _, line := range section.Lines {
		style := lineTextProps(line.Style)
		if line.Lead != "" {
			lead := style
			lead.Style = fontstyle.Bold
			m.AddRows(
				row.New(6).Add(
					col.New(3).Add(text.New(strings.TrimSpace(line.Lead), lead)),
					col.New(9).Add(text.New(line.Text, style)),
				),
			)
			continue
		}
		m.AddRows(
			row.New(rowHeight(line.Text, 130)).Add(
				col.New(12).Add(text.New(line.Text, style)),
			),
		)
	}
	m.AddRows(row.New(3))
}

func addSectionHeading(m core.Maroto, heading string) {
	if heading == "" {
		return
	}
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(heading, props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: inkColor,
				}),
			),
		),
	)
}

func lineTextProps(style LineStyle) props.Text {
	switch style {
	case LineSmall:
		return props.Text{Size: 8, Align: align.Left, Color: inkColor}
	case LineMuted:
		return props.Text{Size: 8, Align: align.Left, Color: mutedColor}
	default:
		return props.Text{Size: 9, Align: align.Left, Color: inkColor}
	}
}

// rowHeight gives long lines enough height to wrap. charsPerLine is a rough
// capacity of the column at 8pt.
func rowHeight(s string, charsPerLine int) float64 {
	lines := len(s)/charsPerLine + 1
	return float64(lines)*4 + 1
}

func pdfPageSize(s string) pagesize.Type {
	switch strings.ToLower(s) {
	case "letter":
		return pagesize.Letter
	case "legal":
		return pagesize.Legal
	default:
		return pagesize.A4
	}
}

func pdfOrientation(s string) orientation.Type {
	if strings.EqualFold(s, "landscape") {
		return orientation.Horizontal
	}
	return orientation.Vertical
}
