package services

import (
	"math"
	"strings"
	"time"
)

// Fixed estimate wording.
const (
	EstimateTitle      = "Estimate"
	NoExtrasSelected   = "No additional add-ons selected."
	EstimateDisclaimer = "This estimate is a planning range based on the details provided. " +
		"Final pricing will be confirmed after an on-site walkthrough, final design selections and permit review."
)

// NextSteps is the static guidance printed at the end of every estimate.
var NextSteps = []string{
	"1. Review this estimate and adjust scope, finishes and timeline as needed.",
	"2. Schedule an on-site walkthrough to confirm measurements and existing conditions.",
	"3. Receive a formal written quote and construction agreement based on the finalized scope.",
}

// Issuer describes the business printed in the estimate header.
type Issuer struct {
	Name    string
	Contact string
	Prefix  string
}

// DefaultIssuer is used when no issuer is configured.
var DefaultIssuer = Issuer{
	Name:    "Inspired Living Constructions Inc.",
	Contact: "Calgary, Alberta • dhillongagan566@gmail.com • (604) 368-3331",
	Prefix:  DefaultEstimatePrefix,
}

// SectionKind identifies a block of the estimate document.
type SectionKind string

const (
	SectionDivider   SectionKind = "divider"
	SectionBillTo    SectionKind = "bill_to"
	SectionDetails   SectionKind = "details"
	SectionEstimate  SectionKind = "estimate"
	SectionNotes     SectionKind = "notes"
	SectionNextSteps SectionKind = "next_steps"
)

// LineStyle hints how a line should be typeset.
type LineStyle int

const (
	LineBody LineStyle = iota
	LineSmall
	LineMuted
)

// DocLine is one line of a section. Lines with a Label are key/value rows;
// lines with Lead print the lead in bold before Text.
type DocLine struct {
	Label string
	Lead  string
	Text  string
	Style LineStyle
}

// IsKeyValue reports whether the line belongs in a two-column table.
func (l DocLine) IsKeyValue() bool {
	return l.Label != ""
}

// DocSection is a headed block of lines. Divider sections have no heading or lines.
type DocSection struct {
	Kind    SectionKind
	Heading string
	Lines   []DocLine
}

// EstimateDocument is the renderer-independent estimate. Renderers walk
// Sections in order and must not reorder or drop them.
type EstimateDocument struct {
	Issuer   Issuer
	Title    string
	Number   string
	Date     string
	Filename string
	Sections []DocSection
}

// Section returns the first section of the given kind.
func (d EstimateDocument) Section(kind SectionKind) (DocSection, bool) {
	for _, s := range d.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return DocSection{}, false
}

// DocumentBuilder assembles an EstimateDocument section by section.
type DocumentBuilder struct {
	doc     EstimateDocument
	current *DocSection
}

// NewDocumentBuilder starts a document for the given issuer.
func NewDocumentBuilder(issuer Issuer) *DocumentBuilder {
	return &DocumentBuilder{doc: EstimateDocument{Issuer: issuer, Title: EstimateTitle}}
}

// Meta sets the estimate number, date and export filename.
func (b *DocumentBuilder) Meta(number, date, filename string) *DocumentBuilder {
	b.doc.Number = number
	b.doc.Date = date
	b.doc.Filename = filename
	return b
}

// Divider appends a horizontal rule.
func (b *DocumentBuilder) Divider() *DocumentBuilder {
	b.flush()
	b.doc.Sections = append(b.doc.Sections, DocSection{Kind: SectionDivider})
	return b
}

// Section opens a new headed section; following lines are added to it.
func (b *DocumentBuilder) Section(kind SectionKind, heading string) *DocumentBuilder {
	b.flush()
	b.current = &DocSection{Kind: kind, Heading: heading}
	return b
}

// Line appends a plain line to the open section.
func (b *DocumentBuilder) Line(text string, style LineStyle) *DocumentBuilder {
	return b.add(DocLine{Text: text, Style: style})
}

// LeadLine appends a line whose lead is printed in bold.
func (b *DocumentBuilder) LeadLine(lead, text string, style LineStyle) *DocumentBuilder {
	return b.add(DocLine{Lead: lead, Text: text, Style: style})
}

// Row appends a key/value row to the open section.
func (b *DocumentBuilder) Row(label, value string) *DocumentBuilder {
	return b.add(DocLine{Label: label, Text: value, Style: LineSmall})
}

// Build closes the open section and returns the document.
func (b *DocumentBuilder) Build() EstimateDocument {
	b.flush()
	return b.doc
}

func (b *DocumentBuilder) add(line DocLine) *DocumentBuilder {
	if b.current != nil {
		b.current.Lines = append(b.current.Lines, line)
	}
	return b
}

func (b *DocumentBuilder) flush() {
	if b.current != nil {
		b.doc.Sections = append(b.doc.Sections, *b.current)
		b.current = nil
	}
}

// BuildEstimateDocument lays out the estimate for a computed quote. The
// estimate number and date are derived from generatedAt on every call.
func BuildEstimateDocument(result QuoteResult, generatedAt time.Time, issuer Issuer) EstimateDocument {
	if issuer.Name == "" {
		issuer.Name = DefaultIssuer.Name
	}
	if issuer.Prefix == "" {
		issuer.Prefix = DefaultEstimatePrefix
	}

	name := strings.TrimSpace(result.Name)
	b := NewDocumentBuilder(issuer).Meta(
		EstimateNumber(issuer.Prefix, generatedAt),
		EstimateDate(generatedAt),
		EstimateFilename(issuer.Prefix, name),
	)

	b.Divider()

	clientName := name
	if clientName == "" {
		clientName = DefaultClientName
	}
	b.Section(SectionBillTo, "Bill to").Line(clientName, LineBody)
	if email := strings.TrimSpace(result.Email); email != "" {
		b.Line(email, LineSmall)
	}

	b.Divider()

	typeLabel := result.TypeLabel
	if typeLabel == "" {
		typeLabel = ServiceRules[ServiceUnset].Label
	}
	finishLabel := result.FinishLabel
	if finishLabel == "" {
		finishLabel = FinishRules[FinishStandard].Label
	}
	extras := NoExtrasSelected
	if len(result.ExtrasLabels) > 0 {
		extras = strings.Join(result.ExtrasLabels, ", ")
	}
	b.Section(SectionDetails, "Project details").
		Row("Project type", typeLabel).
		Row("Approx. finished area", FormatArea(result.AreaValue)+" sq. ft.").
		Row("Finish level", finishLabel).
		Row("Included extras", extras)

	b.Section(SectionEstimate, "Estimated investment").
		LeadLine("Estimated range: ", EstimateRange(result.Low, result.High), LineBody).
		Line(EstimateDisclaimer, LineMuted)

	if notes := strings.TrimSpace(result.Notes); notes != "" {
		b.Section(SectionNotes, "Client notes").Line(notes, LineSmall)
	}

	b.Section(SectionNextSteps, "Next steps")
	for _, step := range NextSteps {
		b.Line(step, LineMuted)
	}

	return b.Build()
}

// EstimateRange formats the printed range, substituting ZeroRange when the
// bounds are not finite or the upper bound is not positive.
func EstimateRange(low, high float64) string {
	if !isFinite(low) || !isFinite(high) || high <= 0 {
		return ZeroRange
	}
	return FormatCurrencyRange(low, high)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
