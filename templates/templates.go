// Package templates holds the site's HTML components. The *.templ files are
// the source; run `templ generate` after editing them.
package templates

import (
	"bytes"
	"context"
	"slices"
	"strconv"

	"ilcquote/services"
)

// PageData is the chrome shared by every full page.
type PageData struct {
	Title string
	Page  string
	Theme services.Theme
	Nav   []services.NavLink
}

type option struct {
	value string
	label string
}

var serviceOptions = []option{
	{"", "Select a project type"},
	{string(services.ServiceBasement), services.ServiceRules[services.ServiceBasement].Label},
	{string(services.ServiceSuite), services.ServiceRules[services.ServiceSuite].Label},
	{string(services.ServiceKitchen), services.ServiceRules[services.ServiceKitchen].Label},
	{string(services.ServiceBathroom), services.ServiceRules[services.ServiceBathroom].Label},
	{string(services.ServiceReno), services.ServiceRules[services.ServiceReno].Label},
}

var finishOptions = []option{
	{string(services.FinishStandard), services.FinishRules[services.FinishStandard].Label},
	{string(services.FinishMid), services.FinishRules[services.FinishMid].Label},
	{string(services.FinishPremium), services.FinishRules[services.FinishPremium].Label},
}

var extraOptions = []services.Extra{
	services.ExtraBathroom,
	services.ExtraKitchenette,
	services.ExtraSeparateEntry,
	services.ExtraExterior,
}

func hasExtra(selected []services.Extra, ex services.Extra) bool {
	return slices.Contains(selected, ex)
}

// areaValue leaves the field empty until the visitor has typed a usable area.
func areaValue(area float64) string {
	if area <= 0 {
		return ""
	}
	return strconv.FormatFloat(area, 'f', -1, 64)
}

func cardClass(kind services.CardKind) string {
	if kind == services.CardProject {
		return "project-card"
	}
	return "service-card"
}

func cardModalURL(id string) string {
	return "/cards/" + id + "/modal"
}

// printBlock is either a run of label/value rows rendered as one table or a
// single paragraph line.
type printBlock struct {
	table bool
	lines []services.DocLine
}

func printBlocks(lines []services.DocLine) []printBlock {
	var blocks []printBlock
	for _, l := range lines {
		if l.IsKeyValue() {
			if n := len(blocks); n > 0 && blocks[n-1].table {
				blocks[n-1].lines = append(blocks[n-1].lines, l)
				continue
			}
			blocks = append(blocks, printBlock{table: true, lines: []services.DocLine{l}})
			continue
		}
		blocks = append(blocks, printBlock{lines: []services.DocLine{l}})
	}
	return blocks
}

func lineClass(style services.LineStyle) string {
	switch style {
	case services.LineSmall:
		return "small"
	case services.LineMuted:
		return "muted"
	default:
		return "body"
	}
}

// PrintRenderer renders the styled print view as a document renderer for
// services.ExportEstimate.
func PrintRenderer(ctx context.Context) services.DocumentRenderer {
	return func(doc services.EstimateDocument) ([]byte, error) {
		var buf bytes.Buffer
		if err := EstimatePrint(doc).Render(ctx, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}
