package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"ilcquote/services"
)

func renderString(t *testing.T, r func(*bytes.Buffer) error) string {
	t.Helper()
	var buf bytes.Buffer
	if err := r(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func assertContains(t *testing.T, body string, fragments ...string) {
	t.Helper()
	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected output to contain %q", frag)
		}
	}
}

func TestLayout_ThemeAndNav(t *testing.T) {
	page := PageData{
		Title: "Services",
		Page:  services.PageServices,
		Theme: services.ThemeDark,
		Nav:   services.NavLinks(services.PageServices),
	}

	body := renderString(t, func(buf *bytes.Buffer) error {
		return Layout(page).Render(context.Background(), buf)
	})

	assertContains(t, body,
		`<body class="theme-dark" data-page="services">`,
		`<title>Services | Inspired Living Constructions</title>`,
		`<a class="nav-link active" href="/services">Services</a>`,
		`<a class="nav-link" href="/quote">Get a quote</a>`,
		`<span id="theme-icon">🌙</span>`,
		`<span id="theme-label">Dark</span>`,
		`id="modal-backdrop"`,
	)
}

func TestCardsPage_WrapsGridInLayout(t *testing.T) {
	page := PageData{Title: "Projects", Page: services.PageProjects, Theme: services.ThemeLight}
	cards := []services.ShowcaseCard{{ID: "p1", Kind: services.CardProject, Title: "Bowness basement", Tag: "Basement"}}

	body := renderString(t, func(buf *bytes.Buffer) error {
		return CardsPage(page, "Recent projects", cards).Render(context.Background(), buf)
	})

	assertContains(t, body,
		`<main><section class="cards section-animated"><h2>Recent projects</h2>`,
		`<article class="project-card section-animated" data-card-id="p1" hx-get="/cards/p1/modal"`,
		`<h3>Bowness basement</h3><p class="card-tag">Basement</p></article>`,
		`</section></main>`,
	)
	if strings.Contains(body, "Nothing to show yet.") {
		t.Error("empty-state text rendered for a non-empty grid")
	}
}

func TestQuoteSummary_EscapesText(t *testing.T) {
	summary := services.QuoteSummary{
		Total:  "$0–$0",
		Type:   "<b>Kitchen</b>",
		Area:   "0 sq. ft.",
		Finish: "Standard",
		Extras: []string{services.NoExtrasSelected},
	}

	body := renderString(t, func(buf *bytes.Buffer) error {
		return QuoteSummary(summary).Render(context.Background(), buf)
	})

	assertContains(t, body,
		`id="summary-type">&lt;b&gt;Kitchen&lt;/b&gt;<`,
		`<ul id="summary-extras"><li>No additional add-ons selected.</li></ul>`,
	)
	if strings.Contains(body, "<b>") {
		t.Error("summary text was not escaped")
	}
}

func TestQuoteContent_ExportButtons(t *testing.T) {
	in := services.QuoteInput{Name: `Sam "The Builder"`, Finish: services.FinishMid}
	summary := services.SummarizeQuote(services.ComputeQuote(in))

	body := renderString(t, func(buf *bytes.Buffer) error {
		return QuoteContent(in, summary).Render(context.Background(), buf)
	})

	assertContains(t, body,
		`value="Sam &#34;The Builder&#34;"`,
		`<option value="mid" selected>Mid-range</option>`,
		`<option value="" selected>Select a project type</option>`,
		`formaction="/quote/export/xlsx"`,
		`formaction="/quote/print"`,
		`action="/quote/export/pdf"`,
	)
}

func TestCardModal_Placeholder(t *testing.T) {
	modal := services.BuildCardModal(services.ShowcaseCard{Kind: services.CardService})

	body := renderString(t, func(buf *bytes.Buffer) error {
		return CardModal(modal).Render(context.Background(), buf)
	})

	assertContains(t, body,
		`<div class="image-placeholder"><strong>Image coming soon</strong>`,
		`<p class="modal-tag">Service details</p>`,
		`<h2 id="modal-title">Details</h2>`,
	)
	if strings.Contains(body, `<ul class="pills">`) {
		t.Error("empty pill list should not render")
	}
}

func TestEstimatePrint_MatchesDocument(t *testing.T) {
	result := services.ComputeQuote(services.QuoteInput{
		Name: "Lee", Area: 100, Service: services.ServiceBathroom,
		Finish: services.FinishPremium, Extras: []services.Extra{services.ExtraBathroom},
		Notes: "Tub <and> shower",
	})
	doc := services.BuildEstimateDocument(result, time.Date(2024, 3, 15, 14, 23, 0, 0, time.UTC), services.DefaultIssuer)

	out, err := PrintRenderer(context.Background())(doc)
	if err != nil {
		t.Fatalf("PrintRenderer: %v", err)
	}
	body := string(out)

	assertContains(t, body,
		`onload="window.print()"`,
		`<title>Estimate ILC-20240315-1423</title>`,
		`<tr><td class="label">Project type</td><td>Bathroom renovation</td></tr>`,
		`<strong>Estimated range: </strong>$46,710–$53,090`,
		`<section data-section="notes"><h3>Client notes</h3><p class="small">Tub &lt;and&gt; shower</p>`,
		`<p class="muted">1. Review this estimate`,
	)

	if strings.Index(body, "Bill to") > strings.Index(body, "Next steps") {
		t.Error("sections rendered out of order")
	}
}
