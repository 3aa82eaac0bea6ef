package services

import (
	"html"
	"strings"
)

// PlainPrintPage is the last-resort print view: unstyled HTML that opens the
// browser's print dialog on load.
func PlainPrintPage(doc EstimateDocument) string {
	var b strings.Builder
	esc := html.EscapeString

	b.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>")
	b.WriteString(esc(doc.Title + " " + doc.Number))
	b.WriteString("</title></head><body onload=\"window.print()\">")
	b.WriteString("<h1>" + esc(doc.Issuer.Name) + "</h1>")
	b.WriteString("<p>" + esc(doc.Issuer.Contact) + "</p>")
	b.WriteString("<h2>" + esc(doc.Title) + "</h2>")
	b.WriteString("<p>Estimate #: " + esc(doc.Number) + "</p>")
	b.WriteString("<p>Date: " + esc(doc.Date) + "</p>")

	for _, s := range doc.Sections {
		if s.Kind == SectionDivider {
			b.WriteString("<hr>")
			continue
		}
		b.WriteString("<h3>" + esc(s.Heading) + "</h3>")
		for _, l := range s.Lines {
			switch {
			case l.IsKeyValue():
				b.WriteString("<p><strong>" + esc(l.Label) + "</strong> " + esc(l.Text) + "</p>")
			case l.Lead != "":
				b.WriteString("<p><strong>" + esc(l.Lead) + "</strong>" + esc(l.Text) + "</p>")
			default:
				b.WriteString("<p>" + esc(l.Text) + "</p>")
			}
		}
	}

	b.WriteString("</body></html>")
	return b.String()
}
