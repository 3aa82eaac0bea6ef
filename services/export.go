package services

import (
	"fmt"
	"strings"
)

// ExportKind tells the caller which output ExportEstimate produced.
type ExportKind string

const (
	ExportPDF   ExportKind = "pdf"
	ExportPrint ExportKind = "print"
)

// Content types of the export outputs.
const (
	ContentTypePDF   = "application/pdf"
	ContentTypeHTML  = "text/html; charset=utf-8"
	ContentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// DocumentRenderer turns an estimate document into bytes.
type DocumentRenderer func(EstimateDocument) ([]byte, error)

// ExportResult is the outcome of an export attempt. Err records why the PDF
// path was abandoned when Kind is ExportPrint; it is informational only.
type ExportResult struct {
	Kind        ExportKind
	Filename    string
	ContentType string
	Body        []byte
	Err         error
}

// PDFRenderer binds GenerateEstimatePDF to fixed page settings.
func PDFRenderer(settings PDFSettings) DocumentRenderer {
	return func(doc EstimateDocument) ([]byte, error) {
		return GenerateEstimatePDF(doc, settings)
	}
}

// ExportEstimate renders doc as a PDF. When the PDF renderer is missing,
// fails or panics, it falls back to the print view, and if that fails too it
// falls back to a minimal plain print page. It never returns an error.
func ExportEstimate(doc EstimateDocument, pdf, print DocumentRenderer) ExportResult {
	body, err := safeRender(pdf, doc)
	if err == nil {
		return ExportResult{
			Kind:        ExportPDF,
			Filename:    doc.Filename,
			ContentType: ContentTypePDF,
			Body:        body,
		}
	}

	printBody, printErr := safeRender(print, doc)
	if printErr != nil {
		printBody = []byte(PlainPrintPage(doc))
	}
	return ExportResult{
		Kind:        ExportPrint,
		Filename:    strings.TrimSuffix(doc.Filename, ".pdf") + ".html",
		ContentType: ContentTypeHTML,
		Body:        printBody,
		Err:         err,
	}
}

// safeRender runs a renderer, converting a nil renderer, an empty result or a
// panic into an error.
func safeRender(render DocumentRenderer, doc EstimateDocument) (body []byte, err error) {
	if render == nil {
		return nil, fmt.Errorf("renderer unavailable")
	}
	defer func() {
		if r := recover(); r != nil {
			body = nil
			err = fmt.Errorf("renderer panicked: %v", r)
		}
	}()
	body, err = render(doc)
	if err == nil && len(body) == 0 {
		err = fmt.Errorf("renderer returned no output")
	}
	return body, err
}
