package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"ilcquote/config"
	"ilcquote/services"
	"ilcquote/templates"
)

// now is the clock used to stamp estimate numbers.
var now = time.Now

// pdfRenderer builds the PDF renderer used by the download handler.
var pdfRenderer = func(cfg *config.Config) services.DocumentRenderer {
	return services.PDFRenderer(cfg.PDFSettings())
}

// quoteFromRequest parses the quote form from the query string and, for
// POSTs, the body.
func quoteFromRequest(e *core.RequestEvent) (services.QuoteInput, error) {
	if err := e.Request.ParseForm(); err != nil {
		return services.QuoteInput{}, fmt.Errorf("parse quote form: %w", err)
	}
	return services.QuoteInputFromForm(e.Request.Form), nil
}

// HandleQuotePage renders the quote calculator. Query values prefill the form
// and the summary is computed for whatever they describe.
func HandleQuotePage(logger *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		in, err := quoteFromRequest(e)
		if err != nil {
			logger.Info("quote page: bad query", zap.Error(err))
			in = services.QuoteInputFromForm(nil)
		}

		summary := services.SummarizeQuote(services.ComputeQuote(in))
		component := templates.QuotePage(pageData(e.Request, "Get a quote", services.PageQuote), in, summary)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteEstimate recomputes the estimate from the posted form and returns
// the summary fragment.
func HandleQuoteEstimate(logger *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		in, err := quoteFromRequest(e)
		if err != nil {
			logger.Info("quote estimate: bad form", zap.Error(err))
			return ErrorToast(e, http.StatusBadRequest, "Could not read the quote form.")
		}

		summary := services.SummarizeQuote(services.ComputeQuote(in))
		return templates.QuoteSummary(summary).Render(e.Request.Context(), e.Response)
	}
}

// buildEstimate computes the quote for the request and lays out its document.
func buildEstimate(e *core.RequestEvent, cfg *config.Config) (services.QuoteResult, services.EstimateDocument, error) {
	in, err := quoteFromRequest(e)
	if err != nil {
		return services.QuoteResult{}, services.EstimateDocument{}, err
	}
	result := services.ComputeQuote(in)
	doc := services.BuildEstimateDocument(result, now().In(cfg.Location()), cfg.Issuer())
	return result, doc, nil
}

// HandleQuoteExportPDF downloads the estimate as a PDF. If the PDF cannot be
// produced the printable estimate is returned instead, with a toast telling
// the visitor to print it.
func HandleQuoteExportPDF(cfg *config.Config, logger *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		_, doc, err := buildEstimate(e, cfg)
		if err != nil {
			logger.Info("export pdf: bad form", zap.Error(err))
			return ErrorToast(e, http.StatusBadRequest, "Could not read the quote form.")
		}

		out := services.ExportEstimate(doc,
			pdfRenderer(cfg),
			templates.PrintRenderer(e.Request.Context()))

		if out.Kind == services.ExportPrint {
			logger.Warn("export pdf: falling back to print view",
				zap.String("estimate", doc.Number),
				zap.Error(out.Err))
			if err := SetToast(e, ToastInfo, "PDF download is unavailable. Use your browser's print dialog to save the estimate."); err != nil {
				logger.Warn("export pdf: toast failed", zap.Error(err))
			}
			e.Response.Header().Set("Content-Type", out.ContentType)
			e.Response.WriteHeader(http.StatusOK)
			_, err := e.Response.Write(out.Body)
			return err
		}

		logger.Info("export pdf: estimate generated",
			zap.String("estimate", doc.Number),
			zap.Int("bytes", len(out.Body)))
		return writeAttachment(e, out.ContentType, out.Filename, out.Body)
	}
}

// HandleQuoteExportExcel downloads the estimate as a workbook.
func HandleQuoteExportExcel(cfg *config.Config, logger *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		result, doc, err := buildEstimate(e, cfg)
		if err != nil {
			logger.Info("export excel: bad form", zap.Error(err))
			return ErrorToast(e, http.StatusBadRequest, "Could not read the quote form.")
		}

		xlsxBytes, err := services.GenerateEstimateExcel(doc)
		if err != nil {
			logger.Error("export excel: failed to generate", zap.String("estimate", doc.Number), zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate the spreadsheet.")
		}

		filename := services.EstimateWorkbookFilename(cfg.Estimate.Prefix, result.Name)
		return writeAttachment(e, services.ContentTypeExcel, filename, xlsxBytes)
	}
}

// HandleQuotePrint renders the printable estimate for the quote described by
// the query string.
func HandleQuotePrint(cfg *config.Config, logger *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		_, doc, err := buildEstimate(e, cfg)
		if err != nil {
			logger.Info("print: bad query", zap.Error(err))
			return e.String(http.StatusBadRequest, "Could not read the quote form.")
		}
		e.Response.Header().Set("Content-Type", services.ContentTypeHTML)
		return templates.EstimatePrint(doc).Render(e.Request.Context(), e.Response)
	}
}

func writeAttachment(e *core.RequestEvent, contentType, filename string, body []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, sanitizeFilename(filename)))
	e.Response.WriteHeader(http.StatusOK)
	_, err := e.Response.Write(body)
	return err
}
