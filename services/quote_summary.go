package services

// QuoteSummary holds the on-screen summary strings for a quote.
type QuoteSummary struct {
	Total  string
	Type   string
	Area   string
	Finish string
	Extras []string
}

// SummarizeQuote formats a result for the quote page sidebar. With no extras
// selected the list holds the single NoExtrasSelected line.
func SummarizeQuote(r QuoteResult) QuoteSummary {
	extras := r.ExtrasLabels
	if len(extras) == 0 {
		extras = []string{NoExtrasSelected}
	}
	return QuoteSummary{
		Total:  FormatCurrencyRange(r.Low, r.High),
		Type:   r.TypeLabel,
		Area:   FormatArea(r.AreaValue) + " sq. ft.",
		Finish: r.FinishLabel,
		Extras: extras,
	}
}
