package services

import (
	"regexp"
	"strings"
)

// DefaultClientName stands in for a missing client name on estimates and in
// export filenames.
const DefaultClientName = "Client"

var unsafeFilenameRun = regexp.MustCompile(`[^A-Za-z0-9]+`)

// SafeFilenameSegment keeps ASCII letters and digits, collapses every other run
// of characters into a single "-" and trims separators from both ends.
// "Gagan Dhillon!!" → "Gagan-Dhillon"
func SafeFilenameSegment(name string) string {
	safe := unsafeFilenameRun.ReplaceAllString(name, "-")
	safe = strings.Trim(safe, "-")
	if safe == "" {
		return DefaultClientName
	}
	return safe
}

// EstimateFilename returns the export filename for a client's estimate,
// e.g. "ILC-Estimate-Gagan-Dhillon.pdf".
func EstimateFilename(prefix, clientName string) string {
	return estimateBaseName(prefix, clientName) + ".pdf"
}

// EstimateWorkbookFilename is EstimateFilename for the spreadsheet export.
func EstimateWorkbookFilename(prefix, clientName string) string {
	return estimateBaseName(prefix, clientName) + ".xlsx"
}

func estimateBaseName(prefix, clientName string) string {
	if prefix == "" {
		prefix = DefaultEstimatePrefix
	}
	return prefix + "-Estimate-" + SafeFilenameSegment(clientName)
}
