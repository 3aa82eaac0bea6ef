package services

import (
	"fmt"
	"time"
)

// DefaultEstimatePrefix prefixes estimate numbers and export filenames.
const DefaultEstimatePrefix = "ILC"

// EstimateNumber builds the estimate identifier from the generation time.
// Format: {prefix}-{YYYYMMDD}-{HHMM}
// The clock fields are read from t as given, so the caller decides the zone.
// e.g. 2024-03-15 14:23 → "ILC-20240315-1423"
func EstimateNumber(prefix string, t time.Time) string {
	if prefix == "" {
		prefix = DefaultEstimatePrefix
	}
	return fmt.Sprintf("%s-%04d%02d%02d-%02d%02d",
		prefix, t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}

// EstimateDate formats the date printed on an estimate (YYYY-MM-DD).
func EstimateDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}
