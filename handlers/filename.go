package handlers

import "strings"

var filenameReplacer = strings.NewReplacer(
	" ", "-",
	"/", "-",
	"\\", "-",
	":", "-",
	`"`, "",
	"\r", "",
	"\n", "",
)

// sanitizeFilename removes characters that are unsafe for filenames or would
// break the quoted Content-Disposition value.
func sanitizeFilename(s string) string {
	return filenameReplacer.Replace(s)
}
