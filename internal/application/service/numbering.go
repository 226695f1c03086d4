package service

import (
	"fmt"
	"strings"
	"time"
)

// DefaultReferenceFormat is used when the user has no format configured
const DefaultReferenceFormat = "DOC-{SEQUENCE}"

// FormatReference renders a document reference from a format string holding
// {YEAR}, {MONTH}, {DAY} and {SEQUENCE} placeholders. The sequence is
// zero-padded to 4 digits. The function is pure: incrementing and persisting
// the sequence counter is the caller's responsibility. Applying it to a
// string without placeholders returns the string unchanged, so formatting is
// idempotent.
func FormatReference(format string, sequence int, date time.Time) string {
	if format == "" {
		format = DefaultReferenceFormat
	}

	r := strings.NewReplacer(
		"{YEAR}", fmt.Sprintf("%04d", date.Year()),
		"{MONTH}", fmt.Sprintf("%02d", int(date.Month())),
		"{DAY}", fmt.Sprintf("%02d", date.Day()),
		"{SEQUENCE}", fmt.Sprintf("%04d", sequence),
	)
	return r.Replace(format)
}
