package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// NewItemID allocates an identifier for an invoice line item. The only
// contract is uniqueness within one invoice's lifetime; the string form
// is incidental.
func NewItemID() string {
	return uuid.New().String()
}

var unsafeFilenameChars = regexp.MustCompile(`[/\\:*?"<>|]`)

// SanitizeFilename strips path separators and other characters that are
// unsafe in file names. Spaces are kept; the export filename pattern
// embeds the customer name as typed.
func SanitizeFilename(s string) string {
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ExportFilename builds the export artifact name:
// Scrub_Invoice_<customer>_<date-without-dashes>.<ext>
func ExportFilename(customerName, date, ext string) string {
	return "Scrub_Invoice_" + SanitizeFilename(customerName) + "_" + strings.ReplaceAll(date, "-", "") + "." + ext
}
