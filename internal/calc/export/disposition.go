package export

import "mime"

// Disposition builds a Content-Disposition value. Names with spaces,
// separators or accents are quoted or RFC 2231 encoded.
func Disposition(kind, filename string) string {
	return mime.FormatMediaType(kind, map[string]string{"filename": filename})
}
