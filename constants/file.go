package constants

import "strings"

// AllowedExtensions holds the receipt image extensions accepted for upload.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
}

// extToMIME maps normalized extensions to the MIME type sent to the extractor.
var extToMIME = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MIMEForExt returns the MIME type for a receipt image extension, or "" when
// the extension is not accepted.
func MIMEForExt(ext string) string {
	return extToMIME[NormalizeExt(ext)]
}
