package llm

import "encoding/base64"

// EncodeDataURL wraps raw image bytes as a data URL suitable for an OpenAI
// image_url content part.
func EncodeDataURL(image []byte, mimeType string) string {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(image)
}
