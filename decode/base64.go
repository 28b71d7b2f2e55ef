package decode

import "encoding/base64"

// Base64Decode decodes s as standard base64, returning "" on any invalid
// input. Station, railway, and company names are base64-encoded upstream
// and never expected to fail, so callers treat an empty name as the
// decode-failure signal rather than handling an error.
func Base64Decode(s string) string {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return ""
	}
	return string(b)
}
