package license

import "strings"

// EncodePrefix replaces line breaks with ';' so the prefix survives transports
// that rewrite newlines. CR-LF pairs count as a single break.
func EncodePrefix(prefix string) string {
	prefix = strings.ReplaceAll(prefix, "\r\n", ";")
	return strings.NewReplacer("\n", ";", "\r", ";").Replace(prefix)
}

// DecodePrefix turns an encoded prefix back into display form.
func DecodePrefix(prefix string) string {
	return strings.ReplaceAll(prefix, ";", "\n")
}

// ValidPrefix reports whether prefix can be embedded into a key.
func ValidPrefix(prefix string) bool {
	return prefix != "" && !strings.Contains(prefix, ":")
}
