package chatlog

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// Decode converts raw export bytes to text. A leading UTF-8 BOM is dropped
// and invalid sequences become U+FFFD.
func Decode(b []byte) (string, error) {
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("chatlog: decode export: %w", err)
	}
	return string(out), nil
}
