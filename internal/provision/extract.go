package provision

import (
	"errors"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Markers and value delimiters as they appear in the plist embedded in a
// provisioning profile
const (
	AppIDMarker    = "<key>application-identifier</key>"
	TeamNameMarker = "<key>TeamName</key>"
	OpenDelimiter  = "<string>"
	CloseDelimiter = "</string>"
)

var (
	ErrMarkerNotFound    = errors.New("marker not found")
	ErrDelimiterNotFound = errors.New("value delimiters not found")
)

// Decode maps every byte to the code point of the same value (ISO-8859-1).
// Profiles are a CMS envelope around an XML plist, so the content mixes
// binary and ASCII and a UTF-8 decode would reject it.
func Decode(data []byte) string {
	// single-byte charmaps have no invalid input
	out, _ := charmap.ISO8859_1.NewDecoder().Bytes(data)
	return string(out)
}

// ExtractWith returns the text strictly between the first openDelim and the
// first closeDelim that follow the first occurrence of marker.
func ExtractWith(content, marker, openDelim, closeDelim string) (string, error) {
	idx := strings.Index(content, marker)
	if idx < 0 {
		return "", ErrMarkerNotFound
	}
	rest := content[idx+len(marker):]

	start := strings.Index(rest, openDelim)
	end := strings.Index(rest, closeDelim)
	if start < 0 || end < 0 {
		return "", ErrDelimiterNotFound
	}
	start += len(openDelim)
	// "</string><string>" style layouts leave nothing to slice
	if end < start {
		return "", ErrDelimiterNotFound
	}
	return rest[start:end], nil
}
