package manifest

import (
	"errors"
	"fmt"

	"howett.net/plist"
)

const IdentifierKey = "CFBundleIdentifier"

var ErrKeyNotFound = errors.New("key not found")

// ReadString parses an XML, binary or OpenStep property list and returns the
// string stored under key in its root dictionary. An empty string is a value.
func ReadString(data []byte, key string) (string, error) {
	var root map[string]any
	if _, err := plist.Unmarshal(data, &root); err != nil {
		return "", fmt.Errorf("failed to parse plist: %w", err)
	}

	val, ok := root[key].(string)
	if !ok {
		return "", fmt.Errorf("%s: %w", key, ErrKeyNotFound)
	}
	return val, nil
}
