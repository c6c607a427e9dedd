//go:build !darwin

package bundle

// no system registry to ask outside macOS, only WithRuntimeID can provide one
func lookupRuntimeID(string) (string, bool) {
	return "", false
}
