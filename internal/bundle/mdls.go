package bundle

import "strings"

// parseMdlsOutput handles `mdls -raw` output, which prints "(null)" for an
// attribute the item does not carry
func parseMdlsOutput(out string) (string, bool) {
	val := strings.TrimSpace(out)
	if val == "" || val == "(null)" {
		return "", false
	}
	return strings.Trim(val, `"`), true
}
