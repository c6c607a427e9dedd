package provision

import "strings"

// SplitApplicationIdentifier splits "TEAMID.com.example.app" into the team
// prefix and the bundle identifier. An identifier without a dot has no prefix.
func SplitApplicationIdentifier(appID string) (prefix, bundleID string) {
	prefix, bundleID, found := strings.Cut(appID, ".")
	if !found {
		return "", appID
	}
	return prefix, bundleID
}

// MatchesBundleID reports whether the bundle part of appID covers bundleID.
// A trailing "*" is a wildcard profile and matches by prefix.
func MatchesBundleID(appID, bundleID string) bool {
	_, pattern := SplitApplicationIdentifier(appID)
	if pattern == "*" {
		return true
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(bundleID, strings.TrimSuffix(pattern, "*"))
	}
	return pattern == bundleID
}
