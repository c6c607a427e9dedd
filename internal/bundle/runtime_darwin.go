//go:build darwin

package bundle

import "os/exec"

// lookupRuntimeID asks the Spotlight metadata store for the identifier
// LaunchServices registered for the bundle
func lookupRuntimeID(root string) (string, bool) {
	if root == "" {
		return "", false
	}
	out, err := exec.Command("mdls", "-raw", "-name", "kMDItemCFBundleIdentifier", root).Output()
	if err != nil {
		return "", false
	}
	return parseMdlsOutput(string(out))
}
