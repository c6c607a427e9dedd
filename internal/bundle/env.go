package bundle

// Environment is the read-only view of an application bundle the inspector
// works against
type Environment interface {
	// BundleIdentifier is the identifier the host runtime reports
	BundleIdentifier() (string, bool)
	// PathForResource locates name.ext inside the bundle
	PathForResource(name, ext string) (string, bool)
	// ReadFile reads a path returned by PathForResource
	ReadFile(path string) ([]byte, error)
}
