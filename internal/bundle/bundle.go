package bundle

import (
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
)

// resource directories in lookup order, iOS bundles are flat while macOS
// bundles keep their files under Contents/
var resourceDirs = []string{
	".",
	"Contents",
	"Contents/Resources",
}

// Bundle is an Environment backed by a bundle directory
type Bundle struct {
	fsys      fs.FS
	root      string
	runtimeID func() (string, bool)
}

type Option func(*Bundle)

// WithRuntimeID pins the identifier reported by BundleIdentifier
func WithRuntimeID(id string) Option {
	return func(b *Bundle) {
		b.runtimeID = func() (string, bool) {
			return id, id != ""
		}
	}
}

// withRuntimeLookup replaces the platform lookup for BundleIdentifier
func withRuntimeLookup(fn func(root string) (string, bool)) Option {
	return func(b *Bundle) {
		b.runtimeID = func() (string, bool) {
			return fn(b.root)
		}
	}
}

// Open returns the bundle rooted at dir
func Open(dir string, opts ...Option) *Bundle {
	return New(os.DirFS(dir), dir, opts...)
}

// New returns a bundle backed by fsys. root is only used for display and for
// the platform runtime lookup.
func New(fsys fs.FS, root string, opts ...Option) *Bundle {
	b := &Bundle{fsys: fsys, root: root}
	b.runtimeID = func() (string, bool) {
		return lookupRuntimeID(b.root)
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Bundle) Root() string {
	return b.root
}

func (b *Bundle) BundleIdentifier() (string, bool) {
	id, ok := b.runtimeID()
	id = strings.TrimSpace(id)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func (b *Bundle) PathForResource(name, ext string) (string, bool) {
	file := name
	if ext != "" {
		file = name + "." + ext
	}

	for _, dir := range resourceDirs {
		p := path.Join(dir, file)
		info, err := fs.Stat(b.fsys, p)
		if err != nil || info.IsDir() {
			continue
		}
		return p, true
	}
	return "", false
}

func (b *Bundle) ReadFile(p string) ([]byte, error) {
	f, err := b.fsys.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
