package output

import "io"

// RenderWarnings prints only the consistency warnings
func RenderWarnings(w io.Writer, warnings []string, colorEnabled bool) error {
	p := NewPrinter(w)
	c := newPalette(colorEnabled)

	if len(warnings) == 0 {
		p.Printf("%s\n", c.ok("No warnings."))
		return p.Err()
	}

	p.Printf("%s\n", c.warning("Warnings:"))
	for _, warn := range warnings {
		p.Printf("  • %s\n", c.warning(warn))
	}
	return p.Err()
}
