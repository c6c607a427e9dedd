package output

import (
	"io"
	"strings"

	"github.com/pranshuparmar/bundlecheck/pkg/model"
)

const cardWidth = 48

// RenderStandard prints every result line as its own block, in order,
// followed by the consistency warnings. It returns the first write error.
func RenderStandard(w io.Writer, r model.Result, colorEnabled bool) error {
	p := NewPrinter(w)
	c := newPalette(colorEnabled)

	if r.Bundle != "" {
		p.Printf("%s %s\n\n", c.dim("Bundle:"), r.Bundle)
	}

	rule := c.dim(strings.Repeat("─", cardWidth))
	for _, line := range r.Lines {
		p.Println(rule)
		p.Printf("%s %s:\n", c.layer(line.Layer, "["+line.Layer.Title()+"]"), line.Label)
		for _, v := range strings.Split(line.Value, "\n") {
			p.Printf("  %s\n", c.value(model.ResultLine{Value: v, Status: line.Status}))
		}
	}
	if len(r.Lines) > 0 {
		p.Println(rule)
	}

	if len(r.Warnings) == 0 {
		return p.Err()
	}
	p.Println()
	if err := p.Err(); err != nil {
		return err
	}
	return RenderWarnings(w, r.Warnings, colorEnabled)
}
