package output

import (
	"io"
	"strings"

	"github.com/pranshuparmar/bundlecheck/pkg/model"
)

// RenderShort prints one line per result: "layer label: value"
func RenderShort(w io.Writer, r model.Result, colorEnabled bool) error {
	p := NewPrinter(w)
	c := newPalette(colorEnabled)

	for _, line := range r.Lines {
		value := strings.ReplaceAll(line.Value, "\n", " ")
		p.Printf("%s %s: %s\n", c.layer(line.Layer, string(line.Layer)), line.Label, c.value(model.ResultLine{Value: value, Status: line.Status}))
	}
	return p.Err()
}
