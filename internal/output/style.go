package output

import (
	"github.com/fatih/color"

	"github.com/pranshuparmar/bundlecheck/pkg/model"
)

// palette holds the colors of one render call. Colors are forced on or off
// explicitly so the result does not depend on whether w is a terminal.
type palette struct {
	enabled bool
}

func newPalette(enabled bool) palette {
	return palette{enabled: enabled}
}

// paint sanitizes s and wraps it in the given attributes
func (p palette) paint(s string, attrs ...color.Attribute) ansiString {
	s = SanitizeTerminal(s)
	if !p.enabled {
		return ansiString(s)
	}
	c := color.New(attrs...)
	c.EnableColor()
	return ansiString(c.Sprint(s))
}

func (p palette) layer(l model.Layer, s string) ansiString {
	switch l {
	case model.LayerAPI:
		return p.paint(s, color.FgCyan, color.Bold)
	case model.LayerFile:
		return p.paint(s, color.FgBlue, color.Bold)
	case model.LayerCertificate:
		return p.paint(s, color.FgMagenta, color.Bold)
	default:
		return p.paint(s, color.Bold)
	}
}

func (p palette) value(line model.ResultLine) ansiString {
	switch line.Status {
	case model.StatusOK:
		return p.paint(line.Value, color.FgGreen)
	case model.StatusNotAvailable, model.StatusNotFound, model.StatusNotPresent:
		return p.paint(line.Value, color.FgYellow)
	default:
		return p.paint(line.Value, color.FgRed)
	}
}

func (p palette) ok(s string) ansiString {
	return p.paint(s, color.FgGreen)
}

func (p palette) warning(s string) ansiString {
	return p.paint(s, color.FgRed)
}

func (p palette) dim(s string) ansiString {
	return p.paint(s, color.Faint)
}
