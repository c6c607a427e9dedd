package banner

import (
	"io"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
)

const title = "Bundle ID"

// Print writes the ASCII-art title followed by a one-line subtitle and
// returns the first write error
func Print(w io.Writer, colorEnabled bool) error {
	fig := figure.NewFigure(title, "small", true)

	heading := color.New(color.FgCyan, color.Bold)
	sub := color.New(color.FgHiBlack)
	if colorEnabled {
		heading.EnableColor()
		sub.EnableColor()
	} else {
		heading.DisableColor()
		sub.DisableColor()
	}

	if _, err := heading.Fprint(w, fig.String()); err != nil {
		return err
	}
	if _, err := sub.Fprintln(w, "runtime · Info.plist · provisioning profile"); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
