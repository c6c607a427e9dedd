package output

import (
	"fmt"
	"io"
)

// ansiString is output we produced ourselves (color sequences around
// already sanitized text) and is printed as-is
type ansiString string

// Printer writes terminal-safe output to an io.Writer, sanitizing any
// string-like argument (string, []byte, error, fmt.Stringer). The first write
// error is kept and later writes are dropped.
type Printer struct {
	w   io.Writer
	err *error
}

func NewPrinter(w io.Writer) Printer {
	return Printer{w: w, err: new(error)}
}

func (p Printer) Printf(format string, args ...any) {
	p.write(func() (int, error) {
		return fmt.Fprintf(p.w, format, sanitizePrintArgs(args)...)
	})
}

func (p Printer) Println(args ...any) {
	p.write(func() (int, error) {
		return fmt.Fprintln(p.w, sanitizePrintArgs(args)...)
	})
}

// Err returns the first error hit while writing
func (p Printer) Err() error {
	return *p.err
}

func (p Printer) write(fn func() (int, error)) {
	if *p.err != nil {
		return
	}
	if _, err := fn(); err != nil {
		*p.err = err
	}
}

func sanitizePrintArgs(args []any) []any {
	if len(args) == 0 {
		return nil
	}
	out := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case ansiString:
			out[i] = string(v)
		case string:
			out[i] = SanitizeTerminal(v)
		case []byte:
			out[i] = SanitizeTerminal(string(v))
		case error:
			out[i] = SanitizeTerminal(v.Error())
		case fmt.Stringer:
			out[i] = SanitizeTerminal(v.String())
		default:
			out[i] = a
		}
	}
	return out
}
