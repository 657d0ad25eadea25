package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ProgressAdapter implements secondary.ProgressLogger by printing
// human-readable lines to an injected writer. It depends on nothing but the
// writer, enabling easy testing with buffers.
type ProgressAdapter struct {
	out io.Writer
}

// NewProgressAdapter creates a new ProgressAdapter writing to out.
func NewProgressAdapter(out io.Writer) *ProgressAdapter {
	return &ProgressAdapter{out: out}
}

// AnchorRead reports that the anchor document was read successfully.
func (a *ProgressAdapter) AnchorRead(name string) {
	fmt.Fprintf(a.out, "%s Successfully read %s\n", color.New(color.FgGreen).Sprint("✓"), name)
}

// FileAdded reports that a numbered file was appended to the document.
func (a *ProgressAdapter) FileAdded(name string) {
	fmt.Fprintf(a.out, "%s Added %s\n", color.New(color.FgGreen).Sprint("✓"), name)
}

// FileSkipped reports that a numbered file could not be read and was left
// out of the document.
func (a *ProgressAdapter) FileSkipped(name string, err error) {
	fmt.Fprintf(a.out, "%s reading %s: %v\n", color.New(color.FgRed).Sprint("Error"), name, err)
}
