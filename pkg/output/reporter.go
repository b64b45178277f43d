// Package output writes datename's human-readable report to stdout.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/datename/pkg/errors"
	"github.com/arthur-debert/datename/pkg/output/styles"
	"github.com/arthur-debert/datename/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Reporter prints one line per event. The text is identical with and
// without colour; styling only adds ANSI sequences around the parts.
type Reporter struct {
	w      io.Writer
	styles styles.Set
	color  bool
}

// NewReporter creates a reporter writing to w. Colour is used only when w
// is a terminal and noColor is false; lipgloss additionally honours NO_COLOR.
func NewReporter(w io.Writer, noColor bool) *Reporter {
	if noColor || !IsTerminal(w) {
		return &Reporter{w: w}
	}
	return NewStyledReporter(w, lipgloss.NewRenderer(w))
}

// NewStyledReporter creates a reporter that styles through renderer r.
func NewStyledReporter(w io.Writer, r *lipgloss.Renderer) *Reporter {
	return &Reporter{
		w:      w,
		styles: styles.Embedded().Build(r),
		color:  true,
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Simulating announces a run that will not touch the filesystem.
func (r *Reporter) Simulating() error {
	return r.line(r.style(styles.Notice, MsgSimulating))
}

// CreatingDestination announces creation of the destination directory.
func (r *Reporter) CreatingDestination() error {
	return r.line(MsgCreatingDestination)
}

// Renaming prints "Renaming <old> --> <new>".
func (r *Reporter) Renaming(plan types.RenamePlan) error {
	return r.line(fmt.Sprintf("%s %s %s %s",
		r.style(styles.Verb, MsgRenameVerb),
		r.style(styles.SourcePath, plan.OriginalPath),
		r.style(styles.Arrow, MsgRenameArrow),
		r.style(styles.TargetPath, plan.NewPath),
	))
}

func (r *Reporter) style(name, text string) string {
	if !r.color {
		return text
	}
	return r.styles.Render(name, text)
}

func (r *Reporter) line(text string) error {
	if _, err := fmt.Fprintln(r.w, text); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to write report")
	}
	return nil
}
