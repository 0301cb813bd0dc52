// Package progress renders a live progress bar while a run drains units.
package progress

import (
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"
)

// Bar wraps pb.ProgressBar with the template used across the tool.
type Bar struct {
	*pb.ProgressBar
}

// New creates and starts a progress bar for total units, writing to w.
func New(total int64, w io.Writer) *Bar {
	bar := pb.New64(total)
	bar.SetRefreshRate(125 * time.Millisecond)
	bar.SetTemplateString(`{{counters . }} {{bar . "[" "█" "█" "░" "]"}} {{percent . }}`)
	bar.SetWriter(w)
	bar.Start()

	return &Bar{ProgressBar: bar}
}

// Done moves the bar to completion and stops refreshing it.
func (b *Bar) Done() {
	b.SetCurrent(b.Total())
	b.Finish()
}
