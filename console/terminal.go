package console

import (
	"context"
	"io"
	"time"

	"github.com/muesli/termenv"
)

// Accent is the header's foreground color.
const Accent = "#44ffbb"

// Terminal redraws a block of lines in place.
type Terminal struct {
	out    *termenv.Output
	accent termenv.Color
	drawn  int
}

func NewTerminal(w io.Writer, opts ...termenv.OutputOption) *Terminal {
	out := termenv.NewOutput(w, opts...)
	return &Terminal{
		out:    out,
		accent: out.Color(Accent),
	}
}

// Draw replaces the previously drawn block with lines.
func (t *Terminal) Draw(lines []Line) {
	if t.drawn > 0 {
		t.out.CursorPrevLine(t.drawn)
	}
	for _, l := range lines {
		t.out.ClearLine()
		style := t.out.String(l.Text).Foreground(t.accent)
		if l.Dim {
			style = style.Faint()
		}
		io.WriteString(t.out, style.String()+"\n")
	}
	// a shorter block leaves stale rows below it
	for i := len(lines); i < t.drawn; i++ {
		t.out.ClearLine()
		io.WriteString(t.out, "\n")
	}
	if extra := t.drawn - len(lines); extra > 0 {
		t.out.CursorPrevLine(extra)
	}
	t.drawn = len(lines)
}

// Run redraws the header every TypeInterval until ctx is done.
func Run(ctx context.Context, h *Header, t *Terminal) {
	start := time.Now()
	t.out.HideCursor()
	defer t.out.ShowCursor()

	ticker := time.NewTicker(TypeInterval)
	defer ticker.Stop()
	for {
		now := time.Now()
		t.Draw(h.Lines(now, now.Sub(start)))
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
