// Package console draws the landing page's terminal header: a banner typed out
// one character at a time, a live clock and the list of navigation panels.
package console

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/richinsley/shaderbackdrop/landing"
)

// TypeInterval is the delay between two typed banner characters.
const TypeInterval = 100 * time.Millisecond

// BlinkInterval is the on and off period of the block cursor.
const BlinkInterval = 500 * time.Millisecond

// Typed returns the part of full visible after elapsed, one rune per interval.
func Typed(full string, elapsed, interval time.Duration) string {
	if interval <= 0 {
		return full
	}
	if elapsed <= 0 {
		return ""
	}
	n := int(elapsed / interval)
	if n >= utf8.RuneCountInString(full) {
		return full
	}
	i := 0
	for pos := range full {
		if i == n {
			return full[:pos]
		}
		i++
	}
	return full
}

func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}

func FormatDate(t time.Time) string {
	return t.Format("01/02/2006")
}

// FormatUTCOffset renders the zone offset of t as UTC+8, UTC-5 or UTC+5:30.
func FormatUTCOffset(t time.Time) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours, minutes := offset/3600, (offset%3600)/60
	if minutes == 0 {
		return fmt.Sprintf("UTC%s%d", sign, hours)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, hours, minutes)
}

// Line is one header row. Dim rows are drawn faint.
type Line struct {
	Text string
	Dim  bool
}

// Header is the content of the terminal header.
type Header struct {
	Title  string
	Banner string
	Panels []landing.Panel
	// GLEnabled reports whether the animated background is running.
	GLEnabled bool
}

// Lines lays out the header as it looks elapsed after it started, at wall time now.
func (h *Header) Lines(now time.Time, elapsed time.Duration) []Line {
	typed := Typed(h.Banner, elapsed, TypeInterval)
	cursor := " "
	if (elapsed/BlinkInterval)%2 == 0 {
		cursor = "█"
	}

	gl := "FALLBACK"
	if h.GLEnabled {
		gl = "ENABLED"
	}

	lines := []Line{
		{Text: "▣ MATRIX_CONSOLE.exe"},
		{Text: ""},
		{Text: "$ " + typed + cursor},
		{Text: ""},
		{Text: "SYSTEM STATUS:", Dim: true},
		{Text: "    ● ONLINE"},
		{Text: "    ● SECURE CONNECTION"},
		{Text: "    ● MATRIX PROTOCOL ACTIVE"},
		{Text: "TIMESTAMP:", Dim: true},
		{Text: "    " + FormatDate(now)},
		{Text: "    " + FormatClock(now)},
		{Text: "    " + FormatUTCOffset(now)},
		{Text: ""},
		{Text: "[INFO] Welcome to the Matrix Console"},
		{Text: "[INFO] Press a number key in the window to open a navigation panel"},
		{Text: "[INFO] All connections are secured and encrypted"},
		{Text: ""},
		{Text: "[NAVIGATION MATRIX] " + h.Title},
	}
	for i, p := range h.Panels {
		lines = append(lines,
			Line{Text: fmt.Sprintf("  [%d] %s", i+1, p.Title)},
			Line{Text: "      " + p.Description, Dim: true},
		)
	}
	lines = append(lines,
		Line{Text: ""},
		Line{Text: fmt.Sprintf("[SYSTEM] Matrix Console © %d", now.Year()), Dim: true},
		Line{Text: "[STATUS] All systems operational | GL: " + gl, Dim: true},
	)
	return lines
}
