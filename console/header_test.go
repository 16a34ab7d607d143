package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/shaderbackdrop/landing"
)

func TestTyped(t *testing.T) {
	const full = "MATRIX"
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, ""},
		{-time.Second, ""},
		{99 * time.Millisecond, ""},
		{100 * time.Millisecond, "M"},
		{250 * time.Millisecond, "MA"},
		{600 * time.Millisecond, "MATRIX"},
		{time.Hour, "MATRIX"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Typed(full, tt.elapsed, TypeInterval), tt.elapsed)
	}
	assert.Equal(t, full, Typed(full, 0, 0))
}

func TestTypedCountsRunes(t *testing.T) {
	assert.Equal(t, "矩", Typed("矩阵", 100*time.Millisecond, TypeInterval))
	assert.Equal(t, "矩阵", Typed("矩阵", 200*time.Millisecond, TypeInterval))
}

func TestTypedGrowsMonotonically(t *testing.T) {
	banner := landing.Default().Banner
	prev := ""
	for e := time.Duration(0); e < 5*time.Second; e += 37 * time.Millisecond {
		got := Typed(banner, e, TypeInterval)
		assert.True(t, strings.HasPrefix(got, prev), "%q then %q", prev, got)
		prev = got
	}
	assert.Equal(t, banner, prev)
}

func TestFormatClockAndDate(t *testing.T) {
	ts := time.Date(2026, time.March, 7, 9, 5, 3, 0, time.UTC)
	assert.Equal(t, "09:05:03", FormatClock(ts))
	assert.Equal(t, "03/07/2026", FormatDate(ts))
}

func TestFormatUTCOffset(t *testing.T) {
	at := func(secs int) time.Time {
		return time.Date(2026, 1, 1, 0, 0, 0, 0, time.FixedZone("", secs))
	}
	assert.Equal(t, "UTC+0", FormatUTCOffset(at(0)))
	assert.Equal(t, "UTC+8", FormatUTCOffset(at(8*3600)))
	assert.Equal(t, "UTC-5", FormatUTCOffset(at(-5*3600)))
	assert.Equal(t, "UTC+5:30", FormatUTCOffset(at(5*3600+30*60)))
	assert.Equal(t, "UTC-3:30", FormatUTCOffset(at(-(3*3600 + 30*60))))
}

func texts(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.Text)
		b.WriteString("\n")
	}
	return b.String()
}

func TestHeaderLines(t *testing.T) {
	cfg := landing.Default()
	h := &Header{Title: cfg.Title, Banner: cfg.Banner, Panels: cfg.Panels, GLEnabled: true}
	now := time.Date(2026, time.October, 19, 21, 4, 5, 0, time.FixedZone("", 8*3600))

	out := texts(h.Lines(now, time.Hour))
	assert.Contains(t, out, "$ "+cfg.Banner)
	assert.Contains(t, out, "10/19/2026")
	assert.Contains(t, out, "21:04:05")
	assert.Contains(t, out, "UTC+8")
	assert.Contains(t, out, "[1] WeChat")
	assert.Contains(t, out, "[5] Twitter")
	assert.Contains(t, out, "GL: ENABLED")

	h.GLEnabled = false
	out = texts(h.Lines(now, 250*time.Millisecond))
	assert.Contains(t, out, "$ JA█")
	assert.Contains(t, out, "GL: FALLBACK")
	assert.Contains(t, texts(h.Lines(now, 750*time.Millisecond)), "$ JACKYWI \n", "cursor blinks off")
}

func TestTerminalDrawOverwrites(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, termenv.WithProfile(termenv.Ascii))

	term.Draw([]Line{{Text: "one"}, {Text: "two", Dim: true}})
	first := buf.String()
	assert.Contains(t, first, "one\n")
	assert.Contains(t, first, "two\n")
	assert.NotContains(t, first, termenv.CSI+"2F", "nothing to move over on the first draw")

	buf.Reset()
	term.Draw([]Line{{Text: "three"}})
	second := buf.String()
	assert.True(t, strings.HasPrefix(second, termenv.CSI+"2F"), "%q", second)
	assert.Contains(t, second, "three\n")
	assert.True(t, strings.HasSuffix(second, termenv.CSI+"1F"), "%q", second)
	assert.Equal(t, 1, term.drawn)
}

func TestRunStopsOnCancel(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, termenv.WithProfile(termenv.Ascii))
	h := &Header{Banner: "HI"}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Run(ctx, h, term)
		close(done)
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	require.NotZero(t, buf.Len())
	assert.Contains(t, buf.String(), "MATRIX_CONSOLE.exe")
}
