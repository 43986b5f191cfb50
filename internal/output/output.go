package output

import (
	"fmt"
	"io"
	"time"
)

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) SessionStarted(dir string, total time.Duration) {
	fmt.Fprintf(f.w, "📏 Recording distance for %s: %s\n", formatDuration(total), dir)
}

func (f *Formatter) SessionComplete(dir string, segments, samples int) {
	fmt.Fprintf(f.w, "\n📁 Session saved: %s (%d segments, %d samples)\n", dir, segments, samples)
}

func (f *Formatter) SessionStats(timeouts, dropped int) {
	if timeouts > 0 {
		fmt.Fprintf(f.w, "⚠️  %d echo timeouts recorded as 0 cm\n", timeouts)
	}
	if dropped > 0 {
		fmt.Fprintf(f.w, "⚠️  %d samples dropped on write failures\n", dropped)
	}
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) SessionListHeader() {
	fmt.Fprintf(f.w, "📁 Sessions:\n\n")
}

func (f *Formatter) SessionListItem(name string, segments, samples int) {
	fmt.Fprintf(f.w, "  %s  (%d segments, %d samples)\n", name, segments, samples)
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
