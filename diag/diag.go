package diag

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
)

// Diag writes leveled diagnostic messages to a writer.
type Diag struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	color  bool
	prefix string
	refs   int
	counts [LevelError + 1]int
	colors map[Level]func(string, ...any) string
}

type Option func(*Diag)

// WithLevel sets the minimum level written; lower levels are dropped but
// still counted.
func WithLevel(l Level) Option {
	return func(d *Diag) { d.level = l }
}

// WithColor forces colored level prefixes on or off. By default color is on
// when the writer is a terminal.
func WithColor(v bool) Option {
	return func(d *Diag) { d.color = v }
}

// WithPrefix sets text written before every message, such as a program or
// file name.
func WithPrefix(p string) Option {
	return func(d *Diag) { d.prefix = p }
}

// New creates a Diag writing to w, holding one reference. A nil w writes to
// os.Stderr.
func New(w io.Writer, opts ...Option) *Diag {
	if w == nil {
		w = os.Stderr
	}
	d := &Diag{w: w, level: LevelInfo, refs: 1}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		d.color = true
	}
	for _, opt := range opts {
		opt(d)
	}
	d.colors = levelColors(d.color)
	return d
}

func levelColors(enabled bool) map[Level]func(string, ...any) string {
	cs := map[Level]*color.Color{
		LevelDebug: color.New(color.FgHiBlack),
		LevelInfo:  color.New(color.FgCyan),
		LevelWarn:  color.New(color.FgYellow, color.Bold),
		LevelError: color.New(color.FgRed, color.Bold),
	}
	res := make(map[Level]func(string, ...any) string, len(cs))
	for l, c := range cs {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		res[l] = c.SprintfFunc()
	}
	return res
}

// Ref takes a reference to d and returns it.
func (d *Diag) Ref() *Diag {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.refs++
	return d
}

// Unref gives back a reference to d.
func (d *Diag) Unref() {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.refs > 0 {
		d.refs--
	}
}

// Refs returns the number of outstanding references.
func (d *Diag) Refs() int {
	if d == nil {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.refs
}

// Color reports whether d writes colored output.
func (d *Diag) Color() bool {
	return d != nil && d.color
}

func (d *Diag) Logf(l Level, format string, args ...any) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if l < LevelDebug || l > LevelError {
		l = LevelError
	}
	d.counts[l]++
	if d.refs == 0 || l < d.level {
		return
	}
	buf := &strings.Builder{}
	if d.prefix != "" {
		buf.WriteString(d.prefix)
		buf.WriteString(": ")
	}
	buf.WriteString(d.colors[l]("%s", l))
	buf.WriteString(": ")
	fmt.Fprintf(buf, format, args...)
	if !strings.HasSuffix(buf.String(), "\n") {
		buf.WriteByte('\n')
	}
	io.WriteString(d.w, buf.String())
}

func (d *Diag) Debugf(format string, args ...any) { d.Logf(LevelDebug, format, args...) }
func (d *Diag) Infof(format string, args ...any)  { d.Logf(LevelInfo, format, args...) }
func (d *Diag) Warnf(format string, args ...any)  { d.Logf(LevelWarn, format, args...) }
func (d *Diag) Errorf(format string, args ...any) { d.Logf(LevelError, format, args...) }

// Report writes err at error level. YAML syntax errors are rendered with
// their source excerpt.
func (d *Diag) Report(err error) {
	if d == nil || err == nil {
		return
	}
	d.Errorf("%s", yaml.FormatError(err, d.color, true))
}

// Count returns the number of messages logged at level l, including those
// below the minimum level.
func (d *Diag) Count(l Level) int {
	if d == nil || l < LevelDebug || l > LevelError {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.counts[l]
}

// Errors returns the number of error level messages.
func (d *Diag) Errors() int {
	return d.Count(LevelError)
}
