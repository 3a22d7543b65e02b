package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/zigcli/internal/core/domain"
	"go.trai.ch/zigcli/internal/ui/output"
	"go.trai.ch/zigcli/internal/ui/style"
)

// StreamKey is the record attribute naming the zig output stream a line was
// read from.
const StreamKey = "stream"

// PrettyHandler is a slog.Handler for terminals. Lines zig printed are shown
// behind a "zig" gutter; the CLI's own warnings and errors get a symbol.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string // group path, dot terminated
	suffix string // preformatted handler attrs
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var stream domain.Stream
	var attrs strings.Builder
	attrs.WriteString(h.suffix)

	r.Attrs(func(a slog.Attr) bool {
		if a.Key == StreamKey && h.prefix == "" {
			stream = domain.Stream(a.Value.String())
			return true
		}
		h.appendAttr(&attrs, a)
		return true
	})

	lead, color := h.decorate(r.Level, stream)
	line := lead + r.Message + attrs.String()

	_, err := h.out.WriteString(output.Paint(h.out, line, color) + "\n")
	return err
}

func (h *PrettyHandler) decorate(level slog.Level, stream domain.Stream) (string, string) {
	switch {
	case stream == domain.StreamStdout:
		return "zig " + style.Gutter + " ", string(style.Slate)
	case stream == domain.StreamStderr:
		return "zig " + style.Warning + " ", string(style.Yellow)
	case level >= slog.LevelError:
		return style.Cross + " ", string(style.Red)
	case level >= slog.LevelWarn:
		return style.Warning + " ", string(style.Yellow)
	default:
		return "", string(style.Slate)
	}
}

func (h *PrettyHandler) appendAttr(b *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	b.WriteString(" " + h.prefix + a.Key + "=" + a.Value.String())
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.suffix)
	for _, a := range attrs {
		h.appendAttr(&b, a)
	}

	next := *h
	next.suffix = b.String()
	return &next
}

// WithGroup returns a new Handler qualifying later attribute keys by name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}
