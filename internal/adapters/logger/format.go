package logger

import (
	"io"
	"strings"

	"go.trai.ch/zerr"
	"go.trai.ch/zigcli/internal/core/domain"
	"golang.org/x/term"
)

// Format selects how log records are rendered.
type Format string

const (
	// FormatAuto renders pretty output on a terminal and JSON elsewhere.
	FormatAuto Format = "auto"
	// FormatPretty renders colored, human readable lines.
	FormatPretty Format = "pretty"
	// FormatJSON renders one JSON object per record.
	FormatJSON Format = "json"
)

// ParseFormat parses a log format name. The empty string selects FormatPretty.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatPretty:
		return FormatPretty, nil
	case FormatAuto:
		return FormatAuto, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", zerr.With(domain.ErrUnknownFormat, "log_format", s)
	}
}

// UseJSON reports whether records written to w are rendered as JSON.
func UseJSON(f Format, w io.Writer) bool {
	switch f {
	case FormatJSON:
		return true
	case FormatPretty:
		return false
	default:
		return !isTerminal(w)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
