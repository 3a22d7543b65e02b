// Package emitter renders a build result in the formats host build systems
// consume.
package emitter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/zerr"
	"go.trai.ch/zigcli/internal/core/domain"
	"go.trai.ch/zigcli/internal/ui/output"
	"go.trai.ch/zigcli/internal/ui/style"
	"gopkg.in/yaml.v3"
)

// Supported formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatCargo = "cargo"
	FormatCgo   = "cgo"
)

// Formats lists every supported format.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatCargo, FormatCgo}

// Writer implements ports.DirectiveWriter.
type Writer struct{}

// New creates a new Writer.
func New() *Writer {
	return &Writer{}
}

// Write renders result to w in the given format.
func (e *Writer) Write(w io.Writer, format string, result *domain.BuildResult) error {
	switch format {
	case FormatText, "":
		return writeText(w, result)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return wrapWrite(enc.Encode(newReport(result)))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newReport(result)); err != nil {
			return wrapWrite(err)
		}
		return wrapWrite(enc.Close())
	case FormatCargo:
		return writeLines(w, cargoDirectives(result))
	case FormatCgo:
		return writeLines(w, []string{cgoFlags(result)})
	default:
		return zerr.With(domain.ErrUnknownFormat, "format", format)
	}
}

// report is the serialized form of a build result.
type report struct {
	Name       string   `json:"name" yaml:"name"`
	Artifact   string   `json:"artifact" yaml:"artifact"`
	Companions []string `json:"companions,omitempty" yaml:"companions,omitempty"`
	LibDir     string   `json:"libDir" yaml:"libDir"`
	Linkage    string   `json:"linkage" yaml:"linkage"`
	SystemLibs []string `json:"systemLibs" yaml:"systemLibs"`
	State      string   `json:"state" yaml:"state"`
}

func newReport(r *domain.BuildResult) report {
	syslibs := r.SystemLibs
	if syslibs == nil {
		syslibs = []string{}
	}
	return report{
		Name:       r.Name,
		Artifact:   r.Artifact,
		Companions: r.Companions,
		LibDir:     r.LibDir,
		Linkage:    r.Linkage.String(),
		SystemLibs: syslibs,
		State:      r.State.String(),
	}
}

// cargoDirectives are the build script lines cargo reads from stdout.
func cargoDirectives(r *domain.BuildResult) []string {
	kind := "static"
	if r.Linkage == domain.LinkageDynamic {
		kind = "dylib"
	}

	lines := []string{
		"cargo:rustc-link-search=native=" + r.LibDir,
		"cargo:rustc-link-lib=" + kind + "=" + r.Name,
	}
	for _, lib := range r.SystemLibs {
		lines = append(lines, "cargo:rustc-link-lib=dylib="+lib)
	}
	return lines
}

// cgoFlags renders the library as a #cgo LDFLAGS value.
func cgoFlags(r *domain.BuildResult) string {
	flags := []string{"-L" + r.LibDir, "-l" + r.Name}
	for _, lib := range r.SystemLibs {
		flags = append(flags, "-l"+lib)
	}
	return strings.Join(flags, " ")
}

func writeText(w io.Writer, r *domain.BuildResult) error {
	out := output.New(w)

	lines := []string{
		output.Paint(out, style.Check, string(style.Green)) + " built " + output.Paint(out, r.Name, string(style.Iris)),
		field("artifact", r.Artifact),
	}
	for _, c := range r.Companions {
		lines = append(lines, field("companion", c))
	}
	lines = append(lines,
		field("lib dir", r.LibDir),
		field("linkage", r.Linkage.String()),
	)
	if len(r.SystemLibs) > 0 {
		lines = append(lines, field("system libs", strings.Join(r.SystemLibs, ", ")))
	}
	return writeLines(w, lines)
}

func field(key, value string) string {
	return fmt.Sprintf("  %-12s %s", key, value)
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return wrapWrite(err)
		}
	}
	return nil
}

func wrapWrite(err error) error {
	if err == nil {
		return nil
	}
	return zerr.Wrap(err, "failed to write build result")
}
