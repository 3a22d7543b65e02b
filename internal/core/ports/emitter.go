package ports

import (
	"io"

	"go.trai.ch/zigcli/internal/core/domain"
)

// DirectiveWriter renders a build result for the host build system.
//
//go:generate mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type DirectiveWriter interface {
	Write(w io.Writer, format string, result *domain.BuildResult) error
}
