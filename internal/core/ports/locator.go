package ports

import "go.trai.ch/zigcli/internal/core/domain"

// ToolLocator resolves the zig executable.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type ToolLocator interface {
	// Resolve returns the executable to launch. It never fails; a missing
	// executable surfaces when the process is started.
	Resolve() domain.ToolPath
}
