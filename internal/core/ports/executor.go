package ports

import (
	"context"

	"go.trai.ch/zigcli/internal/core/domain"
)

// ProcessRunner launches an invocation and captures its output.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type ProcessRunner interface {
	// Run blocks until the process exits. A launch problem or a non-zero
	// exit is returned as a *domain.BuildError; the captured output is
	// returned in both cases where it exists.
	Run(ctx context.Context, inv *domain.Invocation) (*domain.ProcessOutput, error)
}

// Executor runs an invocation and resolves what it produced.
type Executor interface {
	Run(ctx context.Context, inv *domain.Invocation) (*domain.BuildResult, error)
}
