package ports

import "go.trai.ch/zigcli/internal/core/domain"

// InvocationBuilder turns a build request into a command line.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type InvocationBuilder interface {
	// Build derives the invocation. It performs no I/O and returns the same
	// arguments for the same inputs.
	Build(tool domain.ToolPath, target domain.TargetDescription, cfg domain.BuildConfiguration) (*domain.Invocation, error)
}
