package ports

import "go.trai.ch/zigcli/internal/core/domain"

// ArtifactResolver finds the library a successful build produced.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ArtifactResolver interface {
	// Resolve looks for the expected artifact under the invocation prefix and
	// returns a *domain.BuildError of kind KindMissingArtifact when it is absent.
	Resolve(inv *domain.Invocation) (*domain.BuildResult, error)
}
