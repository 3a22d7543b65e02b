package ports

import "go.trai.ch/zigcli/internal/core/domain"

// ConfigLoader defines the interface for loading the build request.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path, applies overrides on top and
	// returns a validated request. An empty path loads the default file if
	// it exists.
	Load(path string, overrides domain.BuildSettings) (*domain.BuildRequest, error)
}
