package ports

import "go.trai.ch/latt/internal/core/domain"

// ConfigLoader loads the pipeline configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds and parses the configuration starting from cwd, walking
	// up the directory tree. Defaults are applied to omitted fields.
	Load(cwd string) (domain.Config, error)
}
