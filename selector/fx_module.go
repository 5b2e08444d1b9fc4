package selector

import (
	"go.uber.org/fx"
)

// FXModule defines the Fx module for the selector package.
//
// The module provides:
// 1. *Selector (concrete type) for direct use
// 2. Eligibility interface for dependency injection
// 3. *Manifest loaded from Config.ManifestPath (empty when no path is set)
//
// Dependencies required by this module:
// - A selector.Config instance must be available in the dependency injection container
var FXModule = fx.Module("selector",
	fx.Provide(
		NewSelector,
		fx.Annotate(
			func(s *Selector) Eligibility { return s },
			fx.As(new(Eligibility)),
		),
		NewManifest,
	),
)

// NewManifest loads the manifest named by cfg.ManifestPath. Without a path
// it returns an empty manifest, so call sites must then be declared in code.
func NewManifest(cfg Config) (*Manifest, error) {
	if cfg.ManifestPath == "" {
		m := &Manifest{}
		if err := m.build(); err != nil {
			return nil, err
		}
		return m, nil
	}
	return LoadManifestFile(cfg.ManifestPath)
}
