package selector

// DefaultMarker is the marker name used for both rules when none is configured.
const DefaultMarker Marker = "LogMe"

// Config defines which markers make a call site eligible for tracing.
type Config struct {
	// TypeMarker is the marker that, on a type, makes every non-synthetic
	// method of that type eligible. Defaults to DefaultMarker.
	TypeMarker Marker `yaml:"type_marker"`

	// MethodMarker is the marker that makes an individual method eligible
	// regardless of its declaring type. Defaults to DefaultMarker.
	MethodMarker Marker `yaml:"method_marker"`

	// ManifestPath optionally points at a YAML manifest declaring marked
	// types and methods. See LoadManifestFile.
	ManifestPath string `yaml:"manifest"`
}

// withDefaults returns a copy of cfg with empty markers replaced by DefaultMarker.
func (cfg Config) withDefaults() Config {
	if cfg.TypeMarker == "" {
		cfg.TypeMarker = DefaultMarker
	}
	if cfg.MethodMarker == "" {
		cfg.MethodMarker = DefaultMarker
	}
	return cfg
}
