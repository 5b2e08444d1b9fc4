package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/calltrace/logger"
	"github.com/aalemi-dev/calltrace/selector"
)

func TestParse_FullDocument(t *testing.T) {
	t.Parallel()
	doc := `
logger:
  level: debug
  encoding: console
  service_name: bank
  caller_skip: 2
  file:
    path: /tmp/trace.log
    max_size_mb: 10
    max_backups: 3
    max_age_days: 7
    compress: true
selector:
  type_marker: Traced
  method_marker: TraceMe
  manifest: /etc/bank/manifest.yaml
interceptor:
  structured_fields: true
`
	cfg, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, logger.Debug, cfg.Logger.Level)
	assert.Equal(t, logger.ConsoleEncoding, cfg.Logger.Encoding)
	assert.Equal(t, "bank", cfg.Logger.ServiceName)
	assert.Equal(t, 2, cfg.Logger.CallerSkip)
	assert.Equal(t, logger.FileConfig{
		Path:       "/tmp/trace.log",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}, cfg.Logger.File)
	assert.Equal(t, selector.Marker("Traced"), cfg.Selector.TypeMarker)
	assert.Equal(t, selector.Marker("TraceMe"), cfg.Selector.MethodMarker)
	assert.Equal(t, "/etc/bank/manifest.yaml", cfg.Selector.ManifestPath)
	assert.True(t, cfg.Interceptor.StructuredFields)
}

func TestParse_EmptyDocumentUsesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	assert.Equal(t, logger.Info, cfg.Logger.Level)
	assert.Equal(t, logger.JSONEncoding, cfg.Logger.Encoding)
	assert.Equal(t, DefaultServiceName, cfg.Logger.ServiceName)
	assert.Equal(t, selector.DefaultMarker, cfg.Selector.TypeMarker)
	assert.Equal(t, selector.DefaultMarker, cfg.Selector.MethodMarker)
	assert.False(t, cfg.Interceptor.StructuredFields)
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"unknown key":       "logger:\n  levle: debug\n",
		"unknown section":   "metrics:\n  enabled: true\n",
		"bad level":         "logger:\n  level: verbose\n",
		"bad encoding":      "logger:\n  encoding: xml\n",
		"negative limits":   "logger:\n  file:\n    max_backups: -1\n",
		"malformed yaml":    "logger: [\n",
		"wrong scalar type": "interceptor:\n  structured_fields: often\n",
	}

	for name, doc := range cases {
		doc := doc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(strings.NewReader(doc))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	t.Parallel()
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoad_ResolvesRelativeManifest(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "calltrace.yaml")
	require.NoError(t, os.WriteFile(path, []byte("selector:\n  manifest: manifest.yaml\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "manifest.yaml"), cfg.Selector.ManifestPath)
}

func TestLoad_InvalidFileNamesPath(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "calltrace.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logger:\n  level: loud\n"), 0o600))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), path)
}
