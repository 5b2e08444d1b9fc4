package selector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestFXModule_ProvidesSelectorAndEmptyManifest(t *testing.T) {
	t.Parallel()
	var (
		sel *Selector
		e   Eligibility
		m   *Manifest
	)

	app := fxtest.New(t,
		FXModule,
		fx.Supply(Config{TypeMarker: "Traced"}),
		fx.Populate(&sel, &e, &m),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.Equal(t, Marker("Traced"), sel.TypeMarker())
	assert.Same(t, sel, e)
	assert.Empty(t, m.Sites())
}

func TestFXModule_LoadsManifestFromPath(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(bankManifest), 0o600))

	var m *Manifest
	app := fxtest.New(t,
		FXModule,
		fx.Supply(Config{ManifestPath: path}),
		fx.Populate(&m),
	)

	app.RequireStart()
	defer app.RequireStop()

	_, err := m.CallSite("bank.Ledger", "post")
	assert.NoError(t, err)
}

func TestNewManifest_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := NewManifest(Config{ManifestPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}
