// FILE: embedconf/locate_test.go
package embedconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocateOptions() LocateOptions {
	opts := DefaultLocateOptions()
	opts.EnvVar = "EMBEDCONF_TEST_PATH"
	opts.RootVar = "EMBEDCONF_TEST_ROOT"
	return opts
}

// TestLocate tests document discovery
func TestLocate(t *testing.T) {
	opts := testLocateOptions()

	t.Run("OverrideDominates", func(t *testing.T) {
		// The root points at a directory whose manifest is not even valid
		// TOML; if discovery touched it, Locate would fail.
		root := t.TempDir()
		writeConfig(t, root, opts.Manifest, `not valid at all = = =`)

		t.Setenv(opts.EnvVar, "/direct/path/app.toml")
		t.Setenv(opts.RootVar, root)

		path, err := Locate(opts)
		require.NoError(t, err)
		assert.Equal(t, "/direct/path/app.toml", path)
	})

	t.Run("NeitherVariableSet", func(t *testing.T) {
		t.Setenv(opts.EnvVar, "")
		t.Setenv(opts.RootVar, "")

		_, err := Locate(opts)
		assert.ErrorIs(t, err, ErrLocationNotConfigured)
		assert.Contains(t, err.Error(), opts.EnvVar)
		assert.Contains(t, err.Error(), opts.RootVar)
	})

	t.Run("ManifestDeclaresPath", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, opts.Manifest, `
[package.metadata.embedded-config]
path = "config/app.toml"
`)

		t.Setenv(opts.EnvVar, "")
		t.Setenv(opts.RootVar, root)

		path, err := Locate(opts)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "config", "app.toml"), path)
	})

	t.Run("ManifestLacksField", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, opts.Manifest, `
[package]
name = "demo"
`)

		t.Setenv(opts.EnvVar, "")
		t.Setenv(opts.RootVar, root)

		_, err := Locate(opts)
		assert.ErrorIs(t, err, ErrLocationNotConfigured)
		assert.Contains(t, err.Error(), opts.ManifestField)
	})

	t.Run("ManifestFieldNotString", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, opts.Manifest, `
[package.metadata.embedded-config]
path = 42
`)

		t.Setenv(opts.EnvVar, "")
		t.Setenv(opts.RootVar, root)

		_, err := Locate(opts)
		assert.ErrorIs(t, err, ErrInvalidLocationValue)
		assert.Contains(t, err.Error(), "integer")
	})

	t.Run("ManifestMissing", func(t *testing.T) {
		root := t.TempDir()

		t.Setenv(opts.EnvVar, "")
		t.Setenv(opts.RootVar, root)

		_, err := Locate(opts)
		assert.ErrorIs(t, err, ErrConfigNotFound)
		assert.Contains(t, err.Error(), "loading manifest")
	})

	t.Run("InvalidManifest", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, opts.Manifest, `broken = `)

		t.Setenv(opts.EnvVar, "")
		t.Setenv(opts.RootVar, root)

		_, err := Locate(opts)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("NoCachingBetweenCalls", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, opts.Manifest, `
[package.metadata.embedded-config]
path = "first.toml"
`)

		t.Setenv(opts.EnvVar, "")
		t.Setenv(opts.RootVar, root)

		path, err := Locate(opts)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "first.toml"), path)

		// Rewriting the manifest changes the next discovery.
		require.NoError(t, os.WriteFile(filepath.Join(root, opts.Manifest), []byte(`
[package.metadata.embedded-config]
path = "second.toml"
`), 0644))

		path, err = Locate(opts)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "second.toml"), path)
	})
}
