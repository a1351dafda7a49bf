package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/containertools/dfm/pkg/config"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join("testdata", "matrix.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "example/app", cfg.Repo)
	assert.Equal(t, "registry.example.com", cfg.Registry)
	assert.Equal(t, "maintainer@example.com", cfg.Maintainer)
	assert.Equal(t, "Dockerfile.template", cfg.Template)
	assert.Equal(t, "VERSION", cfg.VersionFile)
	assert.Equal(t, "v2.4.1", cfg.Vars["init_version"])
	assert.Equal(t, []string{"alpine", "debian"}, cfg.OSNames())

	// alt_arch falls back to arch when not set
	assert.Equal(t, "amd64", cfg.OS["debian"].Images[0].AltArch)
	assert.Equal(t, "arm", cfg.OS["debian"].Images[1].AltArch)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"alpine", "debian"}, cfg.OSNames())
	assert.NotEmpty(t, cfg.Repo)
	assert.Equal(t, config.DefaultTemplate, cfg.Template)
	assert.Equal(t, config.DefaultVersionFile, cfg.VersionFile)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"os:\n  debian:\n    images:\n      - base: debian:stable-slim\n        arch: amd64\n", // no repo
		"repo: example/app\n", // no os
		"repo: example/app\nos:\n  debian:\n    vars: {}\n",                  // no images
		"repo: example/app\nos:\n  debian:\n    images:\n      - arch: amd64\n", // no base
	}

	for _, input := range inputs {
		file := filepath.Join(t.TempDir(), "matrix.yaml")
		require.NoError(t, os.WriteFile(file, []byte(input), 0o644))

		_, err := config.Load(file)
		assert.Error(t, err)
	}
}

func TestPairsCrossProduct(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join("testdata", "matrix.yaml"))
	require.NoError(t, err)

	// no filters select the full matrix
	assert.Len(t, cfg.Pairs(nil, nil), 3)

	// restricted to a single OS
	pairs := cfg.Pairs([]string{"debian"}, nil)
	assert.Len(t, pairs, 2)
	for _, p := range pairs {
		assert.Equal(t, "debian", p.OS)
	}

	// restricted to a single architecture across OSes
	pairs = cfg.Pairs(nil, []string{"amd64"})
	assert.Len(t, pairs, 2)

	// both filters
	pairs = cfg.Pairs([]string{"alpine"}, []string{"amd64"})
	require.Len(t, pairs, 1)
	assert.Equal(t, "alpine", pairs[0].OS)
	assert.Equal(t, "alpine:3.20", pairs[0].Spec.Base)

	// pairs only exist where the matrix defines them
	assert.Empty(t, cfg.Pairs([]string{"alpine"}, []string{"armhf"}))
	assert.Empty(t, cfg.Pairs([]string{"fedora"}, nil))
	assert.Empty(t, cfg.Pairs(nil, []string{"riscv64"}))
}
