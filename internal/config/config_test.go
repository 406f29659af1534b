// SPDX-License-Identifier: MIT
package config_test

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pointgraph/internal/config"
)

func TestLoad_Mesh(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "mesh.yaml"))
	require.NoError(t, err)
	require.NoError(t, config.Validate(cfg))

	assert.Equal(t, "data/tet.nodes", cfg.Mesh.Nodes)
	assert.Equal(t, "data/tet.tets", cfg.Mesh.Elements)
	assert.Nil(t, cfg.Generate)
	assert.Equal(t, 3, cfg.Report.MaxComponents)
	assert.Equal(t, &config.RouteConfig{From: 0, To: 4}, cfg.Report.Route)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_GridDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "grid.yaml"))
	require.NoError(t, err)
	require.NoError(t, config.Validate(cfg))

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5, cfg.Report.MaxComponents)
	assert.Equal(t, &config.GenerateConfig{Kind: config.KindGrid, NX: 4, NY: 3, NZ: 1, Spacing: 1}, cfg.Generate)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	_, err = config.Parse([]byte("mesh:\n  nodez: x\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = config.Parse([]byte("mesh: [1, 2\n"))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.ErrorIs(t, config.Validate(cfg), config.ErrInvalid, "no graph source")
}

func TestValidate(t *testing.T) {
	gen := func(g config.GenerateConfig) *config.Config {
		cfg := config.Default()
		cfg.Generate = &g
		return cfg
	}

	cases := []struct {
		name string
		cfg  *config.Config
		msg  string
	}{
		{"BothSources", func() *config.Config {
			c := gen(config.GenerateConfig{Kind: config.KindPath, N: 3, Spacing: 1})
			c.Mesh.Nodes, c.Mesh.Elements = "a", "b"
			return c
		}(), "only one of mesh/generate"},
		{"HalfMesh", func() *config.Config {
			c := config.Default()
			c.Mesh.Nodes = "a"
			return c
		}(), "mesh.elements is required"},
		{"BadLevel", func() *config.Config {
			c := gen(config.GenerateConfig{Kind: config.KindPath, N: 3, Spacing: 1})
			c.LogLevel = "chatty"
			return c
		}(), "log_level"},
		{"NoKind", gen(config.GenerateConfig{N: 3, Spacing: 1}), "generate.kind is required"},
		{"UnknownKind", gen(config.GenerateConfig{Kind: "torus", Spacing: 1}), `"torus" is unknown`},
		{"ZeroN", gen(config.GenerateConfig{Kind: config.KindStar, Spacing: 1}), "generate.n must be positive"},
		{"BadGrid", gen(config.GenerateConfig{Kind: config.KindGrid, NX: 2, NY: 0, NZ: 1, Spacing: 1}), "nx/ny/nz"},
		{"CloudRadius", gen(config.GenerateConfig{Kind: config.KindCloud, N: 5, Spacing: 1}), "radius"},
		{"Spacing", gen(config.GenerateConfig{Kind: config.KindPath, N: 3, Spacing: -1}), "spacing"},
		{"Route", func() *config.Config {
			c := gen(config.GenerateConfig{Kind: config.KindPath, N: 3, Spacing: 1})
			c.Report.Route = &config.RouteConfig{From: -1, To: 2}
			return c
		}(), "report.route"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := config.Validate(tc.cfg)
			require.ErrorIs(t, err, config.ErrInvalid)
			assert.ErrorContains(t, err, tc.msg)
		})
	}

	ok := gen(config.GenerateConfig{Kind: config.KindCloud, N: 5, Radius: 0.5, Spacing: 1})
	assert.NoError(t, config.Validate(ok))
}
