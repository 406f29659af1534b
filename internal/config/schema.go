// SPDX-License-Identifier: MIT

// Package config holds the pointgraph CLI configuration and its YAML loader.
package config

// Config is the root of a pointgraph YAML file.
//
// Exactly one graph source is used: Mesh (files read by meshio) or Generate
// (a builder constructor).
type Config struct {
	LogLevel string          `yaml:"log_level"`
	Mesh     MeshConfig      `yaml:"mesh"`
	Generate *GenerateConfig `yaml:"generate"`
	Report   ReportConfig    `yaml:"report"`
}

// MeshConfig names a nodes file and an elements file.
type MeshConfig struct {
	Nodes    string `yaml:"nodes"`
	Elements string `yaml:"elements"`
}

// IsSet reports whether any mesh path was given.
func (m MeshConfig) IsSet() bool { return m.Nodes != "" || m.Elements != "" }

// GenerateConfig selects a builder constructor and its parameters.
type GenerateConfig struct {
	Kind    string  `yaml:"kind"` // path | cycle | star | wheel | complete | grid | cloud
	N       int     `yaml:"n"`
	NX      int     `yaml:"nx"`
	NY      int     `yaml:"ny"`
	NZ      int     `yaml:"nz"`
	Radius  float64 `yaml:"radius"`
	Spacing float64 `yaml:"spacing"`
	Seed    int64   `yaml:"seed"`
}

// ReportConfig tunes the printed report.
type ReportConfig struct {
	// MaxComponents caps how many connected components are listed.
	MaxComponents int `yaml:"max_components"`
	// Route, if set, asks for the shortest path between two node indices.
	Route *RouteConfig `yaml:"route"`
}

// RouteConfig is a pair of node indices.
type RouteConfig struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Generator kinds accepted in GenerateConfig.Kind.
const (
	KindPath     = "path"
	KindCycle    = "cycle"
	KindStar     = "star"
	KindWheel    = "wheel"
	KindComplete = "complete"
	KindGrid     = "grid"
	KindCloud    = "cloud"
)
