// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks:
//   - log_level is a slog level name
//   - exactly one of mesh and generate is set, and mesh names both files
//   - generator parameters are in range for the chosen kind
//   - report limits are positive and route indices non-negative
func Validate(cfg *Config) error {
	var errs []string

	if _, err := cfg.Level(); err != nil {
		errs = append(errs, fmt.Sprintf("log_level %q: %v", cfg.LogLevel, err))
	}

	switch {
	case cfg.Mesh.IsSet() && cfg.Generate != nil:
		errs = append(errs, "only one of mesh/generate may be set")
	case !cfg.Mesh.IsSet() && cfg.Generate == nil:
		errs = append(errs, "one of mesh/generate must be set")
	case cfg.Mesh.IsSet():
		if cfg.Mesh.Nodes == "" {
			errs = append(errs, "mesh.nodes is required")
		}
		if cfg.Mesh.Elements == "" {
			errs = append(errs, "mesh.elements is required")
		}
	default:
		validateGenerate(cfg.Generate, &errs)
	}

	if cfg.Report.MaxComponents < 0 {
		errs = append(errs, "report.max_components must not be negative")
	}
	if r := cfg.Report.Route; r != nil && (r.From < 0 || r.To < 0) {
		errs = append(errs, fmt.Sprintf("report.route: indices must be non-negative, got %d -> %d", r.From, r.To))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}
	return nil
}

func validateGenerate(g *GenerateConfig, errs *[]string) {
	if g.Spacing <= 0 || math.IsInf(g.Spacing, 0) || math.IsNaN(g.Spacing) {
		*errs = append(*errs, fmt.Sprintf("generate.spacing must be positive and finite, got %v", g.Spacing))
	}
	switch g.Kind {
	case KindPath, KindCycle, KindStar, KindWheel, KindComplete:
		if g.N <= 0 {
			*errs = append(*errs, fmt.Sprintf("generate.n must be positive for %s", g.Kind))
		}
	case KindGrid:
		if g.NX <= 0 || g.NY <= 0 || g.NZ <= 0 {
			*errs = append(*errs, fmt.Sprintf("generate.nx/ny/nz must be positive, got %dx%dx%d", g.NX, g.NY, g.NZ))
		}
	case KindCloud:
		if g.N <= 0 {
			*errs = append(*errs, "generate.n must be positive for cloud")
		}
		if g.Radius <= 0 {
			*errs = append(*errs, fmt.Sprintf("generate.radius must be positive, got %v", g.Radius))
		}
	case "":
		*errs = append(*errs, "generate.kind is required")
	default:
		*errs = append(*errs, fmt.Sprintf("generate.kind %q is unknown", g.Kind))
	}
}

// Level parses LogLevel as a slog level name ("debug", "info", "warn", "error").
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(c.LogLevel))
	return lvl, err
}
