// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pointgraph/builder"
	"github.com/katalvlaran/pointgraph/core"
	"github.com/katalvlaran/pointgraph/internal/config"
	"github.com/katalvlaran/pointgraph/meshio"
)

// buildGraph reads the mesh files or runs the generator named by cfg.
// cfg must already be validated.
func buildGraph(logger *slog.Logger, cfg *config.Config) (*core.Graph[struct{}], error) {
	if cfg.Generate == nil {
		g := core.NewGraph[struct{}]()
		logger.Info("loading mesh", "nodes", cfg.Mesh.Nodes, "elements", cfg.Mesh.Elements)
		if err := meshio.LoadFiles(g, cfg.Mesh.Nodes, cfg.Mesh.Elements); err != nil {
			return nil, err
		}
		return g, nil
	}

	gc := cfg.Generate
	var cons builder.Constructor[struct{}]
	switch gc.Kind {
	case config.KindPath:
		cons = builder.Path[struct{}](gc.N)
	case config.KindCycle:
		cons = builder.Cycle[struct{}](gc.N)
	case config.KindStar:
		cons = builder.Star[struct{}](gc.N)
	case config.KindWheel:
		cons = builder.Wheel[struct{}](gc.N)
	case config.KindComplete:
		cons = builder.Complete[struct{}](gc.N)
	case config.KindGrid:
		cons = builder.Grid[struct{}](gc.NX, gc.NY, gc.NZ)
	case config.KindCloud:
		cons = builder.RandomCloud[struct{}](gc.N, gc.Radius)
	default:
		return nil, fmt.Errorf("unknown generator %q", gc.Kind)
	}

	logger.Info("generating graph", "kind", gc.Kind, "seed", gc.Seed)
	opts := []builder.BuilderOption{
		builder.WithSpacing(gc.Spacing),
		builder.WithSeed(gc.Seed),
	}
	return builder.BuildGraph(opts, cons)
}
