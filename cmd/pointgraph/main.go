// SPDX-License-Identifier: MIT

// Command pointgraph loads or generates a 3D point graph and prints a short
// structural report: sizes, degrees, bounds, connected components, mean edge
// length and, optionally, a shortest route between two nodes.
//
// Usage:
//
//	pointgraph -nodes data/tet.nodes -elements data/tet.tets
//	pointgraph -config pointgraph.yaml -from 0 -to 42
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/pointgraph/internal/config"
)

// logOutput receives the structured log lines of run.
var logOutput io.Writer = os.Stderr

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, builds the graph and writes the report to out.
func run(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("pointgraph", flag.ContinueOnError)
	fs.SetOutput(out)
	cfgPath := fs.String("config", "", "Path to a YAML config file.")
	nodesPath := fs.String("nodes", "", "Nodes file (one \"x y z\" per line). Overrides mesh.nodes.")
	elemsPath := fs.String("elements", "", "Elements file (node indices per line). Overrides mesh.elements.")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn or error. Overrides log_level.")
	from := fs.Int("from", -1, "Route start node index; needs -to.")
	to := fs.Int("to", -1, "Route end node index; needs -from.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	if *nodesPath != "" || *elemsPath != "" {
		cfg.Mesh = config.MeshConfig{Nodes: *nodesPath, Elements: *elemsPath}
		cfg.Generate = nil
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *from >= 0 || *to >= 0 {
		cfg.Report.Route = &config.RouteConfig{From: *from, To: *to}
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: lvl}))

	start := time.Now()
	g, err := buildGraph(logger, cfg)
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}
	logger.Debug("graph ready", "nodes", g.NumNodes(), "edges", g.NumEdges(), "took", time.Since(start))

	rep, err := analyze(g, cfg.Report)
	if err != nil {
		return err
	}
	logger.Debug("analysis done", "components", len(rep.Components), "took", time.Since(start))

	_, err = rep.WriteTo(out)
	return err
}
