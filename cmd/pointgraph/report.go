// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/pointgraph/core"
	"github.com/katalvlaran/pointgraph/gonumgraph"
	"github.com/katalvlaran/pointgraph/internal/config"
)

// report is the analysis printed by the CLI.
type report struct {
	Stats      core.GraphStats
	MeanLength float64
	// Components holds component sizes, largest first.
	Components []int
	Listed     int
	Route      *route
}

type route struct {
	From, To int
	Nodes    []int // empty when unreachable
	Length   float64
}

func analyze[V any](g *core.Graph[V], rc config.ReportConfig) (*report, error) {
	rep := &report{Stats: *g.Stats()}

	if n := g.NumEdges(); n > 0 {
		total := 0.0
		for e := range g.Edges() {
			total += e.Length()
		}
		rep.MeanLength = total / float64(n)
	}

	view := gonumgraph.New(g)
	for _, cc := range topo.ConnectedComponents(view) {
		rep.Components = append(rep.Components, len(cc))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rep.Components)))
	rep.Listed = min(rc.MaxComponents, len(rep.Components))

	if rc.Route != nil {
		r, err := shortestRoute(view, rc.Route.From, rc.Route.To)
		if err != nil {
			return nil, err
		}
		rep.Route = r
	}
	return rep, nil
}

// shortestRoute runs Dijkstra over Euclidean edge lengths.
func shortestRoute[V any](view *gonumgraph.Undirected[V], from, to int) (*route, error) {
	for _, i := range []int{from, to} {
		if _, err := view.Graph().Node(i); err != nil {
			return nil, fmt.Errorf("route: %w", err)
		}
	}
	r := &route{From: from, To: to}
	nodes, w := path.DijkstraFrom(view.Node(int64(from)), view).To(int64(to))
	for _, n := range nodes {
		r.Nodes = append(r.Nodes, int(n.ID()))
	}
	r.Length = w
	return r, nil
}

// WriteTo implements io.WriterTo.
func (r *report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	st := r.Stats
	fmt.Fprintf(&b, "nodes:        %s\n", humanize.Comma(int64(st.NodeCount)))
	fmt.Fprintf(&b, "edges:        %s\n", humanize.Comma(int64(st.EdgeCount)))
	fmt.Fprintf(&b, "max degree:   %d\n", st.MaxDegree)
	fmt.Fprintf(&b, "isolated:     %d\n", st.IsolatedCount)
	if st.Bounds.Empty() {
		fmt.Fprintf(&b, "bounds:       none\n")
	} else {
		fmt.Fprintf(&b, "bounds:       %v .. %v\n", st.Bounds.Min, st.Bounds.Max)
	}
	fmt.Fprintf(&b, "mean length:  %.4g\n", r.MeanLength)
	fmt.Fprintf(&b, "components:   %d\n", len(r.Components))
	for i := 0; i < r.Listed; i++ {
		fmt.Fprintf(&b, "  #%d: %d nodes\n", i+1, r.Components[i])
	}
	if rest := len(r.Components) - r.Listed; rest > 0 {
		fmt.Fprintf(&b, "  ... %d more\n", rest)
	}
	if rt := r.Route; rt != nil {
		if len(rt.Nodes) == 0 {
			fmt.Fprintf(&b, "route %d->%d: unreachable\n", rt.From, rt.To)
		} else {
			fmt.Fprintf(&b, "route %d->%d: %v length %.4g\n", rt.From, rt.To, rt.Nodes, rt.Length)
		}
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
