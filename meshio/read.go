// SPDX-License-Identifier: MIT

package meshio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/pointgraph/core"
	"github.com/katalvlaran/pointgraph/point"
)

// ReadNodes parses a nodes file.
func ReadNodes(r io.Reader) ([]point.Point, error) {
	var pts []point.Point
	err := scanFields(r, func(line int, fields []string) error {
		if len(fields) != 3 {
			return fmt.Errorf("line %d: want 3 coordinates, got %d: %w", line, len(fields), ErrMalformedLine)
		}
		var c [3]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("line %d: coordinate %q: %w", line, f, ErrMalformedLine)
			}
			c[i] = v
		}
		pts = append(pts, point.New(c[0], c[1], c[2]))
		return nil
	})
	return pts, err
}

// ReadElements parses an elements file. Indices are checked for sign only;
// range checks happen in Load, once the node count is known.
func ReadElements(r io.Reader) ([][]int, error) {
	var elems [][]int
	err := scanFields(r, func(line int, fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("line %d: element needs at least 2 nodes, got %d: %w", line, len(fields), ErrMalformedLine)
		}
		el := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 {
				return fmt.Errorf("line %d: node index %q: %w", line, f, ErrMalformedLine)
			}
			el[i] = v
		}
		elems = append(elems, el)
		return nil
	})
	return elems, err
}

// Load reads both files and appends their contents to g. Element indices are
// relative to the nodes read here, not to nodes already in g. Both inputs are
// parsed and every index is range-checked before g is touched, so on error g
// is unchanged.
func Load[V any](g *core.Graph[V], nodes, elems io.Reader) error {
	pts, err := ReadNodes(nodes)
	if err != nil {
		return fmt.Errorf("nodes: %w", err)
	}
	els, err := ReadElements(elems)
	if err != nil {
		return fmt.Errorf("elements: %w", err)
	}
	for k, el := range els {
		for _, i := range el {
			if i >= len(pts) {
				return fmt.Errorf("elements: element %d: index %d with %d nodes: %w", k+1, i, len(pts), ErrIndexOutOfRange)
			}
		}
	}

	handles := make([]core.Node[V], len(pts))
	for i, p := range pts {
		handles[i] = g.AddNode(p)
	}
	for k, el := range els {
		for i := 0; i < len(el); i++ {
			for j := i + 1; j < len(el); j++ {
				if el[i] == el[j] {
					continue
				}
				if _, err := g.AddEdge(handles[el[i]], handles[el[j]]); err != nil {
					return fmt.Errorf("elements: element %d: %w", k+1, err)
				}
			}
		}
	}
	return nil
}

// LoadFiles is Load on the named files.
func LoadFiles[V any](g *core.Graph[V], nodesPath, elemsPath string) error {
	nf, err := os.Open(nodesPath)
	if err != nil {
		return err
	}
	defer nf.Close()

	ef, err := os.Open(elemsPath)
	if err != nil {
		return err
	}
	defer ef.Close()

	if err := Load(g, nf, ef); err != nil {
		return fmt.Errorf("%s, %s: %w", nodesPath, elemsPath, err)
	}
	return nil
}

// scanFields calls fn with the 1-based line number and fields of every
// non-empty line, comments stripped.
func scanFields(r io.Reader, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if err := fn(line, fields); err != nil {
			return err
		}
	}
	return sc.Err()
}
