// SPDX-License-Identifier: MIT
package point_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pointgraph/point"
)

func TestPoint_Arithmetic(t *testing.T) {
	p := point.New(1, 2, 3)
	q := point.New(4, 6, 3)

	assert.Equal(t, point.New(5, 8, 6), p.Add(q))
	assert.Equal(t, point.New(3, 4, 0), q.Sub(p))
	assert.Equal(t, point.New(2, 4, 6), p.Scale(2))
	assert.Equal(t, 1*4+2*6+3*3.0, p.Dot(q))
	assert.InDelta(t, 5.0, p.Dist(q), 1e-12)
	assert.InDelta(t, math.Sqrt(14), p.Norm(), 1e-12)

	// x × y = z
	assert.Equal(t, point.New(0, 0, 1), point.New(1, 0, 0).Cross(point.New(0, 1, 0)))
}

func TestPoint_ValueSemantics(t *testing.T) {
	p := point.New(1, 1, 1)
	q := p
	q.X = 9
	assert.Equal(t, 1.0, p.X, "copy must not alias")
	assert.True(t, p == point.New(1, 1, 1))
	assert.Equal(t, "(1, 1, 1)", p.String())
}

func TestPoint_IsFinite(t *testing.T) {
	assert.True(t, point.Origin.IsFinite())
	assert.False(t, point.New(math.NaN(), 0, 0).IsFinite())
	assert.False(t, point.New(0, math.Inf(-1), 0).IsFinite())
}

func TestBox(t *testing.T) {
	var empty point.Box
	require.True(t, empty.Empty())
	assert.False(t, empty.Contains(point.Origin))
	assert.Equal(t, point.Origin, empty.Center())

	b := point.BoxOf(point.New(0, 0, 0), point.New(2, -1, 4), point.New(1, 3, 1))
	require.False(t, b.Empty())
	assert.Equal(t, point.New(0, -1, 0), b.Min)
	assert.Equal(t, point.New(2, 3, 4), b.Max)
	assert.Equal(t, point.New(1, 1, 2), b.Center())
	assert.Equal(t, point.New(2, 4, 4), b.Size())
	assert.True(t, b.Contains(point.New(1, 0, 2)))
	assert.False(t, b.Contains(point.New(3, 0, 2)))
}
