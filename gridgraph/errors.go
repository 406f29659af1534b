// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidSpacing indicates a negative or non-finite Spacing or HeightScale.
	ErrInvalidSpacing = errors.New("gridgraph: spacing and height scale must be finite and non-negative")
	// ErrInvalidConnectivity indicates a Conn value other than Conn4 or Conn8.
	ErrInvalidConnectivity = errors.New("gridgraph: connectivity must be Conn4 or Conn8")
)
