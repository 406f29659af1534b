// SPDX-License-Identifier: MIT

package meshio

import "errors"

var (
	// ErrMalformedLine indicates a line that does not parse as a point or an element.
	ErrMalformedLine = errors.New("meshio: malformed line")

	// ErrIndexOutOfRange indicates an element that references a node that was not loaded.
	ErrIndexOutOfRange = errors.New("meshio: node index out of range")
)
