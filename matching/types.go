package matching

import "errors"

// ErrBadShape is returned when a graph is requested with a non-positive side.
var ErrBadShape = errors.New("matching: sides must be positive")

// ErrOutOfRange is returned when an edge endpoint or component member is not
// a valid node index.
var ErrOutOfRange = errors.New("matching: node index out of range")

// ErrNilGraph is returned when a nil *Graph is passed to an algorithm.
var ErrNilGraph = errors.New("matching: graph is nil")

// Edge is one matched pair, expressed in side-local indices: Left in
// [0, left), Right in [0, right). Callers translating to node indices add
// the left-side size to Right.
type Edge struct {
	Left  int
	Right int
}
