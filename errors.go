package h3grid

import "errors"

// Sentinel errors for h3grid operations, following the "pkg: message" style
// used throughout the retrieval pack (inventory, gridgraph).
var (
	// ErrInvalidResolution indicates a resolution outside [0, MaxResolution].
	ErrInvalidResolution = errors.New("h3grid: resolution out of range")
	// ErrInvalidLatLng indicates a non-finite latitude or longitude.
	ErrInvalidLatLng = errors.New("h3grid: latitude/longitude must be finite")
	// ErrMalformedIndex indicates an index fails h3grid's bit-layout invariants.
	ErrMalformedIndex = errors.New("h3grid: malformed index")
	// ErrUnrepresentable indicates a geo point or coordinate could not be placed
	// on the selected icosahedron face within MaxFaceCoord.
	ErrUnrepresentable = errors.New("h3grid: coordinate not representable at this resolution")
	// ErrNotNeighbors indicates two base cells (or cells) are not adjacent.
	ErrNotNeighbors = errors.New("h3grid: cells are not neighbors")
	// ErrPentagonAmbiguous indicates a local-IJ unfolding around a pentagon is
	// not uniquely defined (FAILED_DIRECTIONS[lead][dir] == true).
	ErrPentagonAmbiguous = errors.New("h3grid: pentagon unfolding is ambiguous")
	// ErrDuplicateInput indicates compact() saw more than 7 (or 6, pentagon)
	// children claiming the same parent.
	ErrDuplicateInput = errors.New("h3grid: duplicate input to compact")
	// ErrLoopExceeded indicates an open-addressing hash table could not place an
	// entry after a bounded number of probes — only reachable on invalid input.
	ErrLoopExceeded = errors.New("h3grid: internal hash loop exceeded")
	// ErrBufferTooSmall indicates a caller-provided output slice could not hold
	// the result of a bulk operation.
	ErrBufferTooSmall = errors.New("h3grid: output buffer too small")
	// ErrDifferentResolution indicates two indexes passed to a local-IJ or
	// distance operation do not share a resolution.
	ErrDifferentResolution = errors.New("h3grid: indexes must share a resolution")
	// ErrInvalidEdgeDirection indicates a directed-edge direction is not in 1..6,
	// or is 1 (K-axis) from a pentagon owner.
	ErrInvalidEdgeDirection = errors.New("h3grid: invalid edge direction for owner cell")
	// ErrNotEdgeIndex / ErrNotVertexIndex indicate a mode mismatch.
	ErrNotEdgeIndex   = errors.New("h3grid: index is not a directed edge")
	ErrNotVertexIndex = errors.New("h3grid: index is not a vertex")
)
