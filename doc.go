// Package octmap maps 3D unit directions to 2D coordinates in the unit
// square and back, using octahedral projection.
//
// # Overview
//
// Octahedral mapping packs a direction vector into two components instead
// of three, which is the standard trick for storing surface normals in
// texture-like layouts. The sphere is projected onto an octahedron, the
// upper half unfolds into the central diamond of the unit square, and the
// lower half folds into the square's four corner triangles.
//
// # Quick Start
//
//	import "github.com/gogpu/octmap"
//
//	uv, err := octmap.Encode(octmap.V(1, -1, 0.5))
//	if err != nil {
//	    // only possible for a zero-length direction
//	}
//	dir := octmap.Decode(uv) // unit length, same direction
//
// # Conventions
//
// The input's Y component is the polar axis of the octahedron: Encode
// works in the octahedral basis (x, z, y), and Decode undoes the swap.
// This convention is fixed; changing it breaks the inverse relationship.
// Encode and Decode are pure functions with no shared state and are safe
// for unlimited concurrent use.
//
// # Accuracy
//
// For any non-zero finite direction d, Decode(Encode(d)) equals d/|d|
// within about 1e-6 per component in double precision. Encode returns
// both components in [0, 1]; Decode accepts out-of-range inputs and
// extends the mapping formulaically without clamping.
package octmap

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
