package octmap

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ErrDegenerateDirection is returned by Encode when the input vector has
// zero length, since a zero vector has no direction to project.
var ErrDegenerateDirection = errors.New("octmap: degenerate zero-length direction")

// degenerateLength is the tolerance below which a vector length is treated
// as zero. Normalizing such a vector would produce NaN or Inf components.
const degenerateLength = 1e-12

// l1Floor is the minimum L1 norm used as the projection denominator.
// A unit vector's L1 norm is at least 1, so the floor only matters as a
// last-ditch guard against division by a vanishing denominator.
const l1Floor = 1e-5

// UV is a point in the octahedral map's unit square.
type UV struct {
	U, V float64
}

// InUnitSquare reports whether both components lie in [0, 1].
// Decode accepts out-of-range points, but only points inside the unit
// square carry octahedral-map semantics.
func (p UV) InUnitSquare() bool {
	return p.U >= 0 && p.U <= 1 && p.V >= 0 && p.V <= 1
}

// signNotZero returns +1 for non-negative values and -1 otherwise.
// Exactly zero maps to +1; the fold relies on this tie-break to send
// boundary points to a consistent corner.
func signNotZero(v float64) float64 {
	if v >= 0 {
		return 1
	}
	return -1
}

// Encode projects a direction onto the octahedral map, returning a point
// in the unit square. The input need not be unit length. The polar axis
// is Y: (0,1,0) encodes to the square's center, directions with negative
// Y fold into the corner triangles.
//
// Encode returns ErrDegenerateDirection for a zero-length input.
func Encode(d Vec3) (UV, error) {
	if scalar.EqualWithinAbs(d.Length(), 0, degenerateLength) {
		return UV{}, ErrDegenerateDirection
	}
	d = d.Normalize()

	// Octahedral basis: the polar axis (input Y) becomes the third
	// coordinate, driving the fold test.
	octX, octY, octZ := d.X, d.Z, d.Y

	denom := math.Max(math.Abs(octX)+math.Abs(octY)+math.Abs(octZ), l1Floor)
	px := octX / denom
	py := octY / denom

	// Lower hemisphere: fold the diamond into the square's corner
	// triangles.
	if octZ < 0 {
		px, py = (1-math.Abs(py))*signNotZero(px), (1-math.Abs(px))*signNotZero(py)
	}

	return UV{U: px*0.5 + 0.5, V: py*0.5 + 0.5}, nil
}

// Decode maps a point of the octahedral map back to a unit direction.
// It is the exact inverse of Encode: Decode(Encode(d)) reproduces d/|d|
// up to floating-point tolerance. Points outside the unit square are
// accepted and extend the mapping formulaically, without clamping.
func Decode(p UV) Vec3 {
	fx := p.U*2 - 1
	fy := p.V*2 - 1

	nx, ny := fx, fy
	nz := 1 - math.Abs(fx) - math.Abs(fy)

	// A negative nz means the point lies in a corner triangle; undo the
	// fold. nz keeps its value: the encode side folded on octZ's sign
	// alone, so the magnitude is already correct.
	if nz < 0 {
		nx, ny = (1-math.Abs(ny))*signNotZero(nx), (1-math.Abs(nx))*signNotZero(ny)
	}

	d := Vec3{X: nx, Y: nz, Z: ny}
	if scalar.EqualWithinAbs(d.Length(), 0, degenerateLength) {
		// The construction of nz keeps the reconstruction away from the
		// zero vector for any finite input, but normalizing a collapsed
		// reconstruction would yield NaN. Snap to the south pole, where
		// the square's exact corners decode to.
		return Vec3{X: 0, Y: -1, Z: 0}
	}
	return d.Normalize()
}
