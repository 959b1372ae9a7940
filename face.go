package octmap

import "math"

// Face identifies one of the six cubemap faces by its outward axis.
type Face int

// Cubemap faces in the conventional +X, -X, +Y, -Y, +Z, -Z order.
const (
	FacePosX Face = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
)

// String returns the axis label of the face, e.g. "+X".
func (f Face) String() string {
	switch f {
	case FacePosX:
		return "+X"
	case FaceNegX:
		return "-X"
	case FacePosY:
		return "+Y"
	case FaceNegY:
		return "-Y"
	case FacePosZ:
		return "+Z"
	case FaceNegZ:
		return "-Z"
	}
	return "invalid"
}

// faceColors is the fixed debug palette, indexed by Face.
var faceColors = [6]RGBA{
	FacePosX: Red,
	FaceNegX: Green,
	FacePosY: Blue,
	FaceNegY: Yellow,
	FacePosZ: Magenta,
	FaceNegZ: Cyan,
}

// Color returns the face's entry in the debug palette.
func (f Face) Color() RGBA {
	if f < FacePosX || f > FaceNegZ {
		return Black
	}
	return faceColors[f]
}

// Classify selects the cubemap face a direction points into, by dominant
// component. Ties prefer X over Y over Z; a dominant component of exactly
// zero selects the negative face.
func Classify(d Vec3) Face {
	ax, ay, az := math.Abs(d.X), math.Abs(d.Y), math.Abs(d.Z)
	switch {
	case ax >= ay && ax >= az:
		if d.X > 0 {
			return FacePosX
		}
		return FaceNegX
	case ay >= ax && ay >= az:
		if d.Y > 0 {
			return FacePosY
		}
		return FaceNegY
	default:
		if d.Z > 0 {
			return FacePosZ
		}
		return FaceNegZ
	}
}
