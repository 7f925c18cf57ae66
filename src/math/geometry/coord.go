package geometry

import "github.com/twpayne/go-geom"

// FromCoord converts a go-geom coordinate to a Vector3. Coords carrying fewer
// than three ordinates get zeros for the missing components; extra ordinates
// (e.g. an M value) are ignored.
func FromCoord(c geom.Coord) Vector3 {
	return FromSlice(c)
}

// Coord returns v as a go-geom XYZ coordinate.
func (v Vector3) Coord() geom.Coord {
	return geom.Coord{v.X, v.Y, v.Z}
}
