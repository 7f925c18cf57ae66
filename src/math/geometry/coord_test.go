package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestCoordRoundTrip(t *testing.T) {
	v := v3(1.5, -2.5, 3)
	require.Equal(t, geom.Coord{1.5, -2.5, 3}, v.Coord())
	require.Equal(t, v, FromCoord(v.Coord()))
}

func TestFromCoordShort(t *testing.T) {
	// XY coord, missing Z defaults to 0
	require.Equal(t, v3(4, 5, 0), FromCoord(geom.Coord{4, 5}))
}
