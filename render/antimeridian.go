package render

import(
	"math"

	"github.com/skypies/geo"
)

// {{{ SplitAtAntimeridian

// SplitAtAntimeridian breaks a path wherever it jumps more than 180 degrees of long
// between consecutive points, which in practice means it crossed the antimeridian. The
// crossing is interpolated, so the pieces meet the edges of the map instead of leaving a
// gap, or streaking across the whole map.
func SplitAtAntimeridian(path []geo.Latlong) [][]geo.Latlong {
	if len(path) == 0 { return [][]geo.Latlong{} }

	ret := [][]geo.Latlong{}
	curr := []geo.Latlong{path[0]}

	for i:=1; i<len(path); i++ {
		a,b := path[i-1], path[i]
		dLong := b.Long - a.Long

		if math.Abs(dLong) <= 180 {
			curr = append(curr, b)
			continue
		}

		// Unwrap b so the segment is short, and find where it meets the edge
		edge, bLong := 180.0, b.Long+360.0
		if dLong > 0 {
			edge, bLong = -180.0, b.Long-360.0
		}
		f := (edge - a.Long) / (bLong - a.Long)
		lat := a.Lat + f*(b.Lat - a.Lat)

		curr = append(curr, geo.Latlong{Lat:lat, Long:edge})
		ret = append(ret, curr)
		curr = []geo.Latlong{ {Lat:lat, Long:-edge}, b }
	}

	return append(ret, curr)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
