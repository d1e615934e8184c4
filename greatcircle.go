package routemap

import(
	"math"

	"github.com/skypies/geo"
)

func radians(deg float64) float64 { return deg * math.Pi / 180.0 }
func degrees(rad float64) float64 { return rad * 180.0 / math.Pi }

// {{{ AngularSeparation

// AngularSeparation is the central angle between two points, in radians, by the spherical
// law of cosines. The cosine is clamped to [-1,1] first; rounding can push it just
// outside for coincident or antipodal points, and acos would return NaN.
func AngularSeparation(from, to geo.Latlong) float64 {
	lat1,lon1 := radians(from.Lat), radians(from.Long)
	lat2,lon2 := radians(to.Lat), radians(to.Long)

	c := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(lon2-lon1)
	return math.Acos(math.Max(-1.0, math.Min(1.0, c)))
}

// }}}
// {{{ GreatCirclePoints

// GreatCirclePoints samples n points along the great circle from one point to another,
// both endpoints included, evenly spaced by angle. If the points are effectively the
// same place, it returns n copies of the start.
func GreatCirclePoints(from, to geo.Latlong, n int) []geo.Latlong {
	if n <= 0 { return []geo.Latlong{} }

	pts := make([]geo.Latlong, n)

	// The law of cosines can't resolve much below 1e-8 radians, so exact matches are
	// caught before trusting d
	d := AngularSeparation(from, to)
	if from == to || d < DegenerateSeparation {
		for i := range pts { pts[i] = from }
		return pts
	}

	lat1,lon1 := radians(from.Lat), radians(from.Long)
	lat2,lon2 := radians(to.Lat), radians(to.Long)
	sinD := math.Sin(d)

	for i := range pts {
		f := 0.0
		if n > 1 { f = float64(i) / float64(n-1) }

		a := math.Sin((1-f)*d) / sinD
		b := math.Sin(f*d) / sinD

		x := a*math.Cos(lat1)*math.Cos(lon1) + b*math.Cos(lat2)*math.Cos(lon2)
		y := a*math.Cos(lat1)*math.Sin(lon1) + b*math.Cos(lat2)*math.Sin(lon2)
		z := a*math.Sin(lat1)                + b*math.Sin(lat2)

		pts[i] = geo.Latlong{
			Lat:  degrees(math.Atan2(z, math.Sqrt(x*x + y*y))),
			Long: degrees(math.Atan2(y, x)),
		}
	}

	return pts
}

// }}}
// {{{ rs.Arc

// Arc is the great circle from home out to the route's destination.
func (rs RouteSet)Arc(r Route, n int) []geo.Latlong {
	return GreatCirclePoints(rs.Home.Latlong, r.Latlong, n)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
