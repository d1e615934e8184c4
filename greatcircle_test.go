package routemap

import(
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/skypies/geo"
)

const kTolerance = 1e-9

func near(a,b geo.Latlong, tol float64) bool {
	return math.Abs(a.Lat-b.Lat) < tol && math.Abs(a.Long-b.Long) < tol
}

func TestGreatCircleDegenerate(t *testing.T) {
	for _,p := range []geo.Latlong{ {Lat:0,Long:0}, {Lat:37.6189,Long:-122.3750}, {Lat:-33.9461,Long:151.1772}, {Lat:89.9,Long:10} } {
		for _,n := range []int{1, 2, 100} {
			pts := GreatCirclePoints(p, p, n)
			if len(pts) != n {
				t.Errorf("%v: expected %d points, got %d", p, n, len(pts))
			}
			for i,pt := range pts {
				if pt != p {
					t.Errorf("%v: point[%d] was %v", p, i, pt)
				}
			}
		}
	}
}

func TestGreatCircleEmpty(t *testing.T) {
	if pts := GreatCirclePoints(geo.Latlong{Lat:0,Long:0}, geo.Latlong{Lat:10,Long:10}, 0); len(pts) != 0 {
		t.Errorf("expected no points, got %d", len(pts))
	}
	if pts := GreatCirclePoints(geo.Latlong{Lat:5,Long:6}, geo.Latlong{Lat:10,Long:10}, 1); len(pts) != 1 || !near(pts[0], geo.Latlong{Lat:5,Long:6}, kTolerance) {
		t.Errorf("expected just the start point, got %v", pts)
	}
}

func TestAngularSeparationClamps(t *testing.T) {
	pairs := [][2]geo.Latlong{
		{ {Lat:0,Long:0},          {Lat:0,Long:180} },
		{ {Lat:10,Long:20},        {Lat:-10,Long:-160} },
		{ {Lat:37.6189,Long:-122.3750}, {Lat:-37.6189,Long:57.6250} },
		{ {Lat:45,Long:45},        {Lat:-45,Long:-135} },
		{ {Lat:51.4706,Long:-0.4619}, {Lat:51.4706,Long:-0.4619} },
		{ {Lat:0.1,Long:0.1},      {Lat:0.1,Long:0.1} },
	}

	for _,p := range pairs {
		d := AngularSeparation(p[0], p[1])
		if math.IsNaN(d) || d < 0 || d > math.Pi {
			t.Errorf("%v -> %v: separation %v outside [0,pi]", p[0], p[1], d)
		}
	}
}

func TestAngularSeparationMatchesS2(t *testing.T) {
	pairs := [][2]geo.Latlong{
		{ {Lat:37.6189,Long:-122.3750}, {Lat:51.4706,Long:-0.4619} },
		{ {Lat:33.9425,Long:-118.4081}, {Lat:40.6398,Long:-73.7789} },
		{ {Lat:-33.9461,Long:151.1772}, {Lat:1.3644,Long:103.9915} },
	}
	for _,p := range pairs {
		expected := s2.LatLngFromDegrees(p[0].Lat, p[0].Long).Distance(s2.LatLngFromDegrees(p[1].Lat, p[1].Long))
		if actual := AngularSeparation(p[0], p[1]); math.Abs(actual - expected.Radians()) > 1e-9 {
			t.Errorf("%v -> %v: expected %f, got %f", p[0], p[1], expected.Radians(), actual)
		}
	}
}

func TestGreatCirclePoints(t *testing.T) {
	from := geo.Latlong{Lat:37.6189, Long:-122.3750}  // KSFO
	to   := geo.Latlong{Lat:51.4706,   Long:-0.4619}  // EGLL
	n := 101

	pts := GreatCirclePoints(from, to, n)
	if len(pts) != n {
		t.Fatalf("expected %d points, got %d", n, len(pts))
	}
	if !near(pts[0], from, kTolerance) || !near(pts[n-1], to, kTolerance) {
		t.Errorf("endpoints wrong: %v, %v", pts[0], pts[n-1])
	}

	// Evenly spaced by angle
	d := AngularSeparation(from, to)
	step := d / float64(n-1)
	for i := range pts[1:] {
		if s := AngularSeparation(pts[i], pts[i+1]); math.Abs(s - step) > 1e-7 {
			t.Errorf("step %d was %f, expected %f", i, s, step)
		}
	}

	// The polar route goes well north of both endpoints
	if mid := pts[n/2]; mid.Lat < 60 {
		t.Errorf("expected the midpoint to be north of 60, got %v", mid)
	}

	// Cross-check the midpoint against s2's slerp
	a := s2.PointFromLatLng(s2.LatLngFromDegrees(from.Lat, from.Long))
	b := s2.PointFromLatLng(s2.LatLngFromDegrees(to.Lat, to.Long))
	ll := s2.LatLngFromPoint(s2.Interpolate(0.5, a, b))
	expected := geo.Latlong{Lat:ll.Lat.Degrees(), Long:ll.Lng.Degrees()}
	if !near(pts[n/2], expected, 1e-6) {
		t.Errorf("midpoint %v, s2 says %v", pts[n/2], expected)
	}
}

func TestRouteSetArc(t *testing.T) {
	as := testAirports()
	rs,err := Resolve(RouteCounts{"KJFK":1}, "KLAX", as)
	if err != nil { t.Fatalf("Resolve: %v", err) }

	arc := rs.Arc(rs.Routes[0], DefaultArcPoints)
	if len(arc) != DefaultArcPoints {
		t.Fatalf("expected %d points, got %d", DefaultArcPoints, len(arc))
	}
	if !near(arc[0], as["KLAX"].Latlong, kTolerance) || !near(arc[len(arc)-1], as["KJFK"].Latlong, kTolerance) {
		t.Errorf("arc doesn't run KLAX->KJFK: %v ... %v", arc[0], arc[len(arc)-1])
	}
}
