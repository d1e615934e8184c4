package render

import(
	"fmt"
	"math"

	gogeo "github.com/paulmach/go.geo"
	"github.com/paulmach/go.geo/reducers"
	"github.com/skypies/geo"

	"github.com/skypies/routemap"
	"github.com/skypies/routemap/basemap"
)

type Options struct {
	LabelMin     int     // destinations with fewer legs than this go unlabelled
	ArcPoints    int     // samples per great circle, before simplification
	SimplifyDeg  float64 // Douglas-Peucker threshold, in degrees; zero to keep every point
	Fit          bool    // zoom to the routes, instead of showing the whole world
	FitPadDeg    float64
	Title        string  // if empty, derived from the home airport
	Basemap     *basemap.Basemap
	Style
}

func DefaultOptions() Options {
	return Options{
		LabelMin: 10,
		ArcPoints: routemap.DefaultArcPoints,
		SimplifyDeg: 0.01,
		FitPadDeg: 5,
		Style: DarkStyle,
	}
}

const(
	kTitleSize      = 16.0
	kHomeLabelSize  = 11.0

	// Labels sit below and to the right of their marker; offsets are in degrees
	kLabelOffsetLong     =  1.5
	kLabelOffsetLat      = -3.5
	kHomeLabelOffsetLong =  2.0
	kHomeLabelOffsetLat  = -4.5

	kFitMinSpanDeg = 10.0
)

// {{{ BuildScene

// BuildScene lays out everything for a set of routes. Routes are drawn in the RouteSet's
// order, so the busiest end up on top.
func BuildScene(rs routemap.RouteSet, opts Options) *MapShapes {
	ms := NewMapShapes()
	st := opts.Style

	ms.Background = st.Background
	ms.Ocean = st.Ocean
	ms.Frame = MapFrame{Color:st.Coast, Width:st.FrameWidth}
	ms.Title = MapLabel{Text:opts.Title, Color:st.Text, Opacity:1.0, Size:kTitleSize, Bold:true}
	if ms.Title.Text == "" {
		ms.Title.Text = fmt.Sprintf("%s  ///  ROUTE MAP", rs.Home.Code)
	}

	if opts.Basemap != nil {
		ms.Add(basemapShapes(opts.Basemap, st))
	}
	for _,line := range basemap.Graticule(st.GraticuleStep) {
		ms.AddLine(MapLine{Path:line, Color:st.Gridline, Opacity:st.GridlineAlpha, Width:st.GridlineWidth})
	}

	arcs := map[string][][]geo.Latlong{}
	for _,r := range rs.Routes {
		arcs[r.Code] = SplitAtAntimeridian(rs.Arc(r, opts.ArcPoints))
		for i,piece := range arcs[r.Code] {
			arcs[r.Code][i] = Simplify(piece, opts.SimplifyDeg)
		}
	}

	if opts.Fit {
		ms.Extent = fitExtent(rs, arcs, opts.FitPadDeg)
	}

	// Routes, dim first; glow layers, then the core line
	for _,r := range rs.Routes {
		t := rs.Ratio(r)
		color := RouteColor(t)
		glow := GlowScale(t)

		for _,piece := range arcs[r.Code] {
			for _,layer := range GlowLayers {
				ms.AddLine(MapLine{Path:piece, Color:color, Width:layer.Width*glow, Opacity:layer.Alpha*glow})
			}
			ms.AddLine(MapLine{Path:piece, Color:color, Width:RouteWidth(t), Opacity:RouteAlpha(t)})
		}
	}

	// Destination markers
	for _,r := range rs.Routes {
		t := rs.Ratio(r)
		ms.AddPoint(MapPoint{Pos:r.Latlong, Color:st.Marker, Opacity:MarkerAlpha(t), Size:MarkerSize(t)})
		ms.AddPoint(MapPoint{Pos:r.Latlong, Color:kWhite, Opacity:1.0, Size:MarkerCoreSize(t)})

		if r.Count >= opts.LabelMin {
			ms.AddLabel(MapLabel{
				Pos: geo.Latlong{Lat:r.Lat + kLabelOffsetLat, Long:r.Long + kLabelOffsetLong},
				Text: r.Code,
				Color: st.Marker,
				Opacity: LabelAlpha(t),
				Size: LabelSize(t),
				Bold: true,
			})
		}
	}

	// Home base
	home := rs.Home.Latlong
	ms.AddPoint(MapPoint{Pos:home, Color:st.Home, Opacity:0.15, Size:22})
	ms.AddPoint(MapPoint{Pos:home, Color:st.Home, Opacity:0.4,  Size:12})
	ms.AddPoint(MapPoint{Pos:home, Color:kWhite,  Opacity:1.0,  Size:5})
	ms.AddLabel(MapLabel{
		Pos: geo.Latlong{Lat:home.Lat + kHomeLabelOffsetLat, Long:home.Long + kHomeLabelOffsetLong},
		Text: rs.Home.Code,
		Color: st.Home,
		Opacity: 1.0,
		Size: kHomeLabelSize,
		Bold: true,
	})

	return ms
}

// }}}
// {{{ basemapShapes

// Land is filled, and its outline drawn as coastline; the basemap's lines are borders.
func basemapShapes(bm *basemap.Basemap, st Style) *MapShapes {
	ms := NewMapShapes()

	for _,poly := range bm.Land {
		mp := MapPolygon{Color:st.Land, Opacity:1.0}
		for _,ring := range poly {
			mp.Rings = append(mp.Rings, []geo.Latlong(ring))
		}
		ms.AddPolygon(mp)
	}

	for _,poly := range bm.Land {
		for _,ring := range poly {
			if len(ring) == 0 { continue }
			closed := append([]geo.Latlong{}, ring...)
			closed = append(closed, ring[0])
			ms.AddLine(MapLine{Path:closed, Color:st.Coast, Opacity:1.0, Width:st.CoastWidth})
		}
	}

	for _,line := range bm.Lines {
		ms.AddLine(MapLine{Path:line, Color:st.Border, Opacity:1.0, Width:st.BorderWidth})
	}

	return ms
}

// }}}
// {{{ Simplify

// Simplify runs Douglas-Peucker over the path, treating lat/long as planar, which is fine
// at the scale of a pixel or two.
func Simplify(path []geo.Latlong, thresholdDeg float64) []geo.Latlong {
	if thresholdDeg <= 0 || len(path) < 3 { return path }

	p := gogeo.NewPath()
	for _,pos := range path {
		p.Push(gogeo.NewPoint(pos.Long, pos.Lat))
	}

	ret := []geo.Latlong{}
	for _,pt := range reducers.DouglasPeucker(p, thresholdDeg).Points() {
		ret = append(ret, geo.Latlong{Lat:pt.Lat(), Long:pt.Lng()})
	}
	return ret
}

// }}}
// {{{ fitExtent

// fitExtent is the padded bounding box of everything we'll draw, kept on the planet,
// and at least a few degrees across.
func fitExtent(rs routemap.RouteSet, arcs map[string][][]geo.Latlong, padDeg float64) Extent {
	home := rs.Home.Latlong
	b := gogeo.NewBound(home.Long, home.Long, home.Lat, home.Lat)

	for _,r := range rs.Routes {
		b.Extend(gogeo.NewPoint(r.Long, r.Lat))
		for _,piece := range arcs[r.Code] {
			for _,pos := range piece {
				b.Extend(gogeo.NewPoint(pos.Long, pos.Lat))
			}
		}
	}
	b.Pad(padDeg)

	e := Extent{
		MinLat:  math.Max(-90,  b.Bottom()),
		MaxLat:  math.Min( 90,  b.Top()),
		MinLong: math.Max(-180, b.Left()),
		MaxLong: math.Min( 180, b.Right()),
	}

	if grow := kFitMinSpanDeg - e.Width(); grow > 0 {
		e.MinLong = math.Max(-180, e.MinLong - grow/2)
		e.MaxLong = math.Min( 180, e.MaxLong + grow/2)
	}
	if grow := kFitMinSpanDeg - e.Height(); grow > 0 {
		e.MinLat = math.Max(-90, e.MinLat - grow/2)
		e.MaxLat = math.Min( 90, e.MaxLat + grow/2)
	}

	return e
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
