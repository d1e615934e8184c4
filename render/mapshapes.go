package render

import(
	"fmt"

	"github.com/skypies/geo"
)

// MapShapes is a single thing that contains all the things we want to render on a map.
// Everything is in lat/long; sizes and widths are in points (1/72 inch). Within each
// slice, things are drawn in order; polygons go first, then lines, points and labels.
type MapShapes struct {
	Extent

	Background  string  // hex colour of the page
	Ocean       string  // hex colour of the map area, under any land

	Polygons  []MapPolygon
	Lines     []MapLine
	Points    []MapPoint
	Labels    []MapLabel

	Frame       MapFrame
	Title       MapLabel // Pos is ignored; the title sits centered above the map
}

// {{{ NewMapShapes

func NewMapShapes() *MapShapes {
	ms := MapShapes{
		Extent: GlobalExtent,
		Polygons: []MapPolygon{},
		Lines: []MapLine{},
		Points: []MapPoint{},
		Labels: []MapLabel{},
	}
	return &ms
}

// }}}
// {{{ ms.Add [Polygon,Line,Point,Label]

func (ms1 *MapShapes)Add(ms2 *MapShapes) {
	ms1.Polygons = append(ms1.Polygons, ms2.Polygons...)
	ms1.Lines    = append(ms1.Lines,    ms2.Lines...)
	ms1.Points   = append(ms1.Points,   ms2.Points...)
	ms1.Labels   = append(ms1.Labels,   ms2.Labels...)
}

func (ms1 *MapShapes)AddPolygon(mp MapPolygon) { ms1.Polygons = append(ms1.Polygons, mp) }
func (ms1 *MapShapes)AddLine(ml MapLine) { ms1.Lines = append(ms1.Lines, ml) }
func (ms1 *MapShapes)AddPoint(mp MapPoint) { ms1.Points = append(ms1.Points, mp) }
func (ms1 *MapShapes)AddLabel(ml MapLabel) { ms1.Labels = append(ms1.Labels, ml) }

func (ms MapShapes)String() string {
	return fmt.Sprintf("MapShapes{%s, %d polygons, %d lines, %d points, %d labels}",
		ms.Extent, len(ms.Polygons), len(ms.Lines), len(ms.Points), len(ms.Labels))
}

// }}}

// {{{ Extent{}

// Extent is the lat/long box the map shows.
type Extent struct {
	MinLat, MaxLat   float64
	MinLong, MaxLong float64
}

var GlobalExtent = Extent{MinLat:-90, MaxLat:90, MinLong:-180, MaxLong:180}

func (e Extent)String() string {
	return fmt.Sprintf("[%.1f,%.1f]-[%.1f,%.1f]", e.MinLat, e.MinLong, e.MaxLat, e.MaxLong)
}
func (e Extent)Width() float64 { return e.MaxLong - e.MinLong }
func (e Extent)Height() float64 { return e.MaxLat - e.MinLat }

// }}}
// {{{ MapPolygon{}

type MapPolygon struct {
	Rings [][]geo.Latlong // filled with the even-odd rule

	Color        string  `json:"color"`
	Opacity      float64 `json:"opacity"`
}

// }}}
// {{{ MapLine{}

type MapLine struct {
	Path  []geo.Latlong `json:"path"`

	Color        string  `json:"color"`    // A hex color value (e.g. "#ff8822")
	Opacity      float64 `json:"opacity"`
	Width        float64 `json:"width"`
}

// }}}
// {{{ MapPoint{}

// A MapPoint is a filled circle.
type MapPoint struct {
	Pos   geo.Latlong

	Color        string
	Opacity      float64
	Size         float64 // diameter
}

// }}}
// {{{ MapLabel{}

// A MapLabel is drawn with its baseline starting at Pos.
type MapLabel struct {
	Pos   geo.Latlong
	Text  string

	Color        string
	Opacity      float64
	Size         float64
	Bold         bool
}

// }}}
// {{{ MapFrame{}

type MapFrame struct {
	Color        string
	Width        float64
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
