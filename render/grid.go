package render

import(
	"math"

	"github.com/skypies/geo"
)

// Page describes the output; everything inside is laid out in points.
type Page struct {
	WidthIn, HeightIn float64
	DPI               float64 // only matters for raster output
}

var DefaultPage = Page{WidthIn:16, HeightIn:8, DPI:200}

func (p Page)W() float64 { return p.WidthIn * 72.0 }
func (p Page)H() float64 { return p.HeightIn * 72.0 }

// Pixel dimensions of a raster rendering
func (p Page)Pixels() (int,int) {
	return int(math.Round(p.WidthIn*p.DPI)), int(math.Round(p.HeightIn*p.DPI))
}

const(
	kMarginPt     = 18.0
	kTitlePadPt   = 15.0
)

// Describes the map area on the page, and the location of its top-left corner in page
// space. Long is mapped onto U, lat onto V; page V goes down, lat goes up.
type Grid struct {
	OffsetU     float64 // where the origin (top-left) should be, in page coords
	OffsetV     float64
	W,H         float64 // width and height of the map area, in points

	MinX,MinY,MaxX,MaxY float64 // the range of longs (X) and lats (Y) scaled onto the grid
}

// {{{ NewGrid

// NewGrid fits the extent into the page, below a band for the title, keeping one degree
// of long the same length as one degree of lat (plate carrée).
func NewGrid(p Page, e Extent, titleSize float64) Grid {
	top := kMarginPt
	if titleSize > 0 { top += titleSize + kTitlePadPt }

	availW := p.W() - 2*kMarginPt
	availH := p.H() - top - kMarginPt
	if availW < 1 { availW = 1 }
	if availH < 1 { availH = 1 }

	scale := math.Min(availW / e.Width(), availH / e.Height()) // points per degree
	g := Grid{
		W: e.Width() * scale,
		H: e.Height() * scale,
		MinX: e.MinLong, MaxX: e.MaxLong,
		MinY: e.MinLat,  MaxY: e.MaxLat,
	}
	g.OffsetU = kMarginPt + (availW - g.W)/2.0
	g.OffsetV = top + (availH - g.H)/2.0

	return g
}

// }}}
// {{{ g.U, V, UV

// the bools are whether the coords are out-of-bounds for the grid.
func (g Grid)U(x float64) (float64, bool) {
	// Scale the X value to [0.0, 1.0], then map into page coords
	xRatio := (x - g.MinX) / (g.MaxX - g.MinX)
	u := g.OffsetU + (xRatio * g.W)
	return u, (xRatio<0 || xRatio>1)
}

func (g Grid)V(y float64) (float64, bool) {
	yRatio := (y - g.MinY) / (g.MaxY - g.MinY)
	v := g.OffsetV + (g.H - (yRatio * g.H))
	return v, (yRatio<0 || yRatio>1)
}

func (g Grid)UV(pos geo.Latlong) (float64, float64, bool) {
	u,oobU := g.U(pos.Long)
	v,oobV := g.V(pos.Lat)
	return u, v, (oobU || oobV)
}

// }}}
// {{{ g.Project

type XY struct { X,Y float64 }

func (g Grid)Project(path []geo.Latlong) []XY {
	ret := make([]XY, len(path))
	for i,pos := range path {
		ret[i].X, ret[i].Y, _ = g.UV(pos)
	}
	return ret
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
