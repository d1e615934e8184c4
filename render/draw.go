package render

import(
	"fmt"
	"io"
	"path"
	"strings"
)

// A canvas is anything we can draw a MapShapes onto. All coords and sizes are in points,
// with the origin at the top-left of the page; backends do any scaling. Opacity is [0,1].
type canvas interface {
	FillRect(x, y, w, h float64, color string, opacity float64)
	StrokeRect(x, y, w, h float64, color string, width float64)
	FillPolygon(rings [][]XY, color string, opacity float64)
	StrokePath(pts []XY, color string, width, opacity float64)
	Dot(x, y, diameter float64, color string, opacity float64)
	// The anchors are fractions of the text's width and height, as gg has them; (0,0)
	// puts the start of the baseline at x,y
	Text(s string, x, y, size float64, bold bool, color string, opacity, ax, ay float64)
	ClipRect(x, y, w, h float64)
	Unclip()
}

// {{{ ms.Draw

func (ms *MapShapes)Draw(c canvas, p Page) Grid {
	g := NewGrid(p, ms.Extent, ms.Title.Size)

	c.FillRect(0, 0, p.W(), p.H(), ms.Background, 1.0)

	c.ClipRect(g.OffsetU, g.OffsetV, g.W, g.H)
	c.FillRect(g.OffsetU, g.OffsetV, g.W, g.H, ms.Ocean, 1.0)

	for _,mp := range ms.Polygons {
		rings := [][]XY{}
		for _,ring := range mp.Rings {
			rings = append(rings, g.Project(ring))
		}
		c.FillPolygon(rings, mp.Color, mp.Opacity)
	}

	for _,ml := range ms.Lines {
		if len(ml.Path) < 2 { continue }
		c.StrokePath(g.Project(ml.Path), ml.Color, ml.Width, ml.Opacity)
	}

	for _,mp := range ms.Points {
		u,v,_ := g.UV(mp.Pos)
		c.Dot(u, v, mp.Size, mp.Color, mp.Opacity)
	}

	for _,ml := range ms.Labels {
		u,v,_ := g.UV(ml.Pos)
		c.Text(ml.Text, u, v, ml.Size, ml.Bold, ml.Color, ml.Opacity, 0, 0)
	}

	c.Unclip()

	if ms.Frame.Width > 0 {
		c.StrokeRect(g.OffsetU, g.OffsetV, g.W, g.H, ms.Frame.Color, ms.Frame.Width)
	}

	if ms.Title.Text != "" {
		c.Text(ms.Title.Text, g.OffsetU + g.W/2, g.OffsetV - kTitlePadPt, ms.Title.Size, ms.Title.Bold,
			ms.Title.Color, ms.Title.Opacity, 0.5, 0)
	}

	return g
}

// }}}

// {{{ Format

type Format int
const(
	PNG Format = iota
	PDF
)

func (f Format)String() string {
	switch f {
	case PNG: return "png"
	case PDF: return "pdf"
	default:  return "?"
	}
}

// FormatFor goes by the extension; anything that isn't a PDF is a PNG.
func FormatFor(name string) Format {
	if strings.ToLower(path.Ext(name)) == ".pdf" { return PDF }
	return PNG
}

// }}}
// {{{ Render

// Render draws the shapes and writes the encoded result to w.
func Render(w io.Writer, ms *MapShapes, p Page, f Format) error {
	if p.W() <= 0 || p.H() <= 0 {
		return fmt.Errorf("render: bad page size %.1fx%.1fin", p.WidthIn, p.HeightIn)
	}

	switch f {
	case PNG:
		c,err := NewPNGCanvas(p)
		if err != nil { return err }
		ms.Draw(c, p)
		return c.Encode(w)

	case PDF:
		c := NewPDFCanvas(p)
		ms.Draw(c, p)
		return c.Encode(w)

	default:
		return fmt.Errorf("render: unknown format %v", f)
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
