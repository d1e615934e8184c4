package render

import(
	"fmt"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
)

// PNGCanvas draws with gg; points are scaled by DPI/72 into pixels.
type PNGCanvas struct {
	dc      *gg.Context
	scale    float64

	regular *truetype.Font
	bold    *truetype.Font
	faces    map[string]font.Face
}

func NewPNGCanvas(p Page) (*PNGCanvas, error) {
	if p.DPI <= 0 {
		return nil, fmt.Errorf("render: bad DPI %.1f", p.DPI)
	}
	w,h := p.Pixels()
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("render: page is %dx%d pixels", w, h)
	}

	regular,err := truetype.Parse(gomono.TTF)
	if err != nil { return nil, fmt.Errorf("render: font: %v", err) }
	bold,err := truetype.Parse(gomonobold.TTF)
	if err != nil { return nil, fmt.Errorf("render: font: %v", err) }

	c := PNGCanvas{
		dc: gg.NewContext(w, h),
		scale: p.DPI / 72.0,
		regular: regular,
		bold: bold,
		faces: map[string]font.Face{},
	}
	c.dc.SetLineCapRound()
	c.dc.SetLineJoinRound()

	return &c, nil
}

func (c *PNGCanvas)setColor(color string, opacity float64) {
	r,g,b := parseHex(color)
	c.dc.SetRGBA(float64(r)/255.0, float64(g)/255.0, float64(b)/255.0, opacity)
}

func (c *PNGCanvas)face(size float64, bold bool) font.Face {
	key := fmt.Sprintf("%.2f/%v", size, bold)
	if f,exists := c.faces[key]; exists { return f }

	ttf := c.regular
	if bold { ttf = c.bold }
	f := truetype.NewFace(ttf, &truetype.Options{Size: size * c.scale})
	c.faces[key] = f
	return f
}

// {{{ canvas methods

func (c *PNGCanvas)FillRect(x, y, w, h float64, color string, opacity float64) {
	s := c.scale
	c.setColor(color, opacity)
	c.dc.DrawRectangle(x*s, y*s, w*s, h*s)
	c.dc.Fill()
}

func (c *PNGCanvas)StrokeRect(x, y, w, h float64, color string, width float64) {
	s := c.scale
	c.setColor(color, 1.0)
	c.dc.SetLineWidth(width*s)
	c.dc.DrawRectangle(x*s, y*s, w*s, h*s)
	c.dc.Stroke()
}

func (c *PNGCanvas)FillPolygon(rings [][]XY, color string, opacity float64) {
	s := c.scale
	for _,ring := range rings {
		if len(ring) < 3 { continue }
		c.dc.NewSubPath()
		c.dc.MoveTo(ring[0].X*s, ring[0].Y*s)
		for _,pt := range ring[1:] {
			c.dc.LineTo(pt.X*s, pt.Y*s)
		}
		c.dc.ClosePath()
	}
	c.setColor(color, opacity)
	c.dc.SetFillRuleEvenOdd()
	c.dc.Fill()
}

func (c *PNGCanvas)StrokePath(pts []XY, color string, width, opacity float64) {
	if len(pts) < 2 { return }
	s := c.scale
	c.dc.MoveTo(pts[0].X*s, pts[0].Y*s)
	for _,pt := range pts[1:] {
		c.dc.LineTo(pt.X*s, pt.Y*s)
	}
	c.setColor(color, opacity)
	c.dc.SetLineWidth(width*s)
	c.dc.Stroke()
}

func (c *PNGCanvas)Dot(x, y, diameter float64, color string, opacity float64) {
	s := c.scale
	c.setColor(color, opacity)
	c.dc.DrawCircle(x*s, y*s, diameter*s/2.0)
	c.dc.Fill()
}

func (c *PNGCanvas)Text(str string, x, y, size float64, bold bool, color string, opacity, ax, ay float64) {
	s := c.scale
	c.dc.SetFontFace(c.face(size, bold))
	c.setColor(color, opacity)
	c.dc.DrawStringAnchored(str, x*s, y*s, ax, ay)
}

func (c *PNGCanvas)ClipRect(x, y, w, h float64) {
	s := c.scale
	c.dc.DrawRectangle(x*s, y*s, w*s, h*s)
	c.dc.Clip()
}

func (c *PNGCanvas)Unclip() { c.dc.ResetClip() }

// }}}

func (c *PNGCanvas)Encode(w io.Writer) error { return c.dc.EncodePNG(w) }

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
