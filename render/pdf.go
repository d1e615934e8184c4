package render

import(
	"io"

	"github.com/jung-kurt/gofpdf"
)

// https://godoc.org/github.com/jung-kurt/gofpdf

// PDFCanvas draws onto a single page sized to the Page, with "pt" as the unit, so
// nothing needs scaling.
type PDFCanvas struct {
	*gofpdf.Fpdf        // Embed the thing we're writing to
}

func NewPDFCanvas(p Page) *PDFCanvas {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr: "pt",
		Size: gofpdf.SizeType{Wd:p.W(), Ht:p.H()},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	return &PDFCanvas{pdf}
}

func (c PDFCanvas)setAlpha(opacity float64) { c.SetAlpha(opacity, "Normal") }

// {{{ canvas methods

func (c PDFCanvas)FillRect(x, y, w, h float64, color string, opacity float64) {
	r,g,b := parseHex(color)
	c.setAlpha(opacity)
	c.SetFillColor(r, g, b)
	c.Rect(x, y, w, h, "F")
}

func (c PDFCanvas)StrokeRect(x, y, w, h float64, color string, width float64) {
	r,g,b := parseHex(color)
	c.setAlpha(1.0)
	c.SetDrawColor(r, g, b)
	c.SetLineWidth(width)
	c.Rect(x, y, w, h, "D")
}

func (c PDFCanvas)FillPolygon(rings [][]XY, color string, opacity float64) {
	r,g,b := parseHex(color)
	c.setAlpha(opacity)
	c.SetFillColor(r, g, b)

	drew := false
	for _,ring := range rings {
		if len(ring) < 3 { continue }
		c.MoveTo(ring[0].X, ring[0].Y)
		for _,pt := range ring[1:] {
			c.LineTo(pt.X, pt.Y)
		}
		c.ClosePath()
		drew = true
	}
	if drew { c.DrawPath("F*") }
}

func (c PDFCanvas)StrokePath(pts []XY, color string, width, opacity float64) {
	if len(pts) < 2 { return }
	r,g,b := parseHex(color)
	c.setAlpha(opacity)
	c.SetDrawColor(r, g, b)
	c.SetLineWidth(width)

	c.MoveTo(pts[0].X, pts[0].Y)
	for _,pt := range pts[1:] {
		c.LineTo(pt.X, pt.Y)
	}
	c.DrawPath("D")
}

func (c PDFCanvas)Dot(x, y, diameter float64, color string, opacity float64) {
	r,g,b := parseHex(color)
	c.setAlpha(opacity)
	c.SetFillColor(r, g, b)
	c.Circle(x, y, diameter/2.0, "F")
}

func (c PDFCanvas)Text(str string, x, y, size float64, bold bool, color string, opacity, ax, ay float64) {
	style := ""
	if bold { style = "B" }
	c.SetFont("Courier", style, size)

	r,g,b := parseHex(color)
	c.setAlpha(opacity)
	c.SetTextColor(r, g, b)

	// No text metrics for the height; the cap height of Courier is about 0.6em
	w := c.GetStringWidth(str)
	c.Fpdf.Text(x - ax*w, y + ay*size*0.6, str)
}

func (c PDFCanvas)ClipRect(x, y, w, h float64) { c.Fpdf.ClipRect(x, y, w, h, false) }
func (c PDFCanvas)Unclip() { c.ClipEnd() }

// }}}

func (c PDFCanvas)Encode(w io.Writer) error {
	c.setAlpha(1.0)
	return c.Output(w)
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
