package render

import(
	"fmt"
	"strconv"
	"strings"
)

// Style is the palette and the fixed sizes; everything that scales with route frequency
// is computed from t in the functions below.
type Style struct {
	Background  string
	Land        string
	Ocean       string
	Coast       string
	Border      string
	Gridline    string
	Marker      string
	Text        string
	Home        string

	CoastWidth     float64
	BorderWidth    float64
	GridlineWidth  float64
	GridlineAlpha  float64
	FrameWidth     float64
	GraticuleStep  float64 // degrees
}

var DarkStyle = Style{
	Background: "#0a0e17",
	Land:       "#1a1f2e",
	Ocean:      "#0d1321",
	Coast:      "#2a3a5c",
	Border:     "#1e2a45",
	Gridline:   "#1e2a45",
	Marker:     "#00f0ff",
	Text:       "#e0e6f0",
	Home:       "#ffaa00",

	CoastWidth:    0.4,
	BorderWidth:   0.2,
	GridlineWidth: 0.3,
	GridlineAlpha: 0.6,
	FrameWidth:    0.8,
	GraticuleStep: 30,
}

const kWhite = "#ffffff"

var(
	// Each route gets these translucent strokes underneath it, scaled by GlowScale(t)
	GlowLayers = []struct{ Width, Alpha float64 }{
		{8, 0.06},
		{5, 0.12},
		{3, 0.20},
	}
)

// {{{ RouteColor, GlowScale, RouteWidth, RouteAlpha

// RouteColor runs from a dim blue-purple for rare routes to a hot pink for the busiest.
func RouteColor(t float64) string {
	r := int(80 + 175*t)
	g := int(30 + 15*t*t)
	b := int(120 + 135*(1 - t*0.3))
	return fmt.Sprintf("#%02x%02x%02x", clampByte(r), clampByte(g), clampByte(b))
}

func GlowScale(t float64) float64 { return 0.3 + 0.7*t }
func RouteWidth(t float64) float64 { return 0.8 + 1.5*t }
func RouteAlpha(t float64) float64 { return 0.5 + 0.5*t }

// }}}
// {{{ Marker{Size,Alpha}, Label{Size,Alpha}

func MarkerSize(t float64) float64 { return 4 + 6*t }
func MarkerAlpha(t float64) float64 { return 0.3 + 0.4*t }
func MarkerCoreSize(t float64) float64 { return 2 + 2*t }
func LabelSize(t float64) float64 { return 6 + 2*t }
func LabelAlpha(t float64) float64 { return 0.5 + 0.5*t }

// }}}
// {{{ parseHex

func clampByte(i int) int {
	if i < 0 { return 0 }
	if i > 255 { return 255 }
	return i
}

// parseHex turns "#rrggbb" (or "rrggbb") into components; anything it can't read is black.
func parseHex(s string) (r, g, b int) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 { return 0,0,0 }
	v,err := strconv.ParseUint(s, 16, 32)
	if err != nil { return 0,0,0 }
	return int(v>>16 & 0xff), int(v>>8 & 0xff), int(v & 0xff)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
