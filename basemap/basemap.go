// Package basemap holds the geography drawn underneath the routes: land polygons and
// boundary lines, from a GeoJSON file or an ESRI shapefile (e.g. Natural Earth's
// ne_50m_land), plus a graticule.
package basemap

import(
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/skypies/geo"
	"github.com/skypies/routemap/fileio"
)

// A Ring is a closed loop of points; the last point need not repeat the first.
type Ring []geo.Latlong

// A Polygon is a set of rings, filled with the even-odd rule, so holes come out as holes.
type Polygon []Ring

type Basemap struct {
	Land    []Polygon
	Lines [][]geo.Latlong // coastlines, borders; anything that's stroked, not filled
}

func New() *Basemap { return &Basemap{Land:[]Polygon{}, Lines:[][]geo.Latlong{}} }

func (bm *Basemap)String() string {
	return fmt.Sprintf("basemap: %d land polygons, %d lines", len(bm.Land), len(bm.Lines))
}

func (bm *Basemap)Add(bm2 *Basemap) {
	bm.Land  = append(bm.Land,  bm2.Land...)
	bm.Lines = append(bm.Lines, bm2.Lines...)
}

// {{{ Load

// Load picks a reader based on the file extension. Shapefiles must be local, as the .shx
// index has to sit next to the .shp.
func Load(ctx context.Context, name string, opts fileio.Options) (*Basemap, error) {
	ext := strings.ToLower(path.Ext(strings.TrimSuffix(strings.ToLower(name), ".gz")))

	switch ext {
	case ".shp":
		if fileio.IsGCS(name) {
			return nil, fmt.Errorf("basemap %s: shapefiles can't be read from GCS", name)
		}
		return LoadShapefile(name)

	case ".json", ".geojson":
		data,err := fileio.ReadAll(ctx, name, opts)
		if err != nil { return nil, fmt.Errorf("basemap: %w", err) }
		return ReadGeoJSON(data)

	default:
		return nil, fmt.Errorf("basemap %s: don't know how to read '%s' files", name, ext)
	}
}

// }}}
// {{{ Graticule

// Graticule returns meridians and parallels every stepDeg degrees. Each line is sampled
// every degree, so it stays a line after projection.
func Graticule(stepDeg float64) [][]geo.Latlong {
	lines := [][]geo.Latlong{}
	if stepDeg <= 0 { return lines }

	for long := -180.0; long <= 180.0; long += stepDeg {
		line := []geo.Latlong{}
		for lat := -90.0; lat <= 90.0; lat += 1.0 {
			line = append(line, geo.Latlong{Lat:lat, Long:long})
		}
		lines = append(lines, line)
	}

	for lat := -90.0; lat <= 90.0; lat += stepDeg {
		line := []geo.Latlong{}
		for long := -180.0; long <= 180.0; long += 1.0 {
			line = append(line, geo.Latlong{Lat:lat, Long:long})
		}
		lines = append(lines, line)
	}

	return lines
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
