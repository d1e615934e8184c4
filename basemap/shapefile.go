package basemap

import(
	"fmt"

	"github.com/jonas-p/go-shp"
	"github.com/skypies/geo"
)

// LoadShapefile reads polygons as land and polylines as lines; other shape types are
// skipped.
func LoadShapefile(name string) (*Basemap, error) {
	shapeFile, err := shp.Open(name)
	if err != nil {
		return nil, fmt.Errorf("basemap: failed to open shapefile: %w", err)
	}
	defer shapeFile.Close()

	bm := New()
	for shapeFile.Next() {
		_, shape := shapeFile.Shape()
		switch s := shape.(type) {
		case *shp.Polygon:
			p := Polygon{}
			for _,part := range splitParts(s.Parts, s.Points) {
				if len(part) >= 3 { p = append(p, Ring(part)) }
			}
			if len(p) > 0 { bm.Land = append(bm.Land, p) }

		case *shp.PolyLine:
			for _,part := range splitParts(s.Parts, s.Points) {
				if len(part) >= 2 { bm.Lines = append(bm.Lines, part) }
			}
		}
	}

	return bm,nil
}

// Shapefile parts are start offsets into one big points array; X is long, Y is lat.
func splitParts(parts []int32, points []shp.Point) [][]geo.Latlong {
	ret := [][]geo.Latlong{}
	for i,start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) { end = parts[i+1] }
		if start < 0 || start > end || end > int32(len(points)) { continue }

		part := []geo.Latlong{}
		for _,pt := range points[start:end] {
			part = append(part, geo.Latlong{Lat:pt.Y, Long:pt.X})
		}
		ret = append(ret, part)
	}
	return ret
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
