package ingest

import(
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/skypies/geo"
	"github.com/skypies/routemap"
)

// {{{ notes

/* The airports table is the OurAirports dump (https://ourairports.com/data/):

  "id","ident","type","name","latitude_deg","longitude_deg","elevation_ft",
  "continent","iso_country","iso_region","municipality","scheduled_service",
  "icao_code","iata_code","gps_code","local_code","home_link","wikipedia_link","keywords"

We key on icao_code, falling back to gps_code (lots of small fields only have the
latter), and only keep four character codes.

 */

// }}}

const(
	ColIcaoCode  = "icao_code"
	ColGpsCode   = "gps_code"
	ColLatitude  = "latitude_deg"
	ColLongitude = "longitude_deg"
)

// {{{ ReadAirports

// ReadAirports loads the coordinate table, skipping any row without a usable code or
// with coordinates that don't parse. The int is how many rows were skipped.
func ReadAirports(rdr io.Reader) (routemap.Airports, int, error) {
	rowReader := NewRowReader(rdr)
	if err := rowReader.Require(ColLatitude, ColLongitude); err != nil {
		return nil, 0, fmt.Errorf("airports: %w", err)
	}
	if !rowReader.HasColumn(ColIcaoCode) && !rowReader.HasColumn(ColGpsCode) {
		return nil, 0, fmt.Errorf("airports: %w '%s' or '%s'", ErrMissingColumn, ColIcaoCode, ColGpsCode)
	}

	airports := routemap.Airports{}
	nSkipped := 0

	for {
		row,err := rowReader.Read()
		if err == io.EOF { break }
		if err != nil { return nil, nSkipped, fmt.Errorf("airports: %w", err) }

		if pos,code,ok := row.airport(); ok {
			airports.Add(code, pos)
		} else {
			nSkipped++
		}
	}

	return airports, nSkipped+rowReader.NumBadRows, nil
}

// }}}
// {{{ row.airport

func (r Row)airport() (geo.Latlong, string, bool) {
	code := r.Get(ColIcaoCode)
	if code == "" { code = r.Get(ColGpsCode) }
	code = routemap.NormalizeCode(code)
	if len(code) != 4 { return geo.Latlong{}, "", false }

	lat,err1  := strconv.ParseFloat(r.Get(ColLatitude), 64)
	long,err2 := strconv.ParseFloat(r.Get(ColLongitude), 64)
	if err1 != nil || err2 != nil { return geo.Latlong{}, "", false }
	if math.IsNaN(lat) || math.IsNaN(long) || math.Abs(lat) > 90 || math.Abs(long) > 180 {
		return geo.Latlong{}, "", false
	}

	return geo.Latlong{Lat:lat, Long:long}, code, true
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
