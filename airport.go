package routemap

import(
	"fmt"
	"strings"

	"github.com/skypies/geo"
)

// An Airport is a named point; the name is its four character ICAO code.
type Airport struct {
	Code string
	geo.Latlong
}

func (a Airport)String() string {
	return fmt.Sprintf("%s(%.4f,%.4f)", a.Code, a.Lat, a.Long)
}

// NamedLatlong is handy for anything in skypies/geo that wants a labelled point.
func (a Airport)NamedLatlong() geo.NamedLatlong {
	return geo.NamedLatlong{Name:a.Code, Latlong:a.Latlong}
}

// Airports is the static lookup table, keyed by code.
type Airports map[string]Airport

func (as Airports)Add(code string, pos geo.Latlong) {
	code = NormalizeCode(code)
	as[code] = Airport{Code:code, Latlong:pos}
}

func (as Airports)Lookup(code string) (Airport,bool) {
	a,exists := as[NormalizeCode(code)]
	return a,exists
}

// NormalizeCode trims whitespace and upper-cases an airport identifier.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
