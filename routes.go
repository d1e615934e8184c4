package routemap

import(
	"fmt"
	"sort"
)

// RouteCounts maps a destination code to how many legs were flown between it and home,
// in either direction.
type RouteCounts map[string]int

// {{{ CountRoutes

// Legs that don't touch home are ignored.
func CountRoutes(legs []Leg, home string) RouteCounts {
	rc := RouteCounts{}
	for _,l := range legs {
		if other,ok := l.Touches(home); ok {
			rc[other]++
		}
	}
	return rc
}

// }}}
// {{{ rc.Total, rc.Codes

func (rc RouteCounts)Total() int {
	n := 0
	for _,v := range rc { n += v }
	return n
}

// Codes are sorted, so callers don't depend on map order.
func (rc RouteCounts)Codes() []string {
	codes := []string{}
	for k,_ := range rc { codes = append(codes, k) }
	sort.Strings(codes)
	return codes
}

// }}}

// A Route is a destination we have coordinates for, plus how often it was flown.
type Route struct {
	Airport
	Count int
}

// RouteSet is the aggregate after all codes have been resolved against the airports table.
type RouteSet struct {
	Home      Airport
	Routes  []Route   // ascending by count, then by code; the busiest route is last
	Missing []string  // codes dropped for lack of coordinates
	MaxCount  int
	TotalLegs int
}

func (rs RouteSet)String() string {
	return fmt.Sprintf("%s: %d destinations, %d legs (max %d)", rs.Home.Code, len(rs.Routes),
		rs.TotalLegs, rs.MaxCount)
}

// Ratio is the route's count normalized against the busiest route, in (0,1].
func (rs RouteSet)Ratio(r Route) float64 {
	if rs.MaxCount == 0 { return 0 }
	return float64(r.Count) / float64(rs.MaxCount)
}

// {{{ Resolve

// Resolve looks up coordinates for home and every destination. Unknown destinations are
// dropped, and reported in Missing; if home itself is unknown, every route is dropped.
// It is an error for nothing to survive.
func Resolve(rc RouteCounts, home string, airports Airports) (RouteSet,error) {
	rs := RouteSet{Routes:[]Route{}, Missing:[]string{}}

	if len(rc) == 0 {
		return rs, fmt.Errorf("%w found from/to %s", ErrNoRoutes, home)
	}

	homeAirport,homeKnown := airports.Lookup(home)
	if !homeKnown {
		homeAirport = Airport{Code:home}
		rs.Missing = append(rs.Missing, home)
	}
	rs.Home = homeAirport

	for _,code := range rc.Codes() {
		a,exists := airports.Lookup(code)
		if !exists || !homeKnown {
			if !exists && code != home { rs.Missing = append(rs.Missing, code) }
			continue
		}
		rs.Routes = append(rs.Routes, Route{Airport:a, Count:rc[code]})
	}

	sort.SliceStable(rs.Routes, func(i,j int) bool {
		if rs.Routes[i].Count != rs.Routes[j].Count {
			return rs.Routes[i].Count < rs.Routes[j].Count
		}
		return rs.Routes[i].Code < rs.Routes[j].Code
	})

	for _,r := range rs.Routes {
		rs.TotalLegs += r.Count
		if r.Count > rs.MaxCount { rs.MaxCount = r.Count }
	}

	if len(rs.Routes) == 0 {
		return rs, fmt.Errorf("%w left from/to %s after dropping %v", ErrNoRoutes, home, rs.Missing)
	}

	return rs,nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
