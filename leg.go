package routemap

import "fmt"

// A Leg is one line from the logbook: a flight from one airport to another.
type Leg struct {
	Departure string
	Arrival   string
	Date      string // Whatever the logbook had in its date column, if anything
}

// NewLeg normalizes both codes; the bool is false if either ends up empty.
func NewLeg(dep, arr string) (Leg,bool) {
	l := Leg{Departure:NormalizeCode(dep), Arrival:NormalizeCode(arr)}
	return l, (l.Departure != "" && l.Arrival != "")
}

func (l Leg)String() string { return fmt.Sprintf("%s-%s", l.Departure, l.Arrival) }

// Touches returns the other end of the leg, if one end is home.
func (l Leg)Touches(home string) (string,bool) {
	switch home {
	case l.Departure: return l.Arrival, true
	case l.Arrival:   return l.Departure, true
	default:          return "", false
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
