package routemap

// {{{ InferHome

// InferHome picks the most frequent departure airport. When several share the top
// count, the one that appeared first in the logbook wins.
func InferHome(legs []Leg) (string,error) {
	if len(legs) == 0 { return "", ErrEmptyLogbook }

	counts := map[string]int{}
	order := []string{}
	for _,l := range legs {
		if _,seen := counts[l.Departure]; !seen {
			order = append(order, l.Departure)
		}
		counts[l.Departure]++
	}

	best := order[0]
	for _,code := range order[1:] {
		if counts[code] > counts[best] { best = code }
	}
	return best,nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
