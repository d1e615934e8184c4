// This package contains the types and core logic for turning a pilot logbook into a
// set of routes from a home airport. No rendering, no I/O.
package routemap

import "errors"

const(
	// How many points are sampled along each great circle arc, unless told otherwise
	DefaultArcPoints = 100

	// Below this angular separation (radians) two points are treated as the same place
	DegenerateSeparation = 1e-10
)

var(
	ErrEmptyLogbook = errors.New("logbook has no legs")
	ErrNoRoutes     = errors.New("no routes")
)

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
