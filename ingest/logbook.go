package ingest

import(
	"fmt"
	"io"

	"github.com/skypies/routemap"
)

const(
	ColDeparture = "departure"
	ColArrival   = "arrival"
	ColDate      = "date"
)

// Logbook is what we got out of a logbook CSV.
type Logbook struct {
	Legs    []routemap.Leg
	NumRows   int // data rows read, good and bad
	NumSkipped int // rows without both a departure and an arrival
}

func (lb Logbook)String() string {
	return fmt.Sprintf("%d legs (%d rows, %d skipped)", len(lb.Legs), lb.NumRows, lb.NumSkipped)
}

// {{{ ReadLogbook

// ReadLogbook wants 'departure' and 'arrival' columns (in any case); everything else,
// apart from an optional 'date', is ignored.
func ReadLogbook(rdr io.Reader) (*Logbook, error) {
	rowReader := NewRowReader(rdr)
	if err := rowReader.Require(ColDeparture, ColArrival); err != nil {
		return nil, fmt.Errorf("logbook: %w", err)
	}

	lb := Logbook{Legs:[]routemap.Leg{}}
	for {
		row,err := rowReader.Read()
		if err == io.EOF { break }
		if err != nil { return nil, fmt.Errorf("logbook: row %d: %w", lb.NumRows+1, err) }

		lb.NumRows++
		leg,ok := routemap.NewLeg(row.Get(ColDeparture), row.Get(ColArrival))
		if !ok {
			lb.NumSkipped++
			continue
		}
		leg.Date = row.Get(ColDate)
		lb.Legs = append(lb.Legs, leg)
	}

	lb.NumRows += rowReader.NumBadRows
	lb.NumSkipped += rowReader.NumBadRows

	return &lb,nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
