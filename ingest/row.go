package ingest

import(
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// {{{ notes

/* Both inputs are CSV with a header row, and the columns we care about move around
depending on who exported the file; so we turn each row into a map from header name
to value.

Header names are trimmed and lower-cased (and a leading UTF-8 BOM is dropped, since
spreadsheet exports love those). Rows with too few values just come back with the
missing columns absent; rows with too many have the extras ignored.

 */

// }}}

var ErrMissingColumn = errors.New("missing column")

type RowReader struct {
	csvreader  *csv.Reader
	headers   []string
	headerErr   error

	NumRows     int // rows successfully read
	NumBadRows  int // rows the csv parser choked on, which were skipped
}

func NewRowReader(ioreader io.Reader) *RowReader {
	rdr := RowReader{
		csvreader: csv.NewReader(ioreader),
	}
	rdr.csvreader.FieldsPerRecord = -1
	rdr.csvreader.LazyQuotes = true
	rdr.csvreader.TrimLeadingSpace = true

	headers,err := rdr.csvreader.Read()
	rdr.headerErr = err
	for i,h := range headers {
		if i == 0 { h = strings.TrimPrefix(h, "\ufeff") }
		rdr.headers = append(rdr.headers, strings.ToLower(strings.TrimSpace(h)))
	}
	return &rdr
}

func (r *RowReader)Headers() []string { return r.headers }

func (r *RowReader)HasColumn(name string) bool {
	for _,h := range r.headers {
		if h == name { return true }
	}
	return false
}

// Require returns an error wrapping ErrMissingColumn for the first absent column.
func (r *RowReader)Require(names ...string) error {
	if r.headerErr == io.EOF {
		return ErrMissingColumn // no header row at all
	} else if r.headerErr != nil {
		return r.headerErr
	}
	for _,name := range names {
		if !r.HasColumn(name) {
			return &columnError{name}
		}
	}
	return nil
}

type columnError struct { name string }
func (e *columnError)Error() string { return "missing column '" + e.name + "'" }
func (e *columnError)Unwrap() error { return ErrMissingColumn }

// {{{ rdr.Read()

// Read returns io.EOF when the input is exhausted. Rows the csv parser can't make
// sense of are counted and skipped.
func (r *RowReader)Read() (Row,error) {
	if r.headerErr != nil { return Row{}, r.headerErr }

	for {
		vals,err := r.csvreader.Read()
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				r.NumBadRows++
				continue
			}
			return Row{},err
		}

		m := Row{}
		for i,_ := range vals {
			if i >= len(r.headers) { break }
			m[r.headers[i]] = vals[i]
		}
		r.NumRows++
		return m,nil
	}
}

// }}}

type Row map[string]string

// Get returns the trimmed value, or "" if the column wasn't there.
func (r Row)Get(col string) string { return strings.TrimSpace(r[col]) }

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
