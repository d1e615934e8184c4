package report

import(
	"encoding/csv"
	"io"
)

// OutputAsCSV writes one row per destination, busiest first.
func (r *Report)OutputAsCSV(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Write(r.Headers())
	for _,row := range r.Rows {
		csvWriter.Write(row.Strings())
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
