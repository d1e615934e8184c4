// Package report accumulates what happened during a run, and renders it for a terminal
// or as CSV.
package report

import(
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/skypies/geo"
	"github.com/skypies/util/histogram"

	"github.com/skypies/routemap"
)

type Report struct {
	Home      string

	I         map[string]int // counters; keys sort into display order
	H         histogram.Histogram // legs per route
	Rows    []Row
	Warnings []string
}

// One row per destination
type Row struct {
	Code    string
	Count   int
	DistNM  float64
}

func (r Row)Strings() []string {
	return []string{r.Code, fmt.Sprintf("%d", r.Count), fmt.Sprintf("%.0f", r.DistNM)}
}

func BlankReport() *Report {
	return &Report{
		I: map[string]int{},
		H: histogram.Histogram{ValMin:0, ValMax:100, NumBuckets:20},
		Rows: []Row{},
		Warnings: []string{},
	}
}

func (r *Report)Warnf(s string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(s, args...))
}

// {{{ r.AddRouteSet

// AddRouteSet records the resolved routes, busiest first.
func (r *Report)AddRouteSet(rs routemap.RouteSet) {
	r.Home = rs.Home.Code
	r.I["[D] Destinations"] = len(rs.Routes)
	r.I["[E] Legs to/from home, plotted"] = rs.TotalLegs
	r.I["[F] Codes without coordinates"] = len(rs.Missing)

	for _,route := range rs.Routes {
		distKM := rs.Home.DistKM(route.Latlong)
		r.Rows = append(r.Rows, Row{Code:route.Code, Count:route.Count, DistNM:distKM * geo.KNauticalMilePerKM})
		r.H.Add(histogram.ScalarVal(route.Count))
	}

	sort.SliceStable(r.Rows, func(i,j int) bool {
		if r.Rows[i].Count != r.Rows[j].Count { return r.Rows[i].Count > r.Rows[j].Count }
		return r.Rows[i].Code < r.Rows[j].Code
	})
}

// }}}
// {{{ r.Headers, r.Counters

func (r *Report)Headers() []string { return []string{"destination", "legs", "distance_nm"} }

func (r *Report)Counters() []string {
	keys := []string{}
	for k,_ := range r.I { keys = append(keys, k) }
	sort.Strings(keys)

	out := []string{}
	for _,k := range keys {
		out = append(out, fmt.Sprintf("%-34s %6d", strings.TrimSpace(k[strings.Index(k, "]")+1:]), r.I[k]))
	}
	return out
}

// }}}
// {{{ r.String

func (r *Report)String() string {
	str := fmt.Sprintf("Home base: %s\n", r.Home)
	for _,s := range r.Counters() { str += s + "\n" }
	for _,row := range r.Rows {
		str += fmt.Sprintf("  %-6s %5d legs %7.0f NM\n", row.Code, row.Count, row.DistNM)
	}
	return str
}

// }}}
// {{{ r.Text

var(
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0e6f0"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff2dd6"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	boxStyle   = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#2a3a5c")).
		Padding(0, 1)
)

// Text is the summary for a terminal, styled with lipgloss. maxRows limits the per
// destination table; zero means all of them.
func (r *Report)Text(maxRows int) string {
	blocks := []string{titleStyle.Render(fmt.Sprintf("%s  ///  ROUTE SUMMARY", r.Home))}

	blocks = append(blocks, infoStyle.Render(strings.Join(r.Counters(), "\n")))

	if stats,valid := r.H.Stats(); valid {
		blocks = append(blocks, dimStyle.Render(fmt.Sprintf("legs/route: N=%v mean=%.1f stddev=%.1f 50%%ile=%v 90%%ile=%v",
			stats.N, stats.Mean, stats.Stddev, stats.Percentile50, stats.Percentile90)))
	}

	rows := []string{}
	for i,row := range r.Rows {
		if maxRows > 0 && i >= maxRows {
			rows = append(rows, dimStyle.Render(fmt.Sprintf("... and %d more", len(r.Rows)-maxRows)))
			break
		}
		rows = append(rows, fmt.Sprintf("%-6s %5d legs %7.0f NM", row.Code, row.Count, row.DistNM))
	}
	if len(rows) > 0 {
		blocks = append(blocks, infoStyle.Render(strings.Join(rows, "\n")))
	}

	for _,w := range r.Warnings {
		blocks = append(blocks, warnStyle.Render("warning: "+w))
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
