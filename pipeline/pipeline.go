// Package pipeline wires the stages together: load the two CSVs, pick a home base, count
// and resolve routes, then render the map and write it out.
package pipeline

import(
	"bytes"
	"context"
	"fmt"
	"log"
	"path"

	"github.com/skypies/routemap"
	"github.com/skypies/routemap/basemap"
	"github.com/skypies/routemap/fileio"
	"github.com/skypies/routemap/ingest"
	"github.com/skypies/routemap/render"
	"github.com/skypies/routemap/report"
)

type Config struct {
	LogbookPath     string
	AirportsPath    string
	Home            string // if empty, inferred from the logbook
	OutputPath      string // .pdf for a PDF, anything else gets a PNG
	BasemapPath     string // optional GeoJSON or shapefile
	SummaryCSVPath  string // optional

	LabelMin        int
	ArcPoints       int
	Fit             bool
	Title           string
	render.Page

	fileio.Options
}

func DefaultConfig() Config {
	return Config{
		AirportsPath: "airports.csv",
		OutputPath: "great_circle_route.png",
		LabelMin: 10,
		ArcPoints: routemap.DefaultArcPoints,
		Page: render.DefaultPage,
	}
}

func (cfg Config)String() string {
	return fmt.Sprintf("%s + %s -> %s [%.0fx%.0fin@%.0fdpi]", path.Base(cfg.LogbookPath),
		path.Base(cfg.AirportsPath), cfg.OutputPath, cfg.WidthIn, cfg.HeightIn, cfg.DPI)
}

// {{{ Run

// Run does the whole job. The map is fully rendered in memory before the output is
// opened, so a failure never leaves a partial file behind.
func Run(ctx context.Context, cfg Config, logger *log.Logger) (*report.Report, error) {
	r := report.BlankReport()

	airports,err := loadAirports(ctx, cfg, logger)
	if err != nil { return nil, err }
	r.I["[C] Airports loaded"] = len(airports)

	lb,err := loadLogbook(ctx, cfg, logger)
	if err != nil { return nil, err }
	r.I["[A] Legs loaded"] = len(lb.Legs)
	if len(lb.Legs) == 0 {
		return nil, fmt.Errorf("%s: %w", cfg.LogbookPath, routemap.ErrEmptyLogbook)
	}
	if lb.NumSkipped > 0 {
		r.Warnf("%d logbook rows had no departure or arrival", lb.NumSkipped)
	}

	home := routemap.NormalizeCode(cfg.Home)
	if home == "" {
		if home,err = routemap.InferHome(lb.Legs); err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.LogbookPath, err)
		}
	}
	logger.Printf("Home base: %s\n", home)

	rc := routemap.CountRoutes(lb.Legs, home)
	r.I["[B] Legs touching home"] = rc.Total()

	rs,err := routemap.Resolve(rc, home, airports)
	if len(rs.Missing) > 0 {
		logger.Printf("Warning: no coordinates for %v - skipping these routes\n", rs.Missing)
		r.Warnf("no coordinates for %v", rs.Missing)
	}
	if err != nil { return nil, err }

	logger.Printf("Found %d unique destinations, %d total legs\n", len(rs.Routes), rs.TotalLegs)
	r.AddRouteSet(rs)

	opts := render.DefaultOptions()
	opts.LabelMin = cfg.LabelMin
	if cfg.ArcPoints > 0 { opts.ArcPoints = cfg.ArcPoints }
	opts.Fit = cfg.Fit
	opts.Title = cfg.Title
	if cfg.BasemapPath != "" {
		if opts.Basemap,err = basemap.Load(ctx, cfg.BasemapPath, cfg.Options); err != nil {
			return nil, err
		}
		logger.Printf("Loaded basemap %s from %s\n", opts.Basemap, cfg.BasemapPath)
	}

	buf := bytes.Buffer{}
	if err := render.Render(&buf, render.BuildScene(rs, opts), cfg.Page, render.FormatFor(cfg.OutputPath)); err != nil {
		return nil, err
	}
	if err := fileio.WriteFile(ctx, cfg.OutputPath, buf.Bytes(), cfg.Options); err != nil {
		return nil, err
	}
	logger.Printf("Map saved to %s\n", cfg.OutputPath)

	if cfg.SummaryCSVPath != "" {
		csvBuf := bytes.Buffer{}
		if err := r.OutputAsCSV(&csvBuf); err != nil { return nil, err }
		if err := fileio.WriteFile(ctx, cfg.SummaryCSVPath, csvBuf.Bytes(), cfg.Options); err != nil {
			return nil, err
		}
		logger.Printf("Summary saved to %s\n", cfg.SummaryCSVPath)
	}

	return r, nil
}

// }}}
// {{{ loadAirports, loadLogbook

func loadAirports(ctx context.Context, cfg Config, logger *log.Logger) (routemap.Airports, error) {
	rc,err := fileio.Open(ctx, cfg.AirportsPath, cfg.Options)
	if err != nil { return nil, fmt.Errorf("airports file: %w", err) }
	defer rc.Close()

	airports,nSkipped,err := ingest.ReadAirports(rc)
	if err != nil { return nil, fmt.Errorf("%s: %w", cfg.AirportsPath, err) }

	logger.Printf("Loaded %d airports from %s (%d rows skipped)\n", len(airports), cfg.AirportsPath, nSkipped)
	return airports, nil
}

func loadLogbook(ctx context.Context, cfg Config, logger *log.Logger) (*ingest.Logbook, error) {
	rc,err := fileio.Open(ctx, cfg.LogbookPath, cfg.Options)
	if err != nil { return nil, fmt.Errorf("logbook file: %w", err) }
	defer rc.Close()

	lb,err := ingest.ReadLogbook(rc)
	if err != nil { return nil, fmt.Errorf("%s: %w", cfg.LogbookPath, err) }

	logger.Printf("Loaded %d flight legs from %s\n", len(lb.Legs), cfg.LogbookPath)
	return lb, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
