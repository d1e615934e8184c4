// The routemap command draws every route flown to or from a home airport, as great circle
// arcs on a dark world map.
//
//   routemap logbook.csv
//   routemap logbook.csv KPAO -o paloalto.pdf --fit --airports gs://my-bucket/airports.csv.gz
package main

import(
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/skypies/routemap/pipeline"
)

var(
	cfg = pipeline.DefaultConfig()
	fSummaryRows int
	fQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "routemap LOGBOOK [HOME]",
	Short: "Draw great circle route maps from a pilot logbook",
	Long: `Reads a logbook CSV (with 'departure' and 'arrival' columns) and an OurAirports
style airports CSV, and draws every leg flown to or from the home airport as a great
circle arc. If HOME isn't given, the most frequent departure airport is used.

Inputs and outputs may be local files or gs://bucket/object paths; inputs ending in .gz
are decompressed. An output ending in .pdf is written as a PDF, anything else as a PNG.`,
	Args:  cobra.RangeArgs(1, 2),
	SilenceUsage: true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.LogbookPath = args[0]
		if len(args) > 1 {
			cfg.Home = args[1]
		}

		logger := log.New(os.Stdout, "", 0)
		if fQuiet {
			logger.SetOutput(io.Discard)
		}

		r,err := pipeline.Run(cmd.Context(), cfg, logger)
		if err != nil { return err }

		if !fQuiet {
			fmt.Printf("\n%s\n", r.Text(fSummaryRows))
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&cfg.OutputPath, "output", "o", cfg.OutputPath, "output image (.png or .pdf)")
	rootCmd.Flags().IntVar(&cfg.LabelMin, "label-min", cfg.LabelMin, "label destinations flown at least this many times")
	rootCmd.Flags().StringVar(&cfg.AirportsPath, "airports", cfg.AirportsPath, "OurAirports format airports CSV")
	rootCmd.Flags().StringVar(&cfg.BasemapPath, "basemap", "", "land/borders to draw underneath (GeoJSON or .shp)")
	rootCmd.Flags().Float64Var(&cfg.DPI, "dpi", cfg.DPI, "PNG resolution")
	rootCmd.Flags().Float64Var(&cfg.WidthIn, "width", cfg.WidthIn, "page width, inches")
	rootCmd.Flags().Float64Var(&cfg.HeightIn, "height", cfg.HeightIn, "page height, inches")
	rootCmd.Flags().IntVar(&cfg.ArcPoints, "points", cfg.ArcPoints, "points sampled along each great circle")
	rootCmd.Flags().BoolVar(&cfg.Fit, "fit", false, "zoom to the routes instead of the whole world")
	rootCmd.Flags().StringVar(&cfg.Title, "title", "", "map title (default: '<HOME>  ///  ROUTE MAP')")
	rootCmd.Flags().StringVar(&cfg.SummaryCSVPath, "summary-csv", "", "also write the per-destination summary as CSV")
	rootCmd.Flags().BoolVar(&cfg.Anonymous, "gcs-anonymous", false, "read/write GCS without credentials (public buckets)")
	rootCmd.Flags().IntVar(&fSummaryRows, "summary-rows", 20, "destinations listed in the summary; 0 for all")
	rootCmd.Flags().BoolVarP(&fQuiet, "quiet", "q", false, "no progress or summary output")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
