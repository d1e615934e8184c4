package pipeline

// go test -v github.com/skypies/routemap/pipeline

import(
	"bytes"
	"context"
	"errors"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skypies/routemap"
	"github.com/skypies/routemap/fileio"
	"github.com/skypies/routemap/render"
)

var(
	airportsCSV = `"ident","type","latitude_deg","longitude_deg","icao_code","gps_code"
"KSFO","large_airport",37.61899948120117,-122.375,"KSFO","KSFO"
"KLAX","large_airport",33.94250107,-118.4079971,"KLAX","KLAX"
"KJFK","large_airport",40.63980103,-73.77890015,"KJFK","KJFK"
`

	basemapJSON = `{"type":"FeatureCollection","features":[
{"type":"Feature","properties":{},"geometry":{"type":"Polygon",
 "coordinates":[[[-125,30],[-70,30],[-70,48],[-125,48],[-125,30]]]}}]}`
)

func writeTestFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	fname := filepath.Join(dir, name)
	if err := os.WriteFile(fname, []byte(contents), 0644); err != nil {
		t.Fatalf("write %s: %v", fname, err)
	}
	return fname
}

func testConfig(t *testing.T, logbook string) (Config, *bytes.Buffer) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.AirportsPath = writeTestFile(t, dir, "airports.csv", airportsCSV)
	cfg.LogbookPath = writeTestFile(t, dir, "logbook.csv", logbook)
	cfg.OutputPath = filepath.Join(dir, "map.png")
	cfg.Page = render.Page{WidthIn:4, HeightIn:2, DPI:50}

	return cfg, &bytes.Buffer{}
}

func TestRunEndToEnd(t *testing.T) {
	cfg,logBuf := testConfig(t, "departure,arrival\nKSFO,KLAX\nKLAX,KSFO\nKSFO,KJFK\n")
	cfg.SummaryCSVPath = filepath.Join(filepath.Dir(cfg.OutputPath), "summary.csv")

	r,err := Run(context.Background(), cfg, log.New(logBuf, "", 0))
	if err != nil {
		t.Fatalf("Run: %v\n%s", err, logBuf.String())
	}

	f,err := os.Open(cfg.OutputPath)
	if err != nil { t.Fatalf("output not written: %v", err) }
	defer f.Close()
	img,err := png.Decode(f)
	if err != nil { t.Fatalf("output not a PNG: %v", err) }
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("image was %v", b)
	}

	if r.Home != "KSFO" {
		t.Errorf("home was %q", r.Home)
	}
	if len(r.Rows) != 2 || r.Rows[0].Code != "KLAX" || r.Rows[0].Count != 2 ||
		r.Rows[1].Code != "KJFK" || r.Rows[1].Count != 1 {
		t.Errorf("rows wrong: %v", r.Rows)
	}
	if r.I["[A] Legs loaded"] != 3 || r.I["[B] Legs touching home"] != 3 || r.I["[C] Airports loaded"] != 3 {
		t.Errorf("counters wrong: %v", r.I)
	}

	for _,want := range []string{"Loaded 3 airports", "Loaded 3 flight legs", "Home base: KSFO",
		"Found 2 unique destinations, 3 total legs", "Map saved to"} {
		if !strings.Contains(logBuf.String(), want) {
			t.Errorf("log missing %q:\n%s", want, logBuf.String())
		}
	}

	summary,err := os.ReadFile(cfg.SummaryCSVPath)
	if err != nil { t.Fatalf("summary not written: %v", err) }
	if !strings.HasPrefix(string(summary), "destination,legs,distance_nm\nKLAX,2,") {
		t.Errorf("summary was %q", summary)
	}
}

func TestRunPDFWithBasemap(t *testing.T) {
	cfg,logBuf := testConfig(t, "departure,arrival\nKSFO,KJFK\n")
	cfg.OutputPath = strings.TrimSuffix(cfg.OutputPath, ".png") + ".pdf"
	cfg.BasemapPath = writeTestFile(t, filepath.Dir(cfg.OutputPath), "land.geojson", basemapJSON)
	cfg.Fit = true

	if _,err := Run(context.Background(), cfg, log.New(logBuf, "", 0)); err != nil {
		t.Fatalf("Run: %v\n%s", err, logBuf.String())
	}

	data,err := os.ReadFile(cfg.OutputPath)
	if err != nil { t.Fatalf("output not written: %v", err) }
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output not a PDF")
	}
}

func TestRunDropsUnknownDestinations(t *testing.T) {
	cfg,logBuf := testConfig(t, "departure,arrival\nKSFO,KLAX\nKSFO,XXXX\nKSFO,KLAX\n")
	cfg.Home = "ksfo"

	r,err := Run(context.Background(), cfg, log.New(logBuf, "", 0))
	if err != nil {
		t.Fatalf("Run: %v\n%s", err, logBuf.String())
	}
	if len(r.Rows) != 1 || r.Rows[0].Code != "KLAX" {
		t.Errorf("rows wrong: %v", r.Rows)
	}
	if !strings.Contains(logBuf.String(), "Warning: no coordinates for [XXXX] - skipping these routes") {
		t.Errorf("no warning logged:\n%s", logBuf.String())
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct{
		Logbook string
		Home    string
		Want    error
	}{
		{"departure,arrival\n", "", routemap.ErrEmptyLogbook},
		{"departure,arrival\nKSFO,XXXX\n", "", routemap.ErrNoRoutes},
		{"departure,arrival\nKSFO,KLAX\n", "EGLL", routemap.ErrNoRoutes},
	}

	for i,test := range tests {
		cfg,logBuf := testConfig(t, test.Logbook)
		cfg.Home = test.Home
		_,err := Run(context.Background(), cfg, log.New(logBuf, "", 0))
		if !errors.Is(err, test.Want) {
			t.Errorf("[%d] expected %v, got %v", i, test.Want, err)
		}
		if _,statErr := os.Stat(cfg.OutputPath); statErr == nil {
			t.Errorf("[%d] output should not have been written", i)
		}
	}
}

func TestRunMissingFiles(t *testing.T) {
	cfg,logBuf := testConfig(t, "departure,arrival\nKSFO,KLAX\n")
	cfg.LogbookPath += ".nope"
	if _,err := Run(context.Background(), cfg, log.New(logBuf, "", 0)); !errors.Is(err, fileio.ErrNotFound) {
		t.Errorf("missing logbook: expected ErrNotFound, got %v", err)
	}

	cfg,logBuf = testConfig(t, "departure,arrival\nKSFO,KLAX\n")
	cfg.AirportsPath += ".nope"
	if _,err := Run(context.Background(), cfg, log.New(logBuf, "", 0)); !errors.Is(err, fileio.ErrNotFound) {
		t.Errorf("missing airports: expected ErrNotFound, got %v", err)
	}
}
