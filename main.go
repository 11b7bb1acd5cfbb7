// Command synthseis runs the 2-D synthetic seismic forward-modeling
// pipeline: it loads a depth-domain earth model from CSV grids, simulates
// the time-domain seismic response, projects it back to depth, renders the
// four output panels, and records the run in a local SQLite database.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/mahmoud-neo/synthseis/internal/gridio"
	"github.com/mahmoud-neo/synthseis/internal/render"
	"github.com/mahmoud-neo/synthseis/internal/store"
	"github.com/mahmoud-neo/synthseis/internal/synth"
)

var (
	xPath      = flag.String("x", "", "CSV file with the X coordinate grid")
	yPath      = flag.String("y", "", "CSV file with the Y (depth) coordinate grid")
	vpPath     = flag.String("vp", "", "CSV file with the velocity grid (m/s)")
	rhobPath   = flag.String("rhob", "", "CSV file with the density grid (kg/m³)")
	configPath = flag.String("config", "", "Optional JSON tuning config")
	outDir     = flag.String("out", "out", "Output directory for rendered panels")
	format     = flag.String("format", "png", "Render format: png, html, both, or none")
	dbPath     = flag.String("db", "synthseis.db", "SQLite run database (empty to disable)")
	migrations = flag.String("migrations", "migrations", "Directory with schema migrations")
)

func main() {
	flag.Parse()

	if *xPath == "" || *yPath == "" || *vpPath == "" || *rhobPath == "" {
		log.Fatal("all four grid files are required: -x, -y, -vp, -rhob")
	}

	cfg := synth.EmptyModelConfig()
	if *configPath != "" {
		var err error
		cfg, err = synth.LoadModelConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src := &gridio.CSVSource{
		XPath:    *xPath,
		YPath:    *yPath,
		VPPath:   *vpPath,
		RHOBPath: *rhobPath,
	}
	x, y, vp, rhob, err := src.Grids(ctx)
	if err != nil {
		log.Fatalf("failed to load model grids: %v", err)
	}
	log.Printf("loaded model: %d depth samples x %d traces", vp.Ny, vp.Nx)

	var runs *store.RunStore
	runID := uuid.New().String()
	if *dbPath != "" {
		runs, err = store.Open(*dbPath)
		if err != nil {
			log.Fatalf("failed to open run database: %v", err)
		}
		defer runs.Close()
		if err := runs.MigrateUp(*migrations); err != nil {
			log.Fatalf("failed to migrate run database: %v", err)
		}
		rec := store.RunRecord{
			RunID:              runID,
			Status:             store.StatusRunning,
			Nx:                 vp.Nx,
			Ny:                 vp.Ny,
			DtMs:               cfg.GetDtMs(),
			WaveletFrequencyHz: cfg.GetWaveletFrequencyHz(),
			StartedAt:          time.Now(),
		}
		if err := runs.InsertRun(rec); err != nil {
			log.Fatalf("failed to record run: %v", err)
		}
	}

	started := time.Now()
	res, err := synth.NewPipeline(cfg).Run(ctx, x, y, vp, rhob)
	if err != nil {
		if runs != nil {
			if ferr := runs.FailRun(runID, err.Error(), time.Now()); ferr != nil {
				log.Printf("failed to record run failure: %v", ferr)
			}
		}
		if errors.Is(err, context.Canceled) {
			log.Fatal("run cancelled")
		}
		log.Fatalf("pipeline failed: %v", err)
	}
	log.Printf("run %s completed in %s (nt=%d, tmax=%.2f ms)",
		runID, time.Since(started).Round(time.Millisecond), res.Nt(), res.GlobalTmaxMs)

	if runs != nil {
		if err := runs.CompleteRun(runID, res.Nt(), res.GlobalTmaxMs, time.Now()); err != nil {
			log.Printf("failed to record run completion: %v", err)
		}
	}

	var renderers []synth.Renderer
	switch *format {
	case "png":
		renderers = append(renderers, render.NewPanelPNG(*outDir))
	case "html":
		renderers = append(renderers, render.NewPanelHTML(filepath.Join(*outDir, "report.html")))
	case "both":
		renderers = append(renderers,
			render.NewPanelPNG(*outDir),
			render.NewPanelHTML(filepath.Join(*outDir, "report.html")))
	case "none":
	default:
		log.Fatalf("unknown format %q (want png, html, both, or none)", *format)
	}
	for _, r := range renderers {
		if err := r.Render(res); err != nil {
			log.Fatalf("failed to render output: %v", err)
		}
	}
	if len(renderers) > 0 {
		log.Printf("wrote output to %s", *outDir)
	}

}
