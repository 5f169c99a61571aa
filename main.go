package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/banshee-data/beam.report/internal/beam"
	"github.com/banshee-data/beam.report/internal/config"
	"github.com/banshee-data/beam.report/internal/report"
	"github.com/banshee-data/beam.report/internal/store"
	"github.com/banshee-data/beam.report/internal/version"
)

var (
	configPath = flag.String("config", "", "Optional JSON config file")
	gridPoints = flag.Int("n", config.DefaultGridPoints, "Grid point count")
	bodyForce  = flag.Float64("force", config.DefaultBodyForce, "Body force constant")
	samples    = flag.Int("samples", config.DefaultReferenceSamples, "Reference curve sample count")
	plotPath   = flag.String("plot", "", "Write an overlay plot PNG to this path")
	htmlPath   = flag.String("html", "", "Write an overlay chart HTML page to this path")
	dbPath     = flag.String("db", "", "Record the run in this sqlite database")
	listen     = flag.String("listen", "", "Serve debug charts on this address (e.g. :8080)")
	showVer    = flag.Bool("version", false, "Print build information and exit")
)

// resolveParams merges the config file with explicitly set flags. A flag the
// user passed wins over the file; otherwise the file wins over the built-in
// default baked into the flag.
func resolveParams(cfg *config.RunConfig, explicit map[string]bool) (n int, force float64, refSamples int) {
	n = cfg.GetGridPoints()
	if explicit["n"] {
		n = *gridPoints
	}
	force = cfg.GetBodyForce()
	if explicit["force"] {
		force = *bodyForce
	}
	refSamples = cfg.GetReferenceSamples()
	if explicit["samples"] {
		refSamples = *samples
	}
	return n, force, refSamples
}

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println(version.String())
		return
	}

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	cfg := config.EmptyRunConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	n, force, refSamples := resolveParams(cfg, explicit)

	res, err := beam.Run(n, force, refSamples)
	if err != nil {
		log.Fatalf("solve failed: %v", err)
	}
	log.Printf("solved: n=%d h=%.6g q=%g tip=%.6g max_err=%.3g rms_err=%.3g elapsed=%s",
		n, res.Grid.Spacing(), force, res.TipDeflection(),
		res.Comparison.MaxAbsError, res.Comparison.RMSError, res.Elapsed)

	if *plotPath != "" {
		if err := report.SavePNG(*plotPath, res); err != nil {
			log.Fatalf("failed to write plot: %v", err)
		}
		log.Printf("wrote plot to %s", *plotPath)
	}

	if *htmlPath != "" {
		if err := report.WriteOverlayHTML(*htmlPath, res); err != nil {
			log.Fatalf("failed to write chart: %v", err)
		}
		log.Printf("wrote chart to %s", *htmlPath)
	}

	if *dbPath != "" {
		s, err := store.Open(*dbPath)
		if err != nil {
			log.Fatalf("failed to open run store: %v", err)
		}
		defer s.Close()

		run := store.RunFromResult(res)
		if err := s.Insert(run); err != nil {
			log.Fatalf("failed to record run: %v", err)
		}
		log.Printf("recorded run %s", run.RunID)
	}

	if *listen == "" {
		return
	}

	ws := report.NewWebServer()
	ws.SetResult(res)

	mux := http.NewServeMux()
	ws.RegisterRoutes(mux)
	srv := &http.Server{Addr: *listen, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("serving debug charts on %s", *listen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http server error: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	wg.Wait()
}
