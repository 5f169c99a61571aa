// Command sweep runs the beam solver across a list of grid sizes and reports
// how the discretisation error shrinks as the grid is refined. It exits
// nonzero when the max error fails to decrease monotonically, which makes it
// usable as a consistency smoke check.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/banshee-data/beam.report/internal/beam"
	"github.com/banshee-data/beam.report/internal/report"
	"github.com/banshee-data/beam.report/internal/store"
)

var (
	pointsList = flag.String("points", "50,200,1000", "Comma-separated grid sizes to sweep")
	bodyForce  = flag.Float64("force", 1, "Body force constant")
	samples    = flag.Int("samples", 30, "Reference curve sample count")
	csvPath    = flag.String("csv", "", "Write sweep results as CSV to this path")
	htmlPath   = flag.String("html", "", "Write a convergence chart HTML page to this path")
	dbPath     = flag.String("db", "", "Record each run in this sqlite database")
)

// parseCSVIntSlice parses a comma-separated list of ints.
func parseCSVIntSlice(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid int '%s': %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func writeCSV(path string, points []report.ConvergencePoint) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"grid_points", "spacing", "max_abs_error", "rms_error"}); err != nil {
		return err
	}
	for _, p := range points {
		rec := []string{
			strconv.Itoa(p.GridPoints),
			strconv.FormatFloat(p.Spacing, 'g', -1, 64),
			strconv.FormatFloat(p.MaxAbsError, 'g', -1, 64),
			strconv.FormatFloat(p.RMSError, 'g', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	flag.Parse()

	grids, err := parseCSVIntSlice(*pointsList)
	if err != nil {
		log.Fatalf("invalid -points: %v", err)
	}
	if len(grids) == 0 {
		log.Fatal("no grid sizes to sweep")
	}

	var runStore *store.RunStore
	if *dbPath != "" {
		runStore, err = store.Open(*dbPath)
		if err != nil {
			log.Fatalf("failed to open run store: %v", err)
		}
		defer runStore.Close()
	}

	points := make([]report.ConvergencePoint, 0, len(grids))
	for _, n := range grids {
		res, err := beam.Run(n, *bodyForce, *samples)
		if err != nil {
			log.Fatalf("solve failed for n=%d: %v", n, err)
		}

		p := report.ConvergencePoint{
			GridPoints:  n,
			Spacing:     res.Grid.Spacing(),
			MaxAbsError: res.Comparison.MaxAbsError,
			RMSError:    res.Comparison.RMSError,
		}
		points = append(points, p)
		log.Printf("n=%-6d h=%.6g max_err=%.4g rms_err=%.4g elapsed=%s",
			n, p.Spacing, p.MaxAbsError, p.RMSError, res.Elapsed)

		if runStore != nil {
			if err := runStore.Insert(store.RunFromResult(res)); err != nil {
				log.Fatalf("failed to record run for n=%d: %v", n, err)
			}
		}
	}

	if *csvPath != "" {
		if err := writeCSV(*csvPath, points); err != nil {
			log.Fatalf("failed to write CSV: %v", err)
		}
		log.Printf("wrote sweep results to %s", *csvPath)
	}

	if *htmlPath != "" {
		if err := report.WriteConvergenceHTML(*htmlPath, points); err != nil {
			log.Fatalf("failed to write convergence chart: %v", err)
		}
		log.Printf("wrote convergence chart to %s", *htmlPath)
	}

	for i := 1; i < len(points); i++ {
		if points[i].MaxAbsError >= points[i-1].MaxAbsError {
			log.Fatalf("max error did not decrease from n=%d (%.4g) to n=%d (%.4g)",
				points[i-1].GridPoints, points[i-1].MaxAbsError,
				points[i].GridPoints, points[i].MaxAbsError)
		}
	}
}
