package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/banshee-data/beam.report/internal/report"
)

func TestParseCSVIntSlice(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"50,200,1000", []int{50, 200, 1000}, false},
		{" 5 , 10 ", []int{5, 10}, false},
		{"", nil, false},
		{"50,abc", nil, true},
	}

	for _, tt := range tests {
		got, err := parseCSVIntSlice(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCSVIntSlice(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseCSVIntSlice(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.csv")
	points := []report.ConvergencePoint{
		{GridPoints: 50, Spacing: 1.0 / 49, MaxAbsError: 1e-2, RMSError: 5e-3},
		{GridPoints: 200, Spacing: 1.0 / 199, MaxAbsError: 2e-3, RMSError: 1e-3},
	}

	if err := writeCSV(path, points); err != nil {
		t.Fatalf("writeCSV() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open CSV: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to read CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d records, want 3 (header + 2 rows)", len(records))
	}
	if records[0][0] != "grid_points" {
		t.Errorf("header = %v, want grid_points first", records[0])
	}
	if records[1][0] != "50" || records[2][0] != "200" {
		t.Errorf("rows out of order: %v", records[1:])
	}
}
