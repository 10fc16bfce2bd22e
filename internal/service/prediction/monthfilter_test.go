package prediction

import (
	"testing"

	"github.com/orionbeers/planting-backend/pkg/clients/nasapower"
)

func sampleDataset() *nasapower.Dataset {
	return &nasapower.Dataset{
		Properties: nasapower.Properties{
			Parameter: map[string]map[string]float64{
				"T2M_MAX": {
					"20190115": 31.2,
					"20190220": 29.8,
					"20200112": 30.5,
				},
				"PRECTOTCORR": {
					"20190115": 3.4,
					"20191231": 0.2,
				},
			},
		},
	}
}

func TestFilterDatasetByMonthKeepsOnlyRequestedMonth(t *testing.T) {
	filtered := FilterDatasetByMonth(sampleDataset(), "January")

	temps := filtered.Properties.Parameter["T2M_MAX"]
	if len(temps) != 2 {
		t.Fatalf("expected 2 January temperature entries, got %d", len(temps))
	}
	if _, ok := temps["20190220"]; ok {
		t.Fatal("February entry survived the January filter")
	}

	precip := filtered.Properties.Parameter["PRECTOTCORR"]
	if len(precip) != 1 {
		t.Fatalf("expected 1 January precipitation entry, got %d", len(precip))
	}
}

func TestFilterDatasetByMonthUnknownMonthIsEmpty(t *testing.T) {
	for _, month := range []string{"Januar", "janeiro", "13", ""} {
		filtered := FilterDatasetByMonth(sampleDataset(), month)
		if !DatasetIsEmpty(filtered) {
			t.Fatalf("expected empty dataset for month %q", month)
		}
	}
}

func TestFilterDatasetByMonthDoesNotMutateInput(t *testing.T) {
	dataset := sampleDataset()
	FilterDatasetByMonth(dataset, "January")

	if len(dataset.Properties.Parameter["T2M_MAX"]) != 3 {
		t.Fatal("input dataset was mutated by the filter")
	}
}

func TestMonthNumber(t *testing.T) {
	if number, ok := MonthNumber("September"); !ok || number != "09" {
		t.Fatalf("expected September -> 09, got %q (ok=%v)", number, ok)
	}
	if _, ok := MonthNumber("Septembre"); ok {
		t.Fatal("unexpected hit for unknown month name")
	}
}

func TestNextMonthWrapsDecember(t *testing.T) {
	if next := NextMonth("December"); next != "January" {
		t.Fatalf("expected December -> January, got %q", next)
	}
	if next := NextMonth("March"); next != "April" {
		t.Fatalf("expected March -> April, got %q", next)
	}
	if next := NextMonth("nope"); next != "nope" {
		t.Fatalf("unknown month should pass through, got %q", next)
	}
}
