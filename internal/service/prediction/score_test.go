package prediction

import (
	"testing"

	"github.com/orionbeers/planting-backend/internal/domain/models"
)

func testBaseline() models.CropBaseline {
	return models.CropBaseline{
		CropKey:           "tomato",
		Temperature:       22,
		Humidity:          0.70,
		RootSoilMoisture:  0.65,
		TopSoilMoisture:   0.60,
		SoilTemperature:   20,
		RainPrecipitation: 3,
		SnowPrecipitation: 0,
	}
}

func baselineMatchingData() models.PredictionData {
	b := testBaseline()
	return models.PredictionData{
		Temperature:       b.Temperature,
		Humidity:          b.Humidity,
		RootSoilMoisture:  b.RootSoilMoisture,
		TopSoilMoisture:   b.TopSoilMoisture,
		SoilTemperature:   b.SoilTemperature,
		Precipitation:     b.RainPrecipitation,
		SnowPrecipitation: b.SnowPrecipitation,
	}
}

func TestSuitabilityStatusPerfectDayScoresOne(t *testing.T) {
	status := SuitabilityStatus(testBaseline(), baselineMatchingData())
	if status != 1.00 {
		t.Fatalf("expected status 1.00 for a day exactly at baseline, got %v", status)
	}
}

func TestVariableScoreAtToleranceIsOne(t *testing.T) {
	// Differences exactly at the tolerance still score 1.0.
	cases := []struct {
		name string
		band decayBand
		diff float64
	}{
		{"temperature", temperatureBand, 2},
		{"humidity", humidityBand, 0.05},
		{"soil moisture", soilMoistureBand, 0.05},
		{"precipitation", precipitationBand, 1},
		{"snow", snowBand, 0},
	}

	for _, tc := range cases {
		if got := tc.band.score(tc.diff, 0); got != 1.0 {
			t.Errorf("%s: score at tolerance = %v, want 1.0", tc.name, got)
		}
	}
}

func TestVariableScoreAtOuterBoundIsZero(t *testing.T) {
	cases := []struct {
		name string
		band decayBand
		diff float64
	}{
		{"temperature", temperatureBand, 10},
		{"humidity", humidityBand, 0.30},
		{"soil moisture", soilMoistureBand, 0.35},
		{"precipitation", precipitationBand, 10},
		{"snow", snowBand, 1},
	}

	for _, tc := range cases {
		if got := tc.band.score(tc.diff, 0); got != 0.0 {
			t.Errorf("%s: score at outer bound = %v, want 0.0", tc.name, got)
		}
		if got := tc.band.score(tc.diff*3, 0); got != 0.0 {
			t.Errorf("%s: score beyond outer bound = %v, want clamped 0.0", tc.name, got)
		}
	}
}

func TestVariableScoreDecaysLinearly(t *testing.T) {
	// Midpoint between tolerance 2 and bound 10 is diff 6 -> score 0.5.
	if got := temperatureBand.score(6, 0); got != 0.5 {
		t.Fatalf("expected 0.5 at decay midpoint, got %v", got)
	}
}

func TestClampStatus(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0.996, 1.00},
		{0.124, 0.12},
		{-0.3, 0.00},
		{1.2, 1.00},
	}

	for _, tc := range cases {
		if got := ClampStatus(tc.in); got != tc.want {
			t.Errorf("ClampStatus(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
