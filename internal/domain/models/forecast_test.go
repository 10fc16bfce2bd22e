package models

import (
	"encoding/json"
	"testing"
)

func TestForecastDayDecodesCanonicalFieldName(t *testing.T) {
	payload := `{"date":"20260101","status":0.91,"prediction_data":{"temperature":25.45,"humidity":0.75}}`

	var day ForecastDay
	if err := json.Unmarshal([]byte(payload), &day); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if day.Date != "20260101" || day.Status != 0.91 {
		t.Fatalf("unexpected day: %+v", day)
	}
	if day.PredictionData.Temperature != 25.45 {
		t.Fatalf("prediction data not decoded: %+v", day.PredictionData)
	}
}

func TestForecastDayDecodesLegacyFieldName(t *testing.T) {
	payload := `{"date":"20260101","status":0.5,"predicted_data":{"temperature":20.0}}`

	var day ForecastDay
	if err := json.Unmarshal([]byte(payload), &day); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if day.PredictionData.Temperature != 20.0 {
		t.Fatalf("legacy predicted_data alias not honored: %+v", day.PredictionData)
	}
}

func TestForecastDayCanonicalNameWinsOverLegacy(t *testing.T) {
	payload := `{"date":"20260101","prediction_data":{"temperature":1},"predicted_data":{"temperature":2}}`

	var day ForecastDay
	if err := json.Unmarshal([]byte(payload), &day); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if day.PredictionData.Temperature != 1 {
		t.Fatalf("canonical field must take precedence, got %+v", day.PredictionData)
	}
}
