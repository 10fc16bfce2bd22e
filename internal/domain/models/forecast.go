package models

import "encoding/json"

// PredictionData holds the model-predicted daily values for every variable
// the suitability score weighs.
type PredictionData struct {
	Temperature       float64 `bson:"temperature" json:"temperature"`
	Humidity          float64 `bson:"humidity" json:"humidity"`
	RootSoilMoisture  float64 `bson:"root_soil_moisture" json:"root_soil_moisture"`
	TopSoilMoisture   float64 `bson:"top_soil_moisture" json:"top_soil_moisture"`
	SoilTemperature   float64 `bson:"soil_temperature" json:"soil_temperature"`
	Precipitation     float64 `bson:"precipitation" json:"precipitation"`
	SnowPrecipitation float64 `bson:"snow_precipitation" json:"snow_precipitation"`
}

// ForecastDay is one forecast entry: a YYYYMMDD date, a 0-1 suitability
// status and the predicted variables it was scored from.
type ForecastDay struct {
	Date           string         `bson:"date" json:"date"`
	Status         float64        `bson:"status" json:"status"`
	PredictionData PredictionData `bson:"prediction_data" json:"prediction_data"`
}

// forecastDayWire is the decode shape for forecast entries. Older contract
// revisions emitted the variables under "predicted_data"; "prediction_data"
// is the canonical name since contract v1.
type forecastDayWire struct {
	Date           string          `json:"date"`
	Status         float64         `json:"status"`
	PredictionData *PredictionData `json:"prediction_data"`
	PredictedData  *PredictionData `json:"predicted_data"`
}

// UnmarshalJSON decodes a forecast entry, accepting the legacy
// "predicted_data" field name as an alias for "prediction_data".
func (f *ForecastDay) UnmarshalJSON(data []byte) error {
	var wire forecastDayWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	f.Date = wire.Date
	f.Status = wire.Status

	switch {
	case wire.PredictionData != nil:
		f.PredictionData = *wire.PredictionData
	case wire.PredictedData != nil:
		f.PredictionData = *wire.PredictedData
	default:
		f.PredictionData = PredictionData{}
	}

	return nil
}
