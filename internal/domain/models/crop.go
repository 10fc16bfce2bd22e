package models

import "time"

// CropBaseline holds the optimal establishment-phase conditions for a crop.
// One record exists per crop key; it is created once (synthesized by the
// model on first use) and read thereafter.
type CropBaseline struct {
	ID                string    `bson:"_id" json:"id"`
	CropKey           string    `bson:"crop_key" json:"crop_key"`
	CropName          string    `bson:"crop_name" json:"crop_name"`
	Temperature       float64   `bson:"temperature" json:"temperature"`                 // °C
	Humidity          float64   `bson:"humidity" json:"humidity"`                       // 0-1
	RootSoilMoisture  float64   `bson:"root_soil_moisture" json:"root_soil_moisture"`   // 0-1
	TopSoilMoisture   float64   `bson:"top_soil_moisture" json:"top_soil_moisture"`     // 0-1
	SoilTemperature   float64   `bson:"soil_temperature" json:"soil_temperature"`       // °C
	RainPrecipitation float64   `bson:"rain_precipitation" json:"rain_precipitation"`   // mm/day
	SnowPrecipitation float64   `bson:"snow_precipitation" json:"snow_precipitation"`   // mm/day
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}
