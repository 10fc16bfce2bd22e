package models

import "time"

// PredictionRecord is one completed pipeline run for a (user, request) pair.
// Re-runs append new records; the dashboard normalizer flattens them.
type PredictionRecord struct {
	ID        string `bson:"_id" json:"id"`
	IDUser    string `bson:"id_user" json:"id_user"`
	IDRequest string `bson:"id_request" json:"id_request"`

	Latitude  float64   `bson:"latitude" json:"latitude"`
	Longitude float64   `bson:"longitude" json:"longitude"`
	StartDate time.Time `bson:"start_date" json:"start_date"`
	EndDate   time.Time `bson:"end_date" json:"end_date"`
	CropType  string    `bson:"crop_types" json:"crop_types"`

	// BestCondition snapshots the baseline the forecast was scored against.
	BestCondition CropBaseline  `bson:"best_condition" json:"best_condition"`
	Timestamps    []ForecastDay `bson:"timestamps" json:"timestamps"`

	StepBlock int `bson:"step_block" json:"step_block"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
