package models

import "time"

// DateRange holds the "Mon - YYYY" formatted bounds of a prediction run.
type DateRange struct {
	StartDate string `bson:"start_date" json:"start_date"`
	EndDate   string `bson:"end_date" json:"end_date"`
}

// DashboardSummary is the normalized, calendar-shaped view of one or more
// prediction records. Summaries are immutable; re-runs create new documents.
type DashboardSummary struct {
	ID        string                   `bson:"_id" json:"id"`
	IDUser    string                   `bson:"id_user" json:"id_user"`
	Crop      string                   `bson:"crop" json:"crop"`
	DateRange DateRange                `bson:"date_range" json:"date_range"`
	Calendar  map[string][]ForecastDay `bson:"calendar" json:"calendar,omitempty"`
	CreatedAt time.Time                `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time                `bson:"updated_at" json:"updated_at"`
}
