package dashboard

import (
	"time"

	"github.com/orionbeers/planting-backend/internal/domain/models"
)

// calendarMonthNames maps the MM component of a YYYYMMDD date to the
// month-name calendar bucket used by the dashboard UI.
var calendarMonthNames = map[string]string{
	"01": "janeiro", "02": "fevereiro", "03": "março",
	"04": "abril", "05": "maio", "06": "junho",
	"07": "julho", "08": "agosto", "09": "setembro",
	"10": "outubro", "11": "novembro", "12": "dezembro",
}

var monthAbbreviations = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Normalized is the flattened, calendar-keyed view of one or more prediction
// records for the same (user, request) pair.
type Normalized struct {
	IDUser    string
	IDRequest string
	Latitude  float64
	Longitude float64
	StartDate time.Time
	EndDate   time.Time
	Crop      string
	Calendar  map[string][]models.ForecastDay
}

// Normalize flattens every forecast day across the input records into
// month-name buckets, preserving encounter order within each bucket. The
// first record is the canonical source of metadata. Zero input records yield
// an empty structure, not an error.
func Normalize(records []models.PredictionRecord) Normalized {
	normalized := Normalized{Calendar: map[string][]models.ForecastDay{}}

	if len(records) == 0 {
		return normalized
	}

	first := records[0]
	normalized.IDUser = first.IDUser
	normalized.IDRequest = first.IDRequest
	normalized.Latitude = first.Latitude
	normalized.Longitude = first.Longitude
	normalized.StartDate = first.StartDate
	normalized.EndDate = first.EndDate
	normalized.Crop = first.CropType

	for _, record := range records {
		for _, day := range record.Timestamps {
			if len(day.Date) != 8 {
				continue
			}
			bucket := MonthName(day.Date[4:6])
			normalized.Calendar[bucket] = append(normalized.Calendar[bucket], day)
		}
	}

	return normalized
}

// MonthName maps a two-digit month code to its calendar bucket name.
// Unrecognized codes are labeled "mêsNN" rather than dropped.
func MonthName(code string) string {
	if name, ok := calendarMonthNames[code]; ok {
		return name
	}
	return "mês" + code
}

// FormatMonthYear renders a date as "Mon - YYYY" for the dashboard header.
// String inputs that cannot be parsed are returned verbatim instead of
// raising; a zero time renders empty.
func FormatMonthYear(value any) string {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return monthAbbreviations[v.Month()-1] + " - " + v.Format("2006")
	case string:
		if v == "" {
			return ""
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02", "20060102"} {
			if t, err := time.Parse(layout, v); err == nil {
				return FormatMonthYear(t)
			}
		}
		return v
	default:
		return ""
	}
}
