package nasapower

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	dailyPointPath = "/api/temporal/daily/point"
	dateLayout     = "20060102"

	// DefaultParameters is the variable list requested for planting forecasts.
	//
	// | ID          | description                     |
	// | ----------- | ------------------------------- |
	// | T2M_MAX     | Temperature at 2 Meters Maximum |
	// | T2M_MIN     | Temperature at 2 Meters Minimum |
	// | RH2M        | Relative Humidity at 2 Meters   |
	// | PRECTOTCORR | Precipitation Corrected         |
	// | GWETROOT    | Root Zone Soil Wetness          |
	// | GWETTOP     | Surface Soil Wetness            |
	// | PRECSNO     | Snow Precipitation              |
	// | TSOIL5      | Soil Temperatures Layer 5       |
	DefaultParameters = "T2M_MAX,T2M_MIN,RH2M,PRECTOTCORR,GWETROOT,GWETTOP,PRECSNO,TSOIL5"
)

// Client exposes the NASA POWER daily data operations used by the pipeline.
type Client interface {
	FetchDailyData(ctx context.Context, req DailyDataRequest) (*Dataset, error)
}

// DailyDataRequest identifies the point and window to fetch.
type DailyDataRequest struct {
	Latitude  float64
	Longitude float64
	StartDate string // YYYYMMDD
	EndDate   string // YYYYMMDD
}

// Validate checks coordinates and dates before any network call is made.
func (r DailyDataRequest) Validate() error {
	if r.Latitude < -90 || r.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90, got %v", r.Latitude)
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180, got %v", r.Longitude)
	}

	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return fmt.Errorf("start date must be in YYYYMMDD format, got %q", r.StartDate)
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return fmt.Errorf("end date must be in YYYYMMDD format, got %q", r.EndDate)
	}
	if !start.Before(end) {
		return fmt.Errorf("start date %s must be before end date %s", r.StartDate, r.EndDate)
	}
	return nil
}

// Dataset is the slice of the NASA POWER response the pipeline consumes:
// per-variable sparse mappings of YYYYMMDD date to value.
type Dataset struct {
	Properties Properties `json:"properties"`
}

// Properties wraps the parameter block of a POWER response.
type Properties struct {
	Parameter map[string]map[string]float64 `json:"parameter"`
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a NASA POWER API client against the provided base URL.
func NewClient(baseURL string) *APIClient {
	restyClient := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)

	return &APIClient{httpClient: restyClient}
}

// FetchDailyData retrieves the daily per-variable date->value mappings for
// the requested point and window. A non-2xx response is an error; the caller
// treats any failure here as fatal for the run.
func (c *APIClient) FetchDailyData(ctx context.Context, req DailyDataRequest) (*Dataset, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dataset := new(Dataset)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"start":      req.StartDate,
			"end":        req.EndDate,
			"latitude":   strconv.FormatFloat(req.Latitude, 'f', -1, 64),
			"longitude":  strconv.FormatFloat(req.Longitude, 'f', -1, 64),
			"community":  "re",
			"parameters": DefaultParameters,
			"format":     "json",
			"units":      "metric",
			"header":     "true",
		}).
		SetResult(dataset).
		Get(dailyPointPath)
	if err != nil {
		return nil, fmt.Errorf("fetch nasa daily data: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("nasa power api error: status=%d body=%s", resp.StatusCode(), resp.String())
	}

	if dataset.Properties.Parameter == nil {
		return nil, fmt.Errorf("nasa power response missing properties.parameter")
	}

	return dataset, nil
}
