package nasapower

import (
	"context"
	"strings"
	"testing"
)

func validRequest() DailyDataRequest {
	return DailyDataRequest{
		Latitude:  -23.55,
		Longitude: -46.63,
		StartDate: "20200101",
		EndDate:   "20251231",
	}
}

func TestDailyDataRequestValidate(t *testing.T) {
	if err := validRequest().Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*DailyDataRequest)
		want   string
	}{
		{"latitude too high", func(r *DailyDataRequest) { r.Latitude = 95 }, "latitude"},
		{"latitude too low", func(r *DailyDataRequest) { r.Latitude = -95 }, "latitude"},
		{"longitude too high", func(r *DailyDataRequest) { r.Longitude = 181 }, "longitude"},
		{"bad start date", func(r *DailyDataRequest) { r.StartDate = "2020-01-01" }, "start date"},
		{"bad end date", func(r *DailyDataRequest) { r.EndDate = "20251301" }, "end date"},
		{"inverted range", func(r *DailyDataRequest) { r.StartDate, r.EndDate = r.EndDate, r.StartDate }, "before"},
	}

	for _, tc := range cases {
		req := validRequest()
		tc.mutate(&req)
		err := req.Validate()
		if err == nil {
			t.Errorf("%s: expected validation error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestFetchDailyDataValidatesBeforeNetworkCall(t *testing.T) {
	// The base URL is unreachable; a validation failure must come back
	// before any dial is attempted.
	client := NewClient("http://127.0.0.1:0")

	req := validRequest()
	req.Latitude = 95

	_, err := client.FetchDailyData(context.Background(), req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "latitude") {
		t.Fatalf("expected latitude validation error, got %v", err)
	}
}
