package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/orionbeers/planting-backend/internal/domain/models"
	"github.com/orionbeers/planting-backend/internal/repository/mongodb"
)

type fakeRecordLister struct {
	records []models.PredictionRecord
}

func (f *fakeRecordLister) ListPredictionRecords(ctx context.Context, idUser, idRequest string) ([]models.PredictionRecord, error) {
	return f.records, nil
}

type fakeSummaryStore struct {
	inserted  []models.DashboardSummary
	summaries map[string]models.DashboardSummary
}

func newFakeSummaryStore() *fakeSummaryStore {
	return &fakeSummaryStore{summaries: map[string]models.DashboardSummary{}}
}

func (f *fakeSummaryStore) InsertDashboard(ctx context.Context, summary models.DashboardSummary) (models.DashboardSummary, error) {
	summary.ID = "summary-1"
	f.inserted = append(f.inserted, summary)
	f.summaries[summary.ID] = summary
	return summary, nil
}

func (f *fakeSummaryStore) FindDashboard(ctx context.Context, idUser, idSummary string) (models.DashboardSummary, error) {
	if summary, ok := f.summaries[idSummary]; ok && summary.IDUser == idUser {
		return summary, nil
	}
	return models.DashboardSummary{}, mongodb.ErrNotFound
}

func (f *fakeSummaryStore) ListDashboardsByUser(ctx context.Context, idUser string) ([]models.DashboardSummary, error) {
	var result []models.DashboardSummary
	for _, summary := range f.summaries {
		if summary.IDUser == idUser {
			summary.Calendar = nil
			result = append(result, summary)
		}
	}
	return result, nil
}

func TestBuildSummaryPersistsNormalizedCalendar(t *testing.T) {
	lister := &fakeRecordLister{records: []models.PredictionRecord{
		{
			IDUser:    "user-1",
			IDRequest: "req-1",
			CropType:  "tomato",
			StartDate: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
			Timestamps: []models.ForecastDay{
				{Date: "20260101", Status: 0.91},
			},
		},
	}}
	store := newFakeSummaryStore()
	svc := NewService(lister, store, nil)

	summary, err := svc.BuildSummary(context.Background(), "user-1", "req-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.ID == "" {
		t.Fatal("summary must come back with its generated id")
	}
	if summary.DateRange.StartDate != "Jan - 2020" || summary.DateRange.EndDate != "Dec - 2025" {
		t.Fatalf("unexpected date range: %+v", summary.DateRange)
	}
	if len(summary.Calendar["janeiro"]) != 1 {
		t.Fatalf("expected one janeiro entry, got %+v", summary.Calendar)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("expected one persisted summary, got %d", len(store.inserted))
	}
}

func TestBuildSummaryWithoutRecordsIsNotFound(t *testing.T) {
	svc := NewService(&fakeRecordLister{}, newFakeSummaryStore(), nil)

	_, err := svc.BuildSummary(context.Background(), "user-1", "req-1")
	if !errors.Is(err, mongodb.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestReadSingleSummaryKeepsAllFields(t *testing.T) {
	store := newFakeSummaryStore()
	store.summaries["summary-1"] = models.DashboardSummary{
		ID:       "summary-1",
		IDUser:   "user-1",
		Calendar: map[string][]models.ForecastDay{"janeiro": {{Date: "20260101"}}},
	}
	svc := NewService(&fakeRecordLister{}, store, nil)

	summaries, err := svc.Read(context.Background(), "user-1", "summary-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Calendar == nil {
		t.Fatalf("single read must include the calendar, got %+v", summaries)
	}
}

func TestReadMissingSummaryIsNotFound(t *testing.T) {
	svc := NewService(&fakeRecordLister{}, newFakeSummaryStore(), nil)

	_, err := svc.Read(context.Background(), "user-1", "missing")
	if !errors.Is(err, mongodb.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
