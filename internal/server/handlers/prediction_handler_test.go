package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/orionbeers/planting-backend/internal/domain/models"
	"github.com/orionbeers/planting-backend/internal/service/dashboard"
)

type fakePublisher struct {
	published []models.PredictionMessage
}

func (f *fakePublisher) PublishPrediction(ctx context.Context, msg models.PredictionMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	f.published = append(f.published, msg)
	return nil
}

type emptyRecordLister struct{}

func (emptyRecordLister) ListPredictionRecords(ctx context.Context, idUser, idRequest string) ([]models.PredictionRecord, error) {
	return nil, nil
}

type noopSummaryStore struct{}

func (noopSummaryStore) InsertDashboard(ctx context.Context, s models.DashboardSummary) (models.DashboardSummary, error) {
	return s, nil
}

func (noopSummaryStore) FindDashboard(ctx context.Context, idUser, idSummary string) (models.DashboardSummary, error) {
	return models.DashboardSummary{}, nil
}

func (noopSummaryStore) ListDashboardsByUser(ctx context.Context, idUser string) ([]models.DashboardSummary, error) {
	return nil, nil
}

func predictionTestEngine(publisher *fakePublisher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	dashboards := dashboard.NewService(emptyRecordLister{}, noopSummaryStore{}, nil)
	handler := NewPredictionHandler(publisher, dashboards, nil)

	r := gin.New()
	r.POST("/prediction", handler.Start)
	r.GET("/prediction", handler.Result)
	return r
}

func TestPredictionStartPublishesMessage(t *testing.T) {
	publisher := &fakePublisher{}
	engine := predictionTestEngine(publisher)

	body := `{"id_user":"user-1","crop_type":"tomato","latitude":-23.55,"longitude":-46.63,"start_month":"January"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/prediction", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
	}
	if len(publisher.published) != 1 {
		t.Fatalf("expected one published message, got %d", len(publisher.published))
	}

	msg := publisher.published[0]
	if msg.SchemaVersion != models.MessageSchemaVersion {
		t.Fatalf("message carries wrong schema version: %d", msg.SchemaVersion)
	}
	if msg.IDRequest == "" {
		t.Fatal("handler must mint a request id")
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["id_request"] != msg.IDRequest {
		t.Fatalf("response id_request %q does not match published %q", resp["id_request"], msg.IDRequest)
	}
}

func TestPredictionStartRejectsUnknownMonth(t *testing.T) {
	publisher := &fakePublisher{}
	engine := predictionTestEngine(publisher)

	body := `{"id_user":"user-1","crop_type":"tomato","latitude":0,"longitude":0,"start_month":"Janvier"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/prediction", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if len(publisher.published) != 0 {
		t.Fatal("nothing must be published for an invalid request")
	}
}

func TestPredictionResultWithoutRecordsIs404(t *testing.T) {
	engine := predictionTestEngine(&fakePublisher{})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/prediction?id_user=user-1&id_request=req-1", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
