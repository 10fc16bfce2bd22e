package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/orionbeers/planting-backend/internal/domain/models"
	"github.com/orionbeers/planting-backend/internal/repository/mongodb"
)

type fakeUserStore struct {
	users   map[string]models.User
	updates int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) InsertUser(ctx context.Context, user models.User) (models.User, error) {
	user.ID = "user-1"
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserStore) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if user, ok := f.users[email]; ok {
		return user, nil
	}
	return models.User{}, mongodb.ErrNotFound
}

func (f *fakeUserStore) UpdateUserByEmail(ctx context.Context, email string, update models.UserUpdate) error {
	user, ok := f.users[email]
	if !ok {
		return mongodb.ErrNotFound
	}
	if update.IsEmpty() {
		return mongodb.ErrNoChanges
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Avatar != nil {
		user.Avatar = *update.Avatar
	}
	f.users[email] = user
	f.updates++
	return nil
}

func userTestEngine(store UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewUserHandler(store, nil)

	r := gin.New()
	r.GET("/users", handler.Get)
	r.POST("/users", handler.Create)
	r.PATCH("/users", handler.Update)
	return r
}

func TestUserGetRequiresEmail(t *testing.T) {
	engine := userTestEngine(newFakeUserStore())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUserGetNotFound(t *testing.T) {
	engine := userTestEngine(newFakeUserStore())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users?email=ghost@example.com", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUserCreateAndGet(t *testing.T) {
	store := newFakeUserStore()
	engine := userTestEngine(store)

	body := `{"email":"farmer@example.com","name":"Farmer","uid":"google-1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users?email=farmer@example.com", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestUserCreateRejectsInvalidEmail(t *testing.T) {
	engine := userTestEngine(newFakeUserStore())

	body := `{"email":"not-an-email","name":"Farmer","uid":"google-1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUserUpdateWithNoChangesIsAnError(t *testing.T) {
	store := newFakeUserStore()
	store.users["farmer@example.com"] = models.User{ID: "user-1", Email: "farmer@example.com"}
	engine := userTestEngine(store)

	body := `{"email":"farmer@example.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("no-op update must not be a silent success, got %d", w.Code)
	}
	if store.updates != 0 {
		t.Fatal("store must not record an update")
	}
}
