package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"tripfluencer/internal/http/handlers"
	"tripfluencer/internal/modules/usage"
)

func summaryRouter(svc *usage.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/generations/summary", handlers.NewUsageHandler(svc).Summary)
	return r
}

func TestUsageSummary_Disabled(t *testing.T) {
	w := httptest.NewRecorder()
	summaryRouter(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/generations/summary", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Enabled     bool           `json:"enabled"`
		WindowHours int            `json:"window_hours"`
		Outcomes    map[string]int `json:"outcomes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Enabled || body.WindowHours != 24 || len(body.Outcomes) != 0 {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestUsageSummary_Counts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.ExpectQuery("FROM generation_log").
		WillReturnRows(sqlmock.NewRows([]string{"outcome", "count"}).AddRow("success", 3))

	w := httptest.NewRecorder()
	r := summaryRouter(usage.NewService(usage.NewStore(db), nil))
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/generations/summary?hours=6", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Enabled     bool           `json:"enabled"`
		WindowHours int            `json:"window_hours"`
		Outcomes    map[string]int `json:"outcomes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Enabled || body.WindowHours != 6 || body.Outcomes["success"] != 3 {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestUsageSummary_BadWindow(t *testing.T) {
	for _, q := range []string{"0", "-3", "abc", "10000"} {
		w := httptest.NewRecorder()
		summaryRouter(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/generations/summary?hours="+q, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("hours=%s: expected 400, got %d", q, w.Code)
		}
	}
}
