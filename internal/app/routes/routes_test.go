package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"village-admin-service/internal/domain/models"
	"village-admin-service/internal/error/code"
	"village-admin-service/internal/infrastructure/config"
)

// envelope mirrors the response shape with the payload left raw for
// per-test decoding
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Resident{},
		&models.FinanceTransaction{},
		&models.Budget{},
		&models.Event{},
		&models.Asset{},
		&models.PublicService{},
	))

	return SetupRouter(db, &config.Config{EnvType: "LOCAL", AllowedOrigin: "*"})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "pong"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestResidentLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/residents", gin.H{
		"name":    "Budi Santoso",
		"address": "Jl. Merdeka No. 1",
		"job":     "Petani",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, code.ErrSuccess, env.Code)

	var created models.Resident
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotZero(t, created.ID)

	w, env = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/residents/%d", created.ID), gin.H{
		"job": "Pedagang",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Resident
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Pedagang", updated.Job)
	assert.Equal(t, "Budi Santoso", updated.Name)

	w, env = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/residents/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted": true}`, string(env.Data))

	w, _ = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/residents/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResidentValidationErrors(t *testing.T) {
	r := newTestRouter(t)

	// missing required fields
	w, _ := doJSON(t, r, http.MethodPost, "/api/residents", gin.H{"name": "Budi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// non-numeric id
	w, env := doJSON(t, r, http.MethodGet, "/api/residents/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, code.ErrValidation, env.Code)

	// null for a required column is rejected before touching the database
	w, _ = doJSON(t, r, http.MethodPut, "/api/residents/1", json.RawMessage(`{"name": null}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFinanceSummaryOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/finances", gin.H{
		"type": "income", "description": "Dana Desa", "amount": "50000000.00",
		"category": "dana_desa", "date": "2024-01-15",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/finances", gin.H{
		"type": "expense", "description": "Perbaikan jalan", "amount": "12000000.00",
		"category": "infrastruktur", "date": "2024-02-20",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, r, http.MethodGet, "/api/finances/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		TotalIncome  string `json:"totalIncome"`
		TotalExpense string `json:"totalExpense"`
		Balance      string `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, "50000000", summary.TotalIncome)
	assert.Equal(t, "12000000", summary.TotalExpense)
	assert.Equal(t, "38000000", summary.Balance)
}

func TestFinanceRejectsInvalidType(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/finances", gin.H{
		"type": "transfer", "description": "x", "amount": "100.00",
		"category": "lain", "date": "2024-01-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBudgetYearRouteOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/budgets", gin.H{
		"category": "infrastruktur", "allocated_amount": "50000000.00", "year": 2024,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, r, http.MethodGet, "/api/budgets/year/2024", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var budgets []models.Budget
	require.NoError(t, json.Unmarshal(env.Data, &budgets))
	require.Len(t, budgets, 1)
	assert.True(t, budgets[0].UsedAmount.IsZero())

	w, env = doJSON(t, r, http.MethodGet, "/api/budgets/year/2020", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &budgets))
	assert.Empty(t, budgets)
}

func TestServiceToggleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/services", gin.H{
		"name":        "Surat Keterangan Domisili",
		"description": "Penerbitan surat domisili",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.PublicService
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.True(t, created.IsActive)

	w, env = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/services/%d/toggle", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var toggled models.PublicService
	require.NoError(t, json.Unmarshal(env.Data, &toggled))
	assert.False(t, toggled.IsActive)

	w, _ = doJSON(t, r, http.MethodPatch, "/api/services/9999/toggle", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpcomingEventsOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/events", gin.H{
		"name": "Kerja Bakti", "location": "Balai Desa",
		"event_date": "2024-09-01", "organizer": "Karang Taruna",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/events", gin.H{
		"name": "HUT RI", "location": "Lapangan", "event_date": "2023-08-17",
		"organizer": "Perangkat Desa", "status": "completed",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, r, http.MethodGet, "/api/events/upcoming", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var events []models.Event
	require.NoError(t, json.Unmarshal(env.Data, &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Kerja Bakti", events[0].Name)
}

func TestAssetSummaryOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/assets", gin.H{
		"name": "Laptop", "category": "elektronik", "value": "100000.00",
		"condition": "excellent", "location": "Kantor Desa",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/assets", gin.H{
		"name": "Kursi rusak", "category": "mebel", "value": "10000.00",
		"condition": "poor", "location": "Gudang",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, r, http.MethodGet, "/api/assets/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		TotalValue  string           `json:"totalValue"`
		TotalCount  int64            `json:"totalCount"`
		ByCondition map[string]int64 `json:"byCondition"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, "110000", summary.TotalValue)
	assert.Equal(t, int64(2), summary.TotalCount)
	assert.Equal(t, int64(1), summary.ByCondition["excellent"])
	assert.Equal(t, int64(1), summary.ByCondition["poor"])
	assert.Equal(t, int64(0), summary.ByCondition["good"])
	assert.Equal(t, int64(0), summary.ByCondition["fair"])
}
