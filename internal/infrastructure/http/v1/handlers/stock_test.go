package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officex/internal/domain/inventory"
	"officex/internal/infrastructure/http/v1/middleware"
)

type mockStockRepo struct {
	records []inventory.StockRecord
	err     error
}

func (m *mockStockRepo) GetAll(ctx context.Context) ([]inventory.StockRecord, error) {
	return m.records, m.err
}

func (m *mockStockRepo) Find(ctx context.Context, filter inventory.Filter) ([]inventory.StockRecord, error) {
	return m.records, m.err
}

func newStockRouter(repo inventory.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())

	handler := NewStockHandler(NewBaseHandler(), inventory.NewService(repo))
	handler.RegisterRoutes(router.Group("/api/v1/inventory"))
	return router
}

func TestGetStock_OK(t *testing.T) {
	repo := &mockStockRepo{
		records: []inventory.StockRecord{
			{ProductName: "Printer paper A4", LocationName: "Main store", Quantity: 120},
			{ProductName: "Toner", LocationName: "Main store", Quantity: 3},
		},
	}
	router := newStockRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/stock", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// The stock endpoint answers with a bare array, no envelope.
	var body []inventory.StockRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 2)
	assert.Equal(t, "Printer paper A4", body[0].ProductName)
}

func TestGetStock_EmptyIsArrayNotNull(t *testing.T) {
	router := newStockRouter(&mockStockRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/stock", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetStock_RepoFailureReturns500WithCause(t *testing.T) {
	repo := &mockStockRepo{err: errors.New("connection reset by peer")}
	router := newStockRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/stock", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "PERSISTENCE_ERROR", body.Code)
	assert.Equal(t, "Internal Server Error", body.Message)
	assert.Equal(t, "connection reset by peer", body.Details["cause"])
}

func TestGetStock_InvalidLocationID(t *testing.T) {
	router := newStockRouter(&mockStockRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/stock?locationId=not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
