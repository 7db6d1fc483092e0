package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officex/internal/core/id"
	"officex/internal/domain/sales"
	"officex/internal/infrastructure/http/v1/middleware"
)

func newDashboardRouter(client *sales.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())

	handler := NewDashboardHandler(NewBaseHandler(), client)
	handler.RegisterRoutes(router.Group("/api/v1/dashboard"))
	return router
}

func TestDashboardRecentSales_ShowsUpstreamData(t *testing.T) {
	const token = "Bearer office-user-token"

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The sales API sits behind auth; the dashboard must arrive with
		// the caller's credentials.
		if r.Header.Get("Authorization") != token {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"id":"` + id.New().String() + `","number":"SO-2026-00001","customerName":"Acme","total":"120.50"},
			{"id":"` + id.New().String() + `","number":"SO-2026-00002","customerName":"Globex","total":"74.00"}
		]}`))
	}))
	defer upstream.Close()

	router := newDashboardRouter(sales.NewClient(upstream.URL))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/recent-sales", nil)
	req.Header.Set("Authorization", token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items      []sales.Sale `json:"items"`
		Page       int          `json:"page"`
		TotalPages int          `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Items, 2)
	assert.Equal(t, "SO-2026-00001", body.Items[0].Number)
	assert.Equal(t, 1, body.Page)
	assert.Equal(t, 1, body.TotalPages)
}

func TestDashboardRecentSales_UpstreamDownStill200(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // connection refused from here on

	router := newDashboardRouter(sales.NewClient(upstream.URL))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/recent-sales", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items []sales.Sale `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Items)
}
