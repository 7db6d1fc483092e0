package sales

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"officex/internal/core/id"
)

func TestRecentSales_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/sales" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"id":"` + id.New().String() + `","number":"SO-2026-00001","customerName":"Acme","total":"120.50"},
			{"id":"` + id.New().String() + `","number":"SO-2026-00002","customerName":"Globex","total":"74.00"}
		]}`))
	}))
	defer srv.Close()

	sales := NewClient(srv.URL).RecentSales(context.Background(), "", 10)
	if len(sales) != 2 {
		t.Fatalf("want 2 sales, got %d", len(sales))
	}
	if sales[0].Number != "SO-2026-00001" {
		t.Errorf("unexpected first sale: %+v", sales[0])
	}
}

func TestRecentSales_ForwardsAuthorization(t *testing.T) {
	const token = "Bearer caller-token"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != token {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"id":"` + id.New().String() + `","number":"SO-2026-00003","customerName":"Initech","total":"15.00"}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	sales := client.RecentSales(context.Background(), token, 10)
	if len(sales) != 1 {
		t.Fatalf("want 1 sale with forwarded credentials, got %d", len(sales))
	}

	// Without credentials the protected endpoint rejects and the client degrades.
	sales = client.RecentSales(context.Background(), "", 10)
	if len(sales) != 0 {
		t.Errorf("want empty slice without credentials, got %v", sales)
	}
}

func TestRecentSales_Non2xxDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	sales := NewClient(srv.URL).RecentSales(context.Background(), "", 10)
	if sales == nil {
		t.Fatal("want empty slice, got nil")
	}
	if len(sales) != 0 {
		t.Errorf("want empty slice, got %v", sales)
	}
}

func TestRecentSales_TransportFailureDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	sales := NewClient(srv.URL).RecentSales(context.Background(), "", 10)
	if sales == nil || len(sales) != 0 {
		t.Errorf("want empty slice on transport failure, got %v", sales)
	}
}

func TestRecentSales_BadPayloadDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": "not-a-list"`))
	}))
	defer srv.Close()

	sales := NewClient(srv.URL).RecentSales(context.Background(), "", 10)
	if sales == nil || len(sales) != 0 {
		t.Errorf("want empty slice on decode failure, got %v", sales)
	}
}
