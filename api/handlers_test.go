package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cheapstop/backend-go/models"
)

func doSearch(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(nil)
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Search(rec, req)
	return rec
}

func TestSearch(t *testing.T) {
	rec := doSearch(t, `{"query":"eggs, milk","lat":40.0,"lng":-74.0,"radiusMiles":5.0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Query != "eggs, milk" {
		t.Errorf("Query not echoed verbatim: %q", resp.Query)
	}
	if resp.Mode != "live" {
		t.Errorf("Mode = %q, want live", resp.Mode)
	}
	if resp.TotalStores != len(resp.Stores) {
		t.Errorf("TotalStores %d != len(Stores) %d", resp.TotalStores, len(resp.Stores))
	}
	if resp.TotalStores != 3 {
		t.Errorf("Expected 3 stores within 5 miles, got %d", resp.TotalStores)
	}
	for i := 1; i < len(resp.Stores); i++ {
		if resp.Stores[i].TotalPrice < resp.Stores[i-1].TotalPrice {
			t.Errorf("Stores not sorted by total price ascending")
		}
	}
}

func TestSearchDefaultRadius(t *testing.T) {
	// radiusMiles omitted entirely: defaults to 5.0, all offsets are sub-mile.
	rec := doSearch(t, `{"query":"eggs","lat":40.0,"lng":-74.0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var resp models.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.TotalStores != 3 {
		t.Errorf("Expected 3 stores with default radius, got %d", resp.TotalStores)
	}
}

func TestSearchZeroRadiusDisablesFilter(t *testing.T) {
	rec := doSearch(t, `{"query":"eggs","lat":40.0,"lng":-74.0,"radiusMiles":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var resp models.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.TotalStores != 3 {
		t.Errorf("Zero radius should disable filtering, got %d stores", resp.TotalStores)
	}
}

func TestSearchTinyRadius(t *testing.T) {
	rec := doSearch(t, `{"query":"eggs","lat":40.0,"lng":-74.0,"radiusMiles":0.001}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var resp models.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.TotalStores != 0 {
		t.Errorf("Expected 0 stores, got %d", resp.TotalStores)
	}
	if resp.Stores == nil {
		t.Error("Stores should be an empty array, not null")
	}
}

func TestSearchEmptyItemList(t *testing.T) {
	for _, body := range []string{
		`{"query":"","lat":40.0,"lng":-74.0}`,
		`{"query":" , ,","lat":40.0,"lng":-74.0}`,
		`{"query":"   ","lat":40.0,"lng":-74.0}`,
	} {
		rec := doSearch(t, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestSearchInvalidBody(t *testing.T) {
	rec := doSearch(t, `{"query":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed JSON, got %d", rec.Code)
	}
}

func TestRoot(t *testing.T) {
	h := NewHandler(nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Root(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["message"] != "CheapStop backend running" {
		t.Errorf("Unexpected root message: %q", body["message"])
	}
}

func TestDBStatusWithoutDatabase(t *testing.T) {
	h := NewHandler(nil)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	h.DBStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 even without a database, got %d", rec.Code)
	}
	var resp DBStatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Backend != "running" {
		t.Errorf("Backend = %q, want running", resp.Backend)
	}
	if resp.Database != "not available" {
		t.Errorf("Database = %q, want not available", resp.Database)
	}
	if resp.Tables == nil {
		t.Error("Tables should be an empty array, not null")
	}
}
