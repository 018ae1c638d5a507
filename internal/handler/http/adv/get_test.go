package adv_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"advboard/internal/domain/entity"
)

func TestGetHandler(t *testing.T) {
	mux, store := newMux()
	created := time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC)
	store.advs.data[7] = &entity.Adv{
		ID:        7,
		Title:     "a perfectly fine title",
		Desc:      "some description",
		OwnerID:   1,
		CreatedAt: created,
	}

	req := httptest.NewRequest(http.MethodGet, "/adv/7", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Owner       string `json:"owner"`
		CreatedAt   string `json:"created_at"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Title != "a perfectly fine title" {
		t.Errorf("title = %q", resp.Title)
	}
	if resp.Description != "some description" {
		t.Errorf("description = %q", resp.Description)
	}
	if resp.Owner != "alice" {
		t.Errorf("owner = %q, want %q", resp.Owner, "alice")
	}
	if resp.CreatedAt != created.Format(time.RFC3339) {
		t.Errorf("created_at = %q, want %q", resp.CreatedAt, created.Format(time.RFC3339))
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	mux, _ := newMux()

	req := httptest.NewRequest(http.MethodGet, "/adv/999999", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	var resp struct {
		Status      string `json:"status"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != "error" {
		t.Errorf("status = %q, want %q", resp.Status, "error")
	}
	if resp.Description != "adv_id 999999 not found" {
		t.Errorf("description = %q", resp.Description)
	}
}

func TestGetHandler_NonNumericID(t *testing.T) {
	mux, _ := newMux()

	// 数字以外の id セグメントはルーティングミス扱い
	req := httptest.NewRequest(http.MethodGet, "/adv/abc", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestGetHandler_DanglingOwner(t *testing.T) {
	mux, store := newMux()
	store.advs.data[3] = &entity.Adv{ID: 3, Title: "a perfectly fine title", OwnerID: 42}

	req := httptest.NewRequest(http.MethodGet, "/adv/3", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}

	var resp struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// 内部事情はレスポンスに漏らさない
	if resp.Description != "internal server error" {
		t.Errorf("description = %q", resp.Description)
	}
}
