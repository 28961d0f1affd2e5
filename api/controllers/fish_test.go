package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	speciessvc "github.com/fishweb-iq/fishweb-backend/internal/species"
)

func fishRouter() http.Handler {
	svc := speciessvc.NewService()
	r := chi.NewRouter()
	r.Get("/fish", FishList(svc, nil))
	r.Get("/fish/setup", FishRecommendSetup(svc, nil))
	r.Get("/fish/{speciesId}", FishDetail(svc, nil))
	r.Get("/fish/{speciesId}/breeding-timeline", FishBreedingTimeline(svc, nil))
	return r
}

func TestFishDetailKnownSpecies(t *testing.T) {
	resp := httptest.NewRecorder()
	fishRouter().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/fish/betta-splendens", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data speciessvc.Species `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ScientificName != "Betta splendens" {
		t.Fatalf("unexpected species: %s", envelope.Data.ScientificName)
	}
}

func TestFishDetailUnknownSpecies(t *testing.T) {
	resp := httptest.NewRecorder()
	fishRouter().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/fish/kraken", nil))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestFishBreedingTimelineRejectsBadDate(t *testing.T) {
	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fish/guppy/breeding-timeline?pair_date=next-tuesday", nil)
	fishRouter().ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestFishRecommendSetupRequiresTankSize(t *testing.T) {
	resp := httptest.NewRecorder()
	fishRouter().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/fish/setup", nil))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestFishListFilterByCategory(t *testing.T) {
	resp := httptest.NewRecorder()
	fishRouter().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/fish?category=cichlid", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data []speciessvc.Species `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) == 0 {
		t.Fatalf("expected cichlid entries")
	}
	for _, sp := range envelope.Data {
		if sp.Category != "cichlid" {
			t.Fatalf("unexpected category %s", sp.Category)
		}
	}
}
