package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fishweb-iq/fishweb-backend/api/responses"
	"github.com/fishweb-iq/fishweb-backend/api/validators"
	speciessvc "github.com/fishweb-iq/fishweb-backend/internal/species"
	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
	"github.com/fishweb-iq/fishweb-backend/pkg/logger"
)

// FishList serves the species encyclopedia with optional filters.
func FishList(svc *speciessvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "species service unavailable"))
			return
		}

		query := r.URL.Query()
		result := svc.List(speciessvc.ListInput{
			Category:    strings.TrimSpace(query.Get("category")),
			Temperament: strings.TrimSpace(query.Get("temperament")),
			CareLevel:   strings.TrimSpace(query.Get("care_level")),
			Search:      strings.TrimSpace(query.Get("search")),
		})
		responses.WriteSuccess(w, result)
	}
}

// FishDetail returns one species by its catalog id.
func FishDetail(svc *speciessvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "species service unavailable"))
			return
		}

		sp, err := svc.Get(chi.URLParam(r, "speciesId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, sp)
	}
}

// FishBreedingTimeline builds the staged breeding schedule for a species.
// pair_date defaults to today when absent.
func FishBreedingTimeline(svc *speciessvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "species service unavailable"))
			return
		}

		pairDate := time.Now().UTC()
		if raw := strings.TrimSpace(r.URL.Query().Get("pair_date")); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "pair_date must be YYYY-MM-DD"))
				return
			}
			pairDate = parsed
		}

		timeline, err := svc.Timeline(chi.URLParam(r, "speciesId"), pairDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, timeline)
	}
}

// FishRecommendSetup runs the tank setup wizard.
func FishRecommendSetup(svc *speciessvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "species service unavailable"))
			return
		}

		liters, err := validators.ParseQueryInt(r, "tank_liters", 0, 1, 100000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if liters == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "tank_liters is required"))
			return
		}

		rec, err := svc.RecommendSetup(liters, strings.TrimSpace(r.URL.Query().Get("temperament")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rec)
	}
}
