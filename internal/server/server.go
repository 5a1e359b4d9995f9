package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/d3ku010/macroo/internal/report"
	"github.com/d3ku010/macroo/internal/store"
	"github.com/d3ku010/macroo/internal/trend"
)

// NewRouter exposes the aggregation pipeline to external chart renderers.
// Responses are the same chart-ready contracts the CLI prints as JSON.
func NewRouter(repo store.Repository) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")
	r.HandleFunc("/api/profile", profileHandler(repo)).Methods("GET")
	r.HandleFunc("/api/summary", summaryHandler(repo)).Methods("GET")
	r.HandleFunc("/api/series", seriesHandler(repo)).Methods("GET")
	return r
}

func profileHandler(repo store.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := repo.Profile()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{
			"name":             profile.Name,
			"calorie_target":   profile.CalorieTarget,
			"water_target_ml":  profile.WaterTargetML,
			"protein_target_g": profile.ProteinTargetG,
			"carbs_target_g":   profile.CarbsTargetG,
			"fat_target_g":     profile.FatTargetG,
		})
	}
}

func summaryHandler(repo store.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := queryDate(r, "date", time.Now())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		summary, err := report.Daily(repo, day)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, summary)
	}
}

func seriesHandler(repo store.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		end, err := queryDate(r, "end", time.Now())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		days := trend.DefaultWindowDays
		if raw := r.URL.Query().Get("days"); raw != "" {
			days, err = strconv.Atoi(raw)
			if err != nil || days <= 0 || days > 366 {
				http.Error(w, fmt.Sprintf("invalid days value %q", raw), http.StatusBadRequest)
				return
			}
		}
		monthReport, err := report.Monthly(repo, end, days, r.URL.Query().Get("nutrient"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, monthReport)
	}
}

func queryDate(r *http.Request, key string, fallback time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s value %q (expected YYYY-MM-DD)", key, raw)
	}
	return t, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
