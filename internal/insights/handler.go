package insights

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/daybook/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

var validPeriods = map[string]bool{"week": true, "month": true, "year": true, "all": true, "": true}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.service.Dashboard(userID, time.Now())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load dashboard"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetStreak(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	streak, err := h.service.Streak(userID, time.Now())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to compute streak"})
		return
	}
	writeJSON(w, http.StatusOK, models.StreakResponse{CurrentStreak: streak})
}

func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	year := intQueryParam(r.URL.Query(), "year", time.Now().UTC().Year())
	if year < 2000 || year > 2100 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid year"})
		return
	}

	resp, err := h.service.Activity(userID, year)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load activity"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	period := r.URL.Query().Get("period")
	if !validPeriods[period] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "period must be 'week', 'month', 'year', or 'all'"})
		return
	}
	if period == "" {
		period = "month"
	}

	resp, err := h.service.Review(userID, period, time.Now())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load review stats"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetGrowth(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	limit := intQueryParam(r.URL.Query(), "limit", 5)
	resp, err := h.service.Growth(userID, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load growth comparison"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func intQueryParam(query url.Values, key string, fallback int) int {
	if v := query.Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
