package questions

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/daybook/backend/internal/generator"
	"github.com/daybook/backend/internal/models"
	"github.com/gorilla/mux"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// getUserID extracts the authenticated user ID from the request context.
func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

func (h *Handler) GetToday(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.service.Today(userID, time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetRecommended(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var hint *string
	if c := r.URL.Query().Get("category"); c != "" {
		hint = &c
	}

	resp, err := h.service.Recommend(userID, hint)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	questionID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid question ID"})
		return
	}

	var req models.AnswerQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	answer, err := h.service.RecordAnswer(userID, questionID, date, req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, answer)
}

func (h *Handler) ListAnswers(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	limit := intQueryParam(r.URL.Query(), "limit", 20)
	answers, err := h.service.ListAnswers(userID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, answers)
}

func (h *Handler) RateQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	questionID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid question ID"})
		return
	}

	var req models.RateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	rating, err := h.service.Rate(userID, questionID, req.Rating)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rating)
}

func (h *Handler) GetQuestionRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	questionID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid question ID"})
		return
	}

	resp, err := h.service.GetRating(userID, questionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ListRatings(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	limit := intQueryParam(r.URL.Query(), "limit", 20)
	entries, err := h.service.ListRatings(userID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// ── AI Endpoints ────────────────────────────────────────

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req models.GenerateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Config.APIKey == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "api_key is required"})
		return
	}

	resp, err := h.service.GenerateQuestions(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) PingAI(w http.ResponseWriter, r *http.Request) {
	if _, ok := getUserID(r); !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req models.PingAIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Config.APIKey == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "api_key is required"})
		return
	}

	// Ping reports failure in the body rather than via status codes so the
	// settings UI can render latency and error uniformly.
	writeJSON(w, http.StatusOK, h.service.PingAI(r.Context(), req.Config))
}

// ── Helpers ─────────────────────────────────────────────

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func intQueryParam(query url.Values, key string, fallback int) int {
	if v := query.Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func writeServiceError(w http.ResponseWriter, err error) {
	var ve *ValidationError
	var ue *generator.UpstreamError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: ve.Msg})
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Question not found"})
	case errors.As(err, &ue):
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: ue.Error()})
	default:
		log.Printf("ERROR: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
