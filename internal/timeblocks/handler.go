package timeblocks

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/daybook/backend/internal/models"
	"github.com/gorilla/mux"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

// ── Time Blocks ─────────────────────────────────────────

func (h *Handler) ListBlocks(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	// Defaults to the current UTC day.
	day := time.Now().UTC().Truncate(24 * time.Hour)
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "date must be YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	blocks, err := h.store.ListBlocks(userID, day, day.AddDate(0, 0, 1))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list blocks"})
		return
	}
	if blocks == nil {
		blocks = []models.TimeBlock{}
	}
	writeJSON(w, http.StatusOK, blocks)
}

func (h *Handler) CreateBlock(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	req, ok := decodeBlockRequest(w, r)
	if !ok {
		return
	}

	block, err := h.store.CreateBlock(userID, req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create block"})
		return
	}
	writeJSON(w, http.StatusCreated, block)
}

func (h *Handler) UpdateBlock(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	blockID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid block ID"})
		return
	}

	req, ok := decodeBlockRequest(w, r)
	if !ok {
		return
	}

	block, err := h.store.UpdateBlock(userID, blockID, req)
	if errors.Is(err, models.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Block not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update block"})
		return
	}
	writeJSON(w, http.StatusOK, block)
}

func (h *Handler) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	blockID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid block ID"})
		return
	}

	if err := h.store.DeleteBlock(userID, blockID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Block not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete block"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeBlockRequest(w http.ResponseWriter, r *http.Request) (models.TimeBlockRequest, bool) {
	var req models.TimeBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return req, false
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Title is required"})
		return req, false
	}
	if !req.EndTime.After(req.StartTime) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "end_time must be after start_time"})
		return req, false
	}
	return req, true
}

// ── Categories ──────────────────────────────────────────

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	categories, err := h.store.ListCategories(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list categories"})
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	req, ok := decodeCategoryRequest(w, r)
	if !ok {
		return
	}

	category, err := h.store.CreateCategory(userID, req)
	if err != nil {
		if strings.Contains(err.Error(), "categories_user_id_name_key") {
			writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Category already exists"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create category"})
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	categoryID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid category ID"})
		return
	}

	req, ok := decodeCategoryRequest(w, r)
	if !ok {
		return
	}

	category, err := h.store.UpdateCategory(userID, categoryID, req)
	if errors.Is(err, models.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Category not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update category"})
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	categoryID, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid category ID"})
		return
	}

	if err := h.store.DeleteCategory(userID, categoryID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Category not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete category"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeCategoryRequest(w http.ResponseWriter, r *http.Request) (models.CategoryRequest, bool) {
	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return req, false
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Name is required"})
		return req, false
	}
	if req.Color == "" {
		req.Color = "#6b7280"
	}
	return req, true
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
