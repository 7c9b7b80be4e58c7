package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/supply-chain/internal/directory/usecase/query"
	"github.com/tair/supply-chain/pkg/logger"
)

// DirectoryHandler handles HTTP requests for reference data
type DirectoryHandler struct {
	listHandler *query.ListDirectoryHandler
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(listHandler *query.ListDirectoryHandler) *DirectoryHandler {
	return &DirectoryHandler{listHandler: listHandler}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListDirectory handles GET /api/lists
func (h *DirectoryHandler) ListDirectory(w http.ResponseWriter, r *http.Request) {
	dir, err := h.listHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list directory")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list directory",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    dir,
	})
}

// RegisterRoutes registers all directory routes
func (h *DirectoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/lists", h.ListDirectory).Methods("GET")
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
