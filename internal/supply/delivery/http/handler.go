package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	invdomain "github.com/tair/supply-chain/internal/inventory/domain"
	"github.com/tair/supply-chain/internal/supply/domain"
	"github.com/tair/supply-chain/internal/supply/usecase/command"
	"github.com/tair/supply-chain/internal/supply/usecase/query"
	"github.com/tair/supply-chain/pkg/logger"
)

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supply_service_requests_total",
			Help: "Total number of requests to the supply service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "supply_service_request_duration_seconds",
			Help:    "Duration of supply service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// SupplyHandler handles HTTP requests for supply events using CQRS handlers
type SupplyHandler struct {
	createHandler *command.CreateEventHandler
	updateHandler *command.UpdateEventHandler
	listHandler   *query.ListEventsHandler
}

// NewSupplyHandler creates a new supply handler
func NewSupplyHandler(
	createHandler *command.CreateEventHandler,
	updateHandler *command.UpdateEventHandler,
	listHandler *query.ListEventsHandler,
) *SupplyHandler {
	return &SupplyHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		listHandler:   listHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// eventRequest is the boundary shape of a supply event. Timestamps cross as
// RFC-3339 strings and quantities as JSON numbers.
type eventRequest struct {
	ID                   string  `json:"id"`
	ItemID               *string `json:"item_id"`
	Quantity             *int64  `json:"quantity"`
	Movement             *string `json:"movement"`
	Status               *string `json:"status"`
	WarehouseID          *string `json:"warehouse_id"`
	CourierID            *string `json:"courier_id"`
	SupplierID           *string `json:"supplier_id"`
	Destination          *string `json:"destination"`
	OrderDate            *string `json:"order_date"`
	ExpectedDeliveryDate *string `json:"expected_delivery_date"`
	ShippedOn            *string `json:"shipped_on"`
	DeliveryDate         *string `json:"delivery_date"`
}

// CreateEvent handles POST /api/supplies
func (h *SupplyHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateEventCommand{
		ItemID:      deref(req.ItemID),
		Movement:    domain.Movement(deref(req.Movement)),
		Status:      domain.Status(deref(req.Status)),
		WarehouseID: deref(req.WarehouseID),
		CourierID:   deref(req.CourierID),
		SupplierID:  deref(req.SupplierID),
		Destination: deref(req.Destination),
	}
	if req.Quantity != nil {
		cmd.Quantity = *req.Quantity
	}

	var err error
	if cmd.OrderDate, err = parseTime(req.OrderDate, "order_date"); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}
	if cmd.ExpectedDeliveryDate, err = parseTime(req.ExpectedDeliveryDate, "expected_delivery_date"); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}
	if cmd.ShippedOn, err = parseTime(req.ShippedOn, "shipped_on"); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}
	if cmd.DeliveryDate, err = parseTime(req.DeliveryDate, "delivery_date"); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	ev, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create supply event")
		respondJSON(w, statusFor(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Supply event recorded successfully",
		Data:    ev,
	})
}

// UpdateEvent handles PATCH /api/supplies
func (h *SupplyHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	patch := domain.SupplyPatch{
		ID:          req.ID,
		ItemID:      req.ItemID,
		Quantity:    req.Quantity,
		WarehouseID: req.WarehouseID,
		CourierID:   req.CourierID,
		SupplierID:  req.SupplierID,
		Destination: req.Destination,
	}
	if req.Movement != nil {
		m := domain.Movement(*req.Movement)
		patch.Movement = &m
	}
	if req.Status != nil {
		s := domain.Status(*req.Status)
		patch.Status = &s
	}

	var err error
	if patch.OrderDate, err = parseTime(req.OrderDate, "order_date"); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}
	if patch.ExpectedDeliveryDate, err = parseTime(req.ExpectedDeliveryDate, "expected_delivery_date"); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}
	if patch.ShippedOn, err = parseTime(req.ShippedOn, "shipped_on"); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}
	if patch.DeliveryDate, err = parseTime(req.DeliveryDate, "delivery_date"); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	ev, err := h.updateHandler.Handle(r.Context(), command.UpdateEventCommand{Patch: patch})
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("event_id", req.ID).Msg("Failed to update supply event")
		respondJSON(w, statusFor(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Supply event updated successfully",
		Data:    ev,
	})
}

// ListEvents handles GET /api/supplies
func (h *SupplyHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	strict := r.URL.Query().Get("strict") == "true"

	events, err := h.listHandler.Handle(r.Context(), query.ListEventsQuery{Strict: strict})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list supply events")
		respondJSON(w, statusFor(err), Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    events,
	})
}

// RegisterRoutes registers all supply routes
func (h *SupplyHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/supplies", h.metricsMiddleware("/api/supplies", h.ListEvents)).Methods("GET")
	router.HandleFunc("/api/supplies", h.metricsMiddleware("/api/supplies", h.CreateEvent)).Methods("POST")
	router.HandleFunc("/api/supplies", h.metricsMiddleware("/api/supplies", h.UpdateEvent)).Methods("PATCH")
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *SupplyHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalid), errors.Is(err, invdomain.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, invdomain.ErrInsufficientInventory):
		return http.StatusConflict
	case errors.Is(err, domain.ErrIntegrity):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func parseTime(v *string, field string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %v", field, err)
	}
	return &t, nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
