package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	dirdomain "github.com/tair/supply-chain/internal/directory/domain"
	dirrepository "github.com/tair/supply-chain/internal/directory/repository"
	invrepository "github.com/tair/supply-chain/internal/inventory/repository"
	invcommand "github.com/tair/supply-chain/internal/inventory/usecase/command"
	"github.com/tair/supply-chain/internal/store"
	"github.com/tair/supply-chain/internal/supply/repository"
	"github.com/tair/supply-chain/internal/supply/usecase/command"
	"github.com/tair/supply-chain/internal/supply/usecase/query"
)

func newTestRouter(t *testing.T) (*mux.Router, *invcommand.ReceiveHandler) {
	t.Helper()

	st := store.NewMemStore()
	events := repository.NewStoreSupplyRepository(st)
	ledger := invrepository.NewStoreInventoryRepository(st)
	dir := dirrepository.NewStoreDirectoryRepository(st)
	locks := invcommand.NewItemLocks()
	reserve := invcommand.NewReserveHandler(ledger, locks)
	receive := invcommand.NewReceiveHandler(ledger, locks)

	ctx := context.Background()
	if err := dir.AddWarehouse(ctx, &dirdomain.Warehouse{ID: "wh-1", Name: "Central", Location: "Berlin"}); err != nil {
		t.Fatalf("seed warehouse: %v", err)
	}
	if err := dir.AddCourier(ctx, &dirdomain.Courier{ID: "cr-1", Name: "FastShip", Location: "Hamburg"}); err != nil {
		t.Fatalf("seed courier: %v", err)
	}
	if err := dir.AddSupplier(ctx, &dirdomain.Supplier{ID: "sp-1", Name: "Acme", Location: "Munich"}); err != nil {
		t.Fatalf("seed supplier: %v", err)
	}

	handler := NewSupplyHandler(
		command.NewCreateEventHandler(events, reserve, receive, nil),
		command.NewUpdateEventHandler(events, receive, nil),
		query.NewListEventsHandler(events, dir),
	)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, receive
}

func postJSON(t *testing.T, router *mux.Router, method, path string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validEventBody() map[string]any {
	return map[string]any{
		"item_id":      "item-1",
		"quantity":     10,
		"movement":     "Inbound",
		"status":       "Ordered",
		"warehouse_id": "wh-1",
		"courier_id":   "cr-1",
		"supplier_id":  "sp-1",
		"destination":  "Berlin",
		"order_date":   "2026-08-01T10:00:00Z",
	}
}

func TestCreateEventEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := postJSON(t, router, http.MethodPost, "/api/supplies", validEventBody())
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success response: %+v", resp)
	}
}

func TestCreateEventEndpointValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	body := validEventBody()
	body["quantity"] = 0
	rec := postJSON(t, router, http.MethodPost, "/api/supplies", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	body = validEventBody()
	body["order_date"] = "not-a-timestamp"
	rec = postJSON(t, router, http.MethodPost, "/api/supplies", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad timestamp, got %d", rec.Code)
	}
}

func TestCreateOutboundWithoutStockConflicts(t *testing.T) {
	router, _ := newTestRouter(t)

	body := validEventBody()
	body["movement"] = "Outbound"
	rec := postJSON(t, router, http.MethodPost, "/api/supplies", body)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}

	// The rejected event must not appear in the listing
	list := postJSON(t, router, http.MethodGet, "/api/supplies", nil)
	var resp struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(list.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if len(resp.Data) != 0 {
		t.Fatalf("rejected event was persisted: %d events listed", len(resp.Data))
	}
}

func TestUpdateEventEndpointNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := postJSON(t, router, http.MethodPatch, "/api/supplies", map[string]any{
		"id":     "no-such-event",
		"status": "Shipped",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestListEventsEndpointEnriches(t *testing.T) {
	router, _ := newTestRouter(t)

	if rec := postJSON(t, router, http.MethodPost, "/api/supplies", validEventBody()); rec.Code != http.StatusCreated {
		t.Fatalf("create: %d", rec.Code)
	}

	rec := postJSON(t, router, http.MethodGet, "/api/supplies", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data []struct {
			ItemID    string `json:"item_id"`
			Warehouse *struct {
				Name string `json:"name"`
			} `json:"warehouse"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected 1 event, got %d", len(resp.Data))
	}
	if resp.Data[0].Warehouse == nil || resp.Data[0].Warehouse.Name != "Central" {
		t.Fatalf("warehouse join missing: %+v", resp.Data[0])
	}
}
