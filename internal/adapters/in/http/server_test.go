package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shipping/internal/broadcast"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/auth"
	"shipping/internal/pkg/errs"
	"shipping/internal/queue"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTokenCfg = auth.Config{
	Secret:            "test-secret",
	Issuer:            "shipping-test",
	ExpirationMinutes: 15,
}

func mintToken(t *testing.T, userID int64, role string) string {
	t.Helper()
	token, err := auth.MintAccessToken(testTokenCfg, time.Now(), userID, role)
	require.NoError(t, err)
	return token
}

func newTestServer() (*Server, *queue.Dispatcher) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dispatcher := queue.NewDispatcher(logger)
	hub := broadcast.NewHub(logger)

	server := NewServer(
		commands.RegisterUserCommandHandler{},
		commands.LoginUserCommandHandler{},
		commands.CreateShipmentCommandHandler{},
		commands.UpdateShipmentStatusCommandHandler{},
		commands.AssignRouteCommandHandler{},
		queries.GetShipmentsQueryHandler{},
		queries.GetUserShipmentsQueryHandler{},
		queries.GetShipmentHistoryQueryHandler{},
		queries.GetAvailableCarriersQueryHandler{},
		queries.GetPlannedRoutesQueryHandler{},
		dispatcher,
		hub,
		testTokenCfg,
	)
	return server, dispatcher
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("shipment", 7), http.StatusNotFound},
		{"value required", errs.NewValueIsRequiredError("street"), http.StatusBadRequest},
		{"value invalid", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"status unchanged", shipment.ErrStatusUnchanged, http.StatusConflict},
		{"already assigned", commands.ErrShipmentAlreadyAssigned, http.StatusConflict},
		{"assignment conflict", commands.ErrAssignmentConflict, http.StatusConflict},
		{"duplicate object", errs.NewObjectAlreadyExistsError("user.email", "a@b.co"), http.StatusConflict},
		{"carrier unavailable", services.ErrCarrierUnavailable, http.StatusUnprocessableEntity},
		{"insufficient capacity", services.ErrInsufficientCapacity, http.StatusUnprocessableEntity},
		{"invalid credentials", commands.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unknown", io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusCode(tt.err))
		})
	}
}

func TestHealth(t *testing.T) {
	server, _ := newTestServer()
	e := echo.New()
	server.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRequireAuth(t *testing.T) {
	server, _ := newTestServer()
	e := echo.New()
	server.RegisterRoutes(e)

	t.Run("should reject missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/shipments/me", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/shipments/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer not.a.token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject expired token", func(t *testing.T) {
		expiredCfg := testTokenCfg
		token, err := auth.MintAccessToken(expiredCfg, time.Now().Add(-time.Hour), 7, "customer")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/shipments/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	server, dispatcher := newTestServer()
	dispatcher.RegisterHandler("emails", noopHandler{})

	e := echo.New()
	server.RegisterRoutes(e)

	t.Run("should reject customer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/queues/emails", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+mintToken(t, 7, "customer"))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("should reject customer token on allocation reads", func(t *testing.T) {
		for _, path := range []string{"/api/v1/routes", "/api/v1/carriers"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+mintToken(t, 7, "customer"))
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusForbidden, rec.Code, path)
		}
	})

	t.Run("should allow admin token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/queues/emails", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+mintToken(t, 1, "admin"))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var status queue.Status
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.Zero(t, status.Pending)
		assert.Zero(t, status.Failed)
		assert.Zero(t, status.Processed)
	})
}

func TestGetQueueStatus_UnknownQueue(t *testing.T) {
	server, _ := newTestServer()
	e := echo.New()
	server.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/queues/nope", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+mintToken(t, 1, "admin"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateShipmentStatus_BadPathID(t *testing.T) {
	server, _ := newTestServer()
	e := echo.New()
	server.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/shipments/abc/status", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+mintToken(t, 1, "admin"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type noopHandler struct{}

func (noopHandler) Handle(_ context.Context, _ queue.Job) error { return nil }
