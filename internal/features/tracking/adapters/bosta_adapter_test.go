package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shipment-tracker/internal/core/httpclient"
	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/features/tracking/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const deliveredJSON = `{
    "provider": "Bosta",
    "CurrentStatus": {
        "state": "DELIVERED",
        "timestamp": "2020-01-10T14:05:00.000Z"
    },
    "PromisedDate": "2020-01-14T21:59:59.999Z",
    "TrackingNumber": "7234258",
    "TransitEvents": [
        {"state": "TICKET_CREATED", "timestamp": "2020-01-07T09:33:39.555Z"},
        {"state": "PACKAGE_RECEIVED", "timestamp": "2020-01-08T10:12:11.111Z", "hub": "Cairo Hub"},
        {"state": "IN_TRANSIT", "timestamp": "2020-01-08T18:00:00.000Z", "hub": "Cairo Hub"},
        {"state": "OUT_FOR_DELIVERY", "timestamp": "2020-01-10T08:01:00.000Z", "hub": "Menoufia Hub"},
        {"state": "DELIVERED", "timestamp": "2020-01-10T14:05:00.000Z", "hub": "Menoufia Hub"}
    ]
}`

func newTestAdapter(baseURL string) *BostaAdapter {
	return NewBostaAdapter(baseURL, httpclient.New(httpclient.Options{Timeout: 2 * time.Second}))
}

// TestBostaAdapter_GetShipment_Success verifies fetching and decoding a record.
func TestBostaAdapter_GetShipment_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/shipments/track/7234258", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(deliveredJSON))
	}))
	defer server.Close()

	record, err := newTestAdapter(server.URL+"/").GetShipment(context.Background(), "7234258")

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, domain.Identifier("7234258"), record.TrackingNumber)
	assert.Equal(t, "Bosta", record.Provider)
	assert.Equal(t, domain.StatusDelivered, record.CurrentStatus.State)
	require.Len(t, record.TransitEvents, 5)
	assert.Equal(t, 3, domain.ActiveStepIndex(record.TransitEvents))
}

// TestBostaAdapter_GetShipment_EscapesNumber verifies the tracking number is path-escaped.
func TestBostaAdapter_GetShipment_EscapesNumber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shipments/track/12%2F34", r.URL.EscapedPath())
		w.Write([]byte(`{"TransitEvents": []}`))
	}))
	defer server.Close()

	_, err := newTestAdapter(server.URL).GetShipment(context.Background(), "12/34")
	require.NoError(t, err)
}

// TestBostaAdapter_GetShipment_NotFound verifies 404 mapping.
func TestBostaAdapter_GetShipment_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	record, err := newTestAdapter(server.URL).GetShipment(context.Background(), "000")

	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrShipmentNotFound)
}

// TestBostaAdapter_GetShipment_ServerError verifies non-200 statuses are errors.
func TestBostaAdapter_GetShipment_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestAdapter(server.URL).GetShipment(context.Background(), "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tracking API returned status: 502")
}

// TestBostaAdapter_GetShipment_MalformedBody verifies decode failures are errors.
func TestBostaAdapter_GetShipment_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer server.Close()

	_, err := newTestAdapter(server.URL).GetShipment(context.Background(), "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse tracking response")
}

// TestBostaAdapter_GetShipment_Cancelled verifies the request honours its context.
func TestBostaAdapter_GetShipment_Cancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestAdapter(server.URL).GetShipment(ctx, "1")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestBostaAdapter_WarnsUnknownStates verifies unknown event states are logged.
func TestBostaAdapter_WarnsUnknownStates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"TrackingNumber": "9", "TransitEvents": [{"state": "TICKET_CREATED"}, {"state": "LOST_IN_SPACE", "hub": "Moon"}]}`))
	}))
	defer server.Close()

	core, logs := observer.New(zap.WarnLevel)
	logger.Set(zap.New(core))
	defer logger.Set(nil)

	record, err := newTestAdapter(server.URL).GetShipment(context.Background(), "9")
	require.NoError(t, err)
	require.Len(t, record.TransitEvents, 2)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Unknown transit event state encountered", entry.Message)
	assert.Equal(t, "LOST_IN_SPACE", entry.ContextMap()["state"])
}
