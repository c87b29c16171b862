package hmsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"hotel-console/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(utils.HMSConfig{BaseURL: server.URL, TimeoutSeconds: 2}, zap.NewNop())
}

func TestClient_Do_DecodesResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/guest", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"guestID":9,"name":"Alice Tan"}]`))
	})

	var guests []struct {
		GuestID int64  `json:"guestID"`
		Name    string `json:"name"`
	}
	err := client.Do(context.Background(), http.MethodGet, "/guest", nil, &guests)

	require.NoError(t, err)
	require.Len(t, guests, 1)
	assert.Equal(t, "Alice Tan", guests[0].Name)
}

func TestClient_Do_NonOKKeepsBodyVerbatim(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Booking with ID 42 already has a billing record"))
	})

	err := client.Do(context.Background(), http.MethodPost, "/billing/generate/42", nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Booking with ID 42 already has a billing record", apiErr.Message)
}

func TestClient_Do_EmptyErrorBodyFallsBackToStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	err := client.Do(context.Background(), http.MethodGet, "/room", nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
}

func TestClient_Do_MalformedBodyIsAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"invoiceID": "not-a-number"`))
	})

	var out map[string]any
	err := client.Do(context.Background(), http.MethodGet, "/invoice", nil, &out)

	assert.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestClient_Do_IgnoresBodyWhenOutIsNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not json"))
	})

	err := client.Do(context.Background(), http.MethodPatch, "/booking/42/cancel", nil, nil)

	assert.NoError(t, err)
}

func TestClient_DoWithHeader_ForwardsHeaders(t *testing.T) {
	var got string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Idempotency-Key")
		w.Write([]byte(`{"paymentID":55}`))
	})

	header := http.Header{}
	header.Set("Idempotency-Key", "key-123")

	var receipt struct {
		PaymentID int64 `json:"paymentID"`
	}
	err := client.DoWithHeader(context.Background(), http.MethodPost, "/payment/100", header, nil, &receipt)

	require.NoError(t, err)
	assert.Equal(t, "key-123", got)
	assert.Equal(t, int64(55), receipt.PaymentID)
}

func TestClient_Do_TransportFailure(t *testing.T) {
	client := NewClient(utils.HMSConfig{BaseURL: "http://127.0.0.1:1", TimeoutSeconds: 1}, zap.NewNop())

	err := client.Do(context.Background(), http.MethodGet, "/guest", nil, nil)

	assert.Error(t, err)

	var urlErr *url.Error
	assert.True(t, errors.As(err, &urlErr))
}

func TestClient_Do_SendsJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"bookingId":42}`))
	})

	body := map[string]any{"roomId": 3, "guestId": 9}
	var out struct {
		BookingID int64 `json:"bookingId"`
	}
	err := client.Do(context.Background(), http.MethodPost, "/booking", body, &out)

	require.NoError(t, err)
	assert.Equal(t, int64(42), out.BookingID)
}
