package dosing

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_Send_PostsMedicineID(t *testing.T) {
	medicineID := kernel.NewUUID()

	var gotPath, gotContentType string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, discardLogger())
	err := client.send(context.Background(), medicineID)
	require.NoError(t, err)

	assert.Equal(t, "/calc_dose", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, medicineID.String(), gotBody["medicine_id"])
}

func TestClient_Send_NonSuccessStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, discardLogger())
	err := client.send(context.Background(), kernel.NewUUID())
	require.Error(t, err)
}

func TestClient_Send_TimesOutOnSlowService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := client.send(ctx, kernel.NewUUID())
	require.Error(t, err)
}

func TestClient_RequestDose_DetachedAndSwallowsErrors(t *testing.T) {
	received := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, discardLogger())

	// the caller's context is already canceled; the detached send must still run
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client.RequestDose(ctx, kernel.NewUUID())

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("dose request never reached the dosing service")
	}

	// unreachable service: RequestDose must not panic or block the caller
	broken := NewClient("http://127.0.0.1:1", discardLogger())
	broken.RequestDose(context.Background(), kernel.NewUUID())
}
