package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirimase/kirimase/models"
)

func pointAtServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	orig := baseURL
	baseURL = server.URL
	t.Cleanup(func() {
		baseURL = orig
		server.Close()
	})
	return server
}

func TestSend_PostsEventWithHeader(t *testing.T) {
	var got Event
	var header string
	pointAtServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/events", r.URL.Path)
		header = r.Header.Get(identifyingHeader)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	cfg := &models.Config{Analytics: true, PackageManager: models.PMPnpm}
	err := Send(context.Background(), cfg, "init", map[string]any{"packages": []string{"trpc"}})
	require.NoError(t, err)

	assert.NotEmpty(t, header)
	assert.Equal(t, "init", got.Event)
	require.NotNil(t, got.Config)
	assert.Equal(t, models.PMPnpm, got.Config.PackageManager)
}

func TestSend_ServerError(t *testing.T) {
	pointAtServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	cfg := &models.Config{Analytics: true}
	err := Send(context.Background(), cfg, "init", nil)
	assert.Error(t, err)
}

func TestNotify_DeliversWhenEnabled(t *testing.T) {
	received := make(chan struct{}, 1)
	pointAtServer(t, func(w http.ResponseWriter, r *http.Request) {
		received <- struct{}{}
		w.WriteHeader(http.StatusOK)
	})

	cfg := &models.Config{Analytics: true}
	Notify(context.Background(), cfg, "add", nil)

	select {
	case <-received:
	case <-time.After(5 * time.Second):
		t.Fatal("event never arrived")
	}
}

func TestWait_ReturnsAfterPendingEvents(t *testing.T) {
	received := make(chan struct{}, 1)
	pointAtServer(t, func(w http.ResponseWriter, r *http.Request) {
		received <- struct{}{}
		w.WriteHeader(http.StatusOK)
	})

	Notify(context.Background(), &models.Config{Analytics: true}, "init", nil)
	Wait(5 * time.Second)

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("wait returned before the event left")
	}
}

func TestNotify_DisabledByConfig(t *testing.T) {
	var requests int
	pointAtServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	})

	Notify(context.Background(), &models.Config{Analytics: false}, "init", nil)
	Notify(context.Background(), nil, "init", nil)

	// The disabled path never spawns the sender.
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, requests)
}
