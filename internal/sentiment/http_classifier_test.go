package sentiment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHTTPClassifier_Classify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req classifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "loved it", req.Text)

		json.NewEncoder(w).Encode(classifyResponse{Label: "LABEL_1", Score: 0.98765})
	}))
	defer server.Close()

	c := NewHTTPClassifier(server.URL, 5*time.Second, zap.NewNop())

	pred, err := c.Classify(context.Background(), "loved it")
	require.NoError(t, err)
	assert.Equal(t, "LABEL_1", pred.Label)
	assert.Equal(t, 0.98765, pred.Score)
}

func TestHTTPClassifier_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewHTTPClassifier(server.URL, 5*time.Second, zap.NewNop())

	_, err := c.Classify(context.Background(), "loved it")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestHTTPClassifier_ScoreOutOfRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(classifyResponse{Label: "LABEL_1", Score: 1.5})
	}))
	defer server.Close()

	c := NewHTTPClassifier(server.URL, 5*time.Second, zap.NewNop())

	_, err := c.Classify(context.Background(), "loved it")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestHTTPClassifier_ServerUnreachable(t *testing.T) {
	// A closed server gives a connection refused without waiting on a timeout.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewHTTPClassifier(server.URL, time.Second, zap.NewNop())

	_, err := c.Classify(context.Background(), "loved it")
	assert.Error(t, err)
}

func TestHTTPClassifier_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer server.Close()

	c := NewHTTPClassifier(server.URL, 10*time.Second, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Classify(ctx, "loved it")
	assert.Error(t, err)
}

func TestHTTPClassifier_EmptyText(t *testing.T) {
	c := NewHTTPClassifier("http://localhost:0", time.Second, zap.NewNop())

	_, err := c.Classify(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyText)
}
