package analyzer_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunarly/analyzer"
	"lunarly/apperr"
)

// generateContentResponse mimics the provider wire format for a single
// text candidate.
func generateContentResponse(text string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"role":"model","parts":[{"text":%q}]}}]}`, text)
}

// modelFromPath pulls the model id out of
// /v1beta/models/{model}:generateContent.
func modelFromPath(path string) string {
	rest := path[strings.LastIndex(path, "/")+1:]
	return strings.TrimSuffix(rest, ":generateContent")
}

func TestInvokeEmptyAPIKeyNoNetwork(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, generateContentResponse("should never be reached"))
	}))
	defer srv.Close()

	inv := analyzer.NewGeminiInvoker("", []string{"model-a"}, time.Second,
		analyzer.WithBaseURL(srv.URL), analyzer.WithHTTPClient(srv.Client()))

	_, _, err := inv.Invoke(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, apperr.ServiceNotConfigured, apperr.KindOf(err))
	assert.Equal(t, int32(0), requests.Load())
}

func TestInvokeNoCandidateModels(t *testing.T) {
	inv := analyzer.NewGeminiInvoker("key", nil, time.Second)

	_, _, err := inv.Invoke(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, apperr.ServiceNotConfigured, apperr.KindOf(err))
}

func TestInvokeFallsThroughToThirdModel(t *testing.T) {
	var attempted []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		model := modelFromPath(r.URL.Path)
		attempted = append(attempted, model)
		if model != "model-c" {
			http.Error(w, `{"error":{"code":500,"message":"internal"}}`, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, generateContentResponse("reply from c"))
	}))
	defer srv.Close()

	inv := analyzer.NewGeminiInvoker("key", []string{"model-a", "model-b", "model-c"}, time.Second,
		analyzer.WithBaseURL(srv.URL), analyzer.WithHTTPClient(srv.Client()))

	text, model, err := inv.Invoke(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "reply from c", text)
	assert.Equal(t, "model-c", model)
	assert.Equal(t, []string{"model-a", "model-b", "model-c"}, attempted)
}

func TestInvokeAllModelsFail(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		http.Error(w, `{"error":{"code":503,"message":"overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	inv := analyzer.NewGeminiInvoker("key", []string{"model-a", "model-b", "model-c"}, time.Second,
		analyzer.WithBaseURL(srv.URL), analyzer.WithHTTPClient(srv.Client()))

	_, _, err := inv.Invoke(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, apperr.ModelUnavailable, apperr.KindOf(err))
	// One attempt per candidate, none retried.
	assert.Equal(t, int32(3), requests.Load())
}

func TestInvokeFirstModelWinsStopsThere(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, generateContentResponse("first answer"))
	}))
	defer srv.Close()

	inv := analyzer.NewGeminiInvoker("key", []string{"model-a", "model-b"}, time.Second,
		analyzer.WithBaseURL(srv.URL), analyzer.WithHTTPClient(srv.Client()))

	text, model, err := inv.Invoke(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "first answer", text)
	assert.Equal(t, "model-a", model)
	assert.Equal(t, int32(1), requests.Load())
}
