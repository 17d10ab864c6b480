package analyzer

import (
	"context"
	"net/http"
	"time"

	"google.golang.org/genai"

	"lunarly/apperr"
	"lunarly/internal/logger"
)

const defaultAttemptTimeout = 30 * time.Second

// GeminiInvoker obtains a raw text completion from the generative
// language API. Candidate models are attempted in order (ranked by cost,
// most economical first); the first HTTP success wins. There is no retry
// beyond the ordered fallback and no candidate is attempted twice.
type GeminiInvoker struct {
	apiKey         string
	models         []string
	attemptTimeout time.Duration

	// Overridable for tests; zero values use the provider defaults.
	baseURL    string
	httpClient *http.Client
}

type InvokerOption func(*GeminiInvoker)

// WithBaseURL points the client at an alternate endpoint.
func WithBaseURL(u string) InvokerOption {
	return func(g *GeminiInvoker) { g.baseURL = u }
}

// WithHTTPClient substitutes the transport.
func WithHTTPClient(c *http.Client) InvokerOption {
	return func(g *GeminiInvoker) { g.httpClient = c }
}

// NewGeminiInvoker builds an invoker. An empty apiKey is allowed here;
// it surfaces as ServiceNotConfigured on the first Invoke, before any
// network attempt.
func NewGeminiInvoker(apiKey string, candidateModels []string, attemptTimeout time.Duration, opts ...InvokerOption) *GeminiInvoker {
	if attemptTimeout <= 0 {
		attemptTimeout = defaultAttemptTimeout
	}
	g := &GeminiInvoker{
		apiKey:         apiKey,
		models:         candidateModels,
		attemptTimeout: attemptTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Invoke sends the prompt to each candidate model in turn and returns the
// first successful reply text together with the identifier of the model
// that produced it. Attempt failures (network error, non-success status,
// per-attempt timeout) are logged and advance to the next candidate.
func (g *GeminiInvoker) Invoke(ctx context.Context, prompt string) (string, string, error) {
	if g.apiKey == "" {
		return "", "", apperr.New(apperr.ServiceNotConfigured, "analysis service is not configured")
	}
	if len(g.models) == 0 {
		return "", "", apperr.New(apperr.ServiceNotConfigured, "no candidate models configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      g.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  g.httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: g.baseURL},
	})
	if err != nil {
		return "", "", apperr.Wrap(apperr.Internal, "failed to initialize model client", err)
	}

	for _, model := range g.models {
		attemptCtx, cancel := context.WithTimeout(ctx, g.attemptTimeout)
		result, err := client.Models.GenerateContent(attemptCtx, model, genai.Text(prompt), nil)
		cancel()
		if err != nil {
			logger.Log.Warnf("model %s attempt failed: %v", model, err)
			continue
		}
		logger.Log.Infof("model %s succeeded", model)
		return result.Text(), model, nil
	}

	return "", "", apperr.New(apperr.ModelUnavailable, "all candidate models failed")
}
