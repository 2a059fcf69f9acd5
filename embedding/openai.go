package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/embedx/vecsearch/vector"
)

// DefaultModel is the embedding model used when none is configured.
const DefaultModel = "text-embedding-ada-002"

const defaultBaseURL = "https://api.openai.com/v1"

// OpenAIEmbedder calls the OpenAI embeddings endpoint. The API key and HTTP
// client are per-instance state, so two embedders with different keys never
// interfere.
type OpenAIEmbedder struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// OpenAIOption configures an OpenAIEmbedder.
type OpenAIOption func(*OpenAIEmbedder)

// WithModel overrides the default embedding model.
func WithModel(model string) OpenAIOption {
	return func(e *OpenAIEmbedder) { e.model = model }
}

// WithHTTPClient supplies the HTTP client used for API calls; callers impose
// timeouts through it.
func WithHTTPClient(client *http.Client) OpenAIOption {
	return func(e *OpenAIEmbedder) { e.client = client }
}

// WithBaseURL redirects API calls, e.g. at a proxy or a test server.
func WithBaseURL(baseURL string) OpenAIOption {
	return func(e *OpenAIEmbedder) { e.baseURL = baseURL }
}

// NewOpenAIEmbedder creates an embedder bound to the given API key.
func NewOpenAIEmbedder(apiKey string, opts ...OpenAIOption) *OpenAIEmbedder {
	e := &OpenAIEmbedder{
		apiKey:  apiKey,
		model:   DefaultModel,
		baseURL: defaultBaseURL,
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type embeddingsPayload struct {
	Input          string `json:"input"`
	Model          string `json:"model"`
	EncodingFormat string `json:"encoding_format"`
}

type embeddingsResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
	Model string `json:"model"`
}

// EmbedText embeds the given text and returns its vector. Transport
// failures, non-2xx responses, and empty embedding payloads all surface as
// errors; degrading to an empty vector is left to the caller.
func (e *OpenAIEmbedder) EmbedText(ctx context.Context, text string) (vector.Vector, error) {
	payload, err := json.Marshal(embeddingsPayload{
		Input:          text,
		Model:          e.model,
		EncodingFormat: "float",
	})
	if err != nil {
		return nil, fmt.Errorf("embedding: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/embeddings", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("embedding: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding: call embeddings endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("embedding: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("embedding: embeddings endpoint returned %s: %s", resp.Status, body)
	}

	var parsed embeddingsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("embedding: decode response: %w", err)
	}
	if len(parsed.Data) == 0 || len(parsed.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("embedding: response contained no embedding")
	}
	return vector.Vector(parsed.Data[0].Embedding), nil
}

var _ Embedder = (*OpenAIEmbedder)(nil)
