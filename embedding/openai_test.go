package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/embedx/vecsearch/vector"
)

func TestOpenAIEmbedder_EmbedText(t *testing.T) {
	var gotAuth, gotPath string
	var gotPayload embeddingsPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		_, _ = w.Write([]byte(`{"data":[{"embedding":[0.1,0.2,0.3],"index":0}],"model":"text-embedding-ada-002"}`))
	}))
	defer srv.Close()

	e := NewOpenAIEmbedder("test-key", WithBaseURL(srv.URL))
	vec, err := e.EmbedText(context.Background(), "hello world")
	if err != nil {
		t.Fatalf("EmbedText failed: %v", err)
	}

	if len(vec) != 3 || vec[0] != 0.1 {
		t.Fatalf("vec = %v, want [0.1 0.2 0.3]", vec)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("Authorization = %q, want bearer key", gotAuth)
	}
	if gotPath != "/embeddings" {
		t.Fatalf("path = %q, want /embeddings", gotPath)
	}
	if gotPayload.Input != "hello world" || gotPayload.Model != DefaultModel {
		t.Fatalf("payload = %+v, want input and default model", gotPayload)
	}
}

func TestOpenAIEmbedder_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	e := NewOpenAIEmbedder("bad-key", WithBaseURL(srv.URL))
	if _, err := e.EmbedText(context.Background(), "hello"); err == nil {
		t.Fatalf("expected error for non-2xx response")
	}
}

func TestOpenAIEmbedder_EmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	e := NewOpenAIEmbedder("key", WithBaseURL(srv.URL))
	if _, err := e.EmbedText(context.Background(), "hello"); err == nil {
		t.Fatalf("expected error for empty embedding data")
	}
}

func TestOpenAIEmbedder_ModelOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p embeddingsPayload
		_ = json.NewDecoder(r.Body).Decode(&p)
		if p.Model != "text-embedding-3-small" {
			t.Errorf("model = %q, want override", p.Model)
		}
		_, _ = w.Write([]byte(`{"data":[{"embedding":[1],"index":0}]}`))
	}))
	defer srv.Close()

	e := NewOpenAIEmbedder("key", WithBaseURL(srv.URL), WithModel("text-embedding-3-small"))
	if _, err := e.EmbedText(context.Background(), "hi"); err != nil {
		t.Fatalf("EmbedText failed: %v", err)
	}
}

func TestEmbedFunc_Adapter(t *testing.T) {
	called := false
	var e Embedder = EmbedFunc(func(ctx context.Context, text string) (vector.Vector, error) {
		called = true
		return vector.Vector{1, 2}, nil
	})
	vec, err := e.EmbedText(context.Background(), "x")
	if err != nil || !called || len(vec) != 2 {
		t.Fatalf("adapter call failed: vec=%v err=%v called=%v", vec, err, called)
	}
}
