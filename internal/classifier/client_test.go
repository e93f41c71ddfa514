package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(serverURL string) *Client {
	c := NewClient(&Config{APIToken: "test-token", Model: "test/model"})
	c.baseURL = serverURL + "/"
	return c
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		response  any
		wantLabel string
		wantScore float64
		wantErr   error
	}{
		{
			name:   "returns top-scoring candidate",
			status: http.StatusOK,
			response: [][]labelScore{{
				{Label: "sadness", Score: 0.12},
				{Label: "joy", Score: 0.81},
				{Label: "neutral", Score: 0.07},
			}},
			wantLabel: "joy",
			wantScore: 0.81,
		},
		{
			name:   "accepts flat response shape",
			status: http.StatusOK,
			response: []labelScore{
				{Label: "fear", Score: 0.9},
				{Label: "anger", Score: 0.1},
			},
			wantLabel: "fear",
			wantScore: 0.9,
		},
		{
			name:     "empty candidate list",
			status:   http.StatusOK,
			response: [][]labelScore{{}},
			wantErr:  ErrNoResult,
		},
		{
			name:     "empty outer array",
			status:   http.StatusOK,
			response: [][]labelScore{},
			wantErr:  ErrNoResult,
		},
		{
			name:     "invalid API token",
			status:   http.StatusUnauthorized,
			response: apiError{Error: "Authorization header is invalid"},
			wantErr:  ErrInvalidAPIToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("request method = %s, want POST", r.Method)
				}
				if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
					t.Errorf("Authorization header = %q, want %q", got, "Bearer test-token")
				}

				var req inferenceRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Errorf("decoding request body: %v", err)
				}
				if req.Inputs == "" {
					t.Error("request inputs is empty")
				}

				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(tt.response)
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			got, err := client.Classify(context.Background(), "some feelings")

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Classify() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			if got.Label != tt.wantLabel {
				t.Errorf("Classify() label = %q, want %q", got.Label, tt.wantLabel)
			}
			if got.Score != tt.wantScore {
				t.Errorf("Classify() score = %v, want %v", got.Score, tt.wantScore)
			}
		})
	}
}

func TestClassifyRetriesWhileModelLoads(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(apiError{Error: "Model is currently loading", EstimatedTime: 20})
			return
		}
		_ = json.NewEncoder(w).Encode([][]labelScore{{{Label: "joy", Score: 0.7}}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	got, err := client.Classify(context.Background(), "waiting on the model")
	if err != nil {
		t.Fatalf("Classify() unexpected error: %v", err)
	}
	if got.Label != "joy" {
		t.Errorf("Classify() label = %q, want %q", got.Label, "joy")
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("server received %d calls, want 2", n)
	}
}

func TestClassifyContextCancelledDuringRetry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(apiError{Error: "Model is currently loading"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := client.Classify(ctx, "never completes")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Classify() error = %v, want context.DeadlineExceeded", err)
	}
}
