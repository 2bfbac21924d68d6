package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/routelab/agenttop/internal/platform"
)

func TestFeedback_DecodesRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/feedback" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("window_days"); got != "7" {
			t.Errorf("expected window_days=7, got %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header")
		}
		json.NewEncoder(w).Encode([]platform.FeedbackRecord{
			{Reaction: "thumbsup", UserID: "u1", Source: "slack"},
			{Reaction: "-1", UserID: "u2", Source: "web"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	records, err := c.Feedback(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Reaction != "thumbsup" || records[1].Reaction != "-1" {
		t.Errorf("records decoded incorrectly: %+v", records)
	}
}

func TestClassify_EmptyPromptRejectedClientSide(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Classify(context.Background(), "   ", "")

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if called {
		t.Error("validation errors must never reach the network layer")
	}
}

func TestClassify_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/classify" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["prompt"] != "deploy staging" {
			t.Errorf("expected prompt in body, got %v", body)
		}
		json.NewEncoder(w).Encode(platform.ClassificationResult{
			AgentID:    "ag-1",
			AgentName:  "deployer",
			Confidence: 0.92,
			Method:     platform.MethodKeyword,
			DurationMS: 12,
			Alternatives: []platform.Alternative{
				{AgentID: "ag-2", AgentName: "ops", Confidence: 0.41},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	res, err := c.Classify(context.Background(), "deploy staging", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AgentID != "ag-1" || res.Confidence != 0.92 {
		t.Errorf("result decoded incorrectly: %+v", res)
	}
	if len(res.Alternatives) != 1 {
		t.Errorf("expected 1 alternative, got %d", len(res.Alternatives))
	}
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{
			name:   "500 maps to NetworkError",
			status: http.StatusInternalServerError,
			check: func(t *testing.T, err error) {
				var nerr *NetworkError
				if !errors.As(err, &nerr) {
					t.Fatalf("expected NetworkError, got %v", err)
				}
				if nerr.StatusCode != http.StatusInternalServerError {
					t.Errorf("expected status 500, got %d", nerr.StatusCode)
				}
			},
		},
		{
			name:   "404 maps to NotFoundError",
			status: http.StatusNotFound,
			check: func(t *testing.T, err error) {
				var nf *NotFoundError
				if !errors.As(err, &nf) {
					t.Fatalf("expected NotFoundError, got %v", err)
				}
			},
		},
		{
			name:   "400 maps to ValidationError",
			status: http.StatusBadRequest,
			check: func(t *testing.T, err error) {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			c := NewClient(srv.URL)
			_, err := c.Plugins(context.Background())
			if err == nil {
				t.Fatal("expected an error")
			}
			tc.check(t, err)
		})
	}
}

func TestConnectionRefusedIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so the address refuses connections

	c := NewClient(srv.URL)
	_, err := c.Executions(context.Background(), 10)

	var nerr *NetworkError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if nerr.StatusCode != 0 {
		t.Errorf("transport failure should carry no status code, got %d", nerr.StatusCode)
	}
}

func TestAddGitLabComment_EmptyTextRejected(t *testing.T) {
	c := NewClient("http://unreachable.invalid")
	err := c.AddGitLabComment(context.Background(), "r1", "  ")

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSetPluginEnabled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/plugins/pl-1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]bool
		json.NewDecoder(r.Body).Decode(&body)
		if !body["enabled"] {
			t.Error("expected enabled=true in body")
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.SetPluginEnabled(context.Background(), "pl-1", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
