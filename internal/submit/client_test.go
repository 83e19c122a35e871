package submit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSubmitBatch(t *testing.T) {
	var got BatchRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		_ = json.NewEncoder(w).Encode(BatchResponse{Queued: len(got.Filings), Total: len(got.Filings)})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	filings := []Filing{
		{FilingID: "20033318", PDFURL: "https://example.com/20033318.pdf", Name: "Bulk Import", Office: "Unknown"},
		{FilingID: "20033319", PDFURL: "https://example.com/20033319.pdf", Name: "Bulk Import", Office: "Unknown"},
	}

	resp, err := client.SubmitBatch(context.Background(), filings)
	if err != nil {
		t.Fatalf("SubmitBatch: %v", err)
	}

	if resp.Queued != 2 || resp.Total != 2 {
		t.Errorf("response = %+v", resp)
	}
	if len(got.Filings) != 2 || got.Filings[0].FilingID != "20033318" {
		t.Errorf("request body = %+v", got)
	}
}

func TestSubmitBatch_EmptyBatchSkipsRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("empty batch must not reach the endpoint")
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	resp, err := client.SubmitBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("SubmitBatch: %v", err)
	}
	if resp.Queued != 0 {
		t.Errorf("queued = %d", resp.Queued)
	}
}

func TestSubmitBatch_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "queue full", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	_, err := client.SubmitBatch(context.Background(), []Filing{{FilingID: "1"}})
	if err == nil {
		t.Fatal("expected error for 503")
	}
	if !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "queue full") {
		t.Errorf("error = %v", err)
	}
}

func TestSubmitBatch_PartialErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(BatchResponse{
			Queued: 1,
			Total:  2,
			Errors: []string{"20033319: already queued"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	resp, err := client.SubmitBatch(context.Background(), []Filing{{FilingID: "a"}, {FilingID: "b"}})
	if err != nil {
		t.Fatalf("SubmitBatch: %v", err)
	}

	if resp.Queued != 1 || len(resp.Errors) != 1 {
		t.Errorf("response = %+v", resp)
	}
}
