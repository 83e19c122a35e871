package pipeline

import (
	"testing"

	"github.com/lvargas/rosterscan/internal/model"
	"github.com/lvargas/rosterscan/internal/pdftext"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"https://disclosures-clerk.house.gov/roster.pdf", true},
		{"http://localhost:8080/roster.pdf", true},
		{"roster.pdf", false},
		{"/data/roster.pdf", false},
		{"ftp://example.gov/roster.pdf", false},
	}

	for _, tt := range tests {
		if got := IsURL(tt.source); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.source, got, tt.want)
		}
	}
}

func TestExtractProvider(t *testing.T) {
	p := NewPipeline(model.DefaultConfig())

	provider := pdftext.NewStatic([]pdftext.Page{
		{Number: 1, Lines: []string{
			"COMMITTEE ON RULES",
			"1. Pete Sessions, TX",
			"2. Jim McGovern, MA",
		}},
	})

	result, err := p.ExtractProvider(provider, "stdin")
	if err != nil {
		t.Fatalf("ExtractProvider: %v", err)
	}

	if result.Source != "stdin" {
		t.Errorf("source = %q", result.Source)
	}
	if len(result.Records) != 2 {
		t.Errorf("records = %d, want 2", len(result.Records))
	}
	if len(result.Signals) == 0 {
		t.Error("scan result should carry quality signals")
	}
}

func TestExtractProvider_NoPages(t *testing.T) {
	p := NewPipeline(model.DefaultConfig())

	if _, err := p.ExtractProvider(pdftext.NewStatic(nil), "empty"); err == nil {
		t.Error("expected error for pageless document")
	}
}
