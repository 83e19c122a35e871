// Package pipeline wires document acquisition, the extraction engine and
// quality diagnostics into one pass per roster.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/lvargas/rosterscan/internal/model"
	"github.com/lvargas/rosterscan/internal/pdftext"
	"github.com/lvargas/rosterscan/internal/quality"
	"github.com/lvargas/rosterscan/internal/scan"
)

// Pipeline runs the complete extraction for one roster document
type Pipeline struct {
	fetcher  *Fetcher
	scanner  *scan.Scanner
	renderer *Renderer
}

// NewPipeline creates a pipeline from the configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	return &Pipeline{
		fetcher:  NewFetcher(cfg),
		scanner:  scan.NewScanner(),
		renderer: NewRenderer(cfg.Output.IncludeFooter),
	}
}

// Extract runs the pipeline for a local path or an http(s) URL
func (p *Pipeline) Extract(ctx context.Context, source string) (*model.Result, error) {
	if IsURL(source) {
		return p.ExtractURL(ctx, source)
	}
	return p.ExtractFile(source)
}

// ExtractFile extracts from a roster PDF on disk
func (p *Pipeline) ExtractFile(path string) (*model.Result, error) {
	return p.run(pdftext.NewDocument(path), path)
}

// ExtractURL downloads a roster PDF and extracts from it
func (p *Pipeline) ExtractURL(ctx context.Context, url string) (*model.Result, error) {
	data, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}
	return p.run(pdftext.NewBytesDocument(data), url)
}

// ExtractProvider extracts from an already-acquired page sequence
func (p *Pipeline) ExtractProvider(provider pdftext.Provider, source string) (*model.Result, error) {
	return p.run(provider, source)
}

func (p *Pipeline) run(provider pdftext.Provider, source string) (*model.Result, error) {
	result, err := p.scanner.Scan(provider)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", source, err)
	}

	result.Source = source
	result.Signals = quality.Evaluate(result)
	return result, nil
}

// Render writes the result to the requested outputs and prints the summary
func (p *Pipeline) Render(result *model.Result, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(result, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(result, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(result)
	return nil
}

// IsURL reports whether source is an http(s) URL rather than a local path
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
