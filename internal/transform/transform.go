// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform hands cleaned page text to an LLM for a final polishing
// pass. The stage is optional and fails safe: the first backend error
// abandons the stage and every page keeps its deterministic cleanup output.
package transform

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pdf-distill/pkg/types"
)

// DefaultChunkSize bounds each request body to respect API input limits.
const DefaultChunkSize = 4000

// Backend submits one chunk of text for cleanup and returns the rewritten
// chunk. Implementations wrap a specific API so tests can supply a mock.
type Backend interface {
	CleanChunk(ctx context.Context, chunk string) (string, error)
}

// Result is the outcome of the stage. When Fallback is true the backend
// failed partway through, Pages holds the pre-stage text unchanged for every
// page, and Reason carries the error. Callers record the post-stage
// statistic only when Fallback is false.
type Result struct {
	Pages    types.Document
	Fallback bool
	Reason   error
}

// Stage runs page chunks through the backend strictly sequentially.
type Stage struct {
	backend   Backend
	chunkSize int
}

// NewStage creates a Stage. A non-positive chunkSize selects
// DefaultChunkSize.
func NewStage(backend Backend, chunkSize int) *Stage {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Stage{backend: backend, chunkSize: chunkSize}
}

// Run processes every page whose text is non-blank, printing per-page
// progress to w. Chunks are submitted one at a time and the responses
// rejoined with newline separators in their original order. Any backend
// error aborts the whole stage: no per-page or per-chunk retry.
func (s *Stage) Run(ctx context.Context, doc types.Document, w io.Writer) Result {
	out := make(types.Document, len(doc))
	copy(out, doc)

	for i, p := range doc {
		if strings.TrimSpace(p.Text) == "" {
			continue
		}
		fmt.Fprintf(w, "llm cleanup: page %d\n", p.Index)
		cleaned, err := s.cleanPage(ctx, p.Text)
		if err != nil {
			fmt.Fprintf(w, "llm cleanup failed on page %d, keeping deterministic output for all pages: %v\n", p.Index, err)
			return Result{Pages: doc, Fallback: true, Reason: err}
		}
		out[i].Text = cleaned
	}
	return Result{Pages: out}
}

func (s *Stage) cleanPage(ctx context.Context, text string) (string, error) {
	chunks := SplitChunks(text, s.chunkSize)
	cleaned := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		resp, err := s.backend.CleanChunk(ctx, chunk)
		if err != nil {
			return "", err
		}
		cleaned = append(cleaned, resp)
	}
	return strings.Join(cleaned, "\n"), nil
}

// SplitChunks cuts text into consecutive non-overlapping pieces of at most
// size characters. The pieces concatenate back to the exact input; only the
// final piece may be shorter than size.
func SplitChunks(text string, size int) []string {
	runes := []rune(text)
	var chunks []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
