// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences the cleanup stages over a document and tracks
// per-stage size statistics.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/pdf-distill/internal/extractor"
	"github.com/pdiddy/pdf-distill/internal/filter"
	"github.com/pdiddy/pdf-distill/internal/normalize"
	"github.com/pdiddy/pdf-distill/internal/transform"
	"github.com/pdiddy/pdf-distill/internal/writer"
	"github.com/pdiddy/pdf-distill/pkg/types"
)

// Driver runs a document through every stage in a fixed order: extraction,
// normalization, content filtering, optional LLM cleanup, output. Stages run
// strictly sequentially, whole-document at a time.
type Driver struct {
	extractor   extractor.PageExtractor
	normalizer  *normalize.Normalizer
	filter      *filter.Filter
	transformer *transform.Stage // nil when LLM cleanup is disabled
}

// New creates a Driver. A nil transformer makes the LLM cleanup stage a
// no-op: the content filter's output passes through byte-identical and no
// post-LLM statistic is recorded.
func New(ext extractor.PageExtractor, norm *normalize.Normalizer, f *filter.Filter, t *transform.Stage) *Driver {
	return &Driver{extractor: ext, normalizer: norm, filter: f, transformer: t}
}

// Run extracts pdfPath, cleans it, and writes the annotated text to
// outputPath with the statistics sidecar next to it. Progress lines and the
// final summary go to w. An extraction failure is reported and yields an
// empty output rather than aborting; the two output files fail
// independently and both failures are reported.
func (d *Driver) Run(ctx context.Context, pdfPath, outputPath string, w io.Writer) error {
	fmt.Fprintf(w, "Extracting text from %s\n", pdfPath)
	doc, err := d.extractor.ExtractPages(pdfPath)
	if err != nil {
		fmt.Fprintf(w, "extraction failed: %v\n", err)
		doc = nil
	}

	final, stats := d.Process(ctx, doc, w)

	textErr := writer.WriteDocument(outputPath, final)
	if textErr != nil {
		fmt.Fprintf(w, "%v\n", textErr)
	} else {
		fmt.Fprintf(w, "Wrote %s\n", outputPath)
	}

	statsPath := writer.StatsPath(outputPath)
	statsErr := writer.WriteStats(statsPath, stats)
	if statsErr != nil {
		fmt.Fprintf(w, "%v\n", statsErr)
	} else {
		fmt.Fprintf(w, "Wrote %s\n", statsPath)
	}

	Summary(w, stats)
	return errors.Join(textErr, statsErr)
}

// Process drives doc through the in-memory stages and returns the final
// document together with the per-stage statistics. A zero-page document
// short-circuits: no stage runs and all counts stay zero.
func (d *Driver) Process(ctx context.Context, doc types.Document, w io.Writer) (types.Document, types.PipelineStats) {
	stats := types.PipelineStats{OriginalChars: doc.TotalChars()}
	if len(doc) == 0 {
		fmt.Fprintln(w, "no pages extracted, nothing to clean")
		return doc, stats
	}

	fmt.Fprintf(w, "Cleaning %d pages\n", len(doc))
	doc = d.normalizer.Document(doc)
	stats.AfterInitialCleanupChars = doc.TotalChars()

	doc = d.filter.Document(doc)
	stats.AfterContentAnalysisChars = doc.TotalChars()

	if d.transformer != nil {
		res := d.transformer.Run(ctx, doc, w)
		doc = res.Pages
		if !res.Fallback {
			n := doc.TotalChars()
			stats.AfterLLMCleanupChars = &n
		}
	}

	return doc, stats
}

// Summary writes each stage's character count and its share of the original.
func Summary(w io.Writer, stats types.PipelineStats) {
	fmt.Fprintln(w, "\nCleanup statistics:")
	printStage(w, "original", stats.OriginalChars, stats.OriginalChars)
	printStage(w, "after initial cleanup", stats.AfterInitialCleanupChars, stats.OriginalChars)
	printStage(w, "after content analysis", stats.AfterContentAnalysisChars, stats.OriginalChars)
	if stats.AfterLLMCleanupChars != nil {
		printStage(w, "after llm cleanup", *stats.AfterLLMCleanupChars, stats.OriginalChars)
	}
}

// printStage prints one summary line. A zero original count prints "n/a"
// instead of a percentage so an empty extraction never divides by zero.
func printStage(w io.Writer, name string, count, original int) {
	if original == 0 {
		fmt.Fprintf(w, "  %-22s %9d chars (n/a)\n", name, count)
		return
	}
	pct := float64(count) / float64(original) * 100
	fmt.Fprintf(w, "  %-22s %9d chars (%.1f%%)\n", name, count, pct)
}
