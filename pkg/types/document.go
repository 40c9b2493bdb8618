// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "unicode/utf8"

// Page is one page of a document moving through the pipeline. Index is
// 1-based and stable across stages; Text is replaced wholesale by each stage.
type Page struct {
	Index int
	Text  string
}

// Document is the ordered page sequence of a single PDF. Stages derive a new
// Document value rather than mutating the one they were given; page count and
// ordering are preserved end to end.
type Document []Page

// TotalChars returns the summed character (rune) count across all pages.
func (d Document) TotalChars() int {
	total := 0
	for _, p := range d {
		total += utf8.RuneCountInString(p.Text)
	}
	return total
}

// PipelineStats records the total character count after each pipeline stage.
// AfterLLMCleanupChars is nil when the LLM cleanup stage was disabled or fell
// back to pass-through, and the key is then omitted from the JSON sidecar.
type PipelineStats struct {
	OriginalChars             int  `json:"original_chars"`
	AfterInitialCleanupChars  int  `json:"after_initial_cleanup_chars"`
	AfterContentAnalysisChars int  `json:"after_content_analysis_chars"`
	AfterLLMCleanupChars      *int `json:"after_llm_cleanup_chars,omitempty"`
}
