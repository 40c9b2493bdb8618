// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize applies the deterministic per-page cleanup passes that
// run before content filtering.
package normalize

import (
	"regexp"
	"strings"

	"github.com/pdiddy/pdf-distill/pkg/types"
)

var (
	horizontalRuns = regexp.MustCompile(`[ \t\r\f\v]+`)
	nonPrintable   = regexp.MustCompile("[^\x20-\x7e\n]")
	numericLine    = regexp.MustCompile(`(?m)^[ ]*\d+[ ]*$`)
	pageOfTotal    = regexp.MustCompile(`Page\s+\d+\s+of\s+\d+`)
)

// Normalizer rewrites each page's text through a fixed sequence of cleanup
// passes. It is stateless: the same input always yields the same output.
type Normalizer struct{}

// New returns a Normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// Document derives a new document with every page normalized. Page count and
// indices are unchanged.
func (n *Normalizer) Document(doc types.Document) types.Document {
	out := make(types.Document, len(doc))
	for i, p := range doc {
		out[i] = types.Page{Index: p.Index, Text: n.Page(p.Text)}
	}
	return out
}

// Page applies the cleanup passes in order:
//
//  1. collapse runs of spaces and tabs into a single space;
//  2. strip control characters and byte values outside printable ASCII.
//     This pass is deliberately lossy: accented and other non-ASCII
//     characters are removed too. The cleanup is biased toward plain-ASCII
//     technical documentation, a known limitation rather than a defect;
//  3. remove lines consisting solely of a numeric token (page numbers);
//  4. remove literal "Page <n> of <n>" markers;
//  5. drop blank lines and adjacent duplicate lines.
func (n *Normalizer) Page(text string) string {
	text = horizontalRuns.ReplaceAllString(text, " ")
	text = nonPrintable.ReplaceAllString(text, "")
	text = numericLine.ReplaceAllString(text, "")
	text = pageOfTotal.ReplaceAllString(text, "")
	return DropAdjacentDuplicates(text)
}

// DropAdjacentDuplicates removes blank lines and drops a line when its
// trimmed content equals the previously retained line's. Duplicates separated
// by a different line survive: this is a cheap heuristic for extraction
// stutter, not full deduplication. The pass is idempotent.
func DropAdjacentDuplicates(text string) string {
	var kept []string
	prev := ""
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == prev {
			continue
		}
		kept = append(kept, trimmed)
		prev = trimmed
	}
	return strings.Join(kept, "\n")
}
