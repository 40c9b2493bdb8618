// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"strings"
	"testing"

	"github.com/pdiddy/pdf-distill/pkg/types"
)

func TestPage(t *testing.T) {
	f := New()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "retains substantive paragraph",
			in:   "This section explains the rate-limit header.",
			want: "This section explains the rate-limit header.",
		},
		{
			name: "discards short paragraph",
			in:   "too short",
			want: "",
		},
		{
			name: "discards bare number",
			in:   "42",
			want: "",
		},
		{
			name: "discards long bare number",
			in:   "1234567890123",
			want: "",
		},
		{
			name: "discards boilerplate token case-insensitively",
			in:   "Next",
			want: "",
		},
		{
			name: "discards boilerplate token with surrounding whitespace",
			in:   "   page   ",
			want: "",
		},
		{
			name: "discards symbols without alphabetic content",
			in:   "-- == :: !! ?? ++",
			want: "",
		},
		{
			name: "keeps surviving paragraphs in order",
			in:   "First paragraph with enough words.\n\n42\n\nSecond paragraph with enough words.",
			want: "First paragraph with enough words.\n\nSecond paragraph with enough words.",
		},
		{
			name: "splits on blank lines with trailing spaces",
			in:   "Alpha paragraph stays here.\n  \nchapter",
			want: "Alpha paragraph stays here.",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Page(tt.in)
			if got != tt.want {
				t.Errorf("Page(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPageShortAlwaysDiscarded(t *testing.T) {
	f := New()
	// Anything under ten characters goes, regardless of content.
	for _, in := range []string{"abc", "x1", "%", "word", "123456789"} {
		if got := f.Page(in); got != "" {
			t.Errorf("Page(%q) = %q, want empty", in, got)
		}
	}
}

func TestPagePreservesOrder(t *testing.T) {
	f := New()
	paras := []string{
		"The first substantive paragraph.",
		"The second substantive paragraph.",
		"The third substantive paragraph.",
	}
	got := f.Page(strings.Join(paras, "\n\n"))
	want := strings.Join(paras, "\n\n")
	if got != want {
		t.Errorf("order not preserved:\ngot  %q\nwant %q", got, want)
	}
}

func TestDocumentPreservesIndices(t *testing.T) {
	f := New()
	doc := types.Document{
		{Index: 1, Text: "Substantive page one content."},
		{Index: 2, Text: "nav"},
	}
	got := f.Document(doc)

	if len(got) != 2 {
		t.Fatalf("page count = %d, want 2", len(got))
	}
	if got[0].Index != 1 || got[1].Index != 2 {
		t.Errorf("indices = %d, %d, want 1, 2", got[0].Index, got[1].Index)
	}
	if got[1].Text != "" {
		t.Errorf("page 2 = %q, want empty", got[1].Text)
	}
}

func TestNewWithRules(t *testing.T) {
	f := NewWithRules(Rules{
		MinParagraphLen:  4,
		ExtraBoilerplate: []string{"Table of Contents"},
	})

	if got := f.Page("tiny"); got != "tiny" {
		t.Errorf("lowered minimum: Page(%q) = %q, want kept", "tiny", got)
	}
	if got := f.Page("table of contents"); got != "" {
		t.Errorf("extra token: Page(%q) = %q, want empty", "table of contents", got)
	}
	// Built-in tokens still apply.
	if got := f.Page("next"); got != "" {
		t.Errorf("built-in token: Page(%q) = %q, want empty", "next", got)
	}
}
