// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extractor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractPagesMissingFile(t *testing.T) {
	e := NewPDFExtractor()
	doc, err := e.ExtractPages(filepath.Join(t.TempDir(), "absent.pdf"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if doc != nil {
		t.Errorf("document should be nil on failure, got %d pages", len(doc))
	}
}

func TestExtractPagesNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	if err := os.WriteFile(path, []byte("this is plain text, not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := NewPDFExtractor()
	doc, err := e.ExtractPages(path)
	if err == nil {
		t.Fatal("expected error for non-PDF content")
	}
	if doc != nil {
		t.Errorf("document should be nil on failure, got %d pages", len(doc))
	}
}
