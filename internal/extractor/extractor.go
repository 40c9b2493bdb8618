// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extractor reads per-page text out of PDF files.
package extractor

import (
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/pdf-distill/pkg/types"
)

// PageExtractor produces the ordered per-page text of a document. The
// pipeline and tests substitute fakes; the production implementation wraps
// the ledongthuc/pdf reader.
type PageExtractor interface {
	// ExtractPages returns one Page per document page, in order. On a
	// read or parse failure it returns a nil document and the error; the
	// caller treats zero pages as "no work to do".
	ExtractPages(path string) (types.Document, error)
}

// PDFExtractor extracts text with the ledongthuc/pdf reader.
type PDFExtractor struct{}

// NewPDFExtractor returns a ready-to-use extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractPages opens the PDF at path and extracts raw text page by page.
// A page whose content stream cannot be decoded becomes an empty Page so the
// page count and 1-based indices stay stable. The pdf reader panics on some
// malformed files; the recover converts that into an ordinary error.
func (e *PDFExtractor) ExtractPages(path string) (doc types.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("parsing PDF %s: %v", path, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	doc = make(types.Document, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			doc = append(doc, types.Page{Index: i})
			continue
		}
		text, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			doc = append(doc, types.Page{Index: i})
			continue
		}
		doc = append(doc, types.Page{Index: i, Text: text})
	}
	return doc, nil
}
