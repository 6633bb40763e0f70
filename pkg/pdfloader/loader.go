package pdfloader

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Page is the extracted text of a single PDF page. Number is 1-based.
type Page struct {
	Text   string
	Number int
}

// Load extracts per-page text from a PDF. Whitespace-only pages are
// dropped. Zero usable pages is not an error: the caller treats an
// empty result as "nothing to ingest for this file".
func Load(path string) ([]Page, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var pages []Page
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		text, err := p.GetPlainText(nil)
		if err != nil {
			// A single unreadable page degrades to "no content" for
			// that page; the rest of the document is still usable.
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		pages = append(pages, Page{Text: text, Number: i})
	}

	return pages, nil
}
