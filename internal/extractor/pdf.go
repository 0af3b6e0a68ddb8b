package extractor

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// readPDF concatenates the plain-text layer of each page in page order.
func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract pdf page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String(), nil
}
