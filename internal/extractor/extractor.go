package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// UnsupportedFormatError is returned for file extensions the extractor
// does not know how to read.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Ext)
}

// Read dispatches on the lowercase file extension. Extraction errors are
// fatal for the document; there is no retry at this layer.
func (e *implExtractor) Read(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return readPDF(path)
	case ".docx", ".doc":
		return readDocx(path)
	case ".txt":
		return readTxt(path)
	default:
		return "", &UnsupportedFormatError{Ext: ext}
	}
}

func readTxt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read txt: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read txt: %s is not valid UTF-8", filepath.Base(path))
	}
	return string(data), nil
}
