package extractor

// Extractor reads a document file and returns its plain text content.
type Extractor interface {
	Read(path string) (string, error)
}
