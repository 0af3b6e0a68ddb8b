package extractor

type implExtractor struct{}

// New creates a new Extractor instance
func New() Extractor {
	return &implExtractor{}
}
