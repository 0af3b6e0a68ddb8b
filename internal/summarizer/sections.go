package summarizer

import (
	"fmt"
	"regexp"
	"strings"
)

// Section is a heading/body pair in source order.
type Section struct {
	Heading string
	Body    string
}

// headingPattern matches a line consisting solely of uppercase letters and
// spaces, at least 3 characters, optionally ending in a colon.
var headingPattern = regexp.MustCompile(`^[A-Z][A-Z ]{2,}:?$`)

// SplitIntoSections splits document text into (heading, body) pairs.
//
// Lines matching headingPattern start a new section; text before the first
// heading is collected under an implicit "Introduction" heading. When the
// text contains no heading at all, blank-line-delimited paragraphs are used
// instead, labelled "Section 1", "Section 2", ... in input order.
func SplitIntoSections(text string) []Section {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var sections []Section
	heading := "Introduction"
	var body strings.Builder
	matched := false

	flush := func() {
		if b := strings.TrimSpace(body.String()); b != "" {
			sections = append(sections, Section{Heading: heading, Body: b})
		}
		body.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if headingPattern.MatchString(trimmed) {
			matched = true
			flush()
			heading = trimmed
			continue
		}
		body.WriteString(line)
		body.WriteString("\n")
	}
	flush()

	if matched {
		return sections
	}

	// No heading anywhere: fall back to paragraph splitting.
	sections = nil
	n := 0
	for _, para := range strings.Split(text, "\n\n") {
		p := strings.TrimSpace(para)
		if p == "" {
			continue
		}
		n++
		sections = append(sections, Section{
			Heading: fmt.Sprintf("Section %d", n),
			Body:    p,
		})
	}
	return sections
}
