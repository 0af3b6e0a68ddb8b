package summarizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SentinelFailed is returned in place of a section summary when every retry
// attempt is exhausted. Callers treat it as data, not as an error.
const SentinelFailed = "[!] Summary failed after retries."

const sectionPrompt = `You are an expert summarizer with domain knowledge across HR, legal, technical, and business documents.
Your task is to generate a clear, professional, and structured summary of the given document or section.

Guidelines:
- Identify and highlight the most important information: key points, responsibilities, actions, deadlines, decisions, or achievements.
- Use concise bullet points where appropriate, but also provide short cohesive paragraphs for context.
- Adapt writing style based on the content type:
  - Resume: emphasize skills, experience, and accomplishments.
  - HR/Policy: highlight policies, roles, procedures, compliance details, and responsibilities.
  - Technical: capture processes, methods, results, limitations, and recommendations.
  - General/Business: focus on goals, outcomes, benefits, and next steps.
- Do not invent or assume facts that are not explicitly stated in the text.
- Preserve the logical flow of the original content but remove redundancy and filler.
- Keep the summary professional, precise, and easy to read for stakeholders.

Document/Section content:
%s`

const mergePrompt = `You are an expert summarizer with strong domain knowledge across HR, legal, technical, business, and professional documents. Your task is to generate a cohesive, professional, and highly detailed final summary of the entire document based on the section-wise summaries provided.

Important handling:
- If any section contains the error marker "%s" or incomplete text, ignore that section completely in the final summary.
- Only use valid and meaningful content.

Word count requirements:
- HR-related documents: aim for ~4000 words.
- Resume-related documents: aim for ~2000 words.
- Business or general corporate documents: aim for ~5000 words.
- If the document type is unclear: default to ~200 words.

Guidelines for the final summary:
- Carefully read all section summaries and preserve their logical order and flow.
- Consolidate overlapping information and eliminate trivial or repetitive details.
- Highlight essential elements such as key points, responsibilities, actions, deadlines, incentives, inclusions, exclusions, claim limits, benefits, preventive care, and strategic insights where relevant.
- Use concise bullet points for actionable items and short, well-structured paragraphs for context.
- Maintain a professional, precise, and stakeholder-friendly tone, as if writing an executive-level summary.
- Do not fabricate or assume facts beyond the provided content; if assumptions must be noted, explicitly label them as "Assumptions".

Section-wise summaries:
%s`

// SummarizeDocument extracts the document text and produces the final
// summary. Only extraction can fail; summarization always yields output.
func (s *implSummarizer) SummarizeDocument(ctx context.Context, path string) (string, error) {
	text, err := s.extractor.Read(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return s.SummarizeText(ctx, text), nil
}

// SummarizeText splits the text into sections, summarizes each one in order
// and runs a final merge pass. When the merge call fails the concatenated
// per-section blocks are returned instead.
func (s *implSummarizer) SummarizeText(ctx context.Context, text string) string {
	sections := SplitIntoSections(text)
	if len(sections) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(sections))
	for _, sec := range sections {
		s.logger.Info(ctx, "Summarizing section: %s", sec.Heading)
		summary := s.SummarizeSection(ctx, sec.Body)
		blocks = append(blocks, fmt.Sprintf("## %s\n%s\n", sec.Heading, summary))
	}
	merged := strings.Join(blocks, "\n")

	prompt := fmt.Sprintf(mergePrompt, SentinelFailed, merged)
	opts := GenerateOptions{
		Model:           s.model,
		Temperature:     0.3,
		TopP:            0.8,
		MaxOutputTokens: 800,
		CandidateCount:  1,
	}

	final, err := s.generator.Generate(ctx, s.keys.Current(), prompt, opts)
	if err != nil {
		s.logger.Error(ctx, "Final merge summarization failed: %v", err)
		return merged
	}
	if final == "" {
		s.logger.Warn(ctx, "Final merge returned empty text, keeping section summaries")
		return merged
	}
	return final
}

// SummarizeSection summarizes one section body with retry and credential
// fallback. Bodies below the minimum word count are skipped outright so
// stray headings and noise never cost a model call.
func (s *implSummarizer) SummarizeSection(ctx context.Context, body string) string {
	if len(strings.Fields(body)) < s.minWords {
		return ""
	}

	prompt := fmt.Sprintf(sectionPrompt, body)
	opts := GenerateOptions{
		Model:           s.model,
		Temperature:     0.2,
		TopP:            0.7,
		MaxOutputTokens: 800,
	}

	for attempt := 1; attempt <= s.retries; attempt++ {
		summary, err := s.generator.Generate(ctx, s.keys.Current(), prompt, opts)
		if err == nil && summary != "" {
			return summary
		}

		switch {
		case err == nil:
			s.logger.Warn(ctx, "Model returned empty summary, retrying %d/%d", attempt, s.retries)
		case isQuotaError(err):
			if s.keys.Advance() {
				s.logger.Warn(ctx, "Quota exhausted, switching to fallback API key #%d", s.keys.Index()+1)
				continue
			}
			s.logger.Error(ctx, "All API keys exhausted: %v", err)
		default:
			s.logger.Error(ctx, "Summarize section attempt %d/%d failed: %v", attempt, s.retries, err)
		}

		if attempt < s.retries {
			s.sleep(ctx, s.delay)
		}
	}

	return SentinelFailed
}

// SaveSummary writes the summary text to <outputDir>/<baseFilename>_summary.txt.
func (s *implSummarizer) SaveSummary(text, baseFilename, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("create summary dir: %w", err)
	}
	path := filepath.Join(outputDir, baseFilename+"_summary.txt")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}
	return path, nil
}

func (s *implSummarizer) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
