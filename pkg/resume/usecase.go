package resume

import (
	"context"
	"strings"

	"ai-resume-backend/pkg/apperror"
	"ai-resume-backend/pkg/llm"
	"ai-resume-backend/pkg/thread"
)

// formatMaxTokens caps the formatting step's generated output on the
// request side; the model is expected to self-limit.
const formatMaxTokens = 1024

const formatSystemPrompt = "You are a resume formatting assistant. Reorganize the resume text you receive " +
	"into the following sections: Personal Information, Professional Summary, Skills, Work Experience, " +
	"Education, Certifications, Projects. Preserve all information from the original text. Do not invent " +
	"details that are not present. Output plain text with clear section headings."

const scoreSystemPrompt = "You are an expert resume reviewer. Evaluate the resume you receive and respond " +
	"in a clearly structured, human-readable format with:\n" +
	"1. Overall Score: X/100\n" +
	"2. Section scores, each out of 10: Contact Information, Professional Summary, Skills, Work Experience, " +
	"Education, Formatting & Structure\n" +
	"3. Strengths: 3-5 bullet points\n" +
	"4. Areas for Improvement: 3-5 bullet points\n" +
	"5. Actionable Recommendations\n" +
	"6. Field-Specific Tips for the candidate's industry"

// Service runs the two model-backed analysis steps. Each is a single
// invocation with no retry; provider errors propagate to the caller.
type Service interface {
	// Format normalizes raw extracted resume text into sectioned form.
	Format(ctx context.Context, rawText string) (string, error)
	// Score produces a rubric-based critique of formatted resume text.
	// The output is returned verbatim, without server-side parsing.
	Score(ctx context.Context, formattedText string) (string, error)
}

type service struct {
	llm llm.ChatModel
}

// NewService creates the default implementation.
func NewService(model llm.ChatModel) Service {
	return &service{llm: model}
}

func (s *service) Format(ctx context.Context, rawText string) (string, error) {
	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return "", apperror.New(apperror.Validation, "no text could be extracted from the file")
	}
	return s.llm.Complete(ctx, []llm.Message{
		{Role: thread.RoleSystem, Content: formatSystemPrompt},
		{Role: thread.RoleUser, Content: rawText},
	}, formatMaxTokens)
}

func (s *service) Score(ctx context.Context, formattedText string) (string, error) {
	return s.llm.Complete(ctx, []llm.Message{
		{Role: thread.RoleSystem, Content: scoreSystemPrompt},
		{Role: thread.RoleUser, Content: formattedText},
	}, 0)
}
