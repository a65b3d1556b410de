package resume

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-resume-backend/pkg/apperror"
	"ai-resume-backend/pkg/llm"
	"ai-resume-backend/pkg/thread"
)

type recordingModel struct {
	messages  []llm.Message
	maxTokens int
	reply     string
	err       error
}

func (m *recordingModel) Complete(ctx context.Context, messages []llm.Message, maxTokens int) (string, error) {
	m.messages = messages
	m.maxTokens = maxTokens
	return m.reply, m.err
}

func TestFormatRequestsSectionsWithTokenCap(t *testing.T) {
	model := &recordingModel{reply: "formatted"}
	svc := NewService(model)

	out, err := svc.Format(context.Background(), "  raw resume text  ")
	require.NoError(t, err)
	assert.Equal(t, "formatted", out)

	require.Len(t, model.messages, 2)
	assert.Equal(t, thread.RoleSystem, model.messages[0].Role)
	for _, section := range []string{
		"Personal Information", "Professional Summary", "Skills",
		"Work Experience", "Education", "Certifications", "Projects",
	} {
		assert.Contains(t, model.messages[0].Content, section)
	}
	assert.Equal(t, "raw resume text", model.messages[1].Content)
	assert.Equal(t, formatMaxTokens, model.maxTokens)
}

func TestFormatRejectsEmptyText(t *testing.T) {
	svc := NewService(&recordingModel{})
	_, err := svc.Format(context.Background(), "   \n  ")
	assert.Equal(t, apperror.Validation, apperror.KindOf(err))
}

func TestScoreRubricAndVerbatimOutput(t *testing.T) {
	model := &recordingModel{reply: "Overall Score: 87/100\n..."}
	svc := NewService(model)

	out, err := svc.Score(context.Background(), "formatted resume")
	require.NoError(t, err)
	// Returned verbatim, no parsing or validation.
	assert.Equal(t, "Overall Score: 87/100\n...", out)

	require.Len(t, model.messages, 2)
	assert.Contains(t, model.messages[0].Content, "X/100")
	assert.Contains(t, model.messages[0].Content, "3-5 bullet points")
	assert.Contains(t, model.messages[0].Content, "Formatting & Structure")
	assert.Equal(t, "formatted resume", model.messages[1].Content)
	assert.Zero(t, model.maxTokens)
}

func TestStepsPropagateModelErrors(t *testing.T) {
	model := &recordingModel{err: apperror.New(apperror.Model, "no choices returned by model")}
	svc := NewService(model)

	_, err := svc.Format(context.Background(), "text")
	assert.Equal(t, apperror.Model, apperror.KindOf(err))

	_, err = svc.Score(context.Background(), "text")
	assert.Equal(t, apperror.Model, apperror.KindOf(err))
}
