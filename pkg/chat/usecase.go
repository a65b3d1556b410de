package chat

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"ai-resume-backend/pkg/apperror"
	"ai-resume-backend/pkg/llm"
	"ai-resume-backend/pkg/metrics"
	"ai-resume-backend/pkg/ocr"
	"ai-resume-backend/pkg/resume"
	"ai-resume-backend/pkg/thread"
)

// Upload describes a temporary uploaded file. The orchestrator owns it for
// the duration of the request and removes it on every exit path.
type Upload struct {
	Path     string
	MimeType string
	Filename string
}

// Input is the tagged request shape: a non-nil Upload selects the resume
// analysis path, otherwise Message selects plain contextual chat. The
// branch is resolved once, at entry.
type Input struct {
	ThreadID string
	Message  string
	Upload   *Upload
}

type Result struct {
	ThreadID string
	Reply    thread.Message
}

// UseCase is the conversation orchestrator invoked per incoming request.
type UseCase interface {
	Send(ctx context.Context, in Input) (Result, error)
	ListThreads(ctx context.Context) ([]thread.Thread, error)
	GetMessages(ctx context.Context, threadID string) ([]thread.Message, error)
	DeleteThread(ctx context.Context, threadID string) error
}

type service struct {
	threads   thread.Repository
	resumes   resume.Service
	extractor ocr.Extractor
	llm       llm.ChatModel
	metrics   *metrics.Metrics
	log       *zap.Logger
}

// NewService wires the orchestrator with its collaborators.
func NewService(threads thread.Repository, resumes resume.Service, extractor ocr.Extractor, model llm.ChatModel, m *metrics.Metrics, log *zap.Logger) UseCase {
	return &service{
		threads:   threads,
		resumes:   resumes,
		extractor: extractor,
		llm:       model,
		metrics:   m,
		log:       log,
	}
}

// Send runs one chat turn and persists it as a single logical unit: either
// both messages (user then assistant) are saved, or the store is untouched.
func (s *service) Send(ctx context.Context, in Input) (Result, error) {
	path := "chat"
	if in.Upload != nil {
		path = "analysis"
		defer s.discardUpload(in.Upload)
	}
	start := time.Now()
	res, err := s.send(ctx, in)
	status := "ok"
	if err != nil {
		status = "error"
	}
	s.metrics.ChatTurnsTotal.WithLabelValues(path, status).Inc()
	s.metrics.ChatTurnDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	return res, err
}

func (s *service) send(ctx context.Context, in Input) (Result, error) {
	if strings.TrimSpace(in.ThreadID) == "" {
		return Result{}, apperror.New(apperror.Validation, "thread id required")
	}
	if in.Message == "" && in.Upload == nil {
		return Result{}, apperror.New(apperror.Validation, "message or file required")
	}

	th, err := s.threads.Get(ctx, in.ThreadID)
	switch {
	case err == nil:
	case apperror.IsNotFound(err):
		// The supplied id becomes the thread's permanent identifier.
		th = thread.New(in.ThreadID, provisionalTitle(in))
	default:
		return Result{}, err
	}

	var userContent, reply string
	if in.Upload != nil {
		reply, err = s.analyze(ctx, in.Upload)
		if err != nil {
			return Result{}, err
		}
		// The thread records a placeholder, not the raw extracted text.
		userContent = fmt.Sprintf("[Uploaded Resume: %s]", in.Upload.Filename)
		th.Title = thread.TruncateTitle("Resume: " + in.Upload.Filename)
	} else {
		reply, err = s.respond(ctx, in.Message, th.Messages)
		if err != nil {
			return Result{}, err
		}
		userContent = in.Message
	}
	// Stored messages always carry content; an empty completion is a
	// provider fault, not a persistable turn.
	if reply == "" {
		return Result{}, apperror.New(apperror.Model, "model returned empty content")
	}

	th.Append(thread.RoleUser, userContent)
	th.Append(thread.RoleAssistant, reply)
	if err := s.threads.Save(ctx, th); err != nil {
		return Result{}, err
	}
	s.log.Info("chat turn persisted",
		zap.String("threadId", th.ID),
		zap.String("path", path(in)),
		zap.Int("messages", len(th.Messages)),
	)
	return Result{ThreadID: th.ID, Reply: th.Messages[len(th.Messages)-1]}, nil
}

// analyze runs the upload pipeline: extraction, formatting, scoring.
func (s *service) analyze(ctx context.Context, up *Upload) (string, error) {
	text, err := s.extractor.Extract(ctx, up.Path, up.MimeType)
	if err != nil {
		return "", err
	}
	formatted, err := s.resumes.Format(ctx, text)
	if err != nil {
		return "", err
	}
	return s.resumes.Score(ctx, formatted)
}

// discardUpload releases the request's temporary file. Runs exactly once
// per upload, on success and on every failure path. A file already gone is
// not an error.
func (s *service) discardUpload(up *Upload) {
	if err := os.Remove(up.Path); err != nil && !os.IsNotExist(err) {
		s.log.Warn("failed to remove uploaded file", zap.String("path", up.Path), zap.Error(err))
	}
}

func (s *service) ListThreads(ctx context.Context) ([]thread.Thread, error) {
	return s.threads.List(ctx)
}

func (s *service) GetMessages(ctx context.Context, threadID string) ([]thread.Message, error) {
	th, err := s.threads.Get(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if th.Messages == nil {
		return []thread.Message{}, nil
	}
	return th.Messages, nil
}

func (s *service) DeleteThread(ctx context.Context, threadID string) error {
	return s.threads.Delete(ctx, threadID)
}

func provisionalTitle(in Input) string {
	if in.Upload != nil {
		return "Resume: " + in.Upload.Filename
	}
	return in.Message
}

func path(in Input) string {
	if in.Upload != nil {
		return "analysis"
	}
	return "chat"
}
