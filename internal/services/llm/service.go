package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/learnx-app/learnx-server-go/pkg/config"
	"github.com/learnx-app/learnx-server-go/pkg/metrics"
)

// ErrUpstream marks a failed call to a network-backed content provider.
// It is never raised by the mock provider.
var ErrUpstream = errors.New("content provider request failed")

const systemPrompt = "You are LearnX, an expert teacher. Generate concise, structured lessons that build intuition, " +
	"include small examples, and end each section with a quick check-for-understanding quiz."

// Service generates lesson and course documents through the configured
// provider. Documents are returned as raw JSON: provider output of
// arbitrary shape is passed through verbatim, and only the mock
// generator's shape is guaranteed.
type Service struct {
	provider Provider
	ollama   *OllamaClient
	openai   *OpenAIClient
	logger   *slog.Logger
}

// NewService builds a generation service from config. The provider is
// resolved once at startup, not per request.
func NewService(cfg config.LLMConfig, logger *slog.Logger) *Service {
	return &Service{
		provider: ParseProvider(cfg.Provider),
		ollama:   NewOllamaClient(cfg.OllamaHost, cfg.OllamaModel),
		openai:   NewOpenAIClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel),
		logger:   logger,
	}
}

// Provider reports the resolved provider.
func (s *Service) Provider() Provider {
	return s.provider
}

// GenerateLesson produces a lesson document for the topic. Network
// failures surface as ErrUpstream; unparseable provider text is wrapped
// into a minimal single-section document instead.
func (s *Service) GenerateLesson(ctx context.Context, topic, level, goals string) (json.RawMessage, error) {
	if s.provider == ProviderMock {
		return json.Marshal(MockLesson(topic, level, goals))
	}

	prompt := fmt.Sprintf(
		"Create a compact, structured lesson on '%s' for a %s learner. Goals: %s. "+
			"Return clear sections with headings, short content, and one quick quiz.",
		topic, level, goals,
	)

	text, err := s.complete(ctx, "lesson", prompt)
	if err != nil {
		return nil, err
	}

	if doc, ok := ParseDocument(text); ok {
		return doc, nil
	}
	return json.Marshal(WrapLessonText(topic, level, text))
}

// GenerateCourse produces a syllabus document for the topic.
func (s *Service) GenerateCourse(ctx context.Context, topic string, durationWeeks int, goals string) (json.RawMessage, error) {
	if s.provider == ProviderMock {
		return json.Marshal(MockCourse(topic, durationWeeks, goals))
	}

	prompt := fmt.Sprintf(
		"Design a %d-week course on '%s' with weekly modules and 3 lessons each. "+
			"Include brief outcomes. Goals: %s. Return JSON.",
		durationWeeks, topic, goals,
	)

	text, err := s.complete(ctx, "course", prompt)
	if err != nil {
		return nil, err
	}

	if doc, ok := ParseDocument(text); ok {
		return doc, nil
	}
	return json.Marshal(WrapCourseText(topic, durationWeeks, text))
}

// complete dispatches the prompt to the configured network provider.
func (s *Service) complete(ctx context.Context, kind, prompt string) (string, error) {
	start := time.Now()

	var text string
	var err error
	switch s.provider {
	case ProviderOllama:
		text, err = s.ollama.Generate(ctx, prompt)
	case ProviderOpenAI:
		text, err = s.openai.Complete(ctx, systemPrompt, prompt)
	default:
		// ParseProvider collapses everything else onto mock; this is
		// unreachable unless a new provider is added without a case here.
		return "", fmt.Errorf("%w: no client for provider %q", ErrUpstream, s.provider)
	}

	elapsed := time.Since(start)
	if err != nil {
		metrics.RecordGeneration(string(s.provider), kind, "error", elapsed)
		s.logger.Error("content generation failed",
			slog.String("provider", string(s.provider)),
			slog.String("kind", kind),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	metrics.RecordGeneration(string(s.provider), kind, "ok", elapsed)
	return text, nil
}

// ParseDocument attempts to read provider text as a JSON document. The
// raw bytes are returned untouched on success so arbitrary provider
// shapes round-trip verbatim.
func ParseDocument(text string) (json.RawMessage, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || !json.Valid([]byte(trimmed)) {
		return nil, false
	}
	return json.RawMessage(trimmed), true
}
