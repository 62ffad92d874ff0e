package llm

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnx-app/learnx-server-go/pkg/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseProvider(t *testing.T) {
	assert.Equal(t, ProviderMock, ParseProvider("mock"))
	assert.Equal(t, ProviderOllama, ParseProvider("ollama"))
	assert.Equal(t, ProviderOpenAI, ParseProvider(" OpenAI "))
	assert.Equal(t, ProviderMock, ParseProvider("anthropic"))
	assert.Equal(t, ProviderMock, ParseProvider(""))
}

func TestParseDocument(t *testing.T) {
	doc, ok := ParseDocument(`{"title":"x","extra":[1,2]}`)
	require.True(t, ok)
	assert.JSONEq(t, `{"title":"x","extra":[1,2]}`, string(doc))

	_, ok = ParseDocument("Here is your lesson:\n1. Intro")
	assert.False(t, ok)

	_, ok = ParseDocument("")
	assert.False(t, ok)

	_, ok = ParseDocument(`{"broken": `)
	assert.False(t, ok)
}

func TestGenerateLessonMock(t *testing.T) {
	svc := NewService(config.LLMConfig{Provider: "mock"}, testLogger())

	raw, err := svc.GenerateLesson(context.Background(), "Algebra", "beginner", "")
	require.NoError(t, err)

	var doc LessonDocument
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Len(t, doc.Sections, 3)
	assert.Equal(t, doc.Sections[0].Quiz.Options[1], doc.Sections[0].Quiz.Answer)
}

func TestGenerateCourseMock(t *testing.T) {
	svc := NewService(config.LLMConfig{Provider: "mock"}, testLogger())

	raw, err := svc.GenerateCourse(context.Background(), "Go", 3, "")
	require.NoError(t, err)

	var doc CourseDocument
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Len(t, doc.Weeks, 3)
}

func TestUnknownProviderFallsBackToMock(t *testing.T) {
	svc := NewService(config.LLMConfig{Provider: "something-else"}, testLogger())
	assert.Equal(t, ProviderMock, svc.Provider())

	raw, err := svc.GenerateLesson(context.Background(), "Algebra", "beginner", "")
	require.NoError(t, err)

	var doc LessonDocument
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Len(t, doc.Sections, 3)
}

func ollamaService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewService(config.LLMConfig{
		Provider:    "ollama",
		OllamaHost:  server.URL,
		OllamaModel: "llama3.1:8b",
	}, testLogger())
}

func TestGenerateLessonWrapsNonJSONText(t *testing.T) {
	svc := ollamaService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.1:8b", req["model"])
		assert.Equal(t, false, req["stream"])
		assert.NotEmpty(t, req["prompt"])

		json.NewEncoder(w).Encode(map[string]string{"response": "plain model text"})
	})

	raw, err := svc.GenerateLesson(context.Background(), "Algebra", "beginner", "")
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"title": "Lesson: Algebra",
		"level": "beginner",
		"sections": [{"heading": "Content", "content": "plain model text"}]
	}`, string(raw))
}

func TestGenerateLessonPassesProviderJSONThroughVerbatim(t *testing.T) {
	providerDoc := `{"anything":{"nested":true},"sections":"not even a list"}`
	svc := ollamaService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"response": providerDoc})
	})

	raw, err := svc.GenerateLesson(context.Background(), "Algebra", "beginner", "")
	require.NoError(t, err)
	assert.JSONEq(t, providerDoc, string(raw))
}

func TestGenerateCourseWrapsNonJSONText(t *testing.T) {
	svc := ollamaService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"response": "outline as text"})
	})

	raw, err := svc.GenerateCourse(context.Background(), "Go", 4, "")
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"course_title": "Go in 4 weeks",
		"weeks": [{"title": "Overview", "lessons": [{"title": "Syllabus", "outcome": "outline as text"}]}]
	}`, string(raw))
}

func TestGenerateLessonUpstreamFailure(t *testing.T) {
	svc := ollamaService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	})

	_, err := svc.GenerateLesson(context.Background(), "Algebra", "beginner", "")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestOpenAIComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "gpt-4o-mini", req.Model)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "first choice"}},
				{"message": map[string]string{"content": "second choice"}},
			},
		})
	}))
	t.Cleanup(server.Close)

	client := NewOpenAIClient(server.URL, "sk-test", "gpt-4o-mini")
	text, err := client.Complete(context.Background(), "system prompt", "user prompt")
	require.NoError(t, err)
	assert.Equal(t, "first choice", text)
}

func TestOpenAICompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	t.Cleanup(server.Close)

	client := NewOpenAIClient(server.URL, "sk-test", "gpt-4o-mini")
	_, err := client.Complete(context.Background(), "s", "u")
	assert.Error(t, err)
}

func TestOpenAICompleteNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	client := NewOpenAIClient(server.URL, "sk-test", "gpt-4o-mini")
	_, err := client.Complete(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=429")
}
