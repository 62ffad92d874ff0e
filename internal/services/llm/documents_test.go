package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLessonStructure(t *testing.T) {
	doc := MockLesson("Algebra", "beginner", "pass the exam")

	assert.Equal(t, "Lesson: Algebra", doc.Title)
	assert.Equal(t, "beginner", doc.Level)
	assert.Equal(t, "You learned the core of Algebra.", doc.Summary)

	require.Len(t, doc.Sections, 3)
	assert.Equal(t, "What is Algebra?", doc.Sections[0].Heading)
	assert.Equal(t, "Step-by-step", doc.Sections[1].Heading)
	assert.Equal(t, "Mini project", doc.Sections[2].Heading)

	quiz := doc.Sections[0].Quiz
	require.NotNil(t, quiz)
	require.Len(t, quiz.Options, 4)
	assert.Equal(t, quiz.Options[1], quiz.Answer)

	assert.Nil(t, doc.Sections[1].Quiz)
	assert.Nil(t, doc.Sections[2].Quiz)
	assert.Empty(t, doc.Sections[2].Example)

	assert.Contains(t, doc.Sections[0].Content, "Goal: pass the exam.")
	assert.Contains(t, doc.Sections[0].Content, "for beginner learners")
}

func TestMockLessonWithoutGoals(t *testing.T) {
	doc := MockLesson("Algebra", "advanced", "")

	assert.NotContains(t, doc.Sections[0].Content, "Goal:")
	assert.Contains(t, doc.Sections[0].Content, "for advanced learners")
}

func TestMockCourseStructure(t *testing.T) {
	for _, weeks := range []int{1, 2, 4, 8} {
		doc := MockCourse("Go", weeks, "learn the language")

		assert.Equal(t, fmt.Sprintf("Go in %d weeks", weeks), doc.CourseTitle)
		require.Len(t, doc.Weeks, weeks)

		for i, week := range doc.Weeks {
			w := i + 1
			assert.Equal(t, fmt.Sprintf("Week %d: Go - Part %d", w, w), week.Title)
			require.Len(t, week.Lessons, 3)
			assert.Equal(t, fmt.Sprintf("Go Basics %d.1", w), week.Lessons[0].Title)
			assert.Equal(t, fmt.Sprintf("Go Practice %d.2", w), week.Lessons[1].Title)
			assert.Equal(t, fmt.Sprintf("Go Project %d.3", w), week.Lessons[2].Title)
			assert.Equal(t, "Core ideas", week.Lessons[0].Outcome)
			assert.Equal(t, "Hands-on", week.Lessons[1].Outcome)
			assert.Equal(t, "Build something small", week.Lessons[2].Outcome)
		}

		require.NotNil(t, doc.Goals)
		assert.Equal(t, "learn the language", *doc.Goals)
	}
}

func TestMockCourseWithoutGoals(t *testing.T) {
	doc := MockCourse("Go", 2, "")
	assert.Nil(t, doc.Goals)
}
