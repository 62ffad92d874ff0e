package llm

import "fmt"

// QuizItem is a single check-for-understanding question.
type QuizItem struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// LessonSection is one section of a generated lesson.
type LessonSection struct {
	Heading string    `json:"heading"`
	Content string    `json:"content"`
	Example string    `json:"example,omitempty"`
	Quiz    *QuizItem `json:"quiz,omitempty"`
}

// LessonDocument is the structured lesson shape the mock generator
// produces. Network providers may return documents of arbitrary shape;
// those are stored verbatim and never forced into this struct.
type LessonDocument struct {
	Title    string          `json:"title"`
	Level    string          `json:"level"`
	Sections []LessonSection `json:"sections"`
	Summary  string          `json:"summary,omitempty"`
}

// CourseLesson is one lesson entry inside a course week.
type CourseLesson struct {
	Title   string `json:"title"`
	Outcome string `json:"outcome"`
}

// CourseWeek is one weekly module of a generated course.
type CourseWeek struct {
	Title   string         `json:"title"`
	Lessons []CourseLesson `json:"lessons"`
}

// CourseDocument is the structured syllabus shape the mock generator produces.
type CourseDocument struct {
	CourseTitle string       `json:"course_title"`
	Weeks       []CourseWeek `json:"weeks"`
	Goals       *string      `json:"goals,omitempty"`
}

// MockLesson deterministically synthesises a three-section lesson on the
// topic: an intuition-first intro with a quiz, a step-by-step breakdown,
// and a mini project.
func MockLesson(topic, level, goals string) LessonDocument {
	intro := fmt.Sprintf("A quick intuition-first intro to %s for %s learners. ", topic, level)
	if goals != "" {
		intro += fmt.Sprintf("Goal: %s. ", goals)
	}
	intro += "We start with the core idea and avoid jargon."

	sections := []LessonSection{
		{
			Heading: fmt.Sprintf("What is %s?", topic),
			Content: intro,
			Example: fmt.Sprintf("Example: A simple scenario where %s is applied.", topic),
			Quiz: &QuizItem{
				Question: fmt.Sprintf("Pick the true statement about %s.", topic),
				Options: []string{
					"It's magic",
					"It has a core idea used to solve problems",
					"It's only for experts",
					"It cannot be learned",
				},
				Answer: "It has a core idea used to solve problems",
			},
		},
		{
			Heading: "Step-by-step",
			Content: fmt.Sprintf("Break %s into 3 steps: understand, try, reflect.", topic),
			Example: fmt.Sprintf("Walkthrough applying %s to a tiny task.", topic),
		},
		{
			Heading: "Mini project",
			Content: fmt.Sprintf("Build a tiny project using %s to cement learning.", topic),
		},
	}

	return LessonDocument{
		Title:    fmt.Sprintf("Lesson: %s", topic),
		Level:    level,
		Sections: sections,
		Summary:  fmt.Sprintf("You learned the core of %s.", topic),
	}
}

// MockCourse deterministically synthesises a syllabus with one module
// per week and three lessons per module.
func MockCourse(topic string, durationWeeks int, goals string) CourseDocument {
	weeks := make([]CourseWeek, 0, durationWeeks)
	for w := 1; w <= durationWeeks; w++ {
		weeks = append(weeks, CourseWeek{
			Title: fmt.Sprintf("Week %d: %s - Part %d", w, topic, w),
			Lessons: []CourseLesson{
				{Title: fmt.Sprintf("%s Basics %d.1", topic, w), Outcome: "Core ideas"},
				{Title: fmt.Sprintf("%s Practice %d.2", topic, w), Outcome: "Hands-on"},
				{Title: fmt.Sprintf("%s Project %d.3", topic, w), Outcome: "Build something small"},
			},
		})
	}

	doc := CourseDocument{
		CourseTitle: fmt.Sprintf("%s in %d weeks", topic, durationWeeks),
		Weeks:       weeks,
	}
	if goals != "" {
		doc.Goals = &goals
	}
	return doc
}

// WrapLessonText wraps raw provider text that could not be parsed as a
// document into a minimal single-section lesson.
func WrapLessonText(topic, level, text string) LessonDocument {
	return LessonDocument{
		Title:    fmt.Sprintf("Lesson: %s", topic),
		Level:    level,
		Sections: []LessonSection{{Heading: "Content", Content: text}},
	}
}

// WrapCourseText wraps raw provider text that could not be parsed as a
// document into a minimal one-week syllabus.
func WrapCourseText(topic string, durationWeeks int, text string) CourseDocument {
	return CourseDocument{
		CourseTitle: fmt.Sprintf("%s in %d weeks", topic, durationWeeks),
		Weeks: []CourseWeek{{
			Title:   "Overview",
			Lessons: []CourseLesson{{Title: "Syllabus", Outcome: text}},
		}},
	}
}
