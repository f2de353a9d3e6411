package models

// TaskKind selects the prompt template and output shape for one study task.
type TaskKind string

const (
	TaskSummary    TaskKind = "summary"
	TaskFlashcards TaskKind = "flashcards"
	TaskQuiz       TaskKind = "quiz"
	TaskQuestion   TaskKind = "qa"
)

// MaxTokens returns the completion-length ceiling for the task.
func (k TaskKind) MaxTokens() int {
	switch k {
	case TaskFlashcards, TaskQuiz:
		return 500
	default:
		return 300
	}
}

// Structured reports whether the raw model output should be split into
// title/body units for display.
func (k TaskKind) Structured() bool {
	return k == TaskFlashcards || k == TaskQuiz
}

// DocumentKind tags an upload by its declared media type.
type DocumentKind string

const (
	DocumentPDF     DocumentKind = "pdf"
	DocumentText    DocumentKind = "text"
	DocumentUnknown DocumentKind = "unknown"
)

// Document is a request-scoped upload: raw bytes plus the kind inferred from
// the client's declared media type. Nothing is persisted.
type Document struct {
	Name string
	Kind DocumentKind
	Data []byte
}

// TaskRequest carries one study task through the pipeline.
type TaskRequest struct {
	Kind     TaskKind
	Text     string
	Question string
}

// StudyUnit is the title/body pair parsed from one blank-line-delimited block
// of raw model output: a flashcard (question/answer) or a quiz question
// (stem/options).
type StudyUnit struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
