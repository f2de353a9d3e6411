package services

import "study-assist/internal/models"

// SystemPrompt frames every generation request, regardless of task kind.
const SystemPrompt = "You are a helpful study assistant."

// BuildPrompt assembles the user instruction for one study task. The input
// text is embedded verbatim; any length limiting happens before this point.
func BuildPrompt(kind models.TaskKind, text, question string) string {
	switch kind {
	case models.TaskFlashcards:
		return "Convert this text into 10 flashcards in question-answer format for study purposes. " +
			"Put each question on its own first line, the answer on the following lines, " +
			"and separate flashcards with a blank line:\n\n" + text
	case models.TaskQuiz:
		return "Create 5 multiple-choice questions based on the following notes. " +
			"Provide 4 options each and mark the correct answer. " +
			"Put each question on its own first line and separate questions with a blank line:\n\n" + text
	case models.TaskQuestion:
		return "Answer the question based on the following notes:\n\nNotes:\n" + text +
			"\n\nQuestion: " + question
	default:
		return "Summarize this text in 5 key points for study purposes:\n\n" + text
	}
}
