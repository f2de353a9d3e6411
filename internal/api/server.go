package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"study-assist/internal/models"
	"study-assist/internal/services"
)

const maxMultipartMemory = 8 << 20 // 8 MB

type Server struct {
	mux       *http.ServeMux
	study     *services.StudyService
	extractor *services.ExtractorService
}

func NewServer(study *services.StudyService, extractor *services.ExtractorService) *Server {
	s := &Server{
		mux:       http.NewServeMux(),
		study:     study,
		extractor: extractor,
	}
	s.routes()
	return s
}

// Handler returns the API handler with CORS and access logging applied.
func (s *Server) Handler() http.Handler {
	return withRequestLog(withCORS(s.mux))
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/generate-summary", s.handleTask(models.TaskSummary))
	s.mux.HandleFunc("/api/generate-flashcards", s.handleTask(models.TaskFlashcards))
	s.mux.HandleFunc("/api/ask-question", s.handleTask(models.TaskQuestion))
	s.mux.HandleFunc("/api/generate-quiz", s.handleTask(models.TaskQuiz))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleTask is the single entry point behind all four generation endpoints,
// parameterized by task kind.
func (s *Server) handleTask(kind models.TaskKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			methodNotAllowed(w, http.MethodPost)
			return
		}

		text, question, err := s.readTaskForm(r, kind)
		if form := r.MultipartForm; form != nil {
			defer form.RemoveAll()
		}
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		result, err := s.study.Run(r.Context(), models.TaskRequest{
			Kind:     kind,
			Text:     text,
			Question: question,
		})
		switch {
		case errors.Is(err, services.ErrEmptyText):
			writeError(w, http.StatusBadRequest, "please provide text or upload a file")
		case errors.Is(err, services.ErrEmptyQuestion):
			writeError(w, http.StatusBadRequest, "please type a question about your notes")
		case err != nil:
			log.Printf("%s task failed: %v", kind, err)
			writeError(w, http.StatusInternalServerError, taskFailureMessage(kind))
		default:
			writeJSON(w, http.StatusOK, taskPayload(kind, result))
		}
	}
}

// readTaskForm pulls the task fields from a form-encoded or multipart body.
// For the summary task an uploaded file, when present, replaces the text
// field with whatever the extractor recovers from it.
func (s *Server) readTaskForm(r *http.Request, kind models.TaskKind) (string, string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return "", "", errors.New("invalid multipart form")
		}
	} else if err := r.ParseForm(); err != nil {
		return "", "", errors.New("invalid form payload")
	}

	text := r.FormValue("text")
	question := r.FormValue("question")

	if kind == models.TaskSummary {
		if extracted, ok := s.extractUpload(r); ok {
			text = extracted
		}
	}

	return text, question, nil
}

// extractUpload reads the uploaded file, if any, and extracts its text. The
// second return value reports whether a file was present at all; extraction
// failure on a present file yields empty text, which downstream validation
// turns into the usual "please provide text" warning.
func (s *Server) extractUpload(r *http.Request) (string, bool) {
	form := r.MultipartForm
	if form == nil || len(form.File["file"]) == 0 {
		return "", false
	}
	header := form.File["file"][0]

	src, err := header.Open()
	if err != nil {
		return "", true
	}
	defer src.Close()

	// The framework may have partially consumed the part; read from the start.
	if seeker, ok := src.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return "", true
	}

	doc := models.Document{
		Name: header.Filename,
		Kind: services.DetectKind(header.Header.Get("Content-Type"), header.Filename),
		Data: data,
	}
	return s.extractor.Extract(doc), true
}

func taskPayload(kind models.TaskKind, result *services.TaskResult) map[string]any {
	switch kind {
	case models.TaskSummary:
		return map[string]any{"summary": result.Raw}
	case models.TaskFlashcards:
		return map[string]any{"flashcards": result.Raw, "cards": result.Units}
	case models.TaskQuiz:
		return map[string]any{"quiz": result.Raw, "questions": result.Units}
	default:
		return map[string]any{"answer": result.Raw}
	}
}

// taskFailureMessage is what the caller sees when generation fails; the
// underlying cause is logged, never exposed.
func taskFailureMessage(kind models.TaskKind) string {
	switch kind {
	case models.TaskSummary:
		return "failed to generate summary"
	case models.TaskFlashcards:
		return "failed to generate flashcards"
	case models.TaskQuiz:
		return "failed to generate quiz"
	default:
		return "failed to answer question"
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
