package services

import (
	"bytes"
	"mime"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"study-assist/internal/models"
)

// ExtractorService turns an uploaded document into plain text. Extraction is
// best effort: an unreadable or unsupported document degrades to an empty
// string, which the caller surfaces as its normal "please provide text"
// validation rather than a server fault.
type ExtractorService struct{}

func NewExtractorService() *ExtractorService {
	return &ExtractorService{}
}

// DetectKind classifies an upload by its declared media type. The filename
// extension is consulted only when no parseable media type was declared;
// a declared type other than PDF or plain text is unsupported.
func DetectKind(contentType, filename string) models.DocumentKind {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType != "" {
		switch mediaType {
		case "application/pdf":
			return models.DocumentPDF
		case "text/plain":
			return models.DocumentText
		default:
			return models.DocumentUnknown
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return models.DocumentPDF
	case ".txt":
		return models.DocumentText
	}
	return models.DocumentUnknown
}

// Extract returns the document's plain text, or "" when nothing can be
// extracted. It never returns an error.
func (s *ExtractorService) Extract(doc models.Document) string {
	switch doc.Kind {
	case models.DocumentPDF:
		return extractPDF(doc.Data)
	case models.DocumentText:
		return string(doc.Data)
	default:
		return ""
	}
}

func extractPDF(data []byte) (text string) {
	// The pdf package panics on some malformed files; treat that like an
	// open error and return no text.
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	// A page whose extraction fails contributes an empty string, so the join
	// below never loses the remaining pages.
	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			content = ""
		}
		pages = append(pages, content)
	}
	return strings.Join(pages, "\n")
}
