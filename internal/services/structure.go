package services

import (
	"strings"

	"study-assist/internal/models"
)

// SplitBlocks partitions raw model output into title/body units on blank-line
// boundaries: the title is a block's first line, the body the remaining lines
// rejoined. This is a best-effort structural parse over free-form text; output
// with no blank lines degrades to a single coarse unit, never an error.
func SplitBlocks(raw string) []models.StudyUnit {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	units := make([]models.StudyUnit, 0)
	for _, block := range splitOnBlankLines(raw) {
		title, body, _ := strings.Cut(block, "\n")
		units = append(units, models.StudyUnit{
			Title: strings.TrimSpace(title),
			Body:  body,
		})
	}
	return units
}

// splitOnBlankLines groups consecutive non-blank lines into blocks. Lines
// containing only whitespace count as separators, so a model that pads its
// blank lines still yields clean blocks.
func splitOnBlankLines(raw string) []string {
	var blocks []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return blocks
}
