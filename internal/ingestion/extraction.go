// Package ingestion extracts raw text from uploaded resume files.
package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractionError indicates the PDF yielded no usable text. It is fatal
// for the whole analysis: skill matching and recommendation never run on
// partial text. Retrying is a user action (re-upload), not internal logic.
type ExtractionError struct {
	Reason string
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resume text extraction failed: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("resume text extraction failed: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// ExtractText extracts plain text from a PDF held in memory. Pages are
// joined with newlines in document order. If any page fails to yield
// text the whole extraction is rejected with an *ExtractionError, so
// downstream analysis never sees partial text.
func ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Reason: "failed to read PDF", Cause: err}
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return "", &ExtractionError{Reason: "PDF has no pages"}
	}

	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			return "", &ExtractionError{Reason: fmt.Sprintf("page %d could not be read", i)}
		}
		text, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(text) == "" {
			return "", &ExtractionError{Reason: fmt.Sprintf("page %d yielded no text", i), Cause: err}
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}

// ExtractFile reads a PDF from disk and extracts its text.
func ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Reason: "failed to read file", Cause: err}
	}
	return ExtractText(data)
}
