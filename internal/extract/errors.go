package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat means the declared media type is outside the
	// allow-list. Surfaced immediately, never retried.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrInsufficientText means extraction produced fewer than
	// MinTextLength characters after trimming.
	ErrInsufficientText = errors.New("extracted text is too short")
)

// Error wraps an extractor failure with the format it came from and a
// user-facing remediation hint.
type Error struct {
	Format Format
	Hint   string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s extraction failed: %v", e.Format, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// remediation hints per format, returned to the uploader alongside the
// failure (see AsError).
var hints = map[Format]string{
	FormatPDF:   "The PDF has no readable text layer. Export a text-based PDF or upload a Word document instead.",
	FormatDocx:  "The Word document could not be read. Re-save it as .docx or export it as PDF.",
	FormatDoc:   "The legacy Word document could not be read. Re-save it as .docx or export it as PDF.",
	FormatImage: "Text could not be recognized in the image. Check that it is clear, well-lit and not rotated, or upload a PDF/Word version.",
}

func newError(format Format, err error) *Error {
	return &Error{Format: format, Hint: hints[format], Err: err}
}

// AsError extracts the format-specific *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
