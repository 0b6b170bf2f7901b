package extract

import (
	"strings"
)

// MinTextLength is the validation floor: shorter extractions are rejected
// because the downstream heuristics are meaningless on near-empty input.
const MinTextLength = 50

type Extractor interface {
	// ExtractText converts a document's raw bytes into plain text. A
	// failure is terminal for the request; callers get a format-specific
	// remediation hint via extract.AsError.
	ExtractText(data []byte, contentType string) (string, error)

	// Validate rejects text below the MinTextLength floor.
	Validate(text string) error
}

type extractor struct {
	ocrLanguage string
}

func NewExtractor(ocrLanguage string) Extractor {
	if ocrLanguage == "" {
		ocrLanguage = "eng"
	}
	return &extractor{ocrLanguage: ocrLanguage}
}

// ExtractText implements Extractor.
func (e *extractor) ExtractText(data []byte, contentType string) (string, error) {
	format, err := DetectFormat(contentType)
	if err != nil {
		return "", err
	}

	switch format {
	case FormatPDF:
		return extractPDF(data)
	case FormatDocx:
		return extractDocx(data)
	case FormatDoc:
		return extractDoc(data)
	case FormatImage:
		return extractImage(data, e.ocrLanguage)
	}

	return "", ErrUnsupportedFormat
}

// Validate implements Extractor.
func (e *extractor) Validate(text string) error {
	if len(strings.TrimSpace(text)) < MinTextLength {
		return ErrInsufficientText
	}
	return nil
}
