package extract

import "strings"

// Format identifies a supported document type.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatDocx  Format = "docx"
	FormatDoc   Format = "doc"
	FormatImage Format = "image"
)

const (
	mimePDF  = "application/pdf"
	mimeDoc  = "application/msword"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// DetectFormat maps a declared media type to an extraction strategy.
// Any image/* type is handled by OCR; everything outside the allow-list
// is rejected with ErrUnsupportedFormat.
func DetectFormat(contentType string) (Format, error) {
	// Strip parameters like "; charset=utf-8"
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	contentType = strings.ToLower(strings.TrimSpace(contentType))

	switch contentType {
	case mimePDF:
		return FormatPDF, nil
	case mimeDocx:
		return FormatDocx, nil
	case mimeDoc:
		return FormatDoc, nil
	case "image/jpeg", "image/jpg", "image/png", "image/tiff", "image/bmp":
		return FormatImage, nil
	}

	return "", ErrUnsupportedFormat
}
