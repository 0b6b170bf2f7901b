package extract

import (
	"errors"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// extractImage runs tesseract OCR over the raster. This blocks for tens
// of seconds on large scans; callers run it synchronously inside the
// request and must not expect a cancellation path once started.
func extractImage(data []byte, language string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return "", newError(FormatImage, err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return "", newError(FormatImage, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", newError(FormatImage, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", newError(FormatImage, errors.New("no text recognized in image"))
	}

	return normalizeWhitespace(text), nil
}
