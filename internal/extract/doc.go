package extract

import (
	"bytes"
	"errors"
	"strings"

	"code.sajari.com/docconv"
)

// extractDoc converts a legacy binary Word document through docconv,
// discarding all formatting.
func extractDoc(data []byte) (string, error) {
	res, err := docconv.Convert(bytes.NewReader(data), mimeDoc, true)
	if err != nil {
		return "", newError(FormatDoc, err)
	}
	if res == nil || strings.TrimSpace(res.Body) == "" {
		return "", newError(FormatDoc, errors.New("no text content found in document"))
	}

	return normalizeWhitespace(res.Body), nil
}
