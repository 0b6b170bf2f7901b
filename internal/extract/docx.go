package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"
)

var (
	docxTagPattern = regexp.MustCompile(`<[^>]+>`)
	spaceRuns      = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRuns    = regexp.MustCompile(`\n+`)
)

// extractDocx reads word/document.xml out of the .docx zip container and
// strips the markup, discarding all formatting.
func extractDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", newError(FormatDocx, err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", newError(FormatDocx, err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", newError(FormatDocx, err)
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", newError(FormatDocx, errors.New("no document.xml found in docx"))
	}

	xml := string(docXML)
	// Paragraph and tab boundaries become whitespace before tags go.
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	text := docxTagPattern.ReplaceAllString(xml, " ")

	return normalizeWhitespace(text), nil
}

// normalizeWhitespace collapses runs of spaces and newlines while keeping
// line boundaries, so section headings stay detectable downstream.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = spaceRuns.ReplaceAllString(s, " ")
	s = newlineRuns.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
