package analysis

import (
	"regexp"

	"resumehub/resume-matcher/internal/models"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Optional +country code, optional (ddd) area code, then 123-456-7890
	// style runs. Known limitation: a bare 10-digit number with no
	// delimiters also matches; downstream consumers rely on the current
	// matching behavior, so it stays permissive.
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[\s.-]?)?(\(\d{3}\)[\s.-]?|\d{3}[\s.-]?)?\d{3}[\s.-]?\d{4}`)
)

const notAvailable = "N/A"

// ExtractContact returns the first email and phone match in the text, or
// "N/A" for each. Matches are not validated for correctness.
func ExtractContact(text string) models.ContactInfo {
	contact := models.ContactInfo{Email: notAvailable, Phone: notAvailable}

	if email := emailPattern.FindString(text); email != "" {
		contact.Email = email
	}
	if phone := phonePattern.FindString(text); phone != "" {
		contact.Phone = phone
	}

	return contact
}
