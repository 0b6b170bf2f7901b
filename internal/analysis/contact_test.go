package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContact(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantEmail string
		wantPhone string
	}{
		{
			name:      "email and dashed phone",
			text:      "Contact: john@x.com or call 123-456-7890",
			wantEmail: "john@x.com",
			wantPhone: "123-456-7890",
		},
		{
			name:      "country code and parenthesized area code",
			text:      "Reach me at +1 (555) 123-4567",
			wantEmail: "N/A",
			wantPhone: "+1 (555) 123-4567",
		},
		{
			name:      "email with plus tag and subdomain",
			text:      "first.last+tag@sub.example.co",
			wantEmail: "first.last+tag@sub.example.co",
			wantPhone: "N/A",
		},
		{
			name:      "no contact info",
			text:      "A resume without any contact details at all",
			wantEmail: "N/A",
			wantPhone: "N/A",
		},
		{
			name:      "first match wins",
			text:      "a@b.com then c@d.com",
			wantEmail: "a@b.com",
			wantPhone: "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contact := ExtractContact(tt.text)
			assert.Equal(t, tt.wantEmail, contact.Email)
			assert.Equal(t, tt.wantPhone, contact.Phone)
		})
	}
}

// A bare 10-digit run matches the phone pattern. This is a documented
// limitation of the permissive regex, locked in here so it does not get
// "fixed" silently.
func TestExtractContactBareDigitRun(t *testing.T) {
	contact := ExtractContact("employee id 1234567890")
	assert.Equal(t, "1234567890", contact.Phone)
}
