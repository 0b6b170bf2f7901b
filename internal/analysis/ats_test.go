package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeEmptyText(t *testing.T) {
	result := Analyze("")

	// No signal fires, the base score stands.
	assert.Equal(t, 50, result.ATSScore)
	assert.Empty(t, result.Strengths)
	assert.NotEmpty(t, result.Improvements)
	assert.LessOrEqual(t, len(result.Improvements), 5)
	assert.Equal(t, "N/A", result.Contact.Email)
	assert.Equal(t, "N/A", result.Contact.Phone)
}

func TestAnalyzeContactBonus(t *testing.T) {
	// Email and phone each add 5 on top of the base 50.
	result := Analyze("email: john@x.com phone: 1234567890")

	assert.GreaterOrEqual(t, result.ATSScore, 60)
	assert.Equal(t, "john@x.com", result.Contact.Email)
	assert.Equal(t, "1234567890", result.Contact.Phone)
}

func TestAnalyzeScoreBounds(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"garbage", "!!!@@@###"},
		{"single word", "resume"},
		{"everything", strings.Repeat(
			"Summary Experience Education Skills developed created managed led implemented "+
				"designed built improved increased reduced 50% $100 john@x.com 123-456-7890 ", 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Analyze(tt.text)
			assert.GreaterOrEqual(t, result.ATSScore, 0)
			assert.LessOrEqual(t, result.ATSScore, 100)
		})
	}
}

func TestAnalyzeFullResume(t *testing.T) {
	text := `Jane Doe
jane.doe@example.com | 555-123-4567
Summary: backend engineer focused on reliability.
Experience: developed services, improved latency by 40%, led a team of 5.
Education: BSc Computer Science, State University.
Skills: Python, Django, PostgreSQL, Docker, AWS, Kubernetes.`

	result := Analyze(text)

	// email 5 + phone 5 + summary 5 + experience 10 + education 5 +
	// skills 10 + numbers 5 + verbs (developed, improved, led = 6) = 101,
	// clamped to 100.
	assert.Equal(t, 100, result.ATSScore)
	assert.NotEmpty(t, result.Strengths)
	assert.LessOrEqual(t, len(result.Strengths), 5)
	assert.LessOrEqual(t, len(result.Improvements), 5)
	assert.Contains(t, result.Skills, "python")
}

func TestAnalyzeActionVerbBonusCapped(t *testing.T) {
	// 10 verb occurrences would be 20 points uncapped; only 10 apply.
	verbs := strings.Repeat("developed created managed led implemented ", 2)
	result := Analyze(verbs)

	// verbs capped at 10, plus skills section? none of the section words
	// appear, quantifiable numbers absent: base 50 + 10.
	assert.Equal(t, 60, result.ATSScore)
}

func TestAnalyzeFillerImprovements(t *testing.T) {
	// Everything a candidate could do right, so no improvement rule
	// fires and the two fillers appear instead.
	text := `Summary of profile
john@x.com 555-123-4567
developed led improved systems
Skills: python django postgresql docker aws technologies
reduced costs by 20%`

	result := Analyze(text)

	require.Len(t, result.Improvements, 2)
	assert.Contains(t, result.Improvements[0], "Tailor")
}

func TestAnalyzeDeterministic(t *testing.T) {
	text := "Experience: developed Python services. john@x.com 555-123-4567"
	assert.Equal(t, Analyze(text), Analyze(text))
}
