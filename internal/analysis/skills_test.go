package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills(t *testing.T) {
	text := "Python and Django developer using PostgreSQL, Docker and AWS"

	skills := ExtractSkills(text)

	// Vocabulary order, not text order. "sql" matches inside
	// "postgresql" because matching is substring containment.
	assert.Equal(t, []string{"python", "django", "sql", "postgresql", "aws", "docker"}, skills)
}

func TestExtractSkillsCaseInsensitive(t *testing.T) {
	assert.Equal(t, []string{"kubernetes"}, ExtractSkills("KUBERNETES administrator"))
}

func TestExtractSkillsCap(t *testing.T) {
	// More than 12 vocabulary hits present in the text
	text := strings.Join([]string{
		"python", "java", "typescript", "golang", "rust", "ruby", "php",
		"swift", "kotlin", "react", "angular", "vue", "docker", "kubernetes",
		"aws", "azure",
	}, " ")

	skills := ExtractSkills(text)

	assert.Len(t, skills, MaxSkills)
}

func TestExtractSkillsEmptyText(t *testing.T) {
	assert.Empty(t, ExtractSkills(""))
}

func TestExtractSkillsDeterministic(t *testing.T) {
	text := "react node.js docker aws python"
	assert.Equal(t, ExtractSkills(text), ExtractSkills(text))
}
