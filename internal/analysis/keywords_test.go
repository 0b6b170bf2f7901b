package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	text := "python python python kubernetes kubernetes docker"

	keywords := ExtractKeywords(text)

	assert.Equal(t, []string{"python", "kubernetes", "docker"}, keywords)
}

func TestExtractKeywordsDropShortTokensAndStopWords(t *testing.T) {
	text := "go is fun and we have been using it with joy"

	keywords := ExtractKeywords(text)

	// "go", "is", "fun", "and", "we", "it" are too short; "have",
	// "been", "using", "with" are stop words.
	assert.Empty(t, keywords)
}

func TestExtractKeywordsTieBreakFirstSeen(t *testing.T) {
	text := "alpha beta alpha beta gamma gamma"

	keywords := ExtractKeywords(text)

	// Equal frequencies keep first-encountered order.
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, keywords)
}

func TestExtractKeywordsCap(t *testing.T) {
	text := "apple banana cherry orange grape melon papaya mango lemon peach plum"

	keywords := ExtractKeywords(text)

	assert.Len(t, keywords, MaxKeywords)
}

func TestExtractKeywordsDeterministic(t *testing.T) {
	text := "developed backend services backend developed cloud platform"
	assert.Equal(t, ExtractKeywords(text), ExtractKeywords(text))
}
