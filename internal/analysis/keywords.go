package analysis

import (
	"sort"
	"strings"
	"unicode"
)

// MaxKeywords caps the keyword list returned for one resume.
const MaxKeywords = 8

// keywordStopWords filters common words that add noise to frequency
// ranking. Tokens of length <= 3 are already dropped by the tokenizer.
var keywordStopWords = map[string]bool{
	"with": true, "that": true, "this": true, "from": true, "have": true,
	"will": true, "were": true, "been": true, "their": true, "they": true,
	"your": true, "about": true, "which": true, "what": true, "when": true,
	"where": true, "would": true, "there": true, "these": true, "than": true,
	"them": true, "then": true, "each": true, "also": true, "more": true,
	"other": true, "into": true, "such": true, "some": true, "over": true,
	"using": true, "used": true, "able": true, "well": true,
}

// ExtractKeywords tokenizes the text on non-letter characters, keeps
// tokens longer than 3 characters that are not stop words, and returns
// the MaxKeywords most frequent ones. Frequency ties keep first-seen
// order, so the result is deterministic for identical input.
func ExtractKeywords(text string) []string {
	counts := make(map[string]int)
	var order []string

	var word strings.Builder
	flush := func() {
		w := word.String()
		word.Reset()
		if len(w) <= 3 || keywordStopWords[w] {
			return
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > MaxKeywords {
		order = order[:MaxKeywords]
	}
	return order
}
