package analysis

import (
	"math"
	"strings"
	"unicode"
)

// MatchScore computes the TF-IDF cosine similarity between a resume and a
// job description as a percentage in [0, 100], rounded to 2 decimals.
//
// IDF is computed over exactly the two documents in play, never a wider
// corpus, using the smoothed form ln((1+n)/(1+df)) + 1 so that terms
// shared by both documents still carry weight (with plain ln(n/df) every
// shared term would zero out and identical texts would score 0).
func MatchScore(resumeText, jobDescription string) float64 {
	resumeTF := termFrequencies(resumeText)
	jobTF := termFrequencies(jobDescription)

	if len(resumeTF) == 0 || len(jobTF) == 0 {
		return 0
	}

	// Union vocabulary; missing terms weigh 0.
	vocabulary := make(map[string]struct{}, len(resumeTF)+len(jobTF))
	for term := range resumeTF {
		vocabulary[term] = struct{}{}
	}
	for term := range jobTF {
		vocabulary[term] = struct{}{}
	}

	const docCount = 2.0
	var dot, resumeNorm, jobNorm float64

	for term := range vocabulary {
		df := 0.0
		if resumeTF[term] > 0 {
			df++
		}
		if jobTF[term] > 0 {
			df++
		}
		idf := math.Log((1+docCount)/(1+df)) + 1

		rw := float64(resumeTF[term]) * idf
		jw := float64(jobTF[term]) * idf

		dot += rw * jw
		resumeNorm += rw * rw
		jobNorm += jw * jw
	}

	if resumeNorm == 0 || jobNorm == 0 {
		return 0
	}

	similarity := dot / (math.Sqrt(resumeNorm) * math.Sqrt(jobNorm))
	return math.Round(similarity*100*100) / 100
}

// termFrequencies tokenizes text into lowercase alphanumeric runs of at
// least 2 characters and counts raw occurrences.
func termFrequencies(text string) map[string]int {
	counts := make(map[string]int)

	var word strings.Builder
	flush := func() {
		w := word.String()
		word.Reset()
		if len(w) >= 2 {
			counts[w]++
		}
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return counts
}
