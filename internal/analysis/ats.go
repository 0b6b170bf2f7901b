package analysis

import (
	"fmt"
	"regexp"

	"resumehub/resume-matcher/internal/models"
)

const (
	atsBaseScore = 50
	atsMaxScore  = 100

	maxStrengths    = 5
	maxImprovements = 5

	// Every action verb occurrence adds 2 points, capped at this total.
	actionVerbBonusCap = 10
)

// scoreRule is one additive signal of the ATS heuristic: a presence test
// and the bonus it grants. Rules are evaluated independently and each
// applies at most once.
type scoreRule struct {
	name    string
	pattern *regexp.Regexp
	bonus   int
}

var scoreRules = []scoreRule{
	{"email", emailPattern, 5},
	{"phone", phonePattern, 5},
	{"summary_section", regexp.MustCompile(`(?i)summary|objective|about|profile`), 5},
	{"experience_section", regexp.MustCompile(`(?i)experience|employment|work history`), 10},
	{"education_section", regexp.MustCompile(`(?i)education|degree|university|college`), 5},
	{"skills_section", regexp.MustCompile(`(?i)skills|technical|technologies|tools`), 10},
	{"quantifiable_numbers", regexp.MustCompile(`\d+%|\d+\+|\$\d+|[0-9]+`), 5},
}

var actionVerbPattern = regexp.MustCompile(`(?i)\b(developed|created|managed|led|implemented|designed|built|improved|increased|reduced)\b`)

// Analyze runs the full heuristic pass over one resume text. The result
// is a pure function of the input; nothing is cached between calls.
func Analyze(text string) *models.AnalysisResult {
	signals := make(map[string]bool, len(scoreRules))
	score := atsBaseScore

	for _, rule := range scoreRules {
		if rule.pattern.MatchString(text) {
			signals[rule.name] = true
			score += rule.bonus
		}
	}

	verbCount := len(actionVerbPattern.FindAllString(text, -1))
	verbBonus := verbCount * 2
	if verbBonus > actionVerbBonusCap {
		verbBonus = actionVerbBonusCap
	}
	score += verbBonus

	if score > atsMaxScore {
		score = atsMaxScore
	}

	skills := ExtractSkills(text)

	return &models.AnalysisResult{
		ATSScore:     score,
		Strengths:    buildStrengths(signals, skills, verbCount),
		Improvements: buildImprovements(signals, skills, verbCount),
		Skills:       skills,
		Keywords:     ExtractKeywords(text),
		Contact:      ExtractContact(text),
	}
}

func buildStrengths(signals map[string]bool, skills []string, verbCount int) []string {
	var strengths []string
	add := func(s string) {
		if len(strengths) < maxStrengths {
			strengths = append(strengths, s)
		}
	}

	if signals["email"] && signals["phone"] {
		add("Complete contact information (email and phone) is present")
	}
	if signals["experience_section"] {
		add("Includes a dedicated work experience section")
	}
	if signals["education_section"] {
		add("Education background is clearly listed")
	}
	if len(skills) >= 5 {
		add(fmt.Sprintf("Strong technical skill coverage (%d skills detected)", len(skills)))
	}
	if verbCount >= 3 {
		add("Uses action verbs to describe accomplishments")
	}
	if signals["quantifiable_numbers"] {
		add("Quantifies achievements with concrete numbers")
	}

	return strengths
}

func buildImprovements(signals map[string]bool, skills []string, verbCount int) []string {
	var improvements []string
	add := func(s string) {
		if len(improvements) < maxImprovements {
			improvements = append(improvements, s)
		}
	}

	if !signals["email"] || !signals["phone"] {
		add("Add complete contact information so recruiters can reach you")
	}
	if !signals["summary_section"] {
		add("Add a short summary or objective section at the top")
	}
	if len(skills) < 5 {
		add("List more relevant technical skills and tools")
	}
	if verbCount < 3 {
		add("Describe accomplishments with action verbs such as 'developed' or 'led'")
	}
	if !signals["quantifiable_numbers"] {
		add("Quantify achievements with numbers, e.g. 'reduced costs by 20%'")
	}

	// Always give the candidate something actionable.
	if len(improvements) == 0 {
		improvements = append(improvements,
			"Tailor the resume keywords to each job description",
			"Keep formatting simple so automated parsers can read it",
		)
	}

	return improvements
}
