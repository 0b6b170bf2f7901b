package analysis

import "strings"

// MaxSkills caps the skill list returned for one resume.
const MaxSkills = 12

// skillVocabulary is the fixed set of technology and methodology tokens
// the matcher knows about. Matching is lowercase substring containment in
// vocabulary order, so the returned list is ordered by this slice, not by
// frequency in the text.
var skillVocabulary = []string{
	// Languages
	"python", "java", "javascript", "typescript", "golang", "rust",
	"ruby", "php", "swift", "kotlin", "scala", "c++", "c#", "matlab",
	"perl", "bash",
	// Web
	"html", "css", "react", "angular", "vue", "next.js", "node.js",
	"express", "django", "flask", "spring", "laravel", "rails",
	"jquery", "bootstrap", "tailwind", "graphql", "rest api",
	// Data stores
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"oracle", "sqlite", "cassandra", "dynamodb",
	// Cloud / DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
	"ansible", "jenkins", "git", "github", "gitlab", "ci/cd", "linux",
	"nginx", "microservices",
	// Data science
	"machine learning", "deep learning", "data analysis", "data science",
	"pandas", "numpy", "tensorflow", "pytorch", "scikit-learn", "nlp",
	"computer vision", "tableau", "power bi", "excel", "spark",
	"hadoop", "kafka",
	// Methodologies
	"agile", "scrum", "kanban", "jira", "tdd", "oop", "design patterns",
	"unit testing",
}

// ExtractSkills matches the fixed vocabulary against the text and returns
// up to MaxSkills entries, de-duplicated, in vocabulary order.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)

	skills := make([]string, 0, MaxSkills)
	seen := make(map[string]bool, MaxSkills)

	for _, skill := range skillVocabulary {
		if len(skills) == MaxSkills {
			break
		}
		if seen[skill] {
			continue
		}
		if strings.Contains(lower, skill) {
			seen[skill] = true
			skills = append(skills, skill)
		}
	}

	return skills
}
