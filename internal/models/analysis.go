package models

// ContactInfo holds the first email and phone match found in a resume.
// Either field is "N/A" when no match was found.
type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AnalysisResult is recomputed from the stored resume text on every
// request; it is never persisted.
type AnalysisResult struct {
	ATSScore     int         `json:"ats_score"`
	Strengths    []string    `json:"strengths"`
	Improvements []string    `json:"improvements"`
	Skills       []string    `json:"skills"`
	Keywords     []string    `json:"keywords"`
	Contact      ContactInfo `json:"contact"`
}

// RankedCandidate is one entry of the recruiter-facing ranking view.
type RankedCandidate struct {
	ResumeID         string      `json:"resume_id"`
	OriginalFileName string      `json:"original_filename"`
	MatchScore       float64     `json:"match_score"`
	Contact          ContactInfo `json:"contact"`
	Skills           []string    `json:"skills"`
}
