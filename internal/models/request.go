package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	ContentType  string `json:"content_type"`
	Characters   int    `json:"characters"`
}

type RankRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
}

type RankResponse struct {
	JobDescription string            `json:"job_description"`
	Candidates     []RankedCandidate `json:"candidates"`
}
