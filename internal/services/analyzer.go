package services

import (
	"resumehub/resume-matcher/internal/analysis"
	"resumehub/resume-matcher/internal/models"
)

// AnalyzerService recomputes the candidate-facing analysis from stored
// resume text on every call. It holds no state between requests.
type AnalyzerService interface {
	Analyze(text string) *models.AnalysisResult
}

type analyzerService struct{}

func NewAnalyzerService() AnalyzerService {
	return &analyzerService{}
}

// Analyze implements AnalyzerService.
func (a *analyzerService) Analyze(text string) *models.AnalysisResult {
	return analysis.Analyze(text)
}
