package services

import (
	"context"
	"fmt"
	"sort"

	"resumehub/resume-matcher/internal/analysis"
	"resumehub/resume-matcher/internal/logger"
	"resumehub/resume-matcher/internal/models"
	"resumehub/resume-matcher/internal/repositories"
)

// RankerService scores every stored resume against a job description and
// returns candidates sorted by match score, descending. Resumes are
// processed sequentially per request; scores are never cached.
type RankerService interface {
	Rank(ctx context.Context, jobDescription string) ([]models.RankedCandidate, error)
}

type rankerService struct {
	resumeRepo repositories.ResumeRepository
}

func NewRankerService(resumeRepo repositories.ResumeRepository) RankerService {
	return &rankerService{resumeRepo: resumeRepo}
}

// Rank implements RankerService.
func (r *rankerService) Rank(ctx context.Context, jobDescription string) ([]models.RankedCandidate, error) {
	resumes, err := r.resumeRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load resumes for ranking: %w", err)
	}

	candidates := make([]models.RankedCandidate, 0, len(resumes))
	for i := range resumes {
		candidates = append(candidates, rankOne(&resumes[i], jobDescription))
	}

	// Stable sort keeps fetch order for equal scores.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MatchScore > candidates[j].MatchScore
	})

	return candidates, nil
}

// rankOne scores a single resume. A scoring panic degrades to score 0 so
// one bad resume never aborts the whole ranking batch.
func rankOne(resume *models.Resume, jobDescription string) (candidate models.RankedCandidate) {
	candidate = models.RankedCandidate{
		ResumeID:         resume.ID.String(),
		OriginalFileName: resume.OriginalFileName,
		Contact:          models.ContactInfo{Email: "N/A", Phone: "N/A"},
		Skills:           []string{},
	}

	defer func() {
		if rec := recover(); rec != nil {
			logger.Warn().
				Str("resume_id", candidate.ResumeID).
				Interface("panic", rec).
				Msg("scoring failed, degrading to 0")
			candidate.MatchScore = 0
		}
	}()

	candidate.MatchScore = analysis.MatchScore(resume.ExtractedText, jobDescription)
	candidate.Contact = analysis.ExtractContact(resume.ExtractedText)
	candidate.Skills = analysis.ExtractSkills(resume.ExtractedText)

	return candidate
}
