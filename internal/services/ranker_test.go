package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumehub/resume-matcher/internal/models"
)

// stubResumeRepository serves a fixed resume list in insertion order.
type stubResumeRepository struct {
	resumes []models.Resume
}

func (s *stubResumeRepository) Create(resume *models.Resume) error {
	s.resumes = append(s.resumes, *resume)
	return nil
}

func (s *stubResumeRepository) FindByID(id uuid.UUID) (*models.Resume, error) {
	for i := range s.resumes {
		if s.resumes[i].ID == id {
			return &s.resumes[i], nil
		}
	}
	return nil, assert.AnError
}

func (s *stubResumeRepository) FindAll() ([]models.Resume, error) {
	return s.resumes, nil
}

func (s *stubResumeRepository) Count() (int64, error) {
	return int64(len(s.resumes)), nil
}

func newTestResume(name, text string) models.Resume {
	return models.Resume{
		ID:               uuid.New(),
		OriginalFileName: name,
		ExtractedText:    text,
	}
}

func TestRankSortsByMatchScoreDescending(t *testing.T) {
	repo := &stubResumeRepository{resumes: []models.Resume{
		newTestResume("chef.pdf", "Professional chef specializing in pastry and catering"),
		newTestResume("backend.pdf", "Python developer, email dev@example.com, built APIs with Django and PostgreSQL, Docker deployments"),
		newTestResume("empty.pdf", ""),
	}}
	ranker := NewRankerService(repo)

	candidates, err := ranker.Rank(context.Background(), "Python developer with Django and PostgreSQL experience")
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, candidates[i-1].MatchScore, candidates[i].MatchScore)
	}

	assert.Equal(t, "backend.pdf", candidates[0].OriginalFileName)
	assert.Greater(t, candidates[0].MatchScore, 0.0)
	assert.Equal(t, "dev@example.com", candidates[0].Contact.Email)
	assert.Contains(t, candidates[0].Skills, "python")
}

func TestRankEmptyResumeScoresZero(t *testing.T) {
	repo := &stubResumeRepository{resumes: []models.Resume{
		newTestResume("empty.pdf", ""),
	}}
	ranker := NewRankerService(repo)

	candidates, err := ranker.Rank(context.Background(), "backend developer")
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	assert.Zero(t, candidates[0].MatchScore)
	assert.Equal(t, "N/A", candidates[0].Contact.Email)
	assert.Empty(t, candidates[0].Skills)
}

func TestRankNoResumes(t *testing.T) {
	ranker := NewRankerService(&stubResumeRepository{})

	candidates, err := ranker.Rank(context.Background(), "any role")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestRankStableForEqualScores(t *testing.T) {
	// Two resumes with no overlap both score 0 and keep fetch order.
	repo := &stubResumeRepository{resumes: []models.Resume{
		newTestResume("first.pdf", "alpha beta gamma delta epsilon zeta"),
		newTestResume("second.pdf", "eta theta iota kappa lambda mu"),
	}}
	ranker := NewRankerService(repo)

	candidates, err := ranker.Rank(context.Background(), "unrelated words entirely")
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, "first.pdf", candidates[0].OriginalFileName)
	assert.Equal(t, "second.pdf", candidates[1].OriginalFileName)
}
