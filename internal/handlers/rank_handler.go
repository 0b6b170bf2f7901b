package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"resumehub/resume-matcher/internal/models"
	"resumehub/resume-matcher/internal/services"
)

type RankHandler struct {
	ranker services.RankerService
}

func NewRankHandler(ranker services.RankerService) *RankHandler {
	return &RankHandler{ranker: ranker}
}

// HandleRank handles POST /rankings. All stored resumes are scored
// against the supplied job description and returned sorted by match
// score, descending.
func (h *RankHandler) HandleRank(c *fiber.Ctx) error {
	var req models.RankRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.JobDescription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	candidates, err := h.ranker.Rank(c.UserContext(), req.JobDescription)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to rank candidates",
		})
	}

	return c.JSON(models.RankResponse{
		JobDescription: req.JobDescription,
		Candidates:     candidates,
	})
}
