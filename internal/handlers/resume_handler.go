package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumehub/resume-matcher/internal/repositories"
	"resumehub/resume-matcher/internal/services"
)

type ResumeHandler struct {
	resumeRepo repositories.ResumeRepository
	analyzer   services.AnalyzerService
}

func NewResumeHandler(
	resumeRepo repositories.ResumeRepository,
	analyzer services.AnalyzerService,
) *ResumeHandler {
	return &ResumeHandler{
		resumeRepo: resumeRepo,
		analyzer:   analyzer,
	}
}

// HandleGetResume handles GET /resumes/:id
func (h *ResumeHandler) HandleGetResume(c *fiber.Ctx) error {
	idParam := c.Params("id")
	resumeID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume ID format",
		})
	}

	resume, err := h.resumeRepo.FindByID(resumeID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume not found",
		})
	}

	return c.JSON(resume)
}

// HandleGetAnalysis handles GET /resumes/:id/analysis. The analysis is
// recomputed from the stored text on every request, never cached.
func (h *ResumeHandler) HandleGetAnalysis(c *fiber.Ctx) error {
	idParam := c.Params("id")
	resumeID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume ID format",
		})
	}

	resume, err := h.resumeRepo.FindByID(resumeID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume not found",
		})
	}

	result := h.analyzer.Analyze(resume.ExtractedText)

	return c.JSON(fiber.Map{
		"resume_id": resume.ID.String(),
		"analysis":  result,
	})
}
