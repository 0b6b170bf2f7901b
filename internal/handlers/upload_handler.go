package handlers

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumehub/resume-matcher/internal/extract"
	"resumehub/resume-matcher/internal/logger"
	"resumehub/resume-matcher/internal/models"
	"resumehub/resume-matcher/internal/repositories"
	"resumehub/resume-matcher/internal/services"
)

type UploadHandler struct {
	resumeRepo     repositories.ResumeRepository
	storageService services.StorageService
	extractor      extract.Extractor
	maxFileSize    int64
}

func NewUploadHandler(
	resumeRepo repositories.ResumeRepository,
	storageService services.StorageService,
	extractor extract.Extractor,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		resumeRepo:     resumeRepo,
		storageService: storageService,
		extractor:      extractor,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /resumes. The document is extracted and
// validated before anything is persisted; extraction failures abort the
// request with a remediation hint and leave no partial state behind.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file uploaded. Send the document as multipart field 'resume'.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	contentType := file.Header.Get("Content-Type")

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}

	// OCR uploads block here for tens of seconds; the request stays
	// synchronous and there is no cancellation once started.
	logger.Info().
		Str("filename", file.Filename).
		Str("content_type", contentType).
		Int("bytes", len(data)).
		Msg("extracting resume text")

	start := time.Now()
	text, err := h.extractor.ExtractText(data, contentType)
	if err != nil {
		return h.extractionError(c, err)
	}
	logger.Info().
		Str("filename", file.Filename).
		Dur("took", time.Since(start)).
		Int("characters", len(text)).
		Msg("extraction finished")

	if err := h.extractor.Validate(text); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("Extracted text is too short (%d characters, minimum %d). Upload a resume with readable content.", len(text), extract.MinTextLength),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	resume := models.Resume{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: file.Filename,
		ContentType:      contentType,
		FilePath:         filePath,
		ExtractedText:    text,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.resumeRepo.Create(&resume); err != nil {
		// Cleanup stored file if the database insert fails
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume record: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Resume uploaded successfully",
		"resume": models.UploadResponse{
			ID:           resume.ID.String(),
			Filename:     resume.Filename,
			OriginalName: resume.OriginalFileName,
			ContentType:  resume.ContentType,
			Characters:   len(text),
		},
	})
}

func (h *UploadHandler) extractionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, extract.ErrUnsupportedFormat) {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
			"error": "Unsupported document format. Upload a PDF, Word document or image (JPEG/PNG/TIFF/BMP).",
		})
	}

	if extractErr, ok := extract.AsError(err); ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": extractErr.Error(),
			"hint":  extractErr.Hint,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": fmt.Sprintf("failed to extract resume text: %v", err),
	})
}
