package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-checker/internal/models"
	"alfredoptarigan/resume-checker/internal/services"
)

const (
	MsgNoResumeFile        = "No resume file provided"
	MsgNoSelectedFile      = "No selected file"
	MsgOnlyPDFAllowed      = "Only PDF files are allowed"
	MsgPDFReadFailed       = "Failed to read PDF. Please ensure it contains text and is not corrupted."
	MsgInvalidAnalysisType = "Invalid analysis type. Must be one of: Quick Scan, Detailed Analysis, ATS Optimization"
)

type AnalyzeHandler struct {
	analyzer    services.ResumeAnalyzer
	lenientMode bool
}

func NewAnalyzeHandler(analyzer services.ResumeAnalyzer, lenientMode bool) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		lenientMode: lenientMode,
	}
}

// HandleAnalyze handles POST /api/analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: MsgNoResumeFile})
	}

	if fileHeader.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: MsgNoSelectedFile})
	}

	if !strings.HasSuffix(fileHeader.Filename, ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: MsgOnlyPDFAllowed})
	}

	mode, err := h.parseMode(c.FormValue("analysis_type"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: MsgInvalidAnalysisType})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("failed to read uploaded file: %w", err)
	}

	analysis, err := h.analyzer.Analyze(c.UserContext(), services.AnalyzeInput{
		PDF:            data,
		Mode:           mode,
		JobDescription: c.FormValue("job_description"),
	})
	if err != nil {
		if errors.Is(err, services.ErrPDFExtraction) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: MsgPDFReadFailed})
		}

		var genErr *services.GenerationError
		if errors.As(err, &genErr) {
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: genErr.Message})
		}

		return err
	}

	return c.JSON(models.AnalyzeResponse{Analysis: analysis})
}

func (h *AnalyzeHandler) parseMode(raw string) (models.AnalysisMode, error) {
	mode, err := models.ParseAnalysisMode(raw)
	if err == nil {
		return mode, nil
	}

	if h.lenientMode {
		log.Printf("⚠️  Unknown analysis type %q, using ATS Optimization", raw)
		return models.AnalysisMode(strings.TrimSpace(raw)), nil
	}

	return "", err
}
