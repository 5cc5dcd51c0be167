package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"alfredoptarigan/resume-checker/internal/models"
)

const (
	MsgAnalysisEmpty       = "Error: Failed to generate analysis. Please try again."
	MsgAnalysisUnavailable = "Error: The analysis service is unavailable. Please try again later."
	MsgChatFailed          = "Failed to generate response"
)

// GenerationError is returned when the generation service fails. Message is
// safe to show to the client; Cause is for logs only.
type GenerationError struct {
	Code    string
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

type AnalyzeInput struct {
	PDF            []byte
	Mode           models.AnalysisMode
	JobDescription string
}

type ResumeAnalyzer interface {
	Analyze(ctx context.Context, in AnalyzeInput) (string, error)
	Chat(ctx context.Context, analysis, message string) (string, error)
}

type resumeAnalyzer struct {
	pdfParser     PDFParserService
	geminiService GeminiService
	promptBuilder *PromptBuilder
}

func NewResumeAnalyzer(pdfParser PDFParserService, geminiService GeminiService) ResumeAnalyzer {
	return &resumeAnalyzer{
		pdfParser:     pdfParser,
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
	}
}

// Analyze extracts the résumé text and asks the model for the analysis
// selected by in.Mode. Extraction failures wrap ErrPDFExtraction;
// generation failures are *GenerationError.
func (a *resumeAnalyzer) Analyze(ctx context.Context, in AnalyzeInput) (string, error) {
	log.Println("📄 Parsing resume...")
	text, err := a.pdfParser.ExtractText(in.PDF)
	if err != nil {
		log.Printf("❌ Failed to read PDF: %v", err)
		return "", err
	}

	prompt := a.promptBuilder.BuildAnalysisPrompt(text, in.Mode, in.JobDescription)
	log.Printf("🤖 Running %s (prompt length: %d characters)", in.Mode, len(prompt))

	analysis, err := a.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("❌ Analysis generation failed: %v", err)
		if errors.Is(err, ErrEmptyResponse) {
			return "", &GenerationError{Code: "EMPTY_RESPONSE", Message: MsgAnalysisEmpty, Cause: err}
		}
		return "", &GenerationError{Code: "UPSTREAM_ERROR", Message: MsgAnalysisUnavailable, Cause: err}
	}

	log.Printf("✅ Analysis completed: %d characters", len(analysis))
	return analysis, nil
}

// Chat answers a follow-up question about a previous analysis. Only that
// single analysis is used as context.
func (a *resumeAnalyzer) Chat(ctx context.Context, analysis, message string) (string, error) {
	prompt := a.promptBuilder.BuildChatPrompt(analysis, message)

	response, err := a.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("❌ Chat generation failed: %v", err)
		return "", &GenerationError{Code: "CHAT_FAILED", Message: MsgChatFailed, Cause: err}
	}

	return response, nil
}
