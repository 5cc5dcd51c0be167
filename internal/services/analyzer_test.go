package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-checker/internal/models"
	"alfredoptarigan/resume-checker/internal/services"
	"alfredoptarigan/resume-checker/internal/services/mocks"
)

func TestResumeAnalyzer_Analyze(t *testing.T) {
	ctx := context.Background()
	pdfBytes := []byte("%PDF-fake")
	pb := services.NewPromptBuilder()

	tests := []struct {
		name       string
		in         services.AnalyzeInput
		setupMocks func(p *mocks.MockPDFParserService, g *mocks.MockGeminiService)
		want       string
		wantErr    error
		wantMsg    string
	}{
		{
			name: "quick scan without job description",
			in:   services.AnalyzeInput{PDF: pdfBytes, Mode: models.ModeQuickScan},
			setupMocks: func(p *mocks.MockPDFParserService, g *mocks.MockGeminiService) {
				p.On("ExtractText", pdfBytes).Return("resume text", nil)
				g.On("GenerateText", ctx, pb.BuildAnalysisPrompt("resume text", models.ModeQuickScan, "")).
					Return("Great resume. Score: 82/100", nil)
			},
			want: "Great resume. Score: 82/100",
		},
		{
			name: "ats optimization with job description",
			in:   services.AnalyzeInput{PDF: pdfBytes, Mode: models.ModeATSOptimization, JobDescription: "Go developer"},
			setupMocks: func(p *mocks.MockPDFParserService, g *mocks.MockGeminiService) {
				p.On("ExtractText", pdfBytes).Return("resume text", nil)
				g.On("GenerateText", ctx, mock.MatchedBy(func(prompt string) bool {
					return prompt == pb.BuildAnalysisPrompt("resume text", models.ModeATSOptimization, "Go developer")
				})).Return("Add keywords: Kubernetes", nil)
			},
			want: "Add keywords: Kubernetes",
		},
		{
			name: "extraction failure never reaches the generator",
			in:   services.AnalyzeInput{PDF: pdfBytes, Mode: models.ModeQuickScan},
			setupMocks: func(p *mocks.MockPDFParserService, g *mocks.MockGeminiService) {
				p.On("ExtractText", pdfBytes).Return("", services.ErrPDFExtraction)
			},
			wantErr: services.ErrPDFExtraction,
		},
		{
			name: "empty generation",
			in:   services.AnalyzeInput{PDF: pdfBytes, Mode: models.ModeDetailedAnalysis},
			setupMocks: func(p *mocks.MockPDFParserService, g *mocks.MockGeminiService) {
				p.On("ExtractText", pdfBytes).Return("resume text", nil)
				g.On("GenerateText", ctx, mock.Anything).Return("", services.ErrEmptyResponse)
			},
			wantErr: services.ErrEmptyResponse,
			wantMsg: services.MsgAnalysisEmpty,
		},
		{
			name: "upstream failure",
			in:   services.AnalyzeInput{PDF: pdfBytes, Mode: models.ModeDetailedAnalysis},
			setupMocks: func(p *mocks.MockPDFParserService, g *mocks.MockGeminiService) {
				p.On("ExtractText", pdfBytes).Return("resume text", nil)
				g.On("GenerateText", ctx, mock.Anything).Return("", errors.New("quota exceeded"))
			},
			wantMsg: services.MsgAnalysisUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := new(mocks.MockPDFParserService)
			g := new(mocks.MockGeminiService)
			tt.setupMocks(p, g)

			analyzer := services.NewResumeAnalyzer(p, g)
			got, err := analyzer.Analyze(ctx, tt.in)

			if tt.wantErr == nil && tt.wantMsg == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				require.Error(t, err)
				assert.Empty(t, got)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				if tt.wantMsg != "" {
					var genErr *services.GenerationError
					require.ErrorAs(t, err, &genErr)
					assert.Equal(t, tt.wantMsg, genErr.Message)
				}
			}

			p.AssertExpectations(t)
			g.AssertExpectations(t)
			if errors.Is(tt.wantErr, services.ErrPDFExtraction) {
				g.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestResumeAnalyzer_Chat(t *testing.T) {
	ctx := context.Background()
	pb := services.NewPromptBuilder()

	t.Run("success", func(t *testing.T) {
		g := new(mocks.MockGeminiService)
		g.On("GenerateText", ctx, pb.BuildChatPrompt("the analysis", "what next?")).
			Return("Add metrics to your bullets.", nil).Once()

		analyzer := services.NewResumeAnalyzer(new(mocks.MockPDFParserService), g)
		got, err := analyzer.Chat(ctx, "the analysis", "what next?")

		require.NoError(t, err)
		assert.Equal(t, "Add metrics to your bullets.", got)
		g.AssertExpectations(t)
	})

	for name, cause := range map[string]error{
		"empty":    services.ErrEmptyResponse,
		"upstream": errors.New("deadline exceeded"),
	} {
		t.Run(name, func(t *testing.T) {
			g := new(mocks.MockGeminiService)
			g.On("GenerateText", ctx, mock.Anything).Return("", cause).Once()

			analyzer := services.NewResumeAnalyzer(new(mocks.MockPDFParserService), g)
			_, err := analyzer.Chat(ctx, "a", "m")

			var genErr *services.GenerationError
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, services.MsgChatFailed, genErr.Message)
			assert.ErrorIs(t, err, cause)
		})
	}
}

func TestGenerationError(t *testing.T) {
	cause := errors.New("boom")
	err := &services.GenerationError{Code: "UPSTREAM_ERROR", Message: "msg", Cause: cause}

	assert.Equal(t, "UPSTREAM_ERROR: msg: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "X: y", (&services.GenerationError{Code: "X", Message: "y"}).Error())
}
