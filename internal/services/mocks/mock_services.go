package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/resume-checker/internal/services"
)

type MockGeminiService struct {
	mock.Mock
}

func (m *MockGeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockPDFParserService struct {
	mock.Mock
}

func (m *MockPDFParserService) ExtractText(data []byte) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

func (m *MockPDFParserService) ExtractTextWithMetaData(data []byte) (*services.PDFContent, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.PDFContent), args.Error(1)
}

type MockResumeAnalyzer struct {
	mock.Mock
}

func (m *MockResumeAnalyzer) Analyze(ctx context.Context, in services.AnalyzeInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *MockResumeAnalyzer) Chat(ctx context.Context, analysis, message string) (string, error) {
	args := m.Called(ctx, analysis, message)
	return args.String(0), args.Error(1)
}
