package services

import (
	"fmt"

	"alfredoptarigan/resume-checker/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnalysisPrompt renders the template for mode. Anything that is not
// Quick Scan or Detailed Analysis gets the ATS Optimization template.
// Resume text and job description are embedded verbatim.
func (pb *PromptBuilder) BuildAnalysisPrompt(resumeText string, mode models.AnalysisMode, jobDescription string) string {
	switch mode {
	case models.ModeQuickScan:
		return pb.buildQuickScanPrompt(resumeText, jobDescription)
	case models.ModeDetailedAnalysis:
		return pb.buildDetailedAnalysisPrompt(resumeText, jobDescription)
	default:
		return pb.buildATSOptimizationPrompt(resumeText, jobDescription)
	}
}

func (pb *PromptBuilder) buildQuickScanPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are ResumeChecker, an expert in resume analysis. Provide a quick scan of the following resume:

1. Identify the most suitable profession for this resume.
2. List 3 key strengths of the resume.
3. Suggest 2 quick improvements.
4. Give an overall ATS score out of 100.

Resume text: %s
Job description (if provided): %s`,
		resumeText, jobDescription)
}

func (pb *PromptBuilder) buildDetailedAnalysisPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are ResumeChecker, an expert in resume analysis. Provide a detailed analysis of the following resume:

1. Identify the most suitable profession for this resume.
2. List 5 strengths of the resume.
3. Suggest 3-5 areas for improvement with specific recommendations.
4. Rate the following aspects out of 10: Impact, Brevity, Style, Structure, Skills.
5. Provide a brief review of each major section (e.g., Summary, Experience, Education).
6. Give an overall ATS score out of 100 with a breakdown of the scoring.

Resume text: %s
Job description (if provided): %s`,
		resumeText, jobDescription)
}

func (pb *PromptBuilder) buildATSOptimizationPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are ResumeChecker, an expert in ATS optimization. Analyze the following resume and provide optimization suggestions:

1. Identify keywords from the job description that should be included in the resume.
2. Suggest reformatting or restructuring to improve ATS readability.
3. Recommend changes to improve keyword density without keyword stuffing.
4. Provide 3-5 bullet points on how to tailor this resume for the specific job description.
5. Give an ATS compatibility score out of 100 and explain how to improve it.

Resume text: %s
Job description: %s`,
		resumeText, jobDescription)
}

// BuildChatPrompt wraps a follow-up question around a previous analysis.
func (pb *PromptBuilder) BuildChatPrompt(analysis, message string) string {
	return fmt.Sprintf(`You are an assistant answering questions about the following resume analysis:

%s

User's question: %s`,
		analysis, message)
}
