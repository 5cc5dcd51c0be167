package models

type AnalyzeResponse struct {
	Analysis string `json:"analysis"`
}

type ChatRequest struct {
	Message  string `json:"message"`
	Analysis string `json:"analysis"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
