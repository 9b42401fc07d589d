package dto

type ChatRequest struct {
	Question string `json:"question" binding:"required"`
}

type ChatResponse struct {
	MainAnswer         string   `json:"main_answer"`
	RelatedLinks       []string `json:"related_links"`
	SuggestedQuestions []string `json:"suggested_questions"`
}
