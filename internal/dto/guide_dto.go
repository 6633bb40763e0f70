package dto

type MessageDTO struct {
	Role    string `json:"role" validate:"required,oneof=user assistant model system"`
	Content string `json:"content" validate:"required"`
}

type ChatRequest struct {
	Query               string       `json:"query" validate:"required"`
	ConversationContext []MessageDTO `json:"conversation_context" validate:"omitempty,dive"`
	TopK                int          `json:"top_k" validate:"omitempty,min=1,max=20"`
}

type SourceDTO struct {
	Title      string  `json:"title"`
	ChunkId    string  `json:"chunk_id"`
	Page       *int    `json:"page,omitempty"`
	Similarity float64 `json:"similarity"`
	Snippet    string  `json:"snippet"`
}

type UsageDTO struct {
	TokensPrompt     int    `json:"tokens_prompt"`
	TokensCompletion int    `json:"tokens_completion"`
	Model            string `json:"model"`
}

type ChatResponse struct {
	Answer        string      `json:"answer"`
	Sources       []SourceDTO `json:"sources"`
	IsGreeting    bool        `json:"is_greeting"`
	LowConfidence bool        `json:"low_confidence"`
	Usage         UsageDTO    `json:"usage"`
}

type TitleRequest struct {
	Query  string `json:"query" validate:"required"`
	Answer string `json:"answer" validate:"required"`
}

type TitleResponse struct {
	Title string `json:"title"`
}
