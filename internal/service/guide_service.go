package service

import (
	"context"
	"fmt"

	"github.com/LucasRomanSaad/stoicChatBOT/internal/constant"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/dto"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/pkg/logger"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/llm"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/rag"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/rag/prompt"
)

const (
	defaultTemperature = 0.3
	defaultTopP        = 0.9
	snippetLimit       = 200
	titleMaxTokens     = 20
	titleAnswerLimit   = 500
)

// GuideService is the conversational core: it classifies the query,
// grounds it in retrieved sources, builds the prompt, and generates the
// answer with a primary model and a single fallback retry.
type GuideService struct {
	retrieval     *RetrievalService
	provider      llm.LLMProvider
	primaryModel  string
	fallbackModel string
	maxTokens     int
	log           logger.ILogger
}

func NewGuideService(
	retrieval *RetrievalService,
	provider llm.LLMProvider,
	primaryModel, fallbackModel string,
	maxTokens int,
	log logger.ILogger,
) *GuideService {
	return &GuideService{
		retrieval:     retrieval,
		provider:      provider,
		primaryModel:  primaryModel,
		fallbackModel: fallbackModel,
		maxTokens:     maxTokens,
		log:           log,
	}
}

// Chat runs the full query path: retrieve, classify, prompt, generate.
func (s *GuideService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	topK := req.TopK
	if topK <= 0 {
		topK = constant.DefaultTopK
	}

	sources, err := s.retrieval.Retrieve(ctx, req.Query, topK, 0)
	if err != nil {
		return nil, err
	}

	history := toChatHistory(req.ConversationContext)
	return s.GenerateAnswer(ctx, req.Query, sources, history)
}

// GenerateAnswer classifies the query, filters the sources accordingly,
// and produces the grounded answer. Greetings keep only very strong
// sources; substantive queries whose best source falls below the
// confidence floor are flagged low-confidence rather than refused.
func (s *GuideService) GenerateAnswer(ctx context.Context, query string, sources []rag.Source, history []llm.Message) (*dto.ChatResponse, error) {
	greeting := rag.IsGreetingOrIntroduction(query, len(history))

	used := sources
	lowConfidence := false
	if greeting {
		used = rag.FilterBySimilarity(sources, constant.GreetingSimilarityThreshold)
	} else if rag.BestSimilarity(sources) < constant.LowConfidenceThreshold {
		lowConfidence = true
	}

	messages := prompt.NewBuilder(query, used, history, greeting, lowConfidence).Build()

	completion, err := s.chatWithFallback(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	return &dto.ChatResponse{
		Answer:        completion.Content,
		Sources:       toSourceDTOs(used),
		IsGreeting:    greeting,
		LowConfidence: lowConfidence,
		Usage: dto.UsageDTO{
			TokensPrompt:     completion.PromptTokens,
			TokensCompletion: completion.CompletionTokens,
			Model:            completion.Model,
		},
	}, nil
}

// chatWithFallback tries the primary model once and retries once on the
// fallback. The returned completion reports the model that actually
// answered.
func (s *GuideService) chatWithFallback(ctx context.Context, messages []llm.Message) (*llm.Completion, error) {
	completion, err := s.provider.Chat(ctx, messages,
		llm.WithModel(s.primaryModel),
		llm.WithTemperature(defaultTemperature),
		llm.WithTopP(defaultTopP),
		llm.WithMaxTokens(s.maxTokens),
	)
	if err == nil {
		return completion, nil
	}

	s.log.Warn("GuideService", "Primary model failed, retrying with fallback", map[string]interface{}{
		"primary_model":  s.primaryModel,
		"fallback_model": s.fallbackModel,
		"error":          err.Error(),
	})

	completion, fallbackErr := s.provider.Chat(ctx, messages,
		llm.WithModel(s.fallbackModel),
		llm.WithTemperature(defaultTemperature),
		llm.WithTopP(defaultTopP),
		llm.WithMaxTokens(s.maxTokens),
	)
	if fallbackErr != nil {
		return nil, fmt.Errorf("fallback model %s failed after primary %s: %w", s.fallbackModel, s.primaryModel, fallbackErr)
	}
	return completion, nil
}

// GenerateTitle produces a short conversation label from the opening
// exchange. The answer is truncated so a long generation never bloats
// the title prompt. Model failures degrade to a deterministic
// keyword-based title, never to an error.
func (s *GuideService) GenerateTitle(ctx context.Context, req *dto.TitleRequest) (*dto.TitleResponse, error) {
	answer := req.Answer
	if runes := []rune(answer); len(runes) > titleAnswerLimit {
		answer = string(runes[:titleAnswerLimit]) + "..."
	}

	messages := []llm.Message{
		{Role: "system", Content: "You generate short conversation titles. Reply with the title only, no quotes, no punctuation around it."},
		{Role: "user", Content: fmt.Sprintf("Generate a concise title (maximum 6 words) for a Stoic philosophy conversation that opened with this exchange.\n\nQuestion: %s\n\nAnswer: %s", req.Query, answer)},
	}

	completion, err := s.provider.Chat(ctx, messages,
		llm.WithModel(s.fallbackModel),
		llm.WithTemperature(defaultTemperature),
		llm.WithMaxTokens(titleMaxTokens),
	)
	if err != nil {
		s.log.Warn("GuideService", "Title generation failed, using keyword fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return &dto.TitleResponse{Title: rag.FallbackTitle(req.Query)}, nil
	}

	title := rag.SanitizeTitle(completion.Content)
	if title == "" {
		title = rag.FallbackTitle(req.Query)
	}
	return &dto.TitleResponse{Title: title}, nil
}

// toChatHistory converts wire messages to provider messages, folding
// the "model" role into "assistant".
func toChatHistory(messages []dto.MessageDTO) []llm.Message {
	history := make([]llm.Message, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		if role == constant.RoleModel {
			role = constant.RoleAssistant
		}
		history = append(history, llm.Message{Role: role, Content: m.Content})
	}
	return history
}

func toSourceDTOs(sources []rag.Source) []dto.SourceDTO {
	out := make([]dto.SourceDTO, len(sources))
	for i, src := range sources {
		out[i] = dto.SourceDTO{
			Title:      src.Title,
			ChunkId:    src.ChunkId,
			Page:       src.Page,
			Similarity: src.Similarity,
			Snippet:    snippet(src.Content),
		}
	}
	return out
}

func snippet(content string) string {
	runes := []rune(content)
	if len(runes) <= snippetLimit {
		return content
	}
	return string(runes[:snippetLimit]) + "..."
}
