package factory

import (
	"fmt"

	"github.com/LucasRomanSaad/stoicChatBOT/pkg/llm"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/llm/groq"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, baseURL, groqApiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "groq":
		return groq.NewGroqProvider(groqApiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
