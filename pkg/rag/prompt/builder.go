package prompt

import (
	"fmt"
	"strings"

	"github.com/LucasRomanSaad/stoicChatBOT/pkg/llm"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/rag"
)

const (
	// historyWindow bounds how many prior turns are folded into the
	// prompt; contentLimit truncates each turn for the context summary.
	historyWindow = 6
	contentLimit  = 200
)

const systemPrompt = `You are a personal Stoic philosophy guide, offering thoughtful, practical guidance based on ancient Stoic teachings from philosophers like Marcus Aurelius, Epictetus, and Seneca.

GREETINGS AND INTRODUCTIONS:
When users greet you or ask introductory questions, respond with a warm, personal welcome in first person ("Hello! I'm your personal Stoic guide"), explain your purpose, and invite them to share their thoughts or challenges. Only use sources when they are highly relevant to a greeting.

PHILOSOPHICAL GUIDANCE:
For deeper questions, draw from the provided source material, be calm and practical, connect ancient wisdom to modern situations, and acknowledge nuance when sources conflict. If the retrieved sources carry low similarity scores, be honest about the limitations.

TONE:
Use "I" and "me", be conversational and personal, and speak as a trusted friend offering wisdom rather than a lecturer.

FORMATTING:
Format responses in markdown: headings for main points, lists for multiple items, **bold** for key concepts, *italics* for emphasis, and > blockquotes for direct quotes from Stoic philosophers.`

// Builder assembles the role-tagged message sequence handed to the
// generation model: persona instructions, provenance-tagged excerpts,
// windowed conversation context, the current query, and an optional
// confidence caveat.
type Builder struct {
	query         string
	sources       []rag.Source
	history       []llm.Message
	greeting      bool
	lowConfidence bool
}

func NewBuilder(query string, sources []rag.Source, history []llm.Message, greeting, lowConfidence bool) *Builder {
	return &Builder{
		query:         query,
		sources:       sources,
		history:       history,
		greeting:      greeting,
		lowConfidence: lowConfidence,
	}
}

func (b *Builder) Build() []llm.Message {
	var user strings.Builder

	b.writeConversationContext(&user)

	if b.greeting {
		b.writeGreetingTask(&user)
	} else {
		b.writeGuidanceTask(&user)
	}

	return []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: user.String()},
	}
}

func (b *Builder) writeConversationContext(prompt *strings.Builder) {
	window := b.history
	if len(window) > historyWindow {
		window = window[len(window)-historyWindow:]
	}
	if len(window) == 0 {
		return
	}

	prompt.WriteString("Previous conversation context:\n")
	for _, msg := range window {
		content := msg.Content
		if len([]rune(content)) > contentLimit {
			content = string([]rune(content)[:contentLimit]) + "..."
		}
		prompt.WriteString(titleRole(msg.Role))
		prompt.WriteString(": ")
		prompt.WriteString(content)
		prompt.WriteString("\n")
	}
	prompt.WriteString("\n")
}

func (b *Builder) writeSources(prompt *strings.Builder) {
	if len(b.sources) == 0 {
		prompt.WriteString("No relevant sources found.\n")
		return
	}

	for i, source := range b.sources {
		info := fmt.Sprintf("From '%s'", source.Title)
		if source.Page != nil {
			info += fmt.Sprintf(", page %d", *source.Page)
		}
		prompt.WriteString(fmt.Sprintf("Source %d (Similarity: %.3f) - %s:\n%s\n\n", i+1, source.Similarity, info, source.Content))
	}
}

func (b *Builder) writeGreetingTask(prompt *strings.Builder) {
	prompt.WriteString(fmt.Sprintf("The user is greeting me with: %q\n\n", b.query))

	if len(b.sources) > 0 {
		prompt.WriteString("Some relevant Stoic sources:\n")
		b.writeSources(prompt)
		prompt.WriteString("Respond with a warm, personal welcome as their Stoic guide. Introduce yourself in first person, explain your purpose, and invite them to share their thoughts or challenges. Keep it conversational and welcoming.")
		return
	}

	prompt.WriteString("Respond with a warm, personal welcome as their Stoic guide. Introduce yourself in first person (\"Hello! I'm your personal Stoic guide\"), explain your purpose (to help navigate life's challenges using Stoic wisdom), and invite them to share their thoughts or specific challenges they're facing. Keep it conversational, welcoming, and personal - not formal or academic.")
}

func (b *Builder) writeGuidanceTask(prompt *strings.Builder) {
	prompt.WriteString("Current question: ")
	prompt.WriteString(b.query)
	prompt.WriteString("\n\nAvailable Stoic sources:\n")
	b.writeSources(prompt)

	prompt.WriteString("Please provide a thoughtful response based on these Stoic teachings. Focus on practical wisdom and application. Speak as a personal guide using \"I\" and \"me\", maintaining a warm but wise tone.")

	if b.lowConfidence {
		prompt.WriteString("\n\nNote: I have limited confidence in the relevance of the available sources for this question. Please take this response with appropriate caution.")
	}
}

func titleRole(role string) string {
	if role == "" {
		return role
	}
	return strings.ToUpper(role[:1]) + role[1:]
}
