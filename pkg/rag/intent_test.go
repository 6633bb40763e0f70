package rag

import "testing"

func TestIsGreetingOrIntroduction(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		historyLen int
		want       bool
	}{
		{
			name:       "plain hello",
			query:      "Hello",
			historyLen: 0,
			want:       true,
		},
		{
			name:       "greeting with trailing text",
			query:      "hey there, how does this work?",
			historyLen: 4,
			want:       true,
		},
		{
			name:       "introduction question",
			query:      "Who are you?",
			historyLen: 2,
			want:       true,
		},
		{
			name:       "purpose question",
			query:      "What is your purpose exactly",
			historyLen: 0,
			want:       true,
		},
		{
			name:       "mixed case greeting",
			query:      "GOOD MORNING",
			historyLen: 1,
			want:       true,
		},
		{
			name:       "short opener counts as greeting",
			query:      "Nice app dude",
			historyLen: 0,
			want:       true,
		},
		{
			name:       "short query mid-conversation is substantive",
			query:      "Explain temperance please",
			historyLen: 3,
			want:       false,
		},
		{
			name:       "substantive question",
			query:      "What did Marcus Aurelius say about anger?",
			historyLen: 0,
			want:       false,
		},
		{
			name:       "long substantive opener",
			query:      "How should I handle grief according to the Stoics?",
			historyLen: 0,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsGreetingOrIntroduction(tt.query, tt.historyLen); got != tt.want {
				t.Errorf("IsGreetingOrIntroduction(%q, %d) = %v, want %v", tt.query, tt.historyLen, got, tt.want)
			}
		})
	}
}
