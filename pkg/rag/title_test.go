package rag

import "testing"

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "strips double quotes",
			raw:  `"Finding Calm Through Stoicism"`,
			want: "Finding Calm Through Stoicism",
		},
		{
			name: "strips single quotes and whitespace",
			raw:  "  'Dealing With Anger'  ",
			want: "Dealing With Anger",
		},
		{
			name: "truncates to six words",
			raw:  "A Very Long Title About The Nature Of Stoic Virtue",
			want: "A Very Long Title About The",
		},
		{
			name: "empty input stays empty",
			raw:  "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTitle(tt.raw); got != tt.want {
				t.Errorf("SanitizeTitle(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFallbackTitle(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     string
	}{
		{
			name:     "keyword match",
			question: "How do I build resilience in hard times?",
			want:     "Stoic Resilience",
		},
		{
			name:     "first keyword wins",
			question: "Is courage a form of wisdom?",
			want:     "Stoic Courage",
		},
		{
			name:     "case insensitive",
			question: "Tell me about VIRTUE",
			want:     "Stoic Virtue",
		},
		{
			name:     "no keyword falls back to default",
			question: "How should I start my morning?",
			want:     DefaultTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FallbackTitle(tt.question); got != tt.want {
				t.Errorf("FallbackTitle(%q) = %q, want %q", tt.question, got, tt.want)
			}
		})
	}
}
