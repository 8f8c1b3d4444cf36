package ai

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestResponseText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{name: "nil response", resp: nil, want: ""},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, want: ""},
		{
			name: "nil content",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			want: "",
		},
		{
			name: "joins text parts and skips others",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{
					genai.Text("# Trip\n"),
					genai.Blob{MIMEType: "image/png"},
					genai.Text("Day 1"),
				}},
			}}},
			want: "# Trip\nDay 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := responseText(tt.resp); got != tt.want {
				t.Errorf("responseText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewGeminiClient_MissingKey(t *testing.T) {
	if _, err := NewGeminiClient(context.Background(), "  "); err == nil {
		t.Fatal("expected error for blank api key")
	}
}

func TestModelDescriptorSupports(t *testing.T) {
	m := ModelDescriptor{Name: "models/gemini-1.5-flash", SupportedOperations: []string{"countTokens", "generateContent"}}
	if !m.Supports("generate_content", "generateContent") {
		t.Error("expected generateContent to be supported")
	}
	if m.Supports("embedContent") {
		t.Error("did not expect embedContent to be supported")
	}
}
