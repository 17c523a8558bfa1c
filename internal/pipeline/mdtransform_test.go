package pipeline

import (
	"context"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPreprocessMarkdown - Normalization outside fenced code
// ---------------------------------------------------------------------------

func TestPreprocessMarkdown(t *testing.T) {
	t.Parallel()

	const (
		ms = MarkStartPlaceholder
		me = MarkEndPlaceholder
	)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "crlf normalized",
			input: "a\r\nb\rc",
			want:  "a\nb\nc",
		},
		{
			name:  "highlight in prose",
			input: "This is ==important== text.",
			want:  "This is " + ms + "important" + me + " text.",
		},
		{
			name:  "several highlights",
			input: "==a== and ==b==",
			want:  ms + "a" + me + " and " + ms + "b" + me,
		},
		{
			name:  "blank lines compressed",
			input: "a\n\n\n\n\nb",
			want:  "a\n\nb",
		},
		{
			name:  "fenced code left alone",
			input: "==x==\n```go\nif a == b == c {}\n\n\n\n```\n==y==",
			want:  ms + "x" + me + "\n```go\nif a == b == c {}\n\n\n\n```\n" + ms + "y" + me,
		},
		{
			name:  "block body left alone",
			input: "```projects\n- title: ==not a mark==\n```\n",
			want:  "```projects\n- title: ==not a mark==\n```\n",
		},
		{
			name:  "tilde fence",
			input: "~~~\n==code==\n~~~\n==text==",
			want:  "~~~\n==code==\n~~~\n" + ms + "text" + me,
		},
		{
			name:  "shorter closing fence does not close",
			input: "````\n```\n==still code==\n````\n",
			want:  "````\n```\n==still code==\n````\n",
		},
		{
			name:  "unclosed fence runs to end",
			input: "```\n==code==",
			want:  "```\n==code==",
		},
	}

	p := &CommonMarkPreprocessor{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := p.PreprocessMarkdown(context.Background(), tt.input); got != tt.want {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPreprocessMarkdown_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := "==x==\r\n"
	if got := (&CommonMarkPreprocessor{}).PreprocessMarkdown(ctx, input); got != input {
		t.Errorf("cancelled preprocess changed input: %q", got)
	}
}

func TestConvertMarkPlaceholders(t *testing.T) {
	t.Parallel()

	in := "<p>" + MarkStartPlaceholder + "hi" + MarkEndPlaceholder + "</p>"
	if got := ConvertMarkPlaceholders(in); got != "<p><mark>hi</mark></p>" {
		t.Errorf("ConvertMarkPlaceholders() = %q", got)
	}
}
