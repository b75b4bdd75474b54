package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string // substrings that must appear in the output
	}{
		{
			name:   "heading",
			source: "# The Challenge",
			want:   []string{"<h1", "The Challenge", "</h1>"},
		},
		{
			name:   "emphasis and strong",
			source: "a *fast* and **reliable** pipeline",
			want:   []string{"<em>fast</em>", "<strong>reliable</strong>"},
		},
		{
			name:   "gfm table",
			source: "| Metric | Before | After |\n|---|---|---|\n| p95 | 900ms | 120ms |",
			want:   []string{"<table>", "<td>120ms</td>"},
		},
		{
			name:   "fenced code block is highlighted",
			source: "```go\nfunc main() {}\n```",
			want:   []string{"<pre", "main"},
		},
		{
			name:   "raw html passes through",
			source: "<figure><img src=\"/x.png\"></figure>",
			want:   []string{"<figure>"},
		},
		{
			name:   "autolink",
			source: "see https://example.com for details",
			want:   []string{"<a href=\"https://example.com\""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.source)
			if err != nil {
				t.Fatalf("ToHTML: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestToHTMLEmpty(t *testing.T) {
	got, err := ToHTML("")
	if err != nil {
		t.Fatalf("ToHTML(\"\"): %v", err)
	}
	if strings.TrimSpace(got) != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}
