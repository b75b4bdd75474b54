package slug

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "project title",
			input: "My Project",
			want:  "my-project",
		},
		{
			name:  "title with year",
			input: "E-Commerce Redesign 2025",
			want:  "e-commerce-redesign-2025",
		},
		{
			name:  "punctuation stripped",
			input: "Client's Dashboard (v2.0)",
			want:  "clients-dashboard-v20",
		},
		{
			name:  "ampersand dropped",
			input: "Design & Build",
			want:  "design-build",
		},
		{
			name:  "consecutive spaces collapsed",
			input: "Portfolio   Website",
			want:  "portfolio-website",
		},
		{
			name:  "leading and trailing whitespace",
			input: "  SaaS Landing Page  ",
			want:  "saas-landing-page",
		},
		{
			name:  "hyphens trimmed and collapsed",
			input: "--REST -- API--",
			want:  "rest-api",
		},
		{
			name:  "already a slug",
			input: "mobile-banking-app",
			want:  "mobile-banking-app",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only symbols",
			input: "!?#%",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
