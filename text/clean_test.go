package text

import (
	"testing"
)

func mustCleaner(t *testing.T) *Cleaner {
	t.Helper()
	c, err := NewCleaner()
	if err != nil {
		t.Fatalf("NewCleaner() error = %v", err)
	}
	return c
}

func TestCleaner_Basic(t *testing.T) {
	c := mustCleaner(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace normalization",
			input: "  hello   world \t\n",
			want:  "hello world",
		},
		{
			name:  "URL removal",
			input: "check https://example.com/page for details",
			want:  "check for details",
		},
		{
			name:  "www URL removal",
			input: "see www.example.com today",
			want:  "see today",
		},
		{
			name:  "email removal",
			input: "write to someone@example.com please",
			want:  "write to please",
		},
		{
			name:  "punctuation kept in basic mode",
			input: "Hello, how are you?",
			want:  "Hello, how are you?",
		},
		{
			name:  "case kept in basic mode",
			input: "Bonjour Le Monde",
			want:  "Bonjour Le Monde",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Clean(tt.input, CleaningOptions{})
			if got != tt.want {
				t.Errorf("Clean() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleaner_Advanced(t *testing.T) {
	c := mustCleaner(t)

	tests := []struct {
		name  string
		input string
		opts  CleaningOptions
		want  string
	}{
		{
			name:  "lowercasing",
			input: "Bonjour Le Monde",
			opts:  CleaningOptions{Advanced: true},
			want:  "bonjour le monde",
		},
		{
			name:  "punctuation removal",
			input: "Bonjour, le monde!",
			opts:  CleaningOptions{Advanced: true, RemovePunct: true},
			want:  "bonjour le monde",
		},
		{
			name:  "number removal",
			input: "room 404 on floor 3",
			opts:  CleaningOptions{Advanced: true, RemoveNumbers: true},
			want:  "room on floor",
		},
		{
			name:  "special character removal",
			input: "café #1 @night",
			opts:  CleaningOptions{Advanced: true, RemoveSpecial: true},
			want:  "caf 1 night",
		},
		{
			name:  "HTML tag removal",
			input: "hello <b>bold</b> world",
			opts:  CleaningOptions{Advanced: true},
			want:  "hello bold world",
		},
		{
			name:  "full-width characters NFKC folded",
			input: "Ｈｅｌｌｏ",
			opts:  CleaningOptions{Advanced: true},
			want:  "hello",
		},
		{
			name:  "empty string",
			input: "",
			opts:  CleaningOptions{Advanced: true, RemovePunct: true},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Clean(tt.input, tt.opts)
			if got != tt.want {
				t.Errorf("Clean() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleaner_SimplifyCJK(t *testing.T) {
	c := mustCleaner(t)

	got := c.Clean("繁體中文", CleaningOptions{SimplifyCJK: true})
	if got != "繁体中文" {
		t.Errorf("Clean() = %q, want %q", got, "繁体中文")
	}
}

func TestCleaner_Idempotent(t *testing.T) {
	c := mustCleaner(t)

	inputs := []string{
		"Hello, how are you?",
		"  Bonjour,   le monde!  ",
		"check https://example.com and room 404 <b>now</b>",
		"ＨｅｌｌｏＷｏｒｌｄ 繁體中文",
	}
	options := []CleaningOptions{
		{},
		{Advanced: true},
		{Advanced: true, RemovePunct: true},
		{Advanced: true, RemovePunct: true, RemoveNumbers: true, RemoveSpecial: true},
		{Advanced: true, RemovePunct: true, SimplifyCJK: true},
	}

	for _, input := range inputs {
		for _, opts := range options {
			once := c.Clean(input, opts)
			twice := c.Clean(once, opts)
			if once != twice {
				t.Errorf("Clean not idempotent for %q with %+v: %q != %q", input, opts, once, twice)
			}
		}
	}
}
