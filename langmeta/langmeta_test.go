package langmeta

import (
	"testing"
)

func TestName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{code: "en", want: "English"},
		{code: "EN", want: "English"},
		{code: "fr", want: "French"},
		{code: "zh", want: "Chinese"},
		{code: "zh-CN", want: "Chinese"},
		{code: "zh_TW", want: "Chinese"},
		{code: "is", want: "Icelandic"}, // not in the static table, CLDR fallback
		{code: "unknown", want: "Unknown"},
		{code: "", want: "Unknown"},
		{code: "xx", want: "Unknown (xx)"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := Name(tt.code); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestFamily(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{code: "en", want: "Germanic"},
		{code: "de", want: "Germanic"},
		{code: "fr", want: "Romance"},
		{code: "ru", want: "Slavic"},
		{code: "hi", want: "Indo-Aryan"},
		{code: "zh-CN", want: "Sino-Tibetan"},
		{code: "ja", want: "Japonic"},
		{code: "ar", want: "Semitic"},
		{code: "fi", want: "Uralic"},
		{code: "unknown", want: "Unknown"},
		{code: "", want: "Unknown"},
		{code: "sw", want: "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := Family(tt.code); got != tt.want {
				t.Errorf("Family(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestIsEnglish(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{code: "en", want: true},
		{code: "EN-us", want: true},
		{code: "fr", want: false},
		{code: "unknown", want: false},
		{code: "", want: false},
	}

	for _, tt := range tests {
		if got := IsEnglish(tt.code); got != tt.want {
			t.Errorf("IsEnglish(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
