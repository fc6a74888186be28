package detect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinguaAdapter(t *testing.T) {
	adapter := NewLinguaAdapter()
	assert.Equal(t, MethodLingua, adapter.Name())

	tests := []struct {
		name   string
		text   string
		wantOK bool
		want   string
	}{
		{
			name:   "English",
			text:   "This is an English text for testing language detection.",
			wantOK: true,
			want:   "en",
		},
		{
			name:   "Chinese",
			text:   "这是一段用于测试语言检测功能的简体中文文本。",
			wantOK: true,
			want:   "zh",
		},
		{
			name:   "empty input",
			text:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := adapter.Detect(context.Background(), tt.text)
			assert.Equal(t, MethodLingua, result.Method)
			assert.Equal(t, tt.wantOK, result.OK)
			if tt.wantOK {
				assert.Equal(t, tt.want, result.Code)
				assert.Greater(t, result.Confidence, 0.0)
				assert.LessOrEqual(t, result.Confidence, 1.0)
			} else {
				assert.Zero(t, result.Confidence)
			}
		})
	}
}

func TestLinguaAdapterFloorsShortPhraseConfidence(t *testing.T) {
	adapter := NewLinguaAdapter()

	// The raw top probability for a short phrase is spread thin across the
	// language set; the adapter must still report it at the floor.
	result := adapter.Detect(context.Background(), "Hello, how are you?")
	assert.True(t, result.OK)
	assert.Equal(t, "en", result.Code)
	assert.GreaterOrEqual(t, result.Confidence, linguaConfidenceFloor)
	assert.LessOrEqual(t, result.Confidence, 1.0)
}

func TestWhatlangAdapter(t *testing.T) {
	adapter := WhatlangAdapter{}
	assert.Equal(t, MethodWhatlang, adapter.Name())

	result := adapter.Detect(context.Background(), "Это длинный русский текст для проверки определения языка в системе.")
	assert.True(t, result.OK)
	assert.Equal(t, "ru", result.Code)
	assert.Greater(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 1.0)

	result = adapter.Detect(context.Background(), "")
	assert.False(t, result.OK)
	assert.Zero(t, result.Confidence)
}

func TestNgramAdapter(t *testing.T) {
	adapter := NewNgramAdapter()
	assert.Equal(t, MethodNgram, adapter.Name())

	result := adapter.Detect(context.Background(), "This is clearly an English sentence about nothing in particular, written for testing.")
	assert.True(t, result.OK)
	assert.Equal(t, "en", result.Code)
	assert.Equal(t, ngramHeuristicConfidence, result.Confidence)

	result = adapter.Detect(context.Background(), "")
	assert.False(t, result.OK)
}

func TestParseISOCode(t *testing.T) {
	tests := []struct {
		reply string
		want  string
	}{
		{reply: "en", want: "en"},
		{reply: " fr ", want: "fr"},
		{reply: "\"de\".", want: "de"},
		{reply: "EN", want: "en"},
		{reply: "zh (Chinese)", want: "zh"},
		{reply: "English", want: ""},
		{reply: "I think it is English", want: ""},
		{reply: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.reply, func(t *testing.T) {
			assert.Equal(t, tt.want, parseISOCode(tt.reply))
		})
	}
}

func TestNewLLMAdapterRejectsUnknownBackend(t *testing.T) {
	_, err := NewLLMAdapter(LLMConfig{Backend: "mystery"})
	assert.Error(t, err)
}

func TestClampConfidence(t *testing.T) {
	assert.Equal(t, 0.0, clampConfidence(-0.5))
	assert.Equal(t, 0.5, clampConfidence(0.5))
	assert.Equal(t, 1.0, clampConfidence(1.5))
}
