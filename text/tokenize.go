package text

import (
	"github.com/go-ego/gse"
)

// Tokenizer segments text into words. Front ends use it to report token
// counts alongside detection results.
type Tokenizer interface {
	Tokenize(text string) []string
	// Count returns the number of tokens in text.
	Count(text string) int
}

type gseTokenizer struct {
	seg            gse.Segmenter
	filterStopWord bool
}

// NewTokenizer creates a GSE-backed tokenizer with Chinese and Japanese
// dictionaries loaded, so CJK input is counted by word rather than by rune.
// filterStopWords: if true, stop words are dropped from the output.
func NewTokenizer(filterStopWords bool) (Tokenizer, error) {
	t := &gseTokenizer{
		filterStopWord: filterStopWords,
	}

	// Enable alphanumeric recognition
	t.seg.AlphaNum = true

	if err := t.seg.LoadDictEmbed("ja"); err != nil {
		return nil, err
	}
	if err := t.seg.LoadDictEmbed("zh"); err != nil {
		return nil, err
	}
	if err := t.seg.LoadStopEmbed(); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *gseTokenizer) Tokenize(text string) []string {
	tokens := t.seg.Slice(text)
	if !t.filterStopWord || t.seg.StopWordMap == nil {
		return tokens
	}
	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !t.seg.StopWordMap[token] {
			filtered = append(filtered, token)
		}
	}
	return filtered
}

func (t *gseTokenizer) Count(text string) int {
	return len(t.Tokenize(text))
}
