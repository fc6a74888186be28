package detect

import (
	"context"
	"strings"

	"github.com/chrisport/go-lang-detector/langdet"
	"github.com/chrisport/go-lang-detector/langdet/langdetdef"
)

// ngramHeuristicConfidence is assigned when the n-gram detector names a
// language: the library reports no score of its own, and a fixed value keeps
// it comparable with the probabilistic backends.
const ngramHeuristicConfidence = 0.7

// ngramCodes maps the detector's language names to ISO 639-1 codes.
var ngramCodes = map[string]string{
	"english": "en",
	"french":  "fr",
	"german":  "de",
	"russian": "ru",
}

// NgramAdapter wraps the chrisport n-gram distance detector with its default
// comparator set.
type NgramAdapter struct {
	detector langdet.Detector
}

func NewNgramAdapter() *NgramAdapter {
	return &NgramAdapter{
		detector: langdet.Detector{
			Languages: []langdet.LanguageComparator{
				langdetdef.ENGLISH,
				langdetdef.FRENCH,
				langdetdef.GERMAN,
				langdetdef.RUSSIAN,
			},
			MinimumConfidence: langdet.DefaultMinimumConfidence,
			NDepth:            langdet.DEFAULT_NDEPTH,
		},
	}
}

func (a *NgramAdapter) Name() string {
	return MethodNgram
}

func (a *NgramAdapter) Detect(_ context.Context, text string) MethodResult {
	if text == "" {
		return failedResult(MethodNgram)
	}
	name := strings.ToLower(a.detector.GetClosestLanguage(text))
	code, ok := ngramCodes[name]
	if !ok {
		// "undefined" or a language outside the comparator set
		return failedResult(MethodNgram)
	}
	return MethodResult{
		Method:     MethodNgram,
		Code:       code,
		Confidence: ngramHeuristicConfidence,
		OK:         true,
	}
}
