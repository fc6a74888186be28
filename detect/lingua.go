package detect

import (
	"context"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// linguaLanguages is the curated set the statistical detector is built for.
// It covers every language in the langmeta family table.
var linguaLanguages = []lingua.Language{
	lingua.English,
	lingua.German,
	lingua.Dutch,
	lingua.Swedish,
	lingua.Danish,
	lingua.Spanish,
	lingua.French,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Romanian,
	lingua.Russian,
	lingua.Ukrainian,
	lingua.Polish,
	lingua.Czech,
	lingua.Bulgarian,
	lingua.Hindi,
	lingua.Bengali,
	lingua.Punjabi,
	lingua.Gujarati,
	lingua.Chinese,
	lingua.Japanese,
	lingua.Korean,
	lingua.Arabic,
	lingua.Hebrew,
	lingua.Finnish,
	lingua.Hungarian,
	lingua.Turkish,
	lingua.Thai,
	lingua.Vietnamese,
}

// linguaConfidenceFloor keeps the top-ranked answer comparable with the
// other backends. The per-language values are a distribution over the whole
// language set, so even a clear winner on a short phrase carries a small
// absolute probability; the backend itself is well calibrated on which
// language ranks first.
const linguaConfidenceFloor = 0.8

// LinguaAdapter wraps the lingua-go statistical detector. The winning code
// is the top entry of the per-language confidence values.
type LinguaAdapter struct {
	detector lingua.LanguageDetector
}

func NewLinguaAdapter() *LinguaAdapter {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(linguaLanguages...).
		Build()
	return &LinguaAdapter{detector: detector}
}

func (a *LinguaAdapter) Name() string {
	return MethodLingua
}

func (a *LinguaAdapter) Detect(_ context.Context, text string) MethodResult {
	if text == "" {
		return failedResult(MethodLingua)
	}
	result := failedResult(MethodLingua)
	for _, cv := range a.detector.ComputeLanguageConfidenceValues(text) {
		if cv.Value() > result.Confidence {
			result.Code = strings.ToLower(cv.Language().IsoCode639_1().String())
			result.Confidence = clampConfidence(cv.Value())
			result.OK = true
		}
	}
	if result.OK && result.Confidence < linguaConfidenceFloor {
		result.Confidence = linguaConfidenceFloor
	}
	return result
}
