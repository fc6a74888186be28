// Package detect combines several independent language-detection backends
// into a single confidence-weighted answer.
package detect

import (
	"context"

	"github.com/glossa-tools/glossa/langmeta"
	"github.com/glossa-tools/glossa/utils"
)

// logger is the shared application logger, so --verbose surfaces the
// per-method debug lines.
var logger = utils.Logger

// Built-in method names.
const (
	MethodLingua         = "lingua"
	MethodWhatlang       = "whatlang"
	MethodNgram          = "ngram"
	MethodDetectLanguage = "detectlanguage"
	MethodLLM            = "llm"
)

// MethodResult is the outcome of one adapter invocation. A backend failure
// is reported as OK=false with confidence 0, never as an error.
type MethodResult struct {
	Method     string  `json:"method"`
	Code       string  `json:"language_code"`
	Confidence float64 `json:"confidence"`
	OK         bool    `json:"succeeded"`
}

// Adapter wraps one external detection backend behind a uniform interface.
// Implementations are stateless after construction and must not panic or
// return errors: any underlying failure becomes a failed MethodResult.
type Adapter interface {
	Name() string
	Detect(ctx context.Context, text string) MethodResult
}

func failedResult(method string) MethodResult {
	return MethodResult{Method: method, Code: langmeta.Unknown}
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
