package detect

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/glossa-tools/glossa/langmeta"
	"github.com/glossa-tools/glossa/text"
)

// ErrUnknownMethod is returned when a request names a detection method that
// is not registered. It is the only error Detect can return: detection
// failures degrade to the unknown result instead.
var ErrUnknownMethod = errors.New("unknown detection method")

// noMethod is reported when no adapter produced an answer.
const noMethod = "none"

// defaultWeights is the documented per-method trust table. lingua and the
// remote API report calibrated scores and are trusted most; the n-gram and
// LLM backends only carry heuristic confidences.
var defaultWeights = map[string]float64{
	MethodLingua:         0.4,
	MethodWhatlang:       0.3,
	MethodDetectLanguage: 0.3,
	MethodNgram:          0.2,
	MethodLLM:            0.25,
}

// fallbackWeight applies to methods absent from the weight table.
const fallbackWeight = 0.1

// Config selects the adapter set and tunes aggregation.
type Config struct {
	// DetectLanguageToken enables the detectlanguage.com backend.
	DetectLanguageToken string
	// LLM enables the chat-model backend.
	LLM *LLMConfig
	// Weights overrides entries of the default trust table per method name.
	Weights map[string]float64
	// Timeout bounds each adapter invocation in combined mode; 0 disables it.
	Timeout time.Duration
}

// Request describes one detection call. Method empty means combined mode.
type Request struct {
	Text     string
	Method   string
	Cleaning text.CleaningOptions
}

// Result is the unified detection record returned to callers.
type Result struct {
	Text        string         `json:"text"`
	CleanedText string         `json:"cleaned_text"`
	Code        string         `json:"language_code"`
	Name        string         `json:"language"`
	Family      string         `json:"language_family"`
	IsEnglish   bool           `json:"is_english"`
	Confidence  float64        `json:"confidence"`
	Method      string         `json:"method"`
	AllResults  []MethodResult `json:"all_results,omitempty"`
}

// Detector aggregates the registered adapters. It holds no mutable state
// after construction and is safe for concurrent use.
type Detector struct {
	cleaner  *text.Cleaner
	adapters []Adapter
	weights  map[string]float64
	timeout  time.Duration
}

// New builds a detector. The local backends (lingua, whatlang, ngram) are
// always registered; the remote and LLM backends join when configured.
func New(config Config) (*Detector, error) {
	cleaner, err := text.NewCleaner()
	if err != nil {
		return nil, fmt.Errorf("initialize cleaner: %w", err)
	}
	adapters := []Adapter{
		NewLinguaAdapter(),
		WhatlangAdapter{},
		NewNgramAdapter(),
	}
	if config.DetectLanguageToken != "" {
		adapters = append(adapters, NewRemoteAdapter(config.DetectLanguageToken))
	}
	if config.LLM != nil {
		llm, err := NewLLMAdapter(*config.LLM)
		if err != nil {
			return nil, fmt.Errorf("initialize llm adapter: %w", err)
		}
		adapters = append(adapters, llm)
	}
	weights := make(map[string]float64, len(defaultWeights))
	for method, weight := range defaultWeights {
		weights[method] = weight
	}
	for method, weight := range config.Weights {
		weights[method] = weight
	}
	d := &Detector{
		cleaner:  cleaner,
		adapters: adapters,
		weights:  weights,
		timeout:  config.Timeout,
	}
	logger.Infof("Language detector initialized with methods: %v", d.Methods())
	return d, nil
}

// Methods returns the registered method names in registration order.
func (d *Detector) Methods() []string {
	return lo.Map(d.adapters, func(a Adapter, _ int) string {
		return a.Name()
	})
}

func (d *Detector) adapter(name string) Adapter {
	for _, a := range d.adapters {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

func (d *Detector) weight(method string) float64 {
	if w, ok := d.weights[method]; ok {
		return w
	}
	return fallbackWeight
}

func (d *Detector) invoke(ctx context.Context, a Adapter, cleaned string) MethodResult {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	result := a.Detect(ctx, cleaned)
	if !result.OK {
		logger.WithField("method", a.Name()).Debug("detection method failed")
	}
	return result
}

func newResult(raw, cleaned, code string, confidence float64, method string, all []MethodResult) *Result {
	return &Result{
		Text:        raw,
		CleanedText: cleaned,
		Code:        code,
		Name:        langmeta.Name(code),
		Family:      langmeta.Family(code),
		IsEnglish:   langmeta.IsEnglish(code),
		Confidence:  clampConfidence(confidence),
		Method:      method,
		AllResults:  all,
	}
}

func unknownResult(raw, cleaned, method string, all []MethodResult) *Result {
	return newResult(raw, cleaned, langmeta.Unknown, 0, method, all)
}

// Detect identifies the language of the request's text. The only error it
// can return is ErrUnknownMethod; empty or undetectable text yields the
// unknown result with confidence 0.
func (d *Detector) Detect(ctx context.Context, req Request) (*Result, error) {
	if req.Method != "" && d.adapter(req.Method) == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, req.Method)
	}

	cleaned := d.cleaner.Clean(req.Text, req.Cleaning)
	if cleaned == "" {
		return unknownResult(req.Text, cleaned, noMethod, nil), nil
	}

	// Single-method mode: no fallback to other backends.
	if req.Method != "" {
		result := d.invoke(ctx, d.adapter(req.Method), cleaned)
		all := []MethodResult{result}
		if !result.OK {
			return unknownResult(req.Text, cleaned, req.Method, all), nil
		}
		return newResult(req.Text, cleaned, result.Code, result.Confidence, req.Method, all), nil
	}

	// Combined mode: every adapter votes, weighted by trust. A failed
	// adapter contributes nothing, which subsumes fallback; its weight is
	// excluded from normalization so abstentions lower agreement, not the
	// reported confidence of the backends that did answer.
	all := make([]MethodResult, 0, len(d.adapters))
	scores := make(map[string]float64)
	candidates := make([]string, 0, len(d.adapters)) // first-vote order
	votedWeight := 0.0
	for _, a := range d.adapters {
		result := d.invoke(ctx, a, cleaned)
		all = append(all, result)
		if !result.OK {
			continue
		}
		votedWeight += d.weight(a.Name())
		if _, seen := scores[result.Code]; !seen {
			candidates = append(candidates, result.Code)
		}
		scores[result.Code] += result.Confidence * d.weight(a.Name())
	}

	best, bestScore := "", 0.0
	for _, code := range candidates {
		// Strict comparison keeps the earliest-voted code on ties.
		if scores[code] > bestScore {
			best, bestScore = code, scores[code]
		}
	}
	if best == "" {
		return unknownResult(req.Text, cleaned, noMethod, all), nil
	}

	// Attribute the answer to the first registered backend that voted for it.
	method := noMethod
	for _, result := range all {
		if result.OK && result.Code == best {
			method = result.Method
			break
		}
	}

	confidence := bestScore
	if votedWeight > 0 {
		confidence = bestScore / votedWeight
	}
	return newResult(req.Text, cleaned, best, confidence, method, all), nil
}

// DetectBatch runs an independent combined-mode detection per text,
// preserving input order. There is no cross-text state or caching.
func (d *Detector) DetectBatch(ctx context.Context, texts []string) []*Result {
	return lo.Map(texts, func(t string, _ int) *Result {
		result, err := d.Detect(ctx, Request{Text: t})
		if err != nil {
			// Unreachable: combined mode has no method to reject.
			return unknownResult(t, "", noMethod, nil)
		}
		return result
	})
}
