package detect

import (
	"context"

	"github.com/abadojack/whatlanggo"
)

// WhatlangAdapter wraps the whatlanggo trigram detector. It carries a native
// confidence score and a reliability gate; unreliable detections fail.
type WhatlangAdapter struct{}

func (WhatlangAdapter) Name() string {
	return MethodWhatlang
}

func (WhatlangAdapter) Detect(_ context.Context, text string) MethodResult {
	if text == "" {
		return failedResult(MethodWhatlang)
	}
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return failedResult(MethodWhatlang)
	}
	code := info.Lang.Iso6391()
	if code == "" {
		return failedResult(MethodWhatlang)
	}
	return MethodResult{
		Method:     MethodWhatlang,
		Code:       code,
		Confidence: clampConfidence(info.Confidence),
		OK:         true,
	}
}
