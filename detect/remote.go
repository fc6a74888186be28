package detect

import (
	"context"
	"strings"

	"github.com/4O4-Not-F0und/detectlanguage-go"
)

// remoteScoreScale normalizes the detectlanguage.com score, which is an
// unbounded value (typically 0-20), into the [0,1] range shared by all
// adapters.
const remoteScoreScale = 10.0

// RemoteAdapter wraps the detectlanguage.com API. It is registered only when
// an API token is configured.
type RemoteAdapter struct {
	client *detectlanguage.Client
}

func NewRemoteAdapter(token string) *RemoteAdapter {
	return &RemoteAdapter{client: detectlanguage.New(token)}
}

func (a *RemoteAdapter) Name() string {
	return MethodDetectLanguage
}

func (a *RemoteAdapter) Detect(ctx context.Context, text string) MethodResult {
	if text == "" {
		return failedResult(MethodDetectLanguage)
	}
	detections, err := a.client.Detect(ctx, text)
	if err != nil {
		logger.WithError(err).Warn("detectlanguage request failed")
		return failedResult(MethodDetectLanguage)
	}
	result := failedResult(MethodDetectLanguage)
	for _, detection := range detections {
		if !detection.Reliable {
			continue
		}
		confidence := clampConfidence(float64(detection.Confidence) / remoteScoreScale)
		if confidence > result.Confidence {
			result.Code = strings.ToLower(detection.Language)
			result.Confidence = confidence
			result.OK = true
		}
	}
	return result
}
