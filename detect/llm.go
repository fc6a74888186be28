package detect

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/ollama/ollama/api"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const identifyPrompt = "You are a language identification assistant. " +
	"Reply with only the ISO 639-1 code of the language of the user's text, for example \"en\" or \"fr\"."

// llmHeuristicConfidence is assigned when the model returns a parseable code;
// chat models report no calibrated score.
const llmHeuristicConfidence = 0.6

var isoCodePattern = regexp.MustCompile(`^[a-z]{2,3}$`)

type LLMConfig struct {
	Backend  string // "ollama" or "openai"
	Model    string
	Endpoint string
	Token    string
}

// languageModel asks a chat model which language a text is written in.
type languageModel interface {
	Identify(ctx context.Context, text string) (string, error)
}

// LLMAdapter wraps a chat model (local ollama or an OpenAI-compatible
// endpoint) as a detection backend. It is registered only when configured.
type LLMAdapter struct {
	model languageModel
}

func NewLLMAdapter(config LLMConfig) (*LLMAdapter, error) {
	switch config.Backend {
	case "ollama":
		model, err := newOllamaModel(config)
		if err != nil {
			return nil, err
		}
		return &LLMAdapter{model: model}, nil
	case "openai":
		return &LLMAdapter{model: newOpenAIModel(config)}, nil
	}
	return nil, fmt.Errorf("unknown llm backend: %s", config.Backend)
}

func (a *LLMAdapter) Name() string {
	return MethodLLM
}

func (a *LLMAdapter) Detect(ctx context.Context, text string) MethodResult {
	if text == "" {
		return failedResult(MethodLLM)
	}
	reply, err := a.model.Identify(ctx, text)
	if err != nil {
		logger.WithError(err).Warn("llm identification failed")
		return failedResult(MethodLLM)
	}
	code := parseISOCode(reply)
	if code == "" {
		logger.WithField("reply", reply).Warn("llm returned no usable language code")
		return failedResult(MethodLLM)
	}
	return MethodResult{
		Method:     MethodLLM,
		Code:       code,
		Confidence: llmHeuristicConfidence,
		OK:         true,
	}
}

// parseISOCode extracts a bare ISO 639 code from a model reply, tolerating
// quotes, trailing punctuation and surrounding prose.
func parseISOCode(reply string) string {
	fields := strings.Fields(strings.ToLower(reply))
	if len(fields) == 0 {
		return ""
	}
	code := strings.Trim(fields[0], "\"'`.,:")
	if !isoCodePattern.MatchString(code) {
		return ""
	}
	return code
}

type ollamaModel struct {
	model  string
	client api.Client
}

func newOllamaModel(config LLMConfig) (*ollamaModel, error) {
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = "http://localhost:11434"
	}
	ollamaURL, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	return &ollamaModel{
		model:  config.Model,
		client: *api.NewClient(ollamaURL, http.DefaultClient),
	}, nil
}

func (o *ollamaModel) Identify(ctx context.Context, text string) (string, error) {
	useStream := false
	req := api.ChatRequest{
		Model: o.model,
		Messages: []api.Message{
			{
				Role:    "system",
				Content: identifyPrompt,
			},
			{
				Role:    "user",
				Content: text,
			},
		},
		Stream: &useStream,
	}
	var reply *string = nil
	err := o.client.Chat(ctx, &req, func(resp api.ChatResponse) error {
		reply = &resp.Message.Content
		return nil
	})
	if err != nil {
		return "", err
	}
	if reply == nil {
		return "", fmt.Errorf("no response from language model")
	}
	return *reply, nil
}

type openaiModel struct {
	model  string
	client openai.Client
}

func newOpenAIModel(config LLMConfig) *openaiModel {
	options := make([]option.RequestOption, 0)
	if config.Token != "" {
		options = append(options, option.WithAPIKey(config.Token))
	}
	if config.Endpoint != "" {
		options = append(options, option.WithBaseURL(config.Endpoint))
	}
	return &openaiModel{
		model:  config.Model,
		client: openai.NewClient(options...),
	}
}

func (o *openaiModel) Identify(ctx context.Context, text string) (string, error) {
	chatCompletion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(identifyPrompt),
			openai.UserMessage(text),
		},
		Model: o.model,
	})
	if err != nil {
		return "", err
	}
	if len(chatCompletion.Choices) == 0 {
		return "", fmt.Errorf("no response from language model")
	}
	return chatCompletion.Choices[0].Message.Content, nil
}
