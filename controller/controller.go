// Package controller exposes the detector over HTTP: a small form page and
// the JSON API it talks to.
package controller

import (
	_ "embed"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/glossa-tools/glossa/detect"
	"github.com/glossa-tools/glossa/text"
	"github.com/glossa-tools/glossa/utils"
)

//go:embed index.html
var indexHTML string

var logger = utils.Logger

type Controller struct {
	detector  *detect.Detector
	tokenizer text.Tokenizer
}

func NewController(detector *detect.Detector) (*Controller, error) {
	tokenizer, err := text.NewTokenizer(true)
	if err != nil {
		return nil, err
	}
	return &Controller{
		detector:  detector,
		tokenizer: tokenizer,
	}, nil
}

// DetectParams mirrors the form's JSON body. RemovePunct is a pointer so an
// omitted field keeps its historical default of true.
type DetectParams struct {
	Text             string `json:"text"`
	Method           string `json:"method,omitempty"`
	AdvancedCleaning bool   `json:"advanced_cleaning"`
	RemovePunct      *bool  `json:"remove_punct"`
	RemoveNums       bool   `json:"remove_nums"`
	RemoveSpecial    bool   `json:"remove_special"`
	SimplifyCJK      bool   `json:"simplify_cjk"`
}

func (p DetectParams) cleaningOptions() text.CleaningOptions {
	removePunct := true
	if p.RemovePunct != nil {
		removePunct = *p.RemovePunct
	}
	return text.CleaningOptions{
		Advanced:      p.AdvancedCleaning,
		RemovePunct:   removePunct,
		RemoveNumbers: p.RemoveNums,
		RemoveSpecial: p.RemoveSpecial,
		SimplifyCJK:   p.SimplifyCJK,
	}
}

// DetectResponse adds display fields on top of the library result.
type DetectResponse struct {
	*detect.Result
	ConfidenceFormatted string `json:"confidence_formatted"`
	TokenCount          int    `json:"token_count"`
}

func (c *Controller) response(result *detect.Result) DetectResponse {
	return DetectResponse{
		Result:              result,
		ConfidenceFormatted: utils.FormatConfidence(result.Confidence),
		TokenCount:          c.tokenizer.Count(result.CleanedText),
	}
}

// Index serves the embedded form page.
func (c *Controller) Index(echoCtx echo.Context) error {
	return echoCtx.HTML(http.StatusOK, indexHTML)
}

// Detect handles POST /api/v1/detect.
func (c *Controller) Detect(echoCtx echo.Context) error {
	ctx := echoCtx.Request().Context()

	param := DetectParams{}
	if err := echoCtx.Bind(&param); err != nil {
		return utils.EchoHandleBadRequest(echoCtx, err)
	}
	if param.Text == "" {
		return utils.EchoHandleBadRequest(echoCtx, errors.New("no text provided"))
	}

	requestID := uuid.NewString()
	result, err := c.detector.Detect(ctx, detect.Request{
		Text:     param.Text,
		Method:   param.Method,
		Cleaning: param.cleaningOptions(),
	})
	if err != nil {
		if errors.Is(err, detect.ErrUnknownMethod) {
			return utils.EchoHandleBadRequest(echoCtx, err)
		}
		return utils.EchoHandleInternalError(echoCtx, err)
	}
	logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"language":   result.Code,
		"method":     result.Method,
		"confidence": result.Confidence,
	}).Info("detection served")

	return echoCtx.JSON(http.StatusOK, c.response(result))
}

type BatchParams struct {
	Texts []string `json:"texts"`
}

// DetectBatch handles POST /api/v1/detect/batch. Results keep input order.
func (c *Controller) DetectBatch(echoCtx echo.Context) error {
	ctx := echoCtx.Request().Context()

	param := BatchParams{}
	if err := echoCtx.Bind(&param); err != nil {
		return utils.EchoHandleBadRequest(echoCtx, err)
	}
	if len(param.Texts) == 0 {
		return utils.EchoHandleBadRequest(echoCtx, errors.New("no texts provided"))
	}

	requestID := uuid.NewString()
	results := c.detector.DetectBatch(ctx, param.Texts)
	responses := make([]DetectResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, c.response(result))
	}
	logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"count":      len(responses),
	}).Info("batch detection served")

	return echoCtx.JSON(http.StatusOK, responses)
}

// Methods handles GET /api/v1/methods.
func (c *Controller) Methods(echoCtx echo.Context) error {
	return echoCtx.JSON(http.StatusOK, c.detector.Methods())
}

// Health handles GET /health.
func (c *Controller) Health(echoCtx echo.Context) error {
	return echoCtx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterRoutes wires the controller into an echo group hierarchy.
func (c *Controller) RegisterRoutes(e *echo.Echo, api *echo.Group) {
	e.GET("/", c.Index)
	e.GET("/health", c.Health)
	api.POST("/detect", c.Detect)
	api.POST("/detect/batch", c.DetectBatch)
	api.GET("/methods", c.Methods)
}
