package cmd

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/glossa-tools/glossa/detect"
)

type DetectInput struct {
	Text   string `json:"text" jsonschema:"the text whose language should be identified"`
	Method string `json:"method,omitempty" jsonschema:"optional detection method; empty means combined mode"`
}

type DetectOutput struct {
	LanguageCode string  `json:"language_code" jsonschema:"ISO 639-1 code, or unknown"`
	Language     string  `json:"language" jsonschema:"language display name"`
	Family       string  `json:"language_family" jsonschema:"language family"`
	Confidence   float64 `json:"confidence" jsonschema:"confidence in [0,1]"`
	Method       string  `json:"method" jsonschema:"the method that produced the answer"`
}

type ListMethodsInput struct {
	// No input parameters
}

type ListMethodsOutput struct {
	Methods []string `json:"methods" jsonschema:"the registered detection methods"`
}

type GlossaMCP struct {
	detector *detect.Detector
}

func (g GlossaMCP) DetectLanguage(ctx context.Context, req *mcp.CallToolRequest, input DetectInput) (*mcp.CallToolResult, DetectOutput, error) {
	result, err := g.detector.Detect(ctx, detect.Request{
		Text:   input.Text,
		Method: input.Method,
	})
	if err != nil {
		return nil, DetectOutput{}, err
	}
	return nil, DetectOutput{
		LanguageCode: result.Code,
		Language:     result.Name,
		Family:       result.Family,
		Confidence:   result.Confidence,
		Method:       result.Method,
	}, nil
}

func (g GlossaMCP) ListMethods(ctx context.Context, req *mcp.CallToolRequest, input ListMethodsInput) (*mcp.CallToolResult, ListMethodsOutput, error) {
	return nil, ListMethodsOutput{Methods: g.detector.Methods()}, nil
}

// NewMcpCommand returns the MCP stdio server command. The detector runs
// in-process; no web server is required.
func NewMcpCommand() *cobra.Command {
	var configFile string

	mcpCommand := &cobra.Command{
		Use:   "mcp",
		Short: "Starting MCP server",
		Run: func(cmd *cobra.Command, args []string) {
			detector, err := buildDetector(configFile)
			if err != nil {
				logger.WithError(err).Fatal("Failed to create detector")
			}
			g := GlossaMCP{detector: detector}
			server := mcp.NewServer(&mcp.Implementation{
				Name:    "glossa-mcp",
				Title:   "MCP server for identifying the language of text",
				Version: "v1.0.0",
			}, nil)
			mcp.AddTool(server, &mcp.Tool{
				Name:        "detect_language",
				Description: "Identify the natural language of a text, combining several detection methods",
			}, g.DetectLanguage)
			mcp.AddTool(server, &mcp.Tool{
				Name:        "list_methods",
				Description: "List the available detection methods; combined mode uses all of them with weighted voting",
			}, g.ListMethods)
			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				logger.Fatal(err)
			}
		},
	}

	addConfigFlag(mcpCommand, &configFile)
	return mcpCommand
}
