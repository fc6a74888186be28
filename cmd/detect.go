package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glossa-tools/glossa/detect"
	"github.com/glossa-tools/glossa/text"
	"github.com/glossa-tools/glossa/utils"
)

// NewDetectCommand returns the one-shot detection command. With --text it
// detects a single string; positional arguments are detected as a batch.
func NewDetectCommand() *cobra.Command {
	var (
		configFile    string
		inputText     string
		method        string
		jsonOutput    bool
		advanced      bool
		removePunct   bool
		removeNumbers bool
		removeSpecial bool
		simplifyCJK   bool
	)

	command := &cobra.Command{
		Use:   "detect [texts...]",
		Short: "Detect the language of text",
		Long: "Detect the language of text. With --text a single string is detected,\n" +
			"honoring --method and the cleaning flags. Positional arguments are\n" +
			"detected as a batch, always in combined mode with default cleaning.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputText == "" && len(args) == 0 {
				return errors.New("no text to detect: pass --text or positional arguments")
			}
			if len(args) > 0 {
				for _, flag := range []string{"method", "advanced", "remove-punct", "remove-numbers", "remove-special", "simplify-cjk"} {
					if cmd.Flags().Changed(flag) {
						return fmt.Errorf("--%s applies only to --text: batch detection always uses combined mode with default cleaning", flag)
					}
				}
			}
			detector, err := buildDetector(configFile)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if inputText != "" {
				result, err := detector.Detect(ctx, detect.Request{
					Text:   inputText,
					Method: method,
					Cleaning: text.CleaningOptions{
						Advanced:      advanced,
						RemovePunct:   removePunct,
						RemoveNumbers: removeNumbers,
						RemoveSpecial: removeSpecial,
						SimplifyCJK:   simplifyCJK,
					},
				})
				if err != nil {
					return err
				}
				return printResults(cmd, jsonOutput, result)
			}

			return printResults(cmd, jsonOutput, detector.DetectBatch(ctx, args)...)
		},
	}

	addConfigFlag(command, &configFile)
	command.Flags().StringVarP(&inputText, "text", "t", "", "Text to detect")
	command.Flags().StringVarP(&method, "method", "m", "", "Use a single detection method instead of combined mode")
	command.Flags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
	command.Flags().BoolVar(&advanced, "advanced", false, "Enable advanced text cleaning")
	command.Flags().BoolVar(&removePunct, "remove-punct", true, "Remove punctuation (advanced cleaning)")
	command.Flags().BoolVar(&removeNumbers, "remove-numbers", false, "Remove numbers (advanced cleaning)")
	command.Flags().BoolVar(&removeSpecial, "remove-special", false, "Remove special characters (advanced cleaning)")
	command.Flags().BoolVar(&simplifyCJK, "simplify-cjk", false, "Convert Traditional Chinese to Simplified before detection")
	return command
}

func printResults(cmd *cobra.Command, jsonOutput bool, results ...*detect.Result) error {
	if jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if len(results) == 1 {
			return encoder.Encode(results[0])
		}
		return encoder.Encode(results)
	}
	for _, result := range results {
		printResult(cmd, result)
	}
	return nil
}

func printResult(cmd *cobra.Command, result *detect.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Language:   %s (%s)\n", result.Name, result.Code)
	fmt.Fprintf(out, "Family:     %s\n", result.Family)
	fmt.Fprintf(out, "Confidence: %s (method: %s)\n", utils.FormatConfidence(result.Confidence), result.Method)
	for _, methodResult := range result.AllResults {
		status := "failed"
		if methodResult.OK {
			status = fmt.Sprintf("%s %s", methodResult.Code, utils.FormatConfidence(methodResult.Confidence))
		}
		fmt.Fprintf(out, "  %-16s %s\n", methodResult.Method+":", status)
	}
	fmt.Fprintln(out)
}
