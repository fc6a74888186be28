package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glossa-tools/glossa/detect"
	"github.com/glossa-tools/glossa/text"
	"github.com/glossa-tools/glossa/utils"
)

const shellHelp = `Commands:
  help                     show this help
  settings                 show current cleaning settings and method
  set <option> <on|off>    toggle a cleaning option
                           (advanced, punct, numbers, special, cjk)
  method <name|combined>   restrict detection to one method
  exit                     leave the shell

Any other input is detected as text.`

// shellState holds the per-session cleaning settings the set/settings
// commands operate on.
type shellState struct {
	cleaning text.CleaningOptions
	method   string
}

// NewShellCommand returns the interactive shell command.
func NewShellCommand() *cobra.Command {
	var configFile string

	command := &cobra.Command{
		Use:   "shell",
		Short: "Interactive language detection shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			detector, err := buildDetector(configFile)
			if err != nil {
				return err
			}
			tokenizer, err := text.NewTokenizer(true)
			if err != nil {
				return err
			}

			state := &shellState{
				cleaning: text.CleaningOptions{RemovePunct: true},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Language detection shell. Type 'help' for commands, 'exit' to quit.")

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					break
				}
				if handled := state.dispatch(out, detector, line); handled {
					continue
				}

				result, err := detector.Detect(cmd.Context(), detect.Request{
					Text:     line,
					Method:   state.method,
					Cleaning: state.cleaning,
				})
				if err != nil {
					// Only malformed requests reach here; re-prompt.
					fmt.Fprintf(out, "error: %v\n", err)
					continue
				}
				fmt.Fprintf(out, "%s (%s), family %s, confidence %s via %s, %d tokens\n",
					result.Name, result.Code, result.Family,
					utils.FormatConfidence(result.Confidence), result.Method,
					tokenizer.Count(result.CleanedText))
			}
			return scanner.Err()
		},
	}

	addConfigFlag(command, &configFile)
	return command
}

// dispatch handles shell commands; it reports false when the line is plain
// text to detect.
func (s *shellState) dispatch(out io.Writer, detector *detect.Detector, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "help":
		fmt.Fprintln(out, shellHelp)
	case "settings":
		method := s.method
		if method == "" {
			method = "combined"
		}
		fmt.Fprintf(out, "method:   %s (available: %s)\n", method, strings.Join(detector.Methods(), ", "))
		fmt.Fprintf(out, "advanced: %v\n", s.cleaning.Advanced)
		fmt.Fprintf(out, "punct:    %v\n", s.cleaning.RemovePunct)
		fmt.Fprintf(out, "numbers:  %v\n", s.cleaning.RemoveNumbers)
		fmt.Fprintf(out, "special:  %v\n", s.cleaning.RemoveSpecial)
		fmt.Fprintf(out, "cjk:      %v\n", s.cleaning.SimplifyCJK)
	case "set":
		if len(fields) != 3 {
			fmt.Fprintln(out, "usage: set <option> <on|off>")
			return true
		}
		value := fields[2] == "on" || fields[2] == "true"
		switch fields[1] {
		case "advanced":
			s.cleaning.Advanced = value
		case "punct":
			s.cleaning.RemovePunct = value
		case "numbers":
			s.cleaning.RemoveNumbers = value
		case "special":
			s.cleaning.RemoveSpecial = value
		case "cjk":
			s.cleaning.SimplifyCJK = value
		default:
			fmt.Fprintf(out, "unknown option: %s\n", fields[1])
		}
	case "method":
		if len(fields) != 2 {
			fmt.Fprintln(out, "usage: method <name|combined>")
			return true
		}
		if fields[1] == "combined" {
			s.method = ""
		} else {
			s.method = fields[1]
		}
	default:
		return false
	}
	return true
}
