package main

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glossa-tools/glossa/cmd"
	"github.com/glossa-tools/glossa/utils"
)

var logger = utils.Logger

//go:embed version.txt
var version string

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Glossa",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func main() {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "glossa",
		Short: "Glossa identifies the language of text by combining multiple detectors",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				utils.SetVerbose()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	commands := []*cobra.Command{
		cmd.NewDetectCommand(),
		cmd.NewShellCommand(),
		cmd.NewServerCommand(),
		cmd.NewMcpCommand(),
		versionCommand,
	}
	for _, command := range commands {
		rootCmd.AddCommand(command)
	}
	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Fatal("Failed to execute command")
	}
}
