package cmd

import (
	"github.com/spf13/cobra"

	"github.com/glossa-tools/glossa/config"
	"github.com/glossa-tools/glossa/detect"
	"github.com/glossa-tools/glossa/utils"
)

var logger = utils.Logger

// addConfigFlag registers the shared --config flag.
func addConfigFlag(command *cobra.Command, configFile *string) {
	command.Flags().StringVar(configFile, "config", "", "Path to config file")
}

// buildDetector creates a detector from an optional config file. Without a
// file only the local backends are registered.
func buildDetector(configFile string) (*detect.Detector, error) {
	detectorConfig := detect.Config{}
	if configFile != "" {
		envelope, err := config.LoadFromFile(configFile)
		if err != nil {
			return nil, err
		}
		detectorConfig, err = envelope.DetectorConfig()
		if err != nil {
			return nil, err
		}
	}
	return detect.New(detectorConfig)
}
