package commands

import (
	"fmt"

	"github.com/converse-labs/converse/internal/config"
	"github.com/spf13/cobra"
)

// Shared flag helpers so every command names the same option the same way.

// AddModelFlag registers -m/--model on the command.
func AddModelFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("model", "m", config.DefaultModelsPath,
		"Path to a trained model archive. If a directory is given, the latest model in it is used.")
}

// AddConfigFlag registers -c/--config on the command.
func AddConfigFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", config.DefaultConfigPath,
		"The policy and NLU pipeline configuration of your assistant.")
}

// AddDomainFlag registers -d/--domain on the command.
func AddDomainFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("domain", "d", config.DefaultDomainPath,
		"Domain specification (yml file).")
}

// AddStoriesFlag registers -s/--stories on the command.
func AddStoriesFlag(cmd *cobra.Command, storiesName string) {
	cmd.Flags().StringP("stories", "s", config.DefaultDataPath,
		fmt.Sprintf("File or folder containing %s stories.", storiesName))
}

// AddNLUDataFlag registers -u/--nlu on the command.
func AddNLUDataFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("nlu", "u", config.DefaultDataPath,
		"File or folder containing your NLU training data.")
}

// AddEndpointsFlag registers --endpoints on the command.
func AddEndpointsFlag(cmd *cobra.Command) {
	cmd.Flags().String("endpoints", config.DefaultEndpointsPath,
		"Configuration file for the connected services (yml file).")
}
