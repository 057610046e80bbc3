package commands

import (
	"fmt"

	cliconfig "github.com/converse-labs/converse/internal/cli/config"
	"github.com/converse-labs/converse/internal/cli/paths"
	sharedcfg "github.com/converse-labs/converse/internal/config"
	"github.com/spf13/cobra"
)

// NewDataCommand creates the data command group.
func NewDataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Utilities for the assistant's configuration and training data",
	}

	cmd.AddCommand(newDataValidateCommand())

	return cmd
}

func newDataValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that the pipeline configuration defines all mandatory keys",
		Long: `Load the pipeline configuration and verify that every mandatory key
(policies, language, pipeline) is present and non-null. Each key is
reported on its own status line.`,
		Example: `  # Validate the project config
  converse data validate

  # Validate a specific config file
  converse data validate -c pipelines/config.yml`,
		RunE: runDataValidate,
	}

	AddConfigFlag(cmd)

	return cmd
}

func runDataValidate(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	configFlag, _ := cmd.Flags().GetString("config")
	configPath, err := paths.Validate(r, configFlag, "config", cmdCtx.Cfg.ConfigPath, false)
	if err != nil {
		return err
	}

	missing, err := cliconfig.MissingKeys(configPath, sharedcfg.MandatoryKeys)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", configPath, err)
	}
	missingSet := make(map[string]bool, len(missing))
	for _, key := range missing {
		missingSet[key] = true
	}

	r.Printf("Validating %s\n", configPath)
	r.Println("")

	for _, key := range sharedcfg.MandatoryKeys {
		if missingSet[key] {
			r.StatusLine(key, "error", "missing or null")
		} else {
			r.StatusLine(key, "success", "")
		}
	}

	r.Println("")
	if len(missing) > 0 {
		return fmt.Errorf("config %s is missing %d mandatory key(s)", configPath, len(missing))
	}

	r.Success("Configuration is valid.")
	return nil
}
