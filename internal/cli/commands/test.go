package commands

import (
	"fmt"

	cliconfig "github.com/converse-labs/converse/internal/cli/config"
	"github.com/converse-labs/converse/internal/cli/paths"
	sharedcfg "github.com/converse-labs/converse/internal/config"
	"github.com/converse-labs/converse/internal/model"
	"github.com/spf13/cobra"
)

// NewTestCommand creates the test command.
func NewTestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test [model]",
		Short: "Check the project setup against a trained model",
		Long: `Validate the pipeline configuration, test stories and model archive.

The model is optional: without one, only the configuration and stories are
checked. Each check is reported on its own status line.`,
		Example: `  # Check config, stories and the latest model
  converse test

  # Check against a specific model
  converse test models/20191201-103002.tar.gz

  # Use separate test stories
  converse test -s tests/stories.yml`,
		Args: cobra.NoArgs,
		RunE: runTest,
	}

	AddModelFlag(cmd)
	AddConfigFlag(cmd)
	AddStoriesFlag(cmd, "test")

	return cmd
}

func runTest(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	configFlag, _ := cmd.Flags().GetString("config")
	storiesFlag, _ := cmd.Flags().GetString("stories")

	failures := 0

	configPath, err := paths.Validate(r, configFlag, "config", cmdCtx.Cfg.ConfigPath, false)
	if err != nil {
		return err
	}
	valid, err := cliconfig.IsValidConfig(configPath, sharedcfg.MandatoryKeys)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", configPath, err)
	}
	if valid {
		r.StatusLine("config", "success", configPath)
	} else {
		missing, _ := cliconfig.MissingKeys(configPath, sharedcfg.MandatoryKeys)
		r.StatusLine("config", "error", fmt.Sprintf("%s (missing keys: %v)", configPath, missing))
		failures++
	}

	// Stories are optional for pure NLU projects.
	storiesPath, err := paths.Validate(r, storiesFlag, "stories", cmdCtx.Cfg.DataDir, true)
	if err != nil {
		return err
	}
	if storiesPath != "" {
		r.StatusLine("stories", "success", storiesPath)
	} else {
		r.StatusLine("stories", "warn", "no test stories found")
	}

	// A missing model is not a failure: test can run before the first train.
	modelPath, err := resolveModel(cmd, cmdCtx, true)
	if err != nil {
		return err
	}
	if modelPath == "" {
		r.StatusLine("model", "warn", "no trained model found")
	} else {
		manifest, err := model.Inspect(modelPath)
		if err != nil {
			r.StatusLine("model", "error", err.Error())
			failures++
		} else {
			r.StatusLine("model", "success",
				fmt.Sprintf("%s (%d files)", modelPath, len(manifest.Files)))
		}
	}

	r.Println("")
	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}
	r.Success("All checks passed.")
	return nil
}
