package commands

import (
	"log/slog"

	"github.com/converse-labs/converse/internal/cli/config"
	"github.com/converse-labs/converse/internal/cli/output"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's config,
// logger and output settings.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the loaded configuration, falling back to defaults when
// no config has been loaded (e.g. in tests that execute commands directly).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		ConfigPath:   config.DefaultConfigPath,
		DomainPath:   config.DefaultDomainPath,
		DataDir:      config.DefaultDataDir,
		ModelsDir:    config.DefaultModelsDir,
		ResultsDir:   config.DefaultResultsDir,
		OutputFormat: config.DefaultOutput,
	}
}
