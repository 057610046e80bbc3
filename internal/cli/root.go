// Package cli provides the command-line interface for converse.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/converse-labs/converse/internal/cli/args"
	"github.com/converse-labs/converse/internal/cli/commands"
	"github.com/converse-labs/converse/internal/cli/config"
	"github.com/converse-labs/converse/internal/cli/output"
	"github.com/converse-labs/converse/internal/cli/paths"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "converse",
		Short: "converse - Conversational Assistant CLI",
		Long: `converse is the command-line front end for the converse assistant framework.

It packages assistant configurations into model archives, validates project
files, and hosts interactive sessions against trained models.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			// Load configuration with CLI flag overrides
			var err error
			cfg, err = config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			// Build the logger and store it in context for subcommands
			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			ctx := context.WithValue(cmd.Context(), config.LoggerKey(), logger)
			cmd.SetContext(ctx)

			// Print config file used (if verbose)
			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Conversational Assistant CLI
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "CLI config file (default: ./converse.yaml)")
	rootCmd.PersistentFlags().String("models-dir", "", "Path to the trained models directory")
	rootCmd.PersistentFlags().String("data", "", "Path to the training data directory")
	rootCmd.PersistentFlags().String("results-dir", "", "Path to the results directory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|json)")

	// Register completion for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewTrainCommand())
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewShellCommand())
	rootCmd.AddCommand(commands.NewInteractiveCommand())
	rootCmd.AddCommand(commands.NewTestCommand())
	rootCmd.AddCommand(commands.NewDataCommand())
	rootCmd.AddCommand(commands.NewModelsCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command. A bare trailing model path is rewritten to
// --model before any parsing happens.
func Execute() error {
	args.RewriteOSArgs()

	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		r := output.NewRenderer(os.Stdout, os.Stderr, output.ModeAuto)
		var notFound *paths.NotFoundError
		if errors.As(err, &notFound) {
			r.Error(notFound.Error())
		} else {
			r.Error(fmt.Sprintf("Error: %v", err))
		}
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for converse.

To load completions:

Bash:
  $ source <(converse completion bash)

Zsh:
  $ converse completion zsh > "${fpath[1]}/_converse"

Fish:
  $ converse completion fish | source

PowerShell:
  PS> converse completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}
