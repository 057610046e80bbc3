package commands

import (
	"github.com/converse-labs/converse/internal/cli/paths"
	"github.com/converse-labs/converse/internal/model"
	"github.com/spf13/cobra"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	Endpoints string
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}
	cmd := &cobra.Command{
		Use:   "run [model]",
		Short: "Load a trained model",
		Long: `Load a trained model archive and report its contents.

The model may be given as a trailing positional path or via --model. If a
directory is given, the newest archive in it is used.`,
		Example: `  # Run with the latest model from the models directory
  converse run

  # Run a specific model archive
  converse run models/20191201-103002.tar.gz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRun(cmd, opts)
		},
	}

	AddModelFlag(cmd)
	AddEndpointsFlag(cmd)

	return cmd
}

func runRun(cmd *cobra.Command, opts *RunOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	modelPath, err := resolveModel(cmd, cmdCtx, false)
	if err != nil {
		return err
	}

	// Endpoints are optional: warn-and-continue when absent.
	endpointsFlag, _ := cmd.Flags().GetString("endpoints")
	endpointsPath, err := paths.Validate(r, endpointsFlag, "endpoints", cmdCtx.Cfg.EndpointsPath, true)
	if err != nil {
		return err
	}
	opts.Endpoints = endpointsPath

	manifest, err := model.Inspect(modelPath)
	if err != nil {
		return err
	}

	cmdCtx.Logger.Info("model loaded", "model", modelPath, "endpoints", endpointsPath)

	printManifest(cmdCtx, modelPath, manifest)
	if endpointsPath != "" {
		r.Printf("  Endpoints:  %s\n", endpointsPath)
	}
	r.Success("Model loaded.")
	return nil
}
