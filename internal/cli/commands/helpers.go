package commands

import (
	"fmt"
	"os"

	"github.com/converse-labs/converse/internal/cli/paths"
	"github.com/converse-labs/converse/internal/model"
	"github.com/spf13/cobra"
)

// resolveModel validates the --model flag and resolves directories to the
// newest archive inside them. With noneIsValid set, a missing model yields
// an empty path instead of an error.
func resolveModel(cmd *cobra.Command, cmdCtx *CommandContext, noneIsValid bool) (string, error) {
	modelFlag, _ := cmd.Flags().GetString("model")

	modelPath, err := paths.Validate(cmdCtx.Renderer, modelFlag, "model", cmdCtx.Cfg.ModelsDir, noneIsValid)
	if err != nil {
		return "", err
	}
	if modelPath == "" {
		return "", nil
	}

	info, err := os.Stat(modelPath)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return modelPath, nil
	}

	archives, err := model.ListArchives(modelPath)
	if err != nil {
		return "", fmt.Errorf("failed to list models in %s: %w", modelPath, err)
	}
	if len(archives) == 0 {
		if noneIsValid {
			return "", nil
		}
		return "", &paths.NotFoundError{Current: modelPath, Parameter: "model"}
	}
	return archives[0].Path, nil
}

// printManifest writes a short model summary to the renderer.
func printManifest(cmdCtx *CommandContext, path string, m *model.Manifest) {
	r := cmdCtx.Renderer
	styles := r.Styles()
	r.Printf("Model: %s\n", styles.Bold.Render(m.Name))
	r.Printf("  Path:       %s\n", path)
	r.Printf("  Trained at: %s\n", m.TrainedAt.Format("2006-01-02 15:04:05"))
	r.Printf("  Contents:   %d files\n", len(m.Files))
}
