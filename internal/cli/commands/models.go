package commands

import (
	"fmt"

	"github.com/converse-labs/converse/internal/cli/output"
	"github.com/converse-labs/converse/internal/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// ModelsOptions holds options for the models command.
type ModelsOptions struct {
	Format string // Output format: text, json, markdown
}

// NewModelsCommand creates the models command.
func NewModelsCommand() *cobra.Command {
	opts := &ModelsOptions{}
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List trained model archives",
		Long: `List the model archives in the models directory, newest first.

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List models
  converse models

  # Output as JSON
  converse models --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runModels(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func runModels(cmd *cobra.Command, opts *ModelsOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	archives, err := model.ListArchives(cmdCtx.Cfg.ModelsDir)
	if err != nil {
		return fmt.Errorf("failed to list models in %s: %w", cmdCtx.Cfg.ModelsDir, err)
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(archives)
	}

	if len(archives) == 0 {
		r.Warning(fmt.Sprintf("No trained models found in '%s'. Run 'converse train' first.", cmdCtx.Cfg.ModelsDir))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Model", "Size", "Modified"})

	for _, a := range archives {
		t.AppendRow(table.Row{
			a.Name,
			formatSize(a.Size),
			a.Modified.Format("2006-01-02 15:04:05"),
		})
	}
	t.Render()

	r.Printf("(%d models)\n", len(archives))
	return nil
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
