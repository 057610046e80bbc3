package commands

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	cliconfig "github.com/converse-labs/converse/internal/cli/config"
	"github.com/converse-labs/converse/internal/cli/paths"
	sharedcfg "github.com/converse-labs/converse/internal/config"
	"github.com/converse-labs/converse/internal/model"
	"github.com/spf13/cobra"
)

// TrainOptions holds options for the train command.
type TrainOptions struct {
	Out    string // Output directory or archive path
	Prefix string // Prefix for the generated archive name
}

// NewTrainCommand creates the train command.
func NewTrainCommand() *cobra.Command {
	opts := &TrainOptions{}
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Package the assistant configuration into a model archive",
		Long: `Validate the pipeline configuration, domain and training data, then bundle
them into a timestamped model archive under the models directory.

The archive name follows the <prefix><YYYYMMDD-HHMMSS>.tar.gz convention.
If --out already names a .tar.gz file, that exact path is used.`,
		Example: `  # Train with project defaults
  converse train

  # Use a custom pipeline configuration
  converse train -c pipelines/config.yml

  # Name the archive core-<timestamp>.tar.gz
  converse train --prefix core-`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrain(cmd, opts)
		},
	}

	AddConfigFlag(cmd)
	AddDomainFlag(cmd)
	cmd.Flags().String("data", sharedcfg.DefaultDataPath, "Directory containing training data.")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Directory for the trained model (default: models dir)")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "Prefix for the generated archive name")

	return cmd
}

func runTrain(cmd *cobra.Command, opts *TrainOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	configFlag, _ := cmd.Flags().GetString("config")
	domainFlag, _ := cmd.Flags().GetString("domain")
	dataFlag, _ := cmd.Flags().GetString("data")

	configPath, err := paths.Validate(r, configFlag, "config", cmdCtx.Cfg.ConfigPath, false)
	if err != nil {
		return err
	}

	valid, err := cliconfig.IsValidConfig(configPath, sharedcfg.MandatoryKeys)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", configPath, err)
	}
	if !valid {
		missing, _ := cliconfig.MissingKeys(configPath, sharedcfg.MandatoryKeys)
		return fmt.Errorf("config %s is missing mandatory keys: %s",
			configPath, strings.Join(missing, ", "))
	}

	domainPath, err := paths.Validate(r, domainFlag, "domain", cmdCtx.Cfg.DomainPath, false)
	if err != nil {
		return err
	}

	dataDir, err := paths.Validate(r, dataFlag, "data", cmdCtx.Cfg.DataDir, false)
	if err != nil {
		return err
	}

	files, err := collectTrainingFiles(configPath, domainPath, dataDir)
	if err != nil {
		return err
	}

	out := opts.Out
	if out == "" {
		out = cmdCtx.Cfg.ModelsDir
	}
	trainedAt := time.Now()
	outPath := model.CreateOutputPathAt(out, opts.Prefix, trainedAt)

	cmdCtx.Logger.Info("packaging model",
		"config", configPath, "domain", domainPath, "data", dataDir, "out", outPath)

	if err := model.Package(outPath, files, trainedAt); err != nil {
		return err
	}

	r.Success(fmt.Sprintf("Your model is trained and saved at '%s'.", outPath))
	return nil
}

// collectTrainingFiles gathers the config, domain and all data files that
// make up a model archive.
func collectTrainingFiles(configPath, domainPath, dataDir string) ([]string, error) {
	files := []string{configPath, domainPath}

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".yml", ".yaml", ".md", ".json":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan training data in %s: %w", dataDir, err)
	}

	return files, nil
}
