package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/converse-labs/converse/internal/cli/output"
	sharedcfg "github.com/converse-labs/converse/internal/config"
	"github.com/spf13/cobra"
)

const initConfigYML = `language: en

pipeline:
  - name: tokenizer
  - name: featurizer
  - name: intent_classifier

policies:
  - name: memoization
  - name: rule_policy
`

const initDomainYML = `intents:
  - greet
  - goodbye

responses:
  utter_greet:
    - text: "Hey! How can I help you?"
  utter_goodbye:
    - text: "Bye!"
`

const initNLUYML = `nlu:
  - intent: greet
    examples: |
      - hey
      - hello
      - hi
  - intent: goodbye
    examples: |
      - bye
      - goodbye
      - see you
`

const initStoriesYML = `stories:
  - story: greet and say goodbye
    steps:
      - intent: greet
      - action: utter_greet
      - intent: goodbye
      - action: utter_goodbye
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a new assistant project",
		Long: `Create a new assistant project with a starter configuration.

This creates:
  - config.yml with a minimal pipeline and policies
  - domain.yml with example intents and responses
  - data/ with example NLU data and stories`,
		Example: `  # Initialize in the current directory
  converse init

  # Initialize in a new directory
  converse init my-assistant

  # Overwrite existing files
  converse init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cfg := getConfig()
			mode := output.Mode(cfg.OutputFormat)
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

			return runInit(r, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing project files")

	return cmd
}

func runInit(r *output.Renderer, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, sharedcfg.DefaultConfigPath)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", sharedcfg.DefaultConfigPath)
	}

	nluPath := filepath.Join(sharedcfg.DefaultDataPath, "nlu.yml")
	storiesPath := filepath.Join(sharedcfg.DefaultDataPath, "stories.yml")
	files := []struct {
		name    string
		content string
	}{
		{sharedcfg.DefaultConfigPath, initConfigYML},
		{sharedcfg.DefaultDomainPath, initDomainYML},
		{nluPath, initNLUYML},
		{storiesPath, initStoriesYML},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(f.content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		r.StatusLine(f.name, "success", "")
	}

	r.Println("")
	r.Success("Assistant project initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Review config.yml and domain.yml")
	r.Println("  2. Add training data to data/")
	r.Println("  3. Run 'converse train' to package a model")
	r.Println("  4. Run 'converse shell' to talk to your assistant")

	return nil
}
