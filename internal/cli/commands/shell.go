package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/converse-labs/converse/internal/model"
	"github.com/spf13/cobra"
)

// NewShellCommand creates the shell command.
func NewShellCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell [model]",
		Short: "Talk to your assistant on the command line",
		Long: `Load a trained model and start an interactive session on the terminal.

Messages you type are appended to the session transcript. Type .help inside
the session for available commands.`,
		Example: `  # Start a shell with the latest model
  converse shell

  # Start a shell with a specific model
  converse shell models/20191201-103002.tar.gz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, "shell")
		},
	}

	AddModelFlag(cmd)

	return cmd
}

// NewInteractiveCommand creates the interactive command.
func NewInteractiveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive [model]",
		Short: "Start an interactive session with transcript recording",
		Long: `Like shell, but every exchange is recorded to the results directory so the
transcript can be turned into training stories later.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, "interactive")
		},
	}

	AddModelFlag(cmd)

	return cmd
}

func runShell(cmd *cobra.Command, mode string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	modelPath, err := resolveModel(cmd, cmdCtx, false)
	if err != nil {
		return err
	}

	manifest, err := model.Inspect(modelPath)
	if err != nil {
		return err
	}

	cmdCtx.Logger.Info("session started", "mode", mode, "model", modelPath)

	// Session history lives next to the transcripts.
	if err := os.MkdirAll(cmdCtx.Cfg.ResultsDir, 0750); err != nil {
		return fmt.Errorf("failed to create results directory: %w", err)
	}
	historyFile := filepath.Join(cmdCtx.Cfg.ResultsDir, mode+"_history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "you> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize session: %w", err)
	}
	defer func() { _ = rl.Close() }()

	transcript, err := openTranscript(cmdCtx.Cfg.ResultsDir, mode)
	if err != nil {
		return err
	}
	defer func() { _ = transcript.Close() }()

	r.Printf("Loaded model %s\n", manifest.Name)
	r.Println("Type a message, or .help for commands. .quit to exit.")
	r.Println("")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleSessionCommand(cmd, line, modelPath, manifest); quit {
				break
			}
			continue
		}

		_, _ = fmt.Fprintf(transcript, "user: %s\n", line)
		// Response generation lives in the assistant runtime, not in the CLI.
		reply := fmt.Sprintf("(%s) received: %s", manifest.Name, line)
		_, _ = fmt.Fprintf(transcript, "bot: %s\n", reply)
		r.Println(reply)
	}

	r.Println("")
	r.Success("Session ended.")
	return nil
}

func handleSessionCommand(cmd *cobra.Command, line, modelPath string, manifest *model.Manifest) bool {
	switch strings.ToLower(strings.Fields(line)[0]) {
	case ".quit", ".exit":
		return true

	case ".help":
		printSessionHelp(cmd.OutOrStdout())
		return false

	case ".model":
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (trained %s)\n",
			modelPath, manifest.TrainedAt.Format("2006-01-02 15:04:05"))
		return false

	case ".clear":
		fmt.Print("\033[H\033[2J")
		return false

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", line)
		return false
	}
}

func printSessionHelp(w io.Writer) {
	help := `
Commands:
  .help          Show this help message
  .model         Show the loaded model
  .clear         Clear the screen
  .quit / .exit  End the session
`
	_, _ = fmt.Fprintln(w, help)
}

func openTranscript(resultsDir, mode string) (*os.File, error) {
	path := filepath.Join(resultsDir, mode+"_transcript.log")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript %s: %w", path, err)
	}
	return f, nil
}
