package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	cliconfig "github.com/converse-labs/converse/internal/cli/config"
	"github.com/converse-labs/converse/internal/cli/paths"
	"github.com/converse-labs/converse/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYML = `language: en
pipeline:
  - name: tokenizer
policies:
  - name: memoization
`

// setupTestProject creates a project with default file names in a temp
// directory and makes it the working directory.
func setupTestProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	cliconfig.ResetConfig()

	require.NoError(t, os.WriteFile("config.yml", []byte(validConfigYML), 0644))
	require.NoError(t, os.WriteFile("domain.yml", []byte("intents:\n  - greet\n"), 0644))
	require.NoError(t, os.MkdirAll("data", 0750))
	require.NoError(t, os.WriteFile(filepath.Join("data", "nlu.yml"), []byte("nlu: []\n"), 0644))

	return tmpDir
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestTrainCommand(t *testing.T) {
	setupTestProject(t)

	out, _, err := executeCommand(t, NewTrainCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "trained and saved")

	archives, err := model.ListArchives("models")
	require.NoError(t, err)
	require.Len(t, archives, 1)

	manifest, err := model.Inspect(archives[0].Path)
	require.NoError(t, err)
	assert.Contains(t, manifest.Files, "config.yml")
	assert.Contains(t, manifest.Files, "domain.yml")
	assert.Contains(t, manifest.Files, "nlu.yml")
}

func TestTrainCommand_Prefix(t *testing.T) {
	setupTestProject(t)

	_, _, err := executeCommand(t, NewTrainCommand(), "--prefix", "core-")
	require.NoError(t, err)

	archives, err := model.ListArchives("models")
	require.NoError(t, err)
	require.Len(t, archives, 1)
	assert.Regexp(t, `^core-\d{8}-\d{6}\.tar\.gz$`, archives[0].Name)
}

func TestTrainCommand_ExplicitArchivePath(t *testing.T) {
	setupTestProject(t)

	_, _, err := executeCommand(t, NewTrainCommand(), "--out", "out/model.tar.gz")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join("out", "model.tar.gz"))
	assert.NoError(t, err)
}

func TestTrainCommand_MissingConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	cliconfig.ResetConfig()

	_, _, err := executeCommand(t, NewTrainCommand())
	require.Error(t, err)

	var notFound *paths.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "--config")
}

func TestTrainCommand_InvalidConfig(t *testing.T) {
	setupTestProject(t)
	require.NoError(t, os.WriteFile("config.yml", []byte("language: en\n"), 0644))

	_, _, err := executeCommand(t, NewTrainCommand())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mandatory keys")
	assert.Contains(t, err.Error(), "policies")
	assert.Contains(t, err.Error(), "pipeline")
}

func TestRunCommand(t *testing.T) {
	setupTestProject(t)

	_, _, err := executeCommand(t, NewTrainCommand())
	require.NoError(t, err)

	out, _, err := executeCommand(t, NewRunCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "Model loaded.")
	assert.Contains(t, out, "Trained at:")
}

func TestRunCommand_ExplicitModel(t *testing.T) {
	setupTestProject(t)

	_, _, err := executeCommand(t, NewTrainCommand(), "--out", "out/model.tar.gz")
	require.NoError(t, err)

	out, _, err := executeCommand(t, NewRunCommand(), "--model", filepath.Join("out", "model.tar.gz"))
	require.NoError(t, err)
	assert.Contains(t, out, "Model loaded.")
}

func TestRunCommand_NoModel(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	cliconfig.ResetConfig()

	_, _, err := executeCommand(t, NewRunCommand())
	require.Error(t, err)

	var notFound *paths.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestTestCommand(t *testing.T) {
	setupTestProject(t)

	_, _, err := executeCommand(t, NewTrainCommand())
	require.NoError(t, err)

	out, _, err := executeCommand(t, NewTestCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "All checks passed.")
}

func TestTestCommand_NoModelIsNotFatal(t *testing.T) {
	setupTestProject(t)

	out, _, err := executeCommand(t, NewTestCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "no trained model found")
}

func TestTestCommand_InvalidConfigFails(t *testing.T) {
	setupTestProject(t)
	require.NoError(t, os.WriteFile("config.yml", []byte("language: en\n"), 0644))

	_, _, err := executeCommand(t, NewTestCommand())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check(s) failed")
}

func TestDataValidateCommand(t *testing.T) {
	setupTestProject(t)

	out, _, err := executeCommand(t, NewDataCommand(), "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid.")
	for _, key := range []string{"policies", "language", "pipeline"} {
		assert.Contains(t, out, key)
	}
}

func TestDataValidateCommand_MissingKeys(t *testing.T) {
	setupTestProject(t)
	require.NoError(t, os.WriteFile("config.yml", []byte("language: en\npipeline:\n"), 0644))

	out, _, err := executeCommand(t, NewDataCommand(), "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing 2 mandatory key(s)")
	assert.Contains(t, out, "missing or null")
}

func TestModelsCommand(t *testing.T) {
	setupTestProject(t)

	_, _, err := executeCommand(t, NewTrainCommand())
	require.NoError(t, err)

	out, _, err := executeCommand(t, NewModelsCommand())
	require.NoError(t, err)
	assert.Contains(t, out, ".tar.gz")
	assert.Contains(t, out, "(1 models)")
}

func TestModelsCommand_Empty(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	cliconfig.ResetConfig()

	out, _, err := executeCommand(t, NewModelsCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "No trained models found")
}

func TestModelsCommand_JSON(t *testing.T) {
	setupTestProject(t)

	_, _, err := executeCommand(t, NewTrainCommand())
	require.NoError(t, err)

	out, _, err := executeCommand(t, NewModelsCommand(), "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name"`)
	assert.Contains(t, out, `"size"`)
}

func TestInitCommand(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	cliconfig.ResetConfig()

	out, _, err := executeCommand(t, NewInitCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "initialized")

	for _, name := range []string{"config.yml", "domain.yml",
		filepath.Join("data", "nlu.yml"), filepath.Join("data", "stories.yml")} {
		_, err := os.Stat(name)
		assert.NoError(t, err, "expected %s to exist", name)
	}

	// The scaffolded config must pass its own validation
	valid, err := cliconfig.IsValidConfig("config.yml",
		[]string{"language", "pipeline", "policies"})
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	cliconfig.ResetConfig()

	require.NoError(t, os.WriteFile("config.yml", []byte("language: en\n"), 0644))

	_, _, err := executeCommand(t, NewInitCommand())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, _, err = executeCommand(t, NewInitCommand(), "--force")
	assert.NoError(t, err)
}
