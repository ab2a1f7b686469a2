package root_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/financeos/cmd/root"
	"fjacquet/financeos/internal/config"
	"fjacquet/financeos/internal/container"
	"fjacquet/financeos/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	root.Init()
	os.Exit(m.Run())
}

// isolate runs the test from an empty directory with no FINANCEOS_ overrides.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range []string{"FINANCEOS_STORAGE_BACKEND", "FINANCEOS_LOG_LEVEL", "FINANCEOS_LOG_FORMAT", "FINANCEOS_STORAGE_DIRECTORY"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	dir := t.TempDir()
	original, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(original)
		resetFlags()
	})
	return dir
}

func resetFlags() {
	root.Cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "financeos", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "personal finance ledger")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRunE)
	assert.True(t, root.Cmd.SilenceUsage)
}

func TestRootCommand_Flags(t *testing.T) {
	configFlag := root.Cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)

	for _, name := range []string{"log-level", "log-format", "backend", "data-dir"} {
		assert.NotNil(t, root.Cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestGetContainer_NotInitialized(t *testing.T) {
	root.SetContainer(nil)
	_, err := root.GetContainer()
	assert.EqualError(t, err, "application is not initialized")
}

func TestSetContainer(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Backend = "memory"
	cfg.Categories.File = ""
	logger := logging.NewMockLogger()
	c, err := container.NewContainerWithOptions(cfg, container.Options{Logger: logger})
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	root.SetContainer(c)
	defer root.SetContainer(nil)

	got, err := root.GetContainer()
	require.NoError(t, err)
	assert.Same(t, c, got)
	assert.Equal(t, logger, root.Log)
	assert.Equal(t, "MXN", root.Currency(c))
}

func TestRootCommand_BuildsAndClosesContainer(t *testing.T) {
	dir := isolate(t)
	root.SetContainer(nil)

	var backend, directory, portfolio string
	probe := &cobra.Command{
		Use: "probe",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			backend = c.GetConfig().Storage.Backend
			directory = c.GetConfig().Storage.Directory
			portfolio = c.GetLedger().ActivePortfolio().Name
			return nil
		},
	}
	root.Cmd.AddCommand(probe)
	defer root.Cmd.RemoveCommand(probe)

	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetArgs([]string{"probe", "--backend", "file", "--data-dir", filepath.Join(dir, "data"), "--log-level", "error"})
	require.NoError(t, root.Cmd.Execute())

	assert.Equal(t, "file", backend)
	assert.Equal(t, filepath.Join(dir, "data"), directory)
	assert.Equal(t, "Main Portfolio", portfolio)

	_, err := root.GetContainer()
	assert.Error(t, err, "the container is closed after the command")
}

func TestLoadConfig_FlagOverridesAreValidated(t *testing.T) {
	isolate(t)

	cmd := &cobra.Command{Use: "probe"}
	cmd.Flags().AddFlagSet(root.Cmd.PersistentFlags())
	require.NoError(t, cmd.Flags().Set("backend", "redis"))

	_, err := root.LoadConfig(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid storage backend")
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ledger:\n  currency: EUR\nstorage:\n  backend: memory\n"), 0600))

	cmd := &cobra.Command{Use: "probe"}
	cmd.Flags().AddFlagSet(root.Cmd.PersistentFlags())
	require.NoError(t, cmd.Flags().Set("config", path))

	cfg, err := root.LoadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Ledger.Currency)
	assert.Equal(t, "memory", cfg.Storage.Backend)
}
