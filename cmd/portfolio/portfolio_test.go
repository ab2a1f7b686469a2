package portfolio_test

import (
	"bytes"
	"testing"
	"time"

	"fjacquet/financeos/cmd/portfolio"
	"fjacquet/financeos/cmd/root"
	"fjacquet/financeos/internal/config"
	"fjacquet/financeos/internal/container"
	"fjacquet/financeos/internal/idgen"
	"fjacquet/financeos/internal/ledgererror"
	"fjacquet/financeos/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContainer(t *testing.T) *container.Container {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Backend = "memory"
	cfg.Categories.File = ""
	c, err := container.NewContainerWithOptions(cfg, container.Options{
		Logger: logging.NewMockLogger(),
		IDs:    idgen.NewSequence("id"),
		Clock:  func() time.Time { return time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	root.SetContainer(c)
	t.Cleanup(func() {
		root.SetContainer(nil)
		_ = c.Close()
	})
	return c
}

func run(args ...string) (string, error) {
	cmd := portfolio.NewCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPortfolioCommand_Metadata(t *testing.T) {
	assert.Equal(t, "portfolio", portfolio.Cmd.Use)
	names := []string{}
	for _, sub := range portfolio.Cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"create", "switch", "list"}, names)
}

func TestPortfolioCommand_CreateSwitchList(t *testing.T) {
	c := newContainer(t)

	out, err := run("create", "Side", "Business")
	require.NoError(t, err)
	assert.Equal(t, "Portfolio \"Side Business\" created\n", out)
	assert.Equal(t, "Side Business", c.GetLedger().ActivePortfolio().Name)

	out, err = run("switch", "id-1")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, "id-1", c.GetLedger().ActivePortfolio().ID)

	out, err = run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "Main Portfolio")
	assert.Contains(t, out, "Side Business")
	assert.Contains(t, out, "*  id-1")
}

func TestPortfolioCommand_Errors(t *testing.T) {
	newContainer(t)

	_, err := run("switch", "missing")
	require.Error(t, err)
	assert.True(t, ledgererror.IsNotFound(err))

	_, err = run("create", "   ")
	require.Error(t, err)
	assert.True(t, ledgererror.IsValidation(err))
}

func TestPortfolioCommand_RequiresContainer(t *testing.T) {
	root.SetContainer(nil)
	_, err := run("list")
	assert.EqualError(t, err, "application is not initialized")
}
