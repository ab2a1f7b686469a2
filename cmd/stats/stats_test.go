package stats_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/financeos/cmd/root"
	"fjacquet/financeos/cmd/stats"
	"fjacquet/financeos/internal/config"
	"fjacquet/financeos/internal/container"
	"fjacquet/financeos/internal/idgen"
	"fjacquet/financeos/internal/logging"
	"fjacquet/financeos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newContainer(t *testing.T) *container.Container {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Backend = "memory"
	cfg.Categories.File = ""
	cfg.Ledger.Currency = "USD"
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

	ledger := c.GetLedger()
	for _, form := range []models.TransactionForm{
		{Type: "income", Amount: "3000", Category: "Salary", Date: "2024-03-01"},
		{Amount: "200", Category: "Food", Date: "2024-03-05"},
		{Amount: "50", Category: "Transport", Date: "2024-02-10"},
	} {
		_, err := ledger.AddTransaction(form)
		require.NoError(t, err)
	}
	_, err = ledger.AddDebt(models.DebtForm{Name: "Laptop", Total: "1200", Payment: "400"})
	require.NoError(t, err)
	_, err = c.GetReminders().Add(models.ReminderForm{Name: "Rent", DueDate: "2024-03-16", Amount: "800"})
	require.NoError(t, err)
	return c
}

func run(args ...string) (string, error) {
	cmd := stats.NewCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStatsCommand_Text(t *testing.T) {
	newContainer(t)

	out, err := run()
	require.NoError(t, err)
	assert.Contains(t, out, "Portfolio: Main Portfolio (2024-03-15)")
	assert.Contains(t, out, "$3,000.00")
	assert.Contains(t, out, "$2,750.00")
	assert.Contains(t, out, "$1,200.00")
	assert.Contains(t, out, "Top expense categories")
	assert.Contains(t, out, "Laptop")
	assert.Contains(t, out, "Rent")
}

func TestStatsCommand_JSON(t *testing.T) {
	newContainer(t)

	out, err := run("--format", "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Main Portfolio", decoded["portfolio"])
	assert.Equal(t, "USD", decoded["currency"])
	assert.Len(t, decoded["monthlyFlow"], 6)
	assert.Len(t, decoded["debts"], 1)
	assert.Len(t, decoded["reminders"], 1)
}

func TestStatsCommand_YAMLToFile(t *testing.T) {
	newContainer(t)
	path := filepath.Join(t.TempDir(), "reports", "summary.yaml")

	out, err := run("-f", "yaml", "-o", path)
	require.NoError(t, err)
	assert.Equal(t, "Report written to "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "Main Portfolio", decoded["portfolio"])
}

func TestStatsCommand_UnsupportedFormat(t *testing.T) {
	newContainer(t)

	_, err := run("--format", "xml")
	assert.EqualError(t, err, "unsupported report format: xml")
}
