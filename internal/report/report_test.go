package report

import (
	"encoding/json"
	"testing"
	"time"

	"fjacquet/financeos/internal/amortization"
	"fjacquet/financeos/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var now = time.Date(2024, time.April, 20, 9, 0, 0, 0, time.UTC)

func samplePortfolio(t *testing.T) models.Portfolio {
	t.Helper()
	plan, err := amortization.GenerateSchedule(decimal.NewFromInt(1200), decimal.Zero, decimal.NewFromInt(100))
	require.NoError(t, err)

	return models.Portfolio{
		ID:   "p-1",
		Name: "Household",
		Transactions: []models.Transaction{
			{ID: "t-3", Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(300), Category: "Debts", Date: "2024-04-02"},
			{ID: "t-2", Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(1200), Category: "Services", Date: "2024-04-01"},
			{ID: "t-1", Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(5000), Category: "Salary", Date: "2024-04-01"},
		},
		Debts: []models.Debt{{
			ID: "d-1", Name: "Car", Total: decimal.NewFromInt(1200), Payment: decimal.NewFromInt(100),
			Remaining: decimal.NewFromInt(900), Paid: decimal.NewFromInt(300), Plan: plan,
		}},
	}
}

func sampleReminders() []models.UpcomingPayment {
	amount := decimal.NewFromInt(45)
	return []models.UpcomingPayment{
		{ID: "r-1", Name: "Phone", DueDate: "2024-04-22", ReminderDays: 3, Amount: &amount},
		{ID: "r-2", Name: "Insurance", DueDate: "2024-04-10", ReminderDays: 3},
		{ID: "r-3", Name: "Gym", DueDate: "2024-05-30", ReminderDays: 3},
	}
}

func TestBuildSummary(t *testing.T) {
	s := BuildSummary(samplePortfolio(t), sampleReminders(), now, "USD")

	assert.Equal(t, "Household", s.Portfolio)
	assert.Equal(t, "2024-04-20", s.GeneratedOn)
	assert.True(t, s.Totals.Balance.Equal(decimal.NewFromInt(3500)))
	assert.True(t, s.Totals.TotalDebt.Equal(decimal.NewFromInt(900)))
	assert.Len(t, s.MonthlyFlow, 6)
	require.Len(t, s.Categories, 2)
	assert.Equal(t, "Services", s.Categories[0].Name)

	require.Len(t, s.Debts, 1)
	d := s.Debts[0]
	assert.True(t, d.Percent.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, 3, d.CoveredThrough)
	assert.Equal(t, 12, d.PlanMonths)
	assert.False(t, d.Settled)

	require.Len(t, s.Reminders, 2)
	assert.Equal(t, "Insurance", s.Reminders[0].Name)
	assert.Equal(t, "overdue", string(s.Reminders[0].Urgency))
	assert.Equal(t, "Phone", s.Reminders[1].Name)
	assert.Equal(t, 2, s.Reminders[1].DaysUntil)
}

func TestGenerator_JSON(t *testing.T) {
	g := NewGenerator(nil)
	out, err := g.Generate(BuildSummary(samplePortfolio(t), nil, now, "USD"), "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Household", decoded["portfolio"])
	totals, ok := decoded["totals"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "5000", totals["income"])
	assert.Empty(t, decoded["reminders"])
}

func TestGenerator_YAML(t *testing.T) {
	g := NewGenerator(nil)
	out, err := g.Generate(BuildSummary(samplePortfolio(t), sampleReminders(), now, "USD"), "YAML")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "Household", decoded["portfolio"])
	assert.Contains(t, string(out), "monthly_flow:")
	assert.Contains(t, string(out), "urgency: overdue")
}

func TestGenerator_Text(t *testing.T) {
	g := NewGenerator(nil)
	out, err := g.Generate(BuildSummary(samplePortfolio(t), sampleReminders(), now, "USD"), "text")
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "Portfolio: Household (2024-04-20)")
	assert.Contains(t, text, "$5,000.00")
	assert.Contains(t, text, "$3,500.00")
	assert.Contains(t, text, "Top expense categories")
	assert.Contains(t, text, "80.0%")
	assert.Contains(t, text, "25.0% paid, month 3 of 12")
	assert.Contains(t, text, "Insurance")
	assert.Contains(t, text, "$45.00")
}

func TestGenerator_UnsupportedFormat(t *testing.T) {
	_, err := NewGenerator(nil).Generate(Summary{}, "xml")
	assert.EqualError(t, err, "unsupported report format: xml")
}

func TestGenerator_EmptySummary(t *testing.T) {
	out, err := NewGenerator(nil).Generate(BuildSummary(models.Portfolio{Name: "Empty"}, nil, now, ""), "text")
	require.NoError(t, err)
	assert.Contains(t, string(out), "Portfolio: Empty")
	assert.NotContains(t, string(out), "Debts")
}
