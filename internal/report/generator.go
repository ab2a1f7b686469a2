// Package report renders portfolio summaries as JSON, YAML or plain text.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"fjacquet/financeos/internal/currencyutils"
	"fjacquet/financeos/internal/logging"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Generator renders summaries in various formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Generator{logger: logger.WithField("component", "ReportGenerator")}
}

// Generate renders s in the given format. It returns an error for an
// unsupported format.
func (g *Generator) Generate(s Summary, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return g.generateJSON(s)
	case FormatYAML, "yml":
		return g.generateYAML(s)
	case FormatText, "":
		return g.generateText(s)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(s Summary) ([]byte, error) {
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}

func (g *Generator) generateYAML(s Summary) ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}

func (g *Generator) generateText(s Summary) ([]byte, error) {
	money := func(d decimal.Decimal) string { return currencyutils.FormatAmount(d, s.Currency) }

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Portfolio: %s (%s)\n\n", s.Portfolio, s.GeneratedOn)

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Income\t%s\t\n", money(s.Totals.Income))
	fmt.Fprintf(tw, "Expense\t%s\t\n", money(s.Totals.Expense))
	fmt.Fprintf(tw, "Balance\t%s\t\n", money(s.Totals.Balance))
	fmt.Fprintf(tw, "Debt\t%s\t\n", money(s.Totals.TotalDebt))
	if err := tw.Flush(); err != nil {
		return nil, err
	}

	buf.WriteString("\nMonthly flow\n")
	tw = tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, m := range s.MonthlyFlow {
		fmt.Fprintf(tw, "%s %s\t%s\t%s\t\n", m.Label, m.Key, money(m.Income), money(m.Expense))
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}

	if len(s.Categories) > 0 {
		buf.WriteString("\nTop expense categories\n")
		tw = tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		for _, c := range s.Categories {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, money(c.Value),
				currencyutils.Percent(c.Value, s.Totals.Expense))
		}
		if err := tw.Flush(); err != nil {
			return nil, err
		}
	}

	if len(s.Debts) > 0 {
		buf.WriteString("\nDebts\n")
		tw = tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		for _, d := range s.Debts {
			status := fmt.Sprintf("%s%% paid, month %d of %d", d.Percent.StringFixed(1), d.CoveredThrough, d.PlanMonths)
			if d.Settled {
				status = "settled"
			}
			fmt.Fprintf(tw, "%s\t%s left\t%s\n", d.Name, money(d.Remaining), status)
		}
		if err := tw.Flush(); err != nil {
			return nil, err
		}
	}

	if len(s.Reminders) > 0 {
		buf.WriteString("\nReminders\n")
		tw = tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		for _, r := range s.Reminders {
			amount := ""
			if r.Amount != nil {
				amount = money(*r.Amount)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Urgency, r.Name, r.DueDate, amount)
		}
		if err := tw.Flush(); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}
