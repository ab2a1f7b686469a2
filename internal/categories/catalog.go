// Package categories holds the income and expense category catalogs and the
// keyword matcher used to suggest a category for a transaction left blank.
package categories

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/financeos/internal/fileutils"
	"fjacquet/financeos/internal/logging"
	"fjacquet/financeos/internal/models"

	"gopkg.in/yaml.v3"
)

// Rule is one category with the keywords that point to it.
type Rule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords,omitempty"`
}

// Catalog lists the categories offered per transaction type, in display order.
type Catalog struct {
	Income  []Rule `yaml:"income"`
	Expense []Rule `yaml:"expense"`
}

// Suggester proposes a category for a transaction.
type Suggester interface {
	Suggest(txType models.TransactionType, description string) string
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		Expense: []Rule{
			{Name: "Food", Keywords: []string{"grocery", "supermarket", "restaurant", "cafe", "lunch", "dinner", "pizza"}},
			{Name: "Transport", Keywords: []string{"uber", "taxi", "bus", "metro", "gas", "fuel", "parking"}},
			{Name: "Health", Keywords: []string{"pharmacy", "doctor", "dentist", "hospital", "medicine"}},
			{Name: "Entertainment", Keywords: []string{"cinema", "movie", "concert", "netflix", "spotify", "game"}},
			{Name: "Services", Keywords: []string{"electricity", "water", "internet", "phone", "rent"}},
			{Name: "Clothing", Keywords: []string{"clothes", "shoes", "shirt", "jacket"}},
			{Name: "Education", Keywords: []string{"school", "course", "tuition", "book"}},
			{Name: models.CategoryOther},
		},
		Income: []Rule{
			{Name: "Salary", Keywords: []string{"salary", "payroll", "wage"}},
			{Name: "Freelance", Keywords: []string{"freelance", "invoice", "client"}},
			{Name: "Investments", Keywords: []string{"dividend", "interest", "stock"}},
			{Name: "Gifts", Keywords: []string{"gift", "present"}},
			{Name: "Sales", Keywords: []string{"sale", "sold"}},
			{Name: models.CategoryOther},
		},
	}
}

// LoadCatalog reads a catalog from a YAML file. A missing file yields the
// default catalog; a type left empty in the file keeps its defaults.
func LoadCatalog(path string, logger logging.Logger) (Catalog, error) {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	defaults := DefaultCatalog()
	if strings.TrimSpace(path) == "" {
		return defaults, nil
	}

	resolved, err := fileutils.FindConfigFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("Categories file not found, using defaults", logging.F(logging.FieldFile, path))
			return defaults, nil
		}
		return Catalog{}, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := fileutils.ReadFile(resolved)
	if err != nil {
		return Catalog{}, fmt.Errorf("error reading categories file: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("error parsing categories file %s: %w", resolved, err)
	}
	if len(catalog.Income) == 0 {
		catalog.Income = defaults.Income
	}
	if len(catalog.Expense) == 0 {
		catalog.Expense = defaults.Expense
	}

	logger.Debug("Loaded categories",
		logging.F(logging.FieldFile, resolved),
		logging.F(logging.FieldCount, len(catalog.Income)+len(catalog.Expense)))
	return catalog, nil
}

// Rules returns the rules for a transaction type.
func (c Catalog) Rules(txType models.TransactionType) []Rule {
	if txType == models.TransactionTypeIncome {
		return c.Income
	}
	return c.Expense
}

// Names returns the category names for a transaction type, in order.
func (c Catalog) Names(txType models.TransactionType) []string {
	rules := c.Rules(txType)
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Name)
	}
	return names
}

// Suggest returns the first category whose keyword appears in description,
// or "Other" when nothing matches.
func (c Catalog) Suggest(txType models.TransactionType, description string) string {
	text := strings.ToUpper(description)
	if strings.TrimSpace(text) != "" {
		for _, rule := range c.Rules(txType) {
			for _, keyword := range rule.Keywords {
				if keyword != "" && strings.Contains(text, strings.ToUpper(keyword)) {
					return rule.Name
				}
			}
		}
	}
	return models.CategoryOther
}
