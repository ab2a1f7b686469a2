package ledger

import (
	"fmt"
	"strings"

	"fjacquet/financeos/internal/ledgererror"
	"fjacquet/financeos/internal/logging"
	"fjacquet/financeos/internal/models"
	"fjacquet/financeos/internal/validation"
)

// AddTransaction validates form and prepends the new transaction to the
// active portfolio. A blank type means expense, a blank date means today and
// a blank category is suggested from the description.
func (s *Store) AddTransaction(form models.TransactionForm) (Result, error) {
	tx, err := s.buildTransaction(form)
	if err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.updatePortfolio("add_transaction", func(p models.Portfolio) models.Portfolio {
		p.Transactions = append([]models.Transaction{tx}, p.Transactions...)
		return p
	})
	return s.done(result, "Transaction added",
		logging.F(logging.FieldTransactionID, tx.ID),
		logging.F(logging.FieldCategory, tx.Category)), nil
}

// ImportTransactions adds a batch of forms in one state transition. Forms are
// expected newest first, as written by the exporter, and keep that order at
// the top of the list. Nothing is added when any form is invalid; the error
// names the 1-based row.
func (s *Store) ImportTransactions(forms []models.TransactionForm) (Result, error) {
	imported := make([]models.Transaction, 0, len(forms))
	for i, form := range forms {
		tx, err := s.buildTransaction(form)
		if err != nil {
			return Result{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		imported = append(imported, tx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.updatePortfolio("import_transactions", func(p models.Portfolio) models.Portfolio {
		p.Transactions = append(imported, p.Transactions...)
		return p
	})
	return s.done(result, fmt.Sprintf("Imported %d transactions", len(imported)),
		logging.F(logging.FieldCount, len(imported))), nil
}

func (s *Store) buildTransaction(form models.TransactionForm) (models.Transaction, error) {
	txType := strings.ToLower(strings.TrimSpace(form.Type))
	if txType == "" {
		txType = string(models.TransactionTypeExpense)
	}
	if !models.IsValidTransactionType(txType) {
		return models.Transaction{}, ledgererror.Validation("type", "must be income or expense")
	}

	amount, err := validation.PositiveAmount("amount", form.Amount)
	if err != nil {
		return models.Transaction{}, err
	}

	date, err := validation.CalendarDay("date", form.Date, s.today())
	if err != nil {
		return models.Transaction{}, err
	}

	description := strings.TrimSpace(form.Description)
	category := strings.TrimSpace(form.Category)
	if category == "" {
		category = s.suggester.Suggest(models.TransactionType(txType), description)
	}

	return models.Transaction{
		ID:          s.ids.NewID(),
		Type:        models.TransactionType(txType),
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}, nil
}

// DeleteTransaction removes a transaction from the active portfolio. An
// unknown id leaves the list untouched.
func (s *Store) DeleteTransaction(id string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.updatePortfolio("delete_transaction", func(p models.Portfolio) models.Portfolio {
		kept := make([]models.Transaction, 0, len(p.Transactions))
		for _, t := range p.Transactions {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		p.Transactions = kept
		return p
	})
	return s.done(result, "Transaction deleted", logging.F(logging.FieldTransactionID, id)), nil
}
