package ledger

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/financeos/internal/amortization"
	"fjacquet/financeos/internal/dateutils"
	"fjacquet/financeos/internal/ledgererror"
	"fjacquet/financeos/internal/logging"
	"fjacquet/financeos/internal/models"
	"fjacquet/financeos/internal/validation"

	"github.com/shopspring/decimal"
)

// AddDebt validates form, computes the payoff plan and appends the debt to
// the active portfolio. A plan rejection creates nothing.
func (s *Store) AddDebt(form models.DebtForm) (Result, error) {
	name, err := validation.RequireText("name", form.Name)
	if err != nil {
		return Result{}, err
	}
	total, err := validation.PositiveAmount("total", form.Total)
	if err != nil {
		return Result{}, err
	}
	payment, err := validation.PositiveAmount("payment", form.Payment)
	if err != nil {
		return Result{}, err
	}
	interest, err := validation.NonNegativeAmount("interest", form.Interest, decimal.Zero)
	if err != nil {
		return Result{}, err
	}
	startDate, err := validation.CalendarDay("startDate", form.StartDate, s.today())
	if err != nil {
		return Result{}, err
	}

	plan, err := amortization.GenerateSchedule(total, interest, payment)
	if err != nil {
		s.logger.WithError(err).Debug("Debt rejected", logging.F(logging.FieldReason, err.Error()))
		return Result{}, err
	}

	debt := models.Debt{
		ID:        s.ids.NewID(),
		Name:      name,
		Total:     total,
		Interest:  interest,
		Payment:   payment,
		StartDate: startDate,
		Notes:     strings.TrimSpace(form.Notes),
		Remaining: total,
		Paid:      decimal.Zero,
		Plan:      plan,
		Payments:  []models.PaymentRecord{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.updatePortfolio("add_debt", func(p models.Portfolio) models.Portfolio {
		p.Debts = append(p.Debts, debt)
		return p
	})
	return s.done(result, "Debt added",
		logging.F(logging.FieldDebtID, debt.ID),
		logging.F(logging.FieldCount, len(plan))), nil
}

// MakePayment applies amount to a debt of the active portfolio and records
// the same amount as an expense transaction, in one state transition.
// Amounts above the remaining balance are clipped to it.
func (s *Store) MakePayment(debtID, amount string) (Result, error) {
	requested, err := validation.PositiveAmount("amount", amount)
	if err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	active, _ := s.state.Active()
	debt, ok := active.FindDebt(debtID)
	if !ok {
		return Result{}, &ledgererror.NotFoundError{Entity: "debt", ID: debtID}
	}
	if debt.IsSettled() {
		return Result{}, &ledgererror.ValidationError{
			Field:  "amount",
			Reason: ledgererror.ErrDebtSettled.Error(),
			Err:    ledgererror.ErrDebtSettled,
		}
	}

	paidDebt, tx := applyPayment(debt, requested, s.today(), s.ids.NewID(), s.debtCategory)

	result := s.updatePortfolio("make_payment", func(p models.Portfolio) models.Portfolio {
		for i := range p.Debts {
			if p.Debts[i].ID == debtID {
				p.Debts[i] = paidDebt
			}
		}
		p.Transactions = append([]models.Transaction{tx}, p.Transactions...)
		return p
	})
	return s.done(result, "Payment recorded",
		logging.F(logging.FieldDebtID, debtID),
		logging.F(logging.FieldAmount, tx.Amount.String())), nil
}

// applyPayment is the pure payment transition: it returns the updated debt
// and the expense transaction that mirrors the payment. The debt passed in
// is not modified.
func applyPayment(debt models.Debt, amount decimal.Decimal, today time.Time, txID, category string) (models.Debt, models.Transaction) {
	pay := decimal.Min(amount, debt.Remaining)
	day := dateutils.ToISODate(today)

	next := debt.Clone()
	next.Remaining = debt.Remaining.Sub(pay)
	next.Paid = debt.Paid.Add(pay)
	next.Payments = append(next.Payments, models.PaymentRecord{Date: day, Amount: pay})

	tx := models.Transaction{
		ID:          txID,
		Type:        models.TransactionTypeExpense,
		Amount:      pay,
		Category:    category,
		Description: fmt.Sprintf("Payment: %s", debt.Name),
		Date:        day,
	}
	return next, tx
}

// DeleteDebt removes a debt from the active portfolio. Transactions created
// by its payments stay in the ledger.
func (s *Store) DeleteDebt(id string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.updatePortfolio("delete_debt", func(p models.Portfolio) models.Portfolio {
		kept := make([]models.Debt, 0, len(p.Debts))
		for _, d := range p.Debts {
			if d.ID != id {
				kept = append(kept, d)
			}
		}
		p.Debts = kept
		return p
	})
	return s.done(result, "Debt deleted", logging.F(logging.FieldDebtID, id)), nil
}

// Debt returns a copy of a debt of the active portfolio.
func (s *Store) Debt(id string) (models.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, _ := s.state.Active()
	debt, ok := active.FindDebt(id)
	if !ok {
		return models.Debt{}, &ledgererror.NotFoundError{Entity: "debt", ID: id}
	}
	return debt.Clone(), nil
}
