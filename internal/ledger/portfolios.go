package ledger

import (
	"fmt"

	"fjacquet/financeos/internal/ledgererror"
	"fjacquet/financeos/internal/logging"
	"fjacquet/financeos/internal/models"
	"fjacquet/financeos/internal/validation"
)

// CreatePortfolio adds an empty portfolio and makes it active.
func (s *Store) CreatePortfolio(name string) (Result, error) {
	trimmed, err := validation.RequireText("name", name)
	if err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.newPortfolio(trimmed)
	portfolios := make([]models.Portfolio, 0, len(s.state.Portfolios)+1)
	portfolios = append(portfolios, s.state.Portfolios...)
	portfolios = append(portfolios, p)

	result := s.replace("create_portfolio", models.AppState{Portfolios: portfolios, ActiveID: p.ID})
	return s.done(result, fmt.Sprintf("Portfolio %q created", p.Name),
		logging.F(logging.FieldPortfolioID, p.ID)), nil
}

// SwitchPortfolio makes the portfolio with id active.
func (s *Store) SwitchPortfolio(id string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.state.Find(id)
	if !ok {
		return Result{}, &ledgererror.NotFoundError{Entity: "portfolio", ID: id}
	}

	result := s.replace("switch_portfolio", models.AppState{Portfolios: s.state.Portfolios, ActiveID: id})
	return s.done(result, fmt.Sprintf("Switched to %q", p.Name),
		logging.F(logging.FieldPortfolioID, id)), nil
}
