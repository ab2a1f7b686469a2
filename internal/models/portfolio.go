package models

// Portfolio is an isolated ledger of transactions and debts.
// Transactions are stored newest first.
type Portfolio struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	CreatedAt    string        `json:"createdAt"`
	Transactions []Transaction `json:"transactions"`
	Debts        []Debt        `json:"debts"`
}

// FindDebt returns the debt with the given id.
func (p Portfolio) FindDebt(id string) (Debt, bool) {
	for _, d := range p.Debts {
		if d.ID == id {
			return d, true
		}
	}
	return Debt{}, false
}

// FindTransaction returns the transaction with the given id.
func (p Portfolio) FindTransaction(id string) (Transaction, bool) {
	for _, t := range p.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// Clone returns a deep copy of the portfolio.
func (p Portfolio) Clone() Portfolio {
	c := p
	c.Transactions = append([]Transaction{}, p.Transactions...)
	c.Debts = make([]Debt, len(p.Debts))
	for i, d := range p.Debts {
		c.Debts[i] = d.Clone()
	}
	return c
}

// AppState is the whole ledger snapshot: every portfolio plus the active one.
type AppState struct {
	Portfolios []Portfolio `json:"portfolios"`
	ActiveID   string      `json:"activeId"`
}

// Find returns the portfolio with the given id.
func (s AppState) Find(id string) (Portfolio, bool) {
	for _, p := range s.Portfolios {
		if p.ID == id {
			return p, true
		}
	}
	return Portfolio{}, false
}

// Active returns the active portfolio, falling back to the first one.
// The boolean is false only when there are no portfolios at all.
func (s AppState) Active() (Portfolio, bool) {
	if p, ok := s.Find(s.ActiveID); ok {
		return p, true
	}
	if len(s.Portfolios) > 0 {
		return s.Portfolios[0], true
	}
	return Portfolio{}, false
}

// Clone returns a deep copy of the state.
func (s AppState) Clone() AppState {
	c := AppState{ActiveID: s.ActiveID, Portfolios: make([]Portfolio, len(s.Portfolios))}
	for i, p := range s.Portfolios {
		c.Portfolios[i] = p.Clone()
	}
	return c
}
