// Package store is the single owner of a budget session's mutable state.
//
// State changes go through Dispatch; readers use GetState or the derived
// Snapshot, and can Subscribe to be told about every accepted change.
package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"pocket-budget/budget"
	"pocket-budget/models"
)

var (
	// ErrDuplicateID is returned when a transaction id is already in the collection
	ErrDuplicateID = errors.New("duplicate transaction id")

	// ErrMissingID is returned when an appended transaction has no id
	ErrMissingID = errors.New("transaction id is required")

	// ErrUnknownAction is returned for actions the store does not handle
	ErrUnknownAction = errors.New("unknown action")
)

// State is everything the session owns. Values returned by the store are copies.
type State struct {
	Transactions    []models.Transaction `json:"transactions"`
	StartingBalance decimal.Decimal      `json:"starting_balance"`
	Draft           models.Draft         `json:"draft"`
}

func (s State) clone() State {
	out := s
	out.Transactions = append([]models.Transaction(nil), s.Transactions...)
	return out
}

// Listener receives the state after every accepted action.
// Listeners must not call Dispatch.
type Listener func(State)

// Options configures a new Store
type Options struct {
	StartingBalance decimal.Decimal
	// DraftType is the form's initial transaction type, expense when empty
	DraftType models.TransactionType
	Now       func() time.Time
	PeriodTag func() string
	NewID     func() string
}

// Store holds the transaction collection, the starting balance and the entry form draft
type Store struct {
	dispatchMu sync.Mutex
	mu         sync.RWMutex
	state      State
	ids        map[string]struct{}

	listenersMu  sync.Mutex
	listeners    map[int]Listener
	nextListener int

	now       func() time.Time
	periodTag func() string
	newID     func() string
}

// New creates an empty store
func New(opts Options) *Store {
	draftType := opts.DraftType
	if !draftType.Valid() {
		draftType = models.Expense
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	periodTag := opts.PeriodTag
	if periodTag == nil {
		periodTag = func() string { return "" }
	}

	return &Store{
		state: State{
			Transactions:    []models.Transaction{},
			StartingBalance: opts.StartingBalance,
			Draft:           models.Draft{Type: draftType},
		},
		ids:       make(map[string]struct{}),
		listeners: make(map[int]Listener),
		now:       now,
		periodTag: periodTag,
		newID:     opts.NewID,
	}
}

// GetState returns a copy of the current state
func (s *Store) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Snapshot derives totals and the ending balance from the current state
func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return budget.Summarize(s.state.StartingBalance, s.state.Transactions)
}

// Len returns the number of transactions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.Transactions)
}

// Subscribe registers l and returns a function that removes it
func (s *Store) Subscribe(l Listener) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			defer s.listenersMu.Unlock()
			delete(s.listeners, id)
		})
	}
}

// Dispatch applies an action. Actions that admit a transaction return it.
// A rejected action leaves the state unchanged and notifies nobody.
func (s *Store) Dispatch(action Action) (*models.Transaction, error) {
	_, added, err := s.Apply(action)
	return added, err
}

// Apply is Dispatch that also returns the state the action produced, the
// same value listeners receive. Later actions do not show up in it.
func (s *Store) Apply(action Action) (State, *models.Transaction, error) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	next, added, err := s.reduce(s.state, action)
	if err != nil {
		s.mu.Unlock()
		return State{}, nil, err
	}
	s.state = next
	if added != nil {
		s.ids[added.ID] = struct{}{}
	}
	published := s.state.clone()
	s.mu.Unlock()

	s.notify(published)
	return published.clone(), added, nil
}

func (s *Store) notify(state State) {
	s.listenersMu.Lock()
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l(state.clone())
	}
}

// reduce computes the next state. It must not modify current.
func (s *Store) reduce(current State, action Action) (State, *models.Transaction, error) {
	switch a := action.(type) {
	case UpdateDraft:
		next := current
		if a.Type != nil {
			next.Draft.Type = *a.Type
		}
		if a.Description != nil {
			next.Draft.Description = *a.Description
		}
		if a.Category != nil {
			next.Draft.Category = *a.Category
		}
		if a.Amount != nil {
			next.Draft.Amount = *a.Amount
		}
		return next, nil, nil

	case SubmitDraft:
		next, tx, err := s.admit(current, current.Draft)
		if err != nil {
			return current, nil, err
		}
		// Keep the type so consecutive entries of the same kind are quick
		next.Draft = models.Draft{Type: current.Draft.Type}
		return next, tx, nil

	case SubmitEntry:
		return s.admit(current, a.Draft)

	case AppendTransaction:
		if err := validateTransaction(a.Transaction); err != nil {
			return current, nil, err
		}
		if _, exists := s.ids[a.Transaction.ID]; exists {
			return current, nil, fmt.Errorf("%w: %s", ErrDuplicateID, a.Transaction.ID)
		}
		tx := a.Transaction
		return appendTransaction(current, tx), &tx, nil

	case SetStartingBalance:
		next := current
		next.StartingBalance = a.Amount
		return next, nil, nil
	}

	return current, nil, fmt.Errorf("%w: %T", ErrUnknownAction, action)
}

func (s *Store) admit(current State, d models.Draft) (State, *models.Transaction, error) {
	tx, err := budget.Admit(d, budget.AdmitContext{
		Now:       s.now(),
		PeriodTag: s.periodTag(),
		NewID:     s.newID,
	})
	if err != nil {
		return current, nil, err
	}
	if _, exists := s.ids[tx.ID]; exists {
		return current, nil, fmt.Errorf("%w: %s", ErrDuplicateID, tx.ID)
	}
	return appendTransaction(current, tx), &tx, nil
}

func validateTransaction(tx models.Transaction) error {
	if strings.TrimSpace(tx.ID) == "" {
		return ErrMissingID
	}
	if !tx.Type.Valid() {
		return &budget.RejectionError{Reason: budget.ReasonInvalidType, Value: string(tx.Type)}
	}
	if !tx.Amount.IsPositive() {
		return &budget.RejectionError{Reason: budget.ReasonNonPositiveAmount, Value: tx.Amount.String()}
	}
	return nil
}

// appendTransaction copies the slice so earlier published states stay intact
func appendTransaction(current State, tx models.Transaction) State {
	next := current
	next.Transactions = make([]models.Transaction, len(current.Transactions), len(current.Transactions)+1)
	copy(next.Transactions, current.Transactions)
	next.Transactions = append(next.Transactions, tx)
	return next
}

// Transactions returns a page of transactions. With an empty sortBy the
// insertion order is kept. A limit <= 0 returns everything after offset.
func (s *Store) Transactions(limit, offset int, sortBy, sortOrder string) []models.Transaction {
	s.mu.RLock()
	transactions := append([]models.Transaction(nil), s.state.Transactions...)
	s.mu.RUnlock()

	sortTransactions(transactions, sortBy, sortOrder)

	if offset < 0 {
		offset = 0
	}
	if offset > len(transactions) {
		return []models.Transaction{}
	}

	end := len(transactions)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return transactions[offset:end]
}

func sortTransactions(transactions []models.Transaction, sortBy string, sortOrder string) {
	desc := strings.EqualFold(sortOrder, "DESC")

	switch strings.ToLower(sortBy) {
	case "date":
		sort.SliceStable(transactions, func(i, j int) bool {
			if desc {
				return transactions[i].Date.After(transactions[j].Date)
			}
			return transactions[i].Date.Before(transactions[j].Date)
		})
	case "amount":
		sort.SliceStable(transactions, func(i, j int) bool {
			if desc {
				return transactions[i].Amount.GreaterThan(transactions[j].Amount)
			}
			return transactions[i].Amount.LessThan(transactions[j].Amount)
		})
	}
}
