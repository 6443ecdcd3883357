// Package store holds the canonical in-memory financial state for a single
// user session: the budget record, goals, reminders, the transaction log,
// and the chat history. All mutations go through the Store's methods; reads
// return copies so callers can never mutate shared state directly.
package store

import (
	"sync"
	"time"

	apperrors "hela/internal/errors"
	"hela/internal/models"
	"hela/internal/uuid"
)

// Greeting is the canonical assistant message seeded into a fresh chat.
const Greeting = "Hi! I'm Hela, your AI financial assistant. I can help you with budgeting, saving goals, expense tracking, and financial advice. What would you like to know?"

// Store is the single source of truth for one session's domain state.
type Store struct {
	mu           sync.Mutex
	budget       models.Budget
	goals        []models.Goal
	reminders    []models.Reminder
	transactions []models.Transaction
	chat         []models.ChatMessage

	observers []func()
}

// New creates an empty store with a zero budget and the seeded greeting.
func New() *Store {
	s := &Store{}
	s.chat = []models.ChatMessage{greetingMessage()}
	return s
}

func greetingMessage() models.ChatMessage {
	return models.ChatMessage{
		Role:      models.RoleAssistant,
		Content:   Greeting,
		Timestamp: time.Now(),
	}
}

// OnChange registers an observer invoked after every successful mutation.
// Observers run outside the store lock and must not block.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.Lock()
	observers := make([]func(), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
}

// Budget returns the current budget record.
func (s *Store) Budget() models.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budget
}

// UpdateBudget replaces the budget record wholesale. The supplied leftover
// is stored verbatim; consistency with income-expenses is the caller's job.
func (s *Store) UpdateBudget(b models.Budget) {
	s.mu.Lock()
	s.budget = b
	s.mu.Unlock()
	s.notify()
}

// Goals returns a copy of the goals in insertion order.
func (s *Store) Goals() []models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// AddGoal assigns an id and creation time, appends the goal, and returns
// the stored record.
func (s *Store) AddGoal(g models.Goal) models.Goal {
	g.ID = uuid.New()
	g.CreatedAt = time.Now()

	s.mu.Lock()
	s.goals = append(s.goals, g)
	s.mu.Unlock()
	s.notify()
	return g
}

// UpdateGoal merges non-nil fields into the matching goal. ID and CreatedAt
// are never altered. Returns ErrGoalNotFound when the id is unknown, leaving
// the collection unchanged.
func (s *Store) UpdateGoal(id string, upd models.GoalUpdate) (models.Goal, error) {
	s.mu.Lock()
	i := s.goalIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Goal{}, apperrors.ErrGoalNotFound
	}

	g := &s.goals[i]
	if upd.Name != nil {
		g.Name = *upd.Name
	}
	if upd.TargetAmount != nil {
		g.TargetAmount = *upd.TargetAmount
	}
	if upd.CurrentAmount != nil {
		g.CurrentAmount = *upd.CurrentAmount
	}
	if upd.Deadline != nil {
		g.Deadline = *upd.Deadline
	}
	if upd.Notes != nil {
		g.Notes = *upd.Notes
	}
	if upd.Priority != nil {
		g.Priority = *upd.Priority
	}
	if upd.Status != nil {
		g.Status = *upd.Status
	}
	out := *g
	s.mu.Unlock()
	s.notify()
	return out, nil
}

// DeleteGoal removes the matching goal. Returns ErrGoalNotFound when the id
// is unknown.
func (s *Store) DeleteGoal(id string) error {
	s.mu.Lock()
	i := s.goalIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return apperrors.ErrGoalNotFound
	}
	s.goals = append(s.goals[:i], s.goals[i+1:]...)
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *Store) goalIndex(id string) int {
	for i := range s.goals {
		if s.goals[i].ID == id {
			return i
		}
	}
	return -1
}

// Transactions returns a copy of the transaction log, newest first.
func (s *Store) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// AddTransaction assigns an id and prepends the transaction so the log
// stays newest-first.
func (s *Store) AddTransaction(t models.Transaction) models.Transaction {
	t.ID = uuid.New()

	s.mu.Lock()
	s.transactions = append([]models.Transaction{t}, s.transactions...)
	s.mu.Unlock()
	s.notify()
	return t
}

// DeleteTransaction removes the matching transaction. Returns
// ErrTransactionNotFound when the id is unknown.
func (s *Store) DeleteTransaction(id string) error {
	s.mu.Lock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			s.mu.Unlock()
			s.notify()
			return nil
		}
	}
	s.mu.Unlock()
	return apperrors.ErrTransactionNotFound
}

// ChatHistory returns a copy of the conversation so far.
func (s *Store) ChatHistory() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.chat))
	copy(out, s.chat)
	return out
}

// AddChatMessage appends a message to the conversation.
func (s *Store) AddChatMessage(m models.ChatMessage) {
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	s.mu.Lock()
	s.chat = append(s.chat, m)
	s.mu.Unlock()
	s.notify()
}

// ClearChat resets the conversation to the single canonical greeting. This
// is the only way the chat history ever shrinks.
func (s *Store) ClearChat() {
	s.mu.Lock()
	s.chat = []models.ChatMessage{greetingMessage()}
	s.mu.Unlock()
	s.notify()
}
