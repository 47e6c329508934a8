// Package ledger implements the mutations a session performs on its open
// ledger. Every mutation reseals the ledger and rewrites the whole store
// before returning.
package ledger

import (
	"errors"
	"fmt"
	"math"

	"github.com/bramasto/tagihan/internal/events"
	"github.com/bramasto/tagihan/internal/models"
	"github.com/bramasto/tagihan/internal/store"
)

var (
	ErrInvalidAmount   = errors.New("amount must be a non-negative integer")
	ErrInvalidMonth    = errors.New("month must be between 1 and 12")
	ErrInvalidPercent  = errors.New("percentage must be between 1 and 100")
	ErrNoAllocation    = errors.New("budget item has no allocation")
	ErrIndexOutOfRange = errors.New("item index out of range")
	ErrPeriodEmpty     = errors.New("source period has no data")
)

// Service mutates session ledgers and persists them.
type Service struct {
	store  *store.JSONStore
	logger *events.Logger
}

// NewService creates a ledger service.
func NewService(vaultStore *store.JSONStore, logger *events.Logger) *Service {
	return &Service{
		store:  vaultStore,
		logger: logger.WithField("service", "ledger"),
	}
}

// Persist reseals the session's ledger and rewrites the store file.
func (s *Service) Persist(session *models.Session) error {
	payload, err := store.EncryptProfile(session.Key, session.Ledger)
	if err != nil {
		return err
	}
	session.Data.SetProfile(session.Email, payload)
	return s.store.Save(session.Data)
}

// CurrentPeriod resolves the session's current period, creating it if
// absent. The returned reference is live: mutations through it must be
// followed by Persist.
func (s *Service) CurrentPeriod(session *models.Session) *models.PeriodLedger {
	return session.Ledger.CurrentPeriod()
}

// Totals computes the current period's aggregates.
func (s *Service) Totals(session *models.Session) models.Totals {
	return session.Ledger.Totals()
}

// AddIncome appends an income source to the current period.
func (s *Service) AddIncome(session *models.Session, name string, amount int) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	entry := session.Ledger.CurrentPeriod()
	entry.IncomeSources = append(entry.IncomeSources, models.LineItem{Name: name, Amount: amount})
	return s.Persist(session)
}

// AddSaving appends a saving to the current period.
func (s *Service) AddSaving(session *models.Session, name string, amount int) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	entry := session.Ledger.CurrentPeriod()
	entry.Savings = append(entry.Savings, models.LineItem{Name: name, Amount: amount})
	return s.Persist(session)
}

// AddBudgetItem appends a budget item with zero realization to the current
// period.
func (s *Service) AddBudgetItem(session *models.Session, name string, allocation int, category string) error {
	if allocation < 0 {
		return ErrInvalidAmount
	}
	entry := session.Ledger.CurrentPeriod()
	entry.BudgetItems = append(entry.BudgetItems, models.BudgetItem{
		Name:       name,
		Allocation: allocation,
		Category:   category,
	})
	return s.Persist(session)
}

// SetRealization sets a budget item's realized amount.
func (s *Service) SetRealization(session *models.Session, index, amount int) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	entry := session.Ledger.CurrentPeriod()
	if index < 0 || index >= len(entry.BudgetItems) {
		return ErrIndexOutOfRange
	}
	entry.BudgetItems[index].Realization = amount
	return s.Persist(session)
}

// SetRealizationPercent sets a budget item's realization as a percentage of
// its allocation, rounded to the nearest integer.
func (s *Service) SetRealizationPercent(session *models.Session, index, percent int) error {
	if percent < 1 || percent > 100 {
		return ErrInvalidPercent
	}
	entry := session.Ledger.CurrentPeriod()
	if index < 0 || index >= len(entry.BudgetItems) {
		return ErrIndexOutOfRange
	}
	allocation := entry.BudgetItems[index].Allocation
	if allocation <= 0 {
		return ErrNoAllocation
	}
	entry.BudgetItems[index].Realization = int(math.Round(float64(allocation) * float64(percent) / 100))
	return s.Persist(session)
}

// CompleteRealization marks a budget item fully realized.
func (s *Service) CompleteRealization(session *models.Session, index int) error {
	entry := session.Ledger.CurrentPeriod()
	if index < 0 || index >= len(entry.BudgetItems) {
		return ErrIndexOutOfRange
	}
	entry.BudgetItems[index].Realization = entry.BudgetItems[index].Allocation
	return s.Persist(session)
}

// SetAllocation changes a budget item's allocation.
func (s *Service) SetAllocation(session *models.Session, index, amount int) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	entry := session.Ledger.CurrentPeriod()
	if index < 0 || index >= len(entry.BudgetItems) {
		return ErrIndexOutOfRange
	}
	entry.BudgetItems[index].Allocation = amount
	return s.Persist(session)
}

// DeleteIncome removes an income source by index and returns it.
func (s *Service) DeleteIncome(session *models.Session, index int) (models.LineItem, error) {
	entry := session.Ledger.CurrentPeriod()
	if index < 0 || index >= len(entry.IncomeSources) {
		return models.LineItem{}, ErrIndexOutOfRange
	}
	removed := entry.IncomeSources[index]
	entry.IncomeSources = append(entry.IncomeSources[:index], entry.IncomeSources[index+1:]...)
	return removed, s.Persist(session)
}

// DeleteSaving removes a saving by index and returns it.
func (s *Service) DeleteSaving(session *models.Session, index int) (models.LineItem, error) {
	entry := session.Ledger.CurrentPeriod()
	if index < 0 || index >= len(entry.Savings) {
		return models.LineItem{}, ErrIndexOutOfRange
	}
	removed := entry.Savings[index]
	entry.Savings = append(entry.Savings[:index], entry.Savings[index+1:]...)
	return removed, s.Persist(session)
}

// DeleteBudgetItem removes a budget item by index and returns it.
func (s *Service) DeleteBudgetItem(session *models.Session, index int) (models.BudgetItem, error) {
	entry := session.Ledger.CurrentPeriod()
	if index < 0 || index >= len(entry.BudgetItems) {
		return models.BudgetItem{}, ErrIndexOutOfRange
	}
	removed := entry.BudgetItems[index]
	entry.BudgetItems = append(entry.BudgetItems[:index], entry.BudgetItems[index+1:]...)
	return removed, s.Persist(session)
}

// ChangePeriod switches the session to another (year, month), creating the
// period if it does not exist yet.
func (s *Service) ChangePeriod(session *models.Session, year, month int) error {
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	session.Ledger.CurrentYear = year
	session.Ledger.CurrentMonth = models.Month(month)
	session.Ledger.CurrentPeriod()
	return s.Persist(session)
}

// CopyPeriod deep-copies an existing period's lists into the current period,
// replacing its contents, and returns a snapshot of what was copied.
// Mutating the current period afterwards does not affect the source.
func (s *Service) CopyPeriod(session *models.Session, fromYear, fromMonth int) (*models.PeriodLedger, error) {
	if fromMonth < 1 || fromMonth > 12 {
		return nil, ErrInvalidMonth
	}
	doc := session.Ledger
	if !doc.HasPeriod(fromYear, models.Month(fromMonth)) {
		return nil, ErrPeriodEmpty
	}
	source := doc.Period(fromYear, models.Month(fromMonth))
	if source.Empty() {
		return nil, ErrPeriodEmpty
	}

	snapshot := source.Clone()
	target := doc.CurrentPeriod()
	target.IncomeSources = snapshot.IncomeSources
	target.Savings = snapshot.Savings
	target.BudgetItems = snapshot.BudgetItems

	if err := s.Persist(session); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"from": models.PeriodKey(fromYear, models.Month(fromMonth)),
		"to":   models.PeriodKey(doc.CurrentYear, doc.CurrentMonth),
	}).Info("Period copied")
	return source.Clone(), nil
}

// CopyPreviousPeriod copies the period immediately before the current one.
func (s *Service) CopyPreviousPeriod(session *models.Session) (*models.PeriodLedger, error) {
	doc := session.Ledger
	year, month := models.PreviousPeriod(doc.CurrentYear, doc.CurrentMonth)
	snapshot, err := s.CopyPeriod(session, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("copy %s: %w", models.PeriodKey(year, month), err)
	}
	return snapshot, nil
}

// ChangeLanguage switches the ledger language and the store default.
func (s *Service) ChangeLanguage(session *models.Session, code string) error {
	if !models.SupportedLanguage(code) {
		return fmt.Errorf("unsupported language: %s", code)
	}
	session.Ledger.Language = code
	session.Data.DefaultLanguage = code
	return s.Persist(session)
}
