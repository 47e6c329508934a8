package models

// LineItem is a named amount, used for income sources and savings.
type LineItem struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

// BudgetItem tracks a planned allocation and its realized spending.
type BudgetItem struct {
	Name        string `json:"name"`
	Allocation  int    `json:"allocation"`
	Realization int    `json:"realization"`
	Category    string `json:"category"`
}

// PeriodLedger holds one month of ledger data. All three lists are always
// non-nil on any PeriodLedger reachable from a LedgerDocument.
type PeriodLedger struct {
	IncomeSources []LineItem   `json:"income_sources"`
	Savings       []LineItem   `json:"saving_list"`
	BudgetItems   []BudgetItem `json:"budgeting_list"`
}

// EnsureDefaults fills missing lists with empty ones. Idempotent.
func (p *PeriodLedger) EnsureDefaults() {
	if p.IncomeSources == nil {
		p.IncomeSources = []LineItem{}
	}
	if p.Savings == nil {
		p.Savings = []LineItem{}
	}
	if p.BudgetItems == nil {
		p.BudgetItems = []BudgetItem{}
	}
}

// Empty reports whether the period has no entries at all.
func (p *PeriodLedger) Empty() bool {
	return len(p.IncomeSources) == 0 && len(p.Savings) == 0 && len(p.BudgetItems) == 0
}

// Clone returns a deep copy sharing no slices with the original.
func (p *PeriodLedger) Clone() *PeriodLedger {
	clone := &PeriodLedger{
		IncomeSources: make([]LineItem, len(p.IncomeSources)),
		Savings:       make([]LineItem, len(p.Savings)),
		BudgetItems:   make([]BudgetItem, len(p.BudgetItems)),
	}
	copy(clone.IncomeSources, p.IncomeSources)
	copy(clone.Savings, p.Savings)
	copy(clone.BudgetItems, p.BudgetItems)
	return clone
}

// LedgerDocument is one account's full ledger across all tracked periods.
// The legacy flat fields appear in records written before periods were
// introduced; EnsureDefaults folds them into the current period.
type LedgerDocument struct {
	Months       map[string]*PeriodLedger `json:"months"`
	CurrentYear  int                      `json:"current_year"`
	CurrentMonth Month                    `json:"current_month"`
	Language     string                   `json:"language"`

	LegacyIncome  []LineItem   `json:"income_sources,omitempty"`
	LegacySavings []LineItem   `json:"saving_list,omitempty"`
	LegacyBudget  []BudgetItem `json:"budgeting_list,omitempty"`
}

// EnsureDefaults repairs a partially populated document: fills year, month
// and language, folds legacy flat lists into the current period, and
// guarantees the current period exists with all lists present. Idempotent.
func (d *LedgerDocument) EnsureDefaults() {
	if d.CurrentYear == 0 {
		d.CurrentYear = DefaultYear
	}
	if !d.CurrentMonth.Valid() {
		d.CurrentMonth = DefaultMonth
	}
	d.Language = NormalizeLanguage(d.Language)

	if d.Months == nil {
		d.Months = make(map[string]*PeriodLedger)
	}

	if d.LegacyIncome != nil || d.LegacySavings != nil || d.LegacyBudget != nil {
		entry := d.Period(d.CurrentYear, d.CurrentMonth)
		if len(entry.IncomeSources) == 0 && len(d.LegacyIncome) > 0 {
			entry.IncomeSources = d.LegacyIncome
		}
		if len(entry.Savings) == 0 && len(d.LegacySavings) > 0 {
			entry.Savings = d.LegacySavings
		}
		if len(entry.BudgetItems) == 0 && len(d.LegacyBudget) > 0 {
			entry.BudgetItems = d.LegacyBudget
		}
		d.LegacyIncome = nil
		d.LegacySavings = nil
		d.LegacyBudget = nil
	}

	d.Period(d.CurrentYear, d.CurrentMonth)
}

// Period resolves (year, month) to its PeriodLedger, creating it if absent
// and filling missing lists.
func (d *LedgerDocument) Period(year int, month Month) *PeriodLedger {
	if d.Months == nil {
		d.Months = make(map[string]*PeriodLedger)
	}
	key := PeriodKey(year, month)
	entry, ok := d.Months[key]
	if !ok || entry == nil {
		entry = &PeriodLedger{}
		d.Months[key] = entry
	}
	entry.EnsureDefaults()
	return entry
}

// CurrentPeriod resolves the current (year, month) pair, creating the period
// if absent. Callers must go through this before reading or mutating the
// current ledger.
func (d *LedgerDocument) CurrentPeriod() *PeriodLedger {
	if d.CurrentYear == 0 {
		d.CurrentYear = DefaultYear
	}
	if !d.CurrentMonth.Valid() {
		d.CurrentMonth = DefaultMonth
	}
	return d.Period(d.CurrentYear, d.CurrentMonth)
}

// HasPeriod reports whether a period exists without creating it.
func (d *LedgerDocument) HasPeriod(year int, month Month) bool {
	_, ok := d.Months[PeriodKey(year, month)]
	return ok
}

// Clone returns a deep copy of the document.
func (d *LedgerDocument) Clone() *LedgerDocument {
	clone := &LedgerDocument{
		CurrentYear:  d.CurrentYear,
		CurrentMonth: d.CurrentMonth,
		Language:     d.Language,
		Months:       make(map[string]*PeriodLedger, len(d.Months)),
	}
	for key, entry := range d.Months {
		if entry == nil {
			clone.Months[key] = &PeriodLedger{}
			continue
		}
		clone.Months[key] = entry.Clone()
	}
	return clone
}

// Totals aggregates the current period for reporting.
type Totals struct {
	TotalIncome   int `json:"total_income"`
	TotalBudgeted int `json:"total_budgeted_expenses"`
	TotalSpending int `json:"total_spending"`
	Savings       int `json:"savings"`
}

// Totals computes the aggregates of the current period.
func (d *LedgerDocument) Totals() Totals {
	entry := d.CurrentPeriod()

	var t Totals
	for _, item := range entry.IncomeSources {
		t.TotalIncome += item.Amount
	}
	for _, item := range entry.BudgetItems {
		t.TotalBudgeted += item.Allocation
		t.TotalSpending += item.Realization
	}
	t.Savings = t.TotalIncome - t.TotalSpending
	return t
}

// DefaultLedgerDocument returns the seeded ledger handed to first-time
// accounts: one example period with sample income, savings, and budget rows.
func DefaultLedgerDocument() *LedgerDocument {
	doc := &LedgerDocument{
		CurrentYear:  DefaultYear,
		CurrentMonth: DefaultMonth,
		Language:     DefaultLanguage,
		Months: map[string]*PeriodLedger{
			PeriodKey(DefaultYear, DefaultMonth): {
				IncomeSources: []LineItem{
					{Name: "Gaji Bulanan", Amount: 13_923_161},
					{Name: "Bonus Proyek", Amount: 2_000_000},
				},
				Savings: []LineItem{
					{Name: "Dana Darurat", Amount: 2_500_000},
					{Name: "Tabungan Pendidikan", Amount: 1_000_000},
				},
				BudgetItems: []BudgetItem{
					{Name: "Bantuan Keluarga", Allocation: 500_000, Realization: 250_000, Category: "Family Aid"},
					{Name: "Layanan Rumah", Allocation: 250_000, Realization: 125_000, Category: "House Services"},
					{Name: "Pajak Kendaraan", Allocation: 180_000, Realization: 0, Category: "Pajak"},
					{Name: "Zakat Wajib", Allocation: 325_000, Realization: 325_000, Category: "Zakat"},
				},
			},
		},
	}
	return doc
}
