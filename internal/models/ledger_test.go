package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bramasto/tagihan/internal/models"
)

func TestEnsureDefaultsFillsEmptyDocument(t *testing.T) {
	doc := &models.LedgerDocument{}
	doc.EnsureDefaults()

	assert.Equal(t, models.DefaultYear, doc.CurrentYear)
	assert.Equal(t, models.DefaultMonth, doc.CurrentMonth)
	assert.Equal(t, models.DefaultLanguage, doc.Language)
	require.NotNil(t, doc.Months)

	entry := doc.CurrentPeriod()
	assert.NotNil(t, entry.IncomeSources)
	assert.NotNil(t, entry.Savings)
	assert.NotNil(t, entry.BudgetItems)
	assert.True(t, entry.Empty())
}

func TestEnsureDefaultsIdempotent(t *testing.T) {
	doc := models.DefaultLedgerDocument()
	doc.EnsureDefaults()
	doc.EnsureDefaults()

	entry := doc.CurrentPeriod()
	assert.Len(t, entry.IncomeSources, 2)
	assert.Len(t, entry.Savings, 2)
	assert.Len(t, entry.BudgetItems, 4)
	assert.Len(t, doc.Months, 1)
}

func TestEnsureDefaultsFoldsLegacyLists(t *testing.T) {
	raw := `{
		"current_year": 2024,
		"current_month": "Maret",
		"language": "en",
		"income_sources": [{"name": "Gaji", "amount": 100}],
		"saving_list": [{"name": "Darurat", "amount": 50}],
		"budgeting_list": [{"name": "Listrik", "allocation": 30, "realization": 10, "category": "Utilities"}]
	}`

	var doc models.LedgerDocument
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	doc.EnsureDefaults()

	assert.Nil(t, doc.LegacyIncome)
	assert.Nil(t, doc.LegacySavings)
	assert.Nil(t, doc.LegacyBudget)

	entry := doc.Period(2024, 3)
	require.Len(t, entry.IncomeSources, 1)
	assert.Equal(t, "Gaji", entry.IncomeSources[0].Name)
	require.Len(t, entry.BudgetItems, 1)
	assert.Equal(t, 30, entry.BudgetItems[0].Allocation)

	// Legacy fields never reappear on save.
	out, err := json.Marshal(&doc)
	require.NoError(t, err)
	var round map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &round))
	assert.NotContains(t, round, "income_sources")
	assert.Contains(t, round, "months")
}

func TestEnsureDefaultsKeepsExistingPeriodOverLegacy(t *testing.T) {
	doc := &models.LedgerDocument{
		CurrentYear:  2025,
		CurrentMonth: 5,
		Months: map[string]*models.PeriodLedger{
			"2025-05": {IncomeSources: []models.LineItem{{Name: "Kept", Amount: 1}}},
		},
		LegacyIncome: []models.LineItem{{Name: "Dropped", Amount: 2}},
	}
	doc.EnsureDefaults()

	entry := doc.Period(2025, 5)
	require.Len(t, entry.IncomeSources, 1)
	assert.Equal(t, "Kept", entry.IncomeSources[0].Name)
}

func TestPeriodCreatesOnDemand(t *testing.T) {
	doc := models.DefaultLedgerDocument()
	assert.False(t, doc.HasPeriod(2026, 1))

	entry := doc.Period(2026, 1)
	assert.True(t, entry.Empty())
	assert.True(t, doc.HasPeriod(2026, 1))
}

func TestCloneIsDeep(t *testing.T) {
	doc := models.DefaultLedgerDocument()
	clone := doc.Clone()

	clone.CurrentPeriod().IncomeSources[0].Amount = 1
	clone.Period(2030, 1)

	assert.Equal(t, 13_923_161, doc.CurrentPeriod().IncomeSources[0].Amount)
	assert.False(t, doc.HasPeriod(2030, 1))
}

func TestTotals(t *testing.T) {
	doc := models.DefaultLedgerDocument()
	totals := doc.Totals()

	assert.Equal(t, 15_923_161, totals.TotalIncome)
	assert.Equal(t, 1_255_000, totals.TotalBudgeted)
	assert.Equal(t, 700_000, totals.TotalSpending)
	assert.Equal(t, 15_223_161, totals.Savings)
}

func TestTotalsEmptyPeriod(t *testing.T) {
	doc := &models.LedgerDocument{}
	doc.EnsureDefaults()

	totals := doc.Totals()
	assert.Zero(t, totals.TotalIncome)
	assert.Zero(t, totals.Savings)
}

func TestDefaultLedgerDocumentSeed(t *testing.T) {
	doc := models.DefaultLedgerDocument()

	assert.Equal(t, 2025, doc.CurrentYear)
	assert.Equal(t, models.Month(5), doc.CurrentMonth)
	assert.Equal(t, "id", doc.Language)

	entry := doc.CurrentPeriod()
	require.Len(t, entry.BudgetItems, 4)
	assert.Equal(t, "Zakat Wajib", entry.BudgetItems[3].Name)
	assert.Equal(t, 325_000, entry.BudgetItems[3].Realization)
}
