// Package integration exercises full vault lifecycles through the same
// service stack the CLI wires up, with nothing mocked.
package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bramasto/tagihan/internal/models"
	"github.com/bramasto/tagihan/internal/services/auth"
	"github.com/bramasto/tagihan/internal/services/ledger"
	"github.com/bramasto/tagihan/internal/store"
	"github.com/bramasto/tagihan/test/testutil"
)

type stack struct {
	store  *store.JSONStore
	auth   *auth.Service
	ledger *ledger.Service
}

// newStack builds the service stack against an existing vault path, the way
// a fresh CLI invocation would.
func newStack(path string) *stack {
	logger := testutil.NewTestLogger()
	s := store.NewJSONStore(path, logger)
	return &stack{
		store:  s,
		auth:   auth.NewService(s, logger),
		ledger: ledger.NewService(s, logger),
	}
}

func TestFullLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagihan_data.json")

	// First run: sign up and record some activity.
	app := newStack(path)
	data, recovered, err := app.store.Load()
	require.NoError(t, err)
	require.False(t, recovered)

	session, err := app.auth.SignUp(data, "budi@example.com", "rahasia123")
	require.NoError(t, err)

	require.NoError(t, app.ledger.AddIncome(session, "Freelance", 1_250_000))
	require.NoError(t, app.ledger.AddBudgetItem(session, "Internet", 400_000, "Utilities"))
	require.NoError(t, app.ledger.SetRealizationPercent(session, 4, 75))
	require.NoError(t, app.ledger.ChangePeriod(session, 2025, 6))
	_, err = app.ledger.CopyPreviousPeriod(session)
	require.NoError(t, err)

	// Second run: brand new stack against the same file.
	app = newStack(path)
	data, recovered, err = app.store.Load()
	require.NoError(t, err)
	require.False(t, recovered)

	session, err = app.auth.Login(data, "BUDI@example.com", "rahasia123")
	require.NoError(t, err)

	doc := session.Ledger
	assert.Equal(t, 2025, doc.CurrentYear)
	assert.Equal(t, models.Month(6), doc.CurrentMonth)

	entry := doc.CurrentPeriod()
	require.Len(t, entry.IncomeSources, 3)
	require.Len(t, entry.BudgetItems, 5)
	assert.Equal(t, 300_000, entry.BudgetItems[4].Realization)

	// The May ledger survived the copy untouched.
	may := doc.Period(2025, 5)
	assert.Len(t, may.IncomeSources, 3)

	_, err = app.auth.Login(data, "budi@example.com", "salah")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestOnDiskShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagihan_data.json")

	app := newStack(path)
	data, _, err := app.store.Load()
	require.NoError(t, err)
	_, err = app.auth.SignUp(data, "budi@example.com", "rahasia123")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var shape map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &shape))
	assert.Contains(t, shape, "users")
	assert.Contains(t, shape, "profiles")
	assert.Contains(t, shape, "pending_profile")
	assert.Contains(t, shape, "default_language")

	var profiles map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(shape["profiles"], &profiles))
	record := profiles["budi@example.com"]
	require.NotNil(t, record)
	assert.Contains(t, record, "version")
	assert.Contains(t, record, "nonce")
	assert.Contains(t, record, "ciphertext")
	assert.Contains(t, record, "tag")

	// Ledger contents never appear in cleartext once sealed.
	assert.NotContains(t, string(raw), "Gaji Bulanan")
}

func TestLegacyFileUpgrade(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagihan_data.json")
	legacy := `{
		"income_sources": [{"name": "Gaji Lama", "amount": 8000}],
		"saving_list": [],
		"budgeting_list": [{"name": "Sewa", "allocation": 3000, "realization": 3000, "category": "Housing"}],
		"current_year": 2024,
		"current_month": "Desember",
		"language": "id"
	}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	app := newStack(path)
	data, recovered, err := app.store.Load()
	require.NoError(t, err)
	assert.False(t, recovered)

	// The old flat ledger waits for the first account.
	session, err := app.auth.SignUp(data, "budi@example.com", "rahasia123")
	require.NoError(t, err)

	doc := session.Ledger
	assert.Equal(t, 2024, doc.CurrentYear)
	assert.Equal(t, models.Month(12), doc.CurrentMonth)
	entry := doc.CurrentPeriod()
	require.Len(t, entry.IncomeSources, 1)
	assert.Equal(t, "Gaji Lama", entry.IncomeSources[0].Name)
	require.Len(t, entry.BudgetItems, 1)

	// Relogging in reads it back through the sealed payload.
	app = newStack(path)
	data, _, err = app.store.Load()
	require.NoError(t, err)
	session, err = app.auth.Login(data, "budi@example.com", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, "Gaji Lama", session.Ledger.CurrentPeriod().IncomeSources[0].Name)
}

func TestCorruptFileRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagihan_data.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage{{{"), 0o600))

	app := newStack(path)
	data, recovered, err := app.store.Load()
	require.NoError(t, err)
	assert.True(t, recovered)

	// The recovered store works like a fresh one.
	session, err := app.auth.SignUp(data, "budi@example.com", "rahasia123")
	require.NoError(t, err)
	assert.Len(t, session.Ledger.CurrentPeriod().BudgetItems, 4)
}
