package creds_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bramasto/tagihan/internal/creds"
)

func TestParseCombined(t *testing.T) {
	c, err := creds.ParseCombined([]byte(`{"auth": {"email": "a@b.com", "password": "pw"}}`))
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", c.Auth.Email)
	assert.Equal(t, "pw", c.Auth.Password)

	_, err = creds.ParseCombined([]byte(`not json`))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"auth": {"email": "a@b.com", "password": "pw"}}`), 0o600))

	c, err := creds.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", c.Auth.Email)

	_, err = creds.LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
