package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetCredFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		credsFile = ""
		email = ""
		password = ""
	})
}

func TestResolveCredentialsMissingFile(t *testing.T) {
	resetCredFlags(t)
	credsFile = filepath.Join(t.TempDir(), "missing.json")

	_, _, err := resolveCredentials()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentials file")
}

func TestResolveCredentialsMalformedFile(t *testing.T) {
	resetCredFlags(t)
	path := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))
	credsFile = path

	_, _, err := resolveCredentials()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentials file")
}

func TestResolveCredentialsFromFile(t *testing.T) {
	resetCredFlags(t)
	path := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"auth": {"email": "a@b.com", "password": "pw"}}`), 0o600))
	credsFile = path

	gotEmail, gotPassword, err := resolveCredentials()
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", gotEmail)
	assert.Equal(t, "pw", gotPassword)
}

func TestResolveCredentialsFlagsWinOverFile(t *testing.T) {
	resetCredFlags(t)
	path := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"auth": {"email": "file@b.com", "password": "filepw"}}`), 0o600))
	credsFile = path
	email = "flag@b.com"
	password = "flagpw"

	gotEmail, gotPassword, err := resolveCredentials()
	require.NoError(t, err)
	assert.Equal(t, "flag@b.com", gotEmail)
	assert.Equal(t, "flagpw", gotPassword)
}
