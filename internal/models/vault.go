package models

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrPayloadFormat marks an encrypted payload whose encoded fields cannot be
// decoded.
var ErrPayloadFormat = errors.New("malformed encrypted payload")

// PayloadVersion identifies the sealing construction.
const PayloadVersion = 1

// Credential is one account's login record. The salt feeds key derivation;
// the password hash only guards login.
type Credential struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Salt         string `json:"salt"` // base64
}

// DecodeSalt returns the raw key derivation salt, or an error when the
// stored value is missing or not valid base64.
func (c *Credential) DecodeSalt() ([]byte, error) {
	if c.Salt == "" {
		return nil, fmt.Errorf("credential %s: empty salt", c.Email)
	}
	salt, err := base64.StdEncoding.DecodeString(c.Salt)
	if err != nil {
		return nil, fmt.Errorf("credential %s: decode salt: %w", c.Email, err)
	}
	return salt, nil
}

// SetSalt stores a raw salt base64-encoded.
func (c *Credential) SetSalt(salt []byte) {
	c.Salt = base64.StdEncoding.EncodeToString(salt)
}

// EncryptedPayload is a sealed ledger: nonce, ciphertext, and authentication
// tag, all base64-encoded. Replaced wholesale on every save.
type EncryptedPayload struct {
	Version    int    `json:"version"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
	Tag        string `json:"tag"`
}

// NewEncryptedPayload wraps raw seal output into a payload record.
func NewEncryptedPayload(nonce, ciphertext, tag []byte) *EncryptedPayload {
	return &EncryptedPayload{
		Version:    PayloadVersion,
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		Tag:        base64.StdEncoding.EncodeToString(tag),
	}
}

// Decode returns the raw nonce, ciphertext, and tag. Malformed base64 in any
// field yields ErrPayloadFormat.
func (p *EncryptedPayload) Decode() (nonce, ciphertext, tag []byte, err error) {
	nonce, err = base64.StdEncoding.DecodeString(p.Nonce)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: nonce: %v", ErrPayloadFormat, err)
	}
	ciphertext, err = base64.StdEncoding.DecodeString(p.Ciphertext)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: ciphertext: %v", ErrPayloadFormat, err)
	}
	tag, err = base64.StdEncoding.DecodeString(p.Tag)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: tag: %v", ErrPayloadFormat, err)
	}
	return nonce, ciphertext, tag, nil
}

// ProfileRecord is one entry of the profiles map: either a sealed payload or
// a plaintext ledger left over from before encryption. The variant is
// resolved once when the store is decoded, never re-probed downstream.
type ProfileRecord struct {
	Encrypted *EncryptedPayload
	Plain     *LedgerDocument
}

// UnmarshalJSON resolves the record variant: objects carrying a "ciphertext"
// field are sealed payloads, any other object is a plaintext ledger.
func (r *ProfileRecord) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("profile record is not an object: %w", err)
	}

	if _, ok := probe["ciphertext"]; ok {
		var payload EncryptedPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("decode encrypted payload: %w", err)
		}
		r.Encrypted = &payload
		r.Plain = nil
		return nil
	}

	var doc LedgerDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode plaintext ledger: %w", err)
	}
	r.Plain = &doc
	r.Encrypted = nil
	return nil
}

// MarshalJSON writes whichever variant is set.
func (r ProfileRecord) MarshalJSON() ([]byte, error) {
	switch {
	case r.Encrypted != nil:
		return json.Marshal(r.Encrypted)
	case r.Plain != nil:
		return json.Marshal(r.Plain)
	}
	return nil, errors.New("empty profile record")
}

// VaultStore is the top-level persisted record: credentials, one sealed
// payload per account, and at most one plaintext ledger waiting for the
// first sign-up.
type VaultStore struct {
	Users           []Credential              `json:"users"`
	Profiles        map[string]*ProfileRecord `json:"profiles"`
	PendingProfile  *LedgerDocument           `json:"pending_profile"`
	DefaultLanguage string                    `json:"default_language"`
}

// NewVaultStore returns an empty store with a seeded pending ledger for the
// first account.
func NewVaultStore() *VaultStore {
	return &VaultStore{
		Users:           []Credential{},
		Profiles:        make(map[string]*ProfileRecord),
		PendingProfile:  DefaultLedgerDocument(),
		DefaultLanguage: DefaultLanguage,
	}
}

// NormalizeEmail case-folds an address for use as an account key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindUser returns the credential for a case-folded email, or nil.
func (v *VaultStore) FindUser(email string) *Credential {
	email = NormalizeEmail(email)
	for i := range v.Users {
		if v.Users[i].Email == email {
			return &v.Users[i]
		}
	}
	return nil
}

// SetProfile replaces an account's stored payload wholesale.
func (v *VaultStore) SetProfile(email string, payload *EncryptedPayload) {
	if v.Profiles == nil {
		v.Profiles = make(map[string]*ProfileRecord)
	}
	v.Profiles[NormalizeEmail(email)] = &ProfileRecord{Encrypted: payload}
}

// Session is one authenticated account's in-memory state: the open ledger,
// the derived key it is resealed with, and the store it persists into.
type Session struct {
	Email  string
	Key    []byte
	Ledger *LedgerDocument
	Data   *VaultStore
}
