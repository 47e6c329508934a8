package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bramasto/tagihan/internal/crypto"
	"github.com/bramasto/tagihan/internal/models"
)

// ErrLedgerSchema marks a decrypted payload that does not parse as a ledger.
var ErrLedgerSchema = errors.New("decrypted payload is not a valid ledger")

// EncryptProfile seals a ledger under key into a payload record. The
// document is serialized compactly; every seal draws a fresh nonce.
func EncryptProfile(key []byte, doc *models.LedgerDocument) (*models.EncryptedPayload, error) {
	doc.EnsureDefaults()

	plaintext, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal ledger: %w", err)
	}

	nonce, ciphertext, tag, err := crypto.Seal(key, plaintext)
	if err != nil {
		return nil, fmt.Errorf("seal ledger: %w", err)
	}

	return models.NewEncryptedPayload(nonce, ciphertext, tag), nil
}

// DecryptProfile opens a profile record into a ledger. Plaintext records
// (written before encryption) pass through with defaults filled and are
// resealed on the next persist. Failures are typed: malformed base64 fields
// yield models.ErrPayloadFormat, a tag mismatch yields crypto.ErrIntegrity,
// and unparseable plaintext yields ErrLedgerSchema. None of them may be
// treated as an empty ledger.
func DecryptProfile(key []byte, record *models.ProfileRecord) (*models.LedgerDocument, error) {
	if record.Plain != nil {
		record.Plain.EnsureDefaults()
		return record.Plain, nil
	}

	nonce, ciphertext, tag, err := record.Encrypted.Decode()
	if err != nil {
		return nil, err
	}

	plaintext, err := crypto.Open(key, nonce, ciphertext, tag)
	if err != nil {
		return nil, err
	}

	var doc models.LedgerDocument
	if err := json.Unmarshal(plaintext, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLedgerSchema, err)
	}

	doc.EnsureDefaults()
	return &doc, nil
}
