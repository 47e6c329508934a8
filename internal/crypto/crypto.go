package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the derived encryption key length.
	KeySize = 32

	// SaltSize is the per-account key derivation salt length.
	SaltSize = 16

	// NonceSize is the per-seal random nonce length.
	NonceSize = 16

	// TagSize is the HMAC-SHA256 authentication tag length.
	TagSize = 32

	// KDFIterations is the PBKDF2 iteration count.
	KDFIterations = 200_000
)

var (
	ErrInvalidKey = errors.New("invalid key size")
	ErrIntegrity  = errors.New("integrity check failed")
)

// DeriveKey derives an encryption key from a password and salt using
// PBKDF2-HMAC-SHA256. Deterministic and deliberately expensive; results are
// never cached.
func DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, KDFIterations, KeySize, sha256.New)
}

// HashPassword returns the hex-encoded SHA-256 login verifier for a password.
// The verifier only guards login; it is unrelated to the encryption key.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword compares a stored verifier against a password in constant
// time.
func VerifyPassword(storedHash, password string) bool {
	expected := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(expected)) == 1
}

// GenerateSalt returns a fresh random key derivation salt.
func GenerateSalt() ([]byte, error) {
	return randomBytes(SaltSize)
}

// Seal encrypts and authenticates plaintext under key. A fresh random nonce
// is drawn on every call; the ciphertext has the same length as the
// plaintext and the tag covers nonce plus ciphertext.
func Seal(key, plaintext []byte) (nonce, ciphertext, tag []byte, err error) {
	if len(key) != KeySize {
		return nil, nil, nil, ErrInvalidKey
	}

	nonce, err = randomBytes(NonceSize)
	if err != nil {
		return nil, nil, nil, err
	}

	stream := keystream(key, nonce, len(plaintext))
	ciphertext = make([]byte, len(plaintext))
	for i := range plaintext {
		ciphertext[i] = plaintext[i] ^ stream[i]
	}

	tag = computeTag(key, nonce, ciphertext)
	return nonce, ciphertext, tag, nil
}

// Open verifies the authentication tag and decrypts ciphertext. The tag is
// checked in constant time before any keystream is generated; on mismatch no
// plaintext is produced.
func Open(key, nonce, ciphertext, tag []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	expected := computeTag(key, nonce, ciphertext)
	if !hmac.Equal(expected, tag) {
		return nil, ErrIntegrity
	}

	stream := keystream(key, nonce, len(ciphertext))
	plaintext := make([]byte, len(ciphertext))
	for i := range ciphertext {
		plaintext[i] = ciphertext[i] ^ stream[i]
	}
	return plaintext, nil
}

// keystream expands key and nonce into n bytes by chaining 32-byte blocks
// SHA-256(key || nonce || counter), counter big-endian uint32 starting at 0.
func keystream(key, nonce []byte, n int) []byte {
	out := make([]byte, 0, n+sha256.Size)
	block := make([]byte, 0, len(key)+len(nonce)+4)
	var counter [4]byte

	for c := uint32(0); len(out) < n; c++ {
		binary.BigEndian.PutUint32(counter[:], c)
		block = append(block[:0], key...)
		block = append(block, nonce...)
		block = append(block, counter[:]...)
		sum := sha256.Sum256(block)
		out = append(out, sum[:]...)
	}
	return out[:n]
}

func computeTag(key, nonce, ciphertext []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(nonce)
	mac.Write(ciphertext)
	return mac.Sum(nil)
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate random bytes: %w", err)
	}
	return b, nil
}
