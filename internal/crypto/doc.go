// Package crypto implements the vault's key derivation and authenticated
// stream cipher.
//
// Key derivation uses PBKDF2-HMAC-SHA256 with:
//   - 16-byte random salt, generated once per account
//   - 200,000 iterations
//   - 32-byte output key
//
// Sealing uses a SHA-256 counter keystream with:
//   - 16-byte random nonce per seal, never reused under a key
//   - keystream blocks SHA-256(key || nonce || counter_be32)
//   - HMAC-SHA256 tag over nonce || ciphertext, verified in constant time
//     before any decryption
//
// The login verifier (HashPassword) is a plain SHA-256 digest kept separate
// from the derived key; it must never be used as an encryption key.
package crypto
