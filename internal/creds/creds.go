// Package creds loads login credentials from a local JSON file for
// non-interactive use.
package creds

import (
	"encoding/json"
	"os"
)

// Combined represents the credentials file model.
type Combined struct {
	Auth struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"auth"`
}

// ParseCombined parses JSON bytes into Combined.
func ParseCombined(data []byte) (*Combined, error) {
	var c Combined
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFromFile loads Combined from a local file path.
func LoadFromFile(path string) (*Combined, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCombined(b)
}
