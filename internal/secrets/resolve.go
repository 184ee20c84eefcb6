// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// APIKeyFile is the secrets-directory file holding the Apollo key.
	APIKeyFile = "apollo-api-key"

	// APIKeyEnv is the conventional environment variable for the Apollo key.
	APIKeyEnv = "APOLLO_API_KEY"

	// KeyringService groups lead-harvester entries in the OS keychain.
	KeyringService = "lead-harvester"

	// KeyringAccount is the keychain account name for the Apollo key.
	KeyringAccount = "apollo-api-key"
)

// Source names where a resolved key came from.
type Source string

const (
	SourceConfig  Source = "config"
	SourceEnv     Source = "env"
	SourceFile    Source = "secrets-dir"
	SourceKeyring Source = "keyring"
)

// ErrNotFound is returned when no source holds an API key.
var ErrNotFound = errors.New("API key not found")

// ResolveAPIKey returns the first non-empty key from, in order: configured
// (flag or config file), the APOLLO_API_KEY environment variable, the
// apollo-api-key entry of loaded (see Load), and the OS keyring.
func ResolveAPIKey(configured string, loaded map[string]string) (string, Source, error) {
	if v := strings.TrimSpace(configured); v != "" {
		return v, SourceConfig, nil
	}
	if v := strings.TrimSpace(os.Getenv(APIKeyEnv)); v != "" {
		return v, SourceEnv, nil
	}
	if v := loaded[APIKeyFile]; v != "" {
		return v, SourceFile, nil
	}
	v, err := keyring.Get(KeyringService, KeyringAccount)
	if err == nil && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), SourceKeyring, nil
	}
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "warning: keyring unavailable: %v\n", err)
	}
	return "", "", ErrNotFound
}

// StoreAPIKey saves key in the OS keyring.
func StoreAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("API key is empty")
	}
	if err := keyring.Set(KeyringService, KeyringAccount, key); err != nil {
		return fmt.Errorf("storing key in keyring: %w", err)
	}
	return nil
}

// DeleteAPIKey removes the key from the OS keyring. Deleting a key that is
// not there is not an error.
func DeleteAPIKey() error {
	err := keyring.Delete(KeyringService, KeyringAccount)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("deleting key from keyring: %w", err)
	}
	return nil
}
