// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestResolveAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		env        string
		loaded     map[string]string
		keyring    string
		want       string
		wantSource Source
	}{
		{
			name:       "configured wins over everything",
			configured: " cfg-key ",
			env:        "env-key",
			loaded:     map[string]string{APIKeyFile: "file-key"},
			keyring:    "ring-key",
			want:       "cfg-key",
			wantSource: SourceConfig,
		},
		{
			name:       "env before secrets dir",
			env:        "env-key",
			loaded:     map[string]string{APIKeyFile: "file-key"},
			keyring:    "ring-key",
			want:       "env-key",
			wantSource: SourceEnv,
		},
		{
			name:       "secrets dir before keyring",
			loaded:     map[string]string{APIKeyFile: "file-key"},
			keyring:    "ring-key",
			want:       "file-key",
			wantSource: SourceFile,
		},
		{
			name:       "keyring last",
			loaded:     map[string]string{"other": "x"},
			keyring:    "ring-key",
			want:       "ring-key",
			wantSource: SourceKeyring,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keyring.MockInit()
			t.Setenv(APIKeyEnv, tt.env)
			if tt.keyring != "" {
				require.NoError(t, keyring.Set(KeyringService, KeyringAccount, tt.keyring))
			}

			got, src, err := ResolveAPIKey(tt.configured, tt.loaded)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSource, src)
		})
	}
}

func TestResolveAPIKeyNotFound(t *testing.T) {
	keyring.MockInit()
	t.Setenv(APIKeyEnv, "")

	_, _, err := ResolveAPIKey("", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreAndDeleteAPIKey(t *testing.T) {
	keyring.MockInit()
	t.Setenv(APIKeyEnv, "")

	require.NoError(t, StoreAPIKey("  stored-key\n"))
	got, src, err := ResolveAPIKey("", nil)
	require.NoError(t, err)
	assert.Equal(t, "stored-key", got)
	assert.Equal(t, SourceKeyring, src)

	require.NoError(t, DeleteAPIKey())
	_, _, err = ResolveAPIKey("", nil)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting twice is fine.
	assert.NoError(t, DeleteAPIKey())
}

func TestStoreAPIKeyEmpty(t *testing.T) {
	keyring.MockInit()
	err := StoreAPIKey("   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}
