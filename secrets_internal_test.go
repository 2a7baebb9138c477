package blambda

import (
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

// mockSecretCache implements SecretStringGetter for testing.
type mockSecretCache struct {
	secrets map[string]string
	err     error
}

func (m *mockSecretCache) GetSecretStringWithContext(_ context.Context, secretID string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	secret, ok := m.secrets[secretID]
	if !ok {
		return "", errors.Errorf("secret %q not found", secretID)
	}
	return secret, nil
}

func TestSecretsManagerReaderReadParameters(t *testing.T) {
	tests := []struct {
		name     string
		secrets  map[string]string
		cacheErr error
		names    []string
		want     map[string]string
		wantErr  string
	}{
		{
			name: "read raw string secret",
			secrets: map[string]string{
				"my-api-key": "secret-key-value",
			},
			names: []string{"my-api-key"},
			want:  map[string]string{"my-api-key": "secret-key-value"},
		},
		{
			name: "read JSON secret with path fragment",
			secrets: map[string]string{
				"my-db-creds": `{"database": {"password": "secret123"}}`,
			},
			names: []string{"my-db-creds#database.password"},
			want:  map[string]string{"my-db-creds#database.password": "secret123"},
		},
		{
			name: "read numeric value from JSON as string",
			secrets: map[string]string{
				"my-config": `{"port": 5432}`,
			},
			names: []string{"my-config#port"},
			want:  map[string]string{"my-config#port": "5432"},
		},
		{
			name: "multiple names resolve independently",
			secrets: map[string]string{
				"first":  "one",
				"second": `{"nested": "two"}`,
			},
			names: []string{"first", "second#nested"},
			want:  map[string]string{"first": "one", "second#nested": "two"},
		},
		{
			name: "path not found in JSON secret",
			secrets: map[string]string{
				"my-secret": `{"foo": "bar"}`,
			},
			names:   []string{"my-secret#missing.path"},
			wantErr: `secret path "missing.path" not found`,
		},
		{
			name:    "secret not found",
			secrets: map[string]string{},
			names:   []string{"missing"},
			wantErr: `secret "missing" not found`,
		},
		{
			name:     "cache error",
			secrets:  map[string]string{},
			cacheErr: errors.New("AWS error"),
			names:    []string{"any-secret"},
			wantErr:  "AWS error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewSecretsManagerReaderWithCache(&mockSecretCache{
				secrets: tt.secrets,
				err:     tt.cacheErr,
			})

			got, err := reader.ReadParameters(context.Background(), tt.names)

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("got %d values, want %d", len(got), len(tt.want))
			}
			for name, want := range tt.want {
				if got[name] != want {
					t.Errorf("value for %q: got %q, want %q", name, got[name], want)
				}
			}
		})
	}
}
