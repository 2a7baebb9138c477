package blambda

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-secretsmanager-caching-go/v2/secretcache"
	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
)

// SecretStringGetter is the subset of the secret cache this library calls.
type SecretStringGetter interface {
	GetSecretStringWithContext(ctx context.Context, secretID string) (string, error)
}

// SecretsManagerReader implements [ParameterReader] against AWS Secrets
// Manager through the official caching client. A name of the form
// "secret-id#json.path" parses the secret as JSON and extracts the gjson path;
// a bare name returns the raw secret string.
type SecretsManagerReader struct {
	cache SecretStringGetter
}

// NewSecretsManagerReader creates a SecretsManagerReader using the provided AWS config.
func NewSecretsManagerReader(cfg aws.Config) (*SecretsManagerReader, error) {
	client := secretsmanager.NewFromConfig(cfg)
	cache, err := secretcache.New(
		func(c *secretcache.Cache) {
			c.Client = client
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create secret cache")
	}
	return &SecretsManagerReader{cache: cache}, nil
}

// NewSecretsManagerReaderWithCache creates a SecretsManagerReader from an
// existing cache, mostly for tests.
func NewSecretsManagerReaderWithCache(cache SecretStringGetter) *SecretsManagerReader {
	return &SecretsManagerReader{cache: cache}
}

// ReadParameters resolves every name to its secret value, extracting JSON
// paths where the name carries a "#path" fragment.
func (r *SecretsManagerReader) ReadParameters(ctx context.Context, names []string) (map[string]string, error) {
	values := make(map[string]string, len(names))
	for _, name := range names {
		secretID, path, _ := strings.Cut(name, "#")

		secret, err := r.cache.GetSecretStringWithContext(ctx, secretID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get secret %q", secretID)
		}

		if path == "" {
			values[name] = secret
			continue
		}

		result := gjson.Get(secret, path)
		if !result.Exists() {
			return nil, errors.Errorf("secret path %q not found in secret %q", path, secretID)
		}

		values[name] = result.String()
	}

	return values, nil
}
