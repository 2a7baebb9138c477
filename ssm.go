package blambda

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/cockroachdb/errors"
)

// SSMClient is the subset of the SSM API this library calls.
type SSMClient interface {
	GetParameters(ctx context.Context, params *ssm.GetParametersInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersOutput, error)
}

// SSMParameterReader implements [ParameterReader] against the AWS Systems
// Manager parameter store. SecureString parameters are decrypted.
type SSMParameterReader struct {
	client SSMClient
}

// NewSSMParameterReader creates an SSMParameterReader using the provided AWS config.
func NewSSMParameterReader(cfg aws.Config) *SSMParameterReader {
	return &SSMParameterReader{client: ssm.NewFromConfig(cfg)}
}

// NewSSMParameterReaderWithClient creates an SSMParameterReader from an
// existing client, mostly for tests.
func NewSSMParameterReaderWithClient(client SSMClient) *SSMParameterReader {
	return &SSMParameterReader{client: client}
}

// ReadParameters resolves all names in a single GetParameters call. Names the
// store does not hold fail the whole read.
func (r *SSMParameterReader) ReadParameters(ctx context.Context, names []string) (map[string]string, error) {
	out, err := r.client.GetParameters(ctx, &ssm.GetParametersInput{
		Names:          names,
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "get parameters from ssm")
	}

	if len(out.InvalidParameters) > 0 {
		return nil, errors.Errorf("parameters not found in ssm: %s",
			strings.Join(out.InvalidParameters, ", "))
	}

	values := make(map[string]string, len(out.Parameters))
	for _, p := range out.Parameters {
		values[aws.ToString(p.Name)] = aws.ToString(p.Value)
	}

	return values, nil
}
