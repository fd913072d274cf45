// Package ssm provides the built-in loader for AWS Systems Manager
// Parameter Store parameters.
//
// Template usage:
//
//	DB password: %awsssm:/myapp/db/password%
//
// The key is the parameter name. SecureString parameters are decrypted.
package ssm

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"

	"github.com/randalmurphal/injectkit/loader"
)

// TemplateKey is the placeholder tag that selects this loader.
const TemplateKey = "awsssm"

func init() {
	loader.RegisterBuiltin(TemplateKey, func(ctx context.Context) (loader.Loader, error) {
		return New(ctx)
	})
}

// GetParameterAPI is the slice of the SSM API the loader depends on.
// *ssm.Client satisfies it; tests supply a fake.
type GetParameterAPI interface {
	GetParameter(ctx context.Context, params *awsssm.GetParameterInput, optFns ...func(*awsssm.Options)) (*awsssm.GetParameterOutput, error)
}

// Loader loads values from the SSM Parameter Store.
type Loader struct {
	client GetParameterAPI
}

// New creates a Loader using the ambient AWS configuration. Loading that
// configuration may fail, in which case no loader is returned.
func New(ctx context.Context) (*Loader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return NewWithClient(awsssm.NewFromConfig(cfg)), nil
}

// NewWithClient creates a Loader with the provided SSM client.
func NewWithClient(client GetParameterAPI) *Loader {
	return &Loader{client: client}
}

// Load fetches the parameter named by key, decrypting it if necessary.
func (l *Loader) Load(ctx context.Context, key string) (string, error) {
	out, err := l.client.GetParameter(ctx, &awsssm.GetParameterInput{
		Name:           aws.String(key),
		WithDecryption: aws.Bool(true),
	})

	var notFound *types.ParameterNotFound
	if errors.As(err, &notFound) {
		return "", fmt.Errorf("parameter %q: %w", key, loader.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("fetch parameter %q: %w", key, err)
	}

	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("parameter %q has no value", key)
	}
	return aws.ToString(out.Parameter.Value), nil
}
