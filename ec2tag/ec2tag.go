// Package ec2tag provides the built-in loader for the tags of the EC2
// instance the process runs on.
//
// Template usage:
//
//	Cluster: %awsec2tag:ClusterName%
//
// The key is the tag key, matched case-insensitively. The instance ID is
// discovered through the metadata service, and all tags are fetched with a
// single DescribeInstances call on first use; later lookups are served from
// memory.
package ec2tag

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/randalmurphal/injectkit/ec2metadata"
	"github.com/randalmurphal/injectkit/loader"
)

// TemplateKey is the placeholder tag that selects this loader.
const TemplateKey = "awsec2tag"

func init() {
	loader.RegisterBuiltin(TemplateKey, func(ctx context.Context) (loader.Loader, error) {
		return New(ctx)
	})
}

// DescribeInstancesAPI is the slice of the EC2 API the loader depends on.
// *ec2.Client satisfies it; tests supply a fake.
type DescribeInstancesAPI interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

// Loader loads values from the current instance's EC2 tags.
type Loader struct {
	client   DescribeInstancesAPI
	metadata *ec2metadata.Loader

	// tags holds lowercased tag keys to values; nil until the first Load.
	tags map[string]string
}

// Option configures a Loader.
type Option func(*Loader)

// WithMetadataLoader substitutes the metadata loader used to discover the
// instance ID.
func WithMetadataLoader(m *ec2metadata.Loader) Option {
	return func(l *Loader) {
		l.metadata = m
	}
}

// New creates a Loader using the ambient AWS configuration (environment,
// shared config files, instance role). Loading that configuration may fail,
// in which case no loader is returned.
func New(ctx context.Context, opts ...Option) (*Loader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return NewWithClient(ec2.NewFromConfig(cfg), opts...), nil
}

// NewWithClient creates a Loader with the provided EC2 client.
func NewWithClient(client DescribeInstancesAPI, opts ...Option) *Loader {
	l := &Loader{
		client:   client,
		metadata: ec2metadata.New(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the value of the instance tag named by key. Tag keys are
// matched case-insensitively.
func (l *Loader) Load(ctx context.Context, key string) (string, error) {
	if l.tags == nil {
		if err := l.fetchTags(ctx); err != nil {
			return "", err
		}
	}

	value, ok := l.tags[strings.ToLower(key)]
	if !ok {
		return "", fmt.Errorf("tag %q: %w", key, loader.ErrNotFound)
	}
	return value, nil
}

// fetchTags discovers the instance ID and pulls all of its tags in one
// DescribeInstances call.
func (l *Loader) fetchTags(ctx context.Context) error {
	instanceID, err := l.metadata.Load(ctx, "instance-id")
	if err != nil {
		return fmt.Errorf("discover instance id: %w", err)
	}

	out, err := l.client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return fmt.Errorf("describe instance %s: %w", instanceID, err)
	}

	tags := make(map[string]string)
	for _, reservation := range out.Reservations {
		for _, instance := range reservation.Instances {
			for _, tag := range instance.Tags {
				tags[strings.ToLower(aws.ToString(tag.Key))] = aws.ToString(tag.Value)
			}
		}
	}

	l.tags = tags
	return nil
}
