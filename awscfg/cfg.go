// Package awscfg loads AWS configuration the way the SDK does everywhere
// else: environment, then shared config files, then the Lambda or EC2
// environment. In Lambda that means the region comes from AWS_REGION.
package awscfg

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

type Config struct {
	cfg aws.Config
}

func NewConfig(ctx context.Context, optFns ...func(*config.LoadOptions) error) (*Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, err
	}
	return &Config{cfg: cfg}, nil
}

// NewStaticConfig returns a Config for region with fixed credentials, which
// is what tests and local invocations that never call AWS want.
func NewStaticConfig(region, accessKeyId, secretAccessKey string) *Config {
	return &Config{cfg: aws.Config{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKeyId, secretAccessKey, ""),
	}}
}

// WithRegion is an option for NewConfig that only overrides the region when
// one is given.
func WithRegion(region string) func(*config.LoadOptions) error {
	return func(o *config.LoadOptions) error {
		if region != "" {
			o.Region = region
		}
		return nil
	}
}

// Region may be empty; nothing here insists on one.
func (c *Config) Region() string {
	return c.cfg.Region
}
