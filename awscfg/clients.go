package awscfg

import (
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

func (c *Config) CloudWatchLogs() *cloudwatchlogs.Client {
	return cloudwatchlogs.NewFromConfig(c.cfg)
}

func (c *Config) Lambda() *lambda.Client {
	return lambda.NewFromConfig(c.cfg)
}
