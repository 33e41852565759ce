package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/src-bin/apigateway-authorizers/cmd/labt/invoke"
	logsinsight "github.com/src-bin/apigateway-authorizers/cmd/labt/logs-insight"
	"github.com/src-bin/apigateway-authorizers/cmd/labt/test"
	"github.com/src-bin/apigateway-authorizers/cmdutil"
	"github.com/src-bin/apigateway-authorizers/version"
)

func main() {
	cmd := &cobra.Command{
		Use:   "labt",
		Short: "Lambda Authorizer Benchmarking Tool",
		Long: `labt runs the API Gateway Lambda authorizers in this repository locally,
invokes deployed copies of them under load, and reports on their cold starts
in AWS using CloudWatch Logs Insights.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmdutil.PersistentFlags(cmd)
	cmd.AddCommand(invoke.Command())
	cmd.AddCommand(logsinsight.Command())
	cmd.AddCommand(test.Command())

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
