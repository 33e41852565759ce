package cmdutil

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/src-bin/apigateway-authorizers/awscfg"
	"github.com/src-bin/apigateway-authorizers/logutil"
	"go.uber.org/zap"
)

var (
	region  = new(string)
	verbose = new(bool)
)

// PersistentFlags adds the flags every labt subcommand understands.
func PersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(region, "region", "", "AWS region (default from AWS_REGION or the shared config)")
	cmd.RegisterFlagCompletionFunc("region", NoCompletionFunc)
	cmd.PersistentFlags().BoolVarP(verbose, "verbose", "v", false, "log debugging output to standard error")
}

// Main returns the arguments necessary for a typical subcommand's Main
// function so that it can be called as Main(cmdutil.Main(cmd, args)). Output
// goes wherever cmd's is set, standard output unless a test says otherwise.
func Main(cmd *cobra.Command, args []string) (context.Context, *awscfg.Config, *zap.Logger, []string, io.Writer, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	w := cmd.OutOrStdout()
	level := "warn"
	if *verbose {
		level = "debug"
	}
	log, err := logutil.New(level, true)
	if err != nil {
		return ctx, nil, nil, args, w, err
	}
	cfg, err := awscfg.NewConfig(ctx, awscfg.WithRegion(*region))
	return ctx, cfg, log, args, w, err
}
