package logsinsight

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/src-bin/apigateway-authorizers/awscfg"
	"github.com/src-bin/apigateway-authorizers/awscloudwatch"
	"github.com/src-bin/apigateway-authorizers/cmdutil"
	"github.com/src-bin/apigateway-authorizers/jsonutil"
	"github.com/src-bin/apigateway-authorizers/table"
	"go.uber.org/zap"
)

// Columns the cold-start query displays, in order.
var Columns = []string{
	"functionName",
	"memorySize",
	"coldStarts",
	"maxInitDuration",
	"minDuration",
	"maxDuration",
	"smallestMemoryRequestMB",
	"maxMemoryUsedMB",
	"overProvisionedMB",
}

var (
	format, formatFlag, formatCompletionFunc = cmdutil.FormatFlag(
		cmdutil.FormatText,
		[]cmdutil.Format{cmdutil.FormatJSON, cmdutil.FormatText},
	)
	identifiers = new([]string)
	timeRange   = new(time.Duration)
	wait        = new(time.Duration)
)

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs-insight --identifiers <function>[,<function>...] [--time-range <duration>] [--wait <duration>] [--format <format>]",
		Short: "report authorizer cold starts from CloudWatch Logs Insights",
		Long: `logs-insight queries the /aws/lambda/<function> log group of each identifier
for REPORT lines with an Init Duration and summarizes cold starts, durations,
and memory use per function.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, log, args, w, err := cmdutil.Main(cmd, args)
			if err != nil {
				return err
			}
			return Main(ctx, cfg, log, args, w)
		},
		DisableFlagsInUseLine: true,
	}
	cmd.Flags().StringSliceVar(identifiers, "identifiers", nil, "Lambda function names whose logs to query")
	cmd.MarkFlagRequired("identifiers")
	cmd.RegisterFlagCompletionFunc("identifiers", cmdutil.NoCompletionFunc)
	cmd.Flags().DurationVar(timeRange, "time-range", time.Hour, "how far back from now to query")
	cmd.Flags().DurationVar(wait, "wait", time.Minute, "how long to wait for the query to finish")
	cmd.Flags().AddFlag(formatFlag)
	cmd.RegisterFlagCompletionFunc(formatFlag.Name, formatCompletionFunc)
	return cmd
}

func Main(ctx context.Context, cfg *awscfg.Config, log *zap.Logger, _ []string, w io.Writer) error {
	return run(ctx, cfg.CloudWatchLogs(), log, w, time.Now())
}

func run(ctx context.Context, client awscloudwatch.InsightsAPI, log *zap.Logger, w io.Writer, now time.Time) error {
	if len(*identifiers) == 0 {
		return fmt.Errorf("--identifiers must name at least one function")
	}
	logGroupNames := make([]string, len(*identifiers))
	for i, identifier := range *identifiers {
		logGroupNames[i] = awscloudwatch.LogGroupName(identifier)
	}

	ctx, cancel := context.WithTimeout(ctx, *wait)
	defer cancel()
	log.Debug("starting Logs Insights query", zap.Strings("logGroupNames", logGroupNames), zap.Duration("timeRange", *timeRange))
	results, err := awscloudwatch.RunQuery(ctx, client, awscloudwatch.Query{
		LogGroupNames: logGroupNames,
		QueryString:   awscloudwatch.ColdStartQuery,
		Start:         now.Add(-*timeRange),
		End:           now,
	})
	if err != nil {
		return err
	}
	log.Debug("finished Logs Insights query", zap.Int("rows", len(results)))

	switch *format {
	case cmdutil.FormatJSON:
		return jsonutil.PrettyPrint(w, results)
	default:
		table.Ftable(w, table.FromMaps(Columns, results))
	}
	return nil
}
