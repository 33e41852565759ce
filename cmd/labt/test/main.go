package test

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/src-bin/apigateway-authorizers/awscfg"
	"github.com/src-bin/apigateway-authorizers/awslambda"
	"github.com/src-bin/apigateway-authorizers/cmdutil"
	"github.com/src-bin/apigateway-authorizers/jsonutil"
	"github.com/src-bin/apigateway-authorizers/lambdautil"
	"github.com/src-bin/apigateway-authorizers/policies"
	"github.com/src-bin/apigateway-authorizers/table"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var Columns = []string{
	"functionName",
	"invocations",
	"errors",
	"minLatencyMs",
	"avgLatencyMs",
	"maxLatencyMs",
}

// TargetArn is the method every sample event asks about. The deployed
// authorizers only echo it back, so it needn't name a real API.
var TargetArn = policies.ExecuteAPIArn{
	AccountId:  "123456789012",
	APIId:      "labt",
	Stage:      "v1",
	HTTPMethod: "GET",
	Resource:   "pets",
}

var (
	format, formatFlag, formatCompletionFunc = cmdutil.FormatFlag(
		cmdutil.FormatText,
		[]cmdutil.Format{cmdutil.FormatJSON, cmdutil.FormatText},
	)
	identifiers = new([]string)
	count       = new(int)
	concurrency = new(int)
)

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test --identifiers <function>[,<function>...] [--count <n>] [--concurrency <n>] [--format <format>]",
		Short: "invoke deployed authorizers under load and report latency",
		Long: `test invokes each identified Lambda function --count times, at most
--concurrency at a time, with an event the authorizer allows. Functions whose
names begin with "token" get TOKEN events; all others get REQUEST events.
Latency is measured around each synchronous Invoke call.`,
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
	cmd.Flags().StringSliceVar(identifiers, "identifiers", nil, "Lambda function names to invoke")
	cmd.MarkFlagRequired("identifiers")
	cmd.RegisterFlagCompletionFunc("identifiers", cmdutil.NoCompletionFunc)
	cmd.Flags().IntVar(count, "count", 100, "invocations per function")
	cmd.RegisterFlagCompletionFunc("count", cmdutil.NoCompletionFunc)
	cmd.Flags().IntVar(concurrency, "concurrency", 10, "invocations in flight at once per function")
	cmd.RegisterFlagCompletionFunc("concurrency", cmdutil.NoCompletionFunc)
	cmd.Flags().AddFlag(formatFlag)
	cmd.RegisterFlagCompletionFunc(formatFlag.Name, formatCompletionFunc)
	return cmd
}

func Main(ctx context.Context, cfg *awscfg.Config, log *zap.Logger, _ []string, w io.Writer) error {
	return run(ctx, cfg.Lambda(), log, w, cfg.Region())
}

func run(ctx context.Context, client awslambda.InvokeAPI, log *zap.Logger, w io.Writer, region string) error {
	if len(*identifiers) == 0 {
		return fmt.Errorf("--identifiers must name at least one function")
	}
	if *count < 1 {
		return fmt.Errorf("--count must be at least 1")
	}
	if *concurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1")
	}
	arn := TargetArn
	arn.Region = region

	results := make([]*Stats, 0, len(*identifiers))
	for _, identifier := range *identifiers {
		payload, err := lambdautil.SampleEvent(identifier, arn).Payload()
		if err != nil {
			return err
		}
		log.Debug("testing", zap.String("function", identifier), zap.Int("count", *count), zap.Int("concurrency", *concurrency))
		stats, err := load(ctx, client, log, identifier, payload)
		if err != nil {
			return err
		}
		log.Debug("tested", zap.String("function", identifier), zap.Int("errors", stats.Errors))
		results = append(results, stats)
	}

	switch *format {
	case cmdutil.FormatJSON:
		return jsonutil.PrettyPrint(w, results)
	default:
		rows := make([]map[string]string, len(results))
		for i, stats := range results {
			rows[i] = stats.Map()
		}
		table.Ftable(w, table.FromMaps(Columns, rows))
	}
	return nil
}

func load(ctx context.Context, client awslambda.InvokeAPI, log *zap.Logger, functionName string, payload []byte) (*Stats, error) {
	stats := &Stats{FunctionName: functionName}
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(*concurrency)
	for i := 0; i < *count; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			start := time.Now()
			_, err := awslambda.Invoke(ctx, client, functionName, payload)
			latency := time.Since(start)
			if err != nil {
				log.Debug("invocation failed", zap.String("function", functionName), zap.Error(err))
			}
			mu.Lock()
			defer mu.Unlock()
			stats.add(latency, err)
			return nil
		})
	}
	g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("testing %s: %w", functionName, err)
	}
	return stats, nil
}
