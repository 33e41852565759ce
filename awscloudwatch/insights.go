package awscloudwatch

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	"github.com/src-bin/apigateway-authorizers/awsutil"
)

// ColdStartQuery summarizes Lambda REPORT lines that include an init
// duration, i.e. cold starts, per function and memory size.
const ColdStartQuery = `filter @type="REPORT"
| fields @memorySize / 1000000 as memorySize, @memorySize / 1024 / 1024 as provisonedMemoryMB
| filter @message like /(?i)(Init Duration)/
| parse @message /^REPORT.*Init Duration: (?<initDuration>.*) ms.*/
| parse @message /^REPORT.*Max Memory Used: (?<maxMemoryUsed>.*) MB*/
| parse @message /^REPORT.*Duration: (?<duration>.*) MB*/
| parse @log /^.*\/aws\/lambda\/(?<functionName>.*)/
| stats count() as coldStarts, avg(initDuration) as avgInitDuration, max(initDuration) as maxInitDuration, min(@duration) as minDuration, max(@duration) as maxDuration, min(@maxMemoryUsed / 1024 / 1024) as smallestMemoryRequestMB, avg(@maxMemoryUsed / 1024 / 1024) as avgMemoryUsedMB, max(@maxMemoryUsed / 1024 / 1024) as maxMemoryUsedMB, provisonedMemoryMB - maxMemoryUsedMB as overProvisionedMB by functionName, memorySize, provisonedMemoryMB
| display functionName, memorySize, coldStarts, maxInitDuration, minDuration, maxDuration, smallestMemoryRequestMB, maxMemoryUsedMB, overProvisionedMB
| sort functionName`

// InsightsAPI is the slice of *cloudwatchlogs.Client that RunQuery uses.
type InsightsAPI interface {
	StartQuery(context.Context, *cloudwatchlogs.StartQueryInput, ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.StartQueryOutput, error)
	GetQueryResults(context.Context, *cloudwatchlogs.GetQueryResultsInput, ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.GetQueryResultsOutput, error)
}

// Query is one Logs Insights query over a time window.
type Query struct {
	LogGroupNames []string
	QueryString   string
	Start, End    time.Time

	// Polling backoff; zero values mean one and ten seconds.
	PollInit, PollMax time.Duration
}

// QueryResults is one map per result row, keyed by field name.
type QueryResults []map[string]string

type QueryStatusError struct {
	QueryId string
	Status  types.QueryStatus
}

func (err QueryStatusError) Error() string {
	return fmt.Sprintf("Logs Insights query %s ended with status %s", err.QueryId, err.Status)
}

// LogGroupName returns the log group Lambda writes to for a function.
func LogGroupName(functionName string) string {
	return "/aws/lambda/" + functionName
}

// RunQuery starts q and polls until it completes, fails, or ctx is done.
func RunQuery(ctx context.Context, client InsightsAPI, q Query) (QueryResults, error) {
	if len(q.LogGroupNames) == 0 {
		return nil, fmt.Errorf("no log groups to query")
	}
	out, err := client.StartQuery(ctx, &cloudwatchlogs.StartQueryInput{
		LogGroupNames: q.LogGroupNames,
		QueryString:   aws.String(q.QueryString),
		StartTime:     aws.Int64(q.Start.Unix()),
		EndTime:       aws.Int64(q.End.Unix()),
	})
	switch awsutil.ErrorCode(err) {
	case "":
	case awsutil.InvalidParameterException:
		return nil, fmt.Errorf("invalid Logs Insights query from %s to %s (%s): %w", q.Start.UTC().Format(time.RFC3339), q.End.UTC().Format(time.RFC3339), awsutil.ErrorMessage(err), err)
	case awsutil.ResourceNotFoundException:
		return nil, fmt.Errorf("log group not found among %v (%s): %w", q.LogGroupNames, awsutil.ErrorMessage(err), err)
	}
	if err != nil {
		return nil, err
	}
	queryId := aws.ToString(out.QueryId)

	pollInit, pollMax := q.PollInit, q.PollMax
	if pollInit == 0 {
		pollInit = time.Second
	}
	if pollMax == 0 {
		pollMax = 10 * time.Second
	}

	pollCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	for range awsutil.JitteredExponentialBackoff(pollCtx, pollInit, pollMax) {
		out, err := client.GetQueryResults(ctx, &cloudwatchlogs.GetQueryResultsInput{
			QueryId: aws.String(queryId),
		})
		if err != nil {
			return nil, err
		}
		switch out.Status {
		case types.QueryStatusComplete:
			return rows(out.Results), nil
		case types.QueryStatusScheduled, types.QueryStatusRunning:
		default:
			return nil, QueryStatusError{queryId, out.Status}
		}
	}
	return nil, fmt.Errorf("Logs Insights query %s: %w", queryId, ctx.Err())
}

func rows(results [][]types.ResultField) QueryResults {
	rs := make(QueryResults, 0, len(results))
	for _, fields := range results {
		r := make(map[string]string, len(fields))
		for _, field := range fields {
			name := aws.ToString(field.Field)
			if name == "@ptr" {
				continue
			}
			r[name] = aws.ToString(field.Value)
		}
		rs = append(rs, r)
	}
	return rs
}
