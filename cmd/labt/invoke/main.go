package invoke

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"github.com/src-bin/apigateway-authorizers/authorizer"
	"github.com/src-bin/apigateway-authorizers/awscfg"
	"github.com/src-bin/apigateway-authorizers/cmdutil"
	"github.com/src-bin/apigateway-authorizers/jsonutil"
	"go.uber.org/zap"
)

var event = new(string)

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke --event <file>",
		Short: "run an authorizer event through the authorizers locally",
		Long: `invoke reads a REQUEST or TOKEN authorizer event from a JSON file, runs it
through the same dispatcher the Lambda function uses, and prints the
response. An authorizer error (e.g. Unauthorized) is returned as the command's
error.`,
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
	cmd.Flags().StringVar(event, "event", "", "JSON file containing an API Gateway authorizer event")
	cmd.MarkFlagRequired("event")
	return cmd
}

func Main(ctx context.Context, cfg *awscfg.Config, log *zap.Logger, _ []string, w io.Writer) error {
	payload, err := jsonutil.ReadRaw(*event)
	if err != nil {
		return err
	}
	log.Debug("invoking", zap.String("event", *event), zap.String("region", cfg.Region()))

	out, err := authorizer.NewMux(cfg.Region(), log).Invoke(ctx, payload)
	if err != nil {
		return err
	}
	return jsonutil.PrettyPrint(w, json.RawMessage(out))
}
