package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/src-bin/apigateway-authorizers/authorizer"
	"github.com/src-bin/apigateway-authorizers/awscfg"
	"github.com/src-bin/apigateway-authorizers/logutil"
	"github.com/src-bin/apigateway-authorizers/version"
	"go.uber.org/zap"
)

func main() {
	log, err := logutil.New(os.Getenv(logutil.LevelEnv), false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s=%q: %v\n", logutil.LevelEnv, os.Getenv(logutil.LevelEnv), err)
		os.Exit(1)
	}
	defer log.Sync()
	log = log.With(
		zap.String("function", lambdacontext.FunctionName),
		zap.String("version", version.String()),
	)

	cfg, err := awscfg.NewConfig(context.Background())
	if err != nil {
		log.Fatal("cannot load AWS configuration", zap.Error(err))
	}

	lambda.StartHandler(authorizer.NewMux(cfg.Region(), log))
}
