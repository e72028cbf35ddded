package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/0xPolygon/postman"
	"github.com/0xPolygon/postman/config"
	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/pipeline"
	"github.com/urfave/cli/v2"
)

func start(cliCtx *cli.Context) error {
	c, err := config.Load(cliCtx)
	if err != nil {
		return err
	}

	log.Init(c.Log)

	if c.Log.Environment == log.EnvironmentDevelopment {
		postman.PrintVersion(os.Stdout)
		log.Info("Starting application")
	} else if c.Log.Environment == log.EnvironmentProduction {
		logVersion()
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(cliCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	components := cliCtx.StringSlice(config.FlagComponents)
	p, err := pipeline.New(ctx, *c, components)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		log.Info("terminating application gracefully...")
	}()
	return p.Start(ctx)
}

func logVersion() {
	v := postman.GetVersion()
	log.Infow("Starting application",
		// version is already logged by default
		"gitRevision", v.GitRev,
		"gitBranch", v.GitBranch,
		"goVersion", runtime.Version(),
		"built", v.BuildDate,
		"os/arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	)
}
