package main

import (
	"os"

	"github.com/0xPolygon/postman"
	"github.com/urfave/cli/v2"
)

func versionCmd(*cli.Context) error {
	postman.PrintVersion(os.Stdout)
	return nil
}
