package cmd

import (
	"os"

	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("pathtracer")

func setupLogging(ctx *cli.Context) {
	log.SetLevel(log.ForVerbosity(ctx.GlobalBool("v"), ctx.GlobalBool("vv")))
}

// Fatal logs err and exits with a non-zero status.
func Fatal(err error) {
	logger.Error(err)
	os.Exit(1)
}
