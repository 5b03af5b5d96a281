package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "coleta",
		Usage: "E-waste pickup scheduling API",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Debug logging and gin debug mode",
			},
		},
		Commands: []*cli.Command{
			serveCommand,
			setupCommand,
		},
		Action: serve,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}

func newLogger(cCtx *cli.Context) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cCtx.Bool("debug") {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
