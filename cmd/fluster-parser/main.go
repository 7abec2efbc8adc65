package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	v2command "github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/errorutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/kernelci/kernelci-rootfs/command"
	"github.com/kernelci/kernelci-rootfs/fileremover"
	"github.com/kernelci/kernelci-rootfs/fluster"
	"github.com/kernelci/kernelci-rootfs/junitxml"
	"github.com/kernelci/kernelci-rootfs/lava"
	"github.com/kernelci/kernelci-rootfs/step"
	"github.com/urfave/cli/v2"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	logger := log.NewLogger()
	envRepository := env.NewRepository()

	app := newApp(func(flags step.Flags) error {
		configParser := step.NewConfigParser(stepconf.NewInputParser(envRepository), logger)
		cfg, err := configParser.ProcessConfig(flags, os.Geteuid() == 0)
		if err != nil {
			return fmt.Errorf("invalid options: %w", err)
		}

		return createParser(logger, envRepository).Run(cfg)
	})

	if err := app.Run(expandListFlags(args, listFlags)); err != nil {
		logger.Errorf("%s", errorutil.FormattedError(err))
		return 1
	}
	return 0
}

func newApp(action func(flags step.Flags) error) *cli.App {
	return &cli.App{
		Name:            "fluster-parser",
		Usage:           "Run fluster and report its results to LAVA",
		Flags:           Flags,
		HideHelpCommand: true,

		// decoder and vector names are passed through as they are, commas included
		DisableSliceFlagSeparator: true,
		Action: func(c *cli.Context) error {
			if c.Args().Present() {
				return fmt.Errorf("unexpected arguments: %s", strings.Join(c.Args().Slice(), " "))
			}
			return action(flagsFromContext(c))
		},
	}
}

func createParser(logger log.Logger, envRepository env.Repository) step.FlusterParser {
	pathChecker := pathutil.NewPathChecker()
	executor := command.NewExecutor(logger, v2command.NewFactory(envRepository))

	return step.NewFlusterParser(
		logger,
		lava.NewResolver(logger, pathChecker, executor),
		fluster.NewRunner(logger, executor, fileremover.NewFileRemover()),
		junitxml.NewReader(pathChecker),
	)
}
