package main

import (
	"errors"
	"fmt"
	"os"

	v2command "github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/errorutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/kernelci/kernelci-rootfs/command"
	"github.com/kernelci/kernelci-rootfs/rootfs"
	"github.com/urfave/cli/v2"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	logger := log.NewLogger()

	args, extraArgs := splitExtraArgs(args)
	if err := newApp(logger, extraArgs).Run(args); err != nil {
		logger.Errorf("%s", errorutil.FormattedError(err))
		return 1
	}
	return 0
}

func newApp(logger log.Logger, extraArgs []string) *cli.App {
	return &cli.App{
		Name:            "kernelci-rootfs",
		Usage:           "Build KernelCI rootfs images using Docker containers",
		Flags:           Flags,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			return build(c, logger, extraArgs)
		},
	}
}

func build(c *cli.Context, logger log.Logger, extraArgs []string) error {
	logger.EnableDebugLog(c.Bool(Verbose.Name))

	pathChecker := pathutil.NewPathChecker()
	store, err := rootfs.LoadStore(pathChecker, c.String(ConfigDir.Name))
	if err != nil {
		return err
	}

	if c.Bool(ListConfigs.Name) {
		logger.Printf("Available configurations:")
		for _, name := range store.List() {
			logger.Printf("  %s", name)
		}
		return nil
	}

	if c.String(ConfigName.Name) == "" || c.String(Arch.Name) == "" {
		return errors.New("--config and --arch are required for building")
	}

	debosOptions, err := shellquote.Split(c.String(DebosOptions.Name))
	if err != nil {
		return fmt.Errorf("invalid --debos-options: %w", err)
	}

	daemon, err := rootfs.NewDaemonClient()
	if err != nil {
		logger.Debugf("Docker SDK client unavailable: %s", err)
	} else {
		defer func() {
			if err := daemon.Close(); err != nil {
				logger.Debugf("Failed to close Docker SDK client: %s", err)
			}
		}()
	}

	executor := command.NewExecutor(logger, v2command.NewFactory(env.NewRepository()))
	builder := rootfs.NewBuilder(
		logger,
		executor,
		rootfs.NewDockerRuntime(logger, executor, daemon),
		pathChecker,
		pathutil.NewPathModifier(),
		store,
		rootfs.Options{
			ConfigDir:   c.String(ConfigDir.Name),
			OutputDir:   c.String(OutputDir.Name),
			DockerImage: c.String(DockerImage.Name),
			Verbose:     c.Bool(Verbose.Name),
			Sudo:        sudoFromContext(c),
		},
	)

	return builder.Build(c.Context, rootfs.BuildRequest{
		ConfigName: c.String(ConfigName.Name),
		Arch:       c.String(Arch.Name),
		ExtraArgs:  append(debosOptions, extraArgs...),
	})
}
