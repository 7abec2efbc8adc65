package main

import (
	"github.com/kernelci/kernelci-rootfs/rootfs"
	"github.com/urfave/cli/v2"
)

const EnvVarPrefix = "ROOTFS"

// ExtraArgsFlag ends the options: everything after it goes to debos unchanged.
const ExtraArgsFlag = "extra-args"

var (
	ConfigName = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Rootfs configuration name",
	}
	Arch = &cli.StringFlag{
		Name:    "arch",
		Aliases: []string{"a"},
		Usage:   "Target architecture (e.g. amd64, arm64, armhf)",
	}
	ConfigDir = &cli.StringFlag{
		Name:    "config-dir",
		Value:   rootfs.DefaultConfigDir,
		EnvVars: prefixEnvVar("CONFIG_DIR"),
		Usage:   "Directory containing " + rootfs.ConfigFileName + " and the debos recipes",
	}
	OutputDir = &cli.StringFlag{
		Name:    "output-dir",
		Aliases: []string{"o"},
		Value:   rootfs.DefaultOutputDir,
		EnvVars: prefixEnvVar("OUTPUT_DIR"),
		Usage:   "Output directory for built images",
	}
	DockerImage = &cli.StringFlag{
		Name:    "docker-image",
		Aliases: []string{"d"},
		Value:   rootfs.DefaultDockerImage,
		EnvVars: prefixEnvVar("DOCKER_IMAGE"),
		Usage:   "Docker image to use for debos builds",
	}
	ListConfigs = &cli.BoolFlag{
		Name:  "list-configs",
		Usage: "List all available configurations and exit",
	}
	Verbose = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Stream the build output and enable debug logging",
	}
	Sudo = &cli.BoolFlag{
		Name:  "sudo",
		Usage: "Use sudo for Docker commands",
	}
	NoSudo = &cli.BoolFlag{
		Name:  "no-sudo",
		Usage: "Do not use sudo for Docker commands, even if detected",
	}
	DebosOptions = &cli.StringFlag{
		Name:    "debos-options",
		EnvVars: prefixEnvVar("DEBOS_OPTIONS"),
		Usage:   "Shell quoted options passed to debos before the extra args",
	}
	ExtraArgs = &cli.BoolFlag{
		Name:  ExtraArgsFlag,
		Usage: "Pass every following argument to debos",
	}
)

// Flags ...
var Flags = []cli.Flag{
	ConfigName,
	Arch,
	ConfigDir,
	OutputDir,
	DockerImage,
	ListConfigs,
	Verbose,
	Sudo,
	NoSudo,
	DebosOptions,
	ExtraArgs,
}

func prefixEnvVar(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

// splitExtraArgs cuts the command line at --extra-args.
func splitExtraArgs(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--"+ExtraArgsFlag || arg == "-"+ExtraArgsFlag {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

func sudoFromContext(c *cli.Context) *bool {
	var useSudo bool
	switch {
	case c.Bool(Sudo.Name):
		useSudo = true
	case c.Bool(NoSudo.Name):
		useSudo = false
	default:
		return nil
	}
	return &useSudo
}
