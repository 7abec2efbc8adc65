package main

import (
	"strings"

	"github.com/kernelci/kernelci-rootfs/fluster"
	"github.com/kernelci/kernelci-rootfs/step"
	"github.com/urfave/cli/v2"
)

var (
	ResultsOnly = &cli.BoolFlag{
		Name:  "results",
		Usage: "Parse an existing fluster report without running fluster (can't be combined with --run)",
	}
	RunOnly = &cli.BoolFlag{
		Name:  "run",
		Usage: "Run fluster without parsing its report (can't be combined with --results)",
	}
	ResultsFile = &cli.StringFlag{
		Name:    "results-file",
		Value:   fluster.DefaultResultsPath,
		EnvVars: []string{"FLUSTER_RESULTS_FILE"},
		Usage:   "Path of the JUnit XML report fluster writes",
	}
	TestSuite = &cli.StringFlag{
		Name:    "test-suite",
		Aliases: []string{"ts"},
		Usage:   "Run only this fluster test suite",
	}
	Timeout = &cli.StringFlag{
		Name:    "timeout",
		Aliases: []string{"t"},
		Usage:   "Timeout in seconds for each test vector",
	}
	Jobs = &cli.StringFlag{
		Name:    "jobs",
		Aliases: []string{"j"},
		Usage:   "Number of parallel fluster jobs",
	}
	Decoders = &cli.StringSliceFlag{
		Name:    "decoders",
		Aliases: []string{"d"},
		Usage:   "Decoders to test, space separated",
	}
	SkipVectors = &cli.StringSliceFlag{
		Name:    "skip-vectors",
		Aliases: []string{"sv"},
		Usage:   "Test vectors to skip, space separated",
	}
	Verbose = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Verbose fluster output and debug logging",
	}
)

// Flags ...
var Flags = []cli.Flag{
	ResultsOnly,
	RunOnly,
	ResultsFile,
	TestSuite,
	Timeout,
	Jobs,
	Decoders,
	SkipVectors,
	Verbose,
}

var listFlags = []cli.Flag{Decoders, SkipVectors}

func flagsFromContext(c *cli.Context) step.Flags {
	return step.Flags{
		ResultsOnly: c.Bool(ResultsOnly.Name),
		RunOnly:     c.Bool(RunOnly.Name),
		ResultsPath: c.String(ResultsFile.Name),
		TestSuite:   c.String(TestSuite.Name),
		Timeout:     c.String(Timeout.Name),
		Jobs:        c.String(Jobs.Name),
		Decoders:    c.StringSlice(Decoders.Name),
		SkipVectors: c.StringSlice(SkipVectors.Name),
		Verbose:     c.Bool(Verbose.Name),
	}
}

// expandListFlags rewrites "--decoders a b" into "--decoders a --decoders b", the form the flag
// parser understands. Values run until the next argument starting with a dash. The
// "--decoders=a b" form is expanded the same way.
func expandListFlags(args []string, flags []cli.Flag) []string {
	names := map[string]bool{}
	for _, flag := range flags {
		for _, name := range flag.Names() {
			names["-"+name] = true
			names["--"+name] = true
		}
	}

	var expanded []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		expanded = append(expanded, arg)

		flag, hasValue := arg, false
		if idx := strings.Index(arg, "="); idx > 0 {
			flag, hasValue = arg[:idx], true
		}
		if !names[flag] {
			continue
		}

		for first := !hasValue; i+1 < len(args) && !strings.HasPrefix(args[i+1], "-"); first = false {
			i++
			if !first {
				expanded = append(expanded, flag)
			}
			expanded = append(expanded, args[i])
		}
	}
	return expanded
}
