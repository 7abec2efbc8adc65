package step

import (
	"errors"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/kernelci/kernelci-rootfs/fluster"
	"github.com/kernelci/kernelci-rootfs/lava"
)

// Input is read from the environment.
type Input struct {
	FlusterPath string `env:"FLUSTER_PATH"`
	Path        string `env:"PATH"`
}

// Flags are the command line options of fluster-parser.
type Flags struct {
	ResultsOnly bool
	RunOnly     bool
	ResultsPath string
	TestSuite   string
	Timeout     string
	Jobs        string
	Decoders    []string
	SkipVectors []string
	Verbose     bool
}

// Config ...
type Config struct {
	ResultsOnly bool
	RunOnly     bool
	ResultsPath string
	Fluster     fluster.Params
	Search      lava.SearchContext
	Verbose     bool
}

// ConfigParser ...
type ConfigParser struct {
	inputParser stepconf.InputParser
	logger      log.Logger
}

// NewConfigParser ...
func NewConfigParser(inputParser stepconf.InputParser, logger log.Logger) ConfigParser {
	return ConfigParser{
		inputParser: inputParser,
		logger:      logger,
	}
}

// ProcessConfig merges the flags with the environment. privileged tells whether the tool runs
// as root, which changes where the LAVA helpers are searched.
func (p ConfigParser) ProcessConfig(flags Flags, privileged bool) (Config, error) {
	var input Input
	if err := p.inputParser.Parse(&input); err != nil {
		return Config{}, err
	}

	p.logger.EnableDebugLog(flags.Verbose)
	if flags.Verbose {
		stepconf.Print(input)
		p.logger.Println()
	}

	if flags.ResultsOnly && flags.RunOnly {
		return Config{}, errors.New("--results and --run are mutually exclusive")
	}
	if !flags.ResultsOnly && len(flags.Decoders) == 0 {
		return Config{}, errors.New("--decoders is required to run fluster")
	}

	resultsPath := flags.ResultsPath
	if resultsPath == "" {
		resultsPath = fluster.DefaultResultsPath
	}

	installDir := input.FlusterPath
	if installDir == "" {
		installDir = fluster.DefaultInstallDir
	}

	return Config{
		ResultsOnly: flags.ResultsOnly,
		RunOnly:     flags.RunOnly,
		ResultsPath: resultsPath,
		Fluster: fluster.Params{
			InstallDir:  installDir,
			ResultsPath: resultsPath,
			TestSuite:   flags.TestSuite,
			Timeout:     flags.Timeout,
			Jobs:        flags.Jobs,
			Decoders:    flags.Decoders,
			SkipVectors: flags.SkipVectors,
			Verbose:     flags.Verbose,
		},
		Search: lava.SearchContext{
			Path:       input.Path,
			Privileged: privileged,
		},
		Verbose: flags.Verbose,
	}, nil
}
