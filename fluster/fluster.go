// Package fluster runs the fluster decoder conformance suite.
package fluster

import (
	"fmt"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/kernelci/kernelci-rootfs/command"
	"github.com/kernelci/kernelci-rootfs/fileremover"
)

// Defaults of the fluster overlay in the rootfs image.
const (
	DefaultInstallDir  = "/opt/fluster"
	DefaultResultsPath = "/tmp/results.xml"
)

// Params ...
type Params struct {
	InstallDir  string
	ResultsPath string

	TestSuite   string
	Timeout     string
	Jobs        string
	Decoders    []string
	SkipVectors []string
	Verbose     bool
}

// Runner ...
type Runner interface {
	Run(params Params) error
}

type runner struct {
	logger      log.Logger
	executor    command.Executor
	fileRemover fileremover.FileRemover
}

// NewRunner ...
func NewRunner(logger log.Logger, executor command.Executor, fileRemover fileremover.FileRemover) Runner {
	return &runner{
		logger:      logger,
		executor:    executor,
		fileRemover: fileRemover,
	}
}

// Run executes fluster and waits for it. Its exit code says nothing about the report, so it is
// only logged: the caller decides success from the report file.
func (r runner) Run(params Params) error {
	if len(params.Decoders) == 0 {
		return fmt.Errorf("at least one decoder is required to run fluster")
	}

	// a report left over from an earlier run would be picked up as this run's result
	if err := r.fileRemover.Remove(params.ResultsPath); err != nil {
		return fmt.Errorf("failed to remove previous report (%s): %w", params.ResultsPath, err)
	}

	args := Args(params)
	r.logger.Infof("Running fluster tests")
	r.logger.Printf("$ %s", command.PrintableCommandArgs(append([]string{"python3"}, args...)))

	result, err := r.executor.Execute(command.Request{
		Name:   "python3",
		Args:   args,
		Dir:    params.InstallDir,
		Stream: true,
	})
	if err != nil {
		r.logger.Warnf("fluster exited with code %d: %s", result.ExitCode, err)
	}

	return nil
}

// Args builds the fluster.py command line. Multi-value options are written once, before their
// first value.
func Args(params Params) []string {
	args := []string{"fluster.py", "-ne", "run", "-f", "junitxml", "-so", params.ResultsPath}

	if params.Verbose {
		args = append(args, "-v")
	}
	if params.TestSuite != "" {
		args = append(args, "-ts", params.TestSuite)
	}
	if params.Timeout != "" {
		args = append(args, "-t", params.Timeout)
	}
	if params.Jobs != "" {
		args = append(args, "-j", params.Jobs)
	}
	args = appendList(args, "-sv", params.SkipVectors)
	args = appendList(args, "-d", params.Decoders)

	return args
}

func appendList(args []string, flag string, values []string) []string {
	for idx, value := range values {
		if idx == 0 {
			args = append(args, flag)
		}
		args = append(args, value)
	}
	return args
}
