// Package lava reports test sets and cases to the LAVA test harness through its
// lava-test-set and lava-test-case helpers.
package lava

import (
	"fmt"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/kernelci/kernelci-rootfs/command"
)

// Result is the result tag of a reported case.
type Result string

// Result tags ...
const (
	ResultPass Result = "pass"
	ResultFail Result = "fail"
	ResultSkip Result = "skip"
)

// Helper executables ...
const (
	TestSetCommand  = "lava-test-set"
	TestCaseCommand = "lava-test-case"
)

// Sink receives set and case events.
type Sink interface {
	StartSet(name string) error
	StopSet() error
	RecordCase(name string, result Result) error
}

type cliSink struct {
	logger   log.Logger
	executor command.Executor
	setCmd   string
	caseCmd  string
}

// NewCLISink returns a sink that calls the LAVA helper executables.
func NewCLISink(logger log.Logger, executor command.Executor, setCmd, caseCmd string) Sink {
	return &cliSink{
		logger:   logger,
		executor: executor,
		setCmd:   setCmd,
		caseCmd:  caseCmd,
	}
}

func (s cliSink) StartSet(name string) error {
	return s.run(s.setCmd, "start", name)
}

func (s cliSink) StopSet() error {
	return s.run(s.setCmd, "stop")
}

func (s cliSink) RecordCase(name string, result Result) error {
	return s.run(s.caseCmd, name, "--result", string(result))
}

func (s cliSink) run(name string, args ...string) error {
	result, err := s.executor.Execute(command.Request{
		Name:   name,
		Args:   args,
		Stream: true,
	})
	if err != nil {
		return fmt.Errorf("%s failed (exit code %d): %w", command.PrintableCommandArgs(append([]string{name}, args...)), result.ExitCode, err)
	}
	return nil
}

type echoSink struct {
	logger log.Logger
}

// NewEchoSink returns a sink that only prints the helper invocations. It is used outside of a
// LAVA job, where the helpers are not installed.
func NewEchoSink(logger log.Logger) Sink {
	return &echoSink{logger: logger}
}

func (s echoSink) StartSet(name string) error {
	s.echo("start", name)
	return nil
}

func (s echoSink) StopSet() error {
	s.echo("stop")
	return nil
}

func (s echoSink) RecordCase(name string, result Result) error {
	s.echo(name, "--result", string(result))
	return nil
}

func (s echoSink) echo(args ...string) {
	s.logger.Printf("%s", strings.Join(args, " "))
}
