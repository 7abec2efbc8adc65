package command

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/log"
)

// Request ...
type Request struct {
	Name string
	Args []string
	Dir  string
	// Env holds KEY=value overrides added on top of the process environment.
	Env []string
	// Stream also forwards the command output to the process stdout/stderr.
	Stream bool
}

// Result ...
type Result struct {
	ExitCode int
	Output   string
}

// Executor runs external commands. Every child process of both tools goes through it,
// so tests can substitute a fake.
type Executor interface {
	Execute(req Request) (Result, error)
}

type executor struct {
	logger         log.Logger
	commandFactory command.Factory
}

// NewExecutor ...
func NewExecutor(logger log.Logger, commandFactory command.Factory) Executor {
	return &executor{
		logger:         logger,
		commandFactory: commandFactory,
	}
}

// Execute runs the command to completion. A non-zero exit is returned as an error together
// with the exit code; a command that could not be started reports exit code -1.
func (e *executor) Execute(req Request) (Result, error) {
	var outBuffer bytes.Buffer

	// stdout and stderr share one writer so the buffer is never written concurrently
	var outWriter io.Writer
	if req.Stream {
		outWriter = CreateBufferedWriter(&outBuffer, os.Stdout)
	} else {
		outWriter = CreateBufferedWriter(&outBuffer)
	}

	cmd := e.commandFactory.Create(req.Name, req.Args, &command.Opts{
		Stdout: outWriter,
		Stderr: outWriter,
		Env:    req.Env,
		Dir:    req.Dir,
	})

	e.logger.Debugf("$ %s", PrintableCommandArgsWithEnvs(append([]string{req.Name}, req.Args...), req.Env))

	exitCode, err := cmd.RunAndReturnExitCode()
	if err != nil && exitCode == 0 {
		exitCode = -1
	}

	return Result{
		ExitCode: exitCode,
		Output:   outBuffer.String(),
	}, err
}

// PrintableCommandArgs ...
func PrintableCommandArgs(fullCommandArgs []string) string {
	return PrintableCommandArgsWithEnvs(fullCommandArgs, []string{})
}

// PrintableCommandArgsWithEnvs ...
func PrintableCommandArgsWithEnvs(fullCommandArgs []string, envs []string) string {
	cmdArgsDecorated := []string{}
	for idx, anArg := range fullCommandArgs {
		quotedArg := strconv.Quote(anArg)
		if idx == 0 {
			quotedArg = anArg
		}
		cmdArgsDecorated = append(cmdArgsDecorated, quotedArg)
	}

	fullCmdArgs := cmdArgsDecorated
	if len(envs) > 0 {
		fullCmdArgs = []string{"env"}
		for _, anArg := range envs {
			quotedArg := strconv.Quote(anArg)
			fullCmdArgs = append(fullCmdArgs, quotedArg)
		}
		fullCmdArgs = append(fullCmdArgs, cmdArgsDecorated...)
	}

	return strings.Join(fullCmdArgs, " ")
}

// CreateBufferedWriter ...
func CreateBufferedWriter(buff *bytes.Buffer, writers ...io.Writer) io.Writer {
	if len(writers) > 0 {
		allWriters := append([]io.Writer{buff}, writers...)
		return io.MultiWriter(allWriters...)
	}
	return io.Writer(buff)
}
