package lava

import (
	"path/filepath"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/kernelci/kernelci-rootfs/command"
)

// sbinDirs are searched in addition to PATH when not running as root, since unprivileged
// PATH usually lacks them.
var sbinDirs = []string{"/usr/local/sbin", "/usr/sbin", "/sbin"}

// SearchContext describes the environment the helper executables are looked up in.
type SearchContext struct {
	Path       string
	Privileged bool
}

// SearchDirs ...
func (c SearchContext) SearchDirs() []string {
	dirs := strings.Split(c.Path, string(filepath.ListSeparator))
	if !c.Privileged {
		dirs = append(dirs, sbinDirs...)
	}
	return dirs
}

// Resolver picks the sink matching the environment.
type Resolver interface {
	Resolve(ctx SearchContext) Sink
}

type resolver struct {
	logger      log.Logger
	pathChecker pathutil.PathChecker
	executor    command.Executor
}

// NewResolver ...
func NewResolver(logger log.Logger, pathChecker pathutil.PathChecker, executor command.Executor) Resolver {
	return &resolver{
		logger:      logger,
		pathChecker: pathChecker,
		executor:    executor,
	}
}

// Resolve returns the CLI sink when lava-test-case is installed and the echo sink otherwise.
// A missing helper is not an error.
func (r resolver) Resolve(ctx SearchContext) Sink {
	casePath := r.FindExecutable(ctx, TestCaseCommand)
	if casePath == "" {
		r.logger.Warnf("%s not found, test results are only printed", TestCaseCommand)
		return NewEchoSink(r.logger)
	}

	r.logger.Debugf("Reporting test results with %s", casePath)
	return NewCLISink(r.logger, r.executor, TestSetCommand, TestCaseCommand)
}

// FindExecutable returns the first regular file called name in the search dirs, or an empty string.
func (r resolver) FindExecutable(ctx SearchContext, name string) string {
	for _, dir := range ctx.SearchDirs() {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if r.isFile(candidate) {
			return candidate
		}
	}
	return ""
}

// isFile follows symlinks: a link counts only if its target is an existing regular file.
func (r resolver) isFile(pth string) bool {
	target, err := filepath.EvalSymlinks(pth)
	if err != nil {
		return false
	}

	exist, err := r.pathChecker.IsPathExists(target)
	if err != nil || !exist {
		return false
	}
	isDir, err := r.pathChecker.IsDirExists(target)
	if err != nil {
		return false
	}
	return !isDir
}
