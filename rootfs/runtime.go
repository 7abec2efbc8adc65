package rootfs

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
	version "github.com/hashicorp/go-version"
	"github.com/kernelci/kernelci-rootfs/command"
)

// PingTimeout bounds the unprivileged daemon ping of sudo detection.
const PingTimeout = 5 * time.Second

// DaemonClient is the part of the Docker SDK used to reach the daemon.
type DaemonClient interface {
	Ping(ctx context.Context) (types.Ping, error)
	Close() error
}

// NewDaemonClient connects to the daemon configured by the DOCKER_* environment.
func NewDaemonClient() (DaemonClient, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, err
	}
	return cli, nil
}

// Runtime ...
type Runtime interface {
	// DetectSudo tells whether docker has to be run through sudo.
	DetectSudo(ctx context.Context) bool
	// Check verifies that the daemon answers and returns its version.
	Check(sudo bool) (*version.Version, error)
}

type dockerRuntime struct {
	logger   log.Logger
	executor command.Executor
	daemon   DaemonClient
}

// NewDockerRuntime creates a Runtime. daemon may be nil if the SDK client could not be created,
// then detection falls back to the docker CLI.
func NewDockerRuntime(logger log.Logger, executor command.Executor, daemon DaemonClient) Runtime {
	return &dockerRuntime{
		logger:   logger,
		executor: executor,
		daemon:   daemon,
	}
}

func (r dockerRuntime) DetectSudo(ctx context.Context) bool {
	if r.daemon != nil {
		pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
		_, err := r.daemon.Ping(pingCtx)
		cancel()
		if err == nil {
			return false
		}
		r.logger.Debugf("Docker daemon not reachable without sudo: %s", err)
	}

	result, err := r.executor.Execute(command.Request{Name: "sudo", Args: []string{"docker", "version"}})
	if err != nil {
		r.logger.Debugf("sudo docker version failed (exit code %d): %s", result.ExitCode, err)
		return false
	}
	return true
}

func (r dockerRuntime) Check(sudo bool) (*version.Version, error) {
	cmd := append(dockerPrefix(sudo), "version", "--format", "{{.Server.Version}}")

	result, err := r.executor.Execute(command.Request{Name: cmd[0], Args: cmd[1:]})
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, &RuntimeUnavailableError{
				Sudo:    sudo,
				Message: fmt.Sprintf("%s command not found. Please install Docker first.", cmd[0]),
				Err:     err,
			}
		}

		r.logger.Debugf("Docker check failed: %s", result.Output)
		if sudo {
			return nil, &RuntimeUnavailableError{
				Sudo:    true,
				Message: "Docker is not running or not accessible even with sudo. Make sure Docker is installed and the daemon is running.",
				Err:     err,
			}
		}
		return nil, &RuntimeUnavailableError{
			Message: "Docker is not accessible. Try running with --sudo if Docker requires sudo.",
			Err:     err,
		}
	}

	raw := strings.TrimSpace(result.Output)
	daemonVersion, err := version.NewVersion(raw)
	if err != nil {
		r.logger.Warnf("Failed to parse Docker daemon version (%s): %s", raw, err)
		return nil, nil
	}

	r.logger.Printf("Docker daemon version: %s", daemonVersion.String())
	return daemonVersion, nil
}
