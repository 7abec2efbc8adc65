package rootfs

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/docker/docker/api/types"
	"github.com/kernelci/kernelci-rootfs/command"
	commandmocks "github.com/kernelci/kernelci-rootfs/command/mocks"
	"github.com/kernelci/kernelci-rootfs/rootfs/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sudoDockerVersion = command.Request{Name: "sudo", Args: []string{"docker", "version"}}

func Test_GivenDaemonAnswers_WhenDetectingSudo_ThenSudoIsNotNeeded(t *testing.T) {
	// Given
	executor := commandmocks.NewExecutor(t)
	daemon := mocks.NewDaemonClient(t)
	daemon.On("Ping", mock.Anything).Return(types.Ping{APIVersion: "1.43"}, nil)
	runtime := NewDockerRuntime(log.NewLogger(), executor, daemon)

	// When
	sudo := runtime.DetectSudo(context.Background())

	// Then
	assert.False(t, sudo)
	executor.AssertNotCalled(t, "Execute", mock.Anything)
}

func Test_GivenDaemon_WhenDetectingSudo_ThenPingHasADeadline(t *testing.T) {
	// Given
	executor := commandmocks.NewExecutor(t)
	daemon := mocks.NewDaemonClient(t)
	daemon.On("Ping", mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && time.Until(deadline) <= PingTimeout
	})).Return(types.Ping{}, nil).Once()
	runtime := NewDockerRuntime(log.NewLogger(), executor, daemon)

	// When
	sudo := runtime.DetectSudo(context.Background())

	// Then
	assert.False(t, sudo)
}

func Test_GivenDaemonNeedsRoot_WhenDetectingSudo_ThenUsesSudo(t *testing.T) {
	// Given
	executor := commandmocks.NewExecutor(t)
	executor.On("Execute", sudoDockerVersion).Return(command.Result{}, nil).Once()
	daemon := mocks.NewDaemonClient(t)
	daemon.On("Ping", mock.Anything).Return(types.Ping{}, errors.New("permission denied while trying to connect to the Docker daemon socket"))
	runtime := NewDockerRuntime(log.NewLogger(), executor, daemon)

	// When
	sudo := runtime.DetectSudo(context.Background())

	// Then
	assert.True(t, sudo)
}

func Test_GivenNoWayToReachDaemon_WhenDetectingSudo_ThenDoesNotUseSudo(t *testing.T) {
	// Given
	executor := commandmocks.NewExecutor(t)
	executor.On("Execute", sudoDockerVersion).Return(command.Result{ExitCode: 1}, errors.New("exit status 1")).Once()
	runtime := NewDockerRuntime(log.NewLogger(), executor, nil)

	// When
	sudo := runtime.DetectSudo(context.Background())

	// Then
	assert.False(t, sudo)
}

func Test_GivenRunningDaemon_WhenChecking_ThenReturnsItsVersion(t *testing.T) {
	// Given
	executor := commandmocks.NewExecutor(t)
	executor.On("Execute", command.Request{Name: "docker", Args: []string{"version", "--format", "{{.Server.Version}}"}}).
		Return(command.Result{Output: "24.0.7\n"}, nil)
	runtime := NewDockerRuntime(log.NewLogger(), executor, nil)

	// When
	daemonVersion, err := runtime.Check(false)

	// Then
	require.NoError(t, err)
	require.NotNil(t, daemonVersion)
	assert.Equal(t, "24.0.7", daemonVersion.String())
}

func Test_GivenUnparsableVersion_WhenChecking_ThenStillSucceeds(t *testing.T) {
	// Given
	executor := commandmocks.NewExecutor(t)
	executor.On("Execute", mock.Anything).Return(command.Result{Output: "dev"}, nil)
	runtime := NewDockerRuntime(log.NewLogger(), executor, nil)

	// When
	daemonVersion, err := runtime.Check(true)

	// Then
	require.NoError(t, err)
	assert.Nil(t, daemonVersion)
}

func Test_GivenFailingDaemon_WhenChecking_ThenRuntimeUnavailable(t *testing.T) {
	tests := []struct {
		name        string
		sudo        bool
		request     command.Request
		result      command.Result
		err         error
		wantMessage string
	}{
		{
			name:        "Without sudo",
			request:     command.Request{Name: "docker", Args: []string{"version", "--format", "{{.Server.Version}}"}},
			result:      command.Result{ExitCode: 1, Output: "permission denied"},
			err:         errors.New("exit status 1"),
			wantMessage: "Docker is not accessible. Try running with --sudo if Docker requires sudo.",
		},
		{
			name:        "With sudo",
			sudo:        true,
			request:     command.Request{Name: "sudo", Args: []string{"docker", "version", "--format", "{{.Server.Version}}"}},
			result:      command.Result{ExitCode: 1, Output: "Cannot connect to the Docker daemon"},
			err:         errors.New("exit status 1"),
			wantMessage: "Docker is not running or not accessible even with sudo. Make sure Docker is installed and the daemon is running.",
		},
		{
			name:        "Docker not installed",
			request:     command.Request{Name: "docker", Args: []string{"version", "--format", "{{.Server.Version}}"}},
			result:      command.Result{ExitCode: -1},
			err:         fmt.Errorf("executing command failed (docker version): %w", &exec.Error{Name: "docker", Err: exec.ErrNotFound}),
			wantMessage: "docker command not found. Please install Docker first.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := commandmocks.NewExecutor(t)
			executor.On("Execute", tt.request).Return(tt.result, tt.err)
			runtime := NewDockerRuntime(log.NewLogger(), executor, nil)

			_, err := runtime.Check(tt.sudo)

			require.Error(t, err)
			assert.True(t, IsRuntimeUnavailableError(err))
			assert.EqualError(t, err, tt.wantMessage)
		})
	}
}
