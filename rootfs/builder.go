package rootfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	v1pathutil "github.com/bitrise-io/go-utils/pathutil"
	"github.com/bitrise-io/go-utils/progress"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/kernelci/kernelci-rootfs/command"
)

// KVMDevice is passed to the container when it exists on the host.
const KVMDevice = "/dev/kvm"

// Defaults of the command line.
const (
	DefaultConfigDir   = "configs"
	DefaultOutputDir   = "output"
	DefaultDockerImage = "godebos/debos"
)

// Options ...
type Options struct {
	ConfigDir   string
	OutputDir   string
	DockerImage string
	Verbose     bool
	// Sudo forces sudo on or off; nil means detect.
	Sudo *bool
}

// BuildRequest ...
type BuildRequest struct {
	ConfigName string
	Arch       string
	ExtraArgs  []string
}

// Builder ...
type Builder struct {
	logger       log.Logger
	executor     command.Executor
	runtime      Runtime
	pathChecker  pathutil.PathChecker
	pathModifier pathutil.PathModifier
	store        Store
	opts         Options

	kvmDevice string
	uid       int
	gid       int
}

// NewBuilder ...
func NewBuilder(logger log.Logger, executor command.Executor, runtime Runtime, pathChecker pathutil.PathChecker, pathModifier pathutil.PathModifier, store Store, opts Options) Builder {
	return Builder{
		logger:       logger,
		executor:     executor,
		runtime:      runtime,
		pathChecker:  pathChecker,
		pathModifier: pathModifier,
		store:        store,
		opts:         opts,
		kvmDevice:    KVMDevice,
		uid:          os.Getuid(),
		gid:          os.Getgid(),
	}
}

// Build validates the request and builds the image with the backend the configuration names.
// Nothing touches the container runtime before the request is validated.
func (b Builder) Build(ctx context.Context, req BuildRequest) error {
	cfg, err := b.store.Get(req.ConfigName)
	if err != nil {
		return err
	}
	if err := cfg.ValidateArch(req.Arch); err != nil {
		return err
	}

	b.logger.Infof("Building %s for %s", cfg.Name, req.Arch)

	if cfg.IsBuildroot() {
		return b.BuildBuildroot(cfg, req.Arch)
	}
	return b.BuildDebos(ctx, cfg, req.Arch, req.ExtraArgs)
}

// BuildDebos runs debos in a container.
func (b Builder) BuildDebos(ctx context.Context, cfg Config, arch string, extraArgs []string) error {
	sudo := b.useSudo(ctx)
	if sudo {
		b.logger.Debugf("Using sudo for Docker commands")
	}

	if _, err := b.runtime.Check(sudo); err != nil {
		return err
	}

	configDir, err := b.pathModifier.AbsPath(b.opts.ConfigDir)
	if err != nil {
		return fmt.Errorf("failed to resolve config dir (%s): %w", b.opts.ConfigDir, err)
	}
	outputDir, err := b.pathModifier.AbsPath(b.opts.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output dir (%s): %w", b.opts.OutputDir, err)
	}
	archOutputDir := filepath.Join(outputDir, arch)
	if err := v1pathutil.EnsureDirExist(archOutputDir); err != nil {
		return fmt.Errorf("failed to create output dir (%s): %w", archOutputDir, err)
	}

	argv := DockerCommand(ContainerParams{
		Sudo:      sudo,
		ConfigDir: configDir,
		OutputDir: archOutputDir,
		KVM:       b.kvmAvailable(),
		Image:     b.opts.DockerImage,
		DebosArgs: DebosArgs(cfg, TemplateVars(cfg, arch), extraArgs),
	})

	b.logger.Debugf("Running: %s", command.PrintableCommandArgs(argv))
	b.logger.Debugf("Output directory: %s", archOutputDir)

	request := command.Request{Name: argv[0], Args: argv[1:], Stream: b.opts.Verbose}

	var result command.Result
	if b.opts.Verbose {
		result, err = b.executor.Execute(request)
	} else {
		progress.SimpleProgress(".", time.Minute, func() {
			result, err = b.executor.Execute(request)
		})
	}
	if err != nil {
		if !b.opts.Verbose && result.Output != "" {
			b.logger.Printf("Build output:\n%s", result.Output)
		}
		return fmt.Errorf("build failed with exit code %d: %w", result.ExitCode, err)
	}

	if sudo {
		if err := b.chown(archOutputDir); err != nil {
			return err
		}
	}

	b.logger.Donef("Build completed successfully. Output in: %s", archOutputDir)
	return nil
}

// BuildBuildroot is the buildroot backend. It is not implemented and always fails.
func (b Builder) BuildBuildroot(cfg Config, arch string) error {
	if !cfg.IsBuildroot() {
		return &ConfigurationError{Message: fmt.Sprintf("configuration %s is not a Buildroot config", cfg.Name)}
	}
	return fmt.Errorf("buildroot builds not yet implemented for %s (%s)", cfg.Name, arch)
}

func (b Builder) useSudo(ctx context.Context) bool {
	if b.opts.Sudo != nil {
		return *b.opts.Sudo
	}
	return b.runtime.DetectSudo(ctx)
}

func (b Builder) kvmAvailable() bool {
	exists, err := b.pathChecker.IsPathExists(b.kvmDevice)
	if err != nil {
		b.logger.Debugf("Failed to check %s: %s", b.kvmDevice, err)
		return false
	}
	return exists
}

func (b Builder) chown(dir string) error {
	owner := fmt.Sprintf("%d:%d", b.uid, b.gid)
	b.logger.Debugf("Changing ownership of output files to %s", owner)

	result, err := b.executor.Execute(command.Request{
		Name: "sudo",
		Args: []string{"chown", "-R", owner, dir},
	})
	if err != nil {
		return fmt.Errorf("failed to change ownership of %s (exit code %d): %w", dir, result.ExitCode, err)
	}
	return nil
}
