package rootfs

import (
	"fmt"
	"strconv"
	"strings"
)

// Paths inside the debos container.
const (
	ContainerConfigDir = "/configs"
	ContainerOutputDir = "/output"
	RecipePath         = "/configs/debos/rootfs.yaml"
)

// TemplateVar is a debos -t key:value pair.
type TemplateVar struct {
	Key   string
	Value string
}

// TemplateVars expands a configuration into debos template variables, in a fixed order and
// without the empty ones.
func TemplateVars(cfg Config, arch string) []TemplateVar {
	all := []TemplateVar{
		{Key: "architecture", Value: arch},
		{Key: "suite", Value: cfg.Release()},
		{Key: "basename", Value: cfg.Name},
		{Key: "extra_packages", Value: strings.Join(cfg.ExtraPackages, " ")},
		{Key: "extra_packages_remove", Value: strings.Join(cfg.ExtraPackagesRemove, " ")},
		{Key: "extra_firmware_packages", Value: strings.Join(cfg.ExtraFirmwarePackages, " ")},
		{Key: "script", Value: cfg.Script},
		{Key: "test_overlay", Value: cfg.TestOverlay},
		{Key: "crush_image_options", Value: cfg.CrushImageOptions},
	}

	var vars []TemplateVar
	for _, v := range all {
		if v.Value != "" {
			vars = append(vars, v)
		}
	}
	return vars
}

// DebosArgs builds the debos command line run inside the container.
func DebosArgs(cfg Config, vars []TemplateVar, extraArgs []string) []string {
	var args []string

	if cfg.CPUCount != nil {
		args = append(args, "--cpus", strconv.Itoa(*cfg.CPUCount))
	}
	if cfg.DebosMemory != nil {
		args = append(args, "--memory", *cfg.DebosMemory)
	}
	if cfg.Scratchsize != nil {
		args = append(args, "--scratchsize", *cfg.Scratchsize)
	}

	for _, v := range vars {
		args = append(args, "-t", fmt.Sprintf("%s:%s", v.Key, v.Value))
	}

	args = append(args, extraArgs...)
	return append(args, RecipePath)
}

// ContainerParams ...
type ContainerParams struct {
	Sudo      bool
	ConfigDir string
	OutputDir string
	KVM       bool
	Image     string
	DebosArgs []string
}

// DockerCommand returns the full argv of the container run, sudo included.
func DockerCommand(params ContainerParams) []string {
	cmd := dockerPrefix(params.Sudo)
	cmd = append(cmd,
		"run", "--rm",
		"-v", fmt.Sprintf("%s:%s:ro", params.ConfigDir, ContainerConfigDir),
		"-v", fmt.Sprintf("%s:%s", params.OutputDir, ContainerOutputDir),
		"-w", ContainerOutputDir,
	)
	if params.KVM {
		cmd = append(cmd, "--device", KVMDevice)
	}
	cmd = append(cmd, params.Image)
	return append(cmd, params.DebosArgs...)
}

func dockerPrefix(sudo bool) []string {
	if sudo {
		return []string{"sudo", "docker"}
	}
	return []string{"docker"}
}
