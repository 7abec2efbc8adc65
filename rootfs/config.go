// Package rootfs builds KernelCI root filesystem images with debos running in a container.
package rootfs

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bitrise-io/go-utils/fileutil"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the config directory.
const ConfigFileName = "rootfs-configs.yaml"

// DefaultDebianRelease is used when a configuration doesn't name one.
const DefaultDebianRelease = "bookworm"

// Config is one named entry of the rootfs_configs table.
type Config struct {
	Name string `yaml:"-"`

	ArchList              []string `yaml:"arch_list"`
	DebianRelease         string   `yaml:"debian_release"`
	ExtraPackages         []string `yaml:"extra_packages"`
	ExtraPackagesRemove   []string `yaml:"extra_packages_remove"`
	ExtraFirmwarePackages []string `yaml:"extra_firmware_packages"`
	Script                string   `yaml:"script"`
	TestOverlay           string   `yaml:"test_overlay"`
	CrushImageOptions     string   `yaml:"crush_image_options"`

	// Resource limits are passed to debos only when set.
	CPUCount    *int    `yaml:"cpu_count"`
	DebosMemory *string `yaml:"debos_memory"`
	Scratchsize *string `yaml:"scratchsize"`

	BuildrootBranch *string `yaml:"buildroot_branch"`
	// hasBuildrootKey is set when buildroot_branch is present, even with an empty value.
	hasBuildrootKey bool
}

// UnmarshalYAML decodes the record and remembers which backend keys were present.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type plain Config
	var decoded plain
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	*c = Config(decoded)

	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			if value.Content[i].Value == "buildroot_branch" {
				c.hasBuildrootKey = true
			}
		}
	}
	return nil
}

// IsBuildroot tells whether the configuration targets the buildroot backend. The presence of
// buildroot_branch decides, not its value.
func (c Config) IsBuildroot() bool {
	return c.hasBuildrootKey || c.BuildrootBranch != nil
}

// Release ...
func (c Config) Release() string {
	if c.DebianRelease == "" {
		return DefaultDebianRelease
	}
	return c.DebianRelease
}

// ValidateArch fails if the configuration restricts architectures and arch is not one of them.
func (c Config) ValidateArch(arch string) error {
	if len(c.ArchList) == 0 {
		return nil
	}
	for _, supported := range c.ArchList {
		if supported == arch {
			return nil
		}
	}
	return &ConfigurationError{
		Message: fmt.Sprintf("architecture %s not supported for %s, supported: %s", arch, c.Name, strings.Join(c.ArchList, ", ")),
	}
}

type configFile struct {
	RootfsConfigs map[string]Config `yaml:"rootfs_configs"`
}

// Store holds the named configurations.
type Store struct {
	configs map[string]Config
}

// NewStore ...
func NewStore(configs map[string]Config) Store {
	named := make(map[string]Config, len(configs))
	for name, cfg := range configs {
		cfg.Name = name
		named[name] = cfg
	}
	return Store{configs: named}
}

// LoadStore reads <configDir>/rootfs-configs.yaml.
func LoadStore(pathChecker pathutil.PathChecker, configDir string) (Store, error) {
	pth := filepath.Join(configDir, ConfigFileName)

	exists, err := pathChecker.IsPathExists(pth)
	if err != nil {
		return Store{}, &ConfigurationError{Message: fmt.Sprintf("failed to check configuration file (%s)", pth), Err: err}
	}
	if !exists {
		return Store{}, &ConfigurationError{Message: fmt.Sprintf("configuration file not found: %s", pth)}
	}

	content, err := fileutil.ReadBytesFromFile(pth)
	if err != nil {
		return Store{}, &ConfigurationError{Message: fmt.Sprintf("failed to read configuration file (%s)", pth), Err: err}
	}

	var file configFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return Store{}, &ConfigurationError{Message: fmt.Sprintf("failed to parse configuration file (%s)", pth), Err: err}
	}

	return NewStore(file.RootfsConfigs), nil
}

// List returns the configuration names in sorted order.
func (s Store) List() []string {
	names := make([]string, 0, len(s.configs))
	for name := range s.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get ...
func (s Store) Get(name string) (Config, error) {
	cfg, ok := s.configs[name]
	if !ok {
		return Config{}, &ConfigurationError{Message: fmt.Sprintf("unknown configuration: %s", name)}
	}
	return cfg, nil
}
