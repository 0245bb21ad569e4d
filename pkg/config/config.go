// Package config provides configuration management for the certmate tool.
// It handles loading, validating, and saving settings: the four lifecycle
// hook commands, the directory-hook layout, and general options. Hook
// commands arrive here as opaque shell strings and are passed through
// untouched; executable validation happens in pkg/hook.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glorpus-work/certmate/pkg/errors"
	"github.com/glorpus-work/certmate/pkg/fsutil"
	"github.com/glorpus-work/certmate/pkg/hook"
	goversion "github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"
)

// CurrentAPIVersion is the config format version written by this build.
const CurrentAPIVersion = "1.0"

// supportedAPIVersions is the range of config format versions this build
// can read.
const supportedAPIVersions = ">= 1.0, < 2.0"

// FilePerm is the permission mode used when writing the config file.
const FilePerm = 0o644

// Config represents the application configuration.
type Config struct {
	APIVersion string          `yaml:"api_version"`
	Lineages   []LineageConfig `yaml:"lineages,omitempty"`
	Hooks      HooksConfig     `yaml:"hooks"`
	Settings   Settings        `yaml:"settings"`
}

// HooksConfig holds the configured lifecycle hooks. Each command is an
// opaque shell string; empty means not configured. DeployHook doubles as
// the renew-hook when no explicit renew-hook is set, matching the
// behavior users expect from the two flags.
type HooksConfig struct {
	PreHook    string `yaml:"pre_hook,omitempty"`
	PostHook   string `yaml:"post_hook,omitempty"`
	DeployHook string `yaml:"deploy_hook,omitempty"`
	RenewHook  string `yaml:"renew_hook,omitempty"`

	// DirectoryHooks enables running every executable found in the
	// per-kind hook directories under HookDir.
	DirectoryHooks bool `yaml:"directory_hooks"`

	// HookDir is the root of the directory-hook layout:
	// <HookDir>/pre, <HookDir>/post, <HookDir>/deploy.
	HookDir string `yaml:"hook_dir,omitempty"`
}

// Settings represents general application settings.
type Settings struct {
	LogLevel string `yaml:"log_level"` // error, warn, info, debug

	// RenewCommand is the external ACME client invocation that performs
	// the actual renewal for one lineage. It is a shell string like hook
	// commands; the lineage is described to it through CERTMATE_* env vars.
	RenewCommand string `yaml:"renew_command,omitempty"`
}

// LineageConfig describes one certificate under management.
type LineageConfig struct {
	Name    string   `yaml:"name"`
	Domains []string `yaml:"domains"`
	LiveDir string   `yaml:"live_dir,omitempty"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		APIVersion: CurrentAPIVersion,
		Hooks: HooksConfig{
			DirectoryHooks: true,
			HookDir:        defaultHookDir(),
		},
		Settings: Settings{
			LogLevel: "info",
		},
	}
}

// LoadConfig loads the configuration from a YAML file. A missing file
// yields the defaults, not an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrConfigParse, "%s: %v", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes the configuration to a YAML file, creating the parent
// directory if needed.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	if err := fsutil.EnsureDir(filepath.Dir(path)); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	if err := os.WriteFile(path, data, FilePerm); err != nil {
		return errors.Wrapf(errors.ErrConfigFileCreate, "%s: %v", path, err)
	}
	return nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if err := c.validateAPIVersion(); err != nil {
		return err
	}

	switch c.Settings.LogLevel {
	case "", "error", "warn", "warning", "info", "debug":
	default:
		return errors.Wrapf(errors.ErrConfigValidation, "unknown log level %q", c.Settings.LogLevel)
	}

	if c.Hooks.DirectoryHooks && c.Hooks.HookDir == "" {
		return errors.Wrap(errors.ErrConfigValidation, "directory_hooks enabled but hook_dir is empty")
	}

	seen := make(map[string]struct{}, len(c.Lineages))
	for _, lin := range c.Lineages {
		if lin.Name == "" {
			return errors.Wrap(errors.ErrConfigValidation, "lineage without a name")
		}
		if len(lin.Domains) == 0 {
			return errors.Wrapf(errors.ErrConfigValidation, "lineage %s has no domains", lin.Name)
		}
		if _, dup := seen[lin.Name]; dup {
			return errors.Wrapf(errors.ErrConfigValidation, "duplicate lineage name %s", lin.Name)
		}
		seen[lin.Name] = struct{}{}
	}
	return nil
}

// validateAPIVersion gates the config format version against the range
// this build supports.
func (c *Config) validateAPIVersion() error {
	if c.APIVersion == "" {
		c.APIVersion = CurrentAPIVersion
		return nil
	}

	v, err := goversion.NewVersion(c.APIVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrConfigVersion, "api_version %q is not a version", c.APIVersion)
	}

	constraint, err := goversion.NewConstraint(supportedAPIVersions)
	if err != nil {
		return errors.Wrap(err, "internal: bad version constraint")
	}
	if !constraint.Check(v) {
		return errors.Wrapf(errors.ErrConfigVersion,
			"api_version %s is outside the supported range %s", c.APIVersion, supportedAPIVersions)
	}
	return nil
}

// HookSet assembles the hook.HookSet the scheduler consumes. The
// deploy-hook doubles as the renew-hook when no explicit renew-hook is
// configured.
func (c *Config) HookSet() hook.HookSet {
	renew := c.Hooks.RenewHook
	if renew == "" {
		renew = c.Hooks.DeployHook
	}
	return hook.HookSet{
		Pre:       c.Hooks.PreHook,
		Post:      c.Hooks.PostHook,
		Deploy:    c.Hooks.DeployHook,
		Renew:     renew,
		PreDir:    filepath.Join(c.Hooks.HookDir, "pre"),
		PostDir:   filepath.Join(c.Hooks.HookDir, "post"),
		DeployDir: filepath.Join(c.Hooks.HookDir, "deploy"),
	}
}

// EnsureHookDirs creates the directory-hook layout under hook_dir.
func (c *Config) EnsureHookDirs() error {
	for _, kind := range []string{"pre", "post", "deploy"} {
		if err := fsutil.EnsureDir(filepath.Join(c.Hooks.HookDir, kind)); err != nil {
			return err
		}
	}
	return nil
}

// GetDefaultConfigPath returns the default location of the config file.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine user config directory: %w", err)
	}
	return filepath.Join(configDir, "certmate", "config.yaml"), nil
}

// defaultHookDir returns the default root of the directory-hook layout.
func defaultHookDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "renewal-hooks")
	}
	return filepath.Join(configDir, "certmate", "renewal-hooks")
}
