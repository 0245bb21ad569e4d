package cli

import (
	"fmt"
	"os"

	"github.com/glorpus-work/certmate/internal/logger"
	"github.com/glorpus-work/certmate/pkg/config"
	"github.com/glorpus-work/certmate/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCmd creates the config command with subcommands.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  "View and initialize certmate configuration settings",
	}

	cmd.AddCommand(
		newConfigShowCmd(),
		newConfigInitCmd(),
	)

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current configuration settings",
		RunE: func(*cobra.Command, []string) error {
			return runConfigShow()
		},
	}
}

func runConfigShow() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	fmt.Print(string(data))
	return nil
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file",
		Long:  "Create a default configuration file and the renewal-hooks directory layout",
		RunE: func(*cobra.Command, []string) error {
			return runConfigInit(force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration file")

	return cmd
}

func runConfigInit(force bool) error {
	path := ""
	if ConfigPath != nil {
		path = *ConfigPath
	}
	if path == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			return errors.Wrap(err, "failed to get default config path")
		}
		path = defaultPath
	}

	if _, err := os.Stat(path); err == nil && !force {
		return errors.Wrapf(errors.ErrConfigFileCreate, "%s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	if err := cfg.SaveConfig(path); err != nil {
		return err
	}
	if err := cfg.EnsureHookDirs(); err != nil {
		return err
	}

	logger.Infof("Created config file %s", path)
	logger.Infof("Created hook directories under %s", cfg.Hooks.HookDir)
	return nil
}
