package cli

import (
	"github.com/glorpus-work/certmate/internal/logger"
	"github.com/glorpus-work/certmate/pkg/config"
	"github.com/glorpus-work/certmate/pkg/errors"
	"github.com/glorpus-work/certmate/pkg/hook"
	"github.com/glorpus-work/certmate/pkg/renewal"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
)

// loadConfig loads the configuration honoring the global CLI flags and
// initializes logging from it.
func loadConfig() (*config.Config, error) {
	path := ""
	if ConfigPath != nil {
		path = *ConfigPath
	}
	if path == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get default config path")
		}
		path = defaultPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	logger.InitLogger(cfg.Settings.LogLevel)

	return cfg, nil
}

// newScheduler builds the hook scheduler for one run of the tool.
func newScheduler(cfg *config.Config, mode hook.Mode) *hook.Scheduler {
	return hook.NewScheduler(hook.NewShellExecutor(), hook.NewDirectoryScanner(), mode, cfg.Hooks.DirectoryHooks)
}

// lineagesFromConfig converts the configured lineages for the orchestrator.
func lineagesFromConfig(cfg *config.Config) []renewal.Lineage {
	lineages := make([]renewal.Lineage, 0, len(cfg.Lineages))
	for _, lin := range cfg.Lineages {
		lineages = append(lineages, renewal.Lineage{
			Name:    lin.Name,
			Domains: lin.Domains,
			LiveDir: lin.LiveDir,
		})
	}
	return lineages
}

// findLineage resolves one configured lineage by name.
func findLineage(cfg *config.Config, name string) (renewal.Lineage, error) {
	for _, lin := range cfg.Lineages {
		if lin.Name == name {
			return renewal.Lineage{Name: lin.Name, Domains: lin.Domains, LiveDir: lin.LiveDir}, nil
		}
	}
	return renewal.Lineage{}, errors.Wrapf(errors.ErrConfigValidation, "unknown lineage %q", name)
}
