package cli

import (
	"context"

	"github.com/glorpus-work/certmate/internal/logger"
	"github.com/glorpus-work/certmate/pkg/hook"
	"github.com/glorpus-work/certmate/pkg/renewal"
	"github.com/spf13/cobra"
)

// NewRenewCmd creates the renew command.
func NewRenewCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "renew",
		Short: "Renew all configured certificates",
		Long: `Renew every configured lineage that is due, running lifecycle hooks
around each attempt. Pre-hooks run once per batch, deploy-hooks run after
each successful renewal, and post-hooks are deferred until the whole batch
has finished.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRenew(cmd.Context(), dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "simulate renewal without running deploy hooks")

	return cmd
}

func runRenew(ctx context.Context, dryRun bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	set := cfg.HookSet()
	if err := hook.ValidateAll(set); err != nil {
		return err
	}

	executor := hook.NewShellExecutor()
	orch := renewal.New(
		renewal.NewExecRenewer(executor, cfg.Settings.RenewCommand),
		hook.NewScheduler(executor, hook.NewDirectoryScanner(), hook.ModeRenewBatch, cfg.Hooks.DirectoryHooks),
		set,
	)
	orch.Events = renewal.Events{OnEvent: func(e renewal.Event) {
		logger.Debug("renewal progress", logger.Fields{"run_id": e.RunID, "phase": e.Phase, "lineage": e.Lineage})
	}}

	return orch.RenewAll(ctx, lineagesFromConfig(cfg), renewal.Options{DryRun: dryRun})
}
