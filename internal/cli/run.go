package cli

import (
	"context"

	"github.com/glorpus-work/certmate/pkg/hook"
	"github.com/glorpus-work/certmate/pkg/renewal"
	"github.com/spf13/cobra"
)

// NewRunCmd creates the run command for a single issuance.
func NewRunCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run LINEAGE",
		Short: "Obtain or renew a single certificate",
		Long: `Obtain or renew one configured lineage. The pre-hook runs before the
attempt, the deploy-hook after success, and the post-hook immediately
afterwards. Directory hooks do not apply outside the renew verb.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSingle(cmd.Context(), args[0], dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "simulate issuance without running deploy hooks")

	return cmd
}

func runSingle(ctx context.Context, name string, dryRun bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lineage, err := findLineage(cfg, name)
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
		newScheduler(cfg, hook.ModeSingle),
		set,
	)

	return orch.Run(ctx, lineage, renewal.Options{DryRun: dryRun})
}
