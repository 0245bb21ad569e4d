package renewal

import (
	"context"

	"github.com/glorpus-work/certmate/internal/logger"
	"github.com/glorpus-work/certmate/pkg/errors"
	"github.com/glorpus-work/certmate/pkg/hook"
	"github.com/google/uuid"
)

// Orchestrator drives the renewal workflow and its lifecycle hooks:
// pre-hooks before each attempt (deduplicated by the scheduler to one
// effective run), deploy-hooks after each success, post-hooks deferred and
// flushed exactly once at the end of the batch.
type Orchestrator struct {
	Renewer Renewer
	Hooks   HookRunner
	Set     hook.HookSet
	Events  Events
}

// New creates an orchestrator.
func New(renewer Renewer, hooks HookRunner, set hook.HookSet) *Orchestrator {
	return &Orchestrator{Renewer: renewer, Hooks: hooks, Set: set}
}

// RenewAll processes a batch of lineages. A failed renewal is logged and
// skipped, it does not abort the batch; the returned error reports only
// how many lineages failed, or a hook-directory scan problem. Post-hooks
// accumulated over the whole batch are flushed exactly once at the end,
// even when every renewal failed.
func (o *Orchestrator) RenewAll(ctx context.Context, lineages []Lineage, opts Options) error {
	runID := uuid.NewString()
	logger.Info("Starting renewal batch", logger.Fields{"run_id": runID, "lineages": len(lineages), "dry_run": opts.DryRun})

	failed := 0
	for _, lin := range lineages {
		o.emit(Event{RunID: runID, Phase: "pre-hooks", Lineage: lin.Name})
		if err := o.Hooks.RunPreHooks(ctx, o.Set); err != nil {
			return err
		}

		o.emit(Event{RunID: runID, Phase: "renewing", Lineage: lin.Name})
		renewErr := o.Renewer.Renew(ctx, lin)

		if renewErr != nil {
			failed++
			logger.Errorf("Renewal of %s failed: %v", lin.Name, renewErr)
			o.emit(Event{RunID: runID, Phase: "error", Lineage: lin.Name, Msg: renewErr.Error()})
		} else {
			o.emit(Event{RunID: runID, Phase: "deploy-hooks", Lineage: lin.Name})
			rctx := hook.RenewalContext{Domains: lin.Domains, LineagePath: lin.LiveDir, DryRun: opts.DryRun}
			if err := o.Hooks.RunDeployHooks(ctx, o.Set, rctx); err != nil {
				return err
			}
			o.emit(Event{RunID: runID, Phase: "renewed", Lineage: lin.Name})
		}

		// Post-hooks are registered after every attempt, successful or not.
		if err := o.Hooks.HandlePostHooks(ctx, o.Set); err != nil {
			return err
		}
	}

	o.emit(Event{RunID: runID, Phase: "post-hooks"})
	o.Hooks.FlushPostHooks(ctx)
	o.emit(Event{RunID: runID, Phase: "done"})

	if failed > 0 {
		return errors.Wrapf(errors.ErrRenewalIncomplete, "%d of %d lineages", failed, len(lineages))
	}
	return nil
}

// Run processes a single issuance: pre-hook, the attempt, the configured
// deploy-hook on success, then the post-hook immediately (nothing is
// deferred outside a batch). The issuance error, if any, is returned after
// the post-hook has run.
func (o *Orchestrator) Run(ctx context.Context, lin Lineage, opts Options) error {
	if err := o.Hooks.RunPreHooks(ctx, o.Set); err != nil {
		return err
	}

	renewErr := o.Renewer.Renew(ctx, lin)
	if renewErr == nil {
		rctx := hook.RenewalContext{Domains: lin.Domains, LineagePath: lin.LiveDir, DryRun: opts.DryRun}
		o.Hooks.RunDeployHook(ctx, o.Set, rctx)
	}

	if err := o.Hooks.HandlePostHooks(ctx, o.Set); err != nil {
		return err
	}
	return renewErr
}

func (o *Orchestrator) emit(e Event) {
	if o.Events.OnEvent != nil {
		o.Events.OnEvent(e)
	}
}
