package hook

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/glorpus-work/certmate/internal/logger"
)

// Scheduler owns the hook bookkeeping for one run of the tool: which
// pre-hooks have already executed and which post-hooks are deferred until
// the end of a renewal batch. The renewal workflow is single-threaded, but
// the state is mutex-guarded so the package stays safe when used as a
// library.
//
// Hook runtime failures (non-zero exit, stderr output, failure to start)
// are logged and swallowed: a broken hook must not abort the surrounding
// certificate workflow. Pre-flight checks belong in Validate/ValidateAll.
type Scheduler struct {
	exec           Executor
	scan           DirectoryScanner
	mode           Mode
	directoryHooks bool

	mu          sync.Mutex
	ranPre      map[string]struct{}
	pendingPost []string
	pendingSeen map[string]struct{}
}

// NewScheduler creates a scheduler for one run of the tool. The mode is
// fixed at construction: ModeRenewBatch defers post-hooks and enables
// directory pre-hooks, ModeSingle runs post-hooks immediately.
// directoryHooks globally enables or disables directory-discovered hooks.
func NewScheduler(exec Executor, scan DirectoryScanner, mode Mode, directoryHooks bool) *Scheduler {
	return &Scheduler{
		exec:           exec,
		scan:           scan,
		mode:           mode,
		directoryHooks: directoryHooks,
		ranPre:         make(map[string]struct{}),
		pendingSeen:    make(map[string]struct{}),
	}
}

// RunPreHooks runs the pre-hooks that have not already been run. In a
// renewal batch with directory hooks enabled, the executables in the
// pre-hook directory run first, in sorted order, followed by the
// configured pre-hook. Each distinct command string executes at most once
// per scheduler lifetime, so directory hooks running first means an
// identical configured hook is the one skipped.
func (s *Scheduler) RunPreHooks(ctx context.Context, set HookSet) error {
	if s.mode == ModeRenewBatch && s.directoryHooks {
		hooks, err := s.scan.ListExecutables(set.PreDir)
		if err != nil {
			return err
		}
		for _, h := range hooks {
			s.runPreHookOnce(ctx, h)
		}
	}

	if set.Pre != "" {
		s.runPreHookOnce(ctx, set.Pre)
	}
	return nil
}

// runPreHookOnce runs command unless the identical string already ran as a
// pre-hook this run, in which case only a skip is logged.
func (s *Scheduler) runPreHookOnce(ctx context.Context, command string) {
	s.mu.Lock()
	if _, done := s.ranPre[command]; done {
		s.mu.Unlock()
		logger.Infof("Pre-hook command already run, skipping: %s", command)
		return
	}
	s.ranPre[command] = struct{}{}
	s.mu.Unlock()

	logger.Infof("Running pre-hook command: %s", command)
	s.runHook(ctx, command, nil)
}

// HandlePostHooks handles post-hooks for one issuance attempt. In a
// renewal batch nothing executes yet: the directory post-hooks (if
// enabled) and then the configured post-hook are enqueued for
// FlushPostHooks, deduplicated by exact command string in first-seen
// order. In single mode the configured post-hook runs immediately.
func (s *Scheduler) HandlePostHooks(ctx context.Context, set HookSet) error {
	if s.mode == ModeRenewBatch {
		if s.directoryHooks {
			hooks, err := s.scan.ListExecutables(set.PostDir)
			if err != nil {
				return err
			}
			for _, h := range hooks {
				s.enqueuePostHook(h)
			}
		}
		if set.Post != "" {
			s.enqueuePostHook(set.Post)
		}
		return nil
	}

	if set.Post != "" {
		logger.Infof("Running post-hook command: %s", set.Post)
		s.runHook(ctx, set.Post, nil)
	}
	return nil
}

// enqueuePostHook appends command to the deferred queue unless the
// identical string is already queued. Insertion order is execution order.
func (s *Scheduler) enqueuePostHook(command string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, seen := s.pendingSeen[command]; seen {
		return
	}
	s.pendingSeen[command] = struct{}{}
	s.pendingPost = append(s.pendingPost, command)
}

// PendingPostHooks returns a copy of the deferred post-hook queue in
// execution order.
func (s *Scheduler) PendingPostHooks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.pendingPost))
	copy(out, s.pendingPost)
	return out
}

// FlushPostHooks runs every deferred post-hook in enqueue order. It is
// called exactly once per renewal batch, after all certificates have been
// processed; the queue accumulates across the whole batch, not per
// certificate. The queue is cleared so a later batch starts fresh.
func (s *Scheduler) FlushPostHooks(ctx context.Context) {
	s.mu.Lock()
	pending := s.pendingPost
	s.pendingPost = nil
	s.pendingSeen = make(map[string]struct{})
	s.mu.Unlock()

	for _, cmd := range pending {
		logger.Infof("Running post-hook command: %s", cmd)
		s.runHook(ctx, cmd, nil)
	}
}

// RunDeployHooks runs the deploy-hooks for one successfully renewed
// certificate: the executables in the deploy-hook directory in sorted
// order (if directory hooks are enabled), then the configured renew-hook
// unless its command string is identical to a directory hook that already
// ran in this pass. The dedup set is local to the pass, not scheduler-wide.
func (s *Scheduler) RunDeployHooks(ctx context.Context, set HookSet, rctx RenewalContext) error {
	executed := make(map[string]struct{})

	if s.directoryHooks {
		hooks, err := s.scan.ListExecutables(set.DeployDir)
		if err != nil {
			return err
		}
		for _, h := range hooks {
			s.runDeployHookOnce(ctx, h, rctx)
			executed[h] = struct{}{}
		}
	}

	if set.Renew != "" {
		if _, done := executed[set.Renew]; done {
			logger.Infof("Skipping deploy-hook '%s' as it was already run.", set.Renew)
		} else {
			s.runDeployHookOnce(ctx, set.Renew, rctx)
		}
	}
	return nil
}

// RunDeployHook runs only the configured deploy-hook after a single
// (non-batch) issuance. Directory hooks do not apply to this verb.
func (s *Scheduler) RunDeployHook(ctx context.Context, set HookSet, rctx RenewalContext) {
	if set.Deploy != "" {
		s.runDeployHookOnce(ctx, set.Deploy, rctx)
	}
}

// runDeployHookOnce runs one deploy-hook with the renewed-certificate
// environment, or logs a warning and does nothing in dry-run mode.
func (s *Scheduler) runDeployHookOnce(ctx context.Context, command string, rctx RenewalContext) {
	if rctx.DryRun {
		logger.Warnf("Dry run: skipping deploy hook command: %s", command)
		return
	}

	env := map[string]string{
		"RENEWED_DOMAINS": strings.Join(rctx.Domains, " "),
		"RENEWED_LINEAGE": rctx.LineagePath,
	}
	logger.Infof("Running deploy-hook command: %s", command)
	s.runHook(ctx, command, env)
}

// runHook invokes the executor and reports the outcome through the log,
// never through an error: best-effort notification is the contract here.
func (s *Scheduler) runHook(ctx context.Context, command string, env map[string]string) {
	res, err := s.exec.Execute(ctx, command, env)
	prog := progName(command)
	if res.Stdout != "" {
		logger.Infof("Output from %s:\n%s", prog, res.Stdout)
	}
	if err != nil {
		logger.Errorf("Hook command %q could not be run: %v", command, err)
		return
	}
	if res.ExitCode != 0 {
		logger.Errorf("Hook command %q returned error code %d", command, res.ExitCode)
	}
	if res.Stderr != "" {
		logger.Errorf("Error output from %s:\n%s", prog, res.Stderr)
	}
}

// progName extracts the basename of the program a shell command runs,
// for log messages only.
func progName(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return command
	}
	return filepath.Base(fields[0])
}
