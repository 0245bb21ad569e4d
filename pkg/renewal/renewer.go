package renewal

import (
	"context"
	"strings"

	"github.com/glorpus-work/certmate/internal/logger"
	"github.com/glorpus-work/certmate/pkg/errors"
	"github.com/glorpus-work/certmate/pkg/hook"
)

// ExecRenewer performs renewals by delegating to an external ACME client
// command, run through the same shell contract as hooks. Unlike hooks, a
// failed renew command is an error: the orchestrator must know which
// lineages did not renew.
type ExecRenewer struct {
	exec    hook.Executor
	command string
}

// NewExecRenewer creates a renewer around the configured renew command.
func NewExecRenewer(exec hook.Executor, command string) *ExecRenewer {
	return &ExecRenewer{exec: exec, command: command}
}

// Renew runs the renew command for one lineage. The lineage is described
// to the subprocess through CERTMATE_LINEAGE, CERTMATE_DOMAINS and
// CERTMATE_LIVE_DIR.
func (r *ExecRenewer) Renew(ctx context.Context, lineage Lineage) error {
	if r.command == "" {
		return errors.Wrap(errors.ErrConfigValidation, "renew_command is not configured")
	}

	env := map[string]string{
		"CERTMATE_LINEAGE":  lineage.Name,
		"CERTMATE_DOMAINS":  strings.Join(lineage.Domains, " "),
		"CERTMATE_LIVE_DIR": lineage.LiveDir,
	}

	logger.Infof("Running renew command for %s: %s", lineage.Name, r.command)
	res, err := r.exec.Execute(ctx, r.command, env)
	if err != nil {
		return errors.Wrapf(err, "renew command for %s", lineage.Name)
	}
	if res.Stdout != "" {
		logger.Debugf("Renew command output for %s:\n%s", lineage.Name, res.Stdout)
	}
	if res.ExitCode != 0 {
		return errors.Wrapf(errors.ErrRenewCommand,
			"lineage %s: exit code %d: %s", lineage.Name, res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	return nil
}
