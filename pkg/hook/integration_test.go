package hook_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glorpus-work/certmate/pkg/hook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeHookScript creates an executable script that appends its own name
// and the renewal env vars to a shared trace file.
func writeHookScript(t *testing.T, dir, name, trace string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\necho \"" + name + " domains=$RENEWED_DOMAINS lineage=$RENEWED_LINEAGE\" >> " + trace + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

// Drives a whole renewal batch through the real shell executor and the
// real directory scanner.
func TestScheduler_RenewBatchEndToEnd(t *testing.T) {
	hookRoot := t.TempDir()
	trace := filepath.Join(t.TempDir(), "trace.log")

	preDir := filepath.Join(hookRoot, "pre")
	postDir := filepath.Join(hookRoot, "post")
	deployDir := filepath.Join(hookRoot, "deploy")
	for _, d := range []string{preDir, postDir, deployDir} {
		require.NoError(t, os.MkdirAll(d, 0o755))
	}

	writeHookScript(t, preDir, "10-stop.sh", trace)
	preB := writeHookScript(t, preDir, "20-prepare.sh", trace)
	writeHookScript(t, postDir, "10-start.sh", trace)
	deployHook := writeHookScript(t, deployDir, "10-notify.sh", trace)

	set := hook.HookSet{
		// Both configured hooks duplicate directory hooks: neither may
		// run a second time.
		Pre:       preB,
		Renew:     deployHook,
		PreDir:    preDir,
		PostDir:   postDir,
		DeployDir: deployDir,
	}

	sched := hook.NewScheduler(hook.NewShellExecutor(), hook.NewDirectoryScanner(), hook.ModeRenewBatch, true)
	ctx := context.Background()

	// Two certificates in one batch.
	for _, lineage := range []string{"/live/a.example.com", "/live/b.example.com"} {
		require.NoError(t, sched.RunPreHooks(ctx, set))
		require.NoError(t, sched.RunDeployHooks(ctx, set, hook.RenewalContext{
			Domains:     []string{filepath.Base(lineage)},
			LineagePath: lineage,
		}))
		require.NoError(t, sched.HandlePostHooks(ctx, set))
	}
	sched.FlushPostHooks(ctx)

	data, err := os.ReadFile(trace)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	expected := []string{
		// First certificate: pre hooks once, in sorted order.
		"10-stop.sh domains= lineage=",
		"20-prepare.sh domains= lineage=",
		"10-notify.sh domains=a.example.com lineage=/live/a.example.com",
		// Second certificate: pre hooks deduplicated, deploy runs again.
		"10-notify.sh domains=b.example.com lineage=/live/b.example.com",
		// Post hooks only after the flush, exactly once.
		"10-start.sh domains= lineage=",
	}
	assert.Equal(t, expected, lines)
}
