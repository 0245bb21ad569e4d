package hook_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/glorpus-work/certmate/internal/logger"
	"github.com/glorpus-work/certmate/pkg/hook"
	"github.com/glorpus-work/certmate/pkg/hook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// captureLogs redirects the log output for one test and returns the buffer.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetTestOutput(&buf)
	t.Cleanup(logger.UnsetTestOutput)
	logger.InitLogger("debug")
	return &buf
}

func TestRunPreHooks_ExecutesOnlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	buf := captureLogs(t)

	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), "echo hi", gomock.Nil()).Return(hook.Result{}, nil).Times(1)

	sched := hook.NewScheduler(exec, mocks.NewMockDirectoryScanner(ctrl), hook.ModeSingle, false)
	set := hook.HookSet{Pre: "echo hi"}

	require.NoError(t, sched.RunPreHooks(context.Background(), set))
	require.NoError(t, sched.RunPreHooks(context.Background(), set))

	assert.Contains(t, buf.String(), "Running pre-hook command: echo hi")
	assert.Contains(t, buf.String(), "Pre-hook command already run, skipping: echo hi")
}

func TestRunPreHooks_DirectoryHooksRunFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	captureLogs(t)

	exec := mocks.NewMockExecutor(ctrl)
	scan := mocks.NewMockDirectoryScanner(ctrl)
	scan.EXPECT().ListExecutables("/etc/certmate/renewal-hooks/pre").
		Return([]string{"/etc/certmate/renewal-hooks/pre/a.sh", "/etc/certmate/renewal-hooks/pre/b.sh"}, nil)

	gomock.InOrder(
		exec.EXPECT().Execute(gomock.Any(), "/etc/certmate/renewal-hooks/pre/a.sh", gomock.Nil()).Return(hook.Result{}, nil),
		exec.EXPECT().Execute(gomock.Any(), "/etc/certmate/renewal-hooks/pre/b.sh", gomock.Nil()).Return(hook.Result{}, nil),
	)

	sched := hook.NewScheduler(exec, scan, hook.ModeRenewBatch, true)
	set := hook.HookSet{
		// The configured pre-hook is one of the directory hooks: it must
		// not execute a second time.
		Pre:    "/etc/certmate/renewal-hooks/pre/b.sh",
		PreDir: "/etc/certmate/renewal-hooks/pre",
	}

	require.NoError(t, sched.RunPreHooks(context.Background(), set))
}

func TestRunPreHooks_SingleModeSkipsDirectoryHooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	captureLogs(t)

	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), "echo pre", gomock.Nil()).Return(hook.Result{}, nil)

	// The scanner must never be consulted outside a renewal batch.
	scan := mocks.NewMockDirectoryScanner(ctrl)

	sched := hook.NewScheduler(exec, scan, hook.ModeSingle, true)
	require.NoError(t, sched.RunPreHooks(context.Background(), hook.HookSet{Pre: "echo pre", PreDir: "/hooks/pre"}))
}

func TestHandlePostHooks_BatchModeDefers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	captureLogs(t)

	// No Execute expectations: enqueueing must not run anything.
	exec := mocks.NewMockExecutor(ctrl)
	scan := mocks.NewMockDirectoryScanner(ctrl)
	scan.EXPECT().ListExecutables("/hooks/post").
		Return([]string{"/hooks/post/a.sh", "/hooks/post/b.sh"}, nil)

	sched := hook.NewScheduler(exec, scan, hook.ModeRenewBatch, true)
	set := hook.HookSet{Post: "/hooks/post/b.sh", PostDir: "/hooks/post"}

	require.NoError(t, sched.HandlePostHooks(context.Background(), set))
	assert.Equal(t, []string{"/hooks/post/a.sh", "/hooks/post/b.sh"}, sched.PendingPostHooks(),
		"configured post-hook matching a directory hook must not be queued twice")
}

func TestHandlePostHooks_QueueAccumulatesAcrossCertificates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	captureLogs(t)

	exec := mocks.NewMockExecutor(ctrl)
	scan := mocks.NewMockDirectoryScanner(ctrl)
	scan.EXPECT().ListExecutables("/hooks/post").Return([]string{"/hooks/post/a.sh"}, nil).Times(2)

	sched := hook.NewScheduler(exec, scan, hook.ModeRenewBatch, true)
	set := hook.HookSet{Post: "systemctl reload nginx", PostDir: "/hooks/post"}

	// Two certificates in the same batch: the queue holds first-seen order
	// with duplicates removed.
	require.NoError(t, sched.HandlePostHooks(context.Background(), set))
	require.NoError(t, sched.HandlePostHooks(context.Background(), set))

	assert.Equal(t, []string{"/hooks/post/a.sh", "systemctl reload nginx"}, sched.PendingPostHooks())
}

func TestFlushPostHooks_RunsInEnqueueOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	captureLogs(t)

	exec := mocks.NewMockExecutor(ctrl)
	scan := mocks.NewMockDirectoryScanner(ctrl)
	scan.EXPECT().ListExecutables("/hooks/post").
		Return([]string{"/hooks/post/a.sh", "/hooks/post/b.sh"}, nil)

	gomock.InOrder(
		exec.EXPECT().Execute(gomock.Any(), "/hooks/post/a.sh", gomock.Nil()).Return(hook.Result{}, nil),
		exec.EXPECT().Execute(gomock.Any(), "/hooks/post/b.sh", gomock.Nil()).Return(hook.Result{}, nil),
	)

	sched := hook.NewScheduler(exec, scan, hook.ModeRenewBatch, true)
	require.NoError(t, sched.HandlePostHooks(context.Background(), hook.HookSet{Post: "/hooks/post/b.sh", PostDir: "/hooks/post"}))

	sched.FlushPostHooks(context.Background())
	assert.Empty(t, sched.PendingPostHooks(), "flush clears the queue")
}

func TestHandlePostHooks_SingleModeRunsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	buf := captureLogs(t)

	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), "echo done", gomock.Nil()).Return(hook.Result{}, nil)

	sched := hook.NewScheduler(exec, mocks.NewMockDirectoryScanner(ctrl), hook.ModeSingle, true)
	require.NoError(t, sched.HandlePostHooks(context.Background(), hook.HookSet{Post: "echo done"}))

	assert.Empty(t, sched.PendingPostHooks())
	assert.Contains(t, buf.String(), "Running post-hook command: echo done")
}

func TestRunDeployHooks_ConfiguredRenewHookNotRunTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	buf := captureLogs(t)

	exec := mocks.NewMockExecutor(ctrl)
	scan := mocks.NewMockDirectoryScanner(ctrl)
	scan.EXPECT().ListExecutables("/hooks/deploy").Return([]string{"/hooks/deploy/notify.sh"}, nil)

	exec.EXPECT().Execute(gomock.Any(), "/hooks/deploy/notify.sh", gomock.Any()).Return(hook.Result{}, nil).Times(1)

	sched := hook.NewScheduler(exec, scan, hook.ModeRenewBatch, true)
	set := hook.HookSet{Renew: "/hooks/deploy/notify.sh", DeployDir: "/hooks/deploy"}
	rctx := hook.RenewalContext{Domains: []string{"example.com"}, LineagePath: "/etc/certmate/live/example.com"}

	require.NoError(t, sched.RunDeployHooks(context.Background(), set, rctx))
	assert.Contains(t, buf.String(), "Skipping deploy-hook '/hooks/deploy/notify.sh' as it was already run.")
}

func TestRunDeployHooks_PerPassDedupOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	captureLogs(t)

	exec := mocks.NewMockExecutor(ctrl)
	scan := mocks.NewMockDirectoryScanner(ctrl)
	scan.EXPECT().ListExecutables("/hooks/deploy").Return([]string{"/hooks/deploy/notify.sh"}, nil).Times(2)

	// Unlike pre-hooks, deploy-hooks run once per renewed certificate.
	exec.EXPECT().Execute(gomock.Any(), "/hooks/deploy/notify.sh", gomock.Any()).Return(hook.Result{}, nil).Times(2)

	sched := hook.NewScheduler(exec, scan, hook.ModeRenewBatch, true)
	set := hook.HookSet{DeployDir: "/hooks/deploy"}

	require.NoError(t, sched.RunDeployHooks(context.Background(), set, hook.RenewalContext{Domains: []string{"a.example.com"}, LineagePath: "/live/a"}))
	require.NoError(t, sched.RunDeployHooks(context.Background(), set, hook.RenewalContext{Domains: []string{"b.example.com"}, LineagePath: "/live/b"}))
}

func TestRunDeployHooks_InjectsRenewalEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	captureLogs(t)

	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), "notify.sh", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, env map[string]string) (hook.Result, error) {
			assert.Equal(t, "example.com www.example.com", env["RENEWED_DOMAINS"])
			assert.Equal(t, "/etc/certmate/live/example.com", env["RENEWED_LINEAGE"])
			return hook.Result{}, nil
		},
	)

	sched := hook.NewScheduler(exec, mocks.NewMockDirectoryScanner(ctrl), hook.ModeRenewBatch, false)
	rctx := hook.RenewalContext{
		Domains:     []string{"example.com", "www.example.com"},
		LineagePath: "/etc/certmate/live/example.com",
	}
	require.NoError(t, sched.RunDeployHooks(context.Background(), hook.HookSet{Renew: "notify.sh"}, rctx))
}

func TestRunDeployHooks_DryRunSkipsExecution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	buf := captureLogs(t)

	// No Execute expectations: dry run must never reach the executor.
	exec := mocks.NewMockExecutor(ctrl)

	sched := hook.NewScheduler(exec, mocks.NewMockDirectoryScanner(ctrl), hook.ModeRenewBatch, false)
	rctx := hook.RenewalContext{Domains: []string{"example.com"}, LineagePath: "/live/example.com", DryRun: true}

	require.NoError(t, sched.RunDeployHooks(context.Background(), hook.HookSet{Renew: "notify.sh"}, rctx))
	assert.Contains(t, buf.String(), "Dry run: skipping deploy hook command: notify.sh")
}

func TestRunDeployHook_SingleIssuance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	captureLogs(t)

	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), "reload-web.sh", gomock.Any()).Return(hook.Result{}, nil)

	// Directory hooks never apply to single issuance, so the scanner is
	// not consulted.
	sched := hook.NewScheduler(exec, mocks.NewMockDirectoryScanner(ctrl), hook.ModeSingle, true)
	sched.RunDeployHook(context.Background(), hook.HookSet{Deploy: "reload-web.sh", DeployDir: "/hooks/deploy"},
		hook.RenewalContext{Domains: []string{"example.com"}, LineagePath: "/live/example.com"})
}

func TestHookFailureIsLoggedNotReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	buf := captureLogs(t)

	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), "false", gomock.Nil()).
		Return(hook.Result{Stderr: "boom\n", ExitCode: 1}, nil)

	sched := hook.NewScheduler(exec, mocks.NewMockDirectoryScanner(ctrl), hook.ModeSingle, false)

	// Best-effort notification: a failing hook must not surface an error.
	require.NoError(t, sched.RunPreHooks(context.Background(), hook.HookSet{Pre: "false"}))

	assert.Contains(t, buf.String(), `Hook command "false" returned error code 1`)
	assert.Contains(t, buf.String(), "Error output from false")
	assert.Contains(t, buf.String(), "boom")
}

func TestRunPreHooks_ScannerErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	captureLogs(t)

	exec := mocks.NewMockExecutor(ctrl)
	scan := mocks.NewMockDirectoryScanner(ctrl)
	scan.EXPECT().ListExecutables("/hooks/pre").Return(nil, assert.AnError)

	sched := hook.NewScheduler(exec, scan, hook.ModeRenewBatch, true)
	err := sched.RunPreHooks(context.Background(), hook.HookSet{PreDir: "/hooks/pre"})
	require.ErrorIs(t, err, assert.AnError)
}
