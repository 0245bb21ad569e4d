package hook

// HookType identifies the lifecycle point a hook is attached to.
type HookType string

// Supported hook types.
const (
	PreHook    HookType = "pre"
	PostHook   HookType = "post"
	DeployHook HookType = "deploy"
	RenewHook  HookType = "renew"
)

// Mode selects how the scheduler treats post-hooks.
type Mode int

const (
	// ModeSingle is used for one-shot issuance verbs: post-hooks run
	// immediately, directory pre-hooks do not apply.
	ModeSingle Mode = iota

	// ModeRenewBatch is used for the renew verb: post-hooks are deferred
	// into an ordered queue and run once via FlushPostHooks at the end of
	// the batch.
	ModeRenewBatch
)

// HookSet carries the configured hook commands (at most one per kind) and
// the directories scanned for directory-discovered hooks. Commands are
// opaque shell strings; an empty string means "not configured".
type HookSet struct {
	Pre    string
	Post   string
	Deploy string
	Renew  string

	PreDir    string
	PostDir   string
	DeployDir string
}

// RenewalContext describes one renewed certificate for deploy hooks.
// It is immutable for the duration of one deploy-hook pass.
type RenewalContext struct {
	Domains     []string
	LineagePath string
	DryRun      bool
}
