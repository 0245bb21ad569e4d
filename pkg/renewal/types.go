//go:generate mockgen -destination=./mocks/renewal.go -package=mocks . Renewer,HookRunner

package renewal

import (
	"context"

	"github.com/glorpus-work/certmate/pkg/hook"
)

// Renewer performs the actual certificate work for one lineage. The ACME
// side lives entirely behind this interface; the orchestrator only cares
// about success or failure.
type Renewer interface {
	Renew(ctx context.Context, lineage Lineage) error
}

// HookRunner is the subset of the hook scheduler used by the orchestrator.
type HookRunner interface {
	RunPreHooks(ctx context.Context, set hook.HookSet) error
	HandlePostHooks(ctx context.Context, set hook.HookSet) error
	FlushPostHooks(ctx context.Context)
	RunDeployHooks(ctx context.Context, set hook.HookSet, rctx hook.RenewalContext) error
	RunDeployHook(ctx context.Context, set hook.HookSet, rctx hook.RenewalContext)
}

// Lineage identifies one certificate under management.
type Lineage struct {
	Name    string   // lineage name, e.g. "example.com"
	Domains []string // domains covered by the certificate
	LiveDir string   // live directory path for the current cert material
}

// Event represents a simple progress notification.
type Event struct {
	RunID   string // batch run identifier
	Phase   string // pre-hooks|renewing|renewed|deploy-hooks|post-hooks|done|error
	Lineage string
	Msg     string
}

// Events carries callbacks for progress events.
type Events struct {
	OnEvent func(Event)
}

// Options control a renewal run.
type Options struct {
	DryRun bool
}
