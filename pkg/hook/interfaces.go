//go:generate mockgen -destination=./mocks/hook.go -package=mocks . Executor,DirectoryScanner

package hook

import "context"

// Result holds the captured output of one hook invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Executor runs one opaque shell command to completion and reports its
// captured output. Implementations must interpret cmd through a shell so
// hooks can use pipes and redirection. The env entries are added to the
// subprocess environment for this invocation only; the caller's own
// environment is never mutated.
type Executor interface {
	Execute(ctx context.Context, cmd string, env map[string]string) (Result, error)
}

// DirectoryScanner lists the executable hooks found in a directory, sorted
// ascending by absolute path. A missing directory yields an empty list and
// no error.
type DirectoryScanner interface {
	ListExecutables(dir string) ([]string, error)
}
