package hook

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/certmate/pkg/errors"
	"github.com/glorpus-work/certmate/pkg/fsutil"
)

// pathSurgeryDirs are retried when a hook program cannot be resolved
// through the current PATH. Restricted environments (cron, some init
// systems) commonly omit the sbin directories.
var pathSurgeryDirs = []string{
	"/usr/sbin",
	"/usr/local/bin",
	"/usr/local/sbin",
	"/sbin",
}

// Validate checks that a configured hook command is plausibly executable.
// An empty command is a no-op. Only the first whitespace-delimited token is
// resolved; the rest of the string is shell arguments and is ignored here.
// Returns errors.ErrHookNotExecutable if the token names an existing path
// without the execute bit, errors.ErrHookNotFound otherwise.
func Validate(command string, kind HookType) error {
	if command == "" {
		return nil
	}

	prog := strings.Fields(command)[0]
	if resolveProgram(prog) {
		return nil
	}

	if _, err := os.Stat(prog); err == nil {
		return errors.Wrapf(errors.ErrHookNotExecutable,
			"%s-hook command %s exists, but is not executable", kind, prog)
	}
	return errors.Wrapf(errors.ErrHookNotFound,
		"unable to find %s-hook command %s in the PATH (PATH is %s)",
		kind, prog, os.Getenv("PATH"))
}

// ValidateAll validates the configured command of every hook kind and
// returns the first failure. It must run before any hook executes; these
// are the only hard errors the hook layer produces.
func ValidateAll(set HookSet) error {
	checks := []struct {
		cmd  string
		kind HookType
	}{
		{set.Pre, PreHook},
		{set.Post, PostHook},
		{set.Deploy, DeployHook},
		{set.Renew, RenewHook},
	}
	for _, c := range checks {
		if err := Validate(c.cmd, c.kind); err != nil {
			return err
		}
	}
	return nil
}

// resolveProgram reports whether prog is directly executable, resolvable
// through PATH, or present in one of the path-surgery directories.
func resolveProgram(prog string) bool {
	if fsutil.IsExecutable(prog) {
		return true
	}
	if _, err := exec.LookPath(prog); err == nil {
		return true
	}
	for _, dir := range pathSurgeryDirs {
		if fsutil.IsExecutable(filepath.Join(dir, prog)) {
			return true
		}
	}
	return false
}
