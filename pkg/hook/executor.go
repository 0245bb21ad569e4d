package hook

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// ShellExecutor runs hook commands through "sh -c" so that shell syntax in
// configured commands (pipes, redirection, variable expansion) keeps
// working. Hooks are opaque shell strings, not argument vectors.
type ShellExecutor struct{}

// NewShellExecutor creates an executor backed by the system shell.
func NewShellExecutor() *ShellExecutor {
	return &ShellExecutor{}
}

// Execute runs cmd to completion and captures its output. A non-zero exit
// status is reported through Result.ExitCode, not through the error return;
// the error is reserved for commands that could not be started at all.
// There is no timeout: a hung hook blocks until it exits or ctx is
// cancelled by the caller.
func (e *ShellExecutor) Execute(ctx context.Context, cmd string, env map[string]string) (Result, error) {
	shellCmd := exec.CommandContext(ctx, "sh", "-c", cmd)

	environ := os.Environ()
	for k, v := range env {
		environ = append(environ, k+"="+v)
	}
	shellCmd.Env = environ

	var stdout, stderr bytes.Buffer
	shellCmd.Stdout = &stdout
	shellCmd.Stderr = &stderr

	err := shellCmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return res, err
		}
		res.ExitCode = exitErr.ExitCode()
	}
	return res, nil
}
