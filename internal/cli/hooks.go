package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/glorpus-work/certmate/pkg/hook"
	"github.com/spf13/cobra"
)

// NewHooksCmd creates the hooks command with subcommands.
func NewHooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Inspect and validate lifecycle hooks",
		Long:  "List and pre-flight check the configured and directory-discovered hooks",
	}

	cmd.AddCommand(
		newHooksValidateCmd(),
		newHooksListCmd(),
	)

	return cmd
}

func newHooksValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that all configured hook commands are executable",
		Long: `Run the same pre-flight validation the run and renew verbs perform
before any hook executes`,
		RunE: func(*cobra.Command, []string) error {
			return runHooksValidate()
		},
	}
}

func runHooksValidate() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := hook.ValidateAll(cfg.HookSet()); err != nil {
		return err
	}

	fmt.Println("All configured hooks are executable")
	return nil
}

func newHooksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured and directory-discovered hooks",
		RunE: func(*cobra.Command, []string) error {
			return runHooksList()
		},
	}
}

func runHooksList() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	set := cfg.HookSet()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintln(w, "KIND\tSOURCE\tCOMMAND")
	for _, row := range []struct {
		kind hook.HookType
		cmd  string
	}{
		{hook.PreHook, set.Pre},
		{hook.PostHook, set.Post},
		{hook.DeployHook, set.Deploy},
		{hook.RenewHook, set.Renew},
	} {
		if row.cmd != "" {
			fmt.Fprintf(w, "%s\tconfigured\t%s\n", row.kind, row.cmd)
		}
	}

	if !cfg.Hooks.DirectoryHooks {
		fmt.Fprintln(w, "(directory hooks disabled)")
		return nil
	}

	scanner := hook.NewDirectoryScanner()
	for _, dir := range []struct {
		kind hook.HookType
		path string
	}{
		{hook.PreHook, set.PreDir},
		{hook.PostHook, set.PostDir},
		{hook.DeployHook, set.DeployDir},
	} {
		paths, err := scanner.ListExecutables(dir.path)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(w, "%s\tdirectory\t%s\n", dir.kind, p)
		}
	}

	return nil
}
