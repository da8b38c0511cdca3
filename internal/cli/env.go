package cli

import (
	"fmt"
	"strings"

	"github.com/aptocom/proposal-agent/internal/envfile"
	"github.com/spf13/cobra"
)

func newEnvCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Inspect the env file referenced by the descriptor",
		Long: `Inspect the .env file named by the descriptor's env field. Relative paths
resolve against the descriptor's directory, or the working directory for the
built-in descriptor.`,
	}
	cmd.AddCommand(newEnvShowCmd(a))
	cmd.AddCommand(newEnvCheckCmd(a))
	return cmd
}

// envPath resolves the env file for the descriptor in effect.
func (a *app) envPath() (string, error) {
	cfg, path, err := a.load()
	if err != nil {
		return "", err
	}
	if cfg.Env == "" {
		return "", fmt.Errorf("descriptor %s does not reference an env file", cfg.Name)
	}
	return envfile.Resolve(path, cfg.Env), nil
}

func newEnvShowCmd(a *app) *cobra.Command {
	var noRedact bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print env file contents (redacted by default)",
		Long: `Print the contents of the env file with sensitive values redacted.

Use --no-redact to show actual values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.envPath()
			if err != nil {
				return err
			}
			entries, err := envfile.Parse(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "(empty)")
				return nil
			}

			fmt.Fprintf(out, "# %s\n", path)
			for _, e := range entries {
				value := e.Value
				if !noRedact {
					value = envfile.Redact(e.Key, e.Value)
				}
				fmt.Fprintf(out, "%s=%s\n", e.Key, value)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noRedact, "no-redact", false, "Show values without redaction")
	return cmd
}

func newEnvCheckCmd(a *app) *cobra.Command {
	var require []string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the env file exists and defines required keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.envPath()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Env check: %s\n", path)

			entries, err := envfile.Parse(path)
			if err != nil {
				fmt.Fprintf(out, "  [FAIL] %v\n", err)
				return fmt.Errorf("env file not readable: %w", err)
			}

			missing := envfile.Missing(entries, require...)
			if len(missing) > 0 {
				fmt.Fprintf(out, "  [FAIL] missing or empty: %s\n", strings.Join(missing, ", "))
				return fmt.Errorf("%d required env key(s) missing", len(missing))
			}
			fmt.Fprintf(out, "  [ OK ] %d entries, all required keys set\n", len(entries))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&require, "require", []string{"GOOGLE_API_KEY"}, "Keys that must be set to a non-empty value")
	return cmd
}
