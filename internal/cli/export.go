package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/aptocom/proposal-agent/internal/agentconfig"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the descriptor as YAML or JSON",
		Long: `Write the descriptor in canonical key order. The format defaults to the
--output file extension, or yaml when writing to stdout.

  aptocom-agent export                         # built-in descriptor as YAML
  aptocom-agent export --format json
  aptocom-agent export -o agent.json           # JSON, from the extension`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := a.load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("refusing to export invalid descriptor: %w", err)
			}

			f := agentconfig.FormatYAML
			switch {
			case cmd.Flags().Changed("format"):
				if f, err = agentconfig.ParseFormat(format); err != nil {
					return err
				}
			case output != "":
				f = agentconfig.FormatFromPath(output)
			}

			if output == "" {
				return agentconfig.Encode(cmd.OutOrStdout(), cfg, f)
			}

			if _, err := os.Stat(output); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", output)
			}

			var buf bytes.Buffer
			if err := agentconfig.Encode(&buf, cfg, f); err != nil {
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			a.log.Sub("export").Info().Str("path", output).Str("format", string(f)).Msg("wrote descriptor")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Output format (yaml, json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing output file")
	return cmd
}
