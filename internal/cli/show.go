package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/aptocom/proposal-agent/internal/agentconfig"
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the agent descriptor",
		Long:  `Print a summary of the descriptor followed by its request parameters.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := a.load()
			if err != nil {
				return err
			}
			if jsonOutput(asJSON) {
				return agentconfig.Encode(cmd.OutOrStdout(), cfg, agentconfig.FormatJSON)
			}
			return printSummary(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func printSummary(out io.Writer, cfg agentconfig.AgentConfig) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", cfg.Name)
	fmt.Fprintf(w, "Description:\t%s\n", cfg.Description)
	fmt.Fprintf(w, "Port:\t%d\n", cfg.Port)
	fmt.Fprintf(w, "README:\t%s\n", orDash(cfg.ReadmePath))
	fmt.Fprintf(w, "Env:\t%s\n", orDash(cfg.Env))
	fmt.Fprintf(w, "Tags:\t%s\n", strings.Join(cfg.Tags, ", "))
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nParameters (%d, %d required):\n", cfg.Params.Len(), len(cfg.Params.Required()))
	return printParamsTable(out, cfg.Params, false)
}

func printParamsTable(out io.Writer, params agentconfig.Params, requiredOnly bool) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tREQUIRED\tDESCRIPTION")
	for name, spec := range params.All() {
		if requiredOnly && !spec.Required {
			continue
		}
		req := "no"
		if spec.Required {
			req = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, spec.Type, req, spec.Description)
	}
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
