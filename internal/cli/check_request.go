package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aptocom/proposal-agent/internal/agentconfig"
	"github.com/spf13/cobra"
)

func newCheckRequestCmd(a *app) *cobra.Command {
	var (
		strict bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "check-request <payload.json|->",
		Short: "Check a request payload against the declared parameters",
		Long: `Check a JSON request payload against the descriptor's parameters: every
required parameter must be present and non-null, and values must match their
declared String or Number type. Use "-" to read the payload from stdin.

  aptocom-agent check-request proposal.json
  echo '{"title":"x"}' | aptocom-agent check-request - --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := a.load()
			if err != nil {
				return err
			}

			var r io.Reader
			if args[0] == "-" {
				r = cmd.InOrStdin()
			} else {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening payload: %w", err)
				}
				defer f.Close()
				r = f
			}

			payload, err := agentconfig.DecodeRequest(r)
			if err != nil {
				return err
			}

			issues := agentconfig.CheckRequest(cfg, payload, agentconfig.CheckOptions{Strict: strict})
			a.log.Sub("check-request").Debug().Int("keys", len(payload)).Int("issues", len(issues)).Msg("checked payload")

			out := cmd.OutOrStdout()
			if jsonOutput(asJSON) {
				if issues == nil {
					issues = []agentconfig.ParamIssue{}
				}
				data, err := json.MarshalIndent(map[string]any{
					"valid":  len(issues) == 0,
					"issues": issues,
				}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			} else if len(issues) == 0 {
				fmt.Fprintf(out, "[ OK ] Request accepted by %s\n", cfg.Name)
			} else {
				fmt.Fprintf(out, "[FAIL] %d issue(s):\n", len(issues))
				for _, issue := range issues {
					fmt.Fprintf(out, "  - %s\n", issue)
				}
			}

			if len(issues) > 0 {
				return fmt.Errorf("request rejected with %d issue(s)", len(issues))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Reject keys that are not declared parameters")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
