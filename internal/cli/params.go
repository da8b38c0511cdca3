package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// paramEntry is one row of `params --json`.
type paramEntry struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

func newParamsCmd(a *app) *cobra.Command {
	var (
		requiredOnly bool
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "params",
		Short: "List request parameters",
		Long:  `List the request parameters declared by the descriptor, in declaration order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := a.load()
			if err != nil {
				return err
			}

			if !jsonOutput(asJSON) {
				if cfg.Params.Len() == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No parameters declared.")
					return nil
				}
				return printParamsTable(cmd.OutOrStdout(), cfg.Params, requiredOnly)
			}

			entries := []paramEntry{}
			for name, spec := range cfg.Params.All() {
				if requiredOnly && !spec.Required {
					continue
				}
				entries = append(entries, paramEntry{
					Name:        name,
					Type:        string(spec.Type),
					Required:    spec.Required,
					Description: spec.Description,
				})
			}
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().BoolVar(&requiredOnly, "required", false, "Only list required parameters")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
