package cli

import (
	"github.com/aptocom/proposal-agent/internal/agentconfig"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the descriptor JSON Schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(agentconfig.SchemaJSON())
			return err
		},
	}
}
