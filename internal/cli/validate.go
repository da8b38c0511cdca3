package cli

import (
	"fmt"
	"io"

	"github.com/aptocom/proposal-agent/internal/agentconfig"
	"github.com/aptocom/proposal-agent/internal/logging"
	"github.com/spf13/cobra"
)

const builtinLabel = "(built-in)"

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate descriptor files",
		Long: `Validate descriptors against the embedded JSON Schema and the structural
rules the host platform relies on: exactly the keys name, description,
readmePath, env, params, port and tags; String or Number param types with
non-empty descriptions; a port between 1 and 65535; and a non-empty list of
unique tags.

  aptocom-agent validate                  # configured or built-in descriptor
  aptocom-agent validate agent.yaml a.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			log := a.log.Sub("validate")

			targets := args
			if len(targets) == 0 {
				if p := a.descriptorPath(); p != "" {
					targets = []string{p}
				}
			}

			if len(targets) == 0 {
				if !validateBuiltin(out, log) {
					return fmt.Errorf("built-in descriptor failed validation")
				}
				return nil
			}

			failed := 0
			for _, path := range targets {
				if !validateFile(out, log, path) {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d descriptor(s) failed validation", failed, len(targets))
			}
			return nil
		},
	}
}

func validateBuiltin(out io.Writer, log *logging.Logger) bool {
	fmt.Fprintf(out, "Descriptor validation: %s\n", builtinLabel)
	cfg := agentconfig.Default()
	result, err := agentconfig.ValidateConfig(cfg)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		log.Error().Err(err).Msg("schema check failed")
		return false
	}
	if !result.Valid {
		reportSchemaIssues(out, result)
		return false
	}
	return reportStructure(out, cfg)
}

func validateFile(out io.Writer, log *logging.Logger, path string) bool {
	fmt.Fprintf(out, "Descriptor validation: %s\n", path)

	result, err := agentconfig.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		log.Warn().Str("path", path).Err(err).Msg("could not validate")
		return false
	}
	if !result.Valid {
		reportSchemaIssues(out, result)
		log.Debug().Str("path", path).Int("issues", len(result.Issues)).Msg("schema violations")
		return false
	}

	cfg, err := agentconfig.ParseFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return false
	}
	return reportStructure(out, *cfg)
}

func reportSchemaIssues(out io.Writer, result *agentconfig.ValidationResult) {
	fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(out, "    - %s\n", issue.Message)
		}
	}
}

func reportStructure(out io.Writer, cfg agentconfig.AgentConfig) bool {
	if err := cfg.Validate(); err != nil {
		fes := agentconfig.FieldErrors(err)
		fmt.Fprintf(out, "  [FAIL] %d structural issue(s):\n", len(fes))
		for _, fe := range fes {
			fmt.Fprintf(out, "    - %s\n", fe)
		}
		return false
	}
	fmt.Fprintf(out, "  [ OK ] Valid descriptor: %s (port %d, %d params, %d tags)\n",
		cfg.Name, cfg.Port, cfg.Params.Len(), len(cfg.Tags))
	return true
}
