package cli

import (
	"fmt"
	"os"

	"github.com/aptocom/proposal-agent/internal/agentconfig"
	"github.com/aptocom/proposal-agent/internal/branding"
	"github.com/aptocom/proposal-agent/internal/config"
	"github.com/aptocom/proposal-agent/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// app carries state shared by every command in one invocation.
type app struct {
	descriptorFlag string
	logLevel       string
	log            *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.Nop()}

	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` inspects, validates, and exports the descriptor that tells the
host platform how to run the AptoCom proposal agent: its name, README and env
references, request parameters, port, and tags.

Without --file, commands use the descriptor configured with
'config set descriptor <path>', or the built-in descriptor.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.Load()
			level := a.logLevel
			if level == "" {
				level = config.LogLevel()
			}
			a.log = logging.NewConsole(cmd.ErrOrStderr(), level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&a.descriptorFlag, "file", "f", "", "descriptor file (YAML or JSON)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, silent)")

	cmd.AddCommand(newShowCmd(a))
	cmd.AddCommand(newParamsCmd(a))
	cmd.AddCommand(newValidateCmd(a))
	cmd.AddCommand(newExportCmd(a))
	cmd.AddCommand(newCheckRequestCmd(a))
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newEnvCmd(a))
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// descriptorPath returns the descriptor file in effect, or "" for the built-in one.
func (a *app) descriptorPath() string {
	if a.descriptorFlag != "" {
		return a.descriptorFlag
	}
	return config.Descriptor()
}

// load returns the descriptor in effect and the path it came from.
func (a *app) load() (agentconfig.AgentConfig, string, error) {
	path := a.descriptorPath()
	if path == "" {
		a.log.Debug().Msg("using built-in descriptor")
		return agentconfig.Default(), "", nil
	}
	cfg, err := agentconfig.ParseFile(path)
	if err != nil {
		return agentconfig.AgentConfig{}, path, err
	}
	a.log.Debug().Str("path", path).Int("params", cfg.Params.Len()).Msg("loaded descriptor")
	return *cfg, path, nil
}

// jsonOutput reports whether structured output was requested by flag or config.
func jsonOutput(flag bool) bool {
	return flag || config.Output() == config.OutputJSON
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
