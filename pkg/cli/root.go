package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"initenv/pkg/core"
	"initenv/pkg/logging"
	"initenv/pkg/prompt"
)

// Version is set at build time.
var Version = "dev"

type options struct {
	cfgFile  string
	logLevel string
	logFile  string
	answers  string
	dryRun   bool
	probe    bool

	config    *core.Config
	logCloser io.Closer
}

// NewRootCmd builds the command tree. Running the root command without a
// subcommand performs the full setup.
func NewRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "initenv",
		Short: "Set up the Battleship contract and DApp environment",
		Long: `initenv prepares a local checkout of the Battleship DApp for a private
Ethereum node such as Ganache.

It asks for the node's connection settings (press Enter or type "d" to keep
a default), writes src/contract/deploy/truffle-config.js, installs the
contract dependencies, deploys the contract with Truffle and installs the
DApp dependencies.

Configuration (in order of priority):
  1. Command-line flags
  2. Environment variables (INITENV_CONTRACT_DIR, INITENV_DEFAULTS_PORT, ...)
  3. Config file (./.initenv.yaml or ~/.initenv.yaml)`,
		SilenceUsage:      true,
		PersistentPreRunE: o.load,
		PersistentPostRun: o.close,
		RunE:              o.runSetup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&o.cfgFile, "config", "", "config file (default is ./.initenv.yaml or ~/.initenv.yaml)")
	flags.StringVar(&o.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&o.logFile, "log-file", "", "also write JSON logs to this file")
	flags.StringVar(&o.answers, "answers", "", "YAML file with answers for the prompts")
	flags.BoolVar(&o.dryRun, "dry-run", false, "print commands instead of running them")
	flags.BoolVar(&o.probe, "probe", false, "check the node before deploying (or INITENV_PROBE)")

	root.AddCommand(
		newSetupCmd(o),
		newRenderCmd(o),
		newProbeCmd(o),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// load sets up logging and reads the configuration.
func (o *options) load(cmd *cobra.Command, args []string) error {
	closer, err := logging.Setup(logging.Options{Level: o.logLevel, File: o.logFile})
	if err != nil {
		return err
	}
	o.logCloser = closer

	v := viper.New()
	core.RegisterDefaults(v)

	v.SetEnvPrefix("INITENV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if o.cfgFile != "" {
		v.SetConfigFile(o.cfgFile)
	} else {
		v.SetConfigName(".initenv")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Debug().Str("path", v.ConfigFileUsed()).Msg("Loaded config file")
	}

	if cmd.Flags().Changed("probe") {
		v.Set("probe", o.probe)
	}

	cfg, err := core.Load(v)
	if err != nil {
		return err
	}
	o.config = cfg
	return nil
}

func (o *options) close(cmd *cobra.Command, args []string) {
	if o.logCloser != nil {
		_ = o.logCloser.Close()
	}
}

// resolver builds a prompt resolver that writes prompts to out.
func (o *options) resolver(cmd *cobra.Command, out io.Writer) (*prompt.Resolver, error) {
	r := prompt.NewResolver(cmd.InOrStdin(), out)
	if o.answers == "" {
		return r, nil
	}
	answers, err := prompt.LoadAnswers(o.answers)
	if err != nil {
		return nil, err
	}
	return r.WithAnswers(answers), nil
}
