package cli

import (
	"github.com/spf13/cobra"

	"initenv/pkg/execx"
	"initenv/pkg/setup"
)

func newSetupCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Configure Truffle, deploy the contract and install the DApp",
		Long: `Run the full environment setup. This is also what initenv does when
called without a subcommand.

Failed install or deploy commands are reported but do not stop the run;
the command only fails if the Truffle config cannot be written.

Examples:
  initenv setup
  initenv setup --answers ganache.yaml --probe
  initenv setup --dry-run`,
		Args: cobra.NoArgs,
		RunE: o.runSetup,
	}
}

func (o *options) runSetup(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	resolver, err := o.resolver(cmd, out)
	if err != nil {
		return err
	}
	runner := execx.NewRunner(execx.Shell{}, out,
		execx.WithDryRun(o.dryRun),
		execx.WithTimeout(o.config.CommandTimeout),
	)

	return setup.New(o.config, resolver, runner, out).Run(cmd.Context())
}
