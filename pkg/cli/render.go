package cli

import (
	"github.com/spf13/cobra"

	"initenv/pkg/setup"
	"initenv/pkg/truffle"
)

func newRenderCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the Truffle config without writing it",
		Long: `Ask for the node settings and print the resulting truffle-config.js to
stdout. Prompts go to stderr, so the output can be redirected:

  initenv render > truffle-config.js`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := o.resolver(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			s := setup.CollectSettings(resolver, o.config.Defaults)

			content, err := truffle.Render(s, o.config.CompilerVersion)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(content)
			return err
		},
	}
}
