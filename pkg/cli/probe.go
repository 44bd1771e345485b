package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"initenv/pkg/l1"
	"initenv/pkg/network"
)

func newProbeCmd(o *options) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Check that the node is reachable and on the expected network",
		Long: `Ask for the node's host, port and network id, then connect to it over
websocket and print its chain id and network id.

Examples:
  initenv probe
  initenv probe --answers ganache.yaml --timeout 5s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			resolver, err := o.resolver(cmd, out)
			if err != nil {
				return err
			}

			// Only the connection settings matter here.
			s := o.config.Defaults
			for _, pr := range network.Prompts {
				switch pr.Key {
				case network.KeyHost, network.KeyPort, network.KeyNetworkID:
					def := s.Get(pr.Key)
					s.Set(pr.Key, resolver.Resolve(pr.Key, pr.Text(def), def))
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			report, err := l1.Probe(ctx, s)
			printReport(cmd, report)
			if err != nil {
				return fmt.Errorf("probe failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "how long to wait for the node")
	return cmd
}

func printReport(cmd *cobra.Command, report *l1.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Endpoint:   %s\n", report.Endpoint)
	fmt.Fprintf(out, "URL:        %s\n", report.URL)
	fmt.Fprintf(out, "Reachable:  %t\n", report.Reachable)
	if report.ChainID != nil {
		fmt.Fprintf(out, "Chain ID:   %s\n", report.ChainID)
	}
	if report.NetworkID != nil {
		fmt.Fprintf(out, "Network ID: %s\n", report.NetworkID)
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(out, "Warning:    %s\n", w)
	}
}
