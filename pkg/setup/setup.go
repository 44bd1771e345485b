// Package setup runs the contract and DApp environment initialization:
// it collects the node settings, writes the Truffle config, installs and
// deploys the contract, and tells the user what is left to do by hand.
package setup

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"initenv/pkg/core"
	"initenv/pkg/execx"
	"initenv/pkg/l1"
	"initenv/pkg/network"
	"initenv/pkg/prompt"
	"initenv/pkg/truffle"
)

// ProbeFunc inspects the node described by the settings.
type ProbeFunc func(ctx context.Context, s network.Settings) (*l1.Report, error)

type Pipeline struct {
	config   *core.Config
	resolver *prompt.Resolver
	runner   *execx.Runner
	out      io.Writer
	probe    ProbeFunc
}

// New creates a pipeline. User-facing text goes to out; the runner should
// report to the same writer.
func New(config *core.Config, resolver *prompt.Resolver, runner *execx.Runner, out io.Writer) *Pipeline {
	return &Pipeline{
		config:   config,
		resolver: resolver,
		runner:   runner,
		out:      out,
		probe:    l1.Probe,
	}
}

// WithProbe replaces the node probe used when config.Probe is set.
func (p *Pipeline) WithProbe(probe ProbeFunc) *Pipeline {
	p.probe = probe
	return p
}

// Run performs the whole sequence. Only a failure to write the config file
// is returned; failed commands are reported and the sequence carries on.
func (p *Pipeline) Run(ctx context.Context) error {
	if _, err := p.InitContractEnv(ctx); err != nil {
		return err
	}
	p.InitDappEnv(ctx)
	printClosing(p.out)
	return nil
}

// CollectSettings asks for every setting in order, offering defaults.
func CollectSettings(r *prompt.Resolver, defaults network.Settings) network.Settings {
	var s network.Settings
	for _, pr := range network.Prompts {
		def := defaults.Get(pr.Key)
		s.Set(pr.Key, r.Resolve(pr.Key, pr.Text(def), def))
	}
	for _, w := range s.Warnings() {
		log.Warn().Msg(w)
	}
	return s
}

// InitContractEnv configures Truffle for the user's node, then installs and
// deploys the contract.
func (p *Pipeline) InitContractEnv(ctx context.Context) (network.Settings, error) {
	fmt.Fprintln(p.out, "Config Phase 1: Configure Truffle with Ganache, compile, and deploy the contract")

	s := CollectSettings(p.resolver, p.config.Defaults)

	content, err := truffle.Render(s, p.config.CompilerVersion)
	if err != nil {
		return s, err
	}
	if err := truffle.Write(filepath.Join(p.config.ContractDir, p.config.ConfigFile), content); err != nil {
		return s, err
	}
	fmt.Fprintf(p.out, "The Truffle config file has been created and set successfully in %s.\n", p.config.ContractDir)

	if p.config.Probe {
		p.checkNode(ctx, s)
	}

	p.runner.Run(ctx, execx.Step{
		Name:    "contract-install",
		Command: p.config.InstallCommand,
		Dir:     p.config.ContractDir,
		Quiet:   true,
		Ack:     p.config.InstallAck,
	})
	deploy := p.runner.Run(ctx, execx.Step{
		Name:    "contract-deploy",
		Command: p.config.DeployCommand,
		Dir:     p.config.ContractDir,
	})

	instructions := Instructions{
		ContractDir: p.config.ContractDir,
		ProviderURL: s.WebsocketURL(),
	}
	if addr, ok := ExtractContractAddress(deploy.Stdout); ok {
		instructions.ContractAddress = addr.Hex()
		log.Info().Str("contract_address", instructions.ContractAddress).Msg("Found deployed contract address")
	}
	instructions.Print(p.out)

	return s, nil
}

// InitDappEnv installs the DApp's dependencies. The cd step runs in its own
// shell and does not move later steps; they run from the current directory.
func (p *Pipeline) InitDappEnv(ctx context.Context) {
	p.runner.Run(ctx, execx.Step{
		Name:    "dapp-cd",
		Command: "cd " + p.config.DappDir,
	})
	p.runner.Run(ctx, execx.Step{
		Name:    "dapp-install",
		Command: p.config.InstallCommand,
		Quiet:   true,
		Ack:     p.config.InstallAck,
	})
}

func (p *Pipeline) checkNode(ctx context.Context, s network.Settings) {
	report, err := p.probe(ctx, s)
	if err != nil {
		log.Warn().Err(err).Msg("Node check failed, continuing")
		return
	}
	for _, w := range report.Warnings {
		log.Warn().Msg(w)
	}
}
