package l1

import (
	"context"
	"fmt"
	"math/big"

	manet "github.com/multiformats/go-multiaddr/net"
	"github.com/rs/zerolog/log"

	"initenv/pkg/network"
)

// Report summarizes what the node at the configured endpoint looks like.
type Report struct {
	Endpoint  string
	URL       string
	Reachable bool
	ChainID   *big.Int
	NetworkID *big.Int
	Warnings  []string
}

// Probe checks that something accepts TCP connections at the configured
// host and port, then asks it for its chain and network ids over the
// websocket URL the DApp will use. The returned report is filled in as far
// as the probe got, even when err is non-nil.
func Probe(ctx context.Context, s network.Settings) (*Report, error) {
	report := &Report{URL: s.WebsocketURL()}

	addr, err := s.Multiaddr()
	if err != nil {
		return report, err
	}
	report.Endpoint = addr.String()

	var d manet.Dialer
	conn, err := d.DialContext(ctx, addr)
	if err != nil {
		return report, fmt.Errorf("node not reachable at %s: %w", report.Endpoint, err)
	}
	conn.Close()
	report.Reachable = true

	client, err := NewClient(ctx, &Config{EthereumRPC: report.URL})
	if err != nil {
		return report, err
	}
	defer client.Close()

	if report.ChainID, err = client.ChainID(ctx); err != nil {
		return report, err
	}
	if report.NetworkID, err = client.NetworkID(ctx); err != nil {
		return report, err
	}

	// "*" is truffle's match-any network id.
	if s.NetworkID != "*" && report.NetworkID.String() != s.NetworkID {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"node reports network id %s but %s is configured; truffle will refuse to deploy",
			report.NetworkID, s.NetworkID))
	}

	log.Info().
		Str("endpoint", report.Endpoint).
		Str("chain_id", report.ChainID.String()).
		Str("network_id", report.NetworkID.String()).
		Msg("Probed node")
	return report, nil
}
