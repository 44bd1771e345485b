package network

import (
	"fmt"
	"math/big"
	"net"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	ma "github.com/multiformats/go-multiaddr"
)

// ProfileName is the Truffle network profile the settings are written under.
const ProfileName = "development"

// Setting keys, shared by the answers file and the config defaults.
const (
	KeyHost      = "host"
	KeyPort      = "port"
	KeyNetworkID = "network_id"
	KeyFrom      = "from"
	KeyGasLimit  = "gas_limit"
	KeyGasPrice  = "gas_price"
)

// Settings holds the connection parameters collected for one run
type Settings struct {
	Host      string `yaml:"host"`
	Port      string `yaml:"port"`
	NetworkID string `yaml:"network_id"`
	From      string `yaml:"from"`
	GasLimit  string `yaml:"gas_limit"`
	GasPrice  string `yaml:"gas_price"`
}

// DefaultSettings returns the values of a stock Ganache workspace
func DefaultSettings() Settings {
	return Settings{
		Host:      "127.0.0.1",
		Port:      "7545",
		NetworkID: "5777",
		From:      "eBA23Ff92Ca2Cb819921e9cD98924B7D252689ed",
		GasLimit:  "6721975",
		GasPrice:  "20000000000",
	}
}

// Prompt describes how a single setting is asked for.
type Prompt struct {
	Key   string
	Label string
}

// Prompts lists the settings in the order they are collected.
var Prompts = []Prompt{
	{Key: KeyHost, Label: "Enter the IP address of your node"},
	{Key: KeyPort, Label: "Enter the port number of your node"},
	{Key: KeyNetworkID, Label: "Enter the network ID of your private network"},
	{Key: KeyFrom, Label: "Enter the deployer address"},
	{Key: KeyGasLimit, Label: "Enter the gas limit for deployments"},
	{Key: KeyGasPrice, Label: "Enter the gas price in Wei"},
}

// Text renders the prompt line shown to the user.
func (p Prompt) Text(def string) string {
	return fmt.Sprintf("%s (default: %s): ", p.Label, def)
}

// Get returns the value stored under key, or "" for an unknown key.
func (s Settings) Get(key string) string {
	switch key {
	case KeyHost:
		return s.Host
	case KeyPort:
		return s.Port
	case KeyNetworkID:
		return s.NetworkID
	case KeyFrom:
		return s.From
	case KeyGasLimit:
		return s.GasLimit
	case KeyGasPrice:
		return s.GasPrice
	}
	return ""
}

// Set stores value under key. Unknown keys are ignored.
func (s *Settings) Set(key, value string) {
	switch key {
	case KeyHost:
		s.Host = value
	case KeyPort:
		s.Port = value
	case KeyNetworkID:
		s.NetworkID = value
	case KeyFrom:
		s.From = value
	case KeyGasLimit:
		s.GasLimit = value
	case KeyGasPrice:
		s.GasPrice = value
	}
}

// WebsocketURL is the provider URL the DApp uses for event subscriptions.
func (s Settings) WebsocketURL() string {
	return "ws://" + s.Host + ":" + s.Port
}

// Multiaddr describes the node's TCP endpoint. Hosts that are not IP
// literals are encoded as /dns.
func (s Settings) Multiaddr() (ma.Multiaddr, error) {
	proto := "dns"
	if ip := net.ParseIP(s.Host); ip != nil {
		if ip.To4() != nil {
			proto = "ip4"
		} else {
			proto = "ip6"
		}
	}
	addr, err := ma.NewMultiaddr(fmt.Sprintf("/%s/%s/tcp/%s", proto, s.Host, s.Port))
	if err != nil {
		return nil, fmt.Errorf("invalid node endpoint %s:%s: %w", s.Host, s.Port, err)
	}
	return addr, nil
}

// Warnings reports values that Truffle or the node will likely reject.
// Nothing here blocks a run; the values are written as entered.
func (s Settings) Warnings() []string {
	var warnings []string

	if port, err := strconv.Atoi(s.Port); err != nil || port < 1 || port > 65535 {
		warnings = append(warnings, fmt.Sprintf("port %q is not a valid TCP port", s.Port))
	}
	if _, err := strconv.ParseUint(s.NetworkID, 10, 64); err != nil {
		warnings = append(warnings, fmt.Sprintf("network id %q is not a number", s.NetworkID))
	}
	if !common.IsHexAddress(s.From) {
		warnings = append(warnings, fmt.Sprintf("deployer %q is not a hex address", s.From))
	}
	if _, err := strconv.ParseUint(s.GasLimit, 10, 64); err != nil {
		warnings = append(warnings, fmt.Sprintf("gas limit %q is not a number", s.GasLimit))
	}
	if _, ok := new(big.Int).SetString(s.GasPrice, 10); !ok {
		warnings = append(warnings, fmt.Sprintf("gas price %q is not a number", s.GasPrice))
	}

	return warnings
}
