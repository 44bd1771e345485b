package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "127.0.0.1", s.Host)
	assert.Equal(t, "7545", s.Port)
	assert.Equal(t, "5777", s.NetworkID)
	assert.Equal(t, "eBA23Ff92Ca2Cb819921e9cD98924B7D252689ed", s.From)
	assert.Equal(t, "6721975", s.GasLimit)
	assert.Equal(t, "20000000000", s.GasPrice)
	assert.Empty(t, s.Warnings())
}

func TestWebsocketURL(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "ws://127.0.0.1:7545", s.WebsocketURL())

	// Only host and port take part in the URL.
	s.Host, s.Port = "node.local", "8546"
	s.GasPrice = "1"
	assert.Equal(t, "ws://node.local:8546", s.WebsocketURL())
}

func TestGetSetRoundTrip(t *testing.T) {
	var s Settings
	for i, p := range Prompts {
		s.Set(p.Key, string(rune('a'+i)))
	}
	assert.Equal(t, Settings{Host: "a", Port: "b", NetworkID: "c", From: "d", GasLimit: "e", GasPrice: "f"}, s)
	for i, p := range Prompts {
		assert.Equal(t, string(rune('a'+i)), s.Get(p.Key))
	}

	s.Set("unknown", "x")
	assert.Equal(t, "", s.Get("unknown"))
}

func TestPromptText(t *testing.T) {
	require.Len(t, Prompts, 6)
	assert.Equal(t,
		"Enter the IP address of your node (default: 127.0.0.1): ",
		Prompts[0].Text(DefaultSettings().Host))
	assert.Equal(t,
		"Enter the gas price in Wei (default: 20000000000): ",
		Prompts[5].Text(DefaultSettings().GasPrice))
}

func TestMultiaddr(t *testing.T) {
	addr, err := DefaultSettings().Multiaddr()
	require.NoError(t, err)
	assert.Equal(t, "/ip4/127.0.0.1/tcp/7545", addr.String())

	addr, err = Settings{Host: "::1", Port: "8545"}.Multiaddr()
	require.NoError(t, err)
	assert.Equal(t, "/ip6/::1/tcp/8545", addr.String())

	addr, err = Settings{Host: "ganache", Port: "8545"}.Multiaddr()
	require.NoError(t, err)
	assert.Equal(t, "/dns/ganache/tcp/8545", addr.String())

	_, err = Settings{Host: "127.0.0.1", Port: "not-a-port"}.Multiaddr()
	assert.Error(t, err)
}

func TestWarnings(t *testing.T) {
	s := Settings{
		Host:      "127.0.0.1",
		Port:      "99999",
		NetworkID: "dev",
		From:      "0x123",
		GasLimit:  "lots",
		GasPrice:  "cheap",
	}
	warnings := s.Warnings()
	assert.Len(t, warnings, 5)
	assert.Contains(t, warnings[0], "99999")
	assert.Contains(t, warnings[2], "0x123")

	s = DefaultSettings()
	s.From = "0x" + s.From
	assert.Empty(t, s.Warnings())
}
