package setup

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"initenv/pkg/core"
	"initenv/pkg/execx"
	"initenv/pkg/l1"
	"initenv/pkg/network"
	"initenv/pkg/prompt"
)

const deployOutput = `
Compiling your contracts...
===========================
   Deploying 'Battleship'
   ----------------------
   > transaction hash:    0x5c0d7bd1ae2c4bd3b0b4fc0c6a9e1e3e9d0b7b6f0c1a2b3c4d5e6f708192a3b4
   > contract address:    0xf3eD3Ece5fE6B90c85Be75c24e3963a37f1c5692
   > block number:        3
Here it is the contract address to put in the configFile: 0xf3eD3Ece5fE6B90c85Be75c24e3963a37f1c5692
`

type call struct {
	command string
	dir     string
}

type fakeExecutor struct {
	results map[string]execx.Result
	calls   []call
}

func (f *fakeExecutor) Execute(ctx context.Context, command, dir string) execx.Result {
	f.calls = append(f.calls, call{command: command, dir: dir})
	return f.results[command]
}

func newPipeline(t *testing.T, input string, fake *fakeExecutor) (*Pipeline, *core.Config, *bytes.Buffer) {
	t.Helper()

	cfg := core.DefaultConfig()
	cfg.ContractDir = t.TempDir()

	var out bytes.Buffer
	resolver := prompt.NewResolver(strings.NewReader(input), &out)
	runner := execx.NewRunner(fake, &out)
	return New(cfg, resolver, runner, &out), cfg, &out
}

func readConfig(t *testing.T, cfg *core.Config) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(cfg.ContractDir, cfg.ConfigFile))
	require.NoError(t, err)
	return string(content)
}

func TestRunWithDefaults(t *testing.T) {
	fake := &fakeExecutor{results: map[string]execx.Result{
		"npm install":    {Code: 0, Stdout: "added 1 package"},
		"truffle deploy": {Code: 0, Stdout: deployOutput},
	}}
	p, cfg, out := newPipeline(t, "\nd\n\n\nd\n\n", fake)

	require.NoError(t, p.Run(context.Background()))

	config := readConfig(t, cfg)
	assert.Contains(t, config, `host: "127.0.0.1",`)
	assert.Contains(t, config, `port: "7545",`)
	assert.Contains(t, config, `network_id: "5777",`)
	assert.Contains(t, config, `from: "eBA23Ff92Ca2Cb819921e9cD98924B7D252689ed",`)
	assert.Contains(t, config, `gas: 6721975,`)
	assert.Contains(t, config, `gasPrice: 20000000000,`)
	assert.Contains(t, config, `version: "0.8.9",`)

	assert.Equal(t, []call{
		{command: "npm install", dir: cfg.ContractDir},
		{command: "truffle deploy", dir: cfg.ContractDir},
		{command: "cd ../../", dir: ""},
		{command: "npm install", dir: ""},
	}, fake.calls)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Config Phase 1: Configure Truffle with Ganache, compile, and deploy the contract\n"))
	assert.Contains(t, text, "Enter the IP address of your node (default: 127.0.0.1): ")
	assert.Contains(t, text, "The Truffle config file has been created and set successfully in "+cfg.ContractDir+".\n")
	assert.Contains(t, text, "The Provider URL in the configFile.js in ["+cfg.ContractDir+"] will be: ws://127.0.0.1:7545\n")
	assert.Contains(t, text, "The contract address to put in the configFile is: ")
	assert.Equal(t, 2, strings.Count(text, "npm installed\n"))
	assert.True(t, strings.HasSuffix(text, "In the end:\n  -If you execute terminal test, 'node /src/contract/test/test.js'\n  -If you use a React DAPP instead, 'npm start'\n"))
}

func TestRunWithCustomSettings(t *testing.T) {
	fake := &fakeExecutor{results: map[string]execx.Result{}}
	input := "10.0.0.7\n8546\n1337\n0x627306090abaB3A6e1400e9345bC60c78a8BEf57\n8000000\n1000\n"
	p, cfg, out := newPipeline(t, input, fake)

	require.NoError(t, p.Run(context.Background()))

	config := readConfig(t, cfg)
	assert.Contains(t, config, `host: "10.0.0.7",`)
	assert.Contains(t, config, `port: "8546",`)
	assert.Contains(t, config, `network_id: "1337",`)
	assert.Contains(t, config, `from: "0x627306090abaB3A6e1400e9345bC60c78a8BEf57",`)
	assert.Contains(t, config, `gas: 8000000,`)
	assert.Contains(t, config, `gasPrice: 1000,`)
	assert.Contains(t, out.String(), "will be: ws://10.0.0.7:8546\n")
	assert.NotContains(t, out.String(), "The contract address to put in the configFile is:")
}

func TestRunContinuesAfterFailures(t *testing.T) {
	fake := &fakeExecutor{results: map[string]execx.Result{
		"npm install":    {Code: 1, Stderr: "npm ERR! missing script"},
		"truffle deploy": {Code: 1, Stderr: "Error: Could not connect to your Ethereum client"},
		"cd ../../":      {Code: 2, Stderr: "cd: can't cd to ../../"},
	}}
	p, _, out := newPipeline(t, "", fake)

	require.NoError(t, p.Run(context.Background()))

	assert.Len(t, fake.calls, 4)
	text := out.String()
	assert.Contains(t, text, "Command execution failed.\nError:\nError: Could not connect to your Ethereum client\n")
	assert.Contains(t, text, "Command execution failed.\nError:\ncd: can't cd to ../../\n")
	assert.NotContains(t, text, "npm ERR!")
	assert.Equal(t, 2, strings.Count(text, "npm installed\n"))
	assert.Contains(t, text, "In the end:\n")
}

func TestRunStopsWhenConfigCannotBeWritten(t *testing.T) {
	fake := &fakeExecutor{results: map[string]execx.Result{}}
	p, cfg, out := newPipeline(t, "", fake)
	cfg.ContractDir = filepath.Join(cfg.ContractDir, "missing")

	err := p.Run(context.Background())

	assert.Error(t, err)
	assert.Empty(t, fake.calls)
	assert.NotContains(t, out.String(), "In the end:")
}

func TestProbeRunsWhenEnabled(t *testing.T) {
	fake := &fakeExecutor{results: map[string]execx.Result{}}
	p, cfg, _ := newPipeline(t, "", fake)
	cfg.Probe = true

	var probed []network.Settings
	p.WithProbe(func(ctx context.Context, s network.Settings) (*l1.Report, error) {
		probed = append(probed, s)
		return nil, errors.New("connection refused")
	})

	// A failed probe does not stop the deploy.
	require.NoError(t, p.Run(context.Background()))
	require.Len(t, probed, 1)
	assert.Equal(t, network.DefaultSettings(), probed[0])
	assert.Len(t, fake.calls, 4)
}

func TestProbeSkippedByDefault(t *testing.T) {
	fake := &fakeExecutor{results: map[string]execx.Result{}}
	p, _, _ := newPipeline(t, "", fake)

	p.WithProbe(func(ctx context.Context, s network.Settings) (*l1.Report, error) {
		t.Fatal("probe should not run")
		return nil, nil
	})

	require.NoError(t, p.Run(context.Background()))
}

func TestExtractContractAddress(t *testing.T) {
	addr, ok := ExtractContractAddress(deployOutput)
	require.True(t, ok)
	assert.Equal(t, common.HexToAddress("0xf3eD3Ece5fE6B90c85Be75c24e3963a37f1c5692"), addr)

	_, ok = ExtractContractAddress("   > transaction hash:    0x5c0d7bd1ae2c4bd3b0b4fc0c6a9e1e3e9d0b7b6f\n")
	assert.False(t, ok)

	_, ok = ExtractContractAddress("")
	assert.False(t, ok)

	// The last reported deployment wins.
	addr, ok = ExtractContractAddress("> contract address: 0x1111111111111111111111111111111111111111\n> contract address: 0x2222222222222222222222222222222222222222\n")
	require.True(t, ok)
	assert.Equal(t, common.HexToAddress("0x2222222222222222222222222222222222222222"), addr)
}

func TestInstructionsPrint(t *testing.T) {
	var out bytes.Buffer
	Instructions{ContractDir: "./src/contract/deploy", ProviderURL: "ws://127.0.0.1:7545"}.Print(&out)

	want := "Config Phase 2: you have to manually configure configFile.js\n" +
		"\n" +
		"The Provider URL in the configFile.js in [./src/contract/deploy] will be: ws://127.0.0.1:7545\n" +
		"Web socket will be used to enable Ganache event subscriptions.\n" +
		"\n" +
		"Please update the configFile with the above provided data and insert the private key of a rich account (account1SK) and 3 other accounts chosen from Ganache.\n" +
		"  -If you execute terminal tests, almost all the accounts will be used.\n" +
		"  -If you use a React DAPP instead, account1SK will be used to fund brand-new accounts.\n" +
		"\n"
	assert.Equal(t, want, out.String())
}
