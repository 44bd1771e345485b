package core

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"initenv/pkg/network"
)

type Config struct {
	// Contract workspace
	ContractDir     string
	ConfigFile      string
	CompilerVersion string

	// External commands
	InstallCommand string
	InstallAck     string
	DeployCommand  string
	DappDir        string
	CommandTimeout time.Duration

	// Node checks
	Probe bool

	// Values offered when a prompt is left blank
	Defaults network.Settings
}

func DefaultConfig() *Config {
	return &Config{
		ContractDir:     "./src/contract/deploy",
		ConfigFile:      "truffle-config.js",
		CompilerVersion: "0.8.9",
		InstallCommand:  "npm install",
		InstallAck:      "npm installed",
		DeployCommand:   "truffle deploy",
		DappDir:         "../../",
		CommandTimeout:  0, // no timeout
		Probe:           false,
		Defaults:        network.DefaultSettings(),
	}
}

// RegisterDefaults seeds v with DefaultConfig so config files and
// INITENV_* variables only need to name what they change.
func RegisterDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("contract_dir", def.ContractDir)
	v.SetDefault("config_file", def.ConfigFile)
	v.SetDefault("compiler_version", def.CompilerVersion)
	v.SetDefault("install_command", def.InstallCommand)
	v.SetDefault("install_ack", def.InstallAck)
	v.SetDefault("deploy_command", def.DeployCommand)
	v.SetDefault("dapp_dir", def.DappDir)
	v.SetDefault("command_timeout", def.CommandTimeout)
	v.SetDefault("probe", def.Probe)
	for _, p := range network.Prompts {
		v.SetDefault("defaults."+p.Key, def.Defaults.Get(p.Key))
	}
}

// Load builds a Config from v. RegisterDefaults must have been called on v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ContractDir:     v.GetString("contract_dir"),
		ConfigFile:      v.GetString("config_file"),
		CompilerVersion: v.GetString("compiler_version"),
		InstallCommand:  v.GetString("install_command"),
		InstallAck:      v.GetString("install_ack"),
		DeployCommand:   v.GetString("deploy_command"),
		DappDir:         v.GetString("dapp_dir"),
		CommandTimeout:  v.GetDuration("command_timeout"),
		Probe:           v.GetBool("probe"),
	}
	for _, p := range network.Prompts {
		cfg.Defaults.Set(p.Key, v.GetString("defaults."+p.Key))
	}

	if cfg.ContractDir == "" {
		return nil, fmt.Errorf("contract_dir must not be empty")
	}
	if cfg.ConfigFile == "" {
		return nil, fmt.Errorf("config_file must not be empty")
	}
	if cfg.CommandTimeout < 0 {
		return nil, fmt.Errorf("command_timeout must not be negative, got %s", cfg.CommandTimeout)
	}
	return cfg, nil
}
