// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/MetalBlockchain/rpiparams/chaincfg"
	log "github.com/inconshreveable/log15"
	flags "github.com/jessevdk/go-flags"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
)

const (
	defaultConfigFilename = "rpiparams.conf"
	defaultLogFilename    = "rpiparams.log"

	// envPrefix prefixes every environment variable, RPIPARAMS_NETWORK
	// selects the network for example.
	envPrefix = "RPIPARAMS"
)

var validLogLevels = []string{"trace", "debug", "info", "warn", "error", "crit"}

// config defines the configuration options for rpiparams.  Values are taken
// from, in increasing order of precedence, the defaults, the config file,
// the environment and the command line.
type config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file" envconfig:"CONFIGFILE"`

	// Network
	Network string `long:"network" description:"Network to use (main, test, regtest, unittest)" envconfig:"NETWORK"`

	// Logging
	LogLevel string `long:"loglevel" description:"Log level (trace, debug, info, warn, error, crit)" envconfig:"LOGLEVEL"`
	LogDir   string `long:"logdir" description:"Directory for log files" envconfig:"LOGDIR"`

	// Paths
	DataDir string `long:"datadir" description:"Directory for data files" envconfig:"DATADIR"`

	// Parameter server
	Listen string `long:"listen" description:"Address the parameter server listens on, defaults to the network API port" envconfig:"LISTEN"`

	// Profiling
	CPUProfile  string `long:"cpuprofile" description:"Write CPU profile to file" envconfig:"CPUPROFILE"`
	MemProfile  string `long:"memprofile" description:"Write memory profile to file" envconfig:"MEMPROFILE"`
	HTTPProfile string `long:"httpprofile" description:"Enable HTTP profiling on port (e.g., 6060)" envconfig:"HTTPPROFILE"`

	// netParams is the parameter set of Network, filled in by validate.
	netParams *netParams
}

// defaultConfig returns a config with default values
func defaultConfig() *config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	defaultDataDir := filepath.Join(homeDir, ".rpiparams")

	return &config{
		ConfigFile: filepath.Join(defaultDataDir, defaultConfigFilename),
		Network:    chaincfg.MainNet.String(),
		LogLevel:   "info",
		LogDir:     filepath.Join(defaultDataDir, "logs"),
		DataDir:    defaultDataDir,
	}
}

// registerFlags adds the command line form of every option to fs.  Flags
// only override the other sources when they are given explicitly.
func registerFlags(fs *pflag.FlagSet) {
	d := defaultConfig()

	fs.StringP("configfile", "C", d.ConfigFile, "Path to configuration file")
	fs.String("network", d.Network, "Network to use (main, test, regtest, unittest)")
	fs.String("loglevel", d.LogLevel, "Log level (trace, debug, info, warn, error, crit)")
	fs.String("logdir", d.LogDir, "Directory for log files")
	fs.String("datadir", d.DataDir, "Directory for data files")
	fs.String("listen", "", "Address the parameter server listens on")
	fs.String("cpuprofile", "", "Write CPU profile to file")
	fs.String("memprofile", "", "Write memory profile to file")
	fs.String("httpprofile", "", "Enable HTTP profiling on port (e.g., 6060)")
}

// flagTargets maps each flag to the config field it sets.
func (c *config) flagTargets() map[string]*string {
	return map[string]*string{
		"configfile":  &c.ConfigFile,
		"network":     &c.Network,
		"loglevel":    &c.LogLevel,
		"logdir":      &c.LogDir,
		"datadir":     &c.DataDir,
		"listen":      &c.Listen,
		"cpuprofile":  &c.CPUProfile,
		"memprofile":  &c.MemProfile,
		"httpprofile": &c.HTTPProfile,
	}
}

// loadConfig builds the configuration from the defaults, the config file,
// the environment and the explicitly set flags in fs, then validates it.
func loadConfig(fs *pflag.FlagSet) (*config, error) {
	cfg := defaultConfig()

	// The config file location itself can only come from the environment
	// or the command line.
	explicitFile := false
	if path, ok := os.LookupEnv(envPrefix + "_CONFIGFILE"); ok {
		cfg.ConfigFile, explicitFile = path, true
	}
	if fs != nil && fs.Changed("configfile") {
		cfg.ConfigFile, _ = fs.GetString("configfile")
		explicitFile = true
	}

	if err := parseConfigFile(cfg, cfg.ConfigFile); err != nil {
		if !explicitFile && errors.Is(err, os.ErrNotExist) {
			log.Debug("No config file", "path", cfg.ConfigFile)
		} else {
			return nil, err
		}
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if fs != nil {
		for name, dst := range cfg.flagTargets() {
			if fs.Lookup(name) == nil || !fs.Changed(name) {
				continue
			}
			value, err := fs.GetString(name)
			if err != nil {
				return nil, err
			}
			*dst = value
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseConfigFile reads ini formatted options from path into cfg.
func parseConfigFile(cfg *config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	configFile := cfg.ConfigFile
	parser := flags.NewParser(cfg, flags.IgnoreUnknown)
	if err := flags.NewIniParser(parser).ParseFile(path); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	// A config file cannot redirect to another one.
	cfg.ConfigFile = configFile
	return nil
}

// validate checks that the configuration is valid
func (c *config) validate() error {
	// Validate log level
	validLevel := false
	for _, level := range validLogLevels {
		if c.LogLevel == level {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.LogLevel, validLogLevels)
	}

	id, err := chaincfg.ParseNetworkID(c.Network)
	if err != nil {
		return err
	}
	c.netParams = paramsFor(id)
	c.Network = id.String()

	if c.Listen == "" {
		c.Listen = net.JoinHostPort("127.0.0.1", c.netParams.apiPort)
	}
	if _, _, err := net.SplitHostPort(c.Listen); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", c.Listen, err)
	}

	// Data and logs are kept per network.
	c.DataDir = filepath.Join(c.DataDir, netName(c.netParams))
	c.LogDir = filepath.Join(c.LogDir, netName(c.netParams))

	// Ensure directories exist
	for _, dir := range []string{c.DataDir, c.LogDir} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// version returns the version string
func version() string {
	return "0.1.0"
}

// show logs the current configuration
func (c *config) show() {
	log.Info("Configuration",
		"configFile", c.ConfigFile,
		"network", c.Network,
		"logLevel", c.LogLevel,
		"logDir", c.LogDir,
		"dataDir", c.DataDir,
		"listen", c.Listen,
		"cpuProfile", c.CPUProfile,
		"memProfile", c.MemProfile,
		"httpProfile", c.HTTPProfile,
	)
}
