// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MetalBlockchain/rpiparams/chaincfg"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFlags returns a parsed flag set holding args.
func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("rpiparams", pflag.ContinueOnError)
	registerFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadConfigDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := loadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "main", cfg.Network)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:18001", cfg.Listen)
	assert.Equal(t, filepath.Join(home, ".rpiparams", "main"), cfg.DataDir)
	assert.Equal(t, filepath.Join(home, ".rpiparams", "logs", "main"), cfg.LogDir)
	assert.Equal(t, chaincfg.MainNet, cfg.netParams.Net())

	assert.DirExists(t, cfg.DataDir)
	assert.DirExists(t, cfg.LogDir)
}

func TestLoadConfigPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configFile := filepath.Join(home, "custom.conf")
	contents := "network = regtest\nloglevel = debug\nlisten = 127.0.0.1:9000\nhttpprofile = 6060\n"
	require.NoError(t, os.WriteFile(configFile, []byte(contents), 0600))

	t.Setenv("RPIPARAMS_CONFIGFILE", configFile)
	t.Setenv("RPIPARAMS_LOGLEVEL", "warn")
	t.Setenv("RPIPARAMS_LISTEN", "127.0.0.1:9050")

	cfg, err := loadConfig(testFlags(t, "--listen", "127.0.0.1:9100"))
	require.NoError(t, err)

	// The file sets the network, the environment overrides the log level
	// and the command line overrides both for the listen address.
	assert.Equal(t, configFile, cfg.ConfigFile)
	assert.Equal(t, "regtest", cfg.Network)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:9100", cfg.Listen)
	assert.Equal(t, "6060", cfg.HTTPProfile)
	assert.Equal(t, chaincfg.RegTest, cfg.netParams.Net())
	assert.Equal(t, filepath.Join(home, ".rpiparams", "regtest"), cfg.DataDir)
}

func TestLoadConfigFlagsOnlyWhenChanged(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("RPIPARAMS_NETWORK", "testnet")

	// The flag default of "main" must not override the environment.
	cfg, err := loadConfig(testFlags(t, "--loglevel", "error"))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Network)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:18003", cfg.Listen)
	assert.Equal(t, filepath.Join(home, ".rpiparams", "testnet4"), cfg.DataDir)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := loadConfig(testFlags(t, "--configfile", filepath.Join(home, "missing.conf")))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigBadFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configFile := filepath.Join(home, "bad.conf")
	require.NoError(t, os.WriteFile(configFile, []byte("[unterminated\n"), 0600))

	_, err := loadConfig(testFlags(t, "-C", configFile))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *config)
		errStr string
	}{
		{
			name:   "log level",
			modify: func(c *config) { c.LogLevel = "verbose" },
			errStr: "invalid log level",
		},
		{
			name:   "network",
			modify: func(c *config) { c.Network = "signet" },
			errStr: "signet",
		},
		{
			name:   "listen",
			modify: func(c *config) { c.Listen = "localhost" },
			errStr: "invalid listen address",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := t.TempDir()
			c := defaultConfig()
			c.DataDir = filepath.Join(dir, "data")
			c.LogDir = filepath.Join(dir, "logs")
			test.modify(c)

			err := c.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.errStr)
		})
	}
}

func TestNetName(t *testing.T) {
	assert.Equal(t, "main", netName(&mainNetParams))
	assert.Equal(t, "testnet4", netName(&testNetParams))
	assert.Equal(t, "regtest", netName(&regTestParams))
	assert.Equal(t, "unittest", netName(&unitTestParams))

	for _, id := range chaincfg.Networks() {
		p := paramsFor(id)
		assert.Equal(t, id, p.Net())
		assert.NotEqual(t, p.DefaultPort(), p.apiPort, "%v api port", id)
	}
}
