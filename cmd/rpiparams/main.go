// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/MetalBlockchain/rpiparams/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	log "github.com/inconshreveable/log15"
)

// genesisSource is the part of a profile the genesis check reads.
type genesisSource interface {
	GenesisSpec() chaincfg.GenesisSpec
	GenesisHashHex() string
	GenesisMerkleRootHex() string
	ProofOfWorkLimit() *big.Int
}

// session is the state shared by every subcommand once the configuration
// is loaded and a network is selected.
type session struct {
	cfg    *config
	params *chaincfg.Params
	close  func()
}

// openSession loads the configuration, initializes logging and selects the
// configured network.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return nil, err
	}

	closeLog, err := initLogging(cfg.LogLevel, cfg.LogDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	log.Debug("Starting rpiparams", "version", version(), "command", cmd.Name())
	cfg.show()

	registry := chaincfg.NewRegistry()
	return &session{
		cfg:    cfg,
		params: registry.Select(cfg.netParams.Net()),
		close:  closeLog,
	}, nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rpiparams",
		Short:         "Inspect and serve chain parameters",
		Long:          "Inspect, verify and serve the consensus and network parameters of the main, test, regression test and unit test networks",
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	registerFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newShowCmd(),
		newGenesisCmd(),
		newCheckpointsCmd(),
		newUpgradesCmd(),
		newServeCmd(),
	)
	return rootCmd
}

// withSession wraps run so that it is called with an open session.
func withSession(run func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()
		return run(cmd, args, s)
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the parameters of the selected network",
		Args:  cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			return printJSON(cmd.OutOrStdout(), newParamsView(s.cfg.netParams))
		}),
	}
}

func newGenesisCmd() *cobra.Command {
	var dump, verify bool

	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Print or verify the genesis block of the selected network",
		Args:  cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			out := cmd.OutOrStdout()

			if verify {
				hash, err := verifyGenesis(s.params)
				if err != nil {
					return fmt.Errorf("%v genesis: %w", s.params.Net(), err)
				}
				log.Info("Genesis block verified", "network", s.params.Name(), "hash", hash)
				_, err = fmt.Fprintf(out, "%s genesis %s ok\n", s.params.Name(), hash)
				return err
			}

			if dump {
				_, err := io.WriteString(out, spew.Sdump(s.params.GenesisBlock()))
				return err
			}
			return printJSON(out, newGenesisView(s.params))
		}),
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the full genesis block structure")
	cmd.Flags().BoolVar(&verify, "verify", false, "Rebuild the genesis block and check it against the network's hashes")
	return cmd
}

func newCheckpointsCmd() *cobra.Command {
	var height int32

	cmd := &cobra.Command{
		Use:   "checkpoints",
		Short: "Print the checkpoints of the selected network",
		Args:  cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			if !cmd.Flags().Changed("height") {
				return printJSON(cmd.OutOrStdout(), newCheckpointsView(s.params))
			}
			hash, ok := s.params.Checkpoints().Lookup(height)
			if !ok {
				return fmt.Errorf("no checkpoint at height %d on %v", height, s.params.Net())
			}
			return printJSON(cmd.OutOrStdout(), checkpointView{Height: height, Hash: hash.String()})
		}),
	}
	cmd.Flags().Int32Var(&height, "height", 0, "Only print the checkpoint at this height")
	return cmd
}

func newUpgradesCmd() *cobra.Command {
	var height int32

	cmd := &cobra.Command{
		Use:   "upgrades [upgrade]",
		Short: "Print the upgrade schedule of the selected network",
		Args:  cobra.MaximumNArgs(1),
		RunE: withSession(func(cmd *cobra.Command, args []string, s *session) error {
			var at *int32
			if cmd.Flags().Changed("height") {
				if height < 0 {
					return fmt.Errorf("invalid height %d", height)
				}
				at = &height
			}

			if len(args) == 0 {
				return printJSON(cmd.OutOrStdout(), newUpgradesView(s.params, at))
			}
			u, ok := parseUpgrade(args[0])
			if !ok {
				return fmt.Errorf("unknown upgrade %q", args[0])
			}
			return printJSON(cmd.OutOrStdout(), newUpgradeView(s.params, u, at))
		}),
	}
	cmd.Flags().Int32Var(&height, "height", 0, "Report whether each upgrade is active at this height")
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the parameters and metrics of the selected network over HTTP",
		Args:  cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			defer log.Info("Shutdown complete")

			ctx := interruptListener(cmd.Context())

			// Start profiling if requested
			stopProfiler, err := startProfiler(s.cfg.CPUProfile, s.cfg.MemProfile, s.cfg.HTTPProfile)
			if err != nil {
				log.Error("Failed to start profiler", "error", err)
				return err
			}
			defer stopProfiler()

			// Return now if an interrupt signal was triggered
			if interruptRequested(ctx) {
				return nil
			}

			if err := newParamsServer(s.cfg.netParams).run(ctx, s.cfg.Listen); err != nil {
				log.Error("Parameter server error", "error", err)
				return err
			}
			return nil
		}),
	}
}

// verifyGenesis rebuilds the genesis block of p from its spec and checks it
// against the hard-coded hash and merkle root literals and the proof of work
// limit.
func verifyGenesis(p genesisSource) (chainhash.Hash, error) {
	block, err := chaincfg.BuildGenesis(p.GenesisSpec())
	if err != nil {
		return chainhash.Hash{}, err
	}
	if err := chaincfg.VerifyGenesis(block, p.GenesisHashHex(), p.GenesisMerkleRootHex()); err != nil {
		return chainhash.Hash{}, err
	}
	hash := block.BlockHash()
	if err := chaincfg.CheckProofOfWork(hash, block.Header.Bits, p.ProofOfWorkLimit()); err != nil {
		return chainhash.Hash{}, err
	}
	return hash, nil
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
