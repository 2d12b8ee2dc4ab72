package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/MetalBlockchain/rpiparams/chaincfg"
	"github.com/btcsuite/btcd/btcutil"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	hex "github.com/tmthrgd/go-hex"
)

// options holds the genesis parameters given on the command line.  Unset
// options keep the value of the base network's genesis block.
type options struct {
	network   string
	message   string
	pubKey    string
	reward    int64
	timestamp int64
	bits      string
	nonce     uint32
	prefix    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "genesis-generator",
		Short: "Mine a genesis block and print it as Go literals",
		Long: `Mine a genesis block starting from the genesis of an existing network.

Generate a payee key:  genesis-generator keygen --network <network>
Create a genesis:      genesis-generator --network <network> --pubkey <hex> --message <text>`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenesis(cmd, &opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.network, "network", "main", "Network whose genesis is the starting point (main, test, regtest, unittest)")
	flags.StringVar(&opts.message, "message", "", "Coinbase message")
	flags.StringVar(&opts.pubKey, "pubkey", "", "Hex encoded public key paid by the coinbase")
	flags.Int64Var(&opts.reward, "reward", 0, "Coinbase reward in satoshis")
	flags.Int64Var(&opts.timestamp, "timestamp", 0, "Block timestamp (unix seconds, 0 for now)")
	flags.StringVar(&opts.bits, "bits", "", "Difficulty bits in hex, e.g. 1e0ffff0")
	flags.Uint32Var(&opts.nonce, "nonce", 0, "First nonce to try")
	flags.StringVar(&opts.prefix, "name", "custom", "Prefix of the printed Go identifiers")

	rootCmd.AddCommand(newKeygenCmd())
	return rootCmd
}

// genesisSpec returns the genesis spec of the base network with the options
// given on the command line applied.
func genesisSpec(cmd *cobra.Command, opts *options) (*chaincfg.Params, chaincfg.GenesisSpec, error) {
	id, err := chaincfg.ParseNetworkID(opts.network)
	if err != nil {
		return nil, chaincfg.GenesisSpec{}, err
	}
	params := chaincfg.ProfileFor(id)
	spec := params.GenesisSpec()
	flags := cmd.Flags()

	if flags.Changed("message") {
		spec.Message = []byte(opts.message)
	}
	if flags.Changed("pubkey") {
		script, err := chaincfg.PayToPubKeyScript(opts.pubKey)
		if err != nil {
			return nil, spec, err
		}
		spec.PayeeScript = script
	}
	if flags.Changed("reward") {
		if opts.reward < 0 || opts.reward > int64(params.MaxMoney()) {
			return nil, spec, fmt.Errorf("reward %d out of range", opts.reward)
		}
		spec.Subsidy = btcutil.Amount(opts.reward)
	}
	if flags.Changed("timestamp") {
		spec.Time = time.Unix(opts.timestamp, 0)
		if opts.timestamp == 0 {
			spec.Time = time.Unix(time.Now().Unix(), 0)
		}
	}
	if flags.Changed("bits") {
		bits, err := strconv.ParseUint(opts.bits, 16, 32)
		if err != nil {
			return nil, spec, fmt.Errorf("invalid bits %q: %w", opts.bits, err)
		}
		spec.Bits = uint32(bits)
	}
	spec.Nonce = opts.nonce

	return params, spec, nil
}

func runGenesis(cmd *cobra.Command, opts *options) error {
	params, spec, err := genesisSpec(cmd, opts)
	if err != nil {
		return err
	}

	log.Info("Mining genesis block", "network", params.Name(), "bits", fmt.Sprintf("%08x", spec.Bits),
		"time", spec.Time.Unix(), "firstNonce", spec.Nonce)
	start := time.Now()

	block, err := chaincfg.SolveGenesis(cmd.Context(), spec)
	if err != nil {
		return err
	}
	spec.Nonce = block.Header.Nonce
	hash := block.BlockHash()

	if err := chaincfg.CheckProofOfWork(hash, spec.Bits, params.ProofOfWorkLimit()); err != nil {
		log.Warn("Genesis target exceeds the network's proof of work limit", "error", err)
	}
	log.Info("Found valid nonce", "nonce", spec.Nonce, "hash", hash, "elapsed", time.Since(start))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, `========================================
Custom Genesis Block Generated
========================================

Block Hash: %s
Merkle Root: %s
Timestamp: %s
Nonce: %d
Coinbase Reward: %s
Payee Script: %s

========================================
Go Code (chaincfg)
========================================

`, hash,
		block.Header.MerkleRoot,
		block.Header.Timestamp.UTC().Format(time.RFC3339),
		spec.Nonce,
		spec.Subsidy,
		hex.EncodeToString(spec.PayeeScript),
	)

	printGenesisLiterals(out, opts.prefix, block, spec, opts.pubKey)
	return nil
}
