package main

import (
	"fmt"
	"io"

	"github.com/MetalBlockchain/rpiparams/chaincfg"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/spf13/cobra"
	hex "github.com/tmthrgd/go-hex"
)

// keyPair is a freshly generated payee key encoded for one network.
type keyPair struct {
	network string

	wif           string
	privKeyHex    string
	pubKeyHex     string
	compressedHex string

	p2pkh   string
	staking string

	extPrivate string
	extPublic  string
}

func newKeygenCmd() *cobra.Command {
	var network string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a payee key pair encoded with a network's prefixes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := chaincfg.ParseNetworkID(network)
			if err != nil {
				return err
			}
			kp, err := generateKeyPair(chaincfg.ProfileFor(id))
			if err != nil {
				return err
			}
			kp.print(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().StringVar(&network, "network", "main", "Network whose prefixes encode the key (main, test, regtest, unittest)")
	return cmd
}

// generateKeyPair creates a new private key and a new extended master key
// and encodes them with the prefixes of params.
func generateKeyPair(params *chaincfg.Params) (*keyPair, error) {
	chainParams := params.ChainParams()

	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}
	pubKey := privKey.PubKey()

	pubKeyHash := btcutil.Hash160(pubKey.SerializeCompressed())
	p2pkh, err := btcutil.NewAddressPubKeyHash(pubKeyHash, chainParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create P2PKH address: %w", err)
	}
	staking, err := params.StakingAddress(pubKeyHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create staking address: %w", err)
	}

	wif, err := btcutil.NewWIF(privKey, chainParams, true)
	if err != nil {
		return nil, fmt.Errorf("failed to create WIF: %w", err)
	}

	seed, err := hdkeychain.GenerateSeed(hdkeychain.RecommendedSeedLen)
	if err != nil {
		return nil, fmt.Errorf("failed to generate seed: %w", err)
	}
	master, err := hdkeychain.NewMaster(seed, chainParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create extended key: %w", err)
	}
	masterPub, err := master.Neuter()
	if err != nil {
		return nil, fmt.Errorf("failed to neuter extended key: %w", err)
	}

	return &keyPair{
		network:       params.Name(),
		wif:           wif.String(),
		privKeyHex:    hex.EncodeToString(privKey.Serialize()),
		pubKeyHex:     hex.EncodeToString(pubKey.SerializeUncompressed()),
		compressedHex: hex.EncodeToString(pubKey.SerializeCompressed()),
		p2pkh:         p2pkh.EncodeAddress(),
		staking:       staking,
		extPrivate:    master.String(),
		extPublic:     masterPub.String(),
	}, nil
}

func (kp *keyPair) print(w io.Writer) {
	fmt.Fprintf(w, `========================================
New Key Pair Generated (%s)
========================================

PRIVATE KEY - KEEP THIS SECRET!
Private Key (WIF): %s
Private Key (hex): %s

Public Key:
  Uncompressed: %s
  Compressed: %s

Addresses:
  P2PKH: %s
  Staking: %s

Extended Keys:
  Private: %s
  Public: %s

========================================

To create a genesis block paying this key, run:
  genesis-generator --network %s --pubkey %s

`, kp.network,
		kp.wif,
		kp.privKeyHex,
		kp.pubKeyHex,
		kp.compressedHex,
		kp.p2pkh,
		kp.staking,
		kp.extPrivate,
		kp.extPublic,
		kp.network, kp.pubKeyHex,
	)
}
