package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/MetalBlockchain/rpiparams/chaincfg"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const regTestGenesis = "495c37dd20fb869910ca66826a95167e15a629181b6009afd05c1f1b4e393397"

func run(ctx context.Context, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestRegenerateRegTestGenesis(t *testing.T) {
	out, err := run(context.Background(), "--network", "regtest", "--nonce", "3", "--name", "regTest")
	require.NoError(t, err)

	assert.Contains(t, out, "Block Hash: "+regTestGenesis)
	assert.Contains(t, out, `regTestGenesisHash = "`+regTestGenesis+`"`)
	assert.Contains(t, out, "\tNonce:       3,\n")
	assert.Contains(t, out, "\tBits:        0x207fffff,\n")
	assert.Contains(t, out, "\tWitnesses:   []int64{0, 42},\n")
}

func TestCustomGenesis(t *testing.T) {
	pubKey := "0467b402a59fdb190a280fd7bc2234986dae22a28df82dabe19b58383c1c1f78b6d82f88fb90054efa6ff0025a8a38b802a2d04b5037f4fc56beb445f18d22d403"

	out, err := run(context.Background(),
		"--network", "regtest",
		"--message", "hello genesis",
		"--pubkey", pubKey,
		"--reward", "500000000",
		"--timestamp", "1600000000",
		"--bits", "207fffff",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "\tMessage:     []byte(\"hello genesis\"),\n")
	assert.Contains(t, out, "\tPayeeScript: mustPayToPubKeyScript(\""+pubKey+"\"),\n")
	assert.Contains(t, out, "\tSubsidy:     5 * btcutil.SatoshiPerBitcoin,\n")
	assert.Contains(t, out, "\tTime:        time.Unix(1600000000, 0), // 2020-09-13 12:26:40 +0000 UTC\n")
	assert.Contains(t, out, "customGenesisMerkleRoot = ")
}

func TestGeneratedGenesisRebuilds(t *testing.T) {
	spec := chaincfg.ProfileFor(chaincfg.RegTest).GenesisSpec()
	spec.Message = []byte("rebuild me")
	spec.Nonce = 0

	block, err := chaincfg.SolveGenesis(context.Background(), spec)
	require.NoError(t, err)

	var out bytes.Buffer
	spec.Nonce = block.Header.Nonce
	printGenesisLiterals(&out, "x", block, spec, "")

	hash := block.BlockHash()
	assert.Contains(t, out.String(), `xGenesisHash = "`+hash.String()+`"`)

	rebuilt, err := chaincfg.BuildGenesis(spec)
	require.NoError(t, err)
	require.NoError(t, chaincfg.VerifyGenesis(rebuilt, hash.String(), block.Header.MerkleRoot.String()))
}

func TestGenesisOptionErrors(t *testing.T) {
	tests := map[string][]string{
		"network": {"--network", "signet"},
		"pubkey":  {"--pubkey", "04ff"},
		"bits":    {"--bits", "zz"},
		"reward":  {"--reward", "-1"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(context.Background(), args...)
			require.Error(t, err)
		})
	}
}

func TestGenesisCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := run(ctx, "--network", "main")
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateKeyPair(t *testing.T) {
	for _, id := range chaincfg.Networks() {
		params := chaincfg.ProfileFor(id)
		chainParams := params.ChainParams()

		kp, err := generateKeyPair(params)
		require.NoError(t, err, id)

		addr, err := btcutil.DecodeAddress(kp.p2pkh, chainParams)
		require.NoError(t, err, id)
		assert.True(t, addr.IsForNet(chainParams), id)

		wif, err := btcutil.DecodeWIF(kp.wif)
		require.NoError(t, err, id)
		assert.True(t, wif.IsForNet(chainParams), id)
		assert.True(t, wif.CompressPubKey, id)

		_, version, err := base58.CheckDecode(kp.staking)
		require.NoError(t, err, id)
		assert.Equal(t, params.AddressPrefixes().Staking, version, id)

		for _, encoded := range []string{kp.extPrivate, kp.extPublic} {
			key, err := hdkeychain.NewKeyFromString(encoded)
			require.NoError(t, err, id)
			assert.True(t, key.IsForNet(chainParams), id)
		}

		_, err = chaincfg.PayToPubKeyScript(kp.pubKeyHex)
		require.NoError(t, err, id)
	}
}

func TestKeygenCommand(t *testing.T) {
	out, err := run(context.Background(), "keygen", "--network", "test")
	require.NoError(t, err)
	assert.Contains(t, out, "New Key Pair Generated (test)")
	assert.Contains(t, out, "genesis-generator --network test --pubkey 04")
}
