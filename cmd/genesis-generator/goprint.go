package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MetalBlockchain/rpiparams/chaincfg"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
)

// printGenesisLiterals writes the constants and GenesisSpec literal that
// reproduce block in a chaincfg network profile.
func printGenesisLiterals(w io.Writer, prefix string, block *wire.MsgBlock, spec chaincfg.GenesisSpec, pubKey string) {
	hash := block.BlockHash()

	fmt.Fprintf(w, `const (
	// %[1]sGenesisHash is the hash of the %[1]s network genesis block.
	%[1]sGenesisHash = "%[2]s"

	// %[1]sGenesisMerkleRoot is the hash of the %[1]s network genesis
	// coinbase.
	%[1]sGenesisMerkleRoot = "%[3]s"
)

`, prefix, hash, block.Header.MerkleRoot)

	witnesses := make([]string, 0, len(spec.Witnesses))
	for _, wit := range spec.Witnesses {
		witnesses = append(witnesses, strconv.FormatInt(wit, 10))
	}

	fmt.Fprintf(w, "genesisSpec: GenesisSpec{\n")
	fmt.Fprintf(w, "\tMessage:     []byte(%s),\n", strconv.Quote(string(spec.Message)))
	fmt.Fprintf(w, "\tWitnesses:   []int64{%s},\n", strings.Join(witnesses, ", "))
	switch {
	case pubKey != "":
		fmt.Fprintf(w, "\tPayeeScript: mustPayToPubKeyScript(%q),\n", pubKey)
	case len(spec.PayeeScript) > 0:
		fmt.Fprintf(w, "\tPayeeScript: []byte{\n")
		printBytesWithASCII(w, spec.PayeeScript, 2)
		fmt.Fprintf(w, "\t},\n")
	}
	fmt.Fprintf(w, "\tSubsidy:     %s,\n", subsidyLiteral(spec.Subsidy))
	fmt.Fprintf(w, "\tVersion:     %d,\n", spec.Version)
	fmt.Fprintf(w, "\tTime:        time.Unix(%d, 0), // %s\n", spec.Time.Unix(),
		spec.Time.UTC().Format("2006-01-02 15:04:05 -0700 MST"))
	fmt.Fprintf(w, "\tBits:        0x%08x,\n", spec.Bits)
	fmt.Fprintf(w, "\tNonce:       %d,\n", spec.Nonce)
	fmt.Fprintf(w, "},\n")
	fmt.Fprintf(w, "genesisHashHex:   %sGenesisHash,\n", prefix)
	fmt.Fprintf(w, "genesisMerkleHex: %sGenesisMerkleRoot,\n", prefix)
}

// subsidyLiteral renders whole coin amounts in coins.
func subsidyLiteral(amount btcutil.Amount) string {
	if amount != 0 && amount%btcutil.SatoshiPerBitcoin == 0 {
		return fmt.Sprintf("%d * btcutil.SatoshiPerBitcoin", int64(amount/btcutil.SatoshiPerBitcoin))
	}
	return strconv.FormatInt(int64(amount), 10)
}

// printBytesWithASCII writes data as Go byte literals, eight per line, each
// line followed by its printable characters.
func printBytesWithASCII(w io.Writer, data []byte, indentLevel int) {
	indent := strings.Repeat("\t", indentLevel)

	for i := range data {
		if i%8 == 0 {
			fmt.Fprint(w, indent)
		}
		fmt.Fprintf(w, "0x%02x, ", data[i])
		if i%8 != 7 && i != len(data)-1 {
			continue
		}

		// Pad if not a full line
		short := 0
		if i == len(data)-1 && i%8 != 7 {
			short = 7 - i%8
			fmt.Fprint(w, strings.Repeat("      ", short))
		}

		fmt.Fprint(w, "/* |")
		for j := (i / 8) * 8; j <= i; j++ {
			b := data[j]
			if b >= 32 && b <= 126 {
				fmt.Fprintf(w, "%c", b)
			} else {
				fmt.Fprint(w, ".")
			}
		}
		fmt.Fprint(w, strings.Repeat(".", short))
		fmt.Fprintln(w, "| */")
	}
}

