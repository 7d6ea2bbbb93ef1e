// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command ecmath exercises the secp256k1 primitives from the command line:
// key and address derivation, WIF encoding, ECDSA signing and verification,
// and BIP32 derivation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ecmath [command]",
	Short: "secp256k1 key, signature and encoding tool",
	Long: `
Derives public keys, addresses and WIF strings from secrets, signs and
verifies messages with deterministic ECDSA, and walks BIP32 paths.
Secrets are read as decimal or 0x-prefixed hex integers.
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cliCtx.verbose)
		if err != nil {
			return err
		}
		cliCtx.log = log
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cliCtx.log != nil {
			_ = cliCtx.log.Sync()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&cliCtx.testnet, "testnet", false, "use testnet prefixes")
	pf.BoolVar(&cliCtx.compressed, "compressed", true, "use compressed SEC public keys")
	pf.BoolVarP(&cliCtx.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(ecmathCmds...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed running %q: %v\n", os.Args[1:], err)
		os.Exit(1)
	}
}
