// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/ModChain/ecmath/digest"
	"github.com/ModChain/ecmath/secp256k1"
	"github.com/ModChain/ecmath/secp256k1/ecckd"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "checks the curve parameters",
	Long: `
Checks that the generator lies on y^2 = x^3 + 7 and that N*G is the point at
infinity.
`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	params := secp256k1.S256()
	g := secp256k1.Generator()
	cliCtx.log.Debug("curve parameters",
		zap.String("name", params.Name),
		zap.Int("bits", params.BitSize),
		zap.Stringer("p", params.P()),
		zap.Stringer("n", params.N()))

	x, y := secp256k1.FieldElement(g.X()), secp256k1.FieldElement(g.Y())
	if !y.Square().Equal(x.PowUint64(3).Add(params.B())) {
		return errors.AssertionFailedf("generator is not on the curve")
	}
	if !g.Curve().ScalarMult(params.N()).IsInfinity() {
		return errors.AssertionFailedf("N*G is not the point at infinity")
	}
	cliCtx.log.Info("curve checked", zap.String("name", params.Name))
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}

var pubkeyCmd = &cobra.Command{
	Use:   "pubkey <secret>",
	Short: "prints the SEC public key of a secret",
	Args:  cobra.ExactArgs(1),
	RunE:  runPubkey,
}

func parseKey(arg string) (*secp256k1.PrivateKey, error) {
	secret, err := parseInt("secret", arg)
	if err != nil {
		return nil, err
	}
	key, err := secp256k1.NewPrivateKey(secret)
	if err != nil {
		return nil, errors.Wrap(err, "invalid secret")
	}
	return key, nil
}

func runPubkey(cmd *cobra.Command, args []string) error {
	key, err := parseKey(args[0])
	if err != nil {
		return err
	}
	sec := hex.EncodeToString(key.PubKey().Serialize(cliCtx.compressed))
	cliCtx.log.Debug("derived public key", zap.Bool("compressed", cliCtx.compressed))
	fmt.Fprintln(cmd.OutOrStdout(), sec)
	return nil
}

var addressCmd = &cobra.Command{
	Use:   "address <secret>",
	Short: "prints the pay-to-pubkey-hash address of a secret",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddress,
}

func runAddress(cmd *cobra.Command, args []string) error {
	key, err := parseKey(args[0])
	if err != nil {
		return err
	}
	addr := key.PubKey().Address(cliCtx.compressed, cliCtx.testnet)
	cliCtx.log.Info("derived address",
		zap.String("address", addr),
		zap.String("network", cliCtx.network()))
	fmt.Fprintln(cmd.OutOrStdout(), addr)
	return nil
}

var wifCmd = &cobra.Command{
	Use:   "wif <secret>",
	Short: "prints the Wallet Import Format encoding of a secret",
	Args:  cobra.ExactArgs(1),
	RunE:  runWIF,
}

func runWIF(cmd *cobra.Command, args []string) error {
	key, err := parseKey(args[0])
	if err != nil {
		return err
	}
	// The WIF carries the secret and is written to stdout only.
	cliCtx.log.Debug("encoding WIF", zap.String("network", cliCtx.network()))
	fmt.Fprintln(cmd.OutOrStdout(), key.WIF(cliCtx.compressed, cliCtx.testnet))
	return nil
}

var parseWIFCmd = &cobra.Command{
	Use:   "parsewif <wif>",
	Short: "prints the address and flags encoded in a WIF string",
	Args:  cobra.ExactArgs(1),
	RunE:  runParseWIF,
}

func runParseWIF(cmd *cobra.Command, args []string) error {
	key, compressed, testnet, err := secp256k1.ParseWIF(args[0])
	if err != nil {
		return errors.Wrap(err, "parsing WIF")
	}
	addr := key.PubKey().Address(compressed, testnet)
	cliCtx.log.Info("parsed WIF", zap.Stringer("key", key))
	fmt.Fprintf(cmd.OutOrStdout(), "address=%s compressed=%t testnet=%t\n", addr, compressed, testnet)
	return nil
}

var signCmd = &cobra.Command{
	Use:   "sign <secret> <message>",
	Short: "signs hash256(message) and prints the DER signature",
	Args:  cobra.ExactArgs(2),
	RunE:  runSign,
}

func runSign(cmd *cobra.Command, args []string) error {
	key, err := parseKey(args[0])
	if err != nil {
		return err
	}
	h := digest.DoubleHashH([]byte(args[1]))
	z := digest.BigInt(&h)
	sig := secp256k1.Sign(key, z)
	cliCtx.log.Debug("signed message",
		zap.String("z", fmt.Sprintf("%064x", z)),
		zap.Stringer("signature", sig))
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(sig.Serialize()))
	return nil
}

var verifyCmd = &cobra.Command{
	Use:   "verify <sec-pubkey-hex> <message> <der-signature-hex>",
	Short: "verifies a DER signature of hash256(message)",
	Args:  cobra.ExactArgs(3),
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	pubBytes, err := hex.DecodeString(args[0])
	if err != nil {
		return errors.Wrap(err, "decoding public key")
	}
	pub, err := secp256k1.ParsePubKey(pubBytes)
	if err != nil {
		return errors.Wrap(err, "parsing public key")
	}
	sigBytes, err := hex.DecodeString(args[2])
	if err != nil {
		return errors.Wrap(err, "decoding signature")
	}
	sig, err := secp256k1.ParseDERSignature(sigBytes)
	if err != nil {
		return errors.Wrap(err, "parsing signature")
	}

	ok := sig.VerifyHash(digest.Hash256([]byte(args[1])), pub)
	cliCtx.log.Info("verified signature", zap.Bool("valid", ok))
	if !ok {
		return errors.New("signature is invalid")
	}
	fmt.Fprintln(cmd.OutOrStdout(), "valid")
	return nil
}

var deriveCmd = &cobra.Command{
	Use:   "derive <seed-hex> <path>",
	Short: "derives a BIP32 extended key from a seed",
	Long: `
Derives the extended key at path, written as m/0h/1/2' style components, from
a hex seed and prints the extended private and public keys.
`,
	Args: cobra.ExactArgs(2),
	RunE: runDerive,
}

// parsePath parses a BIP32 path such as m/0h/1/2'.
func parsePath(s string) ([]uint32, error) {
	parts := strings.Split(s, "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, errors.Newf("path %q must start with m", s)
	}
	path := make([]uint32, 0, len(parts)-1)
	for _, p := range parts[1:] {
		hardened := strings.HasSuffix(p, "h") || strings.HasSuffix(p, "H") || strings.HasSuffix(p, "'")
		if hardened {
			p = p[:len(p)-1]
		}
		i, err := strconv.ParseUint(p, 10, 31)
		if err != nil {
			return nil, errors.Wrapf(err, "path component %q", p)
		}
		if hardened {
			i |= ecckd.HardenedBit
		}
		path = append(path, uint32(i))
	}
	return path, nil
}

func runDerive(cmd *cobra.Command, args []string) error {
	seed, err := hex.DecodeString(args[0])
	if err != nil {
		return errors.Wrap(err, "decoding seed")
	}
	path, err := parsePath(args[1])
	if err != nil {
		return err
	}
	master, err := ecckd.FromBitcoinSeed(seed)
	if err != nil {
		return errors.Wrap(err, "creating master key")
	}
	key, err := master.Derive(path)
	if err != nil {
		return err
	}
	pub, err := key.Public()
	if err != nil {
		return err
	}
	cliCtx.log.Info("derived extended key",
		zap.String("path", args[1]),
		zap.Uint8("depth", key.Depth),
		zap.String("xpub", pub.String()))
	fmt.Fprintln(cmd.OutOrStdout(), key.String())
	fmt.Fprintln(cmd.OutOrStdout(), pub.String())
	return nil
}

var ecmathCmds = []*cobra.Command{
	checkCmd,
	pubkeyCmd,
	addressCmd,
	wifCmd,
	parseWIFCmd,
	signCmd,
	verifyCmd,
	deriveCmd,
}
