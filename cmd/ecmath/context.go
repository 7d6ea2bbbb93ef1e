// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cliContext holds the values of the persistent flags.
type cliContext struct {
	testnet    bool
	compressed bool
	verbose    bool

	log *zap.Logger
}

var cliCtx = cliContext{compressed: true}

// resetContext restores the flag defaults.  Tests call it between runs.
func resetContext() {
	cliCtx = cliContext{compressed: true}
}

// newLogger builds the console logger.  Only public values are ever logged.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// network returns the name of the selected network for log fields.
func (c *cliContext) network() string {
	if c.testnet {
		return "testnet"
	}
	return "mainnet"
}

// parseInt parses a decimal or 0x-prefixed hex integer argument.
func parseInt(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, errors.Newf("invalid %s: not a decimal or 0x-prefixed hex integer", errors.Safe(name))
	}
	return v, nil
}
