// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/Qitmeer/bitcoinlib/log"
	"github.com/Qitmeer/bitcoinlib/params"
	"github.com/Qitmeer/bitcoinlib/qx"
)

const defaultLogLevel = "info"

// config holds the options shared by every command.
type config struct {
	TestNet      bool   `long:"testnet" description:"Use the test network"`
	Uncompressed bool   `short:"u" long:"uncompressed" description:"Use the uncompressed public key format"`
	DebugLevel   string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, crit}"`
	LogFile      string `long:"logfile" description:"Also write logs to this file, rotated"`
}

func (cfg *config) net() *params.Params {
	return qx.NetParams(cfg.TestNet)
}

// loadConfig pre-parses the global options so that logging is set up before
// a command runs. Command options and unknown flags are left to the full
// parse.
func loadConfig(args []string) (*config, error) {
	cfg := config{
		DebugLevel: defaultLogLevel,
	}

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.IgnoreUnknown)
	if _, err := preParser.ParseArgs(args); err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			return nil, err
		}
	}
	cfg = preCfg

	if err := log.SetLevel(cfg.DebugLevel); err != nil {
		return nil, errors.Wrapf(err, "invalid debuglevel %q", cfg.DebugLevel)
	}
	if cfg.LogFile != "" {
		if err := log.InitLogRotator(cfg.LogFile); err != nil {
			return nil, fmt.Errorf("loadConfig: %v", err)
		}
	}
	return &cfg, nil
}
