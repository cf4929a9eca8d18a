// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// btcx converts keys, hashes and encodings of the Bitcoin secp256k1 toolkit
// from the command line. Inputs and outputs are base16 unless a command says
// otherwise.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/Qitmeer/bitcoinlib/log"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "btcx error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the command named in args and writes its result to out.
func run(args []string, out io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	defer log.Close()

	parser, err := newParser(cfg, out)
	if err != nil {
		return err
	}
	_, err = parser.ParseArgs(args)
	return err
}
