// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/Qitmeer/bitcoinlib/qx"
)

// env is what every command shares: the global options and the output.
type env struct {
	cfg *config
	out io.Writer
}

// print writes the result of the named command, or wraps its error.
func (e *env) print(name string, s string, err error) error {
	if err != nil {
		return errors.Wrap(err, name)
	}
	_, err = fmt.Fprintln(e.out, s)
	return err
}

type hexArg struct {
	Hex string `positional-arg-name:"hex" description:"base16 data"`
}

type base58EncodeCmd struct {
	env  *env
	Args hexArg `positional-args:"yes" required:"yes"`
}

func (c *base58EncodeCmd) Execute(args []string) error {
	s, err := qx.Base58Encode(c.Args.Hex)
	return c.env.print("base58-encode", s, err)
}

type base58DecodeCmd struct {
	env  *env
	Args struct {
		Base58 string `positional-arg-name:"base58"`
	} `positional-args:"yes" required:"yes"`
}

func (c *base58DecodeCmd) Execute(args []string) error {
	s, err := qx.Base58Decode(c.Args.Base58)
	return c.env.print("base58-decode", s, err)
}

type base58CheckEncodeCmd struct {
	env       *env
	Version   qx.Base58checkVersionFlag `short:"v" long:"version" description:"mainnet, testnet, mainnet-p2sh, testnet-p2sh or base16 version bytes. The network's pay-to-pubkey-hash byte by default"`
	Hasher    string                    `short:"a" long:"hasher" description:"checksum hasher {sha256, dsha256, ripemd160}. Bitcoin checksum by default"`
	CksumSize int                       `short:"c" long:"cksumsize" default:"4" description:"checksum size in bytes, with a hasher"`
	Args      hexArg                    `positional-args:"yes" required:"yes"`
}

func (c *base58CheckEncodeCmd) Execute(args []string) error {
	ver := c.Version.Ver
	if len(ver) == 0 {
		ver = []byte{c.env.cfg.net().PubKeyHashAddrID}
	}
	s, err := qx.Base58CheckEncode(ver, c.Hasher, c.CksumSize, c.Args.Hex)
	return c.env.print("base58check-encode", s, err)
}

type base58CheckDecodeCmd struct {
	env         *env
	Hasher      string `short:"a" long:"hasher" description:"checksum hasher {sha256, dsha256, ripemd160}. Bitcoin checksum by default"`
	VersionSize int    `long:"versionsize" default:"1" description:"version size in bytes, with a hasher"`
	CksumSize   int    `short:"c" long:"cksumsize" default:"4" description:"checksum size in bytes, with a hasher"`
	Details     bool   `short:"s" long:"details" description:"show version, payload and checksum"`
	Args        struct {
		Base58 string `positional-arg-name:"base58check"`
	} `positional-args:"yes" required:"yes"`
}

func (c *base58CheckDecodeCmd) Execute(args []string) error {
	s, err := qx.Base58CheckDecode(c.Hasher, c.VersionSize, c.CksumSize, c.Args.Base58, c.Details)
	return c.env.print("base58check-decode", s, err)
}

type hashCmd struct {
	env  *env
	name string
	hash func(string) (string, error)
	Args hexArg `positional-args:"yes" required:"yes"`
}

func (c *hashCmd) Execute(args []string) error {
	s, err := c.hash(c.Args.Hex)
	return c.env.print(c.name, s, err)
}

type entropyCmd struct {
	env  *env
	Size uint `short:"s" long:"size" default:"32" description:"entropy size in bytes {16-256}"`
}

func (c *entropyCmd) Execute(args []string) error {
	s, err := qx.NewEntropy(c.Size)
	return c.env.print("entropy", s, err)
}

type ecNewCmd struct {
	env  *env
	Args struct {
		Entropy string `positional-arg-name:"entropy" description:"at least 32 bytes of base16 entropy, random if omitted"`
	} `positional-args:"yes"`
}

func (c *ecNewCmd) Execute(args []string) error {
	s, err := qx.EcNew(c.Args.Entropy)
	return c.env.print("ec-new", s, err)
}

type privateKeyArg struct {
	PrivateKey string `positional-arg-name:"privatekey" description:"base16 EC private key"`
}

type ecToPublicCmd struct {
	env  *env
	Args privateKeyArg `positional-args:"yes" required:"yes"`
}

func (c *ecToPublicCmd) Execute(args []string) error {
	s, err := qx.EcPrivateKeyToEcPublicKey(c.env.cfg.Uncompressed, c.Args.PrivateKey)
	return c.env.print("ec-to-public", s, err)
}

type ecToWifCmd struct {
	env  *env
	Args privateKeyArg `positional-args:"yes" required:"yes"`
}

func (c *ecToWifCmd) Execute(args []string) error {
	s, err := qx.EcPrivateKeyToWif(c.env.cfg.net(), c.env.cfg.Uncompressed, c.Args.PrivateKey)
	return c.env.print("ec-to-wif", s, err)
}

type wifArg struct {
	WIF string `positional-arg-name:"wif"`
}

type wifToEcCmd struct {
	env  *env
	Args wifArg `positional-args:"yes" required:"yes"`
}

func (c *wifToEcCmd) Execute(args []string) error {
	s, err := qx.WifToEcPrivateKey(c.Args.WIF)
	return c.env.print("wif-to-ec", s, err)
}

type wifToPublicCmd struct {
	env  *env
	Args wifArg `positional-args:"yes" required:"yes"`
}

func (c *wifToPublicCmd) Execute(args []string) error {
	s, err := qx.WifToEcPublicKey(c.Args.WIF)
	return c.env.print("wif-to-public", s, err)
}

type ecToAddrCmd struct {
	env  *env
	Args struct {
		PubKey string `positional-arg-name:"pubkey" description:"base16 SEC public key"`
	} `positional-args:"yes" required:"yes"`
}

func (c *ecToAddrCmd) Execute(args []string) error {
	s, err := qx.EcPubKeyToAddress(c.env.cfg.net(), c.Args.PubKey)
	return c.env.print("ec-to-addr", s, err)
}

type addrDecodeCmd struct {
	env  *env
	Args struct {
		Address string `positional-arg-name:"address"`
	} `positional-args:"yes" required:"yes"`
}

func (c *addrDecodeCmd) Execute(args []string) error {
	s, err := qx.DecodeAddress(c.Args.Address)
	return c.env.print("addr-decode", s, err)
}

type signCmd struct {
	env     *env
	Details bool `short:"s" long:"details" description:"show hash, R, S and the signer"`
	Args    struct {
		WIF     string `positional-arg-name:"wif"`
		Message string `positional-arg-name:"message"`
	} `positional-args:"yes" required:"yes"`
}

func (c *signCmd) Execute(args []string) error {
	s, err := qx.MsgSign(c.Args.WIF, c.Args.Message, c.Details)
	return c.env.print("sign", s, err)
}

type verifyCmd struct {
	env  *env
	Args struct {
		PubKey    string `positional-arg-name:"pubkey"`
		Signature string `positional-arg-name:"signature" description:"base16 DER signature"`
		Message   string `positional-arg-name:"message"`
	} `positional-args:"yes" required:"yes"`
}

func (c *verifyCmd) Execute(args []string) error {
	ok, err := qx.VerifyMsgSignature(c.Args.PubKey, c.Args.Signature, c.Args.Message)
	return c.env.print("verify", fmt.Sprint(ok), err)
}

type derDecodeCmd struct {
	env  *env
	Args struct {
		Signature string `positional-arg-name:"signature" description:"base16 DER signature, optionally followed by a sighash type byte"`
	} `positional-args:"yes" required:"yes"`
}

func (c *derDecodeCmd) Execute(args []string) error {
	s, err := qx.DecodeSignature(c.Args.Signature)
	return c.env.print("der-decode", s, err)
}

// newParser returns a parser over cfg with every command registered.
func newParser(cfg *config, out io.Writer) (*flags.Parser, error) {
	e := &env{cfg: cfg, out: out}
	commands := []struct {
		name, short string
		data        interface{}
	}{
		{"base58-encode", "encode a base16 string to a base58 string", &base58EncodeCmd{env: e}},
		{"base58-decode", "decode a base58 string to a base16 string", &base58DecodeCmd{env: e}},
		{"base58check-encode", "encode a base58check string", &base58CheckEncodeCmd{env: e}},
		{"base58check-decode", "decode a base58check string", &base58CheckDecodeCmd{env: e}},
		{"sha256", "calculate SHA256 hash of a base16 data", &hashCmd{env: e, name: "sha256", hash: qx.Sha256}},
		{"dsha256", "calculate sha256(sha256(data))", &hashCmd{env: e, name: "dsha256", hash: qx.DoubleSha256}},
		{"ripemd160", "calculate ripemd160 hash of a base16 data", &hashCmd{env: e, name: "ripemd160", hash: qx.Ripemd160}},
		{"hash160", "calculate ripemd160(sha256(data))", &hashCmd{env: e, name: "hash160", hash: qx.Hash160}},
		{"entropy", "generate a cryptographically secure pseudorandom entropy", &entropyCmd{env: e}},
		{"ec-new", "create a new EC private key", &ecNewCmd{env: e}},
		{"ec-to-public", "derive the EC public key from an EC private key", &ecToPublicCmd{env: e}},
		{"ec-to-wif", "convert an EC private key to a WIF", &ecToWifCmd{env: e}},
		{"wif-to-ec", "convert a WIF private key to an EC private key", &wifToEcCmd{env: e}},
		{"wif-to-public", "derive the EC public key from a WIF private key", &wifToPublicCmd{env: e}},
		{"ec-to-addr", "convert an EC public key to a payment address", &ecToAddrCmd{env: e}},
		{"addr-decode", "decode a payment address", &addrDecodeCmd{env: e}},
		{"sign", "sign the sha256 of a message with a WIF private key", &signCmd{env: e}},
		{"verify", "validate a DER signature of a message", &verifyCmd{env: e}},
		{"der-decode", "decode a DER signature", &derDecodeCmd{env: e}},
	}

	parser := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash)
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.short, c.data); err != nil {
			return nil, err
		}
	}
	return parser, nil
}
