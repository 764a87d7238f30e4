package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"math"
	"os"
	"strings"

	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/code-payments/nft-cpi/pkg/config/file"
	"github.com/code-payments/nft-cpi/pkg/nft"
	"github.com/code-payments/nft-cpi/pkg/solana"
)

// cliConfig is the mint description read from the -config file. Builder
// settings (metadata_program, legacy_length_wrap, schema_version) are read
// from the same file by nft.WithFileConfigs.
type cliConfig struct {
	LogLevel string `mapstructure:"log_level"`

	Payer string `mapstructure:"payer"`
	Mint  string `mapstructure:"mint"`

	Name                 string `mapstructure:"name"`
	Symbol               string `mapstructure:"symbol"`
	Uri                  string `mapstructure:"uri"`
	SellerFeeBasisPoints int64  `mapstructure:"seller_fee_basis_points"`
	MaxSupply            int64  `mapstructure:"max_supply"`
	UnlimitedSupply      bool   `mapstructure:"unlimited_supply"`
}

var defaultConfig = cliConfig{
	LogLevel:             "info",
	SellerFeeBasisPoints: nft.DefaultSellerFeeBasisPoints,
}

type accountOutput struct {
	PublicKey string `yaml:"public_key" json:"public_key"`
	Writable  bool   `yaml:"writable" json:"writable"`
	Signer    bool   `yaml:"signer" json:"signer"`
}

type instructionOutput struct {
	Program  string          `yaml:"program" json:"program"`
	Accounts []accountOutput `yaml:"accounts" json:"accounts"`
	Data     string          `yaml:"data" json:"data"`
}

type output struct {
	Metadata      string              `yaml:"metadata" json:"metadata"`
	MasterEdition string              `yaml:"master_edition" json:"master_edition"`
	Instructions  []instructionOutput `yaml:"instructions" json:"instructions"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logrus.StandardLogger().WithField("type", "nft-cpi").WithError(err).Error("failed to build mint instructions")
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("nft-cpi", flag.ContinueOnError)
	configPath := flags.String("config", "config.yaml", "configuration file path")
	format := flags.String("format", "yaml", "output format (yaml or json)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *format != "yaml" && *format != "json" {
		return errors.Errorf("unsupported output format %q", *format)
	}

	source, err := file.Load(*configPath)
	if err != nil {
		return err
	}

	config := defaultConfig
	if err := source.Unmarshal(&config); err != nil {
		return errors.Wrap(err, "failed to unmarshal config")
	}

	configureLogger(config)

	mintArgs, err := toMintArgs(config)
	if err != nil {
		return err
	}

	builder := nft.NewBuilder(nft.WithFileConfigs(source))
	instructions, err := builder.BuildMintInstructions(context.Background(), mintArgs)
	if err != nil {
		return err
	}

	return write(stdout, *format, toOutput(instructions))
}

func toMintArgs(config cliConfig) (*nft.MintArgs, error) {
	payer, err := solana.PublicKeyFromBase58(config.Payer)
	if err != nil {
		return nil, errors.Wrap(err, "invalid payer")
	}

	mint, err := solana.PublicKeyFromBase58(config.Mint)
	if err != nil {
		return nil, errors.Wrap(err, "invalid mint")
	}

	// cliConfig integers are wider than the instruction fields they feed.
	if config.SellerFeeBasisPoints < 0 || config.SellerFeeBasisPoints > math.MaxUint8 {
		return nil, errors.Errorf("seller_fee_basis_points must be between 0 and %d, got %d", math.MaxUint8, config.SellerFeeBasisPoints)
	}

	args := &nft.MintArgs{
		Payer:                payer,
		Mint:                 mint,
		Name:                 config.Name,
		Symbol:               config.Symbol,
		Uri:                  config.Uri,
		SellerFeeBasisPoints: uint8(config.SellerFeeBasisPoints),
	}
	if !config.UnlimitedSupply {
		if config.MaxSupply < 0 {
			return nil, errors.Errorf("max_supply must not be negative, got %d", config.MaxSupply)
		}
		maxSupply := uint64(config.MaxSupply)
		args.MaxSupply = &maxSupply
	}
	return args, nil
}

// toOutput relies on BuildMintInstructions ordering: the metadata account is
// the first account of the first instruction, the edition the first account
// of the second.
func toOutput(instructions []solana.Instruction) output {
	var out output
	for _, ix := range instructions {
		rendered := instructionOutput{
			Program: base58.Encode(ix.Program),
			Data:    base58.Encode(ix.Data),
		}
		for _, a := range ix.Accounts {
			rendered.Accounts = append(rendered.Accounts, accountOutput{
				PublicKey: base58.Encode(a.PublicKey),
				Writable:  a.IsWritable,
				Signer:    a.IsSigner,
			})
		}
		out.Instructions = append(out.Instructions, rendered)
	}

	if len(instructions) == 2 {
		out.Metadata = base58.Encode(instructions[0].Accounts[0].PublicKey)
		out.MasterEdition = base58.Encode(instructions[1].Accounts[0].PublicKey)
	}
	return out
}

func write(w io.Writer, format string, out output) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	default:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(out); err != nil {
			return err
		}
		return encoder.Close()
	}
}

func configureLogger(config cliConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(strings.ToLower(config.LogLevel))
	if err != nil {
		logrus.StandardLogger().WithField("log_level", config.LogLevel).Warn("unknown log level, ignoring")
	} else {
		logrus.SetLevel(level)
	}

	// stdout carries the rendered instructions
	logrus.SetOutput(os.Stderr)
}
