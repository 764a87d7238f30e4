package metadata

import (
	"crypto/ed25519"

	"github.com/code-payments/nft-cpi/pkg/solana/system"
	"github.com/code-payments/nft-cpi/pkg/solana/token"
)

// Environment holds the auxiliary accounts the receiving program expects at
// fixed positions in its account lists.
type Environment struct {
	SystemProgram ed25519.PublicKey
	RentSysVar    ed25519.PublicKey
	TokenProgram  ed25519.PublicKey
}

// DefaultEnvironment returns the well known mainnet addresses.
func DefaultEnvironment() Environment {
	return Environment{
		SystemProgram: system.ProgramKey,
		RentSysVar:    system.RentSysVar,
		TokenProgram:  token.ProgramKey,
	}
}

// Options configures instruction building and decoding.
type Options struct {
	Program     ed25519.PublicKey
	Schema      Schema
	Environment Environment

	// LegacyLengthWrap writes oversized name, symbol and uri fields with a
	// wrapped (len % 256) length byte instead of failing. The receiving
	// program then reads a shorter string than was written.
	LegacyLengthWrap bool
}

type Option func(*Options)

// WithProgram targets a Token Metadata deployment other than ProgramKey.
func WithProgram(program ed25519.PublicKey) Option {
	return func(o *Options) {
		o.Program = program
	}
}

func WithSchema(schema Schema) Option {
	return func(o *Options) {
		o.Schema = schema
	}
}

func WithEnvironment(env Environment) Option {
	return func(o *Options) {
		o.Environment = env
	}
}

// WithLegacyLengthWrap enables Options.LegacyLengthWrap.
func WithLegacyLengthWrap(enabled bool) Option {
	return func(o *Options) {
		o.LegacyLengthWrap = enabled
	}
}

func applyOptions(opts []Option) Options {
	o := Options{
		Program:     ProgramKey,
		Schema:      DefaultSchema(),
		Environment: DefaultEnvironment(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
