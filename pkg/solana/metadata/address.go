package metadata

import (
	"crypto/ed25519"

	"github.com/code-payments/nft-cpi/pkg/solana"
)

var (
	MetadataPrefix = []byte("metadata")
	EditionPrefix  = []byte("edition")
)

type GetMetadataAddressArgs struct {
	Mint ed25519.PublicKey
}

// GetMetadataAddress derives the metadata account of a mint.
func GetMetadataAddress(args *GetMetadataAddressArgs, opts ...Option) (ed25519.PublicKey, uint8, error) {
	o := applyOptions(opts)

	if err := requireKey(args.Mint, "mint"); err != nil {
		return nil, 0, err
	}

	return solana.FindProgramAddressAndBump(
		o.Program,
		MetadataPrefix,
		o.Program,
		args.Mint,
	)
}

type GetMasterEditionAddressArgs struct {
	Mint ed25519.PublicKey
}

// GetMasterEditionAddress derives the master edition account of a mint.
func GetMasterEditionAddress(args *GetMasterEditionAddressArgs, opts ...Option) (ed25519.PublicKey, uint8, error) {
	o := applyOptions(opts)

	if err := requireKey(args.Mint, "mint"); err != nil {
		return nil, 0, err
	}

	return solana.FindProgramAddressAndBump(
		o.Program,
		MetadataPrefix,
		o.Program,
		args.Mint,
		EditionPrefix,
	)
}
