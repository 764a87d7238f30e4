package system

import (
	"github.com/code-payments/nft-cpi/pkg/solana"
)

// ProgramKey is the address of the system program.
//
// https://explorer.solana.com/address/11111111111111111111111111111111
var ProgramKey = solana.MustPublicKeyFromBase58("11111111111111111111111111111111")
