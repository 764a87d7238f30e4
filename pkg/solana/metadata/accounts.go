package metadata

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/nft-cpi/pkg/solana"
)

const (
	CreateMetadataAccountsV3AccountCount = 7
	CreateMasterEditionV3AccountCount    = 9
)

var createMetadataAccountsV3Roles = [CreateMetadataAccountsV3AccountCount]string{
	"metadata",
	"mint",
	"mint authority",
	"payer",
	"update authority",
	"system program",
	"rent sysvar",
}

var createMasterEditionV3Roles = [CreateMasterEditionV3AccountCount]string{
	"edition",
	"mint",
	"update authority",
	"mint authority",
	"payer",
	"metadata",
	"token program",
	"system program",
	"rent sysvar",
}

type CreateMetadataAccountsV3InstructionAccounts struct {
	Metadata        ed25519.PublicKey
	Mint            ed25519.PublicKey
	MintAuthority   ed25519.PublicKey
	Payer           ed25519.PublicKey
	UpdateAuthority ed25519.PublicKey
}

// AccountMetas returns the account list in the order the receiving program
// reads it:
//
//  0. [WRITE] Metadata account
//  1. [] Mint
//  2. [SIGNER] Mint authority
//  3. [WRITE, SIGNER] Payer
//  4. [SIGNER] Update authority
//  5. [] System program
//  6. [] Rent sysvar
func (a *CreateMetadataAccountsV3InstructionAccounts) AccountMetas(env Environment) ([]solana.AccountMeta, error) {
	metas := []solana.AccountMeta{
		{
			PublicKey:  a.Metadata,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  a.Mint,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  a.MintAuthority,
			IsWritable: false,
			IsSigner:   true,
		},
		{
			PublicKey:  a.Payer,
			IsWritable: true,
			IsSigner:   true,
		},
		{
			PublicKey:  a.UpdateAuthority,
			IsWritable: false,
			IsSigner:   true,
		},
		{
			PublicKey:  env.SystemProgram,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  env.RentSysVar,
			IsWritable: false,
			IsSigner:   false,
		},
	}

	if err := requireAccounts(metas, createMetadataAccountsV3Roles[:]); err != nil {
		return nil, err
	}
	return metas, nil
}

type CreateMasterEditionV3InstructionAccounts struct {
	Edition         ed25519.PublicKey
	Mint            ed25519.PublicKey
	UpdateAuthority ed25519.PublicKey
	MintAuthority   ed25519.PublicKey
	Payer           ed25519.PublicKey
	Metadata        ed25519.PublicKey
}

// AccountMetas returns the account list in the order the receiving program
// reads it:
//
//  0. [WRITE] Master edition account
//  1. [WRITE] Mint
//  2. [SIGNER] Update authority
//  3. [SIGNER] Mint authority
//  4. [WRITE, SIGNER] Payer
//  5. [] Metadata account
//  6. [] Token program
//  7. [] System program
//  8. [] Rent sysvar
func (a *CreateMasterEditionV3InstructionAccounts) AccountMetas(env Environment) ([]solana.AccountMeta, error) {
	metas := []solana.AccountMeta{
		{
			PublicKey:  a.Edition,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  a.Mint,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  a.UpdateAuthority,
			IsWritable: false,
			IsSigner:   true,
		},
		{
			PublicKey:  a.MintAuthority,
			IsWritable: false,
			IsSigner:   true,
		},
		{
			PublicKey:  a.Payer,
			IsWritable: true,
			IsSigner:   true,
		},
		{
			PublicKey:  a.Metadata,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  env.TokenProgram,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  env.SystemProgram,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  env.RentSysVar,
			IsWritable: false,
			IsSigner:   false,
		},
	}

	if err := requireAccounts(metas, createMasterEditionV3Roles[:]); err != nil {
		return nil, err
	}
	return metas, nil
}

func requireAccounts(metas []solana.AccountMeta, roles []string) error {
	for i, meta := range metas {
		if err := requireKey(meta.PublicKey, roles[i]); err != nil {
			return err
		}
	}
	return nil
}

func requireKey(key ed25519.PublicKey, role string) error {
	if len(key) == 0 {
		return errors.Wrap(ErrMissingAccount, role)
	}
	if len(key) != ed25519.PublicKeySize {
		return errors.Wrapf(ErrMissingAccount, "%s: invalid key length %d", role, len(key))
	}
	return nil
}
