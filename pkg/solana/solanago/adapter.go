// Package solanago converts instructions to and from github.com/gagliardetto/solana-go
// so they can be submitted with that library's RPC and transaction tooling.
package solanago

import (
	"crypto/ed25519"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/code-payments/nft-cpi/pkg/solana"
)

// ToGenericInstruction returns ix as a solana-go instruction. Account order,
// flags and data are preserved. Keys that are not 32 bytes are rejected.
func ToGenericInstruction(ix solana.Instruction) (*solanago.GenericInstruction, error) {
	program, err := toPublicKey(ix.Program)
	if err != nil {
		return nil, errors.Wrap(err, "invalid program")
	}

	accounts := make(solanago.AccountMetaSlice, len(ix.Accounts))
	for i, a := range ix.Accounts {
		key, err := toPublicKey(a.PublicKey)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid account at index %d", i)
		}
		accounts[i] = solanago.NewAccountMeta(key, a.IsWritable, a.IsSigner)
	}

	return solanago.NewInstruction(program, accounts, append([]byte{}, ix.Data...)), nil
}

// FromInstruction converts any solana-go instruction back into a
// solana.Instruction.
func FromInstruction(ix solanago.Instruction) (solana.Instruction, error) {
	data, err := ix.Data()
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode instruction data")
	}

	program := ix.ProgramID()

	var accounts []solana.AccountMeta
	for i, a := range ix.Accounts() {
		if a == nil {
			return solana.Instruction{}, errors.Errorf("nil account at index %d", i)
		}

		if a.IsWritable {
			accounts = append(accounts, solana.NewAccountMeta(ed25519.PublicKey(a.PublicKey[:]), a.IsSigner))
		} else {
			accounts = append(accounts, solana.NewReadonlyAccountMeta(ed25519.PublicKey(a.PublicKey[:]), a.IsSigner))
		}
	}

	return solana.NewInstruction(ed25519.PublicKey(program[:]), data, accounts...), nil
}

func toPublicKey(key ed25519.PublicKey) (solanago.PublicKey, error) {
	if len(key) != solanago.PublicKeyLength {
		return solanago.PublicKey{}, errors.Errorf("invalid key length %d", len(key))
	}
	return solanago.PublicKeyFromBytes(key), nil
}
