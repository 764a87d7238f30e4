package memo

import (
	"bytes"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/code-payments/nft-cpi/pkg/solana"
)

// ProgramKey is the address of the memo program that should be used.
var ProgramKey = solana.MustPublicKeyFromBase58("Memo1UhkJRfHyvLMcVucJwxXeuD728EqVDDwQDxFMNo")

// ErrInvalidMemo is returned for memos the program would reject.
var ErrInvalidMemo = errors.New("memo must be valid utf-8")

// Instruction returns a memo instruction with no signers.
//
// Reference: https://github.com/solana-labs/solana-program-library/blob/master/memo/program/src/entrypoint.rs
func Instruction(data string) (solana.Instruction, error) {
	if !utf8.ValidString(data) {
		return solana.Instruction{}, ErrInvalidMemo
	}

	return solana.NewInstruction(
		ProgramKey,
		[]byte(data),
	), nil
}

type DecompiledMemo struct {
	Data []byte
}

func DecompileMemo(m solana.Message, index int) (*DecompiledMemo, error) {
	if index < 0 || index >= len(m.Instructions) {
		return nil, errors.Errorf("instruction doesn't exist at %d", index)
	}

	i := m.Instructions[index]

	if !bytes.Equal(m.Accounts[i.ProgramIndex], ProgramKey) {
		return nil, solana.ErrIncorrectProgram
	}

	return &DecompiledMemo{Data: i.Data}, nil
}
