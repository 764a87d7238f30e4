package computebudget

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/code-payments/nft-cpi/pkg/solana"
)

// ProgramKey is the address of the compute budget program.
var ProgramKey = solana.MustPublicKeyFromBase58("ComputeBudget111111111111111111111111111111")

type InstructionType uint8

const (
	InstructionTypeRequestUnits InstructionType = iota
	InstructionTypeRequestHeapFrame
	InstructionTypeSetComputeUnitLimit
	InstructionTypeSetComputeUnitPrice
)

// SetComputeUnitLimit caps the compute units the transaction may consume.
func SetComputeUnitLimit(computeUnitLimit uint32) solana.Instruction {
	data := make([]byte, 1+4)
	data[0] = byte(InstructionTypeSetComputeUnitLimit)
	binary.LittleEndian.PutUint32(data[1:], computeUnitLimit)

	return solana.NewInstruction(ProgramKey, data)
}

// SetComputeUnitPrice sets the priority fee, in micro-lamports per compute
// unit.
func SetComputeUnitPrice(microLamports uint64) solana.Instruction {
	data := make([]byte, 1+8)
	data[0] = byte(InstructionTypeSetComputeUnitPrice)
	binary.LittleEndian.PutUint64(data[1:], microLamports)

	return solana.NewInstruction(ProgramKey, data)
}

func ParseSetComputeUnitLimitIxnData(data []byte) (uint32, error) {
	if len(data) != 1+4 {
		return 0, errors.New("invalid length")
	}
	if InstructionType(data[0]) != InstructionTypeSetComputeUnitLimit {
		return 0, solana.ErrIncorrectInstruction
	}

	return binary.LittleEndian.Uint32(data[1:]), nil
}

func ParseSetComputeUnitPriceIxnData(data []byte) (uint64, error) {
	if len(data) != 1+8 {
		return 0, errors.New("invalid length")
	}
	if InstructionType(data[0]) != InstructionTypeSetComputeUnitPrice {
		return 0, solana.ErrIncorrectInstruction
	}

	return binary.LittleEndian.Uint64(data[1:]), nil
}

// DecompileInstructionType returns the compute budget instruction type at index.
func DecompileInstructionType(m solana.Message, index int) (InstructionType, error) {
	if index < 0 || index >= len(m.Instructions) {
		return 0, errors.Errorf("instruction doesn't exist at %d", index)
	}

	i := m.Instructions[index]

	if !bytes.Equal(m.Accounts[i.ProgramIndex], ProgramKey) {
		return 0, solana.ErrIncorrectProgram
	}
	if len(i.Data) == 0 {
		return 0, errors.New("missing instruction type")
	}

	return InstructionType(i.Data[0]), nil
}
