package solana

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58/base58"
)

var (
	ErrIncorrectProgram     = errors.New("incorrect program")
	ErrIncorrectInstruction = errors.New("incorrect instruction")
)

// AccountMeta represents the account information required
// for building transactions.
type AccountMeta struct {
	PublicKey  ed25519.PublicKey
	IsSigner   bool
	IsWritable bool
	isPayer    bool
	isProgram  bool
}

// NewAccountMeta creates a new AccountMeta representing a writable
// account.
func NewAccountMeta(pub ed25519.PublicKey, isSigner bool) AccountMeta {
	return AccountMeta{
		PublicKey:  pub,
		IsSigner:   isSigner,
		IsWritable: true,
	}
}

// NewReadonlyAccountMeta creates a new AccountMeta representing a readonly
// account.
func NewReadonlyAccountMeta(pub ed25519.PublicKey, isSigner bool) AccountMeta {
	return AccountMeta{
		PublicKey:  pub,
		IsSigner:   isSigner,
		IsWritable: false,
	}
}

func (a AccountMeta) String() string {
	var flags []string
	if a.IsWritable {
		flags = append(flags, "writable")
	} else {
		flags = append(flags, "readonly")
	}
	if a.IsSigner {
		flags = append(flags, "signer")
	}
	return fmt.Sprintf("%s [%s]", base58.Encode(a.PublicKey), strings.Join(flags, ","))
}

// SortableAccountMeta is a sortable []AccountMeta based on the solana transaction
// account sorting rules.
//
// Reference: https://docs.solana.com/transaction#account-addresses-format
type SortableAccountMeta []AccountMeta

// Len is the number of elements in the collection.
func (s SortableAccountMeta) Len() int {
	return len(s)
}

// Less reports whether the element with
// index i should sort before the element with index j.
func (s SortableAccountMeta) Less(i int, j int) bool {
	if s[i].isPayer != s[j].isPayer {
		return s[i].isPayer
	}
	if s[i].isProgram != s[j].isProgram {
		return !s[i].isProgram
	}

	if s[i].IsSigner != s[j].IsSigner {
		return s[i].IsSigner
	}
	if s[i].IsWritable != s[j].IsWritable {
		return s[i].IsWritable
	}

	return bytes.Compare(s[i].PublicKey, s[j].PublicKey) < 0
}

// Swap swaps the elements with indexes i and j.
func (s SortableAccountMeta) Swap(i int, j int) {
	s[i], s[j] = s[j], s[i]
}

// Instruction represents a transaction instruction.
//
// Instructions built by NewInstruction own their account list, keys and data,
// so later changes to the caller's inputs are not observed.
type Instruction struct {
	Program  ed25519.PublicKey
	Accounts []AccountMeta
	Data     []byte
}

// NewInstruction creates a new instruction.
func NewInstruction(program ed25519.PublicKey, data []byte, accounts ...AccountMeta) Instruction {
	copied := make([]AccountMeta, len(accounts))
	for i, a := range accounts {
		copied[i] = a
		copied[i].PublicKey = cloneKey(a.PublicKey)
	}

	return Instruction{
		Program:  cloneKey(program),
		Data:     append([]byte{}, data...),
		Accounts: copied,
	}
}

func (i Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Program: %s\n", base58.Encode(i.Program)))
	sb.WriteString("Accounts:\n")
	for idx, a := range i.Accounts {
		sb.WriteString(fmt.Sprintf("  %d: %s\n", idx, a.String()))
	}
	sb.WriteString(fmt.Sprintf("Data: %s\n", base58.Encode(i.Data)))
	return sb.String()
}

// CompiledInstruction represents an instruction that has been compiled into a transaction.
type CompiledInstruction struct {
	ProgramIndex byte
	Accounts     []byte
	Data         []byte
}

func cloneKey(k ed25519.PublicKey) ed25519.PublicKey {
	if k == nil {
		return nil
	}
	return append(ed25519.PublicKey{}, k...)
}
