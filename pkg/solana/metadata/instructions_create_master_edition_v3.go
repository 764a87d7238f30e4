package metadata

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/code-payments/nft-cpi/pkg/solana"
	"github.com/code-payments/nft-cpi/pkg/solana/binary"
)

// CreateMasterEditionV3InstructionArgs
//
//	max_supply: u8 presence, followed by u64 when present
//
// A nil MaxSupply allows unlimited printed editions.
type CreateMasterEditionV3InstructionArgs struct {
	MaxSupply *uint64
}

func createMasterEditionV3Layout() []field[CreateMasterEditionV3InstructionArgs] {
	type args = CreateMasterEditionV3InstructionArgs

	return []field[args]{
		optionalUint64Field("max supply", func(v *args) *uint64 { return v.MaxSupply }),
	}
}

// EncodeCreateMasterEditionV3InstructionArgs returns the instruction data,
// discriminant included.
func EncodeCreateMasterEditionV3InstructionArgs(args *CreateMasterEditionV3InstructionArgs, opts ...Option) ([]byte, error) {
	o := applyOptions(opts)
	return encode(o.Schema.CreateMasterEdition, createMasterEditionV3Layout(), args)
}

// NewCreateMasterEditionV3Instruction builds the instruction that turns a
// mint with metadata into a master edition.
func NewCreateMasterEditionV3Instruction(
	accounts *CreateMasterEditionV3InstructionAccounts,
	args *CreateMasterEditionV3InstructionArgs,
	opts ...Option,
) (solana.Instruction, error) {
	o := applyOptions(opts)

	if err := requireKey(o.Program, "metadata program"); err != nil {
		return solana.Instruction{}, err
	}

	metas, err := accounts.AccountMetas(o.Environment)
	if err != nil {
		return solana.Instruction{}, err
	}

	data, err := EncodeCreateMasterEditionV3InstructionArgs(args, opts...)
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(o.Program, data, metas...), nil
}

func DecodeCreateMasterEditionV3InstructionArgs(data []byte, opts ...Option) (*CreateMasterEditionV3InstructionArgs, error) {
	o := applyOptions(opts)

	if len(data) < 1 {
		return nil, errors.Wrap(ErrInvalidInstructionData, "empty data")
	}

	var offset int
	var discriminant InstructionType
	getInstructionType(data, &discriminant, &offset)
	if discriminant != o.Schema.CreateMasterEdition {
		return nil, solana.ErrIncorrectInstruction
	}

	var args CreateMasterEditionV3InstructionArgs
	if err := binary.GetOptionalUint64(data[offset:], &args.MaxSupply, &offset); err != nil {
		return nil, errors.Wrap(err, "max supply")
	}

	if offset != len(data) {
		return nil, errors.Wrapf(ErrInvalidInstructionData, "%d trailing bytes", len(data)-offset)
	}
	return &args, nil
}

type DecompiledCreateMasterEditionV3 struct {
	Accounts CreateMasterEditionV3InstructionAccounts
	Args     CreateMasterEditionV3InstructionArgs
}

func DecompileCreateMasterEditionV3(m solana.Message, index int, opts ...Option) (*DecompiledCreateMasterEditionV3, error) {
	o := applyOptions(opts)

	if index < 0 || index >= len(m.Instructions) {
		return nil, errors.Errorf("instruction doesn't exist at %d", index)
	}

	i := m.Instructions[index]

	if !bytes.Equal(m.Accounts[i.ProgramIndex], o.Program) {
		return nil, solana.ErrIncorrectProgram
	}
	if len(i.Data) < 1 || InstructionType(i.Data[0]) != o.Schema.CreateMasterEdition {
		return nil, solana.ErrIncorrectInstruction
	}
	if len(i.Accounts) != CreateMasterEditionV3AccountCount {
		return nil, errors.Errorf("invalid number of accounts: %d (expected %d)", len(i.Accounts), CreateMasterEditionV3AccountCount)
	}

	if !bytes.Equal(m.Accounts[i.Accounts[6]], o.Environment.TokenProgram) {
		return nil, errors.Errorf("token program key mismatch")
	}
	if !bytes.Equal(m.Accounts[i.Accounts[7]], o.Environment.SystemProgram) {
		return nil, errors.Errorf("system program key mismatch")
	}
	if !bytes.Equal(m.Accounts[i.Accounts[8]], o.Environment.RentSysVar) {
		return nil, errors.Errorf("rent sysvar mismatch")
	}

	args, err := DecodeCreateMasterEditionV3InstructionArgs(i.Data, opts...)
	if err != nil {
		return nil, err
	}

	return &DecompiledCreateMasterEditionV3{
		Accounts: CreateMasterEditionV3InstructionAccounts{
			Edition:         m.Accounts[i.Accounts[0]],
			Mint:            m.Accounts[i.Accounts[1]],
			UpdateAuthority: m.Accounts[i.Accounts[2]],
			MintAuthority:   m.Accounts[i.Accounts[3]],
			Payer:           m.Accounts[i.Accounts[4]],
			Metadata:        m.Accounts[i.Accounts[5]],
		},
		Args: *args,
	}, nil
}
