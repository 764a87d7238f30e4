package metadata

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/code-payments/nft-cpi/pkg/solana"
	"github.com/code-payments/nft-cpi/pkg/solana/binary"
)

// CreateMetadataAccountsV3InstructionArgs
//
//	name: [u8 len][bytes]
//	symbol: [u8 len][bytes]
//	uri: [u8 len][bytes]
//	seller_fee_basis_points: u8
//	creators: [u8 count]{address: [u8; 32], verified: u8, share: u8}
//	update_authority_is_signer: u8
//	is_mutable: u8
//	collection: u8 (always 0)
//	uses: u8 (always 0)
//	collection_details: u8 (always 0)
type CreateMetadataAccountsV3InstructionArgs struct {
	Name                 string
	Symbol               string
	Uri                  string
	SellerFeeBasisPoints uint8
	Creators             []Creator

	UpdateAuthorityIsSigner bool
	IsMutable               bool
}

func createMetadataAccountsV3Layout(legacyWrap bool) []field[CreateMetadataAccountsV3InstructionArgs] {
	type args = CreateMetadataAccountsV3InstructionArgs

	return []field[args]{
		shortStringField("name", func(v *args) string { return v.Name }, legacyWrap),
		shortStringField("symbol", func(v *args) string { return v.Symbol }, legacyWrap),
		shortStringField("uri", func(v *args) string { return v.Uri }, legacyWrap),
		uint8Field("seller fee basis points", func(v *args) uint8 { return v.SellerFeeBasisPoints }),
		creatorsField("creators", func(v *args) []Creator { return v.Creators }),
		boolField("update authority is signer", func(v *args) bool { return v.UpdateAuthorityIsSigner }),
		boolField("is mutable", func(v *args) bool { return v.IsMutable }),
		absentField[args]("collection"),
		absentField[args]("uses"),
		absentField[args]("collection details"),
	}
}

// EncodeCreateMetadataAccountsV3InstructionArgs returns the instruction data,
// discriminant included.
func EncodeCreateMetadataAccountsV3InstructionArgs(args *CreateMetadataAccountsV3InstructionArgs, opts ...Option) ([]byte, error) {
	o := applyOptions(opts)

	if err := validateCreators(args.Creators); err != nil {
		return nil, err
	}

	return encode(
		o.Schema.CreateMetadataAccounts,
		createMetadataAccountsV3Layout(o.LegacyLengthWrap),
		args,
	)
}

// NewCreateMetadataAccountsV3Instruction builds the instruction that creates
// the metadata account of a mint.
func NewCreateMetadataAccountsV3Instruction(
	accounts *CreateMetadataAccountsV3InstructionAccounts,
	args *CreateMetadataAccountsV3InstructionArgs,
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

	data, err := EncodeCreateMetadataAccountsV3InstructionArgs(args, opts...)
	if err != nil {
		return solana.Instruction{}, err
	}

	return solana.NewInstruction(o.Program, data, metas...), nil
}

// DecodeCreateMetadataAccountsV3InstructionArgs parses instruction data
// produced by EncodeCreateMetadataAccountsV3InstructionArgs. Legacy wrapped
// payloads decode to what the receiving program would read, which is not
// necessarily what was encoded.
func DecodeCreateMetadataAccountsV3InstructionArgs(data []byte, opts ...Option) (*CreateMetadataAccountsV3InstructionArgs, error) {
	o := applyOptions(opts)

	if len(data) < 1 {
		return nil, errors.Wrap(ErrInvalidInstructionData, "empty data")
	}

	var offset int
	var discriminant InstructionType
	getInstructionType(data, &discriminant, &offset)
	if discriminant != o.Schema.CreateMetadataAccounts {
		return nil, solana.ErrIncorrectInstruction
	}

	var args CreateMetadataAccountsV3InstructionArgs
	var err error

	if args.Name, err = getShortString(data, &offset); err != nil {
		return nil, errors.Wrap(err, "name")
	}
	if args.Symbol, err = getShortString(data, &offset); err != nil {
		return nil, errors.Wrap(err, "symbol")
	}
	if args.Uri, err = getShortString(data, &offset); err != nil {
		return nil, errors.Wrap(err, "uri")
	}
	if err = binary.GetUint8(data[offset:], &args.SellerFeeBasisPoints, &offset); err != nil {
		return nil, errors.Wrap(err, "seller fee basis points")
	}

	var count uint8
	if err = binary.GetUint8(data[offset:], &count, &offset); err != nil {
		return nil, errors.Wrap(err, "creator count")
	}
	if count > 0 {
		args.Creators = make([]Creator, count)
	}
	for i := range args.Creators {
		if args.Creators[i], err = unmarshalCreator(data[offset:]); err != nil {
			return nil, errors.Wrapf(err, "creator %d", i)
		}
		offset += CreatorSize
	}

	if err = binary.GetBool(data[offset:], &args.UpdateAuthorityIsSigner, &offset); err != nil {
		return nil, errors.Wrap(err, "update authority is signer")
	}
	if err = binary.GetBool(data[offset:], &args.IsMutable, &offset); err != nil {
		return nil, errors.Wrap(err, "is mutable")
	}

	for _, name := range []string{"collection", "uses", "collection details"} {
		var presence uint8
		if err = binary.GetUint8(data[offset:], &presence, &offset); err != nil {
			return nil, errors.Wrap(err, name)
		}
		if presence != 0 {
			return nil, errors.Wrapf(ErrInvalidInstructionData, "unsupported %s", name)
		}
	}

	if offset != len(data) {
		return nil, errors.Wrapf(ErrInvalidInstructionData, "%d trailing bytes", len(data)-offset)
	}
	return &args, nil
}

type DecompiledCreateMetadataAccountsV3 struct {
	Accounts CreateMetadataAccountsV3InstructionAccounts
	Args     CreateMetadataAccountsV3InstructionArgs
}

// DecompileCreateMetadataAccountsV3 reads the instruction at index of a
// compiled message back into its accounts and arguments.
func DecompileCreateMetadataAccountsV3(m solana.Message, index int, opts ...Option) (*DecompiledCreateMetadataAccountsV3, error) {
	o := applyOptions(opts)

	if index < 0 || index >= len(m.Instructions) {
		return nil, errors.Errorf("instruction doesn't exist at %d", index)
	}

	i := m.Instructions[index]

	if !bytes.Equal(m.Accounts[i.ProgramIndex], o.Program) {
		return nil, solana.ErrIncorrectProgram
	}
	if len(i.Data) < 1 || InstructionType(i.Data[0]) != o.Schema.CreateMetadataAccounts {
		return nil, solana.ErrIncorrectInstruction
	}
	if len(i.Accounts) != CreateMetadataAccountsV3AccountCount {
		return nil, errors.Errorf("invalid number of accounts: %d (expected %d)", len(i.Accounts), CreateMetadataAccountsV3AccountCount)
	}

	if !bytes.Equal(m.Accounts[i.Accounts[5]], o.Environment.SystemProgram) {
		return nil, errors.Errorf("system program key mismatch")
	}
	if !bytes.Equal(m.Accounts[i.Accounts[6]], o.Environment.RentSysVar) {
		return nil, errors.Errorf("rent sysvar mismatch")
	}

	args, err := DecodeCreateMetadataAccountsV3InstructionArgs(i.Data, opts...)
	if err != nil {
		return nil, err
	}

	return &DecompiledCreateMetadataAccountsV3{
		Accounts: CreateMetadataAccountsV3InstructionAccounts{
			Metadata:        m.Accounts[i.Accounts[0]],
			Mint:            m.Accounts[i.Accounts[1]],
			MintAuthority:   m.Accounts[i.Accounts[2]],
			Payer:           m.Accounts[i.Accounts[3]],
			UpdateAuthority: m.Accounts[i.Accounts[4]],
		},
		Args: *args,
	}, nil
}

func getShortString(src []byte, offset *int) (string, error) {
	var length uint8
	if err := binary.GetUint8(src[*offset:], &length, offset); err != nil {
		return "", err
	}

	var raw []byte
	if err := binary.GetBytes(src[*offset:], &raw, int(length), offset); err != nil {
		return "", err
	}
	return string(raw), nil
}
