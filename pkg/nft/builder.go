package nft

import (
	"context"
	"crypto/ed25519"
	"math"

	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/code-payments/nft-cpi/pkg/solana"
	"github.com/code-payments/nft-cpi/pkg/solana/computebudget"
	"github.com/code-payments/nft-cpi/pkg/solana/memo"
	"github.com/code-payments/nft-cpi/pkg/solana/metadata"
)

// DefaultSellerFeeBasisPoints is the royalty applied by callers that don't
// choose one.
const DefaultSellerFeeBasisPoints = 100

// MintArgs describes a single edition NFT. Payer acts as mint authority,
// update authority and sole verified creator.
type MintArgs struct {
	Payer ed25519.PublicKey
	Mint  ed25519.PublicKey

	Name                 string
	Symbol               string
	Uri                  string
	SellerFeeBasisPoints uint8

	// MaxSupply of nil allows unlimited prints. Zero makes the master
	// edition the only one.
	MaxSupply *uint64
}

// Builder produces the Token Metadata instructions that turn an existing
// mint into an NFT. It only builds instructions; it never signs or submits
// them. A Builder is safe for concurrent use.
type Builder struct {
	log  *logrus.Entry
	conf *conf
}

func NewBuilder(configProvider ConfigProvider) *Builder {
	return &Builder{
		log:  logrus.StandardLogger().WithField("type", "nft/builder"),
		conf: configProvider(),
	}
}

// BuildMintInstructions returns the create metadata and create master edition
// instructions for args, in that order.
func (b *Builder) BuildMintInstructions(ctx context.Context, args *MintArgs) ([]solana.Instruction, error) {
	log := b.log.WithField("method", "BuildMintInstructions")

	if err := validateMintArgs(args); err != nil {
		log.WithError(err).Warn("invalid mint arguments")
		return nil, err
	}

	log = log.WithFields(logrus.Fields{
		"payer": base58.Encode(args.Payer),
		"mint":  base58.Encode(args.Mint),
	})

	opts, err := b.getOptions(ctx, log)
	if err != nil {
		log.WithError(err).Warn("failure loading builder configuration")
		return nil, err
	}

	metadataAddress, _, err := metadata.GetMetadataAddress(&metadata.GetMetadataAddressArgs{
		Mint: args.Mint,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "error deriving metadata address")
	}

	editionAddress, _, err := metadata.GetMasterEditionAddress(&metadata.GetMasterEditionAddressArgs{
		Mint: args.Mint,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "error deriving master edition address")
	}

	log = log.WithFields(logrus.Fields{
		"metadata":       base58.Encode(metadataAddress),
		"master_edition": base58.Encode(editionAddress),
	})

	createMetadata, err := metadata.NewCreateMetadataAccountsV3Instruction(
		&metadata.CreateMetadataAccountsV3InstructionAccounts{
			Metadata:        metadataAddress,
			Mint:            args.Mint,
			MintAuthority:   args.Payer,
			Payer:           args.Payer,
			UpdateAuthority: args.Payer,
		},
		&metadata.CreateMetadataAccountsV3InstructionArgs{
			Name:                    args.Name,
			Symbol:                  args.Symbol,
			Uri:                     args.Uri,
			SellerFeeBasisPoints:    args.SellerFeeBasisPoints,
			Creators:                metadata.NewSingleCreator(args.Payer, true),
			UpdateAuthorityIsSigner: true,
			IsMutable:               true,
		},
		opts...,
	)
	if err != nil {
		log.WithError(err).Warn("failure building create metadata instruction")
		return nil, errors.Wrap(err, "error building create metadata instruction")
	}

	createMasterEdition, err := metadata.NewCreateMasterEditionV3Instruction(
		&metadata.CreateMasterEditionV3InstructionAccounts{
			Edition:         editionAddress,
			Mint:            args.Mint,
			UpdateAuthority: args.Payer,
			MintAuthority:   args.Payer,
			Payer:           args.Payer,
			Metadata:        metadataAddress,
		},
		&metadata.CreateMasterEditionV3InstructionArgs{
			MaxSupply: args.MaxSupply,
		},
		opts...,
	)
	if err != nil {
		log.WithError(err).Warn("failure building create master edition instruction")
		return nil, errors.Wrap(err, "error building create master edition instruction")
	}

	log.Debug("built mint instructions")

	return []solana.Instruction{createMetadata, createMasterEdition}, nil
}

// TransactionOption adds instructions ahead of the mint instructions in an
// unsigned transaction.
type TransactionOption func(*transactionOptions)

type transactionOptions struct {
	computeUnitLimit uint32
	computeUnitPrice uint64
	memo             string
}

// WithComputeUnitLimit prepends a compute budget unit limit instruction.
func WithComputeUnitLimit(limit uint32) TransactionOption {
	return func(o *transactionOptions) {
		o.computeUnitLimit = limit
	}
}

// WithComputeUnitPrice prepends a compute budget priority fee instruction, in
// micro-lamports per compute unit.
func WithComputeUnitPrice(microLamports uint64) TransactionOption {
	return func(o *transactionOptions) {
		o.computeUnitPrice = microLamports
	}
}

// WithMemo prepends a memo instruction.
func WithMemo(memo string) TransactionOption {
	return func(o *transactionOptions) {
		o.memo = memo
	}
}

// BuildUnsignedTransaction compiles the mint instructions into a legacy
// transaction paid for by args.Payer. The blockhash and signatures are left
// for the caller to fill in with Transaction.SetBlockhash and Transaction.Sign.
func (b *Builder) BuildUnsignedTransaction(ctx context.Context, args *MintArgs, opts ...TransactionOption) (solana.Transaction, error) {
	var o transactionOptions
	for _, opt := range opts {
		opt(&o)
	}

	var instructions []solana.Instruction
	if o.computeUnitLimit > 0 {
		instructions = append(instructions, computebudget.SetComputeUnitLimit(o.computeUnitLimit))
	}
	if o.computeUnitPrice > 0 {
		instructions = append(instructions, computebudget.SetComputeUnitPrice(o.computeUnitPrice))
	}
	if len(o.memo) > 0 {
		memoIxn, err := memo.Instruction(o.memo)
		if err != nil {
			return solana.Transaction{}, err
		}
		instructions = append(instructions, memoIxn)
	}

	mintInstructions, err := b.BuildMintInstructions(ctx, args)
	if err != nil {
		return solana.Transaction{}, err
	}
	instructions = append(instructions, mintInstructions...)

	txn := solana.NewLegacyTransaction(args.Payer, instructions...)
	if size := len(txn.Marshal()); size > solana.MaxTransactionSize {
		return solana.Transaction{}, errors.Errorf("transaction is %d bytes, exceeding %d", size, solana.MaxTransactionSize)
	}
	return txn, nil
}

func (b *Builder) getOptions(ctx context.Context, log *logrus.Entry) ([]metadata.Option, error) {
	program, err := b.conf.metadataProgram.GetSafe(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "invalid metadata program")
	}

	version := b.conf.schemaVersion.Get(ctx)
	if version > math.MaxUint8 {
		return nil, errors.Wrapf(metadata.ErrUnknownSchemaVersion, "version %d", version)
	}
	schema, err := metadata.GetSchema(metadata.SchemaVersion(version))
	if err != nil {
		return nil, err
	}

	legacyLengthWrap := b.conf.legacyLengthWrap.Get(ctx)
	if legacyLengthWrap {
		log.Warn("legacy length wrap is enabled, oversized fields will be truncated on chain")
	}

	return []metadata.Option{
		metadata.WithProgram(program),
		metadata.WithSchema(schema),
		metadata.WithLegacyLengthWrap(legacyLengthWrap),
	}, nil
}

func validateMintArgs(args *MintArgs) error {
	if args == nil {
		return errors.New("mint args are required")
	}
	if len(args.Payer) != ed25519.PublicKeySize {
		return errors.Wrap(metadata.ErrMissingAccount, "payer")
	}
	if len(args.Mint) != ed25519.PublicKeySize {
		return errors.Wrap(metadata.ErrMissingAccount, "mint")
	}
	return nil
}
