package metadata

import (
	"crypto/ed25519"
	"math"
	"testing"

	"github.com/near/borsh-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/nft-cpi/pkg/solana"
	"github.com/code-payments/nft-cpi/pkg/solana/system"
	"github.com/code-payments/nft-cpi/pkg/solana/token"
)

func TestCreateMasterEditionV3_MaxSupply(t *testing.T) {
	zero := uint64(0)
	max := uint64(math.MaxUint64)
	ten := uint64(10)

	for _, tc := range []struct {
		maxSupply *uint64
		expected  []byte
	}{
		{nil, []byte{37, 0}},
		{&zero, []byte{37, 1, 0, 0, 0, 0, 0, 0, 0, 0}},
		{&ten, []byte{37, 1, 10, 0, 0, 0, 0, 0, 0, 0}},
		{&max, []byte{37, 1, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	} {
		args := &CreateMasterEditionV3InstructionArgs{MaxSupply: tc.maxSupply}

		data, err := EncodeCreateMasterEditionV3InstructionArgs(args)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, data)

		// Option<u64> under borsh shares the layout.
		reference, err := borsh.Serialize(struct {
			MaxSupply *uint64
		}{tc.maxSupply})
		require.NoError(t, err)
		assert.Equal(t, reference, data[1:])

		decoded, err := DecodeCreateMasterEditionV3InstructionArgs(data)
		require.NoError(t, err)
		assert.Equal(t, args, decoded)
	}
}

func TestCreateMasterEditionV3_AccountMetas(t *testing.T) {
	accounts := generateMasterEditionAccounts(t)

	ix, err := NewCreateMasterEditionV3Instruction(accounts, &CreateMasterEditionV3InstructionArgs{})
	require.NoError(t, err)

	assert.Equal(t, ProgramKey, ix.Program)
	require.Len(t, ix.Accounts, CreateMasterEditionV3AccountCount)

	expected := []struct {
		key      ed25519.PublicKey
		writable bool
		signer   bool
	}{
		{accounts.Edition, true, false},
		{accounts.Mint, true, false},
		{accounts.UpdateAuthority, false, true},
		{accounts.MintAuthority, false, true},
		{accounts.Payer, true, true},
		{accounts.Metadata, false, false},
		{token.ProgramKey, false, false},
		{system.ProgramKey, false, false},
		{system.RentSysVar, false, false},
	}
	for i, e := range expected {
		assert.Equal(t, e.key, ix.Accounts[i].PublicKey, "account %d", i)
		assert.Equal(t, e.writable, ix.Accounts[i].IsWritable, "account %d", i)
		assert.Equal(t, e.signer, ix.Accounts[i].IsSigner, "account %d", i)
	}
}

func TestCreateMasterEditionV3_Environment(t *testing.T) {
	env := Environment{
		SystemProgram: generateKey(t),
		RentSysVar:    generateKey(t),
		TokenProgram:  generateKey(t),
	}

	ix, err := NewCreateMasterEditionV3Instruction(
		generateMasterEditionAccounts(t),
		&CreateMasterEditionV3InstructionArgs{},
		WithEnvironment(env),
	)
	require.NoError(t, err)
	assert.Equal(t, env.TokenProgram, ix.Accounts[6].PublicKey)
	assert.Equal(t, env.SystemProgram, ix.Accounts[7].PublicKey)
	assert.Equal(t, env.RentSysVar, ix.Accounts[8].PublicKey)

	env.TokenProgram = nil
	_, err = NewCreateMasterEditionV3Instruction(
		generateMasterEditionAccounts(t),
		&CreateMasterEditionV3InstructionArgs{},
		WithEnvironment(env),
	)
	assert.True(t, errors.Is(err, ErrMissingAccount))
	assert.Contains(t, err.Error(), "token program")

	accounts := generateMasterEditionAccounts(t)
	accounts.Edition = nil
	_, err = NewCreateMasterEditionV3Instruction(accounts, &CreateMasterEditionV3InstructionArgs{})
	assert.True(t, errors.Is(err, ErrMissingAccount))
	assert.Contains(t, err.Error(), "edition")
}

func TestCreateMasterEditionV3_Decompile(t *testing.T) {
	accounts := generateMasterEditionAccounts(t)
	maxSupply := uint64(0)
	args := CreateMasterEditionV3InstructionArgs{MaxSupply: &maxSupply}

	ix, err := NewCreateMasterEditionV3Instruction(accounts, &args)
	require.NoError(t, err)

	tx := solana.NewLegacyTransaction(accounts.Payer, ix)

	decompiled, err := DecompileCreateMasterEditionV3(tx.Message, 0)
	require.NoError(t, err)
	assert.Equal(t, *accounts, decompiled.Accounts)
	assert.Equal(t, args, decompiled.Args)

	_, err = DecompileCreateMetadataAccountsV3(tx.Message, 0)
	assert.Equal(t, solana.ErrIncorrectInstruction, err)

	_, err = DecompileCreateMasterEditionV3(tx.Message, 0, WithProgram(generateKey(t)))
	assert.Equal(t, solana.ErrIncorrectProgram, err)

	for _, index := range []int{-1, 1} {
		_, err = DecompileCreateMasterEditionV3(tx.Message, index)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "instruction doesn't exist")
	}
}

func TestCreateMasterEditionV3_Decode_Invalid(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		{37},
		{37, 2},
		{37, 1, 0, 0},
		{37, 0, 0},
	} {
		_, err := DecodeCreateMasterEditionV3InstructionArgs(data)
		assert.Error(t, err, "data: %v", data)
	}

	_, err := DecodeCreateMasterEditionV3InstructionArgs([]byte{33, 0})
	assert.Equal(t, solana.ErrIncorrectInstruction, err)
}
