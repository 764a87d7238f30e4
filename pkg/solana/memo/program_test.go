package memo

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/nft-cpi/pkg/solana"
)

func TestInstruction(t *testing.T) {
	i, err := Instruction("minted by nft-cpi")
	require.NoError(t, err)
	assert.Equal(t, ProgramKey, i.Program)
	assert.Empty(t, i.Accounts)
	assert.Equal(t, "minted by nft-cpi", string(i.Data))

	_, err = Instruction(string([]byte{0xff, 0xfe}))
	assert.Equal(t, ErrInvalidMemo, err)
}

func TestDecompile(t *testing.T) {
	i, err := Instruction("hello, world")
	require.NoError(t, err)

	tx := solana.NewLegacyTransaction(make([]byte, 32), i)

	decompiled, err := DecompileMemo(tx.Message, 0)
	assert.NoError(t, err)
	assert.Equal(t, "hello, world", string(decompiled.Data))

	for _, index := range []int{-1, 1} {
		_, err = DecompileMemo(tx.Message, index)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "instruction doesn't exist")
	}

	tx.Message.Accounts[1], _, err = ed25519.GenerateKey(nil)
	require.NoError(t, err)
	_, err = DecompileMemo(tx.Message, 0)
	assert.Equal(t, solana.ErrIncorrectProgram, err)
}
