package metadata

import (
	"bytes"
	"crypto/ed25519"
	"io"
	"testing"

	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKey(t *testing.T) ed25519.PublicKey {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return pub
}

func generateMetadataAccounts(t *testing.T) *CreateMetadataAccountsV3InstructionAccounts {
	return &CreateMetadataAccountsV3InstructionAccounts{
		Metadata:        generateKey(t),
		Mint:            generateKey(t),
		MintAuthority:   generateKey(t),
		Payer:           generateKey(t),
		UpdateAuthority: generateKey(t),
	}
}

func generateMasterEditionAccounts(t *testing.T) *CreateMasterEditionV3InstructionAccounts {
	return &CreateMasterEditionV3InstructionAccounts{
		Edition:         generateKey(t),
		Mint:            generateKey(t),
		UpdateAuthority: generateKey(t),
		MintAuthority:   generateKey(t),
		Payer:           generateKey(t),
		Metadata:        generateKey(t),
	}
}

// referenceMetadataArgs is decoded straight from the wire table, independent
// of DecodeCreateMetadataAccountsV3InstructionArgs.
type referenceMetadataArgs struct {
	Discriminant            byte
	Name                    string
	Symbol                  string
	Uri                     string
	SellerFeeBasisPoints    byte
	Creators                []Creator
	UpdateAuthorityIsSigner byte
	IsMutable               byte
	Collection              byte
	Uses                    byte
	CollectionDetails       byte
}

func referenceDecodeCreateMetadata(t *testing.T, data []byte) referenceMetadataArgs {
	r := bytes.NewReader(data)

	readByte := func() byte {
		b, err := r.ReadByte()
		require.NoError(t, err)
		return b
	}
	readString := func() string {
		buf := make([]byte, readByte())
		_, err := io.ReadFull(r, buf)
		require.NoError(t, err)
		return string(buf)
	}

	var args referenceMetadataArgs
	args.Discriminant = readByte()
	args.Name = readString()
	args.Symbol = readString()
	args.Uri = readString()
	args.SellerFeeBasisPoints = readByte()

	count := int(readByte())
	for i := 0; i < count; i++ {
		raw := make([]byte, 34)
		_, err := io.ReadFull(r, raw)
		require.NoError(t, err)

		var record struct {
			Address  [32]byte
			Verified bool
			Share    uint8
		}
		require.NoError(t, borsh.Deserialize(&record, raw))

		args.Creators = append(args.Creators, Creator{
			Address:  ed25519.PublicKey(record.Address[:]),
			Verified: record.Verified,
			Share:    record.Share,
		})
	}

	args.UpdateAuthorityIsSigner = readByte()
	args.IsMutable = readByte()
	args.Collection = readByte()
	args.Uses = readByte()
	args.CollectionDetails = readByte()

	assert.Zero(t, r.Len(), "unexpected trailing bytes")
	return args
}
