package main

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mr-tron/base58/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/code-payments/nft-cpi/pkg/solana/metadata"
)

func writeConfig(t *testing.T, lines ...string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0600))
	return path
}

func generateKey(t *testing.T) string {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return base58.Encode(pub)
}

func TestRun_YAML(t *testing.T) {
	payer := generateKey(t)
	mint := generateKey(t)

	path := writeConfig(t,
		"log_level: warn",
		"payer: "+payer,
		"mint: "+mint,
		"name: Cat",
		"symbol: CAT",
		"uri: https://example.com/cat.json",
	)

	var stdout bytes.Buffer
	require.NoError(t, run([]string{"-config", path}, &stdout))

	var out output
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out.Instructions, 2)

	mintKey, err := base58.Decode(mint)
	require.NoError(t, err)
	metadataAddress, _, err := metadata.GetMetadataAddress(&metadata.GetMetadataAddressArgs{Mint: mintKey})
	require.NoError(t, err)
	assert.Equal(t, base58.Encode(metadataAddress), out.Metadata)

	createMetadata := out.Instructions[0]
	assert.Equal(t, base58.Encode(metadata.ProgramKey), createMetadata.Program)
	require.Len(t, createMetadata.Accounts, metadata.CreateMetadataAccountsV3AccountCount)
	assert.Equal(t, accountOutput{PublicKey: payer, Writable: true, Signer: true}, createMetadata.Accounts[3])

	data, err := base58.Decode(createMetadata.Data)
	require.NoError(t, err)
	decoded, err := metadata.DecodeCreateMetadataAccountsV3InstructionArgs(data)
	require.NoError(t, err)
	assert.Equal(t, "Cat", decoded.Name)
	assert.EqualValues(t, 100, decoded.SellerFeeBasisPoints)

	createMasterEdition := out.Instructions[1]
	assert.Equal(t, out.MasterEdition, createMasterEdition.Accounts[0].PublicKey)
	data, err = base58.Decode(createMasterEdition.Data)
	require.NoError(t, err)
	assert.Equal(t, []byte{37, 1, 0, 0, 0, 0, 0, 0, 0, 0}, data)
}

func TestRun_JSON(t *testing.T) {
	program := generateKey(t)

	path := writeConfig(t,
		"payer: "+generateKey(t),
		"mint: "+generateKey(t),
		"name: Cat",
		"symbol: CAT",
		"uri: https://example.com/cat.json",
		"seller_fee_basis_points: 5",
		"unlimited_supply: true",
		"metadata_program: "+program,
	)

	var stdout bytes.Buffer
	require.NoError(t, run([]string{"-config", path, "-format", "json"}, &stdout))

	var out output
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out.Instructions, 2)

	for _, ix := range out.Instructions {
		assert.Equal(t, program, ix.Program)
	}

	data, err := base58.Decode(out.Instructions[0].Data)
	require.NoError(t, err)
	decoded, err := metadata.DecodeCreateMetadataAccountsV3InstructionArgs(data)
	require.NoError(t, err)
	assert.EqualValues(t, 5, decoded.SellerFeeBasisPoints)

	data, err = base58.Decode(out.Instructions[1].Data)
	require.NoError(t, err)
	assert.Equal(t, []byte{37, 0}, data)
}

func TestRun_Errors(t *testing.T) {
	valid := []string{
		"payer: " + generateKey(t),
		"mint: " + generateKey(t),
		"name: Cat",
	}

	for _, tc := range []struct {
		name string
		args func(t *testing.T) []string
	}{
		{
			name: "missing file",
			args: func(t *testing.T) []string {
				return []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}
			},
		},
		{
			name: "unknown format",
			args: func(t *testing.T) []string {
				return []string{"-config", writeConfig(t, valid...), "-format", "toml"}
			},
		},
		{
			name: "invalid payer",
			args: func(t *testing.T) []string {
				return []string{"-config", writeConfig(t, "payer: abc", valid[1], valid[2])}
			},
		},
		{
			name: "oversized name",
			args: func(t *testing.T) []string {
				return []string{"-config", writeConfig(t, valid[0], valid[1], "name: "+strings.Repeat("n", 256))}
			},
		},
		{
			name: "unknown schema",
			args: func(t *testing.T) []string {
				return []string{"-config", writeConfig(t, append(valid, "schema_version: 9")...)}
			},
		},
		{
			name: "schema version wider than a byte",
			args: func(t *testing.T) []string {
				return []string{"-config", writeConfig(t, append(valid, "schema_version: 259")...)}
			},
		},
		{
			name: "seller fee above a byte",
			args: func(t *testing.T) []string {
				return []string{"-config", writeConfig(t, append(valid, "seller_fee_basis_points: 300")...)}
			},
		},
		{
			name: "negative seller fee",
			args: func(t *testing.T) []string {
				return []string{"-config", writeConfig(t, append(valid, "seller_fee_basis_points: -1")...)}
			},
		},
		{
			name: "negative max supply",
			args: func(t *testing.T) []string {
				return []string{"-config", writeConfig(t, append(valid, "max_supply: -1")...)}
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var stdout bytes.Buffer
			assert.Error(t, run(tc.args(t), &stdout))
			assert.Zero(t, stdout.Len())
		})
	}
}
