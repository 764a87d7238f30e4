package metadata

import (
	"github.com/pkg/errors"
)

// SchemaVersion identifies a revision of the receiving program's instruction
// enumeration.
type SchemaVersion uint8

const (
	SchemaVersionV3 SchemaVersion = 3

	DefaultSchemaVersion = SchemaVersionV3
)

// Schema maps the instruction variants this package builds to the
// discriminants of one revision of the receiving program.
type Schema struct {
	Version SchemaVersion

	CreateMetadataAccounts InstructionType
	CreateMasterEdition    InstructionType
}

var schemas = map[SchemaVersion]Schema{
	SchemaVersionV3: {
		Version:                SchemaVersionV3,
		CreateMetadataAccounts: InstructionTypeCreateMetadataAccountsV3,
		CreateMasterEdition:    InstructionTypeCreateMasterEditionV3,
	},
}

// GetSchema returns the schema registered for version.
func GetSchema(version SchemaVersion) (Schema, error) {
	schema, ok := schemas[version]
	if !ok {
		return Schema{}, errors.Wrapf(ErrUnknownSchemaVersion, "version %d", version)
	}
	return schema, nil
}

// DefaultSchema returns the schema for DefaultSchemaVersion.
func DefaultSchema() Schema {
	return schemas[DefaultSchemaVersion]
}
