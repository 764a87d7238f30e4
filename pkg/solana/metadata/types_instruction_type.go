package metadata

// InstructionType is the leading discriminant byte the Token Metadata
// program dispatches on.
type InstructionType uint8

// Reference: https://github.com/metaplex-foundation/mpl-token-metadata/blob/main/programs/token-metadata/program/src/instruction/mod.rs
const (
	InstructionTypeCreateMetadataAccountsV3 InstructionType = 33
	InstructionTypeCreateMasterEditionV3    InstructionType = 37
)

func putInstructionType(dst []byte, v InstructionType, offset *int) {
	dst[*offset] = uint8(v)
	*offset += 1
}

func getInstructionType(src []byte, dst *InstructionType, offset *int) {
	*dst = InstructionType(src[*offset])
	*offset += 1
}
