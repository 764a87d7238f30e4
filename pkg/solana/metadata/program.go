package metadata

import (
	"errors"

	"github.com/code-payments/nft-cpi/pkg/solana"
)

var (
	ErrInvalidProgram         = errors.New("invalid program id")
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
	ErrUnknownSchemaVersion   = errors.New("unknown schema version")

	ErrOversizedField       = errors.New("field exceeds the 1 byte length prefix")
	ErrTooManyCreators      = errors.New("too many creators")
	ErrInvalidCreatorShares = errors.New("creator shares must sum to 100")
	ErrMissingAccount       = errors.New("missing required account")
)

// ProgramKey is the default address of the Token Metadata program. Callers
// targeting another deployment pass WithProgram.
//
// Current key: metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s
var ProgramKey = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")

const (
	// MaxFieldLength is the longest name, symbol or uri the 1 byte length
	// prefix can describe.
	MaxFieldLength = 255

	// MaxCreators is the largest creator count the 1 byte count can describe.
	MaxCreators = 255

	// TotalCreatorShares is the sum the receiving program expects creator
	// shares to add up to.
	TotalCreatorShares = 100
)
