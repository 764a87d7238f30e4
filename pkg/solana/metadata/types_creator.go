package metadata

import (
	"crypto/ed25519"

	"github.com/near/borsh-go"
	"github.com/pkg/errors"
)

// CreatorSize is the encoded size of a single creator entry.
const CreatorSize = ed25519.PublicKeySize + 1 + 1

type Creator struct {
	Address  ed25519.PublicKey
	Verified bool
	Share    uint8
}

// NewSingleCreator returns the creator list used when one address receives
// all royalties.
func NewSingleCreator(address ed25519.PublicKey, verified bool) []Creator {
	return []Creator{
		{
			Address:  address,
			Verified: verified,
			Share:    TotalCreatorShares,
		},
	}
}

// creatorRecord is the on-wire layout of a creator entry.
type creatorRecord struct {
	Address  [ed25519.PublicKeySize]byte
	Verified bool
	Share    uint8
}

func (c Creator) marshal() ([]byte, error) {
	if err := requireKey(c.Address, "creator"); err != nil {
		return nil, err
	}

	record := creatorRecord{
		Verified: c.Verified,
		Share:    c.Share,
	}
	copy(record.Address[:], c.Address)

	raw, err := borsh.Serialize(record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize creator")
	}
	if len(raw) != CreatorSize {
		return nil, errors.Errorf("unexpected creator size: %d", len(raw))
	}
	return raw, nil
}

func unmarshalCreator(raw []byte) (Creator, error) {
	if len(raw) < CreatorSize {
		return Creator{}, errors.Wrap(ErrInvalidInstructionData, "creator truncated")
	}

	var record creatorRecord
	if err := borsh.Deserialize(&record, raw[:CreatorSize]); err != nil {
		return Creator{}, errors.Wrap(err, "failed to deserialize creator")
	}

	address := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(address, record.Address[:])
	return Creator{
		Address:  address,
		Verified: record.Verified,
		Share:    record.Share,
	}, nil
}

// validateCreators checks the creator list against the limits of the wire
// format and the share total the receiving program enforces. An empty list is
// valid and encodes as a zero count.
func validateCreators(creators []Creator) error {
	if len(creators) == 0 {
		return nil
	}
	if len(creators) > MaxCreators {
		return errors.Wrapf(ErrTooManyCreators, "%d creators", len(creators))
	}

	var total int
	for i, c := range creators {
		if err := requireKey(c.Address, "creator"); err != nil {
			return errors.Wrapf(err, "creator %d", i)
		}
		total += int(c.Share)
	}
	if total != TotalCreatorShares {
		return errors.Wrapf(ErrInvalidCreatorShares, "shares sum to %d", total)
	}
	return nil
}
