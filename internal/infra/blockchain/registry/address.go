package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/chaintrack/internal/chainpoll"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
)

// ErrInvalidAddress is returned for addresses that cannot exist on a chain.
var ErrInvalidAddress = errors.New("invalid address")

const (
	solanaKeyLength   = 32
	legacyUTXOLength  = 25
	bech32Charset     = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
	bech32MinDataPart = 6
)

// validAddress reports whether address is well formed for family. Checksums
// are not verified; the goal is to catch typos and addresses pasted on the
// wrong chain.
func validAddress(family chainpoll.Family, address string) bool {
	switch family {
	case chainpoll.FamilyEVM:
		return common.IsHexAddress(address)
	case chainpoll.FamilySolana:
		decoded, err := base58.Decode(address)
		return err == nil && len(decoded) == solanaKeyLength
	case chainpoll.FamilyUTXO:
		if decoded, err := base58.Decode(address); err == nil && len(decoded) == legacyUTXOLength {
			return true
		}
		return validBech32(address)
	default:
		return false
	}
}

// validBech32 checks the shape of a segwit address: a human readable part,
// the separator and a data part in the bech32 charset.
func validBech32(address string) bool {
	lower := strings.ToLower(address)
	if lower != address && strings.ToUpper(address) != address {
		return false
	}

	sep := strings.LastIndexByte(lower, '1')
	if sep < 1 || len(lower)-sep-1 < bech32MinDataPart || len(lower) > 90 {
		return false
	}

	for _, r := range lower[sep+1:] {
		if !strings.ContainsRune(bech32Charset, r) {
			return false
		}
	}

	return true
}

func addressError(chain, address string) error {
	return fmt.Errorf("%w for chain %s: %q", ErrInvalidAddress, chain, address)
}
