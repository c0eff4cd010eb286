package matching

import (
	"maps"
	"slices"

	"github.com/gabapcia/chaintrack/internal/chainpoll"
	"github.com/gabapcia/chaintrack/internal/tracking"
)

// Classification is the inferred direction of a transfer and the venue that
// drove it. It is a heuristic, not ground truth.
type Classification struct {
	Direction chainpoll.Direction
	DEX       string
}

// Classifier infers the direction of a transfer.
type Classifier interface {
	Classify(tx chainpoll.RawTransaction) Classification
}

// DefaultEVMRouters maps well known router contracts (lowercase) to names.
var DefaultEVMRouters = map[string]string{
	"0x7a250d5630b4cf539739df2c5dacb4c659f2488d": "Uniswap V2",
	"0xe592427a0aece92de3edee1f18e0157c05861564": "Uniswap V3",
	"0xd9e1ce17f2641f24ae83637ab66a2cca9c378b9f": "SushiSwap",
	"0x10ed43c718714eb63d5aa57b78b54704e256024e": "PancakeSwap",
}

// DefaultSolanaPrograms maps well known swap program ids to names.
var DefaultSolanaPrograms = map[string]string{
	"JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4":  "Jupiter",
	"675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8": "Raydium",
	"whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc":  "Orca",
}

// transferClassifier labels everything a plain transfer.
type transferClassifier struct{}

func (transferClassifier) Classify(chainpoll.RawTransaction) Classification {
	return Classification{Direction: chainpoll.DirectionTransfer}
}

// AddressClassifier recognizes venues by address: sending to a venue sells
// the asset, receiving from one buys it.
type AddressClassifier struct {
	venues map[string]string
}

// NewAddressClassifier returns a classifier over DefaultEVMRouters plus
// extra (address to name). Extra entries win over defaults.
func NewAddressClassifier(extra map[string]string) *AddressClassifier {
	venues := make(map[string]string, len(DefaultEVMRouters)+len(extra))
	for address, name := range DefaultEVMRouters {
		venues[tracking.NormalizeAddress(address)] = name
	}
	for address, name := range extra {
		venues[tracking.NormalizeAddress(address)] = name
	}

	return &AddressClassifier{venues: venues}
}

func (c *AddressClassifier) Classify(tx chainpoll.RawTransaction) Classification {
	if name, ok := c.venues[tracking.NormalizeAddress(tx.To)]; ok {
		return Classification{Direction: chainpoll.DirectionSell, DEX: name}
	}

	if name, ok := c.venues[tracking.NormalizeAddress(tx.From)]; ok {
		return Classification{Direction: chainpoll.DirectionBuy, DEX: name}
	}

	return Classification{Direction: chainpoll.DirectionTransfer}
}

// ProgramClassifier recognizes venues by the programs a transaction invoked.
// Balance changes inside a swap are buys for the credited side and sells for
// the debited side.
type ProgramClassifier struct {
	programs map[string]string
}

// NewProgramClassifier returns a classifier over DefaultSolanaPrograms plus
// extra (program id to name).
func NewProgramClassifier(extra map[string]string) *ProgramClassifier {
	programs := maps.Clone(DefaultSolanaPrograms)
	maps.Copy(programs, extra)

	return &ProgramClassifier{programs: programs}
}

func (c *ProgramClassifier) Classify(tx chainpoll.RawTransaction) Classification {
	idx := slices.IndexFunc(tx.Programs, func(p string) bool {
		_, ok := c.programs[p]
		return ok
	})
	if idx < 0 {
		return Classification{Direction: chainpoll.DirectionTransfer}
	}

	name := c.programs[tx.Programs[idx]]
	if tx.To != "" && tx.From == "" {
		return Classification{Direction: chainpoll.DirectionBuy, DEX: name}
	}
	if tx.From != "" && tx.To == "" {
		return Classification{Direction: chainpoll.DirectionSell, DEX: name}
	}

	return Classification{Direction: chainpoll.DirectionTransfer, DEX: name}
}

// ForFamily picks the classification strategy of a chain family. venues
// holds extra venue addresses or program ids with their names.
func ForFamily(family chainpoll.Family, venues map[string]string) Classifier {
	switch family {
	case chainpoll.FamilyEVM:
		return NewAddressClassifier(venues)
	case chainpoll.FamilySolana:
		return NewProgramClassifier(venues)
	default:
		return transferClassifier{}
	}
}
