// Package registry turns the chains file into running adapters. A Catalog
// only knows chain names and families, which is enough to validate user
// input without touching the network; a Registry also owns the adapters.
package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/gabapcia/chaintrack/internal/chainpoll"
	"github.com/gabapcia/chaintrack/internal/config"
	"github.com/gabapcia/chaintrack/internal/matching"
)

// ErrUnknownChain is returned for chains missing from the chains file.
var ErrUnknownChain = errors.New("unknown chain")

// Catalog describes the configured chains.
type Catalog struct {
	families  map[string]chainpoll.Family
	venues    map[string]map[string]string
	explorers map[string]string
}

func family(chainType string) (chainpoll.Family, error) {
	switch chainType {
	case config.TypeEVM:
		return chainpoll.FamilyEVM, nil
	case config.TypeSolana:
		return chainpoll.FamilySolana, nil
	case config.TypeUTXO:
		return chainpoll.FamilyUTXO, nil
	default:
		return "", chainpoll.Fatal(fmt.Errorf("unsupported chain type %q", chainType))
	}
}

// NewCatalog indexes chains by name.
func NewCatalog(chains []config.Chain) (*Catalog, error) {
	c := &Catalog{
		families:  make(map[string]chainpoll.Family, len(chains)),
		venues:    make(map[string]map[string]string, len(chains)),
		explorers: make(map[string]string),
	}

	for _, chain := range chains {
		f, err := family(chain.Type)
		if err != nil {
			return nil, fmt.Errorf("chain %s: %w", chain.Name, err)
		}

		c.families[chain.Name] = f

		switch f {
		case chainpoll.FamilyEVM:
			c.venues[chain.Name] = chain.DEXAddresses
		case chainpoll.FamilySolana:
			c.venues[chain.Name] = chain.DEXPrograms
		}

		if chain.ExplorerURL != "" {
			c.explorers[chain.Name] = chain.ExplorerURL
		}
	}

	return c, nil
}

// Names returns the configured chain names in order.
func (c *Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.families))
}

// Family returns the family of chain.
func (c *Catalog) Family(chain string) (chainpoll.Family, bool) {
	f, ok := c.families[chain]
	return f, ok
}

// ValidateChain rejects chains that are not configured.
func (c *Catalog) ValidateChain(chain string) error {
	if _, ok := c.families[chain]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChain, chain)
	}
	return nil
}

// ValidateAddress rejects addresses malformed for chain.
func (c *Catalog) ValidateAddress(chain, address string) error {
	f, ok := c.families[chain]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChain, chain)
	}

	if !validAddress(f, address) {
		return addressError(chain, address)
	}
	return nil
}

// Explorers maps chain names to their block explorer base URL.
func (c *Catalog) Explorers() map[string]string {
	return maps.Clone(c.explorers)
}

// MatcherOptions configures a direction classifier per chain.
func (c *Catalog) MatcherOptions() []matching.Option {
	opts := make([]matching.Option, 0, len(c.families))
	for _, name := range c.Names() {
		opts = append(opts, matching.WithClassifier(name, matching.ForFamily(c.families[name], c.venues[name])))
	}
	return opts
}
