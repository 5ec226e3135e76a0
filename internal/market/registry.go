// Package market implements the per-jurisdiction fiscal rules the simulation
// engine consults during settlement, plus the job and housing catalogs for
// each market.
package market

import (
	"errors"
	"fmt"
	"sort"

	"snowball/internal/game"
)

var (
	// ErrUnsupportedMarket means the market id is not in the registry at all.
	ErrUnsupportedMarket = errors.New("unsupported market")

	// ErrNotImplemented means the market is registered but its fiscal rules
	// are not built yet. Callers must surface this, never substitute zeros.
	ErrNotImplemented = errors.New("market rules not implemented")

	// ErrListingNotFound means a job or housing id is not in the catalog.
	ErrListingNotFound = errors.New("listing not found")
)

// registry is the closed set of known markets. There is no fallback profile;
// unknown ids fail loudly.
var registry = map[string]game.MarketProfile{
	"czech": CzechMarket{},
	"usa":   UsaMarket{},
	"uk":    UkMarket{},
}

// Resolve returns the profile for a market id.
func Resolve(marketID string) (game.MarketProfile, error) {
	p, ok := registry[marketID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMarket, marketID)
	}
	return p, nil
}

// List returns the registered market ids in stable order.
func List() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
