package gacha

import (
	"context"
)

// Resolver assembles the per-user drawable pool: system defaults minus
// the user's disabled entries, plus enabled custom cards from the user
// and every direct partner.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// ResolveTier returns the list of texts eligible for one tier right
// now. Order is deterministic: filtered defaults first, then custom
// cards grouped by owner in binding order (self first), newest card
// first within an owner. Order affects indexability only; drawing is
// uniform over the whole list.
func (r *Resolver) ResolveTier(ctx context.Context, userID int64, rarity Rarity) ([]string, error) {
	disabled, err := r.store.ListDisabledTexts(ctx, userID, rarity)
	if err != nil {
		return nil, err
	}
	hidden := make(map[string]struct{}, len(disabled))
	for _, text := range disabled {
		hidden[text] = struct{}{}
	}

	pool := make([]string, 0, len(defaultCatalog[rarity]))
	for _, text := range defaultCatalog[rarity] {
		if _, ok := hidden[text]; !ok {
			pool = append(pool, text)
		}
	}

	partners, err := r.store.ListPartnerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	owners := append([]int64{userID}, partners...)
	for _, ownerID := range owners {
		texts, err := r.store.ListEnabledCustomTexts(ctx, ownerID, rarity)
		if err != nil {
			return nil, err
		}
		pool = append(pool, texts...)
	}

	return pool, nil
}

// Resolve returns the full per-tier pool mapping.
func (r *Resolver) Resolve(ctx context.Context, userID int64) (map[Rarity][]string, error) {
	pools := make(map[Rarity][]string, len(rarityRates))
	for _, rarity := range Rarities() {
		pool, err := r.ResolveTier(ctx, userID, rarity)
		if err != nil {
			return nil, err
		}
		pools[rarity] = pool
	}
	return pools, nil
}

// drawable returns the list the executor actually picks from: the
// resolved pool, or the unfiltered defaults when everything in the tier
// was disabled. A gated draw must always produce a card.
func (r *Resolver) drawable(ctx context.Context, userID int64, rarity Rarity) ([]string, error) {
	pool, err := r.ResolveTier(ctx, userID, rarity)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return DefaultCards(rarity), nil
	}
	return pool, nil
}
