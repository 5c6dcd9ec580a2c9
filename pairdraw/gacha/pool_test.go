package gacha_test

import (
	"context"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/pairdraw/pairdraw/pairdraw/gacha"
	"github.com/pairdraw/pairdraw/pairdraw/gacha/mock"
)

func TestResolveTierDefaultsOnly(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().
		ListDisabledTexts(gomock.Any(), int64(1), gacha.RarityN).
		Return(nil, nil)
	store.EXPECT().
		ListPartnerIDs(gomock.Any(), int64(1)).
		Return(nil, nil)
	store.EXPECT().
		ListEnabledCustomTexts(gomock.Any(), int64(1), gacha.RarityN).
		Return(nil, nil)

	resolver := gacha.NewResolver(store)
	pool, err := resolver.ResolveTier(context.Background(), 1, gacha.RarityN)
	if err != nil {
		t.Fatalf("ResolveTier() error = %v", err)
	}
	if want := gacha.DefaultCards(gacha.RarityN); !reflect.DeepEqual(pool, want) {
		t.Errorf("ResolveTier() = %v, want %v", pool, want)
	}
}

func TestResolveTierFiltersDisabled(t *testing.T) {
	defaults := gacha.DefaultCards(gacha.RaritySR)
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().
		ListDisabledTexts(gomock.Any(), int64(1), gacha.RaritySR).
		Return([]string{defaults[0]}, nil)
	store.EXPECT().
		ListPartnerIDs(gomock.Any(), int64(1)).
		Return(nil, nil)
	store.EXPECT().
		ListEnabledCustomTexts(gomock.Any(), int64(1), gacha.RaritySR).
		Return(nil, nil)

	resolver := gacha.NewResolver(store)
	pool, err := resolver.ResolveTier(context.Background(), 1, gacha.RaritySR)
	if err != nil {
		t.Fatalf("ResolveTier() error = %v", err)
	}
	if !reflect.DeepEqual(pool, defaults[1:]) {
		t.Errorf("ResolveTier() = %v, want %v", pool, defaults[1:])
	}
}

// Custom cards merge after the filtered defaults: the caller's own
// cards first, then each partner's in binding order.
func TestResolveTierMergesPartnerCustomCards(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().
		ListDisabledTexts(gomock.Any(), int64(1), gacha.RaritySSR).
		Return(nil, nil)
	store.EXPECT().
		ListPartnerIDs(gomock.Any(), int64(1)).
		Return([]int64{2, 3}, nil)
	gomock.InOrder(
		store.EXPECT().
			ListEnabledCustomTexts(gomock.Any(), int64(1), gacha.RaritySSR).
			Return([]string{"mine"}, nil),
		store.EXPECT().
			ListEnabledCustomTexts(gomock.Any(), int64(2), gacha.RaritySSR).
			Return([]string{"from-first-partner"}, nil),
		store.EXPECT().
			ListEnabledCustomTexts(gomock.Any(), int64(3), gacha.RaritySSR).
			Return([]string{"from-second-partner"}, nil),
	)

	resolver := gacha.NewResolver(store)
	pool, err := resolver.ResolveTier(context.Background(), 1, gacha.RaritySSR)
	if err != nil {
		t.Fatalf("ResolveTier() error = %v", err)
	}

	want := append(gacha.DefaultCards(gacha.RaritySSR),
		"mine", "from-first-partner", "from-second-partner")
	if !reflect.DeepEqual(pool, want) {
		t.Errorf("ResolveTier() = %v, want %v", pool, want)
	}
}

// A partner's disables only affect the partner's own pool: the caller
// still sees every default even when the partner hid some.
func TestResolveTierIgnoresPartnerDisables(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().
		ListDisabledTexts(gomock.Any(), int64(1), gacha.RarityR).
		Return(nil, nil)
	store.EXPECT().
		ListPartnerIDs(gomock.Any(), int64(1)).
		Return([]int64{2}, nil)
	store.EXPECT().
		ListEnabledCustomTexts(gomock.Any(), int64(1), gacha.RarityR).
		Return(nil, nil)
	store.EXPECT().
		ListEnabledCustomTexts(gomock.Any(), int64(2), gacha.RarityR).
		Return(nil, nil)

	resolver := gacha.NewResolver(store)
	pool, err := resolver.ResolveTier(context.Background(), 1, gacha.RarityR)
	if err != nil {
		t.Fatalf("ResolveTier() error = %v", err)
	}
	if want := gacha.DefaultCards(gacha.RarityR); !reflect.DeepEqual(pool, want) {
		t.Errorf("ResolveTier() = %v, want %v", pool, want)
	}
}

func TestResolveAllTiers(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	for _, rarity := range gacha.Rarities() {
		store.EXPECT().
			ListDisabledTexts(gomock.Any(), int64(1), rarity).
			Return(nil, nil)
		store.EXPECT().
			ListEnabledCustomTexts(gomock.Any(), int64(1), rarity).
			Return(nil, nil)
	}
	store.EXPECT().
		ListPartnerIDs(gomock.Any(), int64(1)).
		Return(nil, nil).
		Times(len(gacha.Rarities()))

	resolver := gacha.NewResolver(store)
	pools, err := resolver.Resolve(context.Background(), 1)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(pools) != len(gacha.Rarities()) {
		t.Fatalf("Resolve() returned %d tiers, want %d", len(pools), len(gacha.Rarities()))
	}
	for _, rarity := range gacha.Rarities() {
		if len(pools[rarity]) == 0 {
			t.Errorf("tier %s resolved empty", rarity)
		}
	}
}
