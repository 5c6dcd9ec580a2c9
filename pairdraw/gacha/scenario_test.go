package gacha_test

import (
	"context"
	"sync"
	"testing"

	"github.com/pairdraw/pairdraw/pairdraw/database/repositories"
	"github.com/pairdraw/pairdraw/pairdraw/gacha"
)

// Full handshake: bind, request, approve, draw, and verify the request
// cannot fund a second draw.
func TestDrawLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	alice := store.addUser("alice")
	bob := store.addUser("bob")
	store.bind(alice.ID, bob.ID)

	consent := gacha.NewConsentManager(store)
	executor := gacha.NewExecutor(store, gacha.NewResolver(store), consent)

	request, err := consent.Request(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}

	// Pending request is not consumable yet.
	if _, err := executor.Draw(ctx, alice.ID); !repositories.IsInvalidState(err) {
		t.Fatalf("Draw() before approval error = %v, want InvalidStateError", err)
	}

	if err := consent.Approve(ctx, bob.ID, request.ID); err != nil {
		t.Fatalf("Approve() error = %v", err)
	}
	// Approval is idempotent.
	if err := consent.Approve(ctx, bob.ID, request.ID); err != nil {
		t.Fatalf("repeat Approve() error = %v", err)
	}

	// An approved request funds the requester's draw, not the partner's.
	if _, err := executor.Draw(ctx, bob.ID); !repositories.IsInvalidState(err) {
		t.Fatalf("Draw() by approver error = %v, want InvalidStateError", err)
	}

	result, err := executor.Draw(ctx, alice.ID)
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if result.User.DrawCount != 1 {
		t.Errorf("draw count = %d, want 1", result.User.DrawCount)
	}
	if len(store.inventory[alice.ID]) != 1 {
		t.Errorf("inventory size = %d, want 1", len(store.inventory[alice.ID]))
	}

	// Consumed request: no more draws, and approving it again conflicts.
	if _, err := executor.Draw(ctx, alice.ID); !repositories.IsInvalidState(err) {
		t.Errorf("second Draw() error = %v, want InvalidStateError", err)
	}
	if err := consent.Approve(ctx, bob.ID, request.ID); !repositories.IsConflict(err) {
		t.Errorf("Approve() on consumed request error = %v, want ConflictError", err)
	}
}

func TestRequestAgainstUnboundUser(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	alice := store.addUser("alice")
	carol := store.addUser("carol")

	consent := gacha.NewConsentManager(store)
	if _, err := consent.Request(ctx, alice.ID, carol.ID); !repositories.IsInvalidArgument(err) {
		t.Errorf("Request() error = %v, want InvalidArgumentError", err)
	}
}

// Partner-enabled custom cards enter the pool; the partner's deletions
// and the user's own disables leave it.
func TestPoolSharingBetweenPartners(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	alice := store.addUser("alice")
	bob := store.addUser("bob")
	store.bind(alice.ID, bob.ID)

	store.addCustom(bob.ID, gacha.RaritySSR, "breakfast in bed")
	store.addCustom(alice.ID, gacha.RaritySSR, "movie night pick")

	resolver := gacha.NewResolver(store)
	pool, err := resolver.ResolveTier(ctx, alice.ID, gacha.RaritySSR)
	if err != nil {
		t.Fatalf("ResolveTier() error = %v", err)
	}

	if !contains(pool, "breakfast in bed") || !contains(pool, "movie night pick") {
		t.Errorf("pool %v missing shared custom cards", pool)
	}

	// Disabling a default removes it for alice only.
	hidden := gacha.DefaultCards(gacha.RaritySSR)[0]
	store.disableDefault(alice.ID, gacha.RaritySSR, hidden)

	pool, err = resolver.ResolveTier(ctx, alice.ID, gacha.RaritySSR)
	if err != nil {
		t.Fatalf("ResolveTier() after disable error = %v", err)
	}
	if contains(pool, hidden) {
		t.Errorf("pool %v still contains disabled default %q", pool, hidden)
	}

	bobPool, err := resolver.ResolveTier(ctx, bob.ID, gacha.RaritySSR)
	if err != nil {
		t.Fatalf("ResolveTier() for partner error = %v", err)
	}
	if !contains(bobPool, hidden) {
		t.Errorf("partner pool %v lost a default the partner never disabled", bobPool)
	}

	// Re-enabling restores it.
	store.enableDefault(alice.ID, gacha.RaritySSR, hidden)
	pool, err = resolver.ResolveTier(ctx, alice.ID, gacha.RaritySSR)
	if err != nil {
		t.Fatalf("ResolveTier() after enable error = %v", err)
	}
	if !contains(pool, hidden) {
		t.Errorf("pool %v missing re-enabled default %q", pool, hidden)
	}
}

// Many concurrent draws racing for one approved request: exactly one
// wins, the rest see the no-approved-request state.
func TestConcurrentDrawsConsumeOnce(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	alice := store.addUser("alice")
	bob := store.addUser("bob")
	store.bind(alice.ID, bob.ID)

	consent := gacha.NewConsentManager(store)
	executor := gacha.NewExecutor(store, gacha.NewResolver(store), consent)

	request, err := consent.Request(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if err := consent.Approve(ctx, bob.ID, request.ID); err != nil {
		t.Fatalf("Approve() error = %v", err)
	}

	const callers = 16
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = executor.Draw(ctx, alice.ID)
		}(i)
	}
	wg.Wait()

	wins := 0
	for i, err := range errs {
		switch {
		case err == nil:
			wins++
		case repositories.IsInvalidState(err):
		default:
			t.Errorf("caller %d: unexpected error %v", i, err)
		}
	}
	if wins != 1 {
		t.Errorf("wins = %d, want exactly 1", wins)
	}
	if got := store.users[alice.ID].DrawCount; got != 1 {
		t.Errorf("draw count = %d, want 1", got)
	}
	if got := len(store.inventory[alice.ID]); got != 1 {
		t.Errorf("inventory size = %d, want 1", got)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
