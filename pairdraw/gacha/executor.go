package gacha

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/pairdraw/pairdraw/pairdraw/database/models"
	"github.com/pairdraw/pairdraw/pairdraw/database/repositories"
)

// Executor performs a consented draw: roll a tier, resolve the user's
// pool, pick uniformly, then persist the outcome in one transaction.
type Executor struct {
	store    Store
	resolver *Resolver
	consent  *ConsentManager

	mu  sync.Mutex
	rng *rand.Rand
}

// DrawResult is the outcome returned to the caller.
type DrawResult struct {
	Card Card
	User *models.User
}

func NewExecutor(store Store, resolver *Resolver, consent *ConsentManager) *Executor {
	return &Executor{
		store:    store,
		resolver: resolver,
		consent:  consent,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Draw consumes the user's oldest approved request and produces a card.
// When two draws race for the same request, the compare-and-swap on the
// used flag inside ExecuteDraw lets exactly one of them win; the loser
// retries against the next approved request, if any.
func (e *Executor) Draw(ctx context.Context, userID int64) (*DrawResult, error) {
	for {
		request, err := e.consent.Consumable(ctx, userID)
		if err != nil {
			return nil, err
		}

		card, err := e.pick(ctx, userID)
		if err != nil {
			return nil, err
		}

		user, err := e.store.ExecuteDraw(ctx, request.ID, userID, card)
		if repositories.IsConflict(err) {
			// Lost the race for this request; try the next one.
			continue
		}
		if err != nil {
			return nil, err
		}

		slog.Info("Draw executed",
			slog.Int64("user_id", userID),
			slog.Int64("request_id", request.ID),
			slog.String("rarity", string(card.Rarity)),
			slog.Int64("draw_count", user.DrawCount))
		return &DrawResult{Card: card, User: user}, nil
	}
}

// pick rolls a tier and selects one text uniformly from the resolved
// pool (or the tier's default fallback).
func (e *Executor) pick(ctx context.Context, userID int64) (Card, error) {
	e.mu.Lock()
	roll := e.rng.Float64()
	e.mu.Unlock()

	rarity := RollRarity(roll)
	pool, err := e.resolver.drawable(ctx, userID, rarity)
	if err != nil {
		return Card{}, err
	}

	e.mu.Lock()
	index := e.rng.Intn(len(pool))
	e.mu.Unlock()

	return Card{Rarity: rarity, Text: pool[index]}, nil
}
