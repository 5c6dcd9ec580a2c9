package gacha_test

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/pairdraw/pairdraw/pairdraw/database/models"
	"github.com/pairdraw/pairdraw/pairdraw/database/repositories"
	"github.com/pairdraw/pairdraw/pairdraw/gacha"
	"github.com/pairdraw/pairdraw/pairdraw/gacha/mock"
)

func newExecutor(store gacha.Store) *gacha.Executor {
	resolver := gacha.NewResolver(store)
	consent := gacha.NewConsentManager(store)
	return gacha.NewExecutor(store, resolver, consent)
}

func expectPoolReads(store *mock.MockStore, userID int64) {
	store.EXPECT().
		ListDisabledTexts(gomock.Any(), userID, gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	store.EXPECT().
		ListPartnerIDs(gomock.Any(), userID).
		Return(nil, nil).
		AnyTimes()
	store.EXPECT().
		ListEnabledCustomTexts(gomock.Any(), userID, gomock.Any()).
		Return(nil, nil).
		AnyTimes()
}

func TestExecutorDraw(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	approved := &models.DrawRequest{
		ID: 7, RequesterID: 1, PartnerID: 2,
		RequesterConfirmed: true, PartnerConfirmed: true,
	}
	store.EXPECT().
		OldestApprovedRequest(gomock.Any(), int64(1)).
		Return(approved, nil)
	expectPoolReads(store, 1)
	store.EXPECT().
		ExecuteDraw(gomock.Any(), int64(7), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ int64, card gacha.Card) (*models.User, error) {
			if !gacha.IsDefaultCard(card.Rarity, card.Text) {
				t.Errorf("drew %q from tier %s, not a default card", card.Text, card.Rarity)
			}
			return &models.User{ID: 1, Name: "alice", DrawCount: 1}, nil
		})

	result, err := newExecutor(store).Draw(context.Background(), 1)
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if result.User.DrawCount != 1 {
		t.Errorf("Draw() draw count = %d, want 1", result.User.DrawCount)
	}
	if result.Card.Text == "" || !gacha.ValidRarity(string(result.Card.Rarity)) {
		t.Errorf("Draw() card = %+v, want populated card", result.Card)
	}
}

func TestExecutorDrawNoApprovedRequest(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().
		OldestApprovedRequest(gomock.Any(), int64(1)).
		Return(nil, &repositories.InvalidStateError{Entity: "draw_request", Reason: "no approved request to consume"})

	_, err := newExecutor(store).Draw(context.Background(), 1)
	if !repositories.IsInvalidState(err) {
		t.Errorf("Draw() error = %v, want InvalidStateError", err)
	}
}

// When a concurrent draw consumed the request first, the executor moves
// on to the next approved request instead of failing.
func TestExecutorDrawRetriesOnLostRace(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	first := &models.DrawRequest{ID: 7, RequesterID: 1, PartnerID: 2, RequesterConfirmed: true, PartnerConfirmed: true}
	second := &models.DrawRequest{ID: 8, RequesterID: 1, PartnerID: 2, RequesterConfirmed: true, PartnerConfirmed: true}

	gomock.InOrder(
		store.EXPECT().
			OldestApprovedRequest(gomock.Any(), int64(1)).
			Return(first, nil),
		store.EXPECT().
			OldestApprovedRequest(gomock.Any(), int64(1)).
			Return(second, nil),
	)
	expectPoolReads(store, 1)
	store.EXPECT().
		ExecuteDraw(gomock.Any(), int64(7), int64(1), gomock.Any()).
		Return(nil, &repositories.ConflictError{Entity: "draw_request", Field: "used", Value: int64(7)})
	store.EXPECT().
		ExecuteDraw(gomock.Any(), int64(8), int64(1), gomock.Any()).
		Return(&models.User{ID: 1, DrawCount: 2}, nil)

	result, err := newExecutor(store).Draw(context.Background(), 1)
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if result.User.DrawCount != 2 {
		t.Errorf("Draw() draw count = %d, want 2", result.User.DrawCount)
	}
}

// With every default in every tier disabled and nothing custom, the
// pool falls back to the unfiltered defaults: a consented draw must
// always yield a card.
func TestExecutorDrawEmptyPoolFallsBack(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	approved := &models.DrawRequest{ID: 9, RequesterID: 1, PartnerID: 2, RequesterConfirmed: true, PartnerConfirmed: true}
	store.EXPECT().
		OldestApprovedRequest(gomock.Any(), int64(1)).
		Return(approved, nil)
	store.EXPECT().
		ListDisabledTexts(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, rarity gacha.Rarity) ([]string, error) {
			return gacha.DefaultCards(rarity), nil
		}).
		AnyTimes()
	store.EXPECT().
		ListPartnerIDs(gomock.Any(), int64(1)).
		Return(nil, nil).
		AnyTimes()
	store.EXPECT().
		ListEnabledCustomTexts(gomock.Any(), int64(1), gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	store.EXPECT().
		ExecuteDraw(gomock.Any(), int64(9), int64(1), gomock.Any()).
		Return(&models.User{ID: 1, DrawCount: 1}, nil)

	result, err := newExecutor(store).Draw(context.Background(), 1)
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if !gacha.IsDefaultCard(result.Card.Rarity, result.Card.Text) {
		t.Errorf("fallback drew %q from tier %s, want a default card", result.Card.Text, result.Card.Rarity)
	}
}
