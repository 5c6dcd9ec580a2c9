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

func TestConsentRequest(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().
		IsBound(gomock.Any(), int64(1), int64(2)).
		Return(true, nil)
	store.EXPECT().
		CreateRequest(gomock.Any(), int64(1), int64(2)).
		Return(&models.DrawRequest{ID: 7, RequesterID: 1, PartnerID: 2, RequesterConfirmed: true}, nil)

	consent := gacha.NewConsentManager(store)
	request, err := consent.Request(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if request.ID != 7 || request.Status() != models.DrawRequestPending {
		t.Errorf("Request() = id %d status %s, want id 7 status pending", request.ID, request.Status())
	}
}

func TestConsentRequestUnboundPartner(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().
		IsBound(gomock.Any(), int64(1), int64(9)).
		Return(false, nil)

	consent := gacha.NewConsentManager(store)
	_, err := consent.Request(context.Background(), 1, 9)
	if !repositories.IsInvalidArgument(err) {
		t.Errorf("Request() error = %v, want InvalidArgumentError", err)
	}
}

func TestConsentApprove(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().
		GetRequest(gomock.Any(), int64(7)).
		Return(&models.DrawRequest{ID: 7, RequesterID: 1, PartnerID: 2, RequesterConfirmed: true}, nil)
	store.EXPECT().
		ApproveRequest(gomock.Any(), int64(7)).
		Return(nil)

	consent := gacha.NewConsentManager(store)
	if err := consent.Approve(context.Background(), 2, 7); err != nil {
		t.Errorf("Approve() error = %v", err)
	}
}

// Only the named partner may approve. Not even the requester can.
func TestConsentApproveWrongCaller(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().
		GetRequest(gomock.Any(), int64(7)).
		Return(&models.DrawRequest{ID: 7, RequesterID: 1, PartnerID: 2, RequesterConfirmed: true}, nil).
		Times(2)

	consent := gacha.NewConsentManager(store)
	if err := consent.Approve(context.Background(), 1, 7); !repositories.IsForbidden(err) {
		t.Errorf("Approve() by requester error = %v, want ForbiddenError", err)
	}
	if err := consent.Approve(context.Background(), 3, 7); !repositories.IsForbidden(err) {
		t.Errorf("Approve() by stranger error = %v, want ForbiddenError", err)
	}
}

func TestConsentApproveConsumedRequest(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().
		GetRequest(gomock.Any(), int64(7)).
		Return(&models.DrawRequest{
			ID: 7, RequesterID: 1, PartnerID: 2,
			RequesterConfirmed: true, PartnerConfirmed: true, Used: true,
		}, nil)

	consent := gacha.NewConsentManager(store)
	if err := consent.Approve(context.Background(), 2, 7); !repositories.IsConflict(err) {
		t.Errorf("Approve() on consumed request error = %v, want ConflictError", err)
	}
}

func TestConsentConsumableNoneApproved(t *testing.T) {
	store := mock.NewMockStore(gomock.NewController(t))
	store.EXPECT().
		OldestApprovedRequest(gomock.Any(), int64(1)).
		Return(nil, &repositories.InvalidStateError{Entity: "draw_request", Reason: "no approved request to consume"})

	consent := gacha.NewConsentManager(store)
	if _, err := consent.Consumable(context.Background(), 1); !repositories.IsInvalidState(err) {
		t.Errorf("Consumable() error = %v, want InvalidStateError", err)
	}
}
