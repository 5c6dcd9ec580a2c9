package gacha_test

import (
	"context"
	"sync"

	"github.com/pairdraw/pairdraw/pairdraw/database/models"
	"github.com/pairdraw/pairdraw/pairdraw/database/repositories"
	"github.com/pairdraw/pairdraw/pairdraw/gacha"
)

// memStore is an in-memory Store with the same locking semantics as
// the SQL implementation: consuming a request is atomic, so concurrent
// draws race for it and exactly one wins.
type memStore struct {
	mu sync.Mutex

	users    map[int64]*models.User
	couples  [][2]int64
	requests map[int64]*models.DrawRequest
	nextID   int64

	// ownerID -> rarity -> enabled custom texts
	custom map[int64]map[gacha.Rarity][]string
	// userID -> rarity -> disabled default texts
	disabled map[int64]map[gacha.Rarity][]string

	logs      []gacha.Card
	inventory map[int64][]gacha.Card
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[int64]*models.User),
		requests:  make(map[int64]*models.DrawRequest),
		nextID:    1,
		custom:    make(map[int64]map[gacha.Rarity][]string),
		disabled:  make(map[int64]map[gacha.Rarity][]string),
		inventory: make(map[int64][]gacha.Card),
	}
}

func (s *memStore) addUser(name string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &models.User{ID: s.nextID, Name: name}
	s.nextID++
	s.users[u.ID] = u
	return u
}

func (s *memStore) bind(a, b int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.couples = append(s.couples, [2]int64{a, b})
}

func (s *memStore) addCustom(ownerID int64, rarity gacha.Rarity, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.custom[ownerID] == nil {
		s.custom[ownerID] = make(map[gacha.Rarity][]string)
	}
	s.custom[ownerID][rarity] = append(s.custom[ownerID][rarity], text)
}

func (s *memStore) disableDefault(userID int64, rarity gacha.Rarity, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disabled[userID] == nil {
		s.disabled[userID] = make(map[gacha.Rarity][]string)
	}
	s.disabled[userID][rarity] = append(s.disabled[userID][rarity], text)
}

func (s *memStore) enableDefault(userID int64, rarity gacha.Rarity, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.disabled[userID][rarity][:0]
	for _, t := range s.disabled[userID][rarity] {
		if t != text {
			kept = append(kept, t)
		}
	}
	s.disabled[userID][rarity] = kept
}

func (s *memStore) IsBound(_ context.Context, userID, partnerID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.couples {
		if (c[0] == userID && c[1] == partnerID) || (c[0] == partnerID && c[1] == userID) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) ListPartnerIDs(_ context.Context, userID int64) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var partners []int64
	for _, c := range s.couples {
		switch userID {
		case c[0]:
			partners = append(partners, c[1])
		case c[1]:
			partners = append(partners, c[0])
		}
	}
	return partners, nil
}

func (s *memStore) CreateRequest(_ context.Context, requesterID, partnerID int64) (*models.DrawRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := &models.DrawRequest{
		ID:                 s.nextID,
		RequesterID:        requesterID,
		PartnerID:          partnerID,
		RequesterConfirmed: true,
	}
	s.nextID++
	s.requests[r.ID] = r
	return r, nil
}

func (s *memStore) GetRequest(_ context.Context, id int64) (*models.DrawRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	if !ok {
		return nil, &repositories.NotFoundError{Entity: "draw_request", ID: id}
	}
	out := *r
	return &out, nil
}

func (s *memStore) ApproveRequest(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	if !ok {
		return &repositories.NotFoundError{Entity: "draw_request", ID: id}
	}
	if r.Used {
		return &repositories.ConflictError{Entity: "draw_request", Field: "used", Value: id}
	}
	r.PartnerConfirmed = true
	return nil
}

func (s *memStore) OldestApprovedRequest(_ context.Context, requesterID int64) (*models.DrawRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var oldest *models.DrawRequest
	for _, r := range s.requests {
		if r.RequesterID != requesterID || r.Used || !r.RequesterConfirmed || !r.PartnerConfirmed {
			continue
		}
		if oldest == nil || r.ID < oldest.ID {
			oldest = r
		}
	}
	if oldest == nil {
		return nil, &repositories.InvalidStateError{Entity: "draw_request", Reason: "no approved request to consume"}
	}
	out := *oldest
	return &out, nil
}

func (s *memStore) ListDisabledTexts(_ context.Context, userID int64, rarity gacha.Rarity) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.disabled[userID][rarity]...), nil
}

func (s *memStore) ListEnabledCustomTexts(_ context.Context, ownerID int64, rarity gacha.Rarity) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.custom[ownerID][rarity]...), nil
}

func (s *memStore) ExecuteDraw(_ context.Context, requestID, userID int64, card gacha.Card) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[requestID]
	if !ok {
		return nil, &repositories.NotFoundError{Entity: "draw_request", ID: requestID}
	}
	if r.Used {
		return nil, &repositories.ConflictError{Entity: "draw_request", Field: "used", Value: requestID}
	}
	r.Used = true

	user := s.users[userID]
	user.DrawCount++
	s.logs = append(s.logs, card)
	s.inventory[userID] = append(s.inventory[userID], card)

	out := *user
	return &out, nil
}
