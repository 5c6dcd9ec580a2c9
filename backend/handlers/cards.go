package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilm/fuzzy"

	"github.com/pairdraw/pairdraw/backend/models"
	"github.com/pairdraw/pairdraw/backend/utils"
	dbmodels "github.com/pairdraw/pairdraw/pairdraw/database/models"
	"github.com/pairdraw/pairdraw/pairdraw/database/repositories"
	"github.com/pairdraw/pairdraw/pairdraw/gacha"
)

// ListCards returns the caller's card inventory, unused first.
func (a *WebApp) ListCards(c *fiber.Ctx) error {
	userID, err := queryUserID(c)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	cards, err := a.UserCards.ListByUser(c.UserContext(), userID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	out := make([]*models.UserCardResponse, len(cards))
	for i, card := range cards {
		out[i] = models.NewUserCardResponse(card)
	}
	return utils.SendSuccess(c, out, "")
}

// ListPartnerCards lets a user view a bound partner's inventory. An
// unbound pair gets a forbidden, not an empty list, so the distinction
// is visible to the client.
func (a *WebApp) ListPartnerCards(c *fiber.Ctx) error {
	userID, err := queryUserID(c)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	partnerID, err := queryID(c, "partnerId")
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	bound, err := a.Couples.IsBound(c.UserContext(), userID, partnerID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	if !bound {
		return utils.SendForbidden(c, "not bound to this partner")
	}

	cards, err := a.UserCards.ListByUser(c.UserContext(), partnerID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	out := make([]*models.UserCardResponse, len(cards))
	for i, card := range cards {
		out[i] = models.NewUserCardResponse(card)
	}
	return utils.SendSuccess(c, out, "")
}

// UseCard redeems a card from the caller's inventory.
func (a *WebApp) UseCard(c *fiber.Ctx) error {
	var req models.UseCardRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "malformed JSON body", nil)
	}
	if req.UserID <= 0 || req.CardID <= 0 {
		return utils.SendBadRequest(c, "userId and cardId are required", nil)
	}

	if err := a.UserCards.MarkUsed(c.UserContext(), req.UserID, req.CardID); err != nil {
		return utils.SendDomainError(c, err)
	}

	card, err := a.UserCards.GetByID(c.UserContext(), req.CardID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, models.NewUserCardResponse(card), "card used")
}

// ListCustomCards returns the caller's custom cards, optionally
// filtered by a fuzzy text query.
func (a *WebApp) ListCustomCards(c *fiber.Ctx) error {
	userID, err := queryUserID(c)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	cards, err := a.CustomCards.ListByOwner(c.UserContext(), userID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	if query := strings.TrimSpace(c.Query("q")); query != "" {
		cards = fuzzyFilterCards(cards, query)
	}

	out := make([]*models.CustomCardResponse, len(cards))
	for i, card := range cards {
		out[i] = models.NewCustomCardResponse(card)
	}
	return utils.SendSuccess(c, out, "")
}

func fuzzyFilterCards(cards []*dbmodels.CustomCard, query string) []*dbmodels.CustomCard {
	texts := make([]string, len(cards))
	for i, card := range cards {
		texts[i] = card.Text
	}
	matches := fuzzy.Find(query, texts)

	filtered := make([]*dbmodels.CustomCard, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, cards[m.Index])
	}
	return filtered
}

// AddCustomCard creates an enabled custom card owned by the caller.
func (a *WebApp) AddCustomCard(c *fiber.Ctx) error {
	var req models.AddCustomCardRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "malformed JSON body", nil)
	}
	if req.UserID <= 0 {
		return utils.SendBadRequest(c, "userId is required", nil)
	}
	if !gacha.ValidRarity(req.Rarity) {
		return utils.SendBadRequest(c, "rarity must be one of SSR, SR, R, N", nil)
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return utils.SendBadRequest(c, "text must not be empty", nil)
	}

	if _, err := a.Users.GetByID(c.UserContext(), req.UserID); err != nil {
		return utils.SendDomainError(c, err)
	}

	card, err := a.CustomCards.Create(c.UserContext(), req.UserID, req.Rarity, text)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendCreated(c, models.NewCustomCardResponse(card), "custom card added")
}

// DeleteCustomCard disables one of the caller's own custom cards.
func (a *WebApp) DeleteCustomCard(c *fiber.Ctx) error {
	var req models.DeleteCustomCardRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "malformed JSON body", nil)
	}
	if req.UserID <= 0 || req.CardID <= 0 {
		return utils.SendBadRequest(c, "userId and cardId are required", nil)
	}

	if err := a.CustomCards.SoftDelete(c.UserContext(), req.UserID, req.CardID); err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"cardId": req.CardID}, "custom card removed")
}

// GetCardPool returns the caller's editable pool view per tier: every
// default card with its disabled flag, then the caller's and each
// partner's enabled custom cards with owner attribution.
func (a *WebApp) GetCardPool(c *fiber.Ctx) error {
	userID, err := queryUserID(c)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	ctx := c.UserContext()

	disabled, err := a.DisabledCards.ListByUser(ctx, userID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	hidden := make(map[string]map[string]bool, len(gacha.Rarities()))
	for _, entry := range disabled {
		if hidden[entry.Rarity] == nil {
			hidden[entry.Rarity] = make(map[string]bool)
		}
		hidden[entry.Rarity][entry.Text] = true
	}

	partnerIDs, err := a.Couples.ListPartnerIDs(ctx, userID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	owners := append([]int64{userID}, partnerIDs...)

	customByRarity := make(map[string][]models.PoolEntry)
	for _, ownerID := range owners {
		cards, err := a.CustomCards.ListByOwner(ctx, ownerID)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		for _, card := range cards {
			if !card.Enabled {
				continue
			}
			customByRarity[card.Rarity] = append(customByRarity[card.Rarity], models.PoolEntry{
				Text:    card.Text,
				Source:  "custom",
				OwnerID: card.OwnerID,
				CardID:  card.ID,
			})
		}
	}

	pool := make(models.CardPoolResponse, len(gacha.Rarities()))
	for _, rarity := range gacha.Rarities() {
		entries := make([]models.PoolEntry, 0)
		for _, text := range gacha.DefaultCards(rarity) {
			entries = append(entries, models.PoolEntry{
				Text:     text,
				Source:   "default",
				Disabled: hidden[string(rarity)][text],
			})
		}
		entries = append(entries, customByRarity[string(rarity)]...)
		pool[rarity] = entries
	}

	return utils.SendSuccess(c, pool, "")
}

// DisableDefaultCard hides one default card from the caller's pool.
func (a *WebApp) DisableDefaultCard(c *fiber.Ctx) error {
	req, err := a.parseToggleRequest(c)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	if err := a.DisabledCards.Disable(c.UserContext(), req.UserID, req.Rarity, req.Text); err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"rarity": req.Rarity, "text": req.Text}, "default card disabled")
}

// EnableDefaultCard removes a previous disable for the caller.
func (a *WebApp) EnableDefaultCard(c *fiber.Ctx) error {
	req, err := a.parseToggleRequest(c)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	if err := a.DisabledCards.Enable(c.UserContext(), req.UserID, req.Rarity, req.Text); err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"rarity": req.Rarity, "text": req.Text}, "default card enabled")
}

// parseToggleRequest validates the shared disable/enable payload. Only
// exact default catalog entries may be toggled.
func (a *WebApp) parseToggleRequest(c *fiber.Ctx) (*models.ToggleDefaultCardRequest, error) {
	var req models.ToggleDefaultCardRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, &repositories.InvalidArgumentError{Field: "body", Reason: "malformed JSON body"}
	}
	if req.UserID <= 0 {
		return nil, &repositories.InvalidArgumentError{Field: "userId", Reason: "missing"}
	}
	if !gacha.ValidRarity(req.Rarity) {
		return nil, &repositories.InvalidArgumentError{Field: "rarity", Reason: "must be one of SSR, SR, R, N"}
	}
	if !gacha.IsDefaultCard(gacha.Rarity(req.Rarity), req.Text) {
		return nil, &repositories.InvalidArgumentError{Field: "text", Reason: "not a default card in this tier"}
	}
	return &req, nil
}

// ListDisabledDefaultCards returns the caller's current disables.
func (a *WebApp) ListDisabledDefaultCards(c *fiber.Ctx) error {
	userID, err := queryUserID(c)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	entries, err := a.DisabledCards.ListByUser(c.UserContext(), userID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	out := make([]*models.DisabledCardResponse, len(entries))
	for i, entry := range entries {
		out[i] = &models.DisabledCardResponse{Rarity: entry.Rarity, Text: entry.Text}
	}
	return utils.SendSuccess(c, out, "")
}
