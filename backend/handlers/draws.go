package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pairdraw/pairdraw/backend/config"
	"github.com/pairdraw/pairdraw/backend/models"
	"github.com/pairdraw/pairdraw/backend/utils"
)

// RequestDraw opens a pending consent request against a bound partner.
func (a *WebApp) RequestDraw(c *fiber.Ctx) error {
	var req models.RequestDrawRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "malformed JSON body", nil)
	}
	if req.UserID <= 0 || req.PartnerID <= 0 {
		return utils.SendBadRequest(c, "userId and partnerId are required", nil)
	}

	request, err := a.Consent.Request(c.UserContext(), req.UserID, req.PartnerID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendCreated(c, models.NewDrawRequestResponse(request), "draw requested")
}

// ApproveDraw lets the named partner approve a pending request.
func (a *WebApp) ApproveDraw(c *fiber.Ctx) error {
	var req models.ApproveDrawRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "malformed JSON body", nil)
	}
	if req.UserID <= 0 || req.RequestID <= 0 {
		return utils.SendBadRequest(c, "userId and requestId are required", nil)
	}

	if err := a.Consent.Approve(c.UserContext(), req.UserID, req.RequestID); err != nil {
		return utils.SendDomainError(c, err)
	}

	request, err := a.Requests.GetByID(c.UserContext(), req.RequestID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, models.NewDrawRequestResponse(request), "draw approved")
}

// Draw consumes the caller's oldest approved request and hands out a
// card from their resolved pool.
func (a *WebApp) Draw(c *fiber.Ctx) error {
	var req models.DrawRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "malformed JSON body", nil)
	}
	if req.UserID <= 0 {
		return utils.SendBadRequest(c, "userId is required", nil)
	}

	result, err := a.Executor.Draw(c.UserContext(), req.UserID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	return utils.SendSuccess(c, &models.DrawResponse{
		Card: &models.CardResponse{
			Rarity: string(result.Card.Rarity),
			Text:   result.Card.Text,
		},
		User: models.NewUserResponse(result.User),
	}, "draw executed")
}

// ListDrawLogs returns the user's draw history, newest first.
func (a *WebApp) ListDrawLogs(c *fiber.Ctx) error {
	userID, err := queryUserID(c)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	logs, err := a.DrawLogs.ListByUser(c.UserContext(), userID, config.DrawLogLimit)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	total, err := a.DrawLogs.CountByUser(c.UserContext(), userID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	out := make([]*models.DrawLogResponse, len(logs))
	for i, l := range logs {
		out[i] = models.NewDrawLogResponse(l)
	}
	return utils.SendSuccess(c, &models.DrawLogListResponse{Logs: out, Total: total}, "")
}
