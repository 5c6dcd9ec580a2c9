package handlers

import (
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/pairdraw/pairdraw/backend/config"
	"github.com/pairdraw/pairdraw/backend/models"
	"github.com/pairdraw/pairdraw/backend/utils"
	dbmodels "github.com/pairdraw/pairdraw/pairdraw/database/models"
)

// Login creates the user on first sight and returns it with the bound
// partner list.
func (a *WebApp) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "malformed JSON body", nil)
	}
	if req.Name == "" {
		return utils.SendBadRequest(c, "name is required", nil)
	}

	user, err := a.Users.Login(c.UserContext(), req.Name, req.Password)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	partners, err := a.partnerSummaries(c, user.ID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	return utils.SendSuccess(c, &models.LoginResponse{
		User:     models.NewUserResponse(user),
		Partners: partners,
	}, "logged in")
}

// SetAvatar stores an avatar URL reference on the user.
func (a *WebApp) SetAvatar(c *fiber.Ctx) error {
	var req models.SetAvatarRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "malformed JSON body", nil)
	}
	if req.UserID <= 0 {
		return utils.SendBadRequest(c, "userId is required", nil)
	}

	user, err := a.Users.SetAvatar(c.UserContext(), req.UserID, req.AvatarURL)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, models.NewUserResponse(user), "avatar updated")
}

// UploadAvatar accepts a multipart image, stores it in the Spaces
// bucket and records the resulting URL on the user.
func (a *WebApp) UploadAvatar(c *fiber.Ctx) error {
	if a.Spaces == nil {
		return utils.SendBadRequest(c, "avatar storage is not configured", nil)
	}

	userID, err := queryUserID(c)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	if _, err := a.Users.GetByID(c.UserContext(), userID); err != nil {
		return utils.SendDomainError(c, err)
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return utils.SendBadRequest(c, "avatar file is required", nil)
	}
	const maxAvatarSize = 5 * 1024 * 1024
	if fileHeader.Size > maxAvatarSize {
		return utils.SendBadRequest(c, "avatar too large (max 5MB)", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.SendInternalServerError(c, "failed to read upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return utils.SendInternalServerError(c, "failed to read upload")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	url, err := a.Spaces.UploadAvatar(c.UserContext(), userID, data, contentType)
	if err != nil {
		slog.Error("Avatar upload failed",
			slog.Int64("user_id", userID),
			slog.Any("error", err))
		return utils.SendInternalServerError(c, "avatar upload failed")
	}

	user, err := a.Users.SetAvatar(c.UserContext(), userID, url)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, models.NewUserResponse(user), "avatar uploaded")
}

// DeleteAvatar clears the avatar reference and, when the image lives in
// the Spaces bucket, removes the stored object too.
func (a *WebApp) DeleteAvatar(c *fiber.Ctx) error {
	userID, err := queryUserID(c)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	user, err := a.Users.GetByID(c.UserContext(), userID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	if a.Spaces != nil && user.AvatarURL == a.Spaces.AvatarURL(userID) {
		if err := a.Spaces.DeleteAvatar(c.UserContext(), userID); err != nil {
			slog.Error("Avatar delete failed",
				slog.Int64("user_id", userID),
				slog.Any("error", err))
			return utils.SendInternalServerError(c, "avatar delete failed")
		}
	}

	user, err = a.Users.SetAvatar(c.UserContext(), userID, "")
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, models.NewUserResponse(user), "avatar removed")
}

// GetStatus returns the user, partner summaries and the most recent
// consent requests the user is involved in.
func (a *WebApp) GetStatus(c *fiber.Ctx) error {
	userID, err := queryUserID(c)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	user, err := a.Users.GetByID(c.UserContext(), userID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	partners, err := a.partnerSummaries(c, userID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	requests, err := a.Requests.ListRecentForUser(c.UserContext(), userID, config.RecentRequestLimit)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	requestResponses := make([]*models.DrawRequestResponse, len(requests))
	for i, r := range requests {
		requestResponses[i] = models.NewDrawRequestResponse(r)
	}

	return utils.SendSuccess(c, &models.StatusResponse{
		User:     models.NewUserResponse(user),
		Partners: partners,
		Requests: requestResponses,
	}, "")
}

// ListPartners returns the user's direct partners.
func (a *WebApp) ListPartners(c *fiber.Ctx) error {
	userID, err := queryUserID(c)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	if _, err := a.Users.GetByID(c.UserContext(), userID); err != nil {
		return utils.SendDomainError(c, err)
	}

	partners, err := a.partnerSummaries(c, userID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, partners, "")
}

func (a *WebApp) partnerSummaries(c *fiber.Ctx, userID int64) ([]*models.UserResponse, error) {
	partnerIDs, err := a.Couples.ListPartnerIDs(c.UserContext(), userID)
	if err != nil {
		return nil, err
	}

	partners := make([]*dbmodels.User, 0, len(partnerIDs))
	for _, id := range partnerIDs {
		partner, err := a.Users.GetByID(c.UserContext(), id)
		if err != nil {
			return nil, err
		}
		partners = append(partners, partner)
	}
	return models.NewUserResponses(partners), nil
}

// Bind creates a symmetric binding with another user, looked up by
// display name. Idempotent: re-binding returns the existing partner.
func (a *WebApp) Bind(c *fiber.Ctx) error {
	var req models.BindRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "malformed JSON body", nil)
	}
	if req.UserID <= 0 || req.PartnerName == "" {
		return utils.SendBadRequest(c, "userId and partnerName are required", nil)
	}

	if _, err := a.Users.GetByID(c.UserContext(), req.UserID); err != nil {
		return utils.SendDomainError(c, err)
	}
	partner, err := a.Users.GetByName(c.UserContext(), req.PartnerName)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	if _, err := a.Couples.Bind(c.UserContext(), req.UserID, partner.ID); err != nil {
		return utils.SendDomainError(c, err)
	}

	return utils.SendSuccess(c, models.NewUserResponse(partner), "bound")
}
