package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/pairdraw/pairdraw/backend/config"
	"github.com/pairdraw/pairdraw/backend/utils"
	"github.com/pairdraw/pairdraw/pairdraw/database"
	"github.com/pairdraw/pairdraw/pairdraw/database/repositories"
	"github.com/pairdraw/pairdraw/pairdraw/gacha"
	"github.com/pairdraw/pairdraw/pairdraw/services"
)

// WebApp bundles the dependencies of the HTTP surface.
type WebApp struct {
	Config *config.WebAppConfig
	DB     *database.DB

	Users         repositories.UserRepository
	Couples       repositories.CoupleRepository
	Requests      repositories.DrawRequestRepository
	DrawLogs      repositories.DrawLogRepository
	UserCards     repositories.UserCardRepository
	CustomCards   repositories.CustomCardRepository
	DisabledCards repositories.DisabledCardRepository

	Consent  *gacha.ConsentManager
	Executor *gacha.Executor

	// Nil when no Spaces bucket is configured; avatar upload is then
	// unavailable and setAvatar only accepts external URLs.
	Spaces *services.SpacesService

	Version string
	Commit  string
}

// HealthCheck pings both database handles and reports basic counters.
func (a *WebApp) HealthCheck(c *fiber.Ctx) error {
	if err := a.DB.Ping(c.UserContext()); err != nil {
		return utils.SendError(c, fiber.StatusServiceUnavailable,
			"UNHEALTHY", "database unreachable", nil)
	}
	userCount, err := a.Users.GetUserCount(c.UserContext())
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{
		"status":  "ok",
		"version": a.Version,
		"commit":  a.Commit,
		"users":   userCount,
	}, "healthy")
}

// queryUserID reads and validates the userId query parameter.
func queryUserID(c *fiber.Ctx) (int64, error) {
	return queryID(c, "userId")
}

func queryID(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, &repositories.InvalidArgumentError{Field: name, Reason: "missing"}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &repositories.InvalidArgumentError{Field: name, Reason: "must be a positive integer"}
	}
	return id, nil
}
