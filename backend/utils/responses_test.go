package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/pairdraw/pairdraw/backend/models"
	"github.com/pairdraw/pairdraw/pairdraw/database/repositories"
)

func TestSendDomainErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "InvalidArgument",
			err:        &repositories.InvalidArgumentError{Field: "userId", Reason: "missing"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ARGUMENT",
		},
		{
			name:       "InvalidState",
			err:        &repositories.InvalidStateError{Entity: "draw_request", Reason: "no approved request to consume"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_STATE",
		},
		{
			name:       "InvalidCredential",
			err:        &repositories.InvalidCredentialError{Name: "alice"},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIAL",
		},
		{
			name:       "Forbidden",
			err:        &repositories.ForbiddenError{Action: "approve draw request", Reason: "caller is not the request's partner"},
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "NotFound",
			err:        &repositories.NotFoundError{Entity: "user", ID: int64(5)},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "Conflict",
			err:        &repositories.ConflictError{Entity: "draw_request", Field: "used", Value: int64(7)},
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "UntypedError",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
		{
			name:       "WrappedError",
			err:        &repositories.RepositoryError{Operation: "get", Entity: "user", Err: &repositories.NotFoundError{Entity: "user", ID: int64(5)}},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return SendDomainError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			body, _ := io.ReadAll(resp.Body)
			var envelope models.APIResponse
			if err := json.Unmarshal(body, &envelope); err != nil {
				t.Fatalf("invalid JSON body %q: %v", body, err)
			}
			if envelope.Success {
				t.Error("success = true on an error response")
			}
			if envelope.Error == nil || envelope.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", envelope.Error, tt.wantCode)
			}
		})
	}
}

// Untyped errors must never leak their text to clients.
func TestSendDomainErrorHidesInternalDetail(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return SendDomainError(c, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var envelope models.APIResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if envelope.Error.Message != "internal error" {
		t.Errorf("message = %q, want generic internal error", envelope.Error.Message)
	}
}

func TestGetIPAddress(t *testing.T) {
	app := fiber.New()
	var got string
	app.Get("/", func(c *fiber.Ctx) error {
		got = GetIPAddress(c)
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	if _, err := app.Test(req); err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if got != "203.0.113.9" {
		t.Errorf("GetIPAddress() = %q, want X-Forwarded-For value", got)
	}
}
