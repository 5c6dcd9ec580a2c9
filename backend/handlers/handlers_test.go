package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/pairdraw/pairdraw/pairdraw/database/repositories"
)

func TestQueryUserID(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    int64
		wantErr bool
	}{
		{"Valid", "userId=42", 42, false},
		{"Missing", "", 0, true},
		{"Zero", "userId=0", 0, true},
		{"Negative", "userId=-3", 0, true},
		{"NotANumber", "userId=alice", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			var got int64
			var gotErr error
			app.Get("/", func(c *fiber.Ctx) error {
				got, gotErr = queryUserID(c)
				return c.SendStatus(http.StatusOK)
			})

			target := "/"
			if tt.query != "" {
				target += "?" + tt.query
			}
			if _, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil)); err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}

			if (gotErr != nil) != tt.wantErr {
				t.Fatalf("queryUserID() error = %v, wantErr %v", gotErr, tt.wantErr)
			}
			if tt.wantErr && !repositories.IsInvalidArgument(gotErr) {
				t.Errorf("queryUserID() error = %v, want InvalidArgumentError", gotErr)
			}
			if got != tt.want {
				t.Errorf("queryUserID() = %d, want %d", got, tt.want)
			}
		})
	}
}
