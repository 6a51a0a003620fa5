package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/introapp/freshintro/internal/client/client"
)

// Login installs the session token on the API client. The token comes from
// the FRESHINTRO_TOKEN environment variable when set (convenient for
// development against the stub backend), otherwise it is prompted for
// without echo. Token validation is the backend's job; the only local check
// is an expiry warning.
func (a *App) Login(ctx context.Context) error {
	token := os.Getenv("FRESHINTRO_TOKEN")
	if token == "" {
		var err error
		token, err = GetSecret("Session token", os.Stdout)
		if err != nil {
			return fmt.Errorf("read session token: %w", err)
		}
	}
	if token == "" {
		return fmt.Errorf("a session token is required")
	}

	if client.TokenExpired(token) {
		fmt.Println("Note: this session token looks expired; requests will likely be rejected.")
	}

	a.api.SetSessionToken(token)
	return nil
}
