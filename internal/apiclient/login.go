package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/domain/auth"
	apierrors "github.com/M2-SYNDICATE/Atomichack3.0/internal/errors"
)

// loginRequest is the credential-issuance request body.
type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// loginResponse is the server's login acknowledgement. The role and full
// name are trusted verbatim; the credential's own claims are never
// cross-checked (integrity is the issuer's job).
type loginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	FullName    string    `json:"full_name"`
	Role        auth.Role `json:"role"`
}

// Login requests a credential for the given account, persists it in the
// credential store, and returns the server-declared profile.
func (c *Client) Login(ctx context.Context, login, password string) (auth.UserProfile, error) {
	body, err := json.Marshal(loginRequest{Login: login, Password: password})
	if err != nil {
		return auth.UserProfile{}, err
	}

	var resp loginResponse
	err = c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/login",
		header: jsonHeader(),
		body:   bytes.NewReader(body),
	}, &resp)
	if err != nil {
		return auth.UserProfile{}, err
	}
	if resp.AccessToken == "" {
		return auth.UserProfile{}, apierrors.InvalidResponse("Invalid response format: login response carries no access token")
	}

	if err := c.creds.SetToken(resp.AccessToken); err != nil {
		return auth.UserProfile{}, err
	}

	return auth.UserProfile{
		Login:    login,
		FullName: resp.FullName,
		Role:     resp.Role,
	}, nil
}

// Logout discards the stored credential. Purely local; the backend keeps
// no session to tear down.
func (c *Client) Logout() error {
	return c.creds.RemoveToken()
}

// Authenticated reports whether a stored, unexpired credential exists.
func (c *Client) Authenticated() bool {
	return auth.Authenticated(c.creds, c.now())
}
