package api

import (
	"context"
	"net/http"

	"mrconsole/internal/cli/model"
)

// UsersClient talks to the user-management service.
type UsersClient struct {
	c *Client
}

func NewUsersClient(c *Client) *UsersClient {
	return &UsersClient{c: c}
}

// Login exchanges credentials for a bearer token and user record. The call
// itself is unauthenticated; with no stored session the request simply goes
// out without an Authorization header.
func (u *UsersClient) Login(ctx context.Context, email, password string) (model.LoginResponse, error) {
	var out model.LoginResponse
	err := u.c.doJSON(ctx, http.MethodPost, "/users/login", model.LoginRequest{Email: email, Password: password}, &out)
	return out, err
}

// Register creates a new account, optionally creating its organization.
func (u *UsersClient) Register(ctx context.Context, req model.RegisterRequest) error {
	return u.c.doJSON(ctx, http.MethodPost, "/users/register", req, nil)
}

// ResendVerification asks the backend to re-send the verification email.
func (u *UsersClient) ResendVerification(ctx context.Context, email string) error {
	payload := struct {
		Email string `json:"email"`
	}{Email: email}
	return u.c.doJSON(ctx, http.MethodPost, "/users/resend-verification", payload, nil)
}

// Me fetches the current user's profile.
func (u *UsersClient) Me(ctx context.Context) (model.User, error) {
	var out model.User
	err := u.c.doJSON(ctx, http.MethodGet, "/users/me", nil, &out)
	return out, err
}

// UpdateUsername changes the profile's display name.
func (u *UsersClient) UpdateUsername(ctx context.Context, username string) error {
	payload := struct {
		Username string `json:"username"`
	}{Username: username}
	return u.c.doJSON(ctx, http.MethodPut, "/users/me", payload, nil)
}

// UpdateOrganization renames the user's organization.
func (u *UsersClient) UpdateOrganization(ctx context.Context, name string) error {
	payload := struct {
		Name string `json:"name"`
	}{Name: name}
	return u.c.doJSON(ctx, http.MethodPut, "/organizations", payload, nil)
}

// GetSettings fetches the remotely stored display preferences.
func (u *UsersClient) GetSettings(ctx context.Context) (model.UserSettings, error) {
	var out model.UserSettings
	err := u.c.doJSON(ctx, http.MethodGet, "/users/settings", nil, &out)
	return out, err
}

// PutSettings pushes updated display preferences.
func (u *UsersClient) PutSettings(ctx context.Context, s model.UserSettings) (model.UserSettings, error) {
	var out model.UserSettings
	err := u.c.doJSON(ctx, http.MethodPut, "/users/settings", s, &out)
	return out, err
}

// ResetSettings restores the backend-side defaults.
func (u *UsersClient) ResetSettings(ctx context.Context) (model.UserSettings, error) {
	var out model.UserSettings
	err := u.c.doJSON(ctx, http.MethodPost, "/users/settings/reset", nil, &out)
	return out, err
}
