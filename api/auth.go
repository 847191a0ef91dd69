package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Auth service paths.
const (
	loginPath    = "/auth/login"
	registerPath = "/auth/register"
	logoutPath   = "/auth/logout"
	refreshPath  = "/auth/refresh"
)

type credentials struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// Login exchanges a user id and password for an access token.
func (c *Client) Login(ctx context.Context, userID, password string) (string, error) {
	body, err := c.Request(ctx, loginPath, Options{
		Method: http.MethodPost,
		Body:   credentials{UserID: userID, Password: password},
	})
	if err != nil {
		return "", err
	}
	var parsed struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.AccessToken == "" {
		return "", fmt.Errorf("login response carries no access token")
	}
	return parsed.AccessToken, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, userID, password string) error {
	_, err := c.Request(ctx, registerPath, Options{
		Method: http.MethodPost,
		Body:   credentials{UserID: userID, Password: password},
	})
	return err
}

// Logout notifies the auth service that the session ends. Callers
// treat failure as non-fatal: local credential erasure never depends
// on this call.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.Request(ctx, logoutPath, Options{Method: http.MethodPost})
	return err
}
