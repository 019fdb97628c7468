package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cinebook-cli/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CheckUser asks the backend whether the attached session is still valid and
// returns the signed-in user. A 401 means the session is anonymous, which
// callers treat as a normal outcome rather than a failure.
func (c *Client) CheckUser(ctx context.Context) (model.User, error) {
	endpoint := fmt.Sprintf("%s/user/check-user", c.baseURL)

	var payload dataEnvelope[model.User]
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return model.User{}, err
	}
	if payload.Data.Id == "" {
		return model.User{}, errors.New("no active session")
	}
	return payload.Data, nil
}

// Login authenticates with email and password. On success the session cookie
// from the response is attached to the client and returned so callers can
// persist it across runs.
func (c *Client) Login(ctx context.Context, email string, password string) (model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return model.User{}, "", errors.New("email and password are required")
	}
	endpoint := fmt.Sprintf("%s/user/login", c.baseURL)

	req, err := c.newRequest(ctx, "POST", endpoint, loginRequest{Email: email, Password: password})
	if err != nil {
		return model.User{}, "", err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return model.User{}, "", fmt.Errorf("request failed: %w", err)
	}
	cookie := sessionCookieFrom(res.Header.Values("Set-Cookie"))

	var payload dataEnvelope[model.User]
	if err := c.handleResponse(res, endpoint, &payload); err != nil {
		return model.User{}, "", err
	}
	if cookie != "" {
		c.SetSessionCookie(cookie)
	}
	return payload.Data, cookie, nil
}

// Logout invalidates the server session and drops the local cookie either way.
func (c *Client) Logout(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/user/logout", c.baseURL)
	err := c.postJSON(ctx, endpoint, nil, nil)
	c.SetSessionCookie("")
	return err
}

// sessionCookieFrom keeps only the name=value pair of the first Set-Cookie
// header; attributes like Path and HttpOnly are not replayed.
func sessionCookieFrom(headers []string) string {
	for _, header := range headers {
		pair, _, _ := strings.Cut(header, ";")
		pair = strings.TrimSpace(pair)
		if pair != "" {
			return pair
		}
	}
	return ""
}
