// Package authapi is the client for the account backend. The backend itself
// is not deployed yet; the client exists so call sites have a stable surface,
// and nothing wires it into the composition root.
package authapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resty.dev/v3"

	"marketloop/internal/core"
)

const (
	loginPath       = "/v1/auth/login"
	registerPath    = "/v1/auth/register"
	logoutPath      = "/v1/auth/logout"
	currentUserPath = "/v1/auth/me"
)

var ErrUnauthorized = errors.New("unauthorized")

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Session struct {
	Token string    `json:"token"`
	User  core.User `json:"user"`
}

type Client struct {
	client *resty.Client
}

func NewClient(baseURL string) *Client {
	client := resty.NewWithTransportSettings(&resty.TransportSettings{
		DialerTimeout:         1 * time.Second,
		DialerKeepAlive:       1 * time.Second,
		IdleConnTimeout:       1 * time.Second,
		TLSHandshakeTimeout:   1 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: 1 * time.Second,
	}).SetBaseURL(baseURL)

	return &Client{client: client}
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) r(ctx context.Context) *resty.Request {
	return c.client.R().WithContext(ctx)
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*Session, error) {
	res, err := c.r(ctx).
		SetBody(creds).
		SetResult(&Session{}).
		Post(loginPath)
	if err != nil {
		return nil, err
	}
	if err := statusErr(res); err != nil {
		return nil, err
	}
	return res.Result().(*Session), nil
}

func (c *Client) Register(ctx context.Context, creds Credentials) (*Session, error) {
	res, err := c.r(ctx).
		SetBody(creds).
		SetResult(&Session{}).
		Post(registerPath)
	if err != nil {
		return nil, err
	}
	if err := statusErr(res); err != nil {
		return nil, err
	}
	return res.Result().(*Session), nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	res, err := c.r(ctx).
		SetAuthToken(token).
		Post(logoutPath)
	if err != nil {
		return err
	}
	return statusErr(res)
}

func (c *Client) CurrentUser(ctx context.Context, token string) (*core.User, error) {
	res, err := c.r(ctx).
		SetAuthToken(token).
		SetResult(&core.User{}).
		Get(currentUserPath)
	if err != nil {
		return nil, err
	}
	if err := statusErr(res); err != nil {
		return nil, err
	}
	return res.Result().(*core.User), nil
}

func statusErr(res *resty.Response) error {
	switch {
	case res.StatusCode() == 401:
		return ErrUnauthorized
	case res.IsError():
		return fmt.Errorf("auth request failed: %s", res.Status())
	default:
		return nil
	}
}
