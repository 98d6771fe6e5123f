// Package authapi consumes a DummyJSON-style credential verifier.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"rentacar/internal/domain/user"
	"rentacar/internal/infra"
	"rentacar/internal/pkg/config"
	"rentacar/internal/pkg/errs"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns nil when no auth base URL is configured; callers treat a nil
// client as "provider absent" and use the demo users fallback.
func New(cfg config.UpstreamConfig) *Client {
	if cfg.AuthBaseURL == "" {
		return nil
	}
	return &Client{
		baseURL: cfg.AuthBaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse mirrors DummyJSON's /auth/login body. The id arrives as a
// JSON number.
type loginResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	AccessToken string `json:"accessToken"`
}

// Login verifies credentials against the external provider. The identifier
// is passed through as the provider's username field; non-2xx means the
// credentials were rejected.
func (c *Client) Login(ctx context.Context, identifier, password string) (user.User, error) {
	payload, err := json.Marshal(loginRequest{Username: identifier, Password: password})
	if err != nil {
		return user.User{}, errs.Wrap(err, "failed to encode login request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(payload))
	if err != nil {
		return user.User{}, errs.Wrap(err, "failed to build login request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return user.User{}, infra.WrapInfraErr("auth provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return user.User{}, infra.WrapInfraErr("auth provider rejected credentials", nil, infra.KindUnauthenticated)
	}

	var body loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return user.User{}, infra.WrapInfraErr("unexpected login payload shape", err, infra.KindMalformedResponse)
	}

	return user.User{
		ID:       strconv.FormatInt(body.ID, 10),
		Name:     user.FullName(body.FirstName, body.LastName, body.Username),
		Username: body.Username,
		Email:    body.Email,
		Phone:    body.Phone,
	}, nil
}
