// Package rentalapi consumes the mock CRUD API that persists reservations
// and demo user accounts.
package rentalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rentacar/internal/domain/user"
	"rentacar/internal/infra"
	"rentacar/internal/pkg/config"
	"rentacar/internal/pkg/errs"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL: cfg.RentalBaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// Reservation is the record shape persisted by the external API. Instants
// are ISO 8601 strings; the API assigns the id.
type Reservation struct {
	ID         string  `json:"id,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	Vehicle    string  `json:"vehicle"`
	Year       int     `json:"year"`
	Color      string  `json:"color"`
	DailyRate  float64 `json:"dailyRate"`
	Pickup     string  `json:"pickup"`
	Return     string  `json:"return"`
	CardNumber string  `json:"cardNumber"`
	UserID     string  `json:"userId"`
}

// PickupTime parses the pickup instant; zero time when unparsable.
func (r Reservation) PickupTime() time.Time {
	t, _ := time.Parse(time.RFC3339, r.Pickup)
	return t
}

// ReturnTime parses the return instant; zero time when unparsable.
func (r Reservation) ReturnTime() time.Time {
	t, _ := time.Parse(time.RFC3339, r.Return)
	return t
}

// CreateReservation persists a new reservation and returns the record with
// its server-assigned id.
func (c *Client) CreateReservation(ctx context.Context, res Reservation) (Reservation, error) {
	var created Reservation
	if err := c.doJSON(ctx, http.MethodPost, "/reservations", res, &created); err != nil {
		return Reservation{}, err
	}
	return created, nil
}

// ListReservations fetches the reservations the API associates with the
// user id. Callers must still re-filter by exact id: the mock API's query
// matching is substring-based.
func (c *Client) ListReservations(ctx context.Context, userID string) ([]Reservation, error) {
	path := "/reservations?userId=" + url.QueryEscape(userID)
	var out []Reservation
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// The API answers 404 for an empty result set.
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

// DeleteReservation removes one reservation by id.
func (c *Client) DeleteReservation(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/reservations/"+url.PathEscape(id), nil, nil)
}

// userRecord is the demo account shape. The API stores either a single
// display name or first/last split depending on how the record was seeded.
type userRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

func (r userRecord) toUser() user.User {
	name := r.Name
	if name == "" {
		name = user.FullName(r.FirstName, r.LastName, r.Username)
	}
	return user.User{
		ID:       r.ID,
		Name:     name,
		Username: r.Username,
		Email:    r.Email,
		Phone:    r.Phone,
	}
}

// FindUser looks up a demo account by credentials. An empty result, the
// API's "not found" sentinel and a 404 all report UNAUTHENTICATED: the
// caller cannot distinguish a missing account from a wrong password here.
func (c *Client) FindUser(ctx context.Context, email, password string) (user.User, error) {
	path := "/users?email=" + url.QueryEscape(email) + "&password=" + url.QueryEscape(password)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return user.User{}, errs.Wrap(err, "failed to build users request")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return user.User{}, infra.WrapInfraErr("rental API unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return user.User{}, infra.WrapInfraErr("failed to read users response", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return user.User{}, infra.WrapInfraErr("invalid credentials", nil, infra.KindUnauthenticated)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return user.User{}, infra.WrapInfraErr("rental API returned "+resp.Status, nil)
	}
	if strings.Contains(strings.ToLower(string(body)), "not found") {
		return user.User{}, infra.WrapInfraErr("invalid credentials", nil, infra.KindUnauthenticated)
	}

	var records []userRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return user.User{}, infra.WrapInfraErr("unexpected users payload shape", err, infra.KindMalformedResponse)
	}
	if len(records) == 0 {
		return user.User{}, infra.WrapInfraErr("invalid credentials", nil, infra.KindUnauthenticated)
	}
	return records[0].toUser(), nil
}

// NewAccount is the register-form output persisted as a demo user.
type NewAccount struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// CreateUser registers a demo account and returns the stored identity.
func (c *Client) CreateUser(ctx context.Context, acc NewAccount) (user.User, error) {
	var created userRecord
	if err := c.doJSON(ctx, http.MethodPost, "/users", acc, &created); err != nil {
		return user.User{}, err
	}
	if created.Name == "" {
		created.Name = user.FullName(acc.FirstName, acc.LastName, "")
	}
	return created.toUser(), nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "failed to encode request body")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errs.Wrap(err, "failed to build rental API request")
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return infra.WrapInfraErr("rental API unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return infra.WrapInfraErr("rental API resource not found", nil, infra.KindNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return infra.WrapInfraErr("rental API returned "+resp.Status, nil)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapInfraErr("unexpected rental API payload shape", err, infra.KindMalformedResponse)
	}
	return nil
}
