// Package carsapi consumes the external vehicle source. The source serves
// loosely shaped JSON; everything is normalized into vehicle.Record before
// any field is trusted.
package carsapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"rentacar/internal/domain/vehicle"
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
		baseURL: cfg.CarsBaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// envelope is the alternative wire shape {"cars": [...]}. The source has
// served both this and a bare array across versions.
type envelope struct {
	Cars []vehicle.Record `json:"cars"`
}

// FetchAll retrieves the entire car collection.
func (c *Client) FetchAll(ctx context.Context) ([]vehicle.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/cars", nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build cars request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, infra.WrapInfraErr("cars source unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, infra.WrapInfraErr("cars source returned "+resp.Status, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, infra.WrapInfraErr("failed to read cars response", err)
	}

	records, err := decodeRecords(body)
	if err != nil {
		return nil, infra.WrapInfraErr("unexpected cars payload shape", err, infra.KindMalformedResponse)
	}
	return records, nil
}

func decodeRecords(body []byte) ([]vehicle.Record, error) {
	var bare []vehicle.Record
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errs.Wrap(err, "payload is neither an array nor a cars envelope")
	}
	if env.Cars == nil {
		return nil, errs.New("cars envelope missing cars field")
	}
	return env.Cars, nil
}
