// =================================
// File: internal/market/client.go
// =================================

// Package market is the HTTP boundary to the account backend: OTP login,
// account summary, holdings and NAV history. Everything above this package
// treats it as an external collaborator.
package market

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/niveshak-app/niveshak/internal/config"
	"github.com/niveshak-app/niveshak/internal/series"
)

// Client talks to the account backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxTries   uint
	token      string
	logger     *zap.Logger
}

// NewClient creates a client from the app configuration.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutMS) * time.Millisecond,
		},
		maxTries: uint(cfg.Retries) + 1,
		logger:   logger,
	}
}

// RequestOTP asks the backend to send a one-time password to the phone.
func (c *Client) RequestOTP(ctx context.Context, phone string) error {
	return c.postJSON(ctx, "/auth/otp/request", loginRequest{Phone: phone}, nil)
}

// Login verifies the OTP and stores the session token for later calls.
func (c *Client) Login(ctx context.Context, phone, otp string) (*Account, error) {
	var resp loginResponse
	if err := c.postJSON(ctx, "/auth/otp/verify", loginRequest{Phone: phone, OTP: otp}, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	c.logger.Info("Logged in", zap.String("account_id", resp.Account.ID))
	return &resp.Account, nil
}

// Summary fetches the account-level rollup.
func (c *Client) Summary(ctx context.Context) (*Summary, error) {
	var s Summary
	if err := c.getJSON(ctx, "/portfolio/summary", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Holdings fetches the scheme positions.
func (c *Client) Holdings(ctx context.Context) ([]Holding, error) {
	var resp holdingsResponse
	if err := c.getJSON(ctx, "/portfolio/holdings", &resp); err != nil {
		return nil, err
	}
	return resp.Holdings, nil
}

// NavHistory fetches the raw NAV series of a scheme. Dates arrive as
// DD-MM-YYYY with no ordering guarantee; callers window them through the
// series package.
func (c *Client) NavHistory(ctx context.Context, schemeID string) ([]series.RawPoint, error) {
	var resp navHistoryResponse
	if err := c.getJSON(ctx, "/schemes/"+schemeID+"/nav", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// FetchOverview loads summary and holdings concurrently.
func (c *Client) FetchOverview(ctx context.Context) (*Overview, error) {
	var ov Overview

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := c.Summary(gCtx)
		if err != nil {
			return fmt.Errorf("summary: %w", err)
		}
		ov.Summary = *s
		return nil
	})
	g.Go(func() error {
		h, err := c.Holdings(gCtx)
		if err != nil {
			return fmt.Errorf("holdings: %w", err)
		}
		ov.Holdings = h
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ov, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	return c.doJSON(ctx, http.MethodPost, path, payload, out)
}

// doJSON performs a request with exponential-backoff retries. Server-side
// failures retry; client-side statuses are permanent.
func (c *Client) doJSON(ctx context.Context, method, path string, payload []byte, out interface{}) error {
	op := func() (struct{}, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return struct{}{}, backoff.Permanent(fmt.Errorf("failed to build request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return struct{}{}, err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= http.StatusInternalServerError:
			return struct{}{}, fmt.Errorf("server error %d on %s", resp.StatusCode, path)
		case resp.StatusCode >= http.StatusBadRequest:
			return struct{}{}, backoff.Permanent(fmt.Errorf("request rejected with %d on %s", resp.StatusCode, path))
		}

		if out == nil {
			return struct{}{}, nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return struct{}{}, backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
		}
		return struct{}{}, nil
	}

	_, err := backoff.Retry(
		ctx,
		op,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(c.maxTries),
	)
	if err != nil {
		c.logger.Warn("Request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
	}
	return err
}
