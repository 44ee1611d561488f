// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"dver.dev/x/dver/pkg/assistantconfig"
	"dver.dev/x/dver/pkg/utils"
	"github.com/jdx/go-netrc"
)

// StatusError is returned for any non-2xx response
type StatusError struct {
	Url        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %s", e.Url, e.Status)
}

type Client struct {
	http      *http.Client
	userAgent string
	netrc     *netrc.Netrc
}

// NewFromConfig builds a client with the fixed download timeout and dver's user agent.
// Credentials are taken from config.NetrcPath when that file exists.
func NewFromConfig(config *assistantconfig.Config) (*Client, error) {
	c := New(&http.Client{Timeout: assistantconfig.HttpTimeout}, assistantconfig.GetUserAgent())
	if config.NetrcPath == "" {
		return c, nil
	}

	exists, err := utils.FileExists(config.NetrcPath)
	if err != nil {
		return nil, err
	}
	if !exists {
		slog.Debug("netrc file not found, downloading without credentials", "path", config.NetrcPath)
		return c, nil
	}

	n, err := netrc.Parse(config.NetrcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse netrc file %q: %w", config.NetrcPath, err)
	}
	c.netrc = n
	return c, nil
}

func New(httpClient *http.Client, userAgent string) *Client {
	return &Client{http: httpClient, userAgent: userAgent}
}

// Get returns the response body of a successful GET
func (c *Client) Get(ctx context.Context, rawUrl string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawUrl, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	c.setCredentials(req)

	slog.Debug("downloading", "url", rawUrl)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", rawUrl, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Url: rawUrl, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", rawUrl, err)
	}
	return body, nil
}

// GetJSON decodes the body of a successful GET into v
func (c *Client) GetJSON(ctx context.Context, rawUrl string, v any) error {
	body, err := c.Get(ctx, rawUrl)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", rawUrl, err)
	}
	return nil
}

func (c *Client) setCredentials(req *http.Request) {
	if c.netrc == nil {
		return
	}
	machine := c.netrc.Machine(req.URL.Hostname())
	if machine == nil {
		return
	}
	login := machine.Get("login")
	if login == "" {
		return
	}
	req.SetBasicAuth(login, machine.Get("password"))
}
