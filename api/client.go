// Package api wraps outbound calls to the remote account-book and
// auth services: bearer credentials, JSON codec, failure
// classification, and a single silent refresh-and-retry on 401.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/hyejin/moneybook"
)

// TokenSource yields the bearer token for outgoing requests. An empty
// ok means the request proceeds unauthenticated.
type TokenSource interface {
	Token() (token string, ok bool)
}

// Refresher is implemented by token sources that can adopt a new
// token after a successful refresh call.
type Refresher interface {
	Replace(token string) error
}

// Options describe a single request. A nil Body sends no payload;
// anything else is serialized as JSON.
type Options struct {
	Method string
	Body   any
	Header http.Header
}

// Client calls the remote service rooted at a base URL.
type Client struct {
	base   string
	http   *http.Client
	tokens TokenSource
}

// New returns a Client for the service at base. A nil tokens source
// means every request goes out unauthenticated.
func New(base string, tokens TokenSource) *Client {
	return &Client{
		base:   strings.TrimRight(base, "/"),
		http:   http.DefaultClient,
		tokens: tokens,
	}
}

// Request performs a call against the remote service and returns the
// raw JSON body. A 204 or empty body yields nil. Non-2xx responses
// become a RemoteError carrying the message found in the error body,
// or the HTTP status text when no message can be extracted.
//
// A 401 triggers one silent token refresh and retry before the
// failure is surfaced; the surfaced 401 is classifiable with
// moneybook.IsAuthExpired so the caller can invalidate the session.
func (c *Client) Request(ctx context.Context, path string, opts Options) (json.RawMessage, error) {
	body, status, err := c.do(ctx, path, opts)
	// A 401 on an auth endpoint is a real answer, not a stale token.
	if status == http.StatusUnauthorized && !strings.HasPrefix(path, "/auth/") {
		if rerr := c.refresh(ctx); rerr == nil {
			body, status, err = c.do(ctx, path, opts)
		}
	}
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &moneybook.RemoteError{Status: status, Message: errorMessage(body, http.StatusText(status))}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	return json.RawMessage(body), nil
}

// do performs the bare HTTP exchange. A non-nil error means transport
// failure; HTTP-level failures come back as the status code.
func (c *Client) do(ctx context.Context, path string, opts Options) (body []byte, status int, err error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var payload io.Reader
	if opts.Body != nil {
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, 0, &moneybook.RemoteError{Message: fmt.Sprintf("cannot serialize request body: %v", err)}
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return nil, 0, &moneybook.RemoteError{Message: fmt.Sprintf("cannot build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	for k, vs := range opts.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, &moneybook.RemoteError{Message: fmt.Sprintf("cannot reach %s: %v", c.base, err)}
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &moneybook.RemoteError{Message: fmt.Sprintf("cannot read response: %v", err)}
	}
	return body, resp.StatusCode, nil
}

// errorMessage digs a human-readable message out of an arbitrary
// error body, falling back to fallback when nothing usable is found.
func errorMessage(body []byte, fallback string) string {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return fallback
	}
	for _, path := range []string{"$.error", "$.message"} {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue
		}
		switch v := jval.(type) {
		case string:
			if v != "" {
				return v
			}
		case nil:
		default:
			data, err := json.Marshal(v)
			if err == nil {
				return string(data)
			}
		}
	}
	return fallback
}

// refresh exchanges the current token for a fresh one and hands it to
// the token source.
func (c *Client) refresh(ctx context.Context) error {
	refresher, ok := c.tokens.(Refresher)
	if !ok {
		return fmt.Errorf("token source cannot refresh")
	}
	body, status, err := c.do(ctx, refreshPath, Options{Method: http.MethodPost})
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return &moneybook.RemoteError{Status: status, Message: errorMessage(body, http.StatusText(status))}
	}
	var parsed struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.AccessToken == "" {
		return fmt.Errorf("refresh response carries no access token")
	}
	log.Println("access token silently refreshed")
	return refresher.Replace(parsed.AccessToken)
}
