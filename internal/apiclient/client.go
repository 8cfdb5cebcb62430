package apiclient

// Package apiclient is the typed client for the document-review backend.
// It turns operation calls into HTTP requests, attaches the stored
// credential, and collapses every failure mode into a single
// *errors.APIError.

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/domain/auth"
	apierrors "github.com/M2-SYNDICATE/Atomichack3.0/internal/errors"
	"github.com/M2-SYNDICATE/Atomichack3.0/internal/ports"
)

// Client issues typed operations against one backend. The base address is
// resolved once at construction and not re-validated per call. There is
// no retry policy and no client-side timeout; the transport's own bounds
// are the only ones.
type Client struct {
	baseURL string
	creds   ports.CredentialStore
	httpc   *http.Client
	logger  *slog.Logger
	now     func() time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithNowFunc overrides the clock used for expiry checks. Intended for tests.
func WithNowFunc(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a client for the backend at baseURL. Credentials are read
// from and purged into the given store.
func New(baseURL string, creds ports.CredentialStore, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		httpc:   http.DefaultClient,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request describes one HTTP-shaped call before credential and header
// merging.
type request struct {
	method string
	path   string
	query  url.Values
	header http.Header
	body   io.Reader
}

// authHeader returns the bearer authorization value, or false when the
// stored credential is absent or not valid. A known-expired credential is
// never sent.
func (c *Client) authHeader() (string, bool) {
	token, ok := c.creds.Token()
	if !ok {
		return "", false
	}
	if auth.InspectToken(token, c.now()) != auth.TokenValid {
		return "", false
	}
	return "Bearer " + token, true
}

// errorBody is the structured error shape the server may declare.
// FastAPI-style bodies carry "detail" instead of "message".
type errorBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
	Code    string `json:"code"`
}

// do issues the request and returns the response on any 2xx status.
// Every failure path comes back as *errors.APIError: transport failures
// as NETWORK_ERROR, non-2xx statuses with the server-declared message and
// code when parseable. A 401 purges the stored credential before the
// error is returned, regardless of what the caller does with it.
func (c *Client) do(ctx context.Context, r request) (*http.Response, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, r.body)
	if err != nil {
		return nil, apierrors.Network(err)
	}

	if value, ok := c.authHeader(); ok {
		req.Header.Set("Authorization", value)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	// Explicit per-call headers win over the derived ones on conflict.
	for key, values := range r.header {
		req.Header[http.CanonicalHeaderKey(key)] = values
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Debug("transport failure",
			slog.String("method", r.method),
			slog.String("path", r.path),
			slog.Any("error", err))
		return nil, apierrors.Network(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, c.errorFromResponse(resp)
	}
	return resp, nil
}

// errorFromResponse builds the APIError for a non-2xx response and
// applies the 401 purge side effect.
func (c *Client) errorFromResponse(resp *http.Response) error {
	var message, code string
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if readErr == nil {
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil {
			message = eb.Message
			if message == "" {
				message = eb.Detail
			}
			code = eb.Code
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Forced logout signal: the credential is dead server-side. The
		// profile copy goes with it so the stores never disagree.
		if err := c.creds.RemoveToken(); err != nil {
			c.logger.Warn("purge credential after 401 failed", slog.Any("error", err))
		}
		if err := c.creds.RemoveProfile(); err != nil {
			c.logger.Warn("purge profile after 401 failed", slog.Any("error", err))
		}
	}

	return apierrors.FromStatus(resp.StatusCode, message, code)
}

// doJSON issues the request and decodes a structured response into out.
// A success response that does not declare a structured content type is
// an INVALID_RESPONSE.
func (c *Client) doJSON(ctx context.Context, r request, out any) error {
	resp, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !isJSONContentType(resp.Header.Get("Content-Type")) {
		return apierrors.InvalidResponse("Invalid response format: expected structured payload")
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apierrors.InvalidResponse(fmt.Sprintf("Invalid response format: %v", err))
	}
	return nil
}

// doBlob issues the request and returns the raw response bytes. A success
// response that declares a structured content type is an
// INVALID_RESPONSE with the operation's message.
func (c *Client) doBlob(ctx context.Context, r request, mismatchMessage string) ([]byte, error) {
	resp, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if isJSONContentType(resp.Header.Get("Content-Type")) {
		return nil, apierrors.InvalidResponse(mismatchMessage)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.Network(err)
	}
	return data, nil
}

func isJSONContentType(ct string) bool {
	return strings.Contains(ct, "application/json")
}

func jsonHeader() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	return h
}
