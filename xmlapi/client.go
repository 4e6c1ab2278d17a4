package xmlapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/engagekit/go-engage/xmlapi/transport"
	"github.com/engagekit/go-engage/xmlmap"
)

// Transport posts a serialized document to a URL and returns the response
// body.
type Transport interface {
	Post(ctx context.Context, url string, body []byte) ([]byte, error)
}

// Compile-time check that the HTTP transport satisfies Transport.
var _ Transport = (*transport.HTTPTransport)(nil)

// Config holds configuration for an Engage XML API client.
type Config struct {
	// Endpoint is the full API URL (e.g. "https://api1.silverpop.com/XMLAPI").
	Endpoint string

	// Username and Password authenticate the login exchange. Leave both
	// empty to operate on a pre-established session only.
	Username string

	// Password for the login exchange.
	Password string

	// SessionID seeds the client with an existing token. When set, the
	// constructor skips the initial login.
	SessionID string

	// Transport overrides the HTTP layer. Defaults to
	// transport.NewHTTPTransport().
	Transport Transport

	// Logger receives protocol-level logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("endpoint is required")
	}
	return nil
}

// Client submits XML API requests and maintains the session token they ride
// on. It is safe for concurrent use.
type Client struct {
	endpoint string
	username string
	password string

	mu        sync.Mutex
	sessionID string

	transport Transport
	logger    *slog.Logger
}

// New creates a client. When credentials are configured and no session id
// was supplied, New performs the login exchange immediately and returns any
// login failure.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("xmlapi: invalid config: %w", err)
	}

	c := &Client{
		endpoint:  cfg.Endpoint,
		username:  cfg.Username,
		password:  cfg.Password,
		sessionID: cfg.SessionID,
		transport: cfg.Transport,
		logger:    cfg.Logger,
	}
	if c.transport == nil {
		c.transport = transport.NewHTTPTransport()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	if c.sessionID == "" && c.username != "" && c.password != "" {
		if _, err := c.Login(ctx); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Endpoint returns the configured API URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// SessionID returns the current session token, or "" before login.
func (c *Client) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

func (c *Client) setSessionID(id string) {
	c.mu.Lock()
	c.sessionID = id
	c.mu.Unlock()
}

// Login performs the login exchange and replaces the stored session token on
// success. New calls it when credentials are configured, and submit calls it
// again to recover from an expired session; it may also be called directly
// to force a fresh session.
func (c *Client) Login(ctx context.Context) (string, error) {
	if c.username == "" || c.password == "" {
		return "", fmt.Errorf("%w: no credentials configured", ErrAuthenticationFailed)
	}

	payload := NewEnvelope(xmlmap.NewMap().Set("Login", xmlmap.NewMap().
		Set("USERNAME", xmlmap.String(c.username)).
		Set("PASSWORD", xmlmap.String(c.password))))

	result, ok, err := c.submit(ctx, payload, nil, false, true)
	if err != nil {
		return "", err
	}
	var sessionID string
	if ok {
		sessionID = result.Get("SESSIONID").Text()
	}
	if sessionID == "" {
		return "", ErrAuthenticationFailed
	}

	c.setSessionID(sessionID)
	c.logger.Info("session established", "sessionid", sessionID)
	return sessionID, nil
}

// Submit encodes payload, posts it, and classifies the response. On success
// the post-processed RESULT subtree is returned. A session-expiry fault
// triggers one re-login and one resubmission; any other remote failure is
// returned as a *Fault.
//
// The payload must hold the request under an Envelope key, normally built
// with NewEnvelope.
func (c *Client) Submit(ctx context.Context, payload *xmlmap.Value) (*xmlmap.Value, error) {
	result, _, err := c.submit(ctx, payload, nil, true, false)
	return result, err
}

// SubmitRaw behaves like Submit for a pre-rendered document. Operations
// whose body never varies (Logout) skip the tree encoding.
func (c *Client) SubmitRaw(ctx context.Context, doc []byte) (*xmlmap.Value, error) {
	result, _, err := c.submit(ctx, nil, doc, true, false)
	return result, err
}

// submit runs one protocol round trip. The request comes from payload's
// Envelope subtree, or verbatim from raw when non-nil (rawness survives the
// resubmission). allowRetry permits a single re-login plus resubmission
// after a session-expiry fault; the resubmission itself never retries.
// isAuth marks the login exchange: the session suffix is omitted and a
// failed classification is reported through the success flag, not an error.
func (c *Client) submit(ctx context.Context, payload *xmlmap.Value, raw []byte, allowRetry, isAuth bool) (*xmlmap.Value, bool, error) {
	data := raw
	if data == nil {
		env := payload.Get("Envelope")
		if env == nil {
			return nil, false, fmt.Errorf("xmlapi: payload has no Envelope root")
		}
		var err error
		if data, err = xmlmap.Marshal("Envelope", env); err != nil {
			return nil, false, fmt.Errorf("xmlapi: encode request: %w", err)
		}
	}

	// The token rides on a URL matrix parameter, not a header or cookie.
	// Auth requests go to the bare endpoint; everything else carries the
	// suffix even before a token is held.
	url := c.endpoint
	if !isAuth {
		url += ";jsessionid=" + c.SessionID()
	}

	requestID := uuid.New().String()
	c.logger.Debug("submitting request",
		"request_id", requestID, "url", url, "bytes", len(data))

	resp, err := c.transport.Post(ctx, url, data)
	if err != nil {
		return nil, false, fmt.Errorf("xmlapi: transport: %w", err)
	}

	tree, err := xmlmap.Decode(resp)
	if err != nil {
		return nil, false, fmt.Errorf("xmlapi: decode response: %w", err)
	}
	body := tree.Get("Envelope").Get("Body")
	if body == nil {
		body = xmlmap.NewMap()
	}

	status := body.Get("RESULT").Get("SUCCESS").Text()
	if strings.EqualFold(status, "true") || strings.EqualFold(status, "success") {
		c.logger.Debug("request succeeded", "request_id", requestID)
		return NormalizeColumns(body.Get("RESULT")), true, nil
	}

	fault := faultFrom(body)
	if allowRetry && fault.IsSessionExpired() {
		c.logger.Info("session expired, re-authenticating", "request_id", requestID)
		if _, err := c.Login(ctx); err != nil {
			return nil, false, fmt.Errorf("xmlapi: session recovery: %w", err)
		}
		return c.submit(ctx, payload, raw, false, false)
	}
	if isAuth {
		// The login caller inspects the body itself; a refused login is not
		// a Fault.
		return body, false, nil
	}

	c.logger.Debug("request failed",
		"request_id", requestID, "errorid", fault.ErrorID)
	return nil, false, fault
}
