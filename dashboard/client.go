// Package dashboard talks to the admin dashboard HTTP API that owns the bot's
// command registry. A refresh is two calls: log in for a bearer token, then
// list the command tree with it.
package dashboard

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const (
	LoginPath    = "/api/auth/login"
	CommandsPath = "/api/commands"

	LoginTimeout = 12 * time.Second
	FetchTimeout = 18 * time.Second

	statusOK = "ok"
)

var (
	ErrMissingCredentials = errors.New("dashboard username and password are required")
	ErrMissingToken       = errors.New("login response did not contain a token")
)

var md5Hex = regexp.MustCompile(`^[0-9a-fA-F]{32}$`)

// envelope is the wrapper every dashboard endpoint responds with.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type loginData struct {
	Token string `json:"token"`
}

type commandsData struct {
	Items []CommandNode `json:"items"`
}

// Client is a thin wrapper around a resty client bound to one dashboard.
type Client struct {
	BaseURL string
	Session *resty.Client
}

// NewClient creates a dashboard client for baseURL. A trailing slash is ignored.
func NewClient(baseURL string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeaders(map[string]string{
		"Accept":       "application/json, text/plain, */*",
		"Content-Type": "application/json",
		"User-Agent":   "HelpMenu/1.0",
	})

	return &Client{
		BaseURL: baseURL,
		Session: client,
	}
}

// HashPassword returns the digest the dashboard expects. Passwords that are
// already a 32 character hex digest are passed through untouched.
func HashPassword(password string) string {
	if md5Hex.MatchString(password) {
		return strings.ToLower(password)
	}
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Login posts the credentials and returns the bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", ErrMissingCredentials
	}

	ctx, cancel := context.WithTimeout(ctx, LoginTimeout)
	defer cancel()

	resp, err := c.Session.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"username": username,
			"password": HashPassword(password),
		}).
		Post(LoginPath)
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}

	env, err := decodeEnvelope(resp, "login")
	if err != nil {
		return "", err
	}

	var data loginData
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return "", fmt.Errorf("failed to decode login data: %w", err)
		}
	}
	if data.Token == "" {
		return "", ErrMissingToken
	}

	return data.Token, nil
}

// FetchCommands lists the raw command tree using a token from Login.
func (c *Client) FetchCommands(ctx context.Context, token string) ([]CommandNode, error) {
	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	resp, err := c.Session.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get(CommandsPath)
	if err != nil {
		return nil, fmt.Errorf("command list request failed: %w", err)
	}

	env, err := decodeEnvelope(resp, "command list")
	if err != nil {
		return nil, err
	}

	var data commandsData
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, fmt.Errorf("failed to decode command list data: %w", err)
		}
	}

	log.Debug().Int("roots", len(data.Items)).Msg("fetched command tree")
	return data.Items, nil
}

// decodeEnvelope checks the HTTP status and the envelope status of resp.
func decodeEnvelope(resp *resty.Response, what string) (*envelope, error) {
	var env envelope
	decodeErr := json.Unmarshal(resp.Body(), &env)

	if !resp.IsSuccess() {
		if decodeErr == nil && env.Message != "" {
			return nil, fmt.Errorf("%s failed: HTTP %d: %s", what, resp.StatusCode(), env.Message)
		}
		return nil, fmt.Errorf("%s failed: HTTP %d", what, resp.StatusCode())
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", what, decodeErr)
	}
	if env.Status != statusOK {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %q", env.Status)
		}
		return nil, fmt.Errorf("%s failed: %s", what, msg)
	}

	return &env, nil
}
